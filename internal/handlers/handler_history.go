package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
	portssvc "github.com/newskeeper/newskeeper_backend/internal/core/ports/services"
	"github.com/newskeeper/newskeeper_backend/internal/middleware"
)

// HistoryHandler serves the saved-article collections. Each route is bound to
// one category at registration time; the handler logic is category-agnostic.
type HistoryHandler struct {
	historyService portssvc.HistorySvcFacade
}

func NewHistoryHandler(hs portssvc.HistorySvcFacade) *HistoryHandler {
	return &HistoryHandler{historyService: hs}
}

// List godoc
// @Summary Saved article history
// @Description Returns the caller's saved collection in save order.
// @Tags history
// @Produce json
// @Success 200 {array} domain.SavedArticle
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /headlines/history [get]
func (h *HistoryHandler) List(category domain.ArticleCategory) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, _ := middleware.GetIdentityFromContext(c)

		articles, err := h.historyService.ListHistory(c.Request.Context(), identity.UserID, category)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, articles)
	}
}

// DeleteOne removes a single saved article by id. Deleting an id that is no
// longer in the collection still reports success.
func (h *HistoryHandler) DeleteOne(category domain.ArticleCategory) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, _ := middleware.GetIdentityFromContext(c)

		articleID := c.Param("id")
		if articleID == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Article id is required"})
			return
		}

		if err := h.historyService.DeleteOne(c.Request.Context(), identity.UserID, category, articleID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Article deleted successfully"})
	}
}

// DeleteAll empties the caller's collection for the category.
func (h *HistoryHandler) DeleteAll(category domain.ArticleCategory) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, _ := middleware.GetIdentityFromContext(c)

		if err := h.historyService.DeleteAll(c.Request.Context(), identity.UserID, category); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/newskeeper/newskeeper_backend/internal/core/ports/services"
	"github.com/newskeeper/newskeeper_backend/internal/dto"
	"github.com/newskeeper/newskeeper_backend/internal/middleware"
)

// NewsHandler serves the news search endpoints. The GET variants are public
// passthroughs; the POST variants search and persist to the caller's history.
type NewsHandler struct {
	historyService portssvc.HistorySvcFacade
}

func NewNewsHandler(hs portssvc.HistorySvcFacade) *NewsHandler {
	return &NewsHandler{historyService: hs}
}

// GetHeadlines godoc
// @Summary Current English top headlines
// @Produce json
// @Success 200 {object} domain.NewsResponse
// @Failure 502 {object} ErrorResponse
// @Router /headlines [get]
func (h *NewsHandler) GetHeadlines(c *gin.Context) {
	resp, err := h.historyService.SearchHeadlines(c.Request.Context(), "")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SearchHeadlines godoc
// @Summary Search headlines by category and save the results
// @Description Searches top headlines for a category and appends every result to the caller's headlines history.
// @Tags news
// @Accept json
// @Produce json
// @Param search body dto.SearchHeadlinesRequest true "Category"
// @Success 200 {object} domain.NewsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /headlines [post]
func (h *NewsHandler) SearchHeadlines(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not authenticated"})
		return
	}

	var req dto.SearchHeadlinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.historyService.SaveHeadlines(c.Request.Context(), identity.UserID, req.SearchHeadlines)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetEverything serves the unfiltered English article listing.
func (h *NewsHandler) GetEverything(c *gin.Context) {
	resp, err := h.historyService.SearchEverything(c.Request.Context(), "")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SearchEverything godoc
// @Summary Free-text article search, saved to history
// @Description Runs a relevance-ordered search bounded at today's date and appends every result to the caller's everything history.
// @Tags news
// @Accept json
// @Produce json
// @Param search body dto.SearchEverythingRequest true "Query"
// @Success 200 {object} domain.NewsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /everything [post]
func (h *NewsHandler) SearchEverything(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not authenticated"})
		return
	}

	var req dto.SearchEverythingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.historyService.SaveEverything(c.Request.Context(), identity.UserID, req.SearchEverything)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

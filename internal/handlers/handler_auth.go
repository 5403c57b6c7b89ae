package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/newskeeper/newskeeper_backend/internal/apperrors"
	portssvc "github.com/newskeeper/newskeeper_backend/internal/core/ports/services"
	"github.com/newskeeper/newskeeper_backend/internal/dto"
	"github.com/newskeeper/newskeeper_backend/internal/middleware"
	"github.com/newskeeper/newskeeper_backend/internal/platform/config"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AuthHandler handles local signup/signin, logout and the session-gated
// identity endpoints.
type AuthHandler struct {
	userService    portssvc.UserSvcFacade
	sessionService portssvc.SessionSvcFacade
	cfg            *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ss portssvc.SessionSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{userService: us, sessionService: ss, cfg: cfg}
}

// setSessionCookie issues the cross-origin session cookie. SameSite=None is
// required because the frontend and the API live on different origins, and
// None in turn requires Secure.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, expiry time.Time) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(h.cfg.SessionCookieName, token, int(time.Until(expiry).Seconds()), "/", "", true, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(h.cfg.SessionCookieName, "", -1, "/", "", true, true)
}

// Signup godoc
// @Summary Register a local account
// @Description Creates a local account and logs it in by setting the session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Signup Credentials"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Username already taken"
// @Router /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.CreateLocalUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, expiry, err := h.sessionService.IssueSession(c.Request.Context(), user)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to issue session after signup", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create session"})
		return
	}
	h.setSessionCookie(c, token, expiry)

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Message: "User registered successfully",
		User:    dto.ToUserResponse(user),
	})
}

// ListAccounts godoc
// @Summary List accounts
// @Description Returns the redacted account list. Requires a session.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.ListUsersResponse
// @Failure 401 {object} ErrorResponse
// @Router /signup [get]
func (h *AuthHandler) ListAccounts(c *gin.Context) {
	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

// Signin godoc
// @Summary Local login
// @Description Verifies credentials and sets the session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param signin body dto.SigninRequest true "Login Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /signin [post]
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.VerifyLocalCredentials(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// One message for unknown user and wrong password.
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
		return
	}

	token, expiry, err := h.sessionService.IssueSession(c.Request.Context(), user)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to issue session after signin", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create session"})
		return
	}
	h.setSessionCookie(c, token, expiry)

	c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "User logged in successfully",
		User:    dto.ToUserResponse(user),
	})
}

// Logout clears the session cookie and sends the browser back to the
// frontend. Logging out an anonymous session is not an error.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.Redirect(http.StatusFound, h.cfg.FrontendBaseURL)
}

// Home reports authentication status only.
func (h *AuthHandler) Home(c *gin.Context) {
	if _, ok := middleware.GetIdentityFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Authenticated"})
}

// Profile godoc
// @Summary Authenticated profile
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Router /profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, dto.ProfileResponse{Username: identity.Username, ID: identity.UserID})
}

// respondError converts a service error into the uniform {"error": ...} body
// with the status code from the error taxonomy, logging server-side failures.
func respondError(c *gin.Context, err error) {
	appErr := apperrors.FromError(err)
	if appErr.Code >= http.StatusInternalServerError {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Request failed", slog.String("error", err.Error()))
	}
	c.JSON(appErr.Code, appErr)
}

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
	portssvc "github.com/newskeeper/newskeeper_backend/internal/core/ports/services"
	"github.com/newskeeper/newskeeper_backend/internal/middleware"
	"github.com/newskeeper/newskeeper_backend/internal/platform/config"
	"github.com/newskeeper/newskeeper_backend/internal/utils"
)

const (
	stateCookieName = "nk_oauth_state"
	stateCookieTTL  = 5 * time.Minute
)

// OAuthHandler drives the redirect-based authorization-code flow for every
// configured provider: /auth/:provider sends the browser out with a CSRF
// state cookie, /auth/:provider/home exchanges the callback code, finds or
// creates the account and logs it in.
type OAuthHandler struct {
	providers      map[domain.AuthProvider]portssvc.OAuthProviderSvcFacade
	userService    portssvc.UserSvcFacade
	sessionService portssvc.SessionSvcFacade
	cfg            *config.Config
}

func NewOAuthHandler(
	providers map[domain.AuthProvider]portssvc.OAuthProviderSvcFacade,
	us portssvc.UserSvcFacade,
	ss portssvc.SessionSvcFacade,
	cfg *config.Config,
) *OAuthHandler {
	return &OAuthHandler{providers: providers, userService: us, sessionService: ss, cfg: cfg}
}

func (h *OAuthHandler) provider(c *gin.Context) (portssvc.OAuthProviderSvcFacade, bool) {
	p, ok := h.providers[domain.AuthProvider(c.Param("provider"))]
	return p, ok
}

// Redirect sends the browser to the provider's consent screen.
func (h *OAuthHandler) Redirect(c *gin.Context) {
	provider, ok := h.provider(c)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Unknown provider"})
		return
	}

	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start login"})
		return
	}

	// Lax, not None: the state cookie only needs to survive the top-level
	// redirect back from the provider.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, state, int(stateCookieTTL.Seconds()), "/auth", "", true, true)

	c.Redirect(http.StatusFound, provider.LoginURL(state))
}

// Callback completes the flow. Any failure redirects the browser to the
// frontend signin page rather than surfacing a JSON error, since the caller
// is a navigating browser.
func (h *OAuthHandler) Callback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	failureURL := h.cfg.FrontendBaseURL + "/signin"

	provider, ok := h.provider(c)
	if !ok {
		c.Redirect(http.StatusFound, failureURL)
		return
	}

	state := c.Query("state")
	cookieState, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || state != cookieState {
		logger.Warn("OAuth state mismatch", slog.String("provider", string(provider.Provider())))
		c.Redirect(http.StatusFound, failureURL)
		return
	}
	// State is single-use.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, "", -1, "/auth", "", true, true)

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, failureURL)
		return
	}

	identity, err := provider.FetchIdentity(c.Request.Context(), code)
	if err != nil {
		logger.Error("Failed to resolve provider identity",
			slog.String("provider", string(provider.Provider())),
			slog.String("error", err.Error()))
		c.Redirect(http.StatusFound, failureURL)
		return
	}

	user, err := h.userService.FindOrCreateByProvider(c.Request.Context(), *identity)
	if err != nil {
		logger.Error("Failed to find or create provider user", slog.String("error", err.Error()))
		c.Redirect(http.StatusFound, failureURL)
		return
	}

	token, expiry, err := h.sessionService.IssueSession(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to issue session after OAuth login", slog.String("error", err.Error()))
		c.Redirect(http.StatusFound, failureURL)
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(h.cfg.SessionCookieName, token, int(time.Until(expiry).Seconds()), "/", "", true, true)

	c.Redirect(http.StatusFound, h.cfg.FrontendBaseURL+"/home")
}

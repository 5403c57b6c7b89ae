package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// OAuthProviderConfig holds the client credentials for one external identity provider.
type OAuthProviderConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Session cookie / token
	SessionSecret         string
	SessionExpiryDuration time.Duration
	SessionCookieName     string
	SessionIssuer         string

	// Cross-origin frontend
	FrontendBaseURL string
	AllowedOrigins  []string

	// External news API
	NewsAPIKey     string
	NewsAPIBaseURL string

	// External OAuth providers
	Google   OAuthProviderConfig
	Facebook OAuthProviderConfig
	GitHub   OAuthProviderConfig
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("SESSION_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("SESSION_EXPIRY_DURATION", "24h")
	viper.SetDefault("SESSION_COOKIE_NAME", "nk_session")
	viper.SetDefault("SESSION_ISSUER", "newskeeper-backend")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("NEWS_API_KEY", "")
	viper.SetDefault("NEWS_API_BASE_URL", "https://newsapi.org/v2")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FACEBOOK_CLIENT_ID", "")
	viper.SetDefault("FACEBOOK_CLIENT_SECRET", "")
	viper.SetDefault("FACEBOOK_REDIRECT_URL", "")
	viper.SetDefault("GITHUB_CLIENT_ID", "")
	viper.SetDefault("GITHUB_CLIENT_SECRET", "")
	viper.SetDefault("GITHUB_REDIRECT_URL", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.SessionSecret = viper.GetString("SESSION_SECRET")
	if cfg.SessionSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: SESSION_SECRET not set. Using default insecure key.")
	}

	sessionExpiryStr := viper.GetString("SESSION_EXPIRY_DURATION")
	sessionExpiry, err := time.ParseDuration(sessionExpiryStr)
	if err != nil {
		sessionExpiry = 24 * time.Hour
		log.Printf("Warning: Invalid value for SESSION_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", sessionExpiryStr, sessionExpiry)
	}
	cfg.SessionExpiryDuration = sessionExpiry
	cfg.SessionCookieName = viper.GetString("SESSION_COOKIE_NAME")
	cfg.SessionIssuer = viper.GetString("SESSION_ISSUER")

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.AllowedOrigins = splitOrigins(viper.GetString("ALLOWED_ORIGINS"))

	cfg.NewsAPIKey = viper.GetString("NEWS_API_KEY")
	if cfg.NewsAPIKey == "" {
		log.Println("Warning: NEWS_API_KEY not set. News search will not function.")
	}
	cfg.NewsAPIBaseURL = viper.GetString("NEWS_API_BASE_URL")

	cfg.Google = OAuthProviderConfig{
		ClientID:     viper.GetString("GOOGLE_CLIENT_ID"),
		ClientSecret: viper.GetString("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  viper.GetString("GOOGLE_REDIRECT_URL"),
	}
	cfg.Facebook = OAuthProviderConfig{
		ClientID:     viper.GetString("FACEBOOK_CLIENT_ID"),
		ClientSecret: viper.GetString("FACEBOOK_CLIENT_SECRET"),
		RedirectURL:  viper.GetString("FACEBOOK_REDIRECT_URL"),
	}
	cfg.GitHub = OAuthProviderConfig{
		ClientID:     viper.GetString("GITHUB_CLIENT_ID"),
		ClientSecret: viper.GetString("GITHUB_CLIENT_SECRET"),
		RedirectURL:  viper.GetString("GITHUB_REDIRECT_URL"),
	}

	for name, pc := range map[string]OAuthProviderConfig{
		"Google": cfg.Google, "Facebook": cfg.Facebook, "GitHub": cfg.GitHub,
	} {
		if pc.ClientID == "" || pc.ClientSecret == "" || pc.RedirectURL == "" {
			log.Printf("Warning: %s OAuth credentials incomplete. %s login will not function.\n", name, name)
		}
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/newskeeper/newskeeper_backend/cmd/docs"
	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
	portssvc "github.com/newskeeper/newskeeper_backend/internal/core/ports/services"
	"github.com/newskeeper/newskeeper_backend/internal/middleware"
	"github.com/newskeeper/newskeeper_backend/internal/platform/config"
)

// headlineCategories is the category set the news API accepts for
// top-headlines searches.
var headlineCategories = map[string]bool{
	"business":      true,
	"entertainment": true,
	"general":       true,
	"health":        true,
	"science":       true,
	"sports":        true,
	"technology":    true,
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerValidations()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Resolve the session cookie on every request; individual routes decide
	// whether anonymous access is allowed.
	r.Use(middleware.SessionAuth(services.Session, cfg.SessionCookieName))

	registerAuthRoutes(r, cfg, services)
	registerOAuthRoutes(r, cfg, services)
	registerNewsRoutes(r, services)
	registerHistoryRoutes(r, services)
	setupSwaggerRoutes(r, cfg)
}

func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("newscategory", func(fl validator.FieldLevel) bool {
			return headlineCategories[fl.Field().String()]
		})
	}
}

func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.Session, cfg)

	r.GET("/signup", middleware.RequireAuth(), h.ListAccounts)
	r.POST("/signup", h.Signup)
	r.POST("/signin", h.Signin)
	r.GET("/logout", h.Logout)
	r.GET("/home", h.Home)
	r.GET("/profile", h.Profile)
}

func registerOAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewOAuthHandler(services.OAuthProviders, services.User, services.Session, cfg)

	auth := r.Group("/auth")
	{
		auth.GET("/:provider", h.Redirect)
		auth.GET("/:provider/home", h.Callback)
	}
}

func registerNewsRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := NewNewsHandler(services.History)

	r.GET("/headlines", h.GetHeadlines)
	r.POST("/headlines", h.SearchHeadlines)
	r.GET("/everything", h.GetEverything)
	r.POST("/everything", h.SearchEverything)
}

func registerHistoryRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := NewHistoryHandler(services.History)

	for path, category := range map[string]domain.ArticleCategory{
		"/headlines":  domain.CategoryHeadlines,
		"/everything": domain.CategoryEverything,
	} {
		history := r.Group(path+"/history", middleware.RequireAuth())
		{
			history.GET("", h.List(category))
			history.DELETE("/delete/:id", h.DeleteOne(category))
			history.DELETE("/deleteAll", h.DeleteAll(category))
		}
	}
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

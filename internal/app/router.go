package app

import (
	"assessment_backend/internal/config"
	"assessment_backend/internal/middleware"
	"assessment_backend/pkg/monitoring"
	"assessment_backend/pkg/security"
	"assessment_backend/pkg/tracing"
	"time"

	"assessment_backend/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	if cfg.RateLimit.MaxRequests > 0 {
		router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))
	}
	router.Use(monitoring.MetricsMiddleware())
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}
}

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/health", c.health.HealthCheck)
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", c.auth.Login)
		auth.POST("/logout", c.auth.Logout)
	}

	authorized := api.Group("")
	authorized.Use(middleware.AuthMiddleware(cfg))
	{
		users := authorized.Group("/users")
		{
			users.GET("", c.user.ListUsers)
			users.POST("", c.user.CreateUser)
			users.PATCH("/:id", c.user.UpdateUser)
			users.DELETE("/:id", c.user.DeleteUser)
		}

		roles := authorized.Group("/roles")
		{
			roles.GET("", c.role.ListRoles)
			roles.POST("", c.role.CreateRole)
			roles.PATCH("/:id", c.role.UpdateRole)
			roles.PUT("/:id/menu-access", c.role.UpdateMenuAccess)
			roles.DELETE("/:id", c.role.DeleteRole)
		}

		surveys := authorized.Group("/surveys")
		{
			surveys.GET("", c.survey.ListSurveys)
			surveys.POST("", c.survey.CreateSurvey)
			surveys.PATCH("/:id", c.survey.UpdateSurvey)
			surveys.DELETE("/:id", c.survey.DeleteSurvey)
			surveys.GET("/:id/sections", c.survey.ListSections)
		}

		sections := authorized.Group("/sections")
		{
			sections.POST("", c.survey.CreateSection)
			sections.PATCH("/:id", c.survey.UpdateSection)
			sections.DELETE("/:id", c.survey.DeleteSection)
			sections.GET("/:id/questions", c.question.ListBySection)
		}

		questions := authorized.Group("/questions")
		{
			questions.POST("", c.question.CreateQuestion)
			questions.PATCH("/:id", c.question.UpdateQuestion)
			questions.DELETE("/:id", c.question.DeleteQuestion)
			questions.POST("/upload", c.question.UploadCSV)
		}

		sessions := authorized.Group("/sessions")
		{
			sessions.GET("", c.test.ListMySessions)
			sessions.GET("/:id", c.test.GetSession)
		}

		authorized.GET("/dashboard", c.dashboard.GetDashboard)

		certificates := authorized.Group("/certificates")
		{
			certificates.GET("", c.certificate.ListCertificates)
			certificates.POST("", c.certificate.IssueCertificate)
			certificates.POST("/:id/revoke", c.certificate.RevokeCertificate)
			certificates.GET("/:id/download", c.certificate.DownloadCertificate)
		}

		settings := authorized.Group("/settings")
		{
			settings.GET("", c.setting.ListSettings)
			settings.PUT("/:key", c.setting.UpdateSetting)
		}
	}
}

package app

import (
	"career_coach_backend/docs"
	"career_coach_backend/internal/config"
	"career_coach_backend/internal/middleware"
	"career_coach_backend/internal/model"
	"career_coach_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerUserRoutes(authGroup, c)

		admin := authGroup.Group("/admin")
		admin.Use(middleware.RoleMiddleware(model.Admin))
		{
			admin.POST("/insights/refresh", c.insight.RefreshInsights)
		}
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Check)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
	router.GET("/health", c.health.Check)
}

func (a *App) registerUserRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/me", c.auth.Me)

	group.GET("/profile", c.user.GetProfile)
	group.PUT("/profile", c.user.UpdateProfile)

	group.GET("/insights", c.insight.GetInsight)

	resume := group.Group("/resume")
	{
		resume.GET("", c.resume.GetResume)
		resume.PUT("", c.resume.SaveResume)
		resume.POST("/build", c.resume.BuildResume)
		resume.POST("/improve", c.resume.ImproveResume)
		resume.POST("/export", c.resume.ExportResume)
	}

	letters := group.Group("/cover-letters")
	{
		letters.POST("", c.coverLetter.Create)
		letters.GET("", c.coverLetter.List)
		letters.GET("/:id", c.coverLetter.Get)
		letters.DELETE("/:id", c.coverLetter.Delete)
	}

	interview := group.Group("/interview")
	{
		interview.POST("/quiz", c.interview.StartQuiz)
		interview.POST("/quiz/answer", c.interview.SubmitAnswer)
		interview.POST("/quiz/advance", c.interview.Advance)
		interview.POST("/quiz/save", c.interview.RetrySave)
		interview.GET("/assessments", c.interview.ListAssessments)
	}
}

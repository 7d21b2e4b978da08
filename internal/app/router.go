package app

import (
	"learnhub_backend/docs"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/middleware"
	"learnhub_backend/internal/model"
	"learnhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, svcs *services, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c, repos, svcs, cfg)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg, repos.user, svcs.identity), middleware.ActivityMiddleware(repos.user))
	{
		a.registerLearnerRoutes(authGroup, c)
		a.registerInstructorRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers, repos *repositories, svcs *services, cfg *config.Config) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/webhooks/identity", c.webhook.HandleIdentityEvent)

		// The catalog is open to everyone; review listings honor course
		// visibility, so a session is attached when one is present.
		public.GET("/courses/catalog", c.course.PublicCatalog)
		public.GET("/courses/:id/reviews", middleware.TryAuthMiddleware(cfg, repos.user, svcs.identity), c.review.ListReviews)
	}
}

func (a *App) registerLearnerRoutes(rg *gin.RouterGroup, c *controllers) {
	learner := rg.Group("/learner")
	learner.Use(middleware.RequireRole(model.Learner))
	{
		learner.POST("/courses/:id/enroll", c.enrollment.Enroll)
		learner.GET("/enrollments", c.enrollment.ListEnrollments)
		learner.POST("/courses/:id/progress", c.enrollment.RecordProgress)
		learner.POST("/courses/:id/reviews", c.review.SubmitReview)
		learner.GET("/badges", c.badge.MyBadges)
	}
}

func (a *App) registerInstructorRoutes(rg *gin.RouterGroup, c *controllers) {
	instructor := rg.Group("")
	instructor.Use(middleware.RequireRole(model.Instructor))
	{
		instructor.POST("/courses", c.course.CreateCourse)
		instructor.GET("/courses", c.course.ListCourses)
		instructor.GET("/courses/:id", c.course.GetCourse)
		instructor.PATCH("/courses/:id", c.course.UpdateCourse)
		instructor.DELETE("/courses/:id", c.course.DeleteCourse)
		instructor.POST("/courses/:id/publish", c.course.PublishCourse)

		instructor.POST("/courses/:id/lessons", c.lesson.CreateLesson)
		instructor.GET("/courses/:id/lessons", c.lesson.ListLessons)
		instructor.PATCH("/courses/:id/lessons/:lessonId", c.lesson.UpdateLesson)
		instructor.DELETE("/courses/:id/lessons/:lessonId", c.lesson.DeleteLesson)

		instructor.POST("/courses/:id/quizzes", c.quiz.CreateQuiz)
		instructor.GET("/courses/:id/quizzes", c.quiz.ListQuizzes)
		instructor.GET("/courses/:id/quizzes/:quizId", c.quiz.GetQuiz)
		instructor.PATCH("/courses/:id/quizzes/:quizId", c.quiz.UpdateQuiz)
		instructor.DELETE("/courses/:id/quizzes/:quizId", c.quiz.DeleteQuiz)
		instructor.POST("/courses/:id/quizzes/:quizId/questions", c.quiz.CreateQuestion)
		instructor.PATCH("/courses/:id/quizzes/:quizId/questions/:questionId", c.quiz.UpdateQuestion)
		instructor.DELETE("/courses/:id/quizzes/:quizId/questions/:questionId", c.quiz.DeleteQuestion)
		instructor.PUT("/courses/:id/quizzes/:quizId/rewards", c.quiz.ReplaceRewards)

		instructor.POST("/courses/:id/invitations", c.invitation.IssueInvitations)
		instructor.GET("/courses/:id/invitations", c.invitation.ListInvitations)

		instructor.POST("/uploads/lesson-media", c.upload.UploadMedia)
		instructor.GET("/instructor/dashboard", c.dashboard.InstructorStats)
	}
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RequireRole(model.Admin))
	{
		admin.GET("/users", c.user.ListUsers)
		admin.GET("/users/:id", c.user.GetUser)
		admin.PUT("/users/:id", c.user.UpdateUser)
		admin.PUT("/users/:id/role", c.user.ChangeRole)
		admin.DELETE("/users/:id", c.user.DeleteUser)
	}
}

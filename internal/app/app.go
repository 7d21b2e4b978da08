package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/controller"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/service"
	"learnhub_backend/pkg/database"
	"learnhub_backend/pkg/logger"
	"learnhub_backend/pkg/monitoring"
	"learnhub_backend/pkg/security"
	"learnhub_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	course     *repository.CourseRepository
	lesson     *repository.LessonRepository
	quiz       *repository.QuizRepository
	enrollment *repository.EnrollmentRepository
	review     *repository.ReviewRepository
	invitation *repository.InvitationRepository
	badge      *repository.BadgeRepository
}

type services struct {
	identity   *service.IdentityService
	webhook    *service.WebhookService
	storage    *service.StorageService
	user       *service.UserService
	course     *service.CourseService
	lesson     *service.LessonService
	quiz       *service.QuizService
	enrollment *service.EnrollmentService
	review     *service.ReviewService
	invitation *service.InvitationService
	dashboard  *service.DashboardService
	badge      *service.BadgeService
}

type controllers struct {
	health     *controller.HealthController
	course     *controller.CourseController
	lesson     *controller.LessonController
	quiz       *controller.QuizController
	enrollment *controller.EnrollmentController
	review     *controller.ReviewController
	invitation *controller.InvitationController
	user       *controller.UserController
	dashboard  *controller.DashboardController
	badge      *controller.BadgeController
	webhook    *controller.WebhookController
	upload     *controller.UploadController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig swaps in a freshly loaded config and notifies registered callbacks.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		course:     repository.NewCourseRepository(db),
		lesson:     repository.NewLessonRepository(db),
		quiz:       repository.NewQuizRepository(db),
		enrollment: repository.NewEnrollmentRepository(db),
		review:     repository.NewReviewRepository(db),
		invitation: repository.NewInvitationRepository(db),
		badge:      repository.NewBadgeRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.identity = service.NewIdentityService(cfg)
	s.webhook = service.NewWebhookService(repos.user, cfg)
	s.storage = service.NewStorageService(cfg)
	s.user = service.NewUserService(repos.user, cfg)
	s.course = service.NewCourseService(repos.course, rdb)
	s.lesson = service.NewLessonService(repos.lesson, repos.course)
	s.quiz = service.NewQuizService(repos.quiz, repos.course, repos.lesson)
	s.enrollment = service.NewEnrollmentService(repos.enrollment, repos.course, repos.lesson, db)
	s.review = service.NewReviewService(repos.review, repos.enrollment, repos.course)
	s.invitation = service.NewInvitationService(repos.invitation, repos.course)
	s.dashboard = service.NewDashboardService(db)
	s.badge = service.NewBadgeService(repos.badge, repos.enrollment, repos.review)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		health:     controller.NewHealthController(db),
		course:     controller.NewCourseController(s.course),
		lesson:     controller.NewLessonController(s.lesson),
		quiz:       controller.NewQuizController(s.quiz),
		enrollment: controller.NewEnrollmentController(s.enrollment),
		review:     controller.NewReviewController(s.review),
		invitation: controller.NewInvitationController(s.invitation),
		user:       controller.NewUserController(s.user, s.identity),
		dashboard:  controller.NewDashboardController(s.dashboard),
		badge:      controller.NewBadgeController(s.badge),
		webhook:    controller.NewWebhookController(s.webhook),
		upload:     controller.NewUploadController(s.storage, s.course),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 10000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// The catalog cache is an optimization; the service degrades to
		// direct reads when redis is down.
		logger.Log.Warn("Redis unavailable, catalog caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("learnhub", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, services, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}

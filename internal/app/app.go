package app

import (
	"career_coach_backend/internal/config"
	"career_coach_backend/internal/controller"
	"career_coach_backend/internal/llm"
	"career_coach_backend/internal/quiz"
	"career_coach_backend/internal/repository"
	"career_coach_backend/internal/service"
	"career_coach_backend/pkg/database"
	"career_coach_backend/pkg/logger"
	"career_coach_backend/pkg/monitoring"
	"career_coach_backend/pkg/security"
	"career_coach_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	user        *repository.UserRepository
	assessment  *repository.AssessmentRepository
	resume      *repository.ResumeRepository
	coverLetter *repository.CoverLetterRepository
	insight     *repository.IndustryInsightRepository
	quizSession *repository.QuizSessionStore
}

type services struct {
	auth        *service.AuthService
	user        *service.UserService
	storage     *service.StorageService
	insight     *service.InsightService
	resume      *service.ResumeService
	coverLetter *service.CoverLetterService
	interview   *service.InterviewService
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	insight     *controller.InsightController
	resume      *controller.ResumeController
	coverLetter *controller.CoverLetterController
	interview   *controller.InterviewController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		assessment:  repository.NewAssessmentRepository(db),
		resume:      repository.NewResumeRepository(db),
		coverLetter: repository.NewCoverLetterRepository(db),
		insight:     repository.NewIndustryInsightRepository(db),
		quizSession: repository.NewQuizSessionStore(rdb),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client, completer llm.Completer) (*services, error) {
	s := &services{}

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}
	s.storage = storage

	s.auth = service.NewAuthService(repos.user, cfg)
	s.insight = service.NewInsightService(repos.insight, repos.user, completer, rdb, cfg.Insights)
	s.user = service.NewUserService(repos.user, s.insight, db)
	s.resume = service.NewResumeService(repos.resume, repos.user, completer, s.storage)
	s.coverLetter = service.NewCoverLetterService(repos.coverLetter, repos.user, completer)
	s.interview = service.NewInterviewService(
		repos.user,
		repos.assessment,
		repos.quizSession,
		quiz.NewGenerator(completer),
		quiz.NewAdvisor(completer),
	)

	return s, nil
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth, s.user),
		user:        controller.NewUserController(s.user),
		insight:     controller.NewInsightController(s.insight),
		resume:      controller.NewResumeController(s.resume),
		coverLetter: controller.NewCoverLetterController(s.coverLetter),
		interview:   controller.NewInterviewController(s.interview),
		health:      controller.NewHealthController(),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
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

// startBackgroundTasks runs the periodic industry-insight refresh.
// Insights are regenerated once a week per industry; this ticker just
// checks which ones have come due.
func (a *App) startBackgroundTasks(s *services) {
	interval := time.Duration(a.Config.Insights.RefreshCheckMinutes) * time.Minute
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			if err := s.insight.RefreshDue(ctx); err != nil {
				logger.Log.Error("insight refresh error", zap.Error(err))
			}
			cancel()
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	completer, err := llm.NewCompleter(context.Background(), cfg.AI)
	if err != nil {
		logger.Log.Fatal("Failed to initialize completion provider", zap.Error(err))
		log.Fatalf("Failed to initialize completion provider: %v", err)
	}

	repos := app.initRepositories(db, rdb)
	services, err := app.initServices(repos, cfg, db, rdb, completer)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
		log.Fatalf("Failed to initialize services: %v", err)
	}
	app.services = services
	controllers := app.initControllers(services)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("career-coach", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/exports", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

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

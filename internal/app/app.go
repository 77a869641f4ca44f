package app

import (
	"assessment_backend/internal/config"
	"assessment_backend/internal/controller"
	"assessment_backend/internal/repository"
	"assessment_backend/internal/service"
	"assessment_backend/pkg/configwatcher"
	"assessment_backend/pkg/database"
	"assessment_backend/pkg/logger"
	"assessment_backend/pkg/monitoring"
	"assessment_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB // nil in demo mode
	configCallbacks []func(*config.Config)
}

// repositories are nil in demo mode; every service treats a nil repository as
// "no backend configured".
type repositories struct {
	user        *repository.UserRepository
	role        *repository.RoleRepository
	survey      *repository.SurveyRepository
	question    *repository.QuestionRepository
	testSession *repository.TestSessionRepository
	result      *repository.ResultRepository
	certificate *repository.CertificateRepository
	setting     *repository.SettingRepository
}

type services struct {
	auth        *service.AuthService
	user        *service.UserService
	role        *service.RoleService
	survey      *service.SurveyService
	question    *service.QuestionService
	test        *service.TestService
	dashboard   *service.DashboardService
	certificate *service.CertificateService
	setting     *service.SettingService
	storage     *service.StorageService
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	role        *controller.RoleController
	survey      *controller.SurveyController
	question    *controller.QuestionController
	test        *controller.TestController
	dashboard   *controller.DashboardController
	certificate *controller.CertificateController
	setting     *controller.SettingController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	if db == nil {
		return &repositories{}
	}
	return &repositories{
		user:        repository.NewUserRepository(db),
		role:        repository.NewRoleRepository(db),
		survey:      repository.NewSurveyRepository(db),
		question:    repository.NewQuestionRepository(db),
		testSession: repository.NewTestSessionRepository(db),
		result:      repository.NewResultRepository(db),
		certificate: repository.NewCertificateRepository(db),
		setting:     repository.NewSettingRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		logger.Log.Warn("storage unavailable, certificate downloads will synthesize content", zap.Error(err))
		storage = &service.StorageService{}
	}
	s.storage = storage

	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, cfg)
	s.role = service.NewRoleService(repos.role)
	s.survey = service.NewSurveyService(repos.survey)
	s.question = service.NewQuestionService(repos.question)
	s.test = service.NewTestService(repos.testSession)
	s.dashboard = service.NewDashboardService(repos.user, repos.survey, repos.result)
	s.certificate = service.NewCertificateService(repos.certificate, repos.user, repos.survey, repos.result, storage)
	s.setting = service.NewSettingService(repos.setting)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		user:        controller.NewUserController(s.user),
		role:        controller.NewRoleController(s.role),
		survey:      controller.NewSurveyController(s.survey),
		question:    controller.NewQuestionController(s.question),
		test:        controller.NewTestController(s.test),
		dashboard:   controller.NewDashboardController(s.dashboard),
		certificate: controller.NewCertificateController(s.certificate),
		setting:     controller.NewSettingController(s.setting),
		health:      controller.NewHealthController(db),
	}
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized")

	var db *gorm.DB
	if cfg.Database.Configured() {
		var err error
		db, err = database.InitDB(&cfg.Database)
		if err != nil {
			logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		}
	} else {
		logger.Log.Warn("No database configured, running in demo mode")
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("assessment-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		logger.Log.Info("Config reloaded")
		for _, callback := range app.configCallbacks {
			callback(newCfg)
		}
	})

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

	log.Println("Server exiting")
}

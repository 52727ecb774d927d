package bootstrap

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/akothari/campus-registry/internal/app/controllers"
	appRepos "github.com/akothari/campus-registry/internal/app/repositories"
	appRoutes "github.com/akothari/campus-registry/internal/app/routes"
	appServices "github.com/akothari/campus-registry/internal/app/services"
	"github.com/akothari/campus-registry/internal/config"
	appMiddleware "github.com/akothari/campus-registry/internal/middleware"
	"github.com/akothari/campus-registry/internal/pkg/logger"
	"github.com/akothari/campus-registry/internal/pkg/validation"
	"github.com/akothari/campus-registry/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AddressRepo    *appRepos.AddressRepository
	PersonRepo     *appRepos.PersonRepository
	CourseRepo     *appRepos.CourseRepository
	AddressService *appServices.AddressService
	PersonService  *appServices.PersonService
	CourseService  *appServices.CourseService

	HealthController  *appControllers.HealthController
	AddressController *appControllers.AddressController
	PersonController  *appControllers.PersonController
	CourseController  *appControllers.CourseController

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", "configs/config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
// Stores are constructed here and injected; there is no ambient state, so
// tests can build an isolated dependency graph the same way.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	addressRepo := appRepos.NewAddressRepository()
	personRepo := appRepos.NewPersonRepository()
	courseRepo := appRepos.NewCourseRepository()

	addressService := appServices.NewAddressService(addressRepo)
	personService := appServices.NewPersonService(personRepo)
	courseService := appServices.NewCourseService(courseRepo)

	deps := &Dependencies{
		AddressRepo:    addressRepo,
		PersonRepo:     personRepo,
		CourseRepo:     courseRepo,
		AddressService: addressService,
		PersonService:  personService,
		CourseService:  courseService,

		HealthController:  appControllers.NewHealthController(),
		AddressController: appControllers.NewAddressController(addressService),
		PersonController:  appControllers.NewPersonController(personService),
		CourseController:  appControllers.NewCourseController(courseService),

		Logger: lgr,
	}

	if cfg.Server.SeedDemoData {
		if err := seed.CreateDemoData(context.Background(), addressService, personService, courseService, lgr); err != nil {
			// A failed seed is not fatal; the API is usable either way
			lgr.Error().Err(err).Msg("Failed to seed demo data, proceeding anyway...")
		}
	}

	return deps, nil
}

// RegisterValidators attaches custom validation rules to gin's binding engine.
func RegisterValidators() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return validation.RegisterCustomRules(v)
	}
	return nil
}

// SetupRouter builds the gin engine with middleware and the route table.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(
		router,
		deps.HealthController,
		deps.AddressController,
		deps.PersonController,
		deps.CourseController,
	)

	return router
}

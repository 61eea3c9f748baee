package main

import (
	"context"
	"net/http"

	"lodelfer/cmd/internal/config"
	"lodelfer/cmd/internal/domain/sqlite"
	"lodelfer/cmd/internal/domain/sqlite/repository"
	"lodelfer/cmd/internal/integration/google/sheets"
	"lodelfer/cmd/internal/routes"
	"lodelfer/cmd/internal/service"
	"lodelfer/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	validate := validator.New()
	registerValidators(validate)

	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration: ", err)
	}

	apptStore, err := buildStore(cfg)
	if err != nil {
		log.Fatal("failed to initialize appointment store: ", err)
	}

	// Services
	sessionService := service.NewSessionService(cfg.AdminPassword, []byte(cfg.SessionSecret), validate)
	apptService := service.NewAppointmentService(apptStore, validate, cfg.BusinessName, cfg.Services)

	// Routes
	sessionRoutes := routes.NewSessionDefault(sessionService)
	apptRoutes := routes.NewAppointmentDefault(apptService, sessionService)
	configRoutes := routes.NewConfigDefault(cfg.BusinessName, cfg.AccentColor)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())

	// Session
	e.POST("/api/session", sessionRoutes.Login)
	e.DELETE("/api/session", sessionRoutes.Logout)

	// Appointments
	e.GET("/api/appointments", apptRoutes.GetAgenda)
	e.POST("/api/appointments", apptRoutes.CreateAppointment)
	e.DELETE("/api/appointments/past", apptRoutes.PurgePast)
	e.GET("/api/services", apptRoutes.GetServices)

	// UI shell constants
	e.GET("/api/config", configRoutes.GetConfig)

	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	log.Infof("%s agenda listening on %s (backend: %s)", cfg.BusinessName, cfg.Addr, cfg.Backend)
	if err := e.Start(cfg.Addr); err != nil {
		e.Logger.Fatal(err)
	}
}

func buildStore(cfg *config.Config) (service.AppointmentStore, error) {
	if !cfg.UsesSheet() {
		db, err := sqlite.Init(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return repository.NewAppointmentRepository(db), nil
	}

	client, err := sheets.NewClient(context.Background(), cfg.CredentialsFile, cfg.SpreadsheetID, cfg.SheetRange)
	if err != nil {
		return nil, err
	}

	if cfg.Backend == config.BackendSheetVersioned {
		return sheets.NewVersionedStore(client), nil
	}
	return sheets.NewStore(client), nil
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("isodate", validators.IsISODate)
	_ = validate.RegisterValidation("clocktime", validators.IsClockTime)
}

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"verification/cmd"
	httpadapter "verification/internal/adapters/in/http"
	"verification/internal/adapters/out/postgres/observationrepo"
	"verification/internal/adapters/out/postgres/orderrepo"
	"verification/internal/adapters/out/postgres/reportrepo"
	"verification/internal/adapters/out/postgres/verifierrepo"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.DocumentDTO{},
		&observationrepo.ObservationDTO{},
		&reportrepo.ReportDTO{},
		&reportrepo.ReferenceDTO{},
		&verifierrepo.VerifierDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Validator = httpadapter.NewCustomValidator()
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateOrderRequestCommandHandler(),
		app.CreateAssignVerifierCommandHandler(),
		app.CreateStartVisitCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateCreateObservationCommandHandler(),
		app.CreateUpdateObservationStatusCommandHandler(),
		app.CreateUpdateReportCommandHandler(),
		app.CreateUpdateLandlordInterviewCommandHandler(),
		app.CreateCreateVerifierCommandHandler(),
		app.CreateGetOrderSummariesQueryHandler(),
		app.CreateGetReportSummariesQueryHandler(),
		app.CreateGetAssignedOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"foodorder/cmd"
	httpin "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/jobs"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)

	ctx := context.Background()
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := postgres.Seed(ctx, gormDB, configs.ManagerPassword); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	advanceHandler := app.CreateAdvanceOrderCommandHandler()
	jobManager := jobs.NewJobManager(
		&advanceHandler,
		app.CreateGetPendingOrdersQueryHandler(),
		configs.OrderTransitionInterval,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, jobManager, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	interval, err := time.ParseDuration(goDotEnvVariableOr("ORDER_TRANSITION_INTERVAL", "1m"))
	if err != nil {
		log.Fatalf("Invalid ORDER_TRANSITION_INTERVAL: %v", err)
	}

	return cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		ManagerPassword:         goDotEnvVariableOr("MANAGER_PASSWORD", "mngr"),
		OrderTransitionInterval: interval,
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvVariableOr(key, fallback string) string {
	if value := goDotEnvVariable(key); value != "" {
		return value
	}
	return fallback
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBPort, configs.DBSslMode,
	)

	// TranslateError maps the unique constraint violation on usernames to
	// gorm.ErrDuplicatedKey, which the user repository relies on
	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func startWebServer(app cmd.CompositionRoot, jobManager *jobs.JobManager, port string) {
	server := httpin.NewServer(
		httpin.NewSessionStore(),
		app.CreateRegisterUserCommandHandler(),
		app.CreateCreateOrderCommandHandler(jobManager.Scheduler()),
		app.CreateAuthenticateUserQueryHandler(),
		app.CreateGetMenuQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetUserOrdersQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetAllAgentsQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"livehaul/cmd"
	httpadapter "livehaul/internal/adapters/in/http"
	"livehaul/internal/adapters/out/postgres/carrierrepo"
	"livehaul/internal/adapters/out/postgres/loadrepo"
	"livehaul/internal/adapters/out/postgres/paymentrepo"
	"livehaul/internal/adapters/out/postgres/triprepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)
	mustMigrate(gormDB)

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
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		CommissionRatePct:       mustParseFloat("COMMISSION_RATE_PCT"),
		FundingReminderSchedule: goDotEnvVariable("FUNDING_REMINDER_SCHEDULE"),
		FundingGracePeriod:      mustParseDuration("FUNDING_GRACE_PERIOD"),
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

func mustParseFloat(key string) float64 {
	value, err := strconv.ParseFloat(goDotEnvVariable(key), 64)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func mustParseDuration(key string) time.Duration {
	value, err := time.ParseDuration(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

// mustOpenDB opens the database through lib/pq rather than gorm's default
// driver so postgres error codes classify the same way everywhere.
func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	gormDB, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&loadrepo.LoadDTO{},
		&triprepo.TripDTO{},
		&triprepo.RestStopDTO{},
		&triprepo.PreTripCheckDTO{},
		&triprepo.EpodDTO{},
		&triprepo.ExpenseDTO{},
		&paymentrepo.PaymentDTO{},
		&paymentrepo.DisputeDTO{},
		&carrierrepo.HaulerDTO{},
		&carrierrepo.TruckDTO{},
		&carrierrepo.DriverDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateAssignLoadCommandHandler(),
		app.CreateTransitionTripStatusCommandHandler(),
		app.CreateCapturePreTripCheckCommandHandler(),
		app.CreateCaptureEpodCommandHandler(),
		app.CreateRecordExpenseCommandHandler(),
		app.CreateFundPaymentCommandHandler(),
		app.CreateOpenDisputeCommandHandler(),
		app.CreateResolveDisputeCommandHandler(),
		app.CreateGetPaymentQueryHandler(),
		app.CreateGetOpenLoadsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hoang-le-edu/smart-logistics-sub000/cmd"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/adapters/out/postgres"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config := getConfig(logger)

	db, err := openDatabase(config)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err = postgres.Migrate(db); err != nil {
		logger.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	root, err := cmd.NewCompositionRoot(config, db, logger)
	if err != nil {
		logger.Error("composition root failed", "error", err)
		os.Exit(1)
	}

	if err = root.SeedAdmin(context.Background(), config.SeedAdminAddress); err != nil {
		logger.Error("admin seeding failed", "error", err)
		os.Exit(1)
	}

	jobManager := root.CreateJobManager(config.SweepSchedule)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("job startup failed", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(root, config.HTTPPort)
}

func getConfig(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("no .env file, using environment variables")
	}

	return cmd.Config{
		HTTPPort:         envOr("HTTP_PORT", "8080"),
		DBHost:           envOr("DB_HOST", "localhost"),
		DBPort:           envOr("DB_PORT", "5432"),
		DBUser:           envOr("DB_USER", "postgres"),
		DBPassword:       envOr("DB_PASSWORD", "postgres"),
		DBName:           envOr("DB_NAME", "logistics"),
		DBSslMode:        envOr("DB_SSLMODE", "disable"),
		KafkaHost:        os.Getenv("KAFKA_HOST"),
		KafkaEventsTopic: envOr("KAFKA_EVENTS_TOPIC", "logistics.events"),
		VaultAddress:     envOr("ESCROW_VAULT_ADDRESS", "escrow-vault"),
		PayoutAddress:    envOr("ESCROW_PAYOUT_ADDRESS", "carrier-payout"),
		EscrowTTLHours:   envIntOr("ESCROW_TTL_HOURS", 72),
		SweepSchedule:    envOr("ESCROW_SWEEP_SCHEDULE", "0 * * * * *"),
		SeedAdminAddress: os.Getenv("SEED_ADMIN_ADDRESS"),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser,
		config.DBPassword, config.DBName, config.DBSslMode)

	return gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	root.CreateServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

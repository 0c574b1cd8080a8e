package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"

	"travelorders/cmd"
	_ "travelorders/docs"
	httpadapter "travelorders/internal/adapters/in/http"
	"travelorders/internal/adapters/out/postgres/auditrepo"
	"travelorders/internal/adapters/out/postgres/notificationrepo"
	"travelorders/internal/adapters/out/postgres/orderrepo"
	"travelorders/internal/adapters/out/postgres/statusrepo"
	"travelorders/internal/adapters/out/postgres/userdir"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/status"
	"travelorders/internal/jobs"
	"travelorders/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)
	if err := prepareDatabase(gormDB); err != nil {
		log.Fatalf("Failed to prepare database: %v", err)
	}

	root := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(root.CreateRelayNotificationsCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

// prepareDatabase migrates the schema and seeds the built-in statuses that
// the lifecycle depends on.
func prepareDatabase(db *gorm.DB) error {
	err := db.AutoMigrate(
		&userdir.UserDTO{},
		&statusrepo.StatusDTO{},
		&orderrepo.OrderDTO{},
		&notificationrepo.NotificationDTO{},
		&auditrepo.EntryDTO{},
	)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	ctx := context.Background()
	repo := statusrepo.NewGormStatusRepository(db)
	for _, name := range status.BuiltInNames() {
		_, err = repo.GetByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return fmt.Errorf("seed statuses: %w", err)
		}

		builtIn, restoreErr := status.RestoreStatus(kernel.NewUUID(), name, false)
		if restoreErr != nil {
			return fmt.Errorf("seed statuses: %w", restoreErr)
		}
		if addErr := repo.Add(ctx, builtIn); addErr != nil {
			return fmt.Errorf("seed statuses: %w", addErr)
		}
	}

	return nil
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpadapter.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateUpdateOrderCommandHandler(),
		root.CreateChangeOrderStatusCommandHandler(),
		root.CreateDeleteOrderCommandHandler(),
		root.CreateCreateOrderStatusCommandHandler(),
		root.CreateDeleteOrderStatusCommandHandler(),
		root.CreateMarkNotificationReadCommandHandler(),
		root.CreateMarkAllNotificationsReadCommandHandler(),
		root.CreateDeleteNotificationCommandHandler(),
		root.CreateDeleteAllNotificationsCommandHandler(),
		root.CreateListOrdersQueryHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateListOrderStatusesQueryHandler(),
		root.CreateListNotificationsQueryHandler(),
		root.CreateUnreadNotificationCountQueryHandler(),
		root.CreateListAuditEntriesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

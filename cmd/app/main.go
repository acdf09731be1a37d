package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"winetrade/cmd"
	winehttp "winetrade/internal/adapters/in/http"
	"winetrade/internal/adapters/out/postgres/importcaserepo"
	"winetrade/internal/adapters/out/postgres/offerrepo"
	"winetrade/internal/adapters/out/postgres/orderrepo"
	"winetrade/internal/adapters/out/postgres/registry"
	"winetrade/internal/adapters/out/postgres/requestrepo"
	"winetrade/internal/jobs"
	"winetrade/internal/obs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := obs.NewLogger(slog.LevelInfo)
	slog.SetDefault(logger)

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(app.CreateExpireOffersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
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
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&requestrepo.RequestDTO{},
		&offerrepo.OfferDTO{},
		&offerrepo.OfferLineDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&orderrepo.OrderEventDTO{},
		&importcaserepo.ImportCaseDTO{},
		&importcaserepo.ImportCaseEventDTO{},
		&importcaserepo.SupplierImportDTO{},
		&importcaserepo.CaseSupplierImportDTO{},
		&registry.SupplierDTO{},
		&registry.DeliveryLocationDTO{},
		&registry.DocumentTypeDTO{},
		&registry.DocumentVerificationDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	server := winehttp.NewServer(
		app.CreateCreateRequestCommandHandler(),
		app.CreateSetRequestStatusCommandHandler(),
		app.CreateCreateOfferCommandHandler(),
		app.CreateSetOfferStatusCommandHandler(),
		app.CreateAcceptOfferCommandHandler(),
		app.CreateSetOrderStatusCommandHandler(),
		app.CreateConfirmOrderCommandHandler(),
		app.CreateDeclineOrderCommandHandler(),
		app.CreateCreateImportCaseForOrderCommandHandler(),
		app.CreateCreateImportCaseCommandHandler(),
		app.CreateSetImportCaseStatusCommandHandler(),
		app.CreateAttachSupplierImportCommandHandler(),
		app.CreateGetImportCaseQueryHandler(),
		app.CreateGetDocumentRequirementsQueryHandler(),
		app.CreateCanTransitionQueryHandler(),
		app.CreateGetLinkedSupplierImportsQueryHandler(),
		app.CreateGetOrderEventsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

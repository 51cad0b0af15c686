package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tlemaire/crm-perso-api/internal/application/auth"
	appdevis "github.com/tlemaire/crm-perso-api/internal/application/devis"
	"github.com/tlemaire/crm-perso-api/internal/application/usecase"
	infrapdf "github.com/tlemaire/crm-perso-api/internal/infrastructure/pdf"
	"github.com/tlemaire/crm-perso-api/internal/infrastructure/postgres"
	httpRouter "github.com/tlemaire/crm-perso-api/internal/interfaces/http"
	"github.com/tlemaire/crm-perso-api/pkg/config"
	"github.com/tlemaire/crm-perso-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("chargement de la configuration : " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	devisRepo := postgres.NewDevisRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	clientUC := usecase.NewClientUseCase(clientRepo, devisRepo, txRunner)
	serviceUC := usecase.NewServiceUseCase(serviceRepo)
	devisUC := appdevis.NewUseCase(clientRepo, serviceRepo, devisRepo, txRunner)

	pdfGenerator := infrapdf.NewMarotoDevisGenerator()
	exportUC := appdevis.NewExportUseCase(devisRepo, clientRepo, pdfGenerator)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // le rendu PDF peut dépasser 10s sur les gros devis
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local : http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM Perso API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:  clientUC,
		ServiceUC: serviceUC,
		DevisUC:   devisUC,
		ExportUC:  exportUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP arrêté")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}

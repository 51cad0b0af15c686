package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tlemaire/crm-perso-api/internal/application/auth"
	appdevis "github.com/tlemaire/crm-perso-api/internal/application/devis"
	"github.com/tlemaire/crm-perso-api/internal/application/usecase"
)

// RouterDeps dépendances du router.
type RouterDeps struct {
	ClientUC  *usecase.ClientUseCase
	ServiceUC *usecase.ServiceUseCase
	DevisUC   *appdevis.UseCase
	ExportUC  *appdevis.ExportUseCase
	AuthUC    *auth.UseCase
	JWTSecret string
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Routes protégées (Bearer Token requis)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/profile", authHandler.Profile)

	// Clients (protégé)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Catalogue de prestations (protégé)
	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Post("/", serviceHandler.Create)
	services.Get("/", serviceHandler.List)
	services.Get("/:id", serviceHandler.GetByID)
	services.Put("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Delete)

	// Devis (protégé)
	devisGroup := protected.Group("/devis")
	devisHandler := NewDevisHandler(deps.DevisUC, deps.ExportUC)
	devisGroup.Post("/", devisHandler.Create)
	devisGroup.Get("/", devisHandler.List)
	devisGroup.Get("/:id", devisHandler.GetByID)
	devisGroup.Put("/:id", devisHandler.Update)
	devisGroup.Delete("/:id", devisHandler.Delete)
	devisGroup.Get("/:id/pdf", devisHandler.DownloadPDF)
}

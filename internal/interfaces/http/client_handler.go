package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tlemaire/crm-perso-api/internal/application/dto"
	"github.com/tlemaire/crm-perso-api/internal/application/usecase"
)

// ClientHandler gère les requêtes HTTP du registre clients (protégé).
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construit le handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return corpsInvalide(c, err)
	}
	client, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return rendreErreur(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// List GET /api/clients?recherche=&page=1&limit=10
func (h *ClientHandler) List(c *fiber.Ctx) error {
	p, err := dto.ParsePagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		return rendreErreur(c, err)
	}
	list, err := h.uc.List(c.UserContext(), c.Query("recherche"), p)
	if err != nil {
		return rendreErreur(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/clients/:id
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	client, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return rendreErreur(c, err)
	}
	return c.JSON(client)
}

// Update PUT /api/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return corpsInvalide(c, err)
	}
	client, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return rendreErreur(c, err)
	}
	return c.JSON(client)
}

// Delete DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return rendreErreur(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

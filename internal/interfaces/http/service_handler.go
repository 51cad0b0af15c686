package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tlemaire/crm-perso-api/internal/application/dto"
	"github.com/tlemaire/crm-perso-api/internal/application/usecase"
)

// ServiceHandler gère les requêtes HTTP du catalogue de prestations (protégé).
type ServiceHandler struct {
	uc *usecase.ServiceUseCase
}

// NewServiceHandler construit le handler.
func NewServiceHandler(uc *usecase.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// Create POST /api/services
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return corpsInvalide(c, err)
	}
	service, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return rendreErreur(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// List GET /api/services?recherche=&categorie=&page=1&limit=10
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	p, err := dto.ParsePagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		return rendreErreur(c, err)
	}
	list, err := h.uc.List(c.UserContext(), c.Query("recherche"), c.Query("categorie"), p)
	if err != nil {
		return rendreErreur(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/services/:id
func (h *ServiceHandler) GetByID(c *fiber.Ctx) error {
	service, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return rendreErreur(c, err)
	}
	return c.JSON(service)
}

// Update PUT /api/services/:id
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return corpsInvalide(c, err)
	}
	service, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return rendreErreur(c, err)
	}
	return c.JSON(service)
}

// Delete DELETE /api/services/:id
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return rendreErreur(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

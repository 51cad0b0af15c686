package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	appdevis "github.com/tlemaire/crm-perso-api/internal/application/devis"
	"github.com/tlemaire/crm-perso-api/internal/application/dto"
	"github.com/tlemaire/crm-perso-api/internal/domain"
	"github.com/tlemaire/crm-perso-api/internal/domain/repository"
)

// Format des paramètres dateDebut et dateFin.
const formatDate = "2006-01-02"

// DevisHandler gère les requêtes HTTP des devis (protégé).
type DevisHandler struct {
	uc     *appdevis.UseCase
	export *appdevis.ExportUseCase
}

// NewDevisHandler construit le handler.
func NewDevisHandler(uc *appdevis.UseCase, export *appdevis.ExportUseCase) *DevisHandler {
	return &DevisHandler{uc: uc, export: export}
}

// Create POST /api/devis
func (h *DevisHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDevisRequest
	if err := c.BodyParser(&in); err != nil {
		return corpsInvalide(c, err)
	}
	d, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return rendreErreur(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(d)
}

// List GET /api/devis?recherche=&clientId=&statut=&dateDebut=&dateFin=&page=1&limit=10
func (h *DevisHandler) List(c *fiber.Ctx) error {
	p, err := dto.ParsePagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		return rendreErreur(c, err)
	}
	filtre := repository.DevisFiltre{
		Recherche: c.Query("recherche"),
		ClientID:  c.Query("clientId"),
		Statut:    c.Query("statut"),
	}
	if filtre.DateDebut, err = parseDate(c.Query("dateDebut"), "dateDebut"); err != nil {
		return rendreErreur(c, err)
	}
	if filtre.DateFin, err = parseDate(c.Query("dateFin"), "dateFin"); err != nil {
		return rendreErreur(c, err)
	}
	list, err := h.uc.List(c.UserContext(), filtre, p)
	if err != nil {
		return rendreErreur(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/devis/:id
func (h *DevisHandler) GetByID(c *fiber.Ctx) error {
	d, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return rendreErreur(c, err)
	}
	return c.JSON(d)
}

// Update PUT /api/devis/:id
func (h *DevisHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDevisRequest
	if err := c.BodyParser(&in); err != nil {
		return corpsInvalide(c, err)
	}
	d, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return rendreErreur(c, err)
	}
	return c.JSON(d)
}

// Delete DELETE /api/devis/:id
func (h *DevisHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return rendreErreur(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadPDF GET /api/devis/:id/pdf
func (h *DevisHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.export.TelechargerPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return rendreErreur(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}

// parseDate parse un paramètre de date optionnel au format AAAA-MM-JJ.
func parseDate(value, param string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(formatDate, value)
	if err != nil {
		return nil, fmt.Errorf("%w: paramètre %s invalide: %q (format attendu %s)", domain.ErrValidation, param, value, formatDate)
	}
	return &t, nil
}

package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tlemaire/crm-perso-api/internal/application/dto"
	"github.com/tlemaire/crm-perso-api/internal/domain"
)

// corpsInvalide traduit un échec de décodage du corps (JSON malformé, type
// inattendu, montant non numérique) en erreur de validation : même code
// VALIDATION que les contrôles métier.
func corpsInvalide(c *fiber.Ctx, err error) error {
	return rendreErreur(c, fmt.Errorf("%w: corps de requête invalide: %v", domain.ErrValidation, err))
}

// rendreErreur traduit les erreurs sentinelles du domaine en réponses HTTP.
// Tout ce qui n'est pas reconnu part en 500 INTERNAL.
func rendreErreur(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrIntrouvable):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrConflitReferentiel):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLIT_REFERENTIEL", Message: err.Error()})
	case errors.Is(err, domain.ErrDevisImmuable):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DEVIS_IMMUABLE", Message: err.Error()})
	case errors.Is(err, domain.ErrEtatInvalide):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ETAT_INVALIDE", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailDejaUtilise):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_DEJA_UTILISE", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplique):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLIQUE", Message: err.Error()})
	case errors.Is(err, domain.ErrNonAutorise):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

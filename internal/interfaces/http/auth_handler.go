package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tlemaire/crm-perso-api/internal/application/auth"
	"github.com/tlemaire/crm-perso-api/internal/application/dto"
)

// AuthHandler gère les requêtes HTTP d'authentification.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construit le handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return corpsInvalide(c, err)
	}
	resp, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return rendreErreur(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return corpsInvalide(c, err)
	}
	resp, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return rendreErreur(c, err)
	}
	return c.JSON(resp)
}

// Profile GET /api/auth/profile (protégé)
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token invalide"})
	}
	resp, err := h.uc.Profile(c.UserContext(), userID)
	if err != nil {
		return rendreErreur(c, err)
	}
	return c.JSON(resp)
}

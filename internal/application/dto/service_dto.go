package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateServiceRequest corps de création d'une prestation du catalogue.
// PrixHT accepte un nombre JSON ou une chaîne numérique ("500.00") ; tout
// autre contenu fait échouer le décodage.
type CreateServiceRequest struct {
	Titre       string           `json:"titre"`
	Description string           `json:"description"`
	PrixHT      *decimal.Decimal `json:"prixHT"`
	Categorie   string           `json:"categorie"`
}

// UpdateServiceRequest mise à jour partielle (nil = champ non modifié).
type UpdateServiceRequest struct {
	Titre       *string          `json:"titre"`
	Description *string          `json:"description"`
	PrixHT      *decimal.Decimal `json:"prixHT"`
	Categorie   *string          `json:"categorie"`
}

// ServiceResponse représentation wire d'une prestation.
type ServiceResponse struct {
	ID          string          `json:"id"`
	Titre       string          `json:"titre"`
	Description string          `json:"description,omitempty"`
	PrixHT      decimal.Decimal `json:"prixHT"`
	Categorie   string          `json:"categorie,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ServiceListResponse page de prestations.
type ServiceListResponse struct {
	Services   []*ServiceResponse `json:"services"`
	Pagination PageResponse       `json:"pagination"`
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateClientRequest corps de création d'un client. Seul nom est requis.
type CreateClientRequest struct {
	Nom       string `json:"nom"`
	Societe   string `json:"societe"`
	Adresse   string `json:"adresse"`
	Telephone string `json:"telephone"`
	Email     string `json:"email"`
	Notes     string `json:"notes"`
}

// UpdateClientRequest mise à jour partielle : un champ absent (nil) est
// conservé tel quel, un champ présent écrase la valeur, même vide.
type UpdateClientRequest struct {
	Nom       *string `json:"nom"`
	Societe   *string `json:"societe"`
	Adresse   *string `json:"adresse"`
	Telephone *string `json:"telephone"`
	Email     *string `json:"email"`
	Notes     *string `json:"notes"`
}

// ClientResponse représentation wire d'un client. Devis n'est rempli que sur
// la fiche détaillée (GET /api/clients/:id).
type ClientResponse struct {
	ID        string                 `json:"id"`
	Nom       string                 `json:"nom"`
	Societe   string                 `json:"societe,omitempty"`
	Adresse   string                 `json:"adresse,omitempty"`
	Telephone string                 `json:"telephone,omitempty"`
	Email     string                 `json:"email,omitempty"`
	Notes     string                 `json:"notes,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
	Devis     []*DevisResumeResponse `json:"devis,omitempty"`
}

// DevisResumeResponse résumé d'un devis associé à un client.
type DevisResumeResponse struct {
	ID        string          `json:"id"`
	Reference string          `json:"reference"`
	TotalHT   decimal.Decimal `json:"totalHT"`
	TotalTTC  decimal.Decimal `json:"totalTTC"`
	Statut    string          `json:"statut"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ClientListResponse page de clients.
type ClientListResponse struct {
	Clients    []*ClientResponse `json:"clients"`
	Pagination PageResponse      `json:"pagination"`
}

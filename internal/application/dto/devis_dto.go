package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tlemaire/crm-perso-api/internal/domain/entity"
)

// LigneDevisRequest ligne de devis fournie par l'appelant. Description et
// PrixUnitaireHT peuvent être omis quand ServiceID est fourni : ils sont
// alors copiés depuis le catalogue.
type LigneDevisRequest struct {
	ServiceID      string           `json:"serviceId"`
	Description    string           `json:"description"`
	Quantite       int              `json:"quantite"`
	PrixUnitaireHT *decimal.Decimal `json:"prixUnitaireHT"`
}

// OptionDevisRequest supplément optionnel affiché sur le devis.
type OptionDevisRequest struct {
	Description string          `json:"description"`
	Prix        decimal.Decimal `json:"prix"`
}

// CreateDevisRequest corps de création d'un devis.
type CreateDevisRequest struct {
	ClientID     string               `json:"clientId"`
	Description  string               `json:"description"`
	Items        []LigneDevisRequest  `json:"items"`
	Conditions   string               `json:"conditions"`
	DateValidite *time.Time           `json:"dateValidite"`
	TVA          *decimal.Decimal     `json:"tva"`
	Options      []OptionDevisRequest `json:"options"`
}

// UpdateDevisRequest mise à jour partielle d'un devis (nil = non modifié).
// Si Items ou TVA est fourni, les totaux sont recalculés.
type UpdateDevisRequest struct {
	Description  *string              `json:"description"`
	Items        []LigneDevisRequest  `json:"items"`
	Conditions   *string              `json:"conditions"`
	DateValidite *time.Time           `json:"dateValidite"`
	TVA          *decimal.Decimal     `json:"tva"`
	Options      []OptionDevisRequest `json:"options"`
	Statut       *string              `json:"statut"`
}

// ClientResumeResponse résumé client dénormalisé dans les réponses devis.
// Les listes ne portent que nom et société ; la fiche détaillée ajoute les
// coordonnées.
type ClientResumeResponse struct {
	Nom       string `json:"nom"`
	Societe   string `json:"societe,omitempty"`
	Adresse   string `json:"adresse,omitempty"`
	Telephone string `json:"telephone,omitempty"`
	Email     string `json:"email,omitempty"`
}

// DevisResponse représentation wire d'un devis complet.
type DevisResponse struct {
	ID           string                `json:"id"`
	Reference    string                `json:"reference"`
	ClientID     string                `json:"clientId"`
	Client       *ClientResumeResponse `json:"client,omitempty"`
	Description  string                `json:"description,omitempty"`
	Items        []entity.LigneDevis   `json:"items"`
	Conditions   string                `json:"conditions,omitempty"`
	DateValidite *time.Time            `json:"dateValidite,omitempty"`
	TVA          decimal.Decimal       `json:"tva"`
	TotalHT      decimal.Decimal       `json:"totalHT"`
	TotalTTC     decimal.Decimal       `json:"totalTTC"`
	Statut       string                `json:"statut"`
	Options      []entity.OptionDevis  `json:"options,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// DevisListResponse page de devis.
type DevisListResponse struct {
	Devis      []*DevisResponse `json:"devis"`
	Pagination PageResponse     `json:"pagination"`
}

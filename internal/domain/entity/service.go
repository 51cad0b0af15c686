package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service représente une prestation réutilisable du catalogue, utilisable
// comme modèle de ligne de devis. Titre et prix HT sont obligatoires.
type Service struct {
	ID          string
	Titre       string
	Description string
	PrixHT      decimal.Decimal // prix unitaire hors taxes, jamais négatif
	Categorie   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

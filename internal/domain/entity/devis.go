package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuts de devis (valeurs wire, sensibles à la casse et accentuées).
// FACTURÉ est terminal : un devis facturé n'est plus modifiable ni supprimable.
const (
	StatutBrouillon = "BROUILLON"
	StatutEnvoye    = "ENVOYÉ"
	StatutAccepte   = "ACCEPTÉ"
	StatutRefuse    = "REFUSÉ"
	StatutFacture   = "FACTURÉ"
)

// StatutValide vérifie l'appartenance à l'énumération des statuts.
func StatutValide(s string) bool {
	switch s {
	case StatutBrouillon, StatutEnvoye, StatutAccepte, StatutRefuse, StatutFacture:
		return true
	}
	return false
}

// TVADefaut taux de TVA (en pourcentage) appliqué quand aucun n'est fourni.
var TVADefaut = decimal.NewFromInt(20)

// LigneDevis est une ligne de prestation d'un devis. Les lignes sont
// dénormalisées : la description et le prix sont copiés depuis le catalogue à
// l'écriture, une modification ultérieure du service ne touche pas le devis.
type LigneDevis struct {
	ServiceID      string          `json:"serviceId,omitempty"`
	Description    string          `json:"description"`
	Quantite       int             `json:"quantite"`
	PrixUnitaireHT decimal.Decimal `json:"prixUnitaireHT"`
}

// TotalHT retourne le total hors taxes de la ligne (quantité × prix unitaire).
func (l LigneDevis) TotalHT() decimal.Decimal {
	return l.PrixUnitaireHT.Mul(decimal.NewFromInt(int64(l.Quantite)))
}

// OptionDevis est un supplément optionnel présenté sur le devis, hors totaux.
type OptionDevis struct {
	Description string          `json:"description"`
	Prix        decimal.Decimal `json:"prix"`
}

// Devis représente un devis envoyé à un client. La référence est générée une
// seule fois à la création et n'est jamais régénérée ; les totaux sont
// recalculés à chaque modification des lignes ou du taux de TVA.
type Devis struct {
	ID           string
	Reference    string
	ClientID     string
	Description  string
	Items        []LigneDevis
	Conditions   string
	DateValidite *time.Time
	TVA          decimal.Decimal // pourcentage
	TotalHT      decimal.Decimal
	TotalTTC     decimal.Decimal
	Statut       string
	Options      []OptionDevis
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CalculerTotaux recalcule TotalHT et TotalTTC à partir des lignes et du taux
// de TVA courant. totalTTC = totalHT × (1 + tva/100).
func (d *Devis) CalculerTotaux() {
	totalHT := decimal.Zero
	for _, l := range d.Items {
		totalHT = totalHT.Add(l.TotalHT())
	}
	d.TotalHT = totalHT
	d.TotalTTC = totalHT.Mul(decimal.NewFromInt(1).Add(d.TVA.Div(decimal.NewFromInt(100))))
}

// DevisResume est le résumé d'un devis attaché à la fiche d'un client.
type DevisResume struct {
	ID        string
	Reference string
	TotalHT   decimal.Decimal
	TotalTTC  decimal.Decimal
	Statut    string
	CreatedAt time.Time
}

// DevisAvecClient est une ligne de listing : le devis plus le résumé
// dénormalisé de son client.
type DevisAvecClient struct {
	Devis
	ClientNom     string
	ClientSociete string
}

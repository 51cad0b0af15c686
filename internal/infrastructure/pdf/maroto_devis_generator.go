// Package pdf implémente le rendu PDF d'un devis avec Maroto v2.
//
// Layout de la page A4 (ordre fixe) :
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  DEVIS (titre centré)                                       │
//	│  Référence / Date / Date de validité                        │
//	│  CLIENT : nom, société, adresse, tél, email                 │
//	│  DESCRIPTION DU PROJET                                      │
//	│  TABLE : Description | Réf. | Qté | PU HT | Total HT        │
//	│  TOTAUX : Total HT / TVA / Total TTC                        │
//	│  OPTIONS / SUPPLÉMENTS (si présents)                        │
//	│  CONDITIONS DE PAIEMENT (si présentes)                      │
//	│  Mention légale (pied de page)                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appdevis "github.com/tlemaire/crm-perso-api/internal/application/devis"
	"github.com/tlemaire/crm-perso-api/internal/domain"
	"github.com/tlemaire/crm-perso-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const mentionLegale = "Ce devis est valable pour la durée spécifiée à compter de sa date d'émission."

var _ appdevis.PDFGenerator = (*MarotoDevisGenerator)(nil)

// MarotoDevisGenerator implémente devis.PDFGenerator avec Maroto v2.
type MarotoDevisGenerator struct{}

// NewMarotoDevisGenerator construit le générateur.
func NewMarotoDevisGenerator() *MarotoDevisGenerator { return &MarotoDevisGenerator{} }

// GenerateDevisPDF rend le devis et retourne les bytes du document. Fonction
// pure de ses deux entrées. Échoue avec domain.ErrValidation si la référence
// ou le nom du client manquent, domain.ErrRendu si Maroto échoue.
func (g *MarotoDevisGenerator) GenerateDevisPDF(_ context.Context, d *entity.Devis, client *entity.Client) ([]byte, error) {
	if d.Reference == "" {
		return nil, fmt.Errorf("%w: référence du devis manquante", domain.ErrValidation)
	}
	if client.Nom == "" {
		return nil, fmt.Errorf("%w: nom du client manquant", domain.ErrValidation)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Devis "+d.Reference, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titreRow())
	m.AddRows(enteteRow(d))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRows(client)...)
	if d.Description != "" {
		m.AddRows(descriptionRows(d.Description)...)
	}

	m.AddRows(sectionRow("Détail des prestations :"))
	m.AddRows(tableEnteteRow())
	for _, item := range d.Items {
		m.AddRows(ligneRow(item))
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totauxRow(d))

	if len(d.Options) > 0 {
		m.AddRows(optionsRows(d.Options)...)
	}
	if d.Conditions != "" {
		m.AddRows(conditionsRows(d.Conditions)...)
	}

	m.AddRows(row.New(8))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New(mentionLegale, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRendu, err)
	}
	return doc.GetBytes(), nil
}

// titreRow : « DEVIS » centré.
func titreRow() core.Row {
	return row.New(14).Add(col.New(12).Add(
		text.New("DEVIS", props.Text{
			Style: fontstyle.Bold, Size: 20, Align: align.Center, Color: colorPrimary, Top: 2,
		}),
	))
}

// enteteRow : référence, date d'émission et date de validité.
func enteteRow(d *entity.Devis) core.Row {
	validite := "-"
	if d.DateValidite != nil {
		validite = d.DateValidite.Format("02/01/2006")
	}
	return row.New(16).Add(col.New(12).Add(
		text.New("Référence : "+d.Reference, props.Text{Size: 10, Top: 1}),
		text.New("Date : "+d.CreatedAt.Format("02/01/2006"), props.Text{Size: 10, Top: 6}),
		text.New("Date de validité : "+validite, props.Text{Size: 10, Top: 11}),
	))
}

// clientRows : bloc des coordonnées du client.
func clientRows(c *entity.Client) []core.Row {
	lignes := []string{c.Nom}
	if c.Societe != "" {
		lignes = append(lignes, c.Societe)
	}
	if c.Adresse != "" {
		lignes = append(lignes, c.Adresse)
	}
	if c.Telephone != "" {
		lignes = append(lignes, "Tél : "+c.Telephone)
	}
	if c.Email != "" {
		lignes = append(lignes, "Email : "+c.Email)
	}

	rows := []core.Row{sectionRow("Client :")}
	for _, l := range lignes {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(l, props.Text{Size: 10, Top: 0.5}),
		)))
	}
	return rows
}

// descriptionRows : bloc de description du projet.
func descriptionRows(description string) []core.Row {
	return []core.Row{
		sectionRow("Description du projet :"),
		row.New(10).Add(col.New(12).Add(
			text.New(description, props.Text{Size: 10, Top: 0.5}),
		)),
	}
}

// sectionRow : titre de section souligné.
func sectionRow(label string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 12, Top: 3, Color: colorPrimary}),
	))
}

// tableEnteteRow : en-tête du tableau des prestations.
func tableEnteteRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a, Top: 1,
		}))
	}
	return row.New(7).Add(
		h("Description", 5, align.Left),
		h("Réf.", 2, align.Center),
		h("Quantité", 1, align.Center),
		h("Prix unitaire HT", 2, align.Right),
		h("Total HT", 2, align.Right),
	)
}

// ligneRow : une ligne de prestation, montants à deux décimales suffixés €.
// Hauteur fixe par ligne ; le saut de page est délégué au moteur de rendu.
func ligneRow(item entity.LigneDevis) core.Row {
	ref := ""
	if item.ServiceID != "" {
		ref = "(Catalogue)"
	}
	return row.New(6).Add(
		col.New(5).Add(text.New(item.Description, props.Text{Size: 9, Align: align.Left, Top: 1})),
		col.New(2).Add(text.New(ref, props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", item.Quantite), props.Text{Size: 9, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(euros(item.PrixUnitaireHT), props.Text{Size: 9, Align: align.Right, Top: 1})),
		col.New(2).Add(text.New(euros(item.TotalHT()), props.Text{Size: 9, Align: align.Right, Top: 1})),
	)
}

// totauxRow : total HT, montant de TVA (TTC − HT) et total TTC.
func totauxRow(d *entity.Devis) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: top, Right: 2})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 10, Align: align.Right, Top: top})
	}
	tvaMontant := d.TotalTTC.Sub(d.TotalHT)
	return row.New(18).Add(
		col.New(7),
		col.New(3).Add(
			label("Total HT :", 1),
			label(fmt.Sprintf("TVA (%s%%) :", d.TVA.String()), 6),
			label("Total TTC :", 11),
		),
		col.New(2).Add(
			value(euros(d.TotalHT), 1),
			value(euros(tvaMontant), 6),
			value(euros(d.TotalTTC), 11),
		),
	)
}

// optionsRows : bloc des options/suppléments hors totaux.
func optionsRows(options []entity.OptionDevis) []core.Row {
	rows := []core.Row{sectionRow("Options / Suppléments :")}
	for _, o := range options {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("- %s : %s HT", o.Description, euros(o.Prix)), props.Text{Size: 9, Top: 0.5}),
		)))
	}
	return rows
}

// conditionsRows : bloc des conditions de paiement.
func conditionsRows(conditions string) []core.Row {
	return []core.Row{
		sectionRow("Conditions de paiement :"),
		row.New(8).Add(col.New(12).Add(
			text.New(conditions, props.Text{Size: 10, Top: 0.5}),
		)),
	}
}

// euros formate un montant à deux décimales avec le suffixe €.
func euros(m decimal.Decimal) string {
	return m.StringFixed(2) + " €"
}

package entity

import "time"

// Client représente un client du CRM. Seul le nom est obligatoire.
// Un client référencé par au moins un devis ne peut pas être supprimé.
type Client struct {
	ID        string
	Nom       string
	Societe   string
	Adresse   string
	Telephone string
	Email     string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package entity

import "time"

// User représente l'utilisateur de l'application (accès à l'API).
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, jamais le mot de passe en clair
	Nom          string
	Prenom       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

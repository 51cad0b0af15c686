package dto

// RegisterRequest corps d'inscription.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nom      string `json:"nom"`
	Prenom   string `json:"prenom"`
}

// LoginRequest corps de connexion.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse profil utilisateur (jamais de hash dans les réponses).
type UserResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
}

// LoginResponse token + profil retournés au login et à l'inscription.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tlemaire/crm-perso-api/internal/application/dto"
	"github.com/tlemaire/crm-perso-api/internal/domain"
	"github.com/tlemaire/crm-perso-api/internal/domain/entity"
	"github.com/tlemaire/crm-perso-api/internal/domain/repository"
	"github.com/tlemaire/crm-perso-api/pkg/jwt"
)

// JWTConfig configuration de génération des tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase cas d'usage d'authentification : inscription, connexion, profil.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewUseCase construit le cas d'usage d'auth.
func NewUseCase(users repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg}
}

// VerifierMotDePasse compare un hash bcrypt stocké et un mot de passe
// candidat. Fonction dédiée appelée explicitement par la couche appelante :
// aucun comportement n'est attaché aux enregistrements chargés.
func VerifierMotDePasse(hash, candidat string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidat))
}

// Register crée un utilisateur (hash bcrypt) et retourne token + profil.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email et mot de passe sont requis", domain.ErrValidation)
	}
	existing, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailDejaUtilise
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Nom:          in.Nom,
		Prenom:       in.Prenom,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.reponseAvecToken(user)
}

// Login vérifie email/mot de passe et retourne token + profil. Le même refus
// est renvoyé que l'email soit inconnu ou le mot de passe faux.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: email ou mot de passe incorrect", domain.ErrNonAutorise)
	}
	if err := VerifierMotDePasse(user.PasswordHash, in.Password); err != nil {
		return nil, fmt.Errorf("%w: email ou mot de passe incorrect", domain.ErrNonAutorise)
	}
	return uc.reponseAvecToken(user)
}

// Profile retourne le profil de l'utilisateur authentifié.
func (uc *UseCase) Profile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: utilisateur %s", domain.ErrIntrouvable, userID)
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (uc *UseCase) reponseAvecToken(user *entity.User) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:     u.ID,
		Email:  u.Email,
		Nom:    u.Nom,
		Prenom: u.Prenom,
	}
}

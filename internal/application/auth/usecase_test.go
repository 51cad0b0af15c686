package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlemaire/crm-perso-api/internal/application/auth"
	"github.com/tlemaire/crm-perso-api/internal/application/dto"
	"github.com/tlemaire/crm-perso-api/internal/domain"
	"github.com/tlemaire/crm-perso-api/internal/domain/entity"
)

type fauxUsers struct {
	parID    map[string]*entity.User
	parEmail map[string]*entity.User
}

func newFauxUsers() *fauxUsers {
	return &fauxUsers{parID: map[string]*entity.User{}, parEmail: map[string]*entity.User{}}
}

func (f *fauxUsers) Create(_ context.Context, u *entity.User) error {
	if _, ok := f.parEmail[u.Email]; ok {
		return domain.ErrEmailDejaUtilise
	}
	f.parID[u.ID] = u
	f.parEmail[u.Email] = u
	return nil
}

func (f *fauxUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.parID[id], nil
}

func (f *fauxUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.parEmail[email], nil
}

func newAuthUseCase() (*auth.UseCase, *fauxUsers) {
	users := newFauxUsers()
	uc := auth.NewUseCase(users, auth.JWTConfig{
		Secret:     "secret-de-test",
		ExpMinutes: 60,
		Issuer:     "crm-perso-test",
	})
	return uc, users
}

func TestRegister_Succes(t *testing.T) {
	uc, users := newAuthUseCase()

	resp, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "thomas@exemple.fr",
		Password: "motdepasse",
		Nom:      "Lemaire",
		Prenom:   "Thomas",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token, "un token doit être émis à l'inscription")
	assert.Equal(t, "thomas@exemple.fr", resp.User.Email)

	// Le mot de passe est stocké hashé, jamais en clair.
	stocke := users.parEmail["thomas@exemple.fr"]
	require.NotNil(t, stocke)
	assert.NotEqual(t, "motdepasse", stocke.PasswordHash)
	assert.NoError(t, auth.VerifierMotDePasse(stocke.PasswordHash, "motdepasse"))
}

func TestRegister_ChampsRequis(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.fr"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Password: "x"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegister_EmailDejaUtilise(t *testing.T) {
	uc, _ := newAuthUseCase()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.fr", Password: "x"})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.fr", Password: "y"})
	assert.ErrorIs(t, err, domain.ErrEmailDejaUtilise)
}

func TestLogin_Succes(t *testing.T) {
	uc, _ := newAuthUseCase()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.fr", Password: "motdepasse"})
	require.NoError(t, err)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.fr", Password: "motdepasse"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

// Email inconnu et mot de passe faux produisent le même refus : pas d'indice
// sur l'existence d'un compte.
func TestLogin_MemeRefusPourEmailEtMotDePasse(t *testing.T) {
	uc, _ := newAuthUseCase()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.fr", Password: "motdepasse"})
	require.NoError(t, err)

	_, errEmail := uc.Login(context.Background(), dto.LoginRequest{Email: "inconnu@b.fr", Password: "motdepasse"})
	_, errMdp := uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.fr", Password: "faux"})

	assert.ErrorIs(t, errEmail, domain.ErrNonAutorise)
	assert.ErrorIs(t, errMdp, domain.ErrNonAutorise)
	assert.Equal(t, errEmail.Error(), errMdp.Error(), "les deux refus doivent être indistinguables")
}

func TestProfile(t *testing.T) {
	uc, _ := newAuthUseCase()
	resp, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.fr", Password: "x", Nom: "Lemaire"})
	require.NoError(t, err)

	profil, err := uc.Profile(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lemaire", profil.Nom)

	_, err = uc.Profile(context.Background(), "inconnu")
	assert.ErrorIs(t, err, domain.ErrIntrouvable)
}

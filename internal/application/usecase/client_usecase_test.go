package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlemaire/crm-perso-api/internal/application/dto"
	"github.com/tlemaire/crm-perso-api/internal/application/usecase"
	"github.com/tlemaire/crm-perso-api/internal/domain"
	"github.com/tlemaire/crm-perso-api/internal/domain/entity"
	"github.com/tlemaire/crm-perso-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Doubles en mémoire
// ──────────────────────────────────────────────────────────────────────────────

type fauxClients struct {
	parID map[string]*entity.Client
}

func newFauxClients() *fauxClients { return &fauxClients{parID: map[string]*entity.Client{}} }

func (f *fauxClients) Create(_ context.Context, c *entity.Client) error {
	f.parID[c.ID] = c
	return nil
}

func (f *fauxClients) GetByID(_ context.Context, id string) (*entity.Client, error) {
	return f.parID[id], nil
}

func (f *fauxClients) List(_ context.Context, _ string, _, _ int) ([]*entity.Client, int, error) {
	out := make([]*entity.Client, 0, len(f.parID))
	for _, c := range f.parID {
		out = append(out, c)
	}
	return out, len(out), nil
}

func (f *fauxClients) Update(_ context.Context, c *entity.Client) error {
	f.parID[c.ID] = c
	return nil
}

func (f *fauxClients) Delete(_ context.Context, id string) error {
	delete(f.parID, id)
	return nil
}

// fauxDevis ne sert ici qu'à compter et résumer les devis d'un client.
type fauxDevis struct {
	parClient map[string][]*entity.DevisResume
}

func newFauxDevis() *fauxDevis { return &fauxDevis{parClient: map[string][]*entity.DevisResume{}} }

func (f *fauxDevis) Create(context.Context, *entity.Devis) error { return nil }
func (f *fauxDevis) GetByID(context.Context, string) (*entity.Devis, error) {
	return nil, nil
}
func (f *fauxDevis) GetByIDForUpdate(context.Context, string) (*entity.Devis, error) {
	return nil, nil
}
func (f *fauxDevis) List(context.Context, repository.DevisFiltre, int, int) ([]*entity.DevisAvecClient, int, error) {
	return nil, 0, nil
}
func (f *fauxDevis) Update(context.Context, *entity.Devis) error { return nil }
func (f *fauxDevis) Delete(context.Context, string) error        { return nil }

func (f *fauxDevis) CountByClient(_ context.Context, clientID string) (int, error) {
	return len(f.parClient[clientID]), nil
}

func (f *fauxDevis) ResumesByClient(_ context.Context, clientID string) ([]*entity.DevisResume, error) {
	return f.parClient[clientID], nil
}

type fauxTx struct {
	clients *fauxClients
	devis   *fauxDevis
}

func (f *fauxTx) Run(_ context.Context, fn func(
	clients repository.ClientRepository,
	services repository.ServiceRepository,
	devis repository.DevisRepository,
) error) error {
	return fn(f.clients, nil, f.devis)
}

func newClientFixture() (*usecase.ClientUseCase, *fauxClients, *fauxDevis) {
	clients := newFauxClients()
	devis := newFauxDevis()
	tx := &fauxTx{clients: clients, devis: devis}
	return usecase.NewClientUseCase(clients, devis, tx), clients, devis
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestClientCreate_NomRequis(t *testing.T) {
	uc, _, _ := newClientFixture()

	_, err := uc.Create(context.Background(), dto.CreateClientRequest{Societe: "Sans Nom SARL"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestClientCreate_Succes(t *testing.T) {
	uc, clients, _ := newClientFixture()

	resp, err := uc.Create(context.Background(), dto.CreateClientRequest{Nom: "Marie Dupont"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Marie Dupont", resp.Nom)
	assert.Len(t, clients.parID, 1)
}

// La fiche client embarque le résumé de ses devis.
func TestClientGet_AvecResumesDevis(t *testing.T) {
	uc, clients, devis := newClientFixture()
	client := &entity.Client{ID: "c-1", Nom: "Marie Dupont"}
	require.NoError(t, clients.Create(context.Background(), client))
	devis.parClient["c-1"] = []*entity.DevisResume{
		{ID: "d-1", Reference: "DEV-20260831-001", TotalHT: decimal.NewFromInt(200), TotalTTC: decimal.NewFromInt(240), Statut: entity.StatutBrouillon},
	}

	resp, err := uc.Get(context.Background(), "c-1")
	require.NoError(t, err)
	require.Len(t, resp.Devis, 1)
	assert.Equal(t, "DEV-20260831-001", resp.Devis[0].Reference)
}

// Mise à jour partielle : un champ absent est conservé, un champ présent mais
// vide écrase la valeur.
func TestClientUpdate_PresentAbsentExplicite(t *testing.T) {
	uc, clients, _ := newClientFixture()
	require.NoError(t, clients.Create(context.Background(), &entity.Client{
		ID: "c-1", Nom: "Marie Dupont", Societe: "Dupont SAS", Notes: "fidèle",
	}))

	vide := ""
	resp, err := uc.Update(context.Background(), "c-1", dto.UpdateClientRequest{Societe: &vide})
	require.NoError(t, err)

	assert.Equal(t, "Marie Dupont", resp.Nom, "un champ absent ne doit pas bouger")
	assert.Equal(t, "", resp.Societe, "un champ présent et vide doit écraser la valeur")
	assert.Equal(t, "fidèle", resp.Notes)
}

func TestClientUpdate_NomNonVidable(t *testing.T) {
	uc, clients, _ := newClientFixture()
	require.NoError(t, clients.Create(context.Background(), &entity.Client{ID: "c-1", Nom: "Marie Dupont"}))

	vide := ""
	_, err := uc.Update(context.Background(), "c-1", dto.UpdateClientRequest{Nom: &vide})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// Un client avec des devis ne se supprime pas : conflit référentiel explicite.
func TestClientDelete_AvecDevisAssocies(t *testing.T) {
	uc, clients, devis := newClientFixture()
	require.NoError(t, clients.Create(context.Background(), &entity.Client{ID: "c-1", Nom: "Marie Dupont"}))
	devis.parClient["c-1"] = []*entity.DevisResume{{ID: "d-1"}}

	err := uc.Delete(context.Background(), "c-1")
	assert.ErrorIs(t, err, domain.ErrConflitReferentiel)
	assert.Len(t, clients.parID, 1, "le client doit rester en base")
}

func TestClientDelete_SansDevis(t *testing.T) {
	uc, clients, _ := newClientFixture()
	require.NoError(t, clients.Create(context.Background(), &entity.Client{ID: "c-1", Nom: "Marie Dupont"}))

	require.NoError(t, uc.Delete(context.Background(), "c-1"))
	assert.Empty(t, clients.parID)
}

func TestClientDelete_Introuvable(t *testing.T) {
	uc, _, _ := newClientFixture()

	err := uc.Delete(context.Background(), "inconnu")
	assert.ErrorIs(t, err, domain.ErrIntrouvable)
}

package domain

import "errors"

// Erreurs de domaine (sans dépendances externes). Les adaptateurs les
// wrappent avec du contexte (%w) ; les handlers les mappent en codes HTTP.
var (
	ErrIntrouvable        = errors.New("ressource introuvable")
	ErrValidation         = errors.New("entrée invalide")
	ErrConflitReferentiel = errors.New("suppression bloquée par des enregistrements liés")
	ErrDevisImmuable      = errors.New("un devis facturé ne peut plus être modifié")
	ErrEtatInvalide       = errors.New("opération interdite dans l'état actuel")
	ErrRendu              = errors.New("échec de génération du document")
	ErrDuplique           = errors.New("ressource dupliquée")
	ErrNonAutorise        = errors.New("non autorisé")
	ErrEmailDejaUtilise   = errors.New("un utilisateur avec cet email existe déjà")
)

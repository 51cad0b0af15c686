package postgres

import (
	"errors"
	"strings"
	"unicode"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// isUniqueViolation vérifie si une erreur est une violation de contrainte
// unique (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// isForeignKeyViolation vérifie si une erreur est une violation de clé
// étrangère (23503) : insertion vers une ligne absente ou suppression d'une
// ligne encore référencée.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

var enleveDiacritiques = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// sansAccents retire les diacritiques d'un motif de recherche. Combiné à
// unaccent() côté SQL, la recherche devient insensible aux accents
// ("deploiement" trouve "Déploiement").
func sansAccents(s string) string {
	out, _, err := transform.String(enleveDiacritiques, s)
	if err != nil {
		return s
	}
	return out
}

// motifILIKE construit le motif partiel pour un ILIKE, accents retirés.
func motifILIKE(recherche string) string {
	return "%" + sansAccents(strings.TrimSpace(recherche)) + "%"
}

package dto

import (
	"fmt"
	"strconv"

	"github.com/tlemaire/crm-perso-api/internal/domain"
)

// Pagination paramètres de page pour les listings (page démarre à 1).
type Pagination struct {
	Page  int
	Limit int
}

// ParsePagination parse page/limit depuis la query string. Les valeurs vides
// prennent les défauts (page=1, limit=10) ; tout contenu non numérique est
// rejeté explicitement au lieu de propager une valeur corrompue.
func ParsePagination(pageStr, limitStr string) (Pagination, error) {
	p := Pagination{Page: 1, Limit: 10}
	if pageStr != "" {
		n, err := strconv.Atoi(pageStr)
		if err != nil || n < 1 {
			return p, fmt.Errorf("%w: paramètre page invalide: %q", domain.ErrValidation, pageStr)
		}
		p.Page = n
	}
	if limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			return p, fmt.Errorf("%w: paramètre limit invalide: %q", domain.ErrValidation, limitStr)
		}
		p.Limit = n
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	return p, nil
}

// Offset retourne le décalage SQL correspondant à la page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageResponse métadonnées de pagination des réponses de liste.
type PageResponse struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// NewPageResponse calcule le nombre de pages à partir du total.
func NewPageResponse(total int, p Pagination) PageResponse {
	pages := 0
	if p.Limit > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return PageResponse{Total: total, Page: p.Page, Pages: pages}
}

// ErrorResponse corps d'erreur HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

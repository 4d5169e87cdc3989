// internal/workers/schemes/search-schemes/models.go
package searchschemes

import "github.com/vaibhavisingh876/SwarSaathi/internal/models"

// Input is a free-text catalog query. An empty query returns the whole
// catalog.
type Input struct {
	Query string `json:"query"`
}

type Output struct {
	Query   string          `json:"query"`
	Total   int             `json:"total"`
	Schemes []models.Scheme `json:"schemes"`
}

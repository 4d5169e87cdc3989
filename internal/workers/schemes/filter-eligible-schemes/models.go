// internal/workers/schemes/filter-eligible-schemes/models.go
package filtereligibleschemes

import "github.com/vaibhavisingh876/SwarSaathi/internal/models"

// Input is a partial user profile plus an optional free-text query to
// narrow the candidate set before eligibility is applied. Every absent
// profile field is non-restrictive.
type Input struct {
	Query   string             `json:"query,omitempty"`
	Profile models.UserProfile `json:"profile"`
}

type Output struct {
	Total   int             `json:"total"`
	Schemes []models.Scheme `json:"schemes"`
}

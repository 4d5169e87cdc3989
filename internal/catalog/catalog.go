// Package catalog holds the read-only scheme catalog and its query
// operations: free-text search and deterministic eligibility filtering.
// All invariants are enforced at load time; queries never raise.
package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/vaibhavisingh876/SwarSaathi/internal/models"
)

// Catalog is an immutable, ordered set of schemes. It may be shared
// across any number of concurrent sessions without synchronization.
type Catalog struct {
	schemes []models.Scheme
}

var ceilingAmountPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ParseIncomeCeiling derives a machine ceiling from a display string
// like "₹3 lakh annually". The unit is inferred solely from the
// substring "lakh"; display text without a leading amount yields nil.
func ParseIncomeCeiling(display string) *models.IncomeCeiling {
	cleaned := strings.NewReplacer("₹", "", ",", "").Replace(display)
	m := ceilingAmountPattern.FindString(cleaned)
	if m == "" {
		return nil
	}
	amount, err := strconv.ParseFloat(m, 64)
	if err != nil || amount <= 0 {
		return nil
	}
	unit := models.UnitAbsolute
	if strings.Contains(strings.ToLower(cleaned), "lakh") {
		unit = models.UnitLakh
	}
	return &models.IncomeCeiling{Amount: amount, Unit: unit}
}

// New validates every record and returns an immutable catalog.
// A violated invariant fails the load, never a later query.
func New(schemes []models.Scheme) (*Catalog, error) {
	seen := make(map[string]bool, len(schemes))
	out := make([]models.Scheme, 0, len(schemes))

	for i, s := range schemes {
		if err := validateRecord(s); err != nil {
			return nil, fmt.Errorf("scheme %d (%s): %w", i, s.ID, err)
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("scheme %d: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = true

		if s.Gender == "" {
			s.Gender = models.GenderAny
		}
		s.Ceiling = ParseIncomeCeiling(s.IncomeLimit)
		out = append(out, s)
	}

	return &Catalog{schemes: out}, nil
}

func validateRecord(s models.Scheme) error {
	if s.ID == "" {
		return fmt.Errorf("id is required")
	}
	if s.Name.Hindi == "" || s.Name.English == "" {
		return fmt.Errorf("both name variants are required")
	}

	switch s.Scope {
	case models.ScopeNational:
		if s.Region != "" {
			return fmt.Errorf("region %q set on a national scheme", s.Region)
		}
	case models.ScopeRegional:
		if s.Region == "" {
			return fmt.Errorf("regional scheme without a region")
		}
	default:
		return fmt.Errorf("scope must be %q or %q, got %q", models.ScopeNational, models.ScopeRegional, s.Scope)
	}

	switch s.Gender {
	case "", models.GenderAny, models.GenderMale, models.GenderFemale:
	default:
		return fmt.Errorf("unknown target gender %q", s.Gender)
	}

	// Ceilings in units other than rupees or lakh are outside the
	// supported grammar; refuse them instead of guessing a multiplier.
	lowerLimit := strings.ToLower(s.IncomeLimit)
	if strings.Contains(lowerLimit, "crore") || strings.Contains(lowerLimit, "thousand") {
		return fmt.Errorf("income limit %q uses an unsupported unit", s.IncomeLimit)
	}

	return nil
}

// Len returns the number of schemes in the catalog.
func (c *Catalog) Len() int {
	return len(c.schemes)
}

// All returns every scheme in catalog order.
func (c *Catalog) All() []models.Scheme {
	out := make([]models.Scheme, len(c.schemes))
	copy(out, c.schemes)
	return out
}

// Search returns the schemes whose search terms, name variants, or
// description variants contain the lowercased query as a substring.
// Results keep catalog order; an empty query returns the whole catalog.
func (c *Catalog) Search(query string) []models.Scheme {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.All()
	}

	out := make([]models.Scheme, 0)
	for _, s := range c.schemes {
		if recordMatches(s, q) {
			out = append(out, s)
		}
	}
	return out
}

func recordMatches(s models.Scheme, q string) bool {
	for _, kw := range s.Keywords {
		if strings.Contains(strings.ToLower(kw), q) {
			return true
		}
	}
	if strings.Contains(strings.ToLower(s.Name.English), q) ||
		strings.Contains(strings.ToLower(s.Name.Hindi), q) {
		return true
	}
	if strings.Contains(strings.ToLower(s.Description.English), q) ||
		strings.Contains(strings.ToLower(s.Description.Hindi), q) {
		return true
	}
	return false
}

// FilterEligible retains the schemes the profile qualifies for. An
// absent profile field is never restrictive; an absent scheme
// constraint never excludes.
func (c *Catalog) FilterEligible(profile models.UserProfile) []models.Scheme {
	return FilterEligible(c.schemes, profile)
}

// FilterEligible is the composable form over any result set.
func FilterEligible(schemes []models.Scheme, profile models.UserProfile) []models.Scheme {
	out := make([]models.Scheme, 0, len(schemes))
	for _, s := range schemes {
		if eligible(s, profile) {
			out = append(out, s)
		}
	}
	return out
}

func eligible(s models.Scheme, profile models.UserProfile) bool {
	if s.Gender != "" && s.Gender != models.GenderAny &&
		profile.Gender != "" && s.Gender != profile.Gender {
		return false
	}

	if s.Scope == models.ScopeRegional && s.Region != "" &&
		profile.Region != "" && s.Region != profile.Region {
		return false
	}

	if s.Ceiling != nil && profile.Income != nil &&
		*profile.Income > s.Ceiling.AbsoluteAmount() {
		return false
	}

	return true
}

// FilterByCategory retains schemes with the given sponsoring category.
func FilterByCategory(schemes []models.Scheme, category string) []models.Scheme {
	out := make([]models.Scheme, 0, len(schemes))
	for _, s := range schemes {
		if strings.EqualFold(s.Category, category) {
			out = append(out, s)
		}
	}
	return out
}

// FilterByGender retains schemes targeted at the given gender or at
// everyone.
func FilterByGender(schemes []models.Scheme, gender models.Gender) []models.Scheme {
	out := make([]models.Scheme, 0, len(schemes))
	for _, s := range schemes {
		if s.Gender == "" || s.Gender == models.GenderAny || s.Gender == gender {
			out = append(out, s)
		}
	}
	return out
}

// FilterByRegion retains national schemes plus the ones for the given
// region.
func FilterByRegion(schemes []models.Scheme, region string) []models.Scheme {
	out := make([]models.Scheme, 0, len(schemes))
	for _, s := range schemes {
		if s.Scope == models.ScopeNational || s.Region == "" || s.Region == region {
			out = append(out, s)
		}
	}
	return out
}

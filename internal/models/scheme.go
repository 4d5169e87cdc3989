// internal/models/scheme.go
package models

// LocalizedText holds the two language variants of a display string.
type LocalizedText struct {
	Hindi   string `json:"hi"`
	English string `json:"en"`
}

// LocalizedList holds the two language variants of an ordered string list.
type LocalizedList struct {
	Hindi   []string `json:"hi"`
	English []string `json:"en"`
}

// SchemeScope tells whether a scheme applies nationwide or to one region.
type SchemeScope string

const (
	ScopeNational SchemeScope = "national"
	ScopeRegional SchemeScope = "regional"
)

// Gender is the target gender of a scheme or the declared gender of a profile.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderAny    Gender = "all"
)

// CeilingUnit is the unit an income ceiling amount is expressed in.
type CeilingUnit string

const (
	UnitAbsolute CeilingUnit = "absolute"
	UnitLakh     CeilingUnit = "lakh"
)

// IncomeCeiling is the machine-readable form of a scheme's income limit,
// parsed from its display text at catalog load time.
type IncomeCeiling struct {
	Amount float64     `json:"amount"`
	Unit   CeilingUnit `json:"unit"`
}

// AbsoluteAmount returns the ceiling as an absolute rupee figure.
func (c IncomeCeiling) AbsoluteAmount() float64 {
	if c.Unit == UnitLakh {
		return c.Amount * 100000
	}
	return c.Amount
}

// Scheme is one government assistance program record.
// The catalog is read-only for the lifetime of the process.
type Scheme struct {
	ID             string        `json:"id"`
	Name           LocalizedText `json:"name"`
	Description    LocalizedText `json:"description"`
	Eligibility    LocalizedList `json:"eligibility"`
	Benefits       LocalizedText `json:"benefits"`
	Documents      LocalizedList `json:"documents"`
	ApplicationURL string        `json:"applicationUrl"`
	Category       string        `json:"category"` // "central" or "state"
	Sponsor        string        `json:"sponsor,omitempty"`
	Scope          SchemeScope   `json:"scope"`
	Region         string        `json:"region,omitempty"`
	AgeGroup       string        `json:"ageGroup,omitempty"`
	IncomeLimit    string        `json:"incomeLimit,omitempty"` // display text, e.g. "₹3 lakh annually"
	Gender         Gender        `json:"gender"`
	Keywords       []string      `json:"keywords"`

	// Ceiling is derived from IncomeLimit at load time; nil when the
	// display text carries no parseable amount.
	Ceiling *IncomeCeiling `json:"-"`
}

// UserProfile is the ephemeral query input for eligibility filtering.
// Every field is optional; absence never excludes a record.
type UserProfile struct {
	Age      *int     `json:"age,omitempty"`
	Gender   Gender   `json:"gender,omitempty"`
	Region   string   `json:"region,omitempty"`
	Income   *float64 `json:"income,omitempty"`
	Category string   `json:"category,omitempty"`
}

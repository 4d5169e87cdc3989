// internal/workers/form/extract-field-entity/models.go
package extractfieldentity

// Input carries one transcribed utterance plus the optional field the
// form collaborator last prompted for.
type Input struct {
	Text        string `json:"utteranceText"`
	Language    string `json:"languageTag"`      // "hi" or "en"
	TargetField string `json:"targetFieldHint"`  // may be empty
}

// Extraction is the single (field, value) pair produced for an
// utterance. Concept names the pattern that matched; "genericCapture"
// marks the field-hint fallback.
type Extraction struct {
	Field   string `json:"field"`
	Value   string `json:"value"`
	Concept string `json:"concept"`
}

// Output reports the extraction outcome. Matched=false is a normal
// result, not an error.
type Output struct {
	Matched    bool        `json:"extractionMatched"`
	Extraction *Extraction `json:"extraction,omitempty"`
}

// Form field keys. Closed enumeration shared with the form collaborator.
const (
	FieldFullName       = "fullName"
	FieldAge            = "age"
	FieldGender         = "gender"
	FieldState          = "state"
	FieldDistrict       = "district"
	FieldPincode        = "pincode"
	FieldMobileNumber   = "mobileNumber"
	FieldEmail          = "email"
	FieldMonthlyIncome  = "monthlyIncome"
	FieldCategory       = "category"
	FieldAadhaarNumber  = "aadhaarNumber"
	FieldAdditionalInfo = "additionalInfo"
)

const ConceptGenericCapture = "genericCapture"

var validFields = map[string]bool{
	FieldFullName:       true,
	FieldAge:            true,
	FieldGender:         true,
	FieldState:          true,
	FieldDistrict:       true,
	FieldPincode:        true,
	FieldMobileNumber:   true,
	FieldEmail:          true,
	FieldMonthlyIncome:  true,
	FieldCategory:       true,
	FieldAadhaarNumber:  true,
	FieldAdditionalInfo: true,
}

// Package lexicon holds the static bilingual trigger-phrase sets, payload
// patterns, and the state gazetteer that drive extraction and intent
// classification. Matching is deterministic: lowercased substring
// containment plus fixed regexes, no tokenization or stemming.
package lexicon

import (
	"regexp"
	"strings"
)

// Concept is an abstract recognizable meaning in an utterance, distinct
// from the form field it may populate.
type Concept string

const (
	ConceptPersonName   Concept = "personName"
	ConceptAgeValue     Concept = "ageValue"
	ConceptIncomeValue  Concept = "incomeValue"
	ConceptGenderMale   Concept = "genderMale"
	ConceptGenderFemale Concept = "genderFemale"
	ConceptPhoneNumber  Concept = "phoneNumber"
	ConceptStateName    Concept = "stateName"

	ConceptGreeting        Concept = "greeting"
	ConceptThanks          Concept = "thanks"
	ConceptSchemeTopic     Concept = "schemeTopic"
	ConceptApplicationHelp Concept = "applicationHelp"
	ConceptEligibilityAge  Concept = "eligibilityAge"
	ConceptEligibilityInc  Concept = "eligibilityIncome"
)

// ExtractionOrder is the fixed priority order of concepts evaluated by
// the extraction engine; first match wins.
var ExtractionOrder = []Concept{
	ConceptPersonName,
	ConceptAgeValue,
	ConceptIncomeValue,
	ConceptGenderMale,
	ConceptGenderFemale,
	ConceptPhoneNumber,
	ConceptStateName,
}

// triggers maps each concept to its bilingual trigger-phrase set.
// Phrases are matched by lowercased containment, except the English
// gender words which require word boundaries ("female" contains "male").
var triggers = map[Concept][]string{
	ConceptPersonName:   {"my name is", "मेरा नाम", "नाम है"},
	ConceptAgeValue:     {"years old", "year", "age", "साल", "उम्र", "वर्ष"},
	ConceptIncomeValue:  {"income", "salary", "आय", "कमाई", "वेतन"},
	ConceptGenderMale:   {"पुरुष", "आदमी"},
	ConceptGenderFemale: {"महिला", "औरत"},
	ConceptPhoneNumber:  {"mobile", "phone", "number", "मोबाइल", "फोन", "नंबर"},

	ConceptGreeting:        {"नमस्ते", "hello", "hi", "हैलो"},
	ConceptThanks:          {"धन्यवाद", "thank"},
	ConceptApplicationHelp: {"कैसे", "how", "apply", "आवेदन"},
	ConceptEligibilityInc:  {"आय", "income", "salary", "कमाई"},
	ConceptEligibilityAge:  {"उम्र", "age", "साल", "year"},
}

// Scheme-inquiry triggers and topic sub-branch keywords.
var (
	schemeTriggers  = []string{"योजना", "scheme", "सरकारी", "government"}
	farmerKeywords  = []string{"किसान", "farmer"}
	womenKeywords   = []string{"महिला", "women", "woman"}
	housingKeywords = []string{"आवास", "housing", "घर"}
)

var (
	// NamePattern captures the text following a name trigger phrase.
	NamePattern = regexp.MustCompile(`(?i)(?:my name is|मेरा नाम|नाम है)\s*(.+)`)

	// DigitRunPattern finds the first run of digits.
	DigitRunPattern = regexp.MustCompile(`\d+`)

	// AmountPattern finds a digit run allowing thousands separators and
	// a decimal fraction.
	AmountPattern = regexp.MustCompile(`\d+(?:,\d{3})*(?:\.\d+)?`)

	// PhonePattern finds an exact 10-digit run.
	PhonePattern = regexp.MustCompile(`\b\d{10}\b`)

	malePattern   = regexp.MustCompile(`(?i)\bmale\b|\bman\b`)
	femalePattern = regexp.MustCompile(`(?i)\bfemale\b|\bwoman\b`)

	sentencePunct = strings.NewReplacer("।", "", ".", "", "|", "", "!", "")
)

// HasTrigger reports whether the utterance contains any trigger phrase
// of the given concept.
func HasTrigger(c Concept, text string) bool {
	lower := strings.ToLower(text)
	switch c {
	case ConceptGenderMale:
		if malePattern.MatchString(text) {
			return true
		}
	case ConceptGenderFemale:
		if femalePattern.MatchString(text) {
			return true
		}
	}
	return containsAny(lower, triggers[c])
}

// HasSchemeTrigger reports whether the utterance asks about schemes.
func HasSchemeTrigger(text string) bool {
	return containsAny(strings.ToLower(text), schemeTriggers)
}

// SchemeTopic returns the scheme topic sub-branch for an utterance that
// already matched the scheme trigger: farmer, women, housing or generic.
func SchemeTopic(text string) string {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, farmerKeywords):
		return "farmer"
	case containsAny(lower, womenKeywords) || femalePattern.MatchString(text):
		return "women"
	case containsAny(lower, housingKeywords):
		return "housing"
	default:
		return "generic"
	}
}

// ExtractName returns the payload of a name utterance with bilingual
// sentence punctuation stripped.
func ExtractName(text string) (string, bool) {
	m := NamePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(sentencePunct.Replace(m[1]))
	// "मेरा नाम X है" leaves the copula after the payload.
	name = strings.TrimSpace(strings.TrimSuffix(name, "है"))
	if name == "" {
		return "", false
	}
	return name, true
}

// FirstDigitRun returns the first run of digits in the utterance.
func FirstDigitRun(text string) (string, bool) {
	m := DigitRunPattern.FindString(text)
	return m, m != ""
}

// FirstAmount returns the first amount-shaped run with thousands
// separators stripped.
func FirstAmount(text string) (string, bool) {
	m := AmountPattern.FindString(text)
	if m == "" {
		return "", false
	}
	return strings.ReplaceAll(m, ",", ""), true
}

// FirstPhoneNumber returns the first exact 10-digit run.
func FirstPhoneNumber(text string) (string, bool) {
	m := PhonePattern.FindString(text)
	return m, m != ""
}

// stateEntry pairs a gazetteer phrase with its canonical state name.
type stateEntry struct {
	phrase    string
	canonical string
}

// States is a finite bilingual gazetteer. Containment of any phrase
// yields the canonical English name.
var states = []stateEntry{
	{"uttar pradesh", "Uttar Pradesh"},
	{"bihar", "Bihar"},
	{"rajasthan", "Rajasthan"},
	{"maharashtra", "Maharashtra"},
	{"gujarat", "Gujarat"},
	{"punjab", "Punjab"},
	{"haryana", "Haryana"},
	{"karnataka", "Karnataka"},
	{"delhi", "Delhi"},
	{"उत्तर प्रदेश", "Uttar Pradesh"},
	{"बिहार", "Bihar"},
	{"राजस्थान", "Rajasthan"},
	{"महाराष्ट्र", "Maharashtra"},
	{"गुजरात", "Gujarat"},
	{"पंजाब", "Punjab"},
	{"हरियाणा", "Haryana"},
	{"कर्नाटक", "Karnataka"},
	{"दिल्ली", "Delhi"},
}

// FindState returns the canonical name of the first gazetteer state
// contained in the utterance.
func FindState(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, s := range states {
		if strings.Contains(lower, s.phrase) {
			return s.canonical, true
		}
	}
	return "", false
}

func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

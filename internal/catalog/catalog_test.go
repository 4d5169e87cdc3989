// internal/catalog/catalog_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaibhavisingh876/SwarSaathi/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func testScheme(id string) models.Scheme {
	return models.Scheme{
		ID: id,
		Name: models.LocalizedText{
			Hindi:   id + " हिंदी",
			English: id + " english",
		},
		Description: models.LocalizedText{
			Hindi:   "विवरण",
			English: "description",
		},
		Category: "central",
		Scope:    models.ScopeNational,
		Keywords: []string{id},
	}
}

func floatPtr(v float64) *float64 { return &v }

// ==========================
// ParseIncomeCeiling
// ==========================

func TestParseIncomeCeiling(t *testing.T) {
	tests := []struct {
		name           string
		display        string
		expectNil      bool
		expectedAmount float64
	}{
		{
			name:           "lakh annually",
			display:        "₹3 lakh annually",
			expectedAmount: 300000,
		},
		{
			name:           "decimal lakh",
			display:        "₹2.5 lakh annually",
			expectedAmount: 250000,
		},
		{
			name:           "eighteen lakh",
			display:        "₹18 lakh annually",
			expectedAmount: 1800000,
		},
		{
			name:           "absolute rupees with commas",
			display:        "₹50,000 monthly",
			expectedAmount: 50000,
		},
		{
			name:      "no amount",
			display:   "No income limit",
			expectNil: true,
		},
		{
			name:      "empty display",
			display:   "",
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ceiling := ParseIncomeCeiling(tt.display)
			if tt.expectNil {
				assert.Nil(t, ceiling)
				return
			}
			require.NotNil(t, ceiling)
			assert.Equal(t, tt.expectedAmount, ceiling.AbsoluteAmount())
		})
	}
}

// ==========================
// Load-Time Validation
// ==========================

func TestNew_Validation(t *testing.T) {
	t.Run("valid catalog", func(t *testing.T) {
		cat, err := New([]models.Scheme{testScheme("a"), testScheme("b")})
		require.NoError(t, err)
		assert.Equal(t, 2, cat.Len())
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		_, err := New([]models.Scheme{testScheme("a"), testScheme("a")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate id")
	})

	t.Run("missing name variant rejected", func(t *testing.T) {
		s := testScheme("a")
		s.Name.English = ""
		_, err := New([]models.Scheme{s})
		assert.Error(t, err)
	})

	t.Run("regional without region rejected", func(t *testing.T) {
		s := testScheme("a")
		s.Scope = models.ScopeRegional
		_, err := New([]models.Scheme{s})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "without a region")
	})

	t.Run("national with region rejected", func(t *testing.T) {
		s := testScheme("a")
		s.Region = "Bihar"
		_, err := New([]models.Scheme{s})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "national")
	})

	t.Run("unknown gender rejected", func(t *testing.T) {
		s := testScheme("a")
		s.Gender = "other"
		_, err := New([]models.Scheme{s})
		assert.Error(t, err)
	})

	t.Run("empty gender defaults to all", func(t *testing.T) {
		cat, err := New([]models.Scheme{testScheme("a")})
		require.NoError(t, err)
		assert.Equal(t, models.GenderAny, cat.All()[0].Gender)
	})

	t.Run("crore ceiling unit rejected", func(t *testing.T) {
		s := testScheme("a")
		s.IncomeLimit = "₹1 crore annually"
		_, err := New([]models.Scheme{s})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported unit")
	})

	t.Run("thousand ceiling unit rejected", func(t *testing.T) {
		s := testScheme("a")
		s.IncomeLimit = "50 thousand monthly"
		_, err := New([]models.Scheme{s})
		assert.Error(t, err)
	})

	t.Run("ceiling derived at load", func(t *testing.T) {
		s := testScheme("a")
		s.IncomeLimit = "₹3 lakh annually"
		cat, err := New([]models.Scheme{s})
		require.NoError(t, err)
		require.NotNil(t, cat.All()[0].Ceiling)
		assert.Equal(t, float64(300000), cat.All()[0].Ceiling.AbsoluteAmount())
	})
}

// ==========================
// Search
// ==========================

func TestCatalog_Search(t *testing.T) {
	farmer := testScheme("pm-kisan")
	farmer.Keywords = []string{"किसान", "farmer", "agriculture"}
	farmer.Name = models.LocalizedText{Hindi: "पीएम किसान", English: "PM Kisan Samman Nidhi"}

	housing := testScheme("awas")
	housing.Keywords = []string{"आवास", "housing", "घर"}
	housing.Name = models.LocalizedText{Hindi: "आवास योजना", English: "PM Awas Yojana"}
	housing.Description = models.LocalizedText{Hindi: "घर के लिए", English: "Affordable housing for all"}

	cat, err := New([]models.Scheme{farmer, housing})
	require.NoError(t, err)

	tests := []struct {
		name        string
		query       string
		expectedIDs []string
	}{
		{"keyword english", "farmer", []string{"pm-kisan"}},
		{"keyword hindi", "किसान", []string{"pm-kisan"}},
		{"name substring", "kisan", []string{"pm-kisan"}},
		{"description substring", "affordable", []string{"awas"}},
		{"case insensitive", "FARMER", []string{"pm-kisan"}},
		{"whitespace trimmed", "  housing  ", []string{"awas"}},
		{"no match", "pension", []string{}},
		{"empty query returns all in order", "", []string{"pm-kisan", "awas"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := cat.Search(tt.query)
			ids := make([]string, 0, len(results))
			for _, s := range results {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

// ==========================
// Eligibility Filter
// ==========================

func TestCatalog_FilterEligible(t *testing.T) {
	open := testScheme("open")

	womenOnly := testScheme("women-only")
	womenOnly.Gender = models.GenderFemale

	upOnly := testScheme("up-only")
	upOnly.Scope = models.ScopeRegional
	upOnly.Region = "Uttar Pradesh"
	upOnly.Category = "state"

	capped := testScheme("capped")
	capped.IncomeLimit = "₹3 lakh annually"

	cat, err := New([]models.Scheme{open, womenOnly, upOnly, capped})
	require.NoError(t, err)

	tests := []struct {
		name        string
		profile     models.UserProfile
		expectedIDs []string
	}{
		{
			name:        "empty profile retains everything",
			profile:     models.UserProfile{},
			expectedIDs: []string{"open", "women-only", "up-only", "capped"},
		},
		{
			name:        "male excluded from women scheme",
			profile:     models.UserProfile{Gender: models.GenderMale},
			expectedIDs: []string{"open", "up-only", "capped"},
		},
		{
			name:        "female retained everywhere",
			profile:     models.UserProfile{Gender: models.GenderFemale},
			expectedIDs: []string{"open", "women-only", "up-only", "capped"},
		},
		{
			name:        "other region excluded from regional scheme",
			profile:     models.UserProfile{Region: "Bihar"},
			expectedIDs: []string{"open", "women-only", "capped"},
		},
		{
			name:        "matching region retained",
			profile:     models.UserProfile{Region: "Uttar Pradesh"},
			expectedIDs: []string{"open", "women-only", "up-only", "capped"},
		},
		{
			name:        "income above ceiling excluded",
			profile:     models.UserProfile{Income: floatPtr(400000)},
			expectedIDs: []string{"open", "women-only", "up-only"},
		},
		{
			name:        "income below ceiling retained",
			profile:     models.UserProfile{Income: floatPtr(250000)},
			expectedIDs: []string{"open", "women-only", "up-only", "capped"},
		},
		{
			name:        "income exactly at ceiling retained",
			profile:     models.UserProfile{Income: floatPtr(300000)},
			expectedIDs: []string{"open", "women-only", "up-only", "capped"},
		},
		{
			name: "conjunctive constraints",
			profile: models.UserProfile{
				Gender: models.GenderMale,
				Region: "Bihar",
				Income: floatPtr(500000),
			},
			expectedIDs: []string{"open"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := cat.FilterEligible(tt.profile)
			ids := make([]string, 0, len(results))
			for _, s := range results {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestFilterHelpers(t *testing.T) {
	central := testScheme("central-one")
	state := testScheme("state-one")
	state.Category = "state"
	state.Scope = models.ScopeRegional
	state.Region = "Karnataka"
	women := testScheme("women-one")
	women.Gender = models.GenderFemale

	cat, err := New([]models.Scheme{central, state, women})
	require.NoError(t, err)
	all := cat.All()

	t.Run("filter by category", func(t *testing.T) {
		results := FilterByCategory(all, "State")
		require.Len(t, results, 1)
		assert.Equal(t, "state-one", results[0].ID)
	})

	t.Run("filter by gender keeps open schemes", func(t *testing.T) {
		results := FilterByGender(all, models.GenderMale)
		ids := []string{results[0].ID, results[1].ID}
		assert.Equal(t, []string{"central-one", "state-one"}, ids)
	})

	t.Run("filter by region keeps national schemes", func(t *testing.T) {
		results := FilterByRegion(all, "Bihar")
		require.Len(t, results, 2)
		assert.Equal(t, "central-one", results[0].ID)
		assert.Equal(t, "women-one", results[1].ID)
	})
}

func TestCatalog_AllIsACopy(t *testing.T) {
	cat, err := New([]models.Scheme{testScheme("a")})
	require.NoError(t, err)

	out := cat.All()
	out[0].ID = "mutated"

	assert.Equal(t, "a", cat.All()[0].ID)
}

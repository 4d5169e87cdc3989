// internal/workers/schemes/filter-eligible-schemes/handler_test.go
package filtereligibleschemes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaibhavisingh876/SwarSaathi/internal/catalog"
	"github.com/vaibhavisingh876/SwarSaathi/internal/common/logger"
	"github.com/vaibhavisingh876/SwarSaathi/internal/models"
)

func createTestHandler(t *testing.T) *Handler {
	cat, err := catalog.LoadEmbedded()
	require.NoError(t, err)

	config := &Config{Timeout: 10 * time.Second}
	return NewHandler(config, cat, logger.NewTestLogger(t))
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func ids(schemes []models.Scheme) []string {
	out := make([]string, 0, len(schemes))
	for _, s := range schemes {
		out = append(out, s.ID)
	}
	return out
}

func TestHandler_Execute_Filter(t *testing.T) {
	handler := createTestHandler(t)
	ctx := context.Background()

	t.Run("empty profile retains whole catalog", func(t *testing.T) {
		output, err := handler.Execute(ctx, &Input{})
		require.NoError(t, err)
		assert.Equal(t, 10, output.Total)
	})

	t.Run("male profile excludes women only schemes", func(t *testing.T) {
		output, err := handler.Execute(ctx, &Input{
			Profile: models.UserProfile{Gender: models.GenderMale},
		})
		require.NoError(t, err)
		assert.NotContains(t, ids(output.Schemes), "beti-bachao-beti-padhao")
		assert.NotContains(t, ids(output.Schemes), "sukanya-samriddhi-yojana")
		assert.Contains(t, ids(output.Schemes), "pm-kisan")
	})

	t.Run("region filters regional schemes only", func(t *testing.T) {
		output, err := handler.Execute(ctx, &Input{
			Profile: models.UserProfile{Region: "Karnataka"},
		})
		require.NoError(t, err)
		assert.Contains(t, ids(output.Schemes), "karnataka-anna-bhagya")
		assert.NotContains(t, ids(output.Schemes), "up-kanya-sumangala")
		// National schemes are never excluded by region.
		assert.Contains(t, ids(output.Schemes), "pm-kisan")
	})

	t.Run("income above lakh ceiling excluded", func(t *testing.T) {
		output, err := handler.Execute(ctx, &Input{
			Profile: models.UserProfile{Income: floatPtr(2000000)},
		})
		require.NoError(t, err)
		// ₹18 lakh ceiling
		assert.NotContains(t, ids(output.Schemes), "pradhan-mantri-awas-yojana")
		// no ceiling at all
		assert.Contains(t, ids(output.Schemes), "pm-kisan")
	})

	t.Run("income below all ceilings retained", func(t *testing.T) {
		output, err := handler.Execute(ctx, &Input{
			Profile: models.UserProfile{Income: floatPtr(100000)},
		})
		require.NoError(t, err)
		assert.Equal(t, 10, output.Total)
	})

	t.Run("query narrows before eligibility", func(t *testing.T) {
		output, err := handler.Execute(ctx, &Input{
			Query:   "girl",
			Profile: models.UserProfile{Gender: models.GenderMale},
		})
		require.NoError(t, err)
		assert.Equal(t, 0, output.Total)
	})

	t.Run("category filter applied when set", func(t *testing.T) {
		output, err := handler.Execute(ctx, &Input{
			Profile: models.UserProfile{Category: "state"},
		})
		require.NoError(t, err)
		for _, s := range output.Schemes {
			assert.Equal(t, "state", s.Category)
		}
		assert.Contains(t, ids(output.Schemes), "up-kanya-sumangala")
	})
}

func TestHandler_Execute_ProfileValidation(t *testing.T) {
	handler := createTestHandler(t)
	ctx := context.Background()

	t.Run("negative age rejected", func(t *testing.T) {
		_, err := handler.Execute(ctx, &Input{
			Profile: models.UserProfile{Age: intPtr(-1)},
		})
		assert.Error(t, err)
	})

	t.Run("negative income rejected", func(t *testing.T) {
		_, err := handler.Execute(ctx, &Input{
			Profile: models.UserProfile{Income: floatPtr(-100)},
		})
		assert.Error(t, err)
	})

	t.Run("unknown gender rejected", func(t *testing.T) {
		_, err := handler.Execute(ctx, &Input{
			Profile: models.UserProfile{Gender: "unspecified"},
		})
		assert.Error(t, err)
	})

	t.Run("zero values are valid", func(t *testing.T) {
		output, err := handler.Execute(ctx, &Input{
			Profile: models.UserProfile{Age: intPtr(0), Income: floatPtr(0)},
		})
		require.NoError(t, err)
		assert.Equal(t, 10, output.Total)
	})
}

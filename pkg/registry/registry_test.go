// pkg/registry/registry_test.go
package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testActivity(id, taskType string) Activity {
	return Activity{
		ID:          id,
		DisplayName: id,
		Category:    "dialogue",
		TaskType:    taskType,
	}
}

func TestLoadRegistry(t *testing.T) {
	t.Run("shipped registry file", func(t *testing.T) {
		reg, err := LoadRegistry(filepath.Join("..", "..", "configs", "activity-registry.json"))
		require.NoError(t, err)

		require.NoError(t, reg.Validate())
		assert.Len(t, reg.Activities, 4)

		activity, ok := reg.FindByTaskType("classify-intent")
		require.True(t, ok)
		assert.Contains(t, activity.ErrorCodes, "SESSION_STORE_FAILED")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

		_, err := LoadRegistry(path)
		assert.Error(t, err)
	})
}

func TestRegistry_FindByTaskType(t *testing.T) {
	reg := &ActivityRegistry{
		Activities: []Activity{
			testActivity("a1", "search-schemes"),
			testActivity("a2", "classify-intent"),
		},
	}

	t.Run("hit", func(t *testing.T) {
		activity, ok := reg.FindByTaskType("classify-intent")
		require.True(t, ok)
		assert.Equal(t, "a2", activity.ID)
	})

	t.Run("miss", func(t *testing.T) {
		_, ok := reg.FindByTaskType("unknown-task")
		assert.False(t, ok)
	})
}

func TestRegistry_Validate(t *testing.T) {
	tests := []struct {
		name       string
		activities []Activity
		errorHas   string
	}{
		{
			name:       "valid registry",
			activities: []Activity{testActivity("a1", "t1"), testActivity("a2", "t2")},
		},
		{
			name:     "empty registry",
			errorHas: "no activities",
		},
		{
			name:       "duplicate id",
			activities: []Activity{testActivity("a1", "t1"), testActivity("a1", "t2")},
			errorHas:   "duplicate activity ID",
		},
		{
			name:       "duplicate task type",
			activities: []Activity{testActivity("a1", "t1"), testActivity("a2", "t1")},
			errorHas:   "duplicate task type",
		},
		{
			name:       "missing id",
			activities: []Activity{testActivity("", "t1")},
			errorHas:   "ID",
		},
		{
			name: "missing display name",
			activities: []Activity{{
				ID:       "a1",
				Category: "dialogue",
				TaskType: "t1",
			}},
			errorHas: "DisplayName",
		},
		{
			name: "missing task type",
			activities: []Activity{{
				ID:          "a1",
				DisplayName: "a1",
				Category:    "dialogue",
			}},
			errorHas: "TaskType",
		},
		{
			name: "missing category",
			activities: []Activity{{
				ID:          "a1",
				DisplayName: "a1",
				TaskType:    "t1",
			}},
			errorHas: "Category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := &ActivityRegistry{Activities: tt.activities}
			err := reg.Validate()
			if tt.errorHas == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorHas)
		})
	}
}

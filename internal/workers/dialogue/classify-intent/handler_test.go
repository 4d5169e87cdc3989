// internal/workers/dialogue/classify-intent/handler_test.go
package classifyintent

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaibhavisingh876/SwarSaathi/internal/common/logger"
	"github.com/vaibhavisingh876/SwarSaathi/internal/models"
	"github.com/vaibhavisingh876/SwarSaathi/internal/session"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestHandler(t *testing.T) (*Handler, *session.MemoryStore) {
	store := session.NewMemoryStore(0)
	config := &Config{Timeout: 10 * time.Second, DefaultLanguage: "hi"}
	handler := NewHandler(config, store, logger.NewTestLogger(t))
	return handler, store
}

func createInput(sessionID, text, language string) *Input {
	return &Input{SessionID: sessionID, Text: text, Language: language}
}

// ==========================
// Rule Cascade Tests
// ==========================

func TestHandler_Execute_IntentCascade(t *testing.T) {
	tests := []struct {
		name           string
		input          *Input
		expectedIntent string
		expectedTopic  string
		responseHas    string
	}{
		{
			name:           "farmer scheme inquiry hindi",
			input:          createInput("s", "किसान योजना बताओ", "hi"),
			expectedIntent: models.IntentSchemeInquiry,
			expectedTopic:  "farmer",
			responseHas:    "किसान",
		},
		{
			name:           "farmer scheme inquiry english",
			input:          createInput("s", "government schemes for farmers", "en"),
			expectedIntent: models.IntentSchemeInquiry,
			expectedTopic:  "farmer",
			responseHas:    "PM Kisan",
		},
		{
			name:           "women scheme inquiry",
			input:          createInput("s", "schemes for women please", "en"),
			expectedIntent: models.IntentSchemeInquiry,
			expectedTopic:  "women",
			responseHas:    "Beti Bachao",
		},
		{
			name:           "housing scheme inquiry",
			input:          createInput("s", "आवास योजना के बारे में", "hi"),
			expectedIntent: models.IntentSchemeInquiry,
			expectedTopic:  "housing",
			responseHas:    "आवास",
		},
		{
			name:           "generic scheme inquiry",
			input:          createInput("s", "सरकारी योजना", "hi"),
			expectedIntent: models.IntentSchemeInquiry,
			expectedTopic:  "generic",
			responseHas:    "किस क्षेत्र",
		},
		{
			name:           "application help",
			input:          createInput("s", "how do I apply", "en"),
			expectedIntent: models.IntentApplicationHelp,
			expectedTopic:  "",
			responseHas:    "Aadhaar",
		},
		{
			name:           "income eligibility prompt",
			input:          createInput("s", "what about my income", "en"),
			expectedIntent: models.IntentEligibility,
			expectedTopic:  models.TopicIncome,
			responseHas:    "monthly income",
		},
		{
			name:           "age eligibility prompt",
			input:          createInput("s", "what about my age", "en"),
			expectedIntent: models.IntentEligibility,
			expectedTopic:  models.TopicAge,
			responseHas:    "How old are you",
		},
		{
			name:           "greeting hindi",
			input:          createInput("s", "नमस्ते", "hi"),
			expectedIntent: models.IntentGreeting,
			expectedTopic:  "",
			responseHas:    "SwarSaathi",
		},
		{
			name:           "thanks",
			input:          createInput("s", "thank you", "en"),
			expectedIntent: models.IntentThanks,
			expectedTopic:  "",
			responseHas:    "welcome",
		},
		{
			name:           "general fallback",
			input:          createInput("s", "hmm okay", "en"),
			expectedIntent: models.IntentGeneral,
			expectedTopic:  "",
			responseHas:    "I understand",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := createTestHandler(t)
			output, err := handler.Execute(context.Background(), tt.input)

			require.NoError(t, err)
			require.NotNil(t, output)
			assert.Equal(t, tt.expectedIntent, output.Intent)
			assert.Equal(t, tt.expectedTopic, output.Topic)
			assert.Contains(t, output.ResponseText, tt.responseHas)
		})
	}
}

func TestHandler_Execute_CascadePriority(t *testing.T) {
	handler, _ := createTestHandler(t)

	t.Run("scheme trigger wins over application help", func(t *testing.T) {
		output, err := handler.Execute(context.Background(),
			createInput("s", "how to apply for a government scheme", "en"))

		require.NoError(t, err)
		assert.Equal(t, models.IntentSchemeInquiry, output.Intent)
	})

	t.Run("scheme trigger wins over greeting", func(t *testing.T) {
		output, err := handler.Execute(context.Background(),
			createInput("s", "hello, scheme information please", "en"))

		require.NoError(t, err)
		assert.Equal(t, models.IntentSchemeInquiry, output.Intent)
	})

	t.Run("income trigger wins over age trigger", func(t *testing.T) {
		output, err := handler.Execute(context.Background(),
			createInput("s", "for my income and my age", "en"))

		require.NoError(t, err)
		assert.Equal(t, models.IntentEligibility, output.Intent)
		assert.Equal(t, models.TopicIncome, output.Topic)
	})
}

// ==========================
// Focus Continuation Tests
// ==========================

func TestHandler_Execute_IncomeContinuation(t *testing.T) {
	handler, _ := createTestHandler(t)
	ctx := context.Background()

	first, err := handler.Execute(ctx, createInput("s1", "what about my income", "en"))
	require.NoError(t, err)
	require.Equal(t, models.TopicIncome, first.Topic)

	second, err := handler.Execute(ctx, createInput("s1", "30000", "en"))
	require.NoError(t, err)
	assert.Equal(t, models.IntentEligibility, second.Intent)
	assert.Empty(t, second.Topic)
	assert.Contains(t, second.ResponseText, "30000")
	assert.Contains(t, second.ResponseText, "Mudra")

	// The continuation consumed the focus; a second bare number no
	// longer matches any rule above the fallback.
	third, err := handler.Execute(ctx, createInput("s1", "40000", "en"))
	require.NoError(t, err)
	assert.Equal(t, models.IntentGeneral, third.Intent)
}

func TestHandler_Execute_AgeContinuation(t *testing.T) {
	handler, _ := createTestHandler(t)
	ctx := context.Background()

	t.Run("under threshold", func(t *testing.T) {
		_, err := handler.Execute(ctx, createInput("young", "what about my age", "en"))
		require.NoError(t, err)

		output, err := handler.Execute(ctx, createInput("young", "25", "en"))
		require.NoError(t, err)
		assert.Equal(t, models.IntentEligibility, output.Intent)
		assert.Contains(t, output.ResponseText, "25")
		assert.Contains(t, output.ResponseText, "startup")
	})

	t.Run("at threshold goes to older branch", func(t *testing.T) {
		_, err := handler.Execute(ctx, createInput("mid", "what about my age", "en"))
		require.NoError(t, err)

		output, err := handler.Execute(ctx, createInput("mid", "35", "en"))
		require.NoError(t, err)
		assert.Contains(t, output.ResponseText, "business loans")
	})

	t.Run("over threshold", func(t *testing.T) {
		_, err := handler.Execute(ctx, createInput("old", "what about my age", "en"))
		require.NoError(t, err)

		output, err := handler.Execute(ctx, createInput("old", "60", "en"))
		require.NoError(t, err)
		assert.Contains(t, output.ResponseText, "60")
		assert.Contains(t, output.ResponseText, "business loans")
	})
}

func TestHandler_Execute_FocusWithoutDigitsFallsThrough(t *testing.T) {
	handler, _ := createTestHandler(t)
	ctx := context.Background()

	_, err := handler.Execute(ctx, createInput("s1", "what about my income", "en"))
	require.NoError(t, err)

	output, err := handler.Execute(ctx, createInput("s1", "not sure", "en"))
	require.NoError(t, err)
	assert.Equal(t, models.IntentGeneral, output.Intent)
}

func TestHandler_Execute_FocusIsPerSession(t *testing.T) {
	handler, _ := createTestHandler(t)
	ctx := context.Background()

	_, err := handler.Execute(ctx, createInput("a", "what about my income", "en"))
	require.NoError(t, err)

	// Session b has no pending focus, so the bare number is general.
	output, err := handler.Execute(ctx, createInput("b", "30000", "en"))
	require.NoError(t, err)
	assert.Equal(t, models.IntentGeneral, output.Intent)
}

// ==========================
// Session Transcript Tests
// ==========================

func TestHandler_Execute_AppendsExactlyTwoTurns(t *testing.T) {
	handler, store := createTestHandler(t)
	ctx := context.Background()

	_, err := handler.Execute(ctx, createInput("s1", "नमस्ते", "hi"))
	require.NoError(t, err)

	history, err := store.History(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.SpeakerUser, history[0].Speaker)
	assert.Equal(t, "नमस्ते", history[0].Text)
	assert.Equal(t, models.IntentGreeting, history[0].Intent)
	assert.Equal(t, models.SpeakerAssistant, history[1].Speaker)
	assert.Equal(t, models.IntentGreeting, history[1].Intent)

	_, err = handler.Execute(ctx, createInput("s1", "thank you", "en"))
	require.NoError(t, err)

	history, err = store.History(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, history, 4)
}

func TestHandler_Execute_GeneratesSessionID(t *testing.T) {
	handler, store := createTestHandler(t)

	output, err := handler.Execute(context.Background(), createInput("", "hello", "en"))
	require.NoError(t, err)
	require.NotEmpty(t, output.SessionID)

	history, err := store.History(context.Background(), output.SessionID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestHandler_Execute_LanguageSelection(t *testing.T) {
	handler, _ := createTestHandler(t)
	ctx := context.Background()

	t.Run("english templates", func(t *testing.T) {
		output, err := handler.Execute(ctx, createInput("s", "thank you", "en"))
		require.NoError(t, err)
		assert.Contains(t, output.ResponseText, "welcome")
	})

	t.Run("default language is hindi", func(t *testing.T) {
		output, err := handler.Execute(ctx, createInput("s", "धन्यवाद", ""))
		require.NoError(t, err)
		assert.Contains(t, output.ResponseText, "स्वागत")
	})
}

// ==========================
// Edge Cases
// ==========================

func TestHandler_Execute_EdgeCases(t *testing.T) {
	handler, store := createTestHandler(t)
	ctx := context.Background()

	t.Run("empty text is an error", func(t *testing.T) {
		output, err := handler.Execute(ctx, createInput("s", "", "en"))
		assert.Error(t, err)
		assert.Nil(t, output)
	})

	t.Run("whitespace text is an error and appends nothing", func(t *testing.T) {
		_, err := handler.Execute(ctx, createInput("empty", "   ", "en"))
		assert.Error(t, err)

		history, err := store.History(ctx, "empty")
		require.NoError(t, err)
		assert.Empty(t, history)
	})
}

func TestHandler_Execute_ConcurrentSameSession(t *testing.T) {
	handler, store := createTestHandler(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := handler.Execute(ctx, createInput("s1", "नमस्ते", "hi"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	history, err := store.History(ctx, "s1")
	require.NoError(t, err)
	// Each call appends its user/assistant pair atomically.
	require.Len(t, history, 20)
	for i := 0; i < 20; i += 2 {
		assert.Equal(t, models.SpeakerUser, history[i].Speaker)
		assert.Equal(t, models.SpeakerAssistant, history[i+1].Speaker)
	}
}

// internal/models/conversation_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assistantTurn(intent, topic string) Turn {
	return Turn{Speaker: SpeakerAssistant, Intent: intent, Topic: topic}
}

func userTurn(text string) Turn {
	return Turn{Speaker: SpeakerUser, Text: text}
}

func TestDeriveFocus(t *testing.T) {
	tests := []struct {
		name     string
		turns    []Turn
		expected Focus
	}{
		{
			name:     "empty transcript",
			turns:    nil,
			expected: FocusNone,
		},
		{
			name:     "user turns only",
			turns:    []Turn{userTurn("hello"), userTurn("scheme")},
			expected: FocusNone,
		},
		{
			name: "income prompt sets awaiting income",
			turns: []Turn{
				userTurn("what about my income"),
				assistantTurn(IntentEligibility, TopicIncome),
			},
			expected: FocusAwaitingIncome,
		},
		{
			name: "age prompt sets awaiting age",
			turns: []Turn{
				userTurn("schemes for my age"),
				assistantTurn(IntentEligibility, TopicAge),
			},
			expected: FocusAwaitingAge,
		},
		{
			name: "continuation response clears focus",
			turns: []Turn{
				userTurn("what about my income"),
				assistantTurn(IntentEligibility, TopicIncome),
				userTurn("30000"),
				assistantTurn(IntentEligibility, ""),
			},
			expected: FocusNone,
		},
		{
			name: "later assistant turn supersedes",
			turns: []Turn{
				assistantTurn(IntentEligibility, TopicIncome),
				userTurn("actually tell me about age"),
				assistantTurn(IntentEligibility, TopicAge),
			},
			expected: FocusAwaitingAge,
		},
		{
			name: "non eligibility assistant turn clears focus",
			turns: []Turn{
				assistantTurn(IntentEligibility, TopicIncome),
				userTurn("hello"),
				assistantTurn(IntentGreeting, ""),
			},
			expected: FocusNone,
		},
		{
			name: "scheme topic on assistant turn carries no focus",
			turns: []Turn{
				userTurn("farmer schemes"),
				assistantTurn(IntentSchemeInquiry, TopicFarmer),
			},
			expected: FocusNone,
		},
		{
			name: "trailing user turn does not disturb focus",
			turns: []Turn{
				assistantTurn(IntentEligibility, TopicAge),
				userTurn("hmm"),
			},
			expected: FocusAwaitingAge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveFocus(tt.turns))
		})
	}
}

// internal/models/conversation.go
package models

import "time"

// Speaker identifies who produced a conversation turn.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Intent keys produced by the dialogue engine.
const (
	IntentSchemeInquiry   = "scheme_inquiry"
	IntentApplicationHelp = "application_help"
	IntentEligibility     = "eligibility_check"
	IntentGreeting        = "greeting"
	IntentThanks          = "thanks"
	IntentGeneral         = "general"
)

// Topic refinements attached to assistant turns. For eligibility_check
// turns the topic records what follow-up answer is being awaited.
const (
	TopicFarmer  = "farmer"
	TopicWomen   = "women"
	TopicHousing = "housing"
	TopicGeneric = "generic"
	TopicIncome  = "income"
	TopicAge     = "age"
)

// Turn is one entry in a session transcript. Seq is a per-session
// monotonic counter assigned by the store; ordering is the sole source
// of conversational context.
type Turn struct {
	Seq       int       `json:"seq"`
	Speaker   Speaker   `json:"speaker"`
	Text      string    `json:"text"`
	Intent    string    `json:"intent,omitempty"`
	Topic     string    `json:"topic,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Focus is what follow-up answer the dialogue engine is expecting.
// It is always derived from the transcript, never stored on its own.
type Focus string

const (
	FocusNone           Focus = ""
	FocusAwaitingIncome Focus = "awaiting-income"
	FocusAwaitingAge    Focus = "awaiting-age"
)

// DeriveFocus computes the focus from a transcript: the most recent
// assistant turn decides, any later assistant turn supersedes.
func DeriveFocus(turns []Turn) Focus {
	for i := len(turns) - 1; i >= 0; i-- {
		t := turns[i]
		if t.Speaker != SpeakerAssistant {
			continue
		}
		if t.Intent == IntentEligibility {
			switch t.Topic {
			case TopicIncome:
				return FocusAwaitingIncome
			case TopicAge:
				return FocusAwaitingAge
			}
		}
		return FocusNone
	}
	return FocusNone
}

// internal/workers/dialogue/classify-intent/models.go
package classifyintent

// Input carries one utterance of an advisory dialogue session. An
// empty SessionID starts a new session.
type Input struct {
	SessionID string `json:"sessionId"`
	Text      string `json:"utteranceText"`
	Language  string `json:"languageTag"` // "hi" or "en"
}

// Output is the classified intent plus the response to be spoken back.
type Output struct {
	SessionID    string `json:"sessionId"`
	Intent       string `json:"intent"`
	Topic        string `json:"topic,omitempty"`
	ResponseText string `json:"responseText"`
}

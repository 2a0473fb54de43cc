// Package chat implements the conversational order-extraction engine: it
// classifies utterances into deterministic commands, parses structured item
// blocks, tracks per-session transcripts and order lists, and falls back to a
// language model for everything else.
package chat

// Transcript roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// LangThai selects Thai prompts and messages; any other language code gets
// the English variants.
const LangThai = "th"

// Turn is one transcript entry.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Item is one ordered menu unit with an optional note. An empty note renders
// as the language-specific "no note" marker in summaries.
type Item struct {
	Name string `json:"name"`
	Note string `json:"note"`
}

// Session is the conversational context and accumulated order for one user
// interaction stream. Transcript[0] is always the system prompt matching
// Language.
type Session struct {
	Language   string `json:"language"`
	Transcript []Turn `json:"transcript"`
	Items      []Item `json:"items"`
}

// newSession builds a fresh session for a language with the system prompt as
// the only transcript entry.
func newSession(lang string) *Session {
	return &Session{
		Language:   lang,
		Transcript: []Turn{{Role: RoleSystem, Content: SystemPrompt(lang)}},
	}
}

// clone returns a deep copy so store snapshots can't be mutated by callers.
func (s *Session) clone() *Session {
	cp := &Session{Language: s.Language}
	cp.Transcript = make([]Turn, len(s.Transcript))
	copy(cp.Transcript, s.Transcript)
	cp.Items = make([]Item, len(s.Items))
	copy(cp.Items, s.Items)
	return cp
}

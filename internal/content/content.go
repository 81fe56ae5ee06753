// Package content supplies the assistant's static reply material: the
// knowledge base, canned jokes and facts, help and topics text, and the
// fallback lines for questions it cannot answer.
//
// Behaviors depend only on the Provider interface, never on this package's
// data, so command handling and the text it prints stay decoupled.
package content

import "sync"

// Provider is the read-only view behaviors use to fetch reply material.
type Provider interface {
	HelpText() string
	TopicsText() string
	// Knowledge returns the canned answer for a normalized question key.
	Knowledge(key string) (string, bool)
	// KnowledgeKeys returns all knowledge keys in sorted order.
	KnowledgeKeys() []string
	Jokes() []string
	Facts() []string
	UnknownReplies() []string
	// WellbeingPhrases are queries the knowledge lookup must ignore.
	WellbeingPhrases() []string
}

// Library is the standard Provider: built-in defaults, optionally merged
// with a YAML override file. Reload swaps the data atomically, so a Library
// shared with a file watcher is safe to read concurrently.
type Library struct {
	mu   sync.RWMutex
	data libraryData
}

type libraryData struct {
	help      string
	topics    string
	knowledge map[string]string
	keys      []string
	jokes     []string
	facts     []string
	unknown   []string
	wellbeing []string
}

// NewLibrary returns a Library holding only the built-in defaults.
func NewLibrary() *Library {
	lib := &Library{}
	lib.data = defaultData()
	return lib
}

func (l *Library) HelpText() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.data.help
}

func (l *Library) TopicsText() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.data.topics
}

func (l *Library) Knowledge(key string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	answer, ok := l.data.knowledge[key]
	return answer, ok
}

func (l *Library) KnowledgeKeys() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.data.keys
}

func (l *Library) Jokes() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.data.jokes
}

func (l *Library) Facts() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.data.facts
}

func (l *Library) UnknownReplies() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.data.unknown
}

func (l *Library) WellbeingPhrases() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.data.wellbeing
}

// Package memory holds what the assistant knows about each user and the
// stores that persist it. The engine creates a record on first contact and
// the command behavior mutates it; "forget all" clears the record in place
// rather than destroying it.
package memory

import (
	"context"
	"errors"
	"strings"
)

var ErrNotFound = errors.New("not found")

// UserMemory is the per-user record of remembered facts and preferences.
type UserMemory struct {
	UserID      string            `json:"user_id"`
	Name        string            `json:"name,omitempty"`
	Facts       []string          `json:"facts"`
	Preferences map[string]string `json:"preferences"`
}

// NewUserMemory returns an empty record for the user.
func NewUserMemory(userID string) *UserMemory {
	return &UserMemory{
		UserID:      userID,
		Facts:       []string{},
		Preferences: map[string]string{},
	}
}

// AddFact appends a fact verbatim.
func (m *UserMemory) AddFact(fact string) {
	if m.Facts == nil {
		m.Facts = []string{}
	}
	m.Facts = append(m.Facts, fact)
}

// RemoveFact removes the first fact containing text, case-insensitively,
// and returns it. Only the first match in list order is removed; later
// matches stay. The second return is false when nothing matched.
func (m *UserMemory) RemoveFact(text string) (string, bool) {
	needle := strings.ToLower(text)
	for i, fact := range m.Facts {
		if strings.Contains(strings.ToLower(fact), needle) {
			m.Facts = append(m.Facts[:i], m.Facts[i+1:]...)
			return fact, true
		}
	}
	return "", false
}

// RemovePreference deletes the preference keyed by topic and reports whether
// it existed.
func (m *UserMemory) RemovePreference(topic string) (string, bool) {
	if m.Preferences == nil {
		return "", false
	}
	pref, ok := m.Preferences[topic]
	if !ok {
		return "", false
	}
	delete(m.Preferences, topic)
	return pref, true
}

// Clear empties every list field and every map field in place, keeping the
// record itself (and its identity) alive.
func (m *UserMemory) Clear() {
	m.Name = ""
	m.Facts = []string{}
	m.Preferences = map[string]string{}
}

// IsEmpty reports whether nothing is known about the user.
func (m *UserMemory) IsEmpty() bool {
	return m.Name == "" && len(m.Facts) == 0 && len(m.Preferences) == 0
}

// Store persists user memory records keyed by user ID.
type Store interface {
	// Get returns the record for the user, or ErrNotFound.
	Get(ctx context.Context, userID string) (*UserMemory, error)
	// Put creates or replaces the record for the user.
	Put(ctx context.Context, mem *UserMemory) error
	// Delete removes the record entirely.
	Delete(ctx context.Context, userID string) error
}

// LearnedTermsStore is the side table of terms an out-of-band learning
// subsystem has associated with each user. The command behavior only ever
// deletes entries wholesale (on "forget all").
type LearnedTermsStore interface {
	Get(ctx context.Context, userID string) ([]string, error)
	Put(ctx context.Context, userID string, terms []string) error
	Delete(ctx context.Context, userID string) error
}

// Package textutil provides the small pure-string helpers shared by the
// analyzer and the knowledge behaviors: edit distance, question detection,
// query normalization, and tokenizing.
package textutil

import (
	"regexp"
	"strings"
)

var (
	interrogativeRe = regexp.MustCompile(`(?i)^(what|how|why|when|where|which|who|whose|whom|is|are|was|were|does|do|did|can|could|would|should|will)\b`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
	nonAlnumRe      = regexp.MustCompile(`[^a-z0-9]+`)
)

// IsQuestion reports whether the message reads as a question: it ends with a
// question mark or opens with an interrogative word.
func IsQuestion(message string) bool {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return false
	}
	if strings.HasSuffix(trimmed, "?") {
		return true
	}
	return interrogativeRe.MatchString(trimmed)
}

// NormalizeKnowledgeQuery canonicalizes a message for knowledge-base lookup:
// lowercased, trimmed, trailing question marks stripped, inner whitespace
// collapsed to single spaces. Knowledge-base keys are stored in this form.
func NormalizeKnowledgeQuery(message string) string {
	s := strings.ToLower(strings.TrimSpace(message))
	s = strings.TrimRight(s, "?")
	s = strings.TrimSpace(s)
	return whitespaceRe.ReplaceAllString(s, " ")
}

// NormalizeCommand extracts the lowercased, whitespace-collapsed form of a
// message used for command matching.
func NormalizeCommand(message string) string {
	s := strings.ToLower(strings.TrimSpace(message))
	return whitespaceRe.ReplaceAllString(s, " ")
}

// Tokenize lowercases the message, splits it on whitespace, and strips
// non-alphanumeric runes from each token. Tokens that end up empty are
// dropped.
func Tokenize(message string) []string {
	fields := strings.Fields(strings.ToLower(message))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		t := nonAlnumRe.ReplaceAllString(f, "")
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Sentences splits the message on sentence-ending punctuation, discarding
// empty fragments.
func Sentences(message string) []string {
	parts := strings.FieldsFunc(message, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

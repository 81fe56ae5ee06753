// Package analyzer computes a multi-dimensional heuristic breakdown of a
// chat message: intent, topics, sentiment, complexity, urgency, formality,
// clarity, keywords, entities, and conversational context flags.
//
// Everything here is pure and deterministic: fixed regex tables and word
// lists, no model calls, no state. The same input always yields the same
// Result, which keeps the assistant's behavior reproducible in tests.
package analyzer

// Analyze runs every sub-analysis over the message and attaches the
// presentation suggestion derived from the combined result.
func Analyze(message string) Result {
	r := Result{
		Intent:     DetectIntent(message),
		Topics:     DetectTopics(message),
		Sentiment:  ScoreSentiment(message),
		Complexity: ScoreComplexity(message),
		Urgency:    ScoreUrgency(message),
		Formality:  ScoreFormality(message),
		Clarity:    ScoreClarity(message),
		Keywords:   ExtractKeywords(message),
		Entities:   ExtractEntities(message),
		Context:    DetectContext(message),
	}
	r.Suggestion = Suggest(r)
	return r
}

package analyzer

// suggestionRule maps an analysis shape to advice for whoever renders the
// reply. First matching rule wins; empty fields match anything.
type suggestionRule struct {
	intent     string
	sentiment  string
	complexity string
	urgency    string
	advice     string
}

var suggestionRules = []suggestionRule{
	{urgency: "high", advice: "acknowledge the urgency and answer the core question first"},
	{sentiment: "negative", advice: "acknowledge the frustration before offering a fix"},
	{intent: "question", complexity: "complex", advice: "break the answer into steps and confirm understanding"},
	{intent: "question", advice: "answer directly, then offer related detail"},
	{intent: "greeting", advice: "greet back briefly and invite a question"},
	{intent: "farewell", advice: "close politely and mention the help command"},
	{intent: "feedback", sentiment: "positive", advice: "thank the user and invite further questions"},
	{intent: "feedback", advice: "thank the user for the report"},
	{intent: "request", advice: "confirm what will be done before doing it"},
	{complexity: "complex", advice: "summarize first, detail after"},
	{advice: "keep the reply short and offer the topics command"},
}

// Suggest picks presentation advice from the rule table. It is advisory
// output for downstream consumers, never executed logic.
func Suggest(r Result) string {
	for _, rule := range suggestionRules {
		if rule.intent != "" && rule.intent != r.Intent.Primary {
			continue
		}
		if rule.sentiment != "" && rule.sentiment != r.Sentiment.Label {
			continue
		}
		if rule.complexity != "" && rule.complexity != r.Complexity.Level {
			continue
		}
		if rule.urgency != "" && rule.urgency != r.Urgency.Level {
			continue
		}
		return rule.advice
	}
	return ""
}

package analyzer

import "regexp"

// intentOrder fixes the enumeration order used both for scoring and for
// resolving ties: when two intents score equally, the earlier one wins.
var intentOrder = []string{
	"question",
	"command",
	"statement",
	"greeting",
	"farewell",
	"request",
	"feedback",
}

// intentPatterns maps each intent to the cues that vote for it. Every
// matching pattern adds one point; scores are not capped.
var intentPatterns = map[string][]*regexp.Regexp{
	"question": {
		regexp.MustCompile(`\?`),
		regexp.MustCompile(`(?i)^(what|how|why|when|where|which|who)\b`),
		regexp.MustCompile(`(?i)^(is|are|was|were|does|do|did|can|could|would|should|will)\b`),
		regexp.MustCompile(`(?i)\b(explain|tell me about)\b`),
	},
	"command": {
		regexp.MustCompile(`(?i)^(show|list|find|search|open|run|start|stop|create|delete|remove|add)\b`),
		regexp.MustCompile(`(?i)^(remember|forget)\b`),
		regexp.MustCompile(`(?i)^(help|topics)\b`),
	},
	"statement": {
		regexp.MustCompile(`(?i)^(i am|i'm|i was|i have|i've|i think|i believe|i feel)\b`),
		regexp.MustCompile(`(?i)^(it is|it's|this is|that is|that's|there is|there are)\b`),
		regexp.MustCompile(`(?i)\b(is|are|was|were)\b.*\.$`),
	},
	"greeting": {
		regexp.MustCompile(`(?i)^(hi|hello|hey|howdy|greetings)\b`),
		regexp.MustCompile(`(?i)^good (morning|afternoon|evening)\b`),
	},
	"farewell": {
		regexp.MustCompile(`(?i)^(bye|goodbye|farewell|see you|see ya)\b`),
		regexp.MustCompile(`(?i)\b(good ?night|talk to you later|gotta go)\b`),
	},
	"request": {
		regexp.MustCompile(`(?i)^(please|kindly)\b`),
		regexp.MustCompile(`(?i)\b(can|could|would) you\b`),
		regexp.MustCompile(`(?i)\bi (want|need|would like)\b`),
	},
	"feedback": {
		regexp.MustCompile(`(?i)\b(thanks|thank you|thx)\b`),
		regexp.MustCompile(`(?i)\b(great|awesome|amazing|excellent|terrible|awful|useless)\b`),
		regexp.MustCompile(`(?i)\b(that (worked|helped)|didn't work|not working)\b`),
	},
}

// DetectIntent scores every intent's cue patterns against the message and
// picks the highest. Ties resolve to the earlier intent in the fixed
// enumeration order. A message matching nothing is "general" with zero
// confidence.
func DetectIntent(message string) Intent {
	scores := make(map[string]int, len(intentOrder))
	best := ""
	bestScore := 0
	for _, name := range intentOrder {
		score := 0
		for _, re := range intentPatterns[name] {
			if re.MatchString(message) {
				score++
			}
		}
		scores[name] = score
		if score > bestScore {
			best = name
			bestScore = score
		}
	}

	if bestScore == 0 {
		return Intent{Primary: "general", Confidence: 0, Scores: scores}
	}

	maxScore := bestScore
	if maxScore < 1 {
		maxScore = 1
	}
	return Intent{
		Primary:    best,
		Confidence: float64(bestScore) / float64(maxScore),
		Scores:     scores,
	}
}

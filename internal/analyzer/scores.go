package analyzer

import (
	"regexp"
	"strings"

	"github.com/mockmate/assistant/internal/textutil"
)

var positiveWords = map[string]bool{
	"good": true, "great": true, "awesome": true, "amazing": true,
	"excellent": true, "love": true, "like": true, "happy": true,
	"thanks": true, "thank": true, "perfect": true, "nice": true,
	"wonderful": true, "fantastic": true, "helpful": true, "works": true,
}

var negativeWords = map[string]bool{
	"bad": true, "terrible": true, "awful": true, "hate": true,
	"broken": true, "wrong": true, "error": true, "fail": true,
	"failed": true, "useless": true, "horrible": true, "angry": true,
	"frustrated": true, "annoying": true, "worst": true, "problem": true,
}

var neutralWords = map[string]bool{
	"okay": true, "ok": true, "fine": true, "maybe": true,
	"perhaps": true, "possibly": true, "average": true, "normal": true,
}

// ScoreSentiment tokenizes the message and nets positive against negative
// word hits over the token count. The neutral list exists so balanced
// wording stays at zero rather than being counted either way.
func ScoreSentiment(message string) Sentiment {
	tokens := textutil.Tokenize(message)
	if len(tokens) == 0 {
		return Sentiment{Label: "neutral", Score: 0, Intensity: "low"}
	}

	positives, negatives := 0, 0
	for _, tok := range tokens {
		switch {
		case positiveWords[tok]:
			positives++
		case negativeWords[tok]:
			negatives++
		case neutralWords[tok]:
			// counted as neither
		}
	}

	score := float64(positives-negatives) / float64(len(tokens))

	label := "neutral"
	if score > 0.1 {
		label = "positive"
	} else if score < -0.1 {
		label = "negative"
	}

	abs := score
	if abs < 0 {
		abs = -abs
	}
	intensity := "low"
	if abs > 0.3 {
		intensity = "high"
	} else if abs > 0.1 {
		intensity = "medium"
	}

	return Sentiment{Label: label, Score: score, Intensity: intensity}
}

var technicalTermRe = regexp.MustCompile(`(?i)\b(algorithm|async|concurrency|compiler|framework|middleware|protocol|recursion|serialization|architecture|authentication|optimization)\b`)

var codeRefRe = regexp.MustCompile("`[^`]+`|" + `(?i)\b(function|class|struct|interface|method)\s+\w+|\w+\(\)`)

// ScoreComplexity estimates how demanding a message is on a 1-10 scale from
// word length, sentence length, technical vocabulary, code references, and
// overall size.
func ScoreComplexity(message string) Complexity {
	score := 1

	words := strings.Fields(message)
	if avgWordLen(words) > 6 {
		score++
	}
	if avgSentenceLen(message) > 15 {
		score++
	}

	if hits := len(technicalTermRe.FindAllString(message, -1)); hits > 0 {
		if hits > 3 {
			hits = 3
		}
		score += hits
	}
	if hits := len(codeRefRe.FindAllString(message, -1)); hits > 0 {
		if hits > 2 {
			hits = 2
		}
		score += hits
	}

	if len(message) > 100 {
		score++
	}
	if strings.Contains(message, "?") {
		score++
	}

	if score > 10 {
		score = 10
	}
	if score < 1 {
		score = 1
	}

	level := "simple"
	if score > 7 {
		level = "complex"
	} else if score > 4 {
		level = "moderate"
	}
	return Complexity{Score: score, Level: level}
}

var urgentWords = []string{"urgent", "asap", "immediately", "now", "quickly", "emergency", "critical", "deadline"}

var urgentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bright (now|away)\b`),
	regexp.MustCompile(`(?i)\bas soon as possible\b`),
	regexp.MustCompile(`(?i)\bneed (this|it|help) (now|today|fast)\b`),
	regexp.MustCompile(`(?i)\bcan'?t wait\b`),
}

// ScoreUrgency weighs urgent vocabulary, urgent phrasings, exclamation marks,
// and shouting (uppercase ratio) into a single score.
func ScoreUrgency(message string) Urgency {
	lower := strings.ToLower(message)

	score := 0.0
	for _, w := range urgentWords {
		if strings.Contains(lower, w) {
			score++
		}
	}
	for _, re := range urgentPatterns {
		if re.MatchString(message) {
			score += 2
		}
	}
	score += 0.5 * float64(strings.Count(message, "!"))
	if uppercaseRatio(message) > 0.3 {
		score++
	}

	level := "low"
	if score > 3 {
		level = "high"
	} else if score > 1 {
		level = "medium"
	}
	return Urgency{Score: score, Level: level}
}

var formalWords = []string{"please", "kindly", "would", "regarding", "appreciate", "sincerely", "respectfully", "furthermore", "however", "therefore"}

var informalWords = []string{"yeah", "nope", "gonna", "wanna", "gotta", "lol", "omg", "btw", "kinda", "dunno", "hey", "yo"}

var contractionRe = regexp.MustCompile(`(?i)\b\w+'(s|t|re|ve|ll|d|m)\b`)

// ScoreFormality nets formal vocabulary against informal vocabulary and
// contractions. Positive is formal, negative informal.
func ScoreFormality(message string) Formality {
	lower := strings.ToLower(message)

	score := 0.0
	for _, w := range formalWords {
		if strings.Contains(lower, w) {
			score += 2
		}
	}
	for _, w := range informalWords {
		if strings.Contains(lower, w) {
			score -= 2
		}
	}
	score -= 0.5 * float64(len(contractionRe.FindAllString(message, -1)))

	level := "neutral"
	if score > 2 {
		level = "formal"
	} else if score < -2 {
		level = "informal"
	}
	return Formality{Score: score, Level: level}
}

var punctuationRe = regexp.MustCompile(`[.,;:!?]`)

// ScoreClarity rewards well-punctuated, moderately sized messages and
// penalizes run-ons, very long words, and near-empty input.
func ScoreClarity(message string) Clarity {
	words := strings.Fields(message)
	wordLen := avgWordLen(words)
	sentLen := avgSentenceLen(message)

	score := 0
	if strings.Contains(message, "?") {
		score++
	}
	if punctuationRe.MatchString(message) {
		score++
	}
	if wordLen < 8 {
		score++
	}
	if sentLen < 20 {
		score++
	}
	if wordLen > 12 {
		score--
	}
	if sentLen > 30 {
		score--
	}
	if len(message) < 5 {
		score--
	}

	level := "clear"
	if score < 0 {
		level = "unclear"
	} else if score < 2 {
		level = "moderate"
	}
	return Clarity{Score: score, Level: level}
}

func avgWordLen(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += len(w)
	}
	return float64(total) / float64(len(words))
}

// avgSentenceLen returns the mean word count per sentence.
func avgSentenceLen(message string) float64 {
	sentences := textutil.Sentences(message)
	if len(sentences) == 0 {
		return 0
	}
	total := 0
	for _, s := range sentences {
		total += len(strings.Fields(s))
	}
	return float64(total) / float64(len(sentences))
}

// uppercaseRatio is the share of letters that are uppercase.
func uppercaseRatio(message string) float64 {
	letters, upper := 0, 0
	for _, r := range message {
		if r >= 'a' && r <= 'z' {
			letters++
		} else if r >= 'A' && r <= 'Z' {
			letters++
			upper++
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(upper) / float64(letters)
}

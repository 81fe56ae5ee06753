package analyzer

// Result is the full breakdown produced by Analyze.
type Result struct {
	Intent     Intent       `json:"intent"`
	Topics     []Topic      `json:"topics"`
	Sentiment  Sentiment    `json:"sentiment"`
	Complexity Complexity   `json:"complexity"`
	Urgency    Urgency      `json:"urgency"`
	Formality  Formality    `json:"formality"`
	Clarity    Clarity      `json:"clarity"`
	Keywords   []Keyword    `json:"keywords"`
	Entities   Entities     `json:"entities"`
	Context    ContextFlags `json:"context"`
	Suggestion string       `json:"suggestion,omitempty"`
}

// Intent is the dominant communicative intent of a message.
type Intent struct {
	// Primary is one of question, command, statement, greeting, farewell,
	// request, feedback, or "general" when nothing matched.
	Primary    string         `json:"primary"`
	Confidence float64        `json:"confidence"`
	Scores     map[string]int `json:"scores"`
}

// Topic is a subject area detected in a message.
type Topic struct {
	Name       string   `json:"name"`
	Confidence float64  `json:"confidence"`
	Matches    []string `json:"matches"`
}

// Sentiment describes message tone.
type Sentiment struct {
	// Label is positive, negative, or neutral.
	Label string `json:"label"`
	// Score is (positive hits - negative hits) / total tokens.
	Score float64 `json:"score"`
	// Intensity is high, medium, or low.
	Intensity string `json:"intensity"`
}

// Complexity scores how demanding a message is to answer, 1-10.
type Complexity struct {
	Score int `json:"score"`
	// Level is complex (>7), moderate (>4), or simple.
	Level string `json:"level"`
}

// Urgency scores how pressing a message sounds.
type Urgency struct {
	Score float64 `json:"score"`
	// Level is high (>3), medium (>1), or low.
	Level string `json:"level"`
}

// Formality scores register, from informal (negative) to formal (positive).
type Formality struct {
	Score float64 `json:"score"`
	// Level is formal (>2), informal (<-2), or neutral.
	Level string `json:"level"`
}

// Clarity scores how well-formed a message is.
type Clarity struct {
	Score int `json:"score"`
	// Level is unclear (<0), moderate (<2), or clear.
	Level string `json:"level"`
}

// Keyword is a significant token with its frequency in the message.
type Keyword struct {
	Word       string  `json:"word"`
	Frequency  int     `json:"frequency"`
	Importance float64 `json:"importance"`
}

// Entities holds the literal spans recognized by the entity scans.
type Entities struct {
	Names   []string `json:"names,omitempty"`
	Numbers []string `json:"numbers,omitempty"`
	URLs    []string `json:"urls,omitempty"`
	Emails  []string `json:"emails,omitempty"`
	Dates   []string `json:"dates,omitempty"`
	Times   []string `json:"times,omitempty"`
}

// ContextFlags describe how a message relates to the conversation so far.
type ContextFlags struct {
	IsFollowUp        bool `json:"is_follow_up"`
	IsClarification   bool `json:"is_clarification"`
	IsCorrection      bool `json:"is_correction"`
	IsAcknowledgement bool `json:"is_acknowledgement"`
	// Continuity estimates how strongly the message continues the previous
	// thread, 0.5 baseline, capped at 1.
	Continuity float64 `json:"continuity"`
}

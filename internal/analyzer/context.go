package analyzer

import "regexp"

var followUpPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(and|also|what about|how about|additionally)\b`),
	regexp.MustCompile(`(?i)^(then|next|after that)\b`),
	regexp.MustCompile(`(?i)^(one more|another)\b`),
}

var clarificationRe = regexp.MustCompile(`(?i)^(what do you mean|i don'?t understand|can you clarify|huh|come again)\b`)

var correctionRe = regexp.MustCompile(`(?i)^(no,? i meant|actually|that'?s not|i said|correction)\b`)

var acknowledgementRe = regexp.MustCompile(`(?i)^(ok(ay)?|got it|i see|makes sense|understood|thanks|thank you|great|cool)\b`)

// DetectContext checks the conversational role of the message from its
// opening phrasing. Continuity starts at the 0.5 baseline and rises by 0.3
// per follow-up cue matched, capped at 1.
func DetectContext(message string) ContextFlags {
	flags := ContextFlags{Continuity: 0.5}

	for _, re := range followUpPatterns {
		if re.MatchString(message) {
			flags.IsFollowUp = true
			flags.Continuity += 0.3
		}
	}
	if flags.Continuity > 1 {
		flags.Continuity = 1
	}

	flags.IsClarification = clarificationRe.MatchString(message)
	flags.IsCorrection = correctionRe.MatchString(message)
	flags.IsAcknowledgement = acknowledgementRe.MatchString(message)
	return flags
}

package analyzer

import "regexp"

var (
	// Runs of capitalized words, e.g. "Ada Lovelace". Single capitalized
	// words count too; sentence-initial false positives are accepted as a
	// known limitation of the heuristic.
	nameRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)

	numberRe = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)

	urlRe = regexp.MustCompile(`https?://[^\s]+`)

	emailRe = regexp.MustCompile(`\b[\w.+-]+@[\w-]+\.[\w.-]+\b`)

	// Numeric dates: 01/02/2024, 1-2-24, 2024/01/02.
	dateRe = regexp.MustCompile(`\b\d{1,4}[/-]\d{1,2}[/-]\d{2,4}\b`)

	timeRe = regexp.MustCompile(`\b\d{1,2}:\d{2}(?::\d{2})?\s?(?:[ap]m|[AP]M)?\b`)
)

// ExtractEntities runs the five independent scans over the raw message.
// Spans may overlap between categories (a date also matches the number
// scan); each scan reports independently.
func ExtractEntities(message string) Entities {
	return Entities{
		Names:   nameRe.FindAllString(message, -1),
		Numbers: numberRe.FindAllString(message, -1),
		URLs:    urlRe.FindAllString(message, -1),
		Emails:  emailRe.FindAllString(message, -1),
		Dates:   dateRe.FindAllString(message, -1),
		Times:   timeRe.FindAllString(message, -1),
	}
}

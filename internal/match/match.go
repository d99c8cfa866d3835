package match

import (
	"regexp"
	"strings"
)

var nonLetter = regexp.MustCompile(`[^a-zA-Z ]+`)

// Normalize strips every character except letters and spaces from a search
// term. Case is preserved; comparisons are case-insensitive.
func Normalize(term string) string {
	cleaned := nonLetter.ReplaceAllString(term, "")
	return strings.Join(strings.Fields(cleaned), " ")
}

// WholeWord reports whether the normalized term appears as a whole-word,
// case-insensitive substring of candidate. "ham" matches "Ham Sandwich" but
// not "Hamburger".
func WholeWord(term, candidate string) bool {
	normalized := Normalize(term)
	if normalized == "" || candidate == "" {
		return false
	}
	// The term is quoted so user input can never act as pattern syntax.
	pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(normalized) + `\b`)
	return pattern.MatchString(candidate)
}

// Candidate is the set of names a record can be matched against.
type Candidate struct {
	Name       string
	SimpleName string
	Aliases    []string
}

// Matches reports whether the term whole-word matches the candidate's
// display name, its simplified name, or any of its aliases.
func Matches(term string, c Candidate) bool {
	if WholeWord(term, c.Name) || WholeWord(term, c.SimpleName) {
		return true
	}
	for _, alias := range c.Aliases {
		if WholeWord(term, alias) {
			return true
		}
	}
	return false
}

package core

import (
	"strings"
	"unicode"
)

// DefaultThreshold is the minimum score at which a message is classified as spam
const DefaultThreshold = 2

// DefaultIndicators is the fixed set of lowercase phrases whose presence
// in a message contributes to its spam score. The set is static for the
// process lifetime; the classifier copies it at construction.
var DefaultIndicators = []string{
	"urgent", "winner", "prize", "reward", "claim", "selected",
	"valued customer", "call now", "limited time", "congratulations",
	"account compromised", "security alert",
}

// Classifier scores messages against a fixed indicator set and maps the
// score to a classification via a threshold
type Classifier struct {
	indicators []string
	threshold  int
}

// NewClassifier creates a classifier with the given indicator phrases and
// spam threshold. Indicators are matched case-insensitively as literal
// substrings, so they are normalized to lowercase here.
func NewClassifier(indicators []string, threshold int) *Classifier {
	normalized := make([]string, len(indicators))
	for i, indicator := range indicators {
		normalized[i] = strings.ToLower(indicator)
	}
	return &Classifier{
		indicators: normalized,
		threshold:  threshold,
	}
}

// NewDefaultClassifier creates a classifier with the built-in indicator
// set and default threshold
func NewDefaultClassifier() *Classifier {
	return NewClassifier(DefaultIndicators, DefaultThreshold)
}

// Threshold returns the configured spam threshold
func (c *Classifier) Threshold() int {
	return c.threshold
}

// CalculateSpamScore computes the spam score for a message. Each heuristic
// contributes at most 1:
//   - one point per distinct indicator phrase contained in the lowercased text
//   - one point if the text contains more than two '!' characters
//   - one point if more than two whitespace-separated tokens longer than
//     two characters are fully upper-case
func (c *Classifier) CalculateSpamScore(text string) int {
	score := 0

	lowered := strings.ToLower(text)
	for _, indicator := range c.indicators {
		if strings.Contains(lowered, indicator) {
			score++
		}
	}

	if strings.Count(text, "!") > 2 {
		score++
	}

	capsWords := 0
	for _, word := range strings.Fields(text) {
		if len([]rune(word)) > 2 && isUpperWord(word) {
			capsWords++
		}
	}
	if capsWords > 2 {
		score++
	}

	return score
}

// Classify scores a message and labels it spam when the score reaches
// the threshold
func (c *Classifier) Classify(text string) DetectionResult {
	score := c.CalculateSpamScore(text)
	classification := ClassNotSpam
	if score >= c.threshold {
		classification = ClassSpam
	}
	return DetectionResult{
		Classification: classification,
		Score:          score,
	}
}

// isUpperWord reports whether a token contains at least one cased
// character and no lower-case characters, so "WILL!!" counts but "900"
// and "Winner" do not.
func isUpperWord(word string) bool {
	hasCased := false
	for _, r := range word {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			hasCased = true
		}
	}
	return hasCased
}

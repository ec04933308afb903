package schedule

import (
	"regexp"
	"strings"
)

// Surface forms of the court markers, matched case-insensitively against the
// event's combined text: spelled out with a space, concatenated, abbreviated.
var (
	court1Markers = []string{"quadra 1", "quadra1", "q1"}
	court2Markers = []string{"quadra 2", "quadra2", "q2"}
)

// DefaultRules maps well-known activity names to their usual court. The list
// can be replaced wholesale via the rules file.
func DefaultRules() []RuleConfig {
	return []RuleConfig{
		{Pattern: `futev[oô]lei`, Court: 1},
		{Pattern: `beach\s*tennis`, Court: 2},
		{Pattern: `t[eê]nis`, Court: 2},
	}
}

type compiledRule struct {
	re    *regexp.Regexp
	court int
}

// Classifier maps a raw calendar event to a court-occupancy Verdict. The rule
// set is fixed at construction; callers inject their own rules for testing or
// per-deployment overrides.
type Classifier struct {
	rules []compiledRule
}

// NewClassifier compiles the given rules in order. Malformed patterns and
// out-of-range court numbers are skipped silently.
func NewClassifier(rules []RuleConfig) *Classifier {
	c := &Classifier{}
	for _, r := range rules {
		if r.Court < 1 || r.Court > NumCourts {
			continue
		}
		re, err := regexp.Compile("(?i)" + r.Pattern)
		if err != nil {
			continue
		}
		c.rules = append(c.rules, compiledRule{re: re, court: r.Court})
	}
	return c
}

// Classify runs the priority chain over the event's summary, description and
// location: explicit court markers first, then the configured rules, then the
// unknown-single fallback. All-day events never reach the classifier; they
// block both courts unconditionally.
func (c *Classifier) Classify(summary, description, location string) Verdict {
	text := strings.ToLower(summary + " " + description + " " + location)

	has1 := containsAny(text, court1Markers)
	has2 := containsAny(text, court2Markers)

	switch {
	case has1 && has2:
		return Verdict{Courts: []int{1, 2}, BlockBoth: true}
	case has1:
		return Verdict{Courts: []int{1}}
	case has2:
		return Verdict{Courts: []int{2}}
	}

	for _, r := range c.rules {
		if r.re.MatchString(text) {
			return Verdict{Courts: []int{r.court}}
		}
	}

	// No keyword matched: the event consumes one court's capacity, but which
	// court stays undetermined.
	return Verdict{Unknown: true}
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

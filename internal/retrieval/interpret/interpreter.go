// Package interpret extracts structured filter predicates from free-text
// search queries via keyword and regex heuristics.
package interpret

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/recruitr-hq/recruitr/internal/domain/search/filter"
)

// Team size patterns, tried in order; the first match wins.
var (
	teamRangePattern  = regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*(people|team|reports|direct)`)
	teamToPattern     = regexp.MustCompile(`(\d+)\s+to\s+(\d+)\s*(people|team|reports)`)
	teamSinglePattern = regexp.MustCompile(`(manage|lead|team of)\s+(\d+)`)
)

// Experience patterns, tried in order. "with N years" runs before the bare
// "N years" pattern, which would otherwise shadow it. "N+ years" and
// "N years" are indistinguishable: both set only the minimum.
var (
	expRangePattern = regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*years?`)
	expWithPattern  = regexp.MustCompile(`with\s+(\d+)\s*years?`)
	expMinPattern   = regexp.MustCompile(`(\d+)\s*\+?\s*(or more\s*)?years?`)
)

// companyRangePattern matches a literal bucket range after the word "company".
var companyRangePattern = regexp.MustCompile(`company.*?(\d+)\s*-\s*(\d+)`)

// rolePatterns holds one word-boundary pattern per roleTable entry, in table order.
var rolePatterns = compileRolePatterns()

func compileRolePatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(roleTable))
	for i, entry := range roleTable {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(entry.keyword) + `\b`)
	}
	return patterns
}

// Interpreter extracts structured filters from natural-language prompts.
// Stateless; safe for concurrent use.
type Interpreter struct{}

// New creates a prompt interpreter.
func New() *Interpreter { return &Interpreter{} }

// Extract parses the prompt and returns it unchanged together with every
// filter it could recognize. Extraction never fails: unmatched input yields
// empty filters, and a predicate that cannot be parsed stays unset.
func (i *Interpreter) Extract(prompt string) (string, filter.Filters) {
	lower := strings.ToLower(prompt)
	f := filter.New()

	if remote, ok := extractRemote(lower); ok {
		f = f.WithRemote(remote)
	}
	if tools := extractTools(lower); len(tools) > 0 {
		f = f.WithTools(tools)
	}
	if role, ok := extractRole(lower); ok {
		f = f.WithRole(role)
	}

	if minTeam, maxTeam, ok := extractTeamSize(lower); ok {
		if minTeam != nil {
			f = f.WithMinTeamSize(*minTeam)
		}
		if maxTeam != nil {
			f = f.WithMaxTeamSize(*maxTeam)
		}
	}

	if sizes := extractCompanySize(lower); len(sizes) > 0 {
		f = f.WithCompanySizes(sizes)
	}

	if minExp, maxExp, ok := extractExperienceYears(lower); ok {
		if minExp != nil {
			f = f.WithMinExperienceYears(*minExp)
		}
		if maxExp != nil {
			f = f.WithMaxExperienceYears(*maxExp)
		}
	}

	return prompt, f
}

// extractRemote returns the remote preference. A prompt mentioning both
// remote and onsite phrases (or neither) leaves the predicate unset.
func extractRemote(prompt string) (bool, bool) {
	hasRemote := containsAny(prompt, remoteKeywords)
	hasOnsite := containsAny(prompt, onsiteKeywords)

	switch {
	case hasRemote && !hasOnsite:
		return true, true
	case hasOnsite && !hasRemote:
		return false, true
	default:
		return false, false
	}
}

// extractTools returns catalog tools mentioned in the prompt, preserving
// canonical display case.
func extractTools(prompt string) []string {
	var found []string
	for _, tool := range toolCatalog {
		if strings.Contains(prompt, strings.ToLower(tool)) {
			found = append(found, tool)
		}
	}
	return found
}

// extractRole returns the first role whose keyword matches on a word boundary.
func extractRole(prompt string) (string, bool) {
	for i, entry := range roleTable {
		if rolePatterns[i].MatchString(prompt) {
			return entry.role, true
		}
	}
	return "", false
}

// extractTeamSize parses team-size mentions. Patterns are mutually exclusive:
// an explicit "N-M people" range, "N to M people", then "manage/lead/team of N"
// which collapses to min=max=N.
func extractTeamSize(prompt string) (*int, *int, bool) {
	if m := teamRangePattern.FindStringSubmatch(prompt); m != nil {
		lo, errLo := strconv.Atoi(m[1])
		hi, errHi := strconv.Atoi(m[2])
		if errLo != nil || errHi != nil {
			return nil, nil, false
		}
		return &lo, &hi, true
	}

	if m := teamToPattern.FindStringSubmatch(prompt); m != nil {
		lo, errLo := strconv.Atoi(m[1])
		hi, errHi := strconv.Atoi(m[2])
		if errLo != nil || errHi != nil {
			return nil, nil, false
		}
		return &lo, &hi, true
	}

	if m := teamSinglePattern.FindStringSubmatch(prompt); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, nil, false
		}
		return &n, &n, true
	}

	return nil, nil, false
}

// extractCompanySize maps size keywords to bucket sets, falling back to a
// literal numeric range following the word "company".
func extractCompanySize(prompt string) []string {
	for _, entry := range companySizeTable {
		if strings.Contains(prompt, entry.keyword) {
			return entry.buckets
		}
	}

	if m := companyRangePattern.FindStringSubmatch(prompt); m != nil {
		return []string{m[1] + "-" + m[2]}
	}

	return nil
}

// extractExperienceYears parses experience mentions: "N-M years" as a range,
// "with N years" collapsed to min=max=N, then "N[+] years" setting only the
// minimum.
func extractExperienceYears(prompt string) (*int, *int, bool) {
	if m := expRangePattern.FindStringSubmatch(prompt); m != nil {
		lo, errLo := strconv.Atoi(m[1])
		hi, errHi := strconv.Atoi(m[2])
		if errLo != nil || errHi != nil {
			return nil, nil, false
		}
		return &lo, &hi, true
	}

	if m := expWithPattern.FindStringSubmatch(prompt); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, nil, false
		}
		return &n, &n, true
	}

	if m := expMinPattern.FindStringSubmatch(prompt); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, nil, false
		}
		return &n, nil, true
	}

	return nil, nil, false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

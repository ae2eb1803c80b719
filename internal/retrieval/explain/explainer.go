// Package explain turns a matched participant into short human-readable
// reasons a researcher can scan without re-reading the whole profile.
package explain

import (
	"fmt"
	"strings"

	"github.com/recruitr-hq/recruitr/internal/domain"
	"github.com/recruitr-hq/recruitr/internal/domain/search/filter"
)

// maxReasons bounds the list so result cards stay scannable.
const maxReasons = 5

// Explainer generates match reasons for search results.
type Explainer struct{}

// NewExplainer returns a stateless explainer.
func NewExplainer() *Explainer { return &Explainer{} }

// Explain lists why the participant matches, most salient first: role, tools,
// remote status, skills, company, experience, then filter-driven attributes.
// At most five reasons are returned.
func (e *Explainer) Explain(p *domain.Participant, f filter.Filters, queryTerms []string) []string {
	reasons := make([]string, 0, maxReasons)

	if p.Role() != "" {
		reasons = append(reasons, "Role: "+p.Role())
	}

	if reason, ok := toolReason(p.Tools(), f, queryTerms); ok {
		reasons = append(reasons, reason)
	}

	if p.Remote() {
		reasons = append(reasons, "Remote worker")
	}

	if reason, ok := skillReason(p.Skills(), queryTerms); ok {
		reasons = append(reasons, reason)
	}

	if p.CompanyName() != "" && anyTermInText(queryTerms, p.CompanyName()) {
		reasons = append(reasons, "Works at "+p.CompanyName())
	}

	if p.ExperienceYears() > 0 {
		reasons = append(reasons, fmt.Sprintf("%d years of experience", p.ExperienceYears()))
	}

	if _, ok := f.MinTeamSize(); ok && p.TeamSize() > 0 {
		reasons = append(reasons, fmt.Sprintf("Manages team of %d", p.TeamSize()))
	}

	if sizes := f.CompanySizes(); len(sizes) > 0 && p.CompanySize() != "" {
		for _, s := range sizes {
			if s == p.CompanySize() {
				reasons = append(reasons, "Company size: "+p.CompanySize())
				break
			}
		}
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}

// toolReason prefers filter-requested tools, then query-mentioned tools, then
// the first few the participant uses.
func toolReason(tools []string, f filter.Filters, queryTerms []string) (string, bool) {
	if len(tools) == 0 {
		return "", false
	}

	if requested := f.Tools(); len(requested) > 0 {
		matched := intersect(tools, requested)
		if len(matched) > 0 {
			return "Uses " + strings.Join(matched, ", "), true
		}
		return "", false
	}

	if len(queryTerms) > 0 {
		matched := make([]string, 0, len(tools))
		for _, tool := range tools {
			if containsFold(queryTerms, tool) {
				matched = append(matched, tool)
			}
		}
		if len(matched) > 0 {
			return "Uses " + strings.Join(truncate(matched, 3), ", "), true
		}
		return "", false
	}

	return "Uses " + strings.Join(truncate(tools, 3), ", "), true
}

// skillReason lists skills overlapping the query terms, falling back to the
// first few skills when nothing overlaps.
func skillReason(skills []string, queryTerms []string) (string, bool) {
	if len(skills) == 0 {
		return "", false
	}
	if len(queryTerms) == 0 {
		return "Skills: " + strings.Join(truncate(skills, 3), ", "), true
	}

	matched := make([]string, 0, len(skills))
	for _, skill := range skills {
		if anyTermInText(queryTerms, skill) {
			matched = append(matched, skill)
		}
	}
	if len(matched) > 0 {
		return "Skills: " + strings.Join(truncate(matched, 3), ", "), true
	}
	return "Skills: " + strings.Join(truncate(skills, 3), ", "), true
}

func intersect(values, wanted []string) []string {
	set := make(map[string]struct{}, len(wanted))
	for _, w := range wanted {
		set[w] = struct{}{}
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := set[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

func containsFold(terms []string, value string) bool {
	for _, term := range terms {
		if strings.EqualFold(term, value) {
			return true
		}
	}
	return false
}

func anyTermInText(terms []string, text string) bool {
	lower := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

func truncate(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}

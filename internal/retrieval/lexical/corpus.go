package lexical

import (
	"strings"

	"github.com/recruitr-hq/recruitr/internal/domain"
)

// BuildDocument synthesizes the searchable text for one participant. Field
// repetition is the implicit weight: BM25 rewards term frequency, so repeating
// a field biases relevance toward it. Role counts triple, tools double, skills
// 1.5x; the free-text description appears once and is naturally down-weighted
// by its own length under BM25 length normalization.
func BuildDocument(p *domain.Participant) string {
	var parts []string

	if p.Role() != "" {
		parts = append(parts, p.Role(), p.Role(), p.Role())
	}

	if p.Industry() != "" {
		parts = append(parts, p.Industry())
	}
	if p.CompanyName() != "" {
		parts = append(parts, p.CompanyName())
	}

	if p.Remote() {
		parts = append(parts, "remote")
	} else {
		parts = append(parts, "onsite office")
	}

	for i := 0; i < 2; i++ {
		parts = append(parts, p.Tools()...)
	}

	skills := p.Skills()
	parts = append(parts, skills...)
	if len(skills) > 0 {
		// Half of the skills again, rounding up, for ~1.5x weight.
		parts = append(parts, skills[:len(skills)/2+1]...)
	}

	if p.Description() != "" {
		parts = append(parts, p.Description())
	}

	return strings.Join(parts, " ")
}

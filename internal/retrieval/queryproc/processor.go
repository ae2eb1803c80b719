// Package queryproc normalizes raw query text and expands abbreviations into
// an enriched term set before retrieval.
package queryproc

import (
	"regexp"
	"strings"
)

// punctuation matches everything except word characters, whitespace and hyphens.
var punctuation = regexp.MustCompile(`[^\w\s-]`)

// Processed is the outcome of query preprocessing.
type Processed struct {
	Original   string
	Normalized string
	Expanded   string
	Terms      []string
}

// Processor preprocesses search queries. Pure and stateless; safe for
// concurrent use.
type Processor struct{}

// New creates a query processor.
func New() *Processor { return &Processor{} }

// Process normalizes the query, expands synonyms and extracts terms.
// Empty input yields an empty Processed; there is no failure mode.
func (p *Processor) Process(query string) Processed {
	normalized := normalize(query)
	expanded := expandSynonyms(normalized)
	return Processed{
		Original:   query,
		Normalized: normalized,
		Expanded:   expanded,
		Terms:      extractTerms(expanded),
	}
}

// normalize lowercases, collapses whitespace and strips punctuation except
// hyphen and underscore.
func normalize(text string) string {
	text = strings.ToLower(text)
	text = strings.Join(strings.Fields(text), " ")
	text = punctuation.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}

// expandSynonyms scans left to right for the longest matching phrase (up to
// maxPhraseWords words). On a match it emits both the original phrase and its
// expansion, then advances past the matched words; unmatched words pass
// through unchanged.
func expandSynonyms(text string) string {
	words := strings.Fields(text)
	expanded := make([]string, 0, len(words))

	i := 0
	for i < len(words) {
		matched := false
		maxLen := maxPhraseWords
		if remaining := len(words) - i; remaining < maxLen {
			maxLen = remaining
		}
		for phraseLen := maxLen; phraseLen >= 1; phraseLen-- {
			phrase := strings.Join(words[i:i+phraseLen], " ")
			if expansion, ok := synonyms[phrase]; ok {
				expanded = append(expanded, phrase, expansion)
				i += phraseLen
				matched = true
				break
			}
		}
		if !matched {
			expanded = append(expanded, words[i])
			i++
		}
	}

	return strings.Join(expanded, " ")
}

// extractTerms returns the deduplicated, order-preserving token list.
func extractTerms(text string) []string {
	seen := make(map[string]bool)
	var terms []string
	for _, term := range strings.Fields(text) {
		if !seen[term] {
			seen[term] = true
			terms = append(terms, term)
		}
	}
	return terms
}

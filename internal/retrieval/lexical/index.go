package lexical

import (
	"math"

	"github.com/recruitr-hq/recruitr/internal/domain"
)

// Default BM25 parameters.
const (
	DefaultK1 = 1.5
	DefaultB  = 0.75

	// idfEpsilon replaces negative IDF values with a small positive fraction
	// of the average IDF, so very common terms still contribute instead of
	// subtracting relevance (Okapi variant).
	idfEpsilon = 0.25
)

// Index is an immutable BM25 index over a participant corpus. Built once,
// read concurrently, replaced wholesale on reload.
type Index struct {
	k1 float64
	b  float64

	ids       []string
	termFreqs []map[string]int
	docLens   []int
	avgDocLen float64
	idf       map[string]float64
}

// BuildIndex tokenizes each participant's synthesized document and computes
// term and inverse-document frequencies.
func BuildIndex(participants []domain.Participant, k1, b float64) *Index {
	if k1 <= 0 {
		k1 = DefaultK1
	}
	if b < 0 || b > 1 {
		b = DefaultB
	}

	idx := &Index{
		k1:        k1,
		b:         b,
		ids:       make([]string, 0, len(participants)),
		termFreqs: make([]map[string]int, 0, len(participants)),
		docLens:   make([]int, 0, len(participants)),
	}

	docFreq := make(map[string]int)
	totalLen := 0

	for i := range participants {
		p := &participants[i]
		tokens := tokenize(BuildDocument(p))

		tf := make(map[string]int, len(tokens))
		for _, tok := range tokens {
			tf[tok]++
		}
		for term := range tf {
			docFreq[term]++
		}

		idx.ids = append(idx.ids, p.ID())
		idx.termFreqs = append(idx.termFreqs, tf)
		idx.docLens = append(idx.docLens, len(tokens))
		totalLen += len(tokens)
	}

	if len(idx.docLens) > 0 {
		idx.avgDocLen = float64(totalLen) / float64(len(idx.docLens))
	}
	idx.idf = computeIDF(docFreq, len(idx.docLens))

	return idx
}

// computeIDF calculates idf = ln((N - df + 0.5) / (df + 0.5)) per term.
// Negative values (terms in more than half the corpus) are floored at
// idfEpsilon times the average IDF.
func computeIDF(docFreq map[string]int, numDocs int) map[string]float64 {
	idf := make(map[string]float64, len(docFreq))
	var idfSum float64
	var negative []string

	for term, df := range docFreq {
		v := math.Log(float64(numDocs)-float64(df)+0.5) - math.Log(float64(df)+0.5)
		idf[term] = v
		idfSum += v
		if v < 0 {
			negative = append(negative, term)
		}
	}

	if len(idf) > 0 {
		floor := idfEpsilon * (idfSum / float64(len(idf)))
		for _, term := range negative {
			idf[term] = floor
		}
	}

	return idf
}

// Len returns the number of indexed documents.
func (idx *Index) Len() int { return len(idx.ids) }

// IDs returns the participant ids in corpus order.
func (idx *Index) IDs() []string { return idx.ids }

// Scores computes the BM25 score of every document against the query tokens,
// in corpus order. Query terms absent from the vocabulary contribute nothing.
func (idx *Index) Scores(queryTokens []string) []float64 {
	scores := make([]float64, len(idx.ids))
	if idx.avgDocLen == 0 {
		return scores
	}

	for _, term := range queryTokens {
		termIDF, ok := idx.idf[term]
		if !ok {
			continue
		}
		for i, tf := range idx.termFreqs {
			freq, ok := tf[term]
			if !ok {
				continue
			}
			f := float64(freq)
			norm := idx.k1 * (1 - idx.b + idx.b*float64(idx.docLens[i])/idx.avgDocLen)
			scores[i] += termIDF * f * (idx.k1 + 1) / (f + norm)
		}
	}

	return scores
}

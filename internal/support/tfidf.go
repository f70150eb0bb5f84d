package support

import (
	"math"
	"strings"
	"unicode"
)

// tfidf is a term-frequency/inverse-document-frequency vector space built
// over a fixed corpus of documents. Queries are projected into the same
// space and compared by cosine similarity.
type tfidf struct {
	vocab   map[string]int
	idf     []float64
	docVecs [][]float64
}

// newTFIDF builds the vector space over the given corpus. Smoothed idf,
// idf(t) = ln((1+n)/(1+df)) + 1, with l2-normalized document vectors.
func newTFIDF(corpus []string) *tfidf {
	m := &tfidf{vocab: make(map[string]int)}

	tokenized := make([][]string, len(corpus))
	df := make(map[string]int)
	for i, doc := range corpus {
		tokens := tokenize(doc)
		tokenized[i] = tokens

		seen := make(map[string]bool)
		for _, t := range tokens {
			if _, ok := m.vocab[t]; !ok {
				m.vocab[t] = len(m.vocab)
			}
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}

	n := float64(len(corpus))
	m.idf = make([]float64, len(m.vocab))
	for t, idx := range m.vocab {
		m.idf[idx] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}

	m.docVecs = make([][]float64, len(corpus))
	for i, tokens := range tokenized {
		m.docVecs[i] = m.vector(tokens)
	}
	return m
}

// Scores returns the cosine similarity of the query against every corpus
// document, in corpus order.
func (m *tfidf) Scores(query string) []float64 {
	qv := m.vector(tokenize(query))
	scores := make([]float64, len(m.docVecs))
	if qv == nil {
		return scores
	}
	for i, dv := range m.docVecs {
		if dv == nil {
			continue
		}
		scores[i] = dot(qv, dv)
	}
	return scores
}

// vector builds the l2-normalized tf-idf vector for a token list.
// Tokens outside the corpus vocabulary are ignored. Returns nil when no
// token is in-vocabulary.
func (m *tfidf) vector(tokens []string) []float64 {
	vec := make([]float64, len(m.vocab))
	known := false
	for _, t := range tokens {
		if idx, ok := m.vocab[t]; ok {
			vec[idx]++
			known = true
		}
	}
	if !known {
		return nil
	}

	var norm float64
	for idx := range vec {
		vec[idx] *= m.idf[idx]
		norm += vec[idx] * vec[idx]
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return nil
	}
	for idx := range vec {
		vec[idx] /= norm
	}
	return vec
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// tokenize lowercases text and splits it into alphanumeric word runs.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

package support

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/omarselim0/shopmate/internal/catalog"
)

// Similarity thresholds. The product cutoff is inclusive, the FAQ cutoff
// is strict.
const (
	productMatchThreshold = 0.5
	faqMatchThreshold     = 0.05
)

// ProductMatcher finds the closest product name for a free-text utterance.
type ProductMatcher struct {
	products []catalog.Product
}

// NewProductMatcher creates a matcher over the product table.
func NewProductMatcher(products []catalog.Product) *ProductMatcher {
	return &ProductMatcher{products: products}
}

// Match returns the best-scoring product when its similarity ratio is at
// least 0.5. Product names embedded in a longer sentence still match
// because the utterance is also compared window-by-window.
func (m *ProductMatcher) Match(utterance string) (catalog.Product, float64, bool) {
	lower := strings.ToLower(strings.TrimSpace(utterance))
	if lower == "" {
		return catalog.Product{}, 0, false
	}
	words := strings.Fields(lower)

	var best catalog.Product
	bestScore := -1.0

	for _, p := range m.products {
		name := strings.ToLower(p.Name)
		score := similarityRatio(lower, name)

		// Slide a window of the product name's word length across the
		// utterance so "do you have the red hoodie in stock" matches.
		nameWords := len(strings.Fields(name))
		for i := 0; i+nameWords <= len(words); i++ {
			window := strings.Join(words[i:i+nameWords], " ")
			if s := similarityRatio(window, name); s > score {
				score = s
			}
		}

		if score > bestScore {
			bestScore = score
			best = p
		}
	}

	if bestScore >= productMatchThreshold {
		return best, bestScore, true
	}
	return catalog.Product{}, bestScore, false
}

// similarityRatio is a normalized Levenshtein ratio on a 0-1 scale.
func similarityRatio(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

// FAQMatcher answers a query with the closest FAQ entry by TF-IDF cosine
// similarity.
type FAQMatcher struct {
	faqs  []catalog.FAQ
	model *tfidf
}

// NewFAQMatcher builds the TF-IDF space over the FAQ questions once.
func NewFAQMatcher(faqs []catalog.FAQ) *FAQMatcher {
	questions := make([]string, len(faqs))
	for i, f := range faqs {
		questions[i] = f.Question
	}
	return &FAQMatcher{faqs: faqs, model: newTFIDF(questions)}
}

// Match returns the highest-scoring FAQ entry when its cosine similarity
// exceeds 0.05. A score of exactly 0.05 does not match.
func (m *FAQMatcher) Match(query string) (catalog.FAQ, float64, bool) {
	if len(m.faqs) == 0 {
		return catalog.FAQ{}, 0, false
	}

	scores := m.model.Scores(query)
	bestIdx := 0
	for i, s := range scores {
		if s > scores[bestIdx] {
			bestIdx = i
		}
	}

	if faqScoreMatches(scores[bestIdx]) {
		return m.faqs[bestIdx], scores[bestIdx], true
	}
	return catalog.FAQ{}, scores[bestIdx], false
}

// faqScoreMatches reports whether a cosine score clears the FAQ cutoff.
// The cutoff is strict: a score of exactly 0.05 does not match.
func faqScoreMatches(score float64) bool {
	return score > faqMatchThreshold
}

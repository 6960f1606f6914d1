package search

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"ecommerce-backend/internal/domain"
)

const (
	// DefaultThreshold is the minimum similarity for a fuzzy hit.
	DefaultThreshold = 0.7
	// shortQueryRunes queries at or below this length never use fuzzy matching.
	shortQueryRunes = 3
)

// Matcher decides whether a product satisfies a search query.
type Matcher interface {
	Match(p domain.Product, query string) bool
}

// Filter keeps the products that match query. A blank query keeps everything.
func Filter(m Matcher, products []domain.Product, query string) []domain.Product {
	query = strings.TrimSpace(query)
	if query == "" {
		return products
	}
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if m.Match(p, query) {
			out = append(out, p)
		}
	}
	return out
}

// New returns the matcher registered under mode.
func New(mode string) (Matcher, error) {
	switch mode {
	case "", "substring":
		return Substring{}, nil
	case "fuzzy":
		return Fuzzy{Threshold: DefaultThreshold}, nil
	default:
		return nil, fmt.Errorf("unknown search mode %q", mode)
	}
}

// Substring matches when the lowercased query is contained in the name or in any keyword.
type Substring struct{}

func (Substring) Match(p domain.Product, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	for _, k := range p.Keywords {
		if strings.Contains(strings.ToLower(k), q) {
			return true
		}
	}
	return false
}

// Fuzzy extends Substring with edit-distance similarity against the whole name,
// each word of the name and each keyword.
type Fuzzy struct {
	Threshold float64
}

func (f Fuzzy) Match(p domain.Product, query string) bool {
	if (Substring{}).Match(p, query) {
		return true
	}
	q := strings.ToLower(query)
	if utf8.RuneCountInString(q) <= shortQueryRunes {
		return false
	}

	threshold := f.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	name := strings.ToLower(p.Name)
	candidates := append([]string{name}, strings.Fields(name)...)
	for _, k := range p.Keywords {
		candidates = append(candidates, strings.ToLower(k))
	}
	for _, c := range candidates {
		if Similarity(q, c) >= threshold {
			return true
		}
	}
	return false
}

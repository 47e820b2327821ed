package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/nikbrunner/pin/internal/model"
)

// Normalize lowercases, strips diacritics and collapses every run of
// non-alphanumeric characters into a single space.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	space := false
	for _, r := range norm.NFD.String(strings.ToLower(s)) {
		if unicode.Is(unicode.Mn, r) {
			// combining mark left over from decomposition
			continue
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		} else {
			space = true
		}
	}
	return b.String()
}

// Tokenize splits normalized text into tokens.
func Tokenize(s string) []string {
	return strings.Fields(Normalize(s))
}

// BuildSearchTokens derives the deduplicated token set for a record from
// its title, URLs, topics and categories. Idempotent for a given record.
func BuildSearchTokens(r model.Record) []string {
	seen := make(map[string]bool)
	var tokens []string

	add := func(text string) {
		for _, t := range Tokenize(text) {
			if !seen[t] {
				seen[t] = true
				tokens = append(tokens, t)
			}
		}
	}

	add(r.Title)
	add(r.URL)
	add(r.SourceURL)
	add(strings.Join(r.Topics, " "))
	add(strings.Join(r.Categories, " "))
	if r.LegacyCategory != "" {
		add(r.LegacyCategory)
	}

	return tokens
}

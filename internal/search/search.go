package search

import (
	"sort"
	"strings"

	"github.com/nikbrunner/pin/internal/model"
)

// Per-token scoring weights. A query token contributes exactly one tier
// per record: the title-token tier, else the prefix tier, else the URL
// substring tier.
const (
	ScoreTitleToken   = 3
	ScoreTokenPrefix  = 2
	ScoreURLSubstring = 1
)

// Result pairs a record with its match score.
type Result struct {
	Record model.Record
	Score  int
}

// Search scores records against the query. An empty (or fully
// non-alphanumeric) query passes every record through with score 0 in
// input order. Otherwise records with a zero total are excluded and the
// rest sort by score descending, then createdAt descending.
func Search(records []model.Record, query string) []Result {
	qTokens := Tokenize(query)
	if len(qTokens) == 0 {
		results := make([]Result, len(records))
		for i, r := range records {
			results[i] = Result{Record: r}
		}
		return results
	}

	var results []Result
	for _, r := range records {
		tokens := r.SearchTokens
		if tokens == nil {
			tokens = BuildSearchTokens(r)
		}
		titleTokens := Tokenize(r.Title)
		urlText := Normalize(r.URL) + " " + Normalize(r.SourceURL)

		score := 0
		for _, qt := range qTokens {
			switch {
			case containsToken(titleTokens, qt):
				score += ScoreTitleToken
			case hasPrefixToken(tokens, qt):
				score += ScoreTokenPrefix
			case strings.Contains(urlText, qt):
				score += ScoreURLSubstring
			}
		}

		if score > 0 {
			results = append(results, Result{Record: r, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Record.CreatedAt > results[j].Record.CreatedAt
	})

	return results
}

func containsToken(tokens []string, t string) bool {
	for _, tok := range tokens {
		if tok == t {
			return true
		}
	}
	return false
}

func hasPrefixToken(tokens []string, prefix string) bool {
	for _, tok := range tokens {
		if strings.HasPrefix(tok, prefix) {
			return true
		}
	}
	return false
}

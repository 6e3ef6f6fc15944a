package text

import "strings"

// MinRelevance is the cut-off below which a query match is discarded
// from search results.
const MinRelevance = 0.3

// minPartialLen is the shortest haystack word considered for partial
// token matches; shorter words produce too many accidental hits.
const minPartialLen = 3

// Tokenize splits a query on whitespace and lowercases the tokens.
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// Searchable builds the lowercased haystack a query is matched against:
// the given fields joined by single spaces, empty fields skipped.
func Searchable(fields ...string) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Relevance scores how well a free-text query matches a haystack built by
// Searchable. Each query token contributes 1.0 when it appears as a
// substring, or 0.5 when a haystack word is embedded in it (a partial
// match such as "apartment" inside "apartments"). A verbatim occurrence
// of the whole query phrase adds a 0.5 bonus, with the maximum possible
// score raised by the same amount so the bonus rewards rather than skews.
// The result is the accumulated score normalized to [0,1].
func Relevance(query, haystack string) float64 {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return 0
	}

	words := strings.Fields(haystack)
	score := 0.0
	maxPossible := float64(len(tokens))

	for _, tok := range tokens {
		if strings.Contains(haystack, tok) {
			score++
			continue
		}
		if hasPartialMatch(words, tok) {
			score += 0.5
		}
	}

	phrase := strings.ToLower(strings.TrimSpace(query))
	if phrase != "" && strings.Contains(haystack, phrase) {
		score += 0.5
		maxPossible += 0.5
	}

	rel := score / maxPossible
	if rel < 0 {
		return 0
	}
	if rel > 1 {
		return 1
	}
	return rel
}

// hasPartialMatch reports whether any haystack word is a substring of the
// token. The whole-token-in-haystack case is handled by the caller.
func hasPartialMatch(words []string, token string) bool {
	for _, w := range words {
		if len(w) >= minPartialLen && strings.Contains(token, w) {
			return true
		}
	}
	return false
}

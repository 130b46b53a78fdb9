package catalog

import "strings"

// FTSQuery turns a raw search phrase into an FTS5 query that matches rows
// containing every word of the phrase. Each token is quoted as a string
// literal with embedded quotes doubled, so no token can act as an FTS5
// operator. ok is false when the phrase holds no tokens, meaning the field
// was not searched.
//
// FTSQuery must be applied exactly once to raw input.
func FTSQuery(raw string) (query string, ok bool) {
	if raw == "" {
		return "", false
	}
	tokens := strings.Fields(strings.ReplaceAll(raw, `"`, `""`))
	if len(tokens) == 0 {
		return "", false
	}
	for i, tok := range tokens {
		tokens[i] = `"` + tok + `"`
	}
	return strings.Join(tokens, " "), true
}

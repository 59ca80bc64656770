package parsing

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Upper upper-cases s without language-specific mappings, so the result does
// not depend on the locale of the host. A Caser is stateful, hence one per call.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Lower is the lower-case counterpart of Upper.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// SplitList splits a comma-separated option value into trimmed tokens.
// Empty tokens are kept so that grammars can reject them.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// SplitAll applies SplitList to each value and concatenates the results,
// dropping empty tokens. It is meant for positional arguments where
// "a,b c" means three identifiers.
func SplitAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, tok := range SplitList(v) {
			if tok != "" {
				out = append(out, tok)
			}
		}
	}
	return out
}

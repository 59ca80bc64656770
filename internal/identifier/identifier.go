package identifier

import (
	"regexp"
	"strings"

	"github.com/e-Spirit/FSDevTools-sub005/internal/parsing"
)

// Family names an identifier family; it is the prefix of its canonical form.
type Family string

const (
	FamilyRootNode          Family = "root"
	FamilyUID               Family = "uid"
	FamilyEntities          Family = "entities"
	FamilyPath              Family = "path"
	FamilySchema            Family = "schema"
	FamilyProjectProperties Family = "projectproperty"
)

// Identifier is a resolved, immutable export target.
type Identifier interface {
	// String returns the canonical form, which parses back to an equal value.
	String() string
	Family() Family
}

// Grammar is a grammar producing export identifiers.
type Grammar = parsing.Grammar[Identifier]

// delimiter separates a prefix from its payload and tolerates whitespace.
var delimiter = regexp.MustCompile(`\s*:\s*`)

// tokens splits a trimmed raw value on the delimiter. Empty parts are kept
// so that "a::b" yields three tokens and is rejected as malformed.
func tokens(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return delimiter.Split(trimmed, -1)
}

// hasPrefixToken reports whether raw starts with "<prefix>:" with a
// case-insensitive prefix. The payload is validated by payload.
func hasPrefixToken(raw, prefix string) bool {
	t := tokens(raw)
	return len(t) >= 2 && parsing.Lower(t[0]) == prefix
}

// payload returns the single non-empty token after the prefix of raw or a
// malformed error.
func payload(raw string) (string, error) {
	t := tokens(raw)
	if len(t) != 2 || t[1] == "" {
		return "", parsing.Malformed(raw, "wrong input format for input string '%s'", raw)
	}
	return t[1], nil
}

// parseEach applies fn to every element of raw, stopping at the first error.
func parseEach[T any](raw []string, fn func(string) (T, error)) ([]T, error) {
	if raw == nil {
		return nil, parsing.Malformed("", "input is nil")
	}
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		v, err := fn(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

package webapp

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/e-Spirit/FSDevTools-sub005/internal/parsing"
)

var globalPattern = regexp.MustCompile(`^global\((.*)\)$`)

// ParseSingle resolves one scope name or global(<id>) token.
func ParseSingle(token string) (Identifier, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, parsing.Malformed(token, "scope or global web app id is empty")
	}

	if m := globalPattern.FindStringSubmatch(token); m != nil {
		g, err := ForGlobal(m[1])
		if err != nil {
			return nil, err
		}
		return g, nil
	}

	upper := parsing.Upper(token)
	scope, ok := lookupScope(upper)
	if !ok {
		slog.Debug("no web scope found", "input", token)
		legal := projectScopeNames()
		return nil, parsing.UnknownValue(token, legal,
			"invalid web app scope '%s', valid scopes are %s, or pass global(<webAppId>) for a global web app",
			token, strings.Join(legal, ", "))
	}
	if scope == ScopeGlobal {
		return nil, parsing.Malformed(token, "global web app scope has to be passed in the form of 'global(<webAppId>)'")
	}
	return Scoped{scope: scope}, nil
}

// ParseMultiple resolves a comma-separated list. The first invalid token
// fails the whole list.
func ParseMultiple(raw string) ([]Identifier, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, parsing.Malformed(raw, "web app list is empty")
	}
	tokens := parsing.SplitList(raw)
	out := make([]Identifier, 0, len(tokens))
	for _, tok := range tokens {
		id, err := ParseSingle(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// Extract is ParseMultiple for optional values: blank input yields no identifiers.
func Extract(raw string) ([]Identifier, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	return ParseMultiple(raw)
}

// Names returns the canonical forms of ids.
func Names(ids []Identifier) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

package webapp

import (
	"strings"

	"github.com/e-Spirit/FSDevTools-sub005/internal/parsing"
)

// Scope is a deployment context of a project web app.
type Scope string

const (
	ScopePreview Scope = "PREVIEW"
	ScopeStaging Scope = "STAGING"
	ScopeWebEdit Scope = "WEBEDIT"
	ScopeLive    Scope = "LIVE"
	// ScopeGlobal is the pseudo-scope of global web apps. It is only
	// reachable through the global(<id>) form.
	ScopeGlobal Scope = "GLOBAL"
)

var scopes = []Scope{ScopePreview, ScopeStaging, ScopeWebEdit, ScopeLive, ScopeGlobal}

// ProjectScopes returns the scopes accepted by name, i.e. all but GLOBAL.
func ProjectScopes() []Scope {
	out := make([]Scope, 0, len(scopes)-1)
	for _, s := range scopes {
		if s != ScopeGlobal {
			out = append(out, s)
		}
	}
	return out
}

// Name returns the lower-case spelling used on the command line.
func (s Scope) Name() string {
	return parsing.Lower(string(s))
}

func lookupScope(upper string) (Scope, bool) {
	for _, s := range scopes {
		if string(s) == upper {
			return s, true
		}
	}
	return "", false
}

func projectScopeNames() []string {
	ps := ProjectScopes()
	out := make([]string, len(ps))
	for i, s := range ps {
		out[i] = s.Name()
	}
	return out
}

// Identifier is either a Scoped or a Global web app. The set of variants is
// closed; switch on the concrete type to tell them apart.
type Identifier interface {
	Scope() Scope
	IsGlobal() bool
	String() string

	webApp()
}

// Scoped identifies the web app of a project scope. The zero value names no
// scope: its Scope is "" and it renders as the empty string. Use ForScope or
// the well-known values.
type Scoped struct {
	scope Scope
}

// Global identifies a global web app by id.
type Global struct {
	id string
}

// Well-known identifiers.
var (
	Preview = Scoped{scope: ScopePreview}
	Staging = Scoped{scope: ScopeStaging}
	WebEdit = Scoped{scope: ScopeWebEdit}
	Live    = Scoped{scope: ScopeLive}
	FS5Root = Global{id: "fs5root"}
)

// ForScope returns the identifier of a project scope. GLOBAL is rejected:
// global web apps are built with ForGlobal.
func ForScope(s Scope) (Scoped, error) {
	if s == ScopeGlobal {
		return Scoped{}, parsing.IllegalConstruction("scope %s requires a global web app id, use global(<webAppId>)", s)
	}
	if _, ok := lookupScope(string(s)); !ok {
		return Scoped{}, parsing.IllegalConstruction("unknown web app scope '%s'", s)
	}
	return Scoped{scope: s}, nil
}

// ForGlobal returns the identifier of a global web app.
func ForGlobal(id string) (Global, error) {
	if strings.TrimSpace(id) == "" {
		return Global{}, parsing.IllegalConstruction("web app id missing for global web app")
	}
	return Global{id: id}, nil
}

func (s Scoped) Scope() Scope   { return s.scope }
func (s Scoped) IsGlobal() bool { return false }
func (s Scoped) String() string { return s.scope.Name() }
func (Scoped) webApp()          {}

// MarshalText encodes the canonical form. The zero value is rejected.
func (s Scoped) MarshalText() ([]byte, error) {
	if s.scope == "" {
		return nil, parsing.IllegalConstruction("web app scope missing")
	}
	return []byte(s.String()), nil
}

// ID returns the global web app id.
func (g Global) ID() string     { return g.id }
func (g Global) Scope() Scope   { return ScopeGlobal }
func (g Global) IsGlobal() bool { return true }
func (g Global) String() string { return "global(" + g.id + ")" }
func (Global) webApp()          {}

// MarshalText encodes the canonical form.
func (g Global) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

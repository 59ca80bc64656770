package permission

import (
	"fmt"
	"strings"

	"github.com/e-Spirit/FSDevTools-sub005/internal/parsing"
)

// Mode selects which permissions travel with transferred elements.
type Mode string

const (
	None         Mode = "NONE"
	All          Mode = "ALL"
	StoreElement Mode = "STORE_ELEMENT"
	Workflow     Mode = "WORKFLOW"
)

// RemoteMode is the name of the server-side constant a Mode maps to.
type RemoteMode string

const (
	RemoteNone         RemoteMode = "NO_PERMISSIONS"
	RemoteAll          RemoteMode = "ALL_PERMISSIONS"
	RemoteStoreElement RemoteMode = "STORE_ELEMENT_PERMISSIONS"
	RemoteWorkflow     RemoteMode = "WORKFLOW_PERMISSIONS"
)

const remoteSuffix = "_PERMISSIONS"

// Default is the mode used when neither flag nor configuration names one.
const Default = None

var modes = []struct {
	mode   Mode
	remote RemoteMode
}{
	{None, RemoteNone},
	{All, RemoteAll},
	{StoreElement, RemoteStoreElement},
	{Workflow, RemoteWorkflow},
}

// Modes returns every mode in declaration order.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	for i, m := range modes {
		out[i] = m.mode
	}
	return out
}

// Remote returns the server-side constant for m. Unknown modes map to "".
func (m Mode) Remote() RemoteMode {
	for _, e := range modes {
		if e.mode == m {
			return e.remote
		}
	}
	return ""
}

func (m Mode) String() string { return string(m) }

// Resolve maps raw to a Mode. Constants are tried in declaration order and
// for each constant the spellings name, remote name, and remote name without
// suffix are tried in turn.
func Resolve(raw string) (Mode, error) {
	for _, e := range modes {
		candidates := [...]string{
			string(e.mode),
			string(e.remote),
			strings.TrimSuffix(string(e.remote), remoteSuffix),
		}
		for _, c := range candidates {
			if matches(raw, c) {
				return e.mode, nil
			}
		}
	}
	return "", parsing.UnknownValue(raw, names(),
		"Permission mode '%s' is invalid, possible values are [%s].", raw, strings.Join(names(), ", "))
}

func matches(raw, candidate string) bool {
	if strings.EqualFold(raw, candidate) {
		return true
	}
	return strings.EqualFold(stripSeparators(raw), stripSeparators(candidate))
}

var separators = strings.NewReplacer("_", "", "-", "")

func stripSeparators(s string) string {
	return separators.Replace(s)
}

func names() []string {
	out := make([]string, len(modes))
	for i, e := range modes {
		out[i] = string(e.mode)
	}
	return out
}

// Set implements pflag.Value.
func (m *Mode) Set(raw string) error {
	v, err := Resolve(raw)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string { return "mode" }

// UnmarshalText lets a Mode be decoded from YAML, JSON and config values.
func (m *Mode) UnmarshalText(b []byte) error {
	return m.Set(string(b))
}

// MarshalText emits the constant name.
func (m Mode) MarshalText() ([]byte, error) {
	if m.Remote() == "" {
		return nil, fmt.Errorf("marshaling permission mode: unknown mode %q", string(m))
	}
	return []byte(m), nil
}

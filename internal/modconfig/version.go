package modconfig

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// AppliesTo reports whether the entry's moduleVersion constraint admits v.
// Entries without a constraint apply to every version.
func (m Module) AppliesTo(v *semver.Version) bool {
	if m.constraint == nil || v == nil {
		return true
	}
	return m.constraint.Check(v)
}

// Constraint returns the parsed moduleVersion constraint, or nil.
func (m Module) Constraint() *semver.Constraints { return m.constraint }

// ParseVersion parses a module version, accepting an optional "v" prefix.
func ParseVersion(s string) (*semver.Version, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(s), "v"))
	if err != nil {
		return nil, fmt.Errorf("parsing module version %q: %w", s, err)
	}
	return v, nil
}

// Select returns the entries that apply to version. An empty version
// selects every entry.
func Select(modules []Module, version string) ([]Module, error) {
	if strings.TrimSpace(version) == "" {
		return modules, nil
	}
	v, err := ParseVersion(version)
	if err != nil {
		return nil, err
	}
	var out []Module
	for _, m := range modules {
		if m.AppliesTo(v) {
			out = append(out, m)
		}
	}
	return out, nil
}

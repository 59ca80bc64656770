package identifier

import (
	"strings"

	"github.com/e-Spirit/FSDevTools-sub005/internal/parsing"
)

// PathPrefix marks store path identifiers ("path:/PageStore/folder/page").
const PathPrefix = "path"

// Path identifies a store element by its absolute path.
type Path struct {
	path string
}

// NewPath returns a path identifier; the path must be absolute.
func NewPath(path string) (Path, error) {
	if !strings.HasPrefix(path, "/") {
		return Path{}, parsing.IllegalConstruction("path '%s' should start with '/'", path)
	}
	return Path{path: path}, nil
}

// Path returns the absolute store path.
func (p Path) Path() string { return p.path }

func (p Path) Family() Family { return FamilyPath }

func (p Path) String() string { return PathPrefix + ":" + p.path }

// PathGrammar parses "path:<absolute path>".
type PathGrammar struct{}

func (PathGrammar) AppliesTo(raw string) bool {
	return hasPrefixToken(raw, PathPrefix)
}

func (PathGrammar) Parse(raw []string) ([]Path, error) {
	return parseEach(raw, func(r string) (Path, error) {
		p, err := payload(r)
		if err != nil {
			return Path{}, err
		}
		if !strings.HasPrefix(p, "/") {
			return Path{}, parsing.Malformed(r, "path in '%s' should start with '/'", r)
		}
		return NewPath(p)
	})
}

package identifier

import (
	"github.com/e-Spirit/FSDevTools-sub005/internal/parsing"
)

func widen[T Identifier](g parsing.Grammar[T]) Grammar {
	return parsing.Adapt(g, func(v T) Identifier { return v })
}

var (
	rootNodeRegistry = parsing.MustRegistry[RootNode](RootNodeGrammar{})
	exportRegistry   = NewExportRegistry()
)

// NewExportRegistry returns a registry trying, in order, the root node, uid,
// entities, path, schema and project property grammars.
func NewExportRegistry() *parsing.Registry[Identifier] {
	return parsing.MustRegistry(
		widen[RootNode](RootNodeGrammar{}),
		widen[UID](UIDGrammar{}),
		widen[Entities](EntitiesGrammar{}),
		widen[Path](PathGrammar{}),
		widen[Schema](SchemaGrammar{}),
		widen[ProjectProperties](ProjectPropertiesGrammar{}),
	)
}

// ParseRootNodeIdentifiers resolves a list of "root:<postfix>" values.
// A nil list is malformed; an empty list yields an empty result.
func ParseRootNodeIdentifiers(raw []string) ([]RootNode, error) {
	return rootNodeRegistry.Parse(raw)
}

// ParseExportIdentifiers resolves mixed export identifiers with the export registry.
func ParseExportIdentifiers(raw []string) ([]Identifier, error) {
	return exportRegistry.Parse(raw)
}

// DefaultExportIdentifiers returns what an export without arguments covers:
// every store root and all project properties.
func DefaultExportIdentifiers() []Identifier {
	roots := AllRootNodes()
	out := make([]Identifier, 0, len(roots)+1)
	for _, r := range roots {
		out = append(out, r)
	}
	return append(out, AllProjectProperties())
}

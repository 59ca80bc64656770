// Package identifier resolves export targets given on the command line
// ("root:pagestore", "page:homepage", "entities:news", "path:/a/b",
// "schema:products[exportGidMapping=true]", "projectproperty:LANGUAGES")
// into typed identifiers. Each family has its own grammar; the export
// registry tries them in a fixed order and picks the first that applies.
package identifier

package identifier

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/e-Spirit/FSDevTools-sub005/internal/parsing"
)

// SchemaPrefix marks schema identifiers ("schema:products[exportGidMapping=true]").
const SchemaPrefix = "schema"

// OptionExportGidMapping toggles the export of the gid mapping of a schema.
const OptionExportGidMapping = "exportGidMapping"

// schemaOptions lists the known options; keys are lower-case.
var schemaOptions = map[string]string{
	strings.ToLower(OptionExportGidMapping): OptionExportGidMapping,
}

// SchemaOptionNames returns the canonical names of the known schema options.
func SchemaOptionNames() []string {
	return slices.Sorted(maps.Values(schemaOptions))
}

// Schema identifies a database schema of the template store.
// Schema holds a map and is compared with Equal.
type Schema struct {
	uid     string
	options map[string]string
}

// NewSchema returns a schema identifier. Option names are matched
// case-insensitively and stored under their canonical spelling.
func NewSchema(uid string, options map[string]string) (Schema, error) {
	if strings.TrimSpace(uid) == "" {
		return Schema{}, parsing.IllegalConstruction("schema uid is blank")
	}
	s := Schema{uid: uid, options: make(map[string]string, len(options))}
	for name, value := range options {
		canonical, ok := schemaOptions[parsing.Lower(strings.TrimSpace(name))]
		if !ok {
			return Schema{}, parsing.UnknownValue(name, SchemaOptionNames(),
				"schema option '%s' is unknown, valid options: %s", name, strings.Join(SchemaOptionNames(), ", "))
		}
		s.options[canonical] = strings.TrimSpace(value)
	}
	return s, nil
}

// UID returns the schema uid.
func (s Schema) UID() string { return s.uid }

// Options returns a copy of the schema options.
func (s Schema) Options() map[string]string { return maps.Clone(s.options) }

// ExportGidMapping returns the exportGidMapping option and whether it was set.
func (s Schema) ExportGidMapping() (value, ok bool) {
	v, ok := s.options[OptionExportGidMapping]
	if !ok {
		return false, false
	}
	b, _ := strconv.ParseBool(v)
	return b, true
}

// Equal reports whether both identifiers name the same schema with the same options.
func (s Schema) Equal(o Schema) bool {
	return s.uid == o.uid && maps.Equal(s.options, o.options)
}

func (s Schema) Family() Family { return FamilySchema }

func (s Schema) String() string {
	if len(s.options) == 0 {
		return SchemaPrefix + ":" + s.uid
	}
	opts := make([]string, 0, len(s.options))
	for _, k := range slices.Sorted(maps.Keys(s.options)) {
		opts = append(opts, k+"="+s.options[k])
	}
	return SchemaPrefix + ":" + s.uid + "[" + strings.Join(opts, "|") + "]"
}

// SchemaGrammar parses "schema:<uid>" with an optional "[name=value|...]" suffix.
type SchemaGrammar struct{}

func (SchemaGrammar) AppliesTo(raw string) bool {
	return hasPrefixToken(raw, SchemaPrefix)
}

func (SchemaGrammar) Parse(raw []string) ([]Schema, error) {
	return parseEach(raw, func(r string) (Schema, error) {
		p, err := payload(r)
		if err != nil {
			return Schema{}, err
		}
		uid, rawOptions, hasOptions := strings.Cut(p, "[")
		uid = strings.TrimSpace(uid)
		if !hasOptions {
			return NewSchema(uid, nil)
		}
		options, err := parseSchemaOptions("[" + rawOptions)
		if err != nil {
			return Schema{}, err
		}
		return NewSchema(uid, options)
	})
}

// parseSchemaOptions parses "[name=value|name=value]".
func parseSchemaOptions(raw string) (map[string]string, error) {
	if !strings.HasPrefix(raw, "[") || !strings.HasSuffix(raw, "]") {
		return nil, parsing.Malformed(raw, "invalid schema options format '%s'", raw)
	}
	body := raw[1 : len(raw)-1]
	options := make(map[string]string)
	seen := make(map[string]struct{})
	if strings.TrimSpace(body) == "" {
		return options, nil
	}
	for _, entry := range strings.Split(body, "|") {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || strings.TrimSpace(name) == "" || strings.Contains(value, "=") {
			return nil, parsing.Malformed(raw, "invalid schema option '%s' in '%s'", entry, raw)
		}
		if _, err := strconv.ParseBool(strings.TrimSpace(value)); err != nil {
			return nil, parsing.Malformed(raw, "schema option '%s' expects true or false, got '%s'", strings.TrimSpace(name), strings.TrimSpace(value))
		}
		name = strings.TrimSpace(name)
		if _, dup := seen[parsing.Lower(name)]; dup {
			return nil, parsing.Malformed(raw, "schema option '%s' is given more than once in '%s'", name, raw)
		}
		seen[parsing.Lower(name)] = struct{}{}
		options[name] = value
	}
	return options, nil
}

package identifier

import (
	"strings"

	"github.com/e-Spirit/FSDevTools-sub005/internal/parsing"
)

// ProjectPropertiesPrefix marks project property exports ("projectproperty:LANGUAGES").
const ProjectPropertiesPrefix = "projectproperty"

// PropertyType is a transportable group of project properties.
type PropertyType string

const (
	PropertyCommon           PropertyType = "COMMON"
	PropertyResolutions      PropertyType = "RESOLUTIONS"
	PropertyGroups           PropertyType = "GROUPS"
	PropertyScheduleEntries  PropertyType = "SCHEDULE_ENTRIES"
	PropertyTemplateSets     PropertyType = "TEMPLATE_SETS"
	PropertyFonts            PropertyType = "FONTS"
	PropertyLanguages        PropertyType = "LANGUAGES"
	PropertyUsers            PropertyType = "USERS"
	PropertyCustomProperties PropertyType = "CUSTOM_PROPERTIES"
	PropertyModuleComponents PropertyType = "MODULE_COMPONENTS"
)

// PropertyAll selects every property type.
const PropertyAll = "ALL"

var propertyTypes = [...]PropertyType{
	PropertyCommon,
	PropertyResolutions,
	PropertyGroups,
	PropertyScheduleEntries,
	PropertyTemplateSets,
	PropertyFonts,
	PropertyLanguages,
	PropertyUsers,
	PropertyCustomProperties,
	PropertyModuleComponents,
}

// PropertyTypes returns every property type in declaration order.
func PropertyTypes() []PropertyType {
	out := make([]PropertyType, len(propertyTypes))
	copy(out, propertyTypes[:])
	return out
}

// PropertyTypeNames returns the accepted spellings, including ALL.
func PropertyTypeNames() []string {
	out := make([]string, 0, len(propertyTypes)+1)
	out = append(out, PropertyAll)
	for _, p := range propertyTypes {
		out = append(out, string(p))
	}
	return out
}

// propertySet is a bit set indexed by position in propertyTypes.
type propertySet uint32

const allProperties = propertySet(1)<<len(propertyTypes) - 1

func (s propertySet) has(i int) bool { return s&(1<<i) != 0 }

// ProjectProperties identifies a set of project property types.
type ProjectProperties struct {
	set propertySet
}

// NewProjectProperties returns an identifier for the given property types.
func NewProjectProperties(types ...PropertyType) (ProjectProperties, error) {
	var s propertySet
	for _, t := range types {
		i := propertyIndex(t)
		if i < 0 {
			return ProjectProperties{}, parsing.IllegalConstruction("unknown project property type '%s'", t)
		}
		s |= 1 << i
	}
	return ProjectProperties{set: s}, nil
}

// AllProjectProperties returns the identifier selecting every property type.
func AllProjectProperties() ProjectProperties {
	return ProjectProperties{set: allProperties}
}

func propertyIndex(t PropertyType) int {
	for i, p := range propertyTypes {
		if p == t {
			return i
		}
	}
	return -1
}

// Types returns the selected property types in declaration order.
func (p ProjectProperties) Types() []PropertyType {
	var out []PropertyType
	for i, t := range propertyTypes {
		if p.set.has(i) {
			out = append(out, t)
		}
	}
	return out
}

// Contains reports whether t is selected.
func (p ProjectProperties) Contains(t PropertyType) bool {
	i := propertyIndex(t)
	return i >= 0 && p.set.has(i)
}

// Union returns the identifier selecting the types of both.
func (p ProjectProperties) Union(o ProjectProperties) ProjectProperties {
	return ProjectProperties{set: p.set | o.set}
}

func (p ProjectProperties) Family() Family { return FamilyProjectProperties }

// String returns one "projectproperty:<TYPE>" token per type joined by commas,
// or "projectproperty:ALL" when every type is selected.
func (p ProjectProperties) String() string {
	if p.set == allProperties {
		return ProjectPropertiesPrefix + ":" + PropertyAll
	}
	types := p.Types()
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = ProjectPropertiesPrefix + ":" + string(t)
	}
	return strings.Join(parts, ",")
}

// ProjectPropertiesGrammar parses "projectproperty:<TYPE>" and merges all
// elements of one call into a single identifier.
type ProjectPropertiesGrammar struct{}

func (ProjectPropertiesGrammar) AppliesTo(raw string) bool {
	return hasPrefixToken(raw, ProjectPropertiesPrefix)
}

func (ProjectPropertiesGrammar) Parse(raw []string) ([]ProjectProperties, error) {
	if raw == nil {
		return nil, parsing.Malformed("", "input is nil")
	}
	if len(raw) == 0 {
		return []ProjectProperties{}, nil
	}
	var merged ProjectProperties
	for _, r := range raw {
		name, err := payload(r)
		if err != nil {
			return nil, err
		}
		p, err := parsePropertyType(name)
		if err != nil {
			return nil, err
		}
		merged = merged.Union(p)
	}
	return []ProjectProperties{merged}, nil
}

func parsePropertyType(name string) (ProjectProperties, error) {
	upper := parsing.Upper(name)
	if upper == PropertyAll {
		return AllProjectProperties(), nil
	}
	if i := propertyIndex(PropertyType(upper)); i >= 0 {
		return ProjectProperties{set: 1 << i}, nil
	}
	return ProjectProperties{}, parsing.UnknownValue(name, PropertyTypeNames(),
		"unknown project property '%s', possible values are [%s]", name, strings.Join(PropertyTypeNames(), ", "))
}

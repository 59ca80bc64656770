package identifier

import (
	"strings"

	"github.com/e-Spirit/FSDevTools-sub005/internal/parsing"
)

// UidMapping binds a uid prefix ("page", "mediafolder") to the store and uid
// type its elements are looked up in.
type UidMapping struct {
	prefix    string
	storeType StoreType
	uidType   UidType
}

// Prefix returns the lower-case prefix used on the command line.
func (m UidMapping) Prefix() string { return m.prefix }

// StoreType returns the store holding elements of this mapping.
func (m UidMapping) StoreType() StoreType { return m.storeType }

// UidType returns the uid namespace of this mapping.
func (m UidMapping) UidType() UidType { return m.uidType }

var uidMappings = []UidMapping{
	{"content2", ContentStore, UidContentStore},
	{"gcapage", GlobalStore, UidGlobalStore},
	{"mediafolder", MediaStore, UidMediaStoreFolder},
	{"media", MediaStore, UidMediaStoreLeaf},
	{"page", PageStore, UidPageStore},
	{"pagefolder", PageStore, UidPageStore},
	{"pagereffolder", SiteStore, UidSiteStoreFolder},
	{"documentgroup", SiteStore, UidSiteStoreLeaf},
	{"pageref", SiteStore, UidSiteStoreLeaf},
	{"pagetemplate", TemplateStore, UidTemplateStore},
	{"script", TemplateStore, UidTemplateStore},
	{"sectiontemplate", TemplateStore, UidTemplateStore},
	{"workflow", TemplateStore, UidTemplateStore},
	{"formattemplate", TemplateStore, UidTemplateStoreFormatTemplate},
	{"linktemplate", TemplateStore, UidTemplateStoreLinkTemplate},
	{"query", TemplateStore, UidTemplateStoreSchema},
	{"tabletemplate", TemplateStore, UidTemplateStoreSchema},
	{"styletemplate", TemplateStore, UidTemplateStoreStyleTemplate},
	{"tableformattemplate", TemplateStore, UidTemplateStoreTableFormatTemplate},
}

// UidPrefixes returns every known uid prefix.
func UidPrefixes() []string {
	out := make([]string, len(uidMappings))
	for i, m := range uidMappings {
		out[i] = m.prefix
	}
	return out
}

// LookupUidMapping resolves a prefix case-insensitively.
func LookupUidMapping(prefix string) (UidMapping, bool) {
	p := parsing.Lower(strings.TrimSpace(prefix))
	for _, m := range uidMappings {
		if m.prefix == p {
			return m, true
		}
	}
	return UidMapping{}, false
}

// UID identifies a single store element by prefix and uid ("page:homepage").
type UID struct {
	mapping UidMapping
	uid     string
}

// NewUID builds a uid identifier from a known prefix and a non-blank uid.
func NewUID(prefix, uid string) (UID, error) {
	m, ok := LookupUidMapping(prefix)
	if !ok {
		return UID{}, unregisteredPrefix(prefix)
	}
	if strings.TrimSpace(uid) == "" {
		return UID{}, parsing.IllegalConstruction("uid for prefix '%s' is blank", m.prefix)
	}
	return UID{mapping: m, uid: uid}, nil
}

// Mapping returns the uid mapping of the identifier.
func (u UID) Mapping() UidMapping { return u.mapping }

// UID returns the element uid.
func (u UID) UID() string { return u.uid }

func (u UID) Family() Family { return FamilyUID }

func (u UID) String() string { return u.mapping.prefix + ":" + u.uid }

func unregisteredPrefix(prefix string) error {
	return parsing.UnknownValue(prefix, UidPrefixes(), "no uid mapping found for prefix '%s'", prefix)
}

// UIDGrammar parses "<prefix>:<uid>" for every prefix in the uid mapping table.
type UIDGrammar struct{}

func (UIDGrammar) AppliesTo(raw string) bool {
	t := tokens(raw)
	if len(t) < 2 {
		return false
	}
	_, ok := LookupUidMapping(t[0])
	return ok
}

func (UIDGrammar) Parse(raw []string) ([]UID, error) {
	return parseEach(raw, func(r string) (UID, error) {
		t := tokens(r)
		if len(t) != 2 || t[1] == "" {
			return UID{}, parsing.Malformed(r, "wrong input format for input string '%s'", r)
		}
		return NewUID(t[0], t[1])
	})
}

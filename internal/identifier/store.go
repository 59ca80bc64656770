package identifier

import "strings"

// StoreType names one of the top-level stores of a project.
type StoreType string

const (
	TemplateStore StoreType = "TEMPLATESTORE"
	PageStore     StoreType = "PAGESTORE"
	ContentStore  StoreType = "CONTENTSTORE"
	SiteStore     StoreType = "SITESTORE"
	MediaStore    StoreType = "MEDIASTORE"
	GlobalStore   StoreType = "GLOBALSTORE"
)

// UidType is the uid namespace an element lives in on the server.
type UidType string

const (
	UidTemplateStore                    UidType = "TEMPLATESTORE"
	UidTemplateStoreFormatTemplate      UidType = "TEMPLATESTORE_FORMATTEMPLATE"
	UidTemplateStoreLinkTemplate        UidType = "TEMPLATESTORE_LINKTEMPLATE"
	UidTemplateStoreSchema              UidType = "TEMPLATESTORE_SCHEMA"
	UidTemplateStoreStyleTemplate       UidType = "TEMPLATESTORE_STYLETEMPLATE"
	UidTemplateStoreTableFormatTemplate UidType = "TEMPLATESTORE_TABLEFORMATTEMPLATE"
	UidPageStore                        UidType = "PAGESTORE"
	UidContentStore                     UidType = "CONTENTSTORE"
	UidSiteStoreFolder                  UidType = "SITESTORE_FOLDER"
	UidSiteStoreLeaf                    UidType = "SITESTORE_LEAF"
	UidMediaStoreFolder                 UidType = "MEDIASTORE_FOLDER"
	UidMediaStoreLeaf                   UidType = "MEDIASTORE_LEAF"
	UidGlobalStore                      UidType = "GLOBALSTORE"
)

// StoreType returns the store holding elements of this uid type.
func (u UidType) StoreType() StoreType {
	s, _, _ := strings.Cut(string(u), "_")
	return StoreType(s)
}

// storePostfixes maps the postfix used in "root:<postfix>" to the uid type
// of the store root. Order is the order used for listings.
var storePostfixes = []struct {
	postfix string
	uidType UidType
}{
	{"templatestore", UidTemplateStore},
	{"pagestore", UidPageStore},
	{"contentstore", UidContentStore},
	{"sitestore", UidSiteStoreFolder},
	{"mediastore", UidMediaStoreFolder},
	{"globalstore", UidGlobalStore},
}

// StorePostfixes returns all known root node postfixes.
func StorePostfixes() []string {
	out := make([]string, len(storePostfixes))
	for i, p := range storePostfixes {
		out[i] = p.postfix
	}
	return out
}

// UidTypeForPostfix resolves a lower-case store postfix.
func UidTypeForPostfix(postfix string) (UidType, bool) {
	for _, p := range storePostfixes {
		if p.postfix == postfix {
			return p.uidType, true
		}
	}
	return "", false
}

// PostfixForUidType is the inverse of UidTypeForPostfix.
func PostfixForUidType(u UidType) (string, bool) {
	for _, p := range storePostfixes {
		if p.uidType == u {
			return p.postfix, true
		}
	}
	return "", false
}

package identifier

import (
	"log/slog"
	"strings"

	"github.com/e-Spirit/FSDevTools-sub005/internal/parsing"
)

// RootNodePrefix marks root node identifiers ("root:pagestore").
const RootNodePrefix = "root"

// RootNode identifies the root node of one store.
// The zero value is not a valid identifier; use NewRootNode.
type RootNode struct {
	uidType UidType
}

// NewRootNode returns the root node identifier for a store root uid type.
func NewRootNode(u UidType) (RootNode, error) {
	if _, ok := PostfixForUidType(u); !ok {
		return RootNode{}, parsing.IllegalConstruction("uid type '%s' is not a store root", u)
	}
	return RootNode{uidType: u}, nil
}

// UidType returns the uid type of the store root.
func (r RootNode) UidType() UidType { return r.uidType }

// StoreType returns the store this root node belongs to.
func (r RootNode) StoreType() StoreType { return r.uidType.StoreType() }

func (r RootNode) Family() Family { return FamilyRootNode }

func (r RootNode) String() string {
	postfix, _ := PostfixForUidType(r.uidType)
	return RootNodePrefix + ":" + postfix
}

// AllRootNodes returns one identifier per store, in listing order.
func AllRootNodes() []RootNode {
	out := make([]RootNode, len(storePostfixes))
	for i, p := range storePostfixes {
		out[i] = RootNode{uidType: p.uidType}
	}
	return out
}

// RootNodeGrammar parses "root:<postfix>".
type RootNodeGrammar struct{}

// AppliesTo reports whether raw starts with the root prefix, ignoring case
// and surrounding whitespace.
func (RootNodeGrammar) AppliesTo(raw string) bool {
	return strings.HasPrefix(parsing.Lower(strings.TrimSpace(raw)), RootNodePrefix)
}

// Parse resolves every element to a root node. Duplicates are kept.
func (RootNodeGrammar) Parse(raw []string) ([]RootNode, error) {
	return parseEach(raw, parseRootNode)
}

func parseRootNode(raw string) (RootNode, error) {
	postfix, err := payload(raw)
	if err != nil {
		return RootNode{}, err
	}
	u, ok := UidTypeForPostfix(parsing.Lower(postfix))
	if !ok {
		return RootNode{}, parsing.UnknownValue(postfix, StorePostfixes(),
			"no root node found for '%s', known root nodes are %s", postfix, strings.Join(StorePostfixes(), ", "))
	}
	slog.Debug("resolved root node", "input", raw, "uidType", u)
	return RootNode{uidType: u}, nil
}

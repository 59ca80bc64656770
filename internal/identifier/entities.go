package identifier

import (
	"strings"

	"github.com/e-Spirit/FSDevTools-sub005/internal/parsing"
)

// EntitiesPrefix marks entity exports of a content2 object ("entities:news").
const EntitiesPrefix = "entities"

// Entities identifies all entities of a content2 object.
type Entities struct {
	uid string
}

// NewEntities returns an entities identifier for a non-blank content2 uid.
func NewEntities(uid string) (Entities, error) {
	if strings.TrimSpace(uid) == "" {
		return Entities{}, parsing.IllegalConstruction("content2 uid for entities is blank")
	}
	return Entities{uid: uid}, nil
}

// UID returns the content2 uid.
func (e Entities) UID() string { return e.uid }

func (e Entities) Family() Family { return FamilyEntities }

func (e Entities) String() string { return EntitiesPrefix + ":" + e.uid }

// EntitiesGrammar parses "entities:<content2 uid>".
type EntitiesGrammar struct{}

func (EntitiesGrammar) AppliesTo(raw string) bool {
	return hasPrefixToken(raw, EntitiesPrefix)
}

func (EntitiesGrammar) Parse(raw []string) ([]Entities, error) {
	return parseEach(raw, func(r string) (Entities, error) {
		uid, err := payload(r)
		if err != nil {
			return Entities{}, err
		}
		return NewEntities(uid)
	})
}

package webapp

import "strings"

// ListValue is a pflag.Value collecting web app identifiers from a
// comma-separated flag. Repeating the flag appends.
type ListValue struct {
	ids []Identifier
}

func (v *ListValue) String() string {
	return strings.Join(Names(v.ids), ",")
}

func (v *ListValue) Set(raw string) error {
	ids, err := ParseMultiple(raw)
	if err != nil {
		return err
	}
	v.ids = append(v.ids, ids...)
	return nil
}

func (v *ListValue) Type() string {
	return "webapps"
}

// Identifiers returns the collected identifiers.
func (v *ListValue) Identifiers() []Identifier {
	return v.ids
}

// Reset drops the collected identifiers.
func (v *ListValue) Reset() {
	v.ids = nil
}

package parsing

// Grammar is the applicability test plus parsing rule of one identifier family.
// Implementations must be stateless so that they can be shared between goroutines.
type Grammar[T any] interface {
	// AppliesTo reports whether the grammar claims the raw token.
	AppliesTo(raw string) bool
	// Parse converts each raw token into a value, in input order.
	// A nil list is malformed, an empty list yields an empty result.
	Parse(raw []string) ([]T, error)
}

// Adapt exposes a grammar producing T as one producing U, typically to
// register a concrete grammar in a registry of an interface type.
func Adapt[T, U any](g Grammar[T], conv func(T) U) Grammar[U] {
	return adapted[T, U]{inner: g, conv: conv}
}

type adapted[T, U any] struct {
	inner Grammar[T]
	conv  func(T) U
}

func (a adapted[T, U]) AppliesTo(raw string) bool {
	return a.inner.AppliesTo(raw)
}

func (a adapted[T, U]) Parse(raw []string) ([]U, error) {
	parsed, err := a.inner.Parse(raw)
	if err != nil {
		return nil, err
	}
	out := make([]U, len(parsed))
	for i, v := range parsed {
		out[i] = a.conv(v)
	}
	return out, nil
}

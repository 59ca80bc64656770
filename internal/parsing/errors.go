package parsing

import (
	"errors"
	"fmt"
)

// Kind classifies a parsing failure.
type Kind int

const (
	// KindMalformed reports a token with the wrong shape: missing parts,
	// blank input or a nil list.
	KindMalformed Kind = iota + 1
	// KindUnknownValue reports a well-formed token whose payload is not in
	// the lookup table of its grammar.
	KindUnknownValue
	// KindNoSuitableParser reports that no registered grammar claimed the input.
	KindNoSuitableParser
	// KindIllegalConstruction reports an identifier built from an invalid
	// combination of values.
	KindIllegalConstruction
)

func (k Kind) String() string {
	switch k {
	case KindMalformed:
		return "malformed input"
	case KindUnknownValue:
		return "unknown value"
	case KindNoSuitableParser:
		return "no suitable parser registered"
	case KindIllegalConstruction:
		return "illegal construction"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinels for errors.Is. ErrIllegalArgument matches every kind except
// KindNoSuitableParser, which signals a registration gap rather than bad input.
var (
	ErrIllegalArgument     = errors.New("illegal argument")
	ErrMalformed           = errors.New(KindMalformed.String())
	ErrUnknownValue        = errors.New(KindUnknownValue.String())
	ErrNoSuitableParser    = errors.New(KindNoSuitableParser.String())
	ErrIllegalConstruction = errors.New(KindIllegalConstruction.String())
)

// Error is returned by grammars, registries and identifier constructors.
type Error struct {
	Kind  Kind
	Input string   // offending raw value, if any
	Msg   string   // human-readable message, already naming Input
	Legal []string // legal values for KindUnknownValue, when known
}

func (e *Error) Error() string {
	return e.Msg
}

// Is lets errors.Is match an *Error against the package sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrIllegalArgument:
		return e.Kind != KindNoSuitableParser
	case ErrMalformed:
		return e.Kind == KindMalformed
	case ErrUnknownValue:
		return e.Kind == KindUnknownValue
	case ErrNoSuitableParser:
		return e.Kind == KindNoSuitableParser
	case ErrIllegalConstruction:
		return e.Kind == KindIllegalConstruction
	}
	return false
}

// Malformed returns a KindMalformed error for input.
func Malformed(input, format string, args ...any) *Error {
	return &Error{Kind: KindMalformed, Input: input, Msg: fmt.Sprintf(format, args...)}
}

// UnknownValue returns a KindUnknownValue error for input carrying the legal values.
func UnknownValue(input string, legal []string, format string, args ...any) *Error {
	return &Error{Kind: KindUnknownValue, Input: input, Msg: fmt.Sprintf(format, args...), Legal: legal}
}

// NoSuitableParser returns the error raised when no grammar claims input.
func NoSuitableParser(input string) *Error {
	return &Error{
		Kind:  KindNoSuitableParser,
		Input: input,
		Msg:   fmt.Sprintf("no applicable parser found for input string '%s'", input),
	}
}

// IllegalConstruction returns a KindIllegalConstruction error.
func IllegalConstruction(format string, args ...any) *Error {
	return &Error{Kind: KindIllegalConstruction, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}

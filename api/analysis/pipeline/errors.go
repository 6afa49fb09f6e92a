package pipeline

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure. Every error surfaced to the HTTP layer
// is one of these; anything else is an internal bug.
type Kind string

const (
	KindInputShape     Kind = "InputShape"
	KindUnknownVariant Kind = "UnknownVariant"
	KindEncoding       Kind = "Encoding"
	KindNoValidRows    Kind = "NoValidRows"
	KindMalformed      Kind = "Malformed"
)

// Error carries the taxonomy kind plus a short human-readable message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Msg
}

func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf extracts the taxonomy kind from an error chain.
func KindOf(err error) (Kind, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return "", false
}

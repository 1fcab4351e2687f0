package chunk

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a chunk-level failure so that callers can branch on
// the category without matching message strings.
type ErrorKind int

const (
	// KindMalformedType means a type code failed the 4-letter/case rules.
	KindMalformedType ErrorKind = iota
	// KindFraming means the length/type/data/CRC envelope was violated:
	// oversized length, truncated input, or a codec that consumed a
	// different number of bytes than the chunk declared.
	KindFraming
	// KindIntegrity means the computed CRC-32 did not match the stored one.
	KindIntegrity
	// KindFieldRange means a decoded field value lies outside its legal
	// domain (bit depth, enum index, keyword syntax, entry counts).
	KindFieldRange
	// KindStructural means a document-level invariant was violated
	// (missing or duplicate header, non-contiguous data run, misplaced
	// terminator) or a multi-field payload was missing a required NUL.
	KindStructural
	// KindDecompression means a compressed payload was not valid for its
	// declared compression method.
	KindDecompression
)

func (k ErrorKind) String() string {
	switch k {
	case KindMalformedType:
		return "malformed type"
	case KindFraming:
		return "framing"
	case KindIntegrity:
		return "integrity"
	case KindFieldRange:
		return "field range"
	case KindStructural:
		return "structural"
	case KindDecompression:
		return "decompression"
	default:
		return "unknown"
	}
}

// Error is the error type for every failure in this package and in the
// container layer built on top of it. Decoding, validation, and construction
// all report through it; there is no untyped failure path.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("chunk: %s: %s", e.Kind, e.Message)
}

// Errorf builds an *Error of the given kind with a formatted message.
func Errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == kind
}

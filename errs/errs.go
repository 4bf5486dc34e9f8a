// Package errs defines the error taxonomy shared by the wire, codec, and
// catalogue packages.
//
// Sentinel errors are plain values so callers can match with errors.Is;
// the kinds that carry extra diagnostic data (BufferTooSmall,
// InvalidEncoding) are concrete struct types that also implement error and
// wrap a sentinel so errors.Is(err, errs.ErrBufferTooSmall) still matches.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeOverflow is returned when a length or tail-relative offset
	// would not fit in the configured address-word width.
	ErrSizeOverflow = errors.New("alkahest: size overflow")

	// ErrBufferTooSmall is returned when the destination buffer cannot
	// hold the inline and heap regions required by a value. Prefer the
	// BufferTooSmall struct when the caller needs the required size.
	ErrBufferTooSmall = errors.New("alkahest: buffer too small")

	// ErrInvalidEncoding is returned when a structural decode check
	// fails. Prefer the InvalidEncoding struct when the caller needs the
	// byte position and discriminant.
	ErrInvalidEncoding = errors.New("alkahest: invalid encoding")

	// ErrIncompatible names the error kind for a value type used with a
	// formula the catalogue forbids it against. No package in this module
	// returns it.
	ErrIncompatible = errors.New("alkahest: incompatible formula")

	// ErrCyclicFormula names the error kind for a Formula whose stack size
	// would be unbounded because it references itself without going
	// through Ref[F]. No package in this module returns it; neither the
	// codecs nor the registry detect cyclic formulas.
	ErrCyclicFormula = errors.New("alkahest: cyclic formula requires Ref indirection")

	// ErrFormulaCollision is returned by the registry when two distinct
	// codec singletons register under the same formula name.
	ErrFormulaCollision = errors.New("alkahest: formula name already registered")
)

// BufferTooSmall reports that Required bytes are needed but the supplied
// buffer was shorter.
type BufferTooSmall struct {
	Required int
}

func (e *BufferTooSmall) Error() string {
	return fmt.Sprintf("%s: required %d bytes", ErrBufferTooSmall, e.Required)
}

func (e *BufferTooSmall) Unwrap() error { return ErrBufferTooSmall }

// InvalidEncoding reports a structural decode failure at byte offset At,
// with What describing which check failed (e.g. "enum tag out of range",
// "length exceeds remaining buffer", "offset outside buffer", "non-UTF-8
// bytes", "boolean outside {0,1}").
type InvalidEncoding struct {
	At   int
	What string
}

func (e *InvalidEncoding) Error() string {
	return fmt.Sprintf("%s: at byte %d: %s", ErrInvalidEncoding, e.At, e.What)
}

func (e *InvalidEncoding) Unwrap() error { return ErrInvalidEncoding }

// SizeOverflow reports a length or offset that exceeded the configured
// address-word width W.
type SizeOverflow struct {
	Value uint64
	Width int // bytes
}

func (e *SizeOverflow) Error() string {
	return fmt.Sprintf("%s: value %d does not fit in %d-byte address word", ErrSizeOverflow, e.Value, e.Width)
}

func (e *SizeOverflow) Unwrap() error { return ErrSizeOverflow }

package specifier

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("specifier")

// Specifier converts values of the logical type T to and from the unsigned
// carrier B used by a packed bit-field.
type Specifier[T, B any] interface {
	// Bits is the number of bits T occupies in a packed field. The
	// carrier B is always at least this wide.
	Bits() int

	// IntoBytes returns the carrier for value. It fails with an
	// OutOfBoundsError if value does not fit in Bits.
	IntoBytes(value T) (bytes B, err error)

	// FromBytes returns the value for a carrier that has already been
	// masked to Bits. It fails with an InvalidBitPatternError if bytes is
	// not a legal pattern for T.
	FromBytes(bytes B) (value T, err error)
}

// Encode converts value into its carrier using the specifier S.
func Encode[S Specifier[T, B], T, B any](value T) (bytes B, err error) {
	var s S

	return s.IntoBytes(value)
}

// Decode converts bytes into a value using the specifier S.
func Decode[S Specifier[T, B], T, B any](bytes B) (value T, err error) {
	var s S

	return s.FromBytes(bytes)
}

// Width returns the declared bit width of the specifier S.
func Width[S Specifier[T, B], T, B any]() int {
	var s S

	return s.Bits()
}

// OutOfBoundsError indicates a value can't be represented in the declared
// bit width.
//
// None of the specifiers in this package produce it; every one of them
// declares the full native width of its type.
type OutOfBoundsError struct {
	Bits int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("value out of bounds for %d bits", e.Bits)
}

// InvalidBitPatternError indicates a carrier value has no corresponding
// logical value.
type InvalidBitPatternError[B any] struct {
	InvalidBytes B
}

func (e *InvalidBitPatternError[B]) Error() string {
	return fmt.Sprintf("invalid bit pattern: %v", e.InvalidBytes)
}

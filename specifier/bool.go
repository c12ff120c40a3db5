package specifier

// BoolBits is the number of bits a bool occupies in a packed field.
const BoolBits = 1

// Bool specifies a single bit boolean field carried in a uint8.
type Bool struct{}

var _ Specifier[bool, uint8] = Bool{}

// Bits returns BoolBits.
func (Bool) Bits() int { return BoolBits }

// IntoBytes maps false to 0 and true to 1. It never fails.
func (Bool) IntoBytes(value bool) (uint8, error) {
	if value {
		return 1, nil
	}

	return 0, nil
}

// FromBytes maps 0 to false and 1 to true. Any other byte means the caller
// did not mask the carrier to a single bit.
func (Bool) FromBytes(bytes uint8) (bool, error) {
	switch bytes {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}

	return false, Error.Wrap(&InvalidBitPatternError[uint8]{
		InvalidBytes: bytes,
	})
}

package specifier_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitspec/specifier"
)

func TestBool(t *testing.T) {
	require.Equal(t, 1, specifier.Bool{}.Bits())
	require.Equal(t, 1, specifier.BoolBits)

	t.Run("into", func(t *testing.T) {
		type TC struct {
			Value bool
			Bytes uint8
			Mark  error
		}

		tcs := []TC{
			{
				Value: false,
				Bytes: 0b_0000_0000,
				Mark:  oops.New("unexpected"),
			},
			{
				Value: true,
				Bytes: 0b_0000_0001,
				Mark:  oops.New("unexpected"),
			},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("[%d]%t", i, tc.Value), func(t *testing.T) {
				bytes, err := specifier.Bool{}.IntoBytes(tc.Value)
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.Bytes, bytes, tc.Mark)
			})
		}
	})

	t.Run("from", func(t *testing.T) {
		for b := 0; b <= 255; b++ {
			bytes := uint8(b)

			t.Run(fmt.Sprintf("%08b", bytes), func(t *testing.T) {
				value, err := specifier.Bool{}.FromBytes(bytes)

				switch bytes {
				case 0:
					require.NoError(t, err)
					require.False(t, value)
				case 1:
					require.NoError(t, err)
					require.True(t, value)
				default:
					require.Error(t, err)
					require.True(t, specifier.Error.Has(err))
					require.False(t, value)

					var ibp *specifier.InvalidBitPatternError[uint8]
					require.True(t, errors.As(err, &ibp), spew.Sdump(err))
					require.Equal(t, bytes, ibp.InvalidBytes)
				}
			})
		}
	})

	t.Run("roundtrip", func(t *testing.T) {
		for _, value := range []bool{false, true} {
			bytes, err := specifier.Encode[specifier.Bool, bool, uint8](value)
			require.NoError(t, err)

			got, err := specifier.Decode[specifier.Bool, bool, uint8](bytes)
			require.NoError(t, err)
			require.Equal(t, value, got)
		}
	})

	t.Run("message", func(t *testing.T) {
		_, err := specifier.Bool{}.FromBytes(2)
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid bit pattern: 2")
	})
}

package specifier_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitspec/specifier"
)

func TestRegistry(t *testing.T) {
	infos := specifier.All()
	require.Len(t, infos, 13)
	require.Equal(t, "Bool", infos[0].Name)

	seen := map[string]bool{}
	for _, info := range infos {
		require.NoError(t, info.Check(), info.Name)
		require.False(t, seen[info.Name], info.Name)
		seen[info.Name] = true

		if info.Name == "Bool" {
			require.Equal(t, 1, info.Bits)
			require.Equal(t, 8, info.CarrierBits)

			continue
		}

		require.Equal(t, info.Bits, info.CarrierBits, info.Name)
	}

	_, ok := specifier.Lookup("Uint5")
	require.False(t, ok)

	info, ok := specifier.Lookup("Int128")
	require.True(t, ok)
	require.Equal(t, "num.I128", info.Type)
	require.Equal(t, "num.U128", info.Carrier)
}

func TestInfoCheck(t *testing.T) {
	err := specifier.Info{Name: "Narrow", Carrier: "uint8", Bits: 9, CarrierBits: 8}.Check()
	require.Error(t, err)
	require.True(t, specifier.Error.Has(err))
	require.Contains(t, err.Error(), "too narrow")

	err = specifier.Info{Name: "Empty", Carrier: "uint8", Bits: 0, CarrierBits: 8}.Check()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid bits")
}

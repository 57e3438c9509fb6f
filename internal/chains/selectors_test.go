package chains

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableHasFourteenChains(t *testing.T) {
	all := All()
	require.Len(t, all, 14)

	seen := make(map[uint64]bool, len(all))
	for _, c := range all {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Selector)
		assert.NotZero(t, c.SelectorID)
		assert.False(t, seen[c.SelectorID], "duplicate selector id %d", c.SelectorID)
		seen[c.SelectorID] = true
	}
}

func TestLookupByDisplayName(t *testing.T) {
	c, ok := Lookup("Ethereum Sepolia")
	require.True(t, ok)
	assert.Equal(t, uint64(16015286601757825753), c.SelectorID)
}

func TestLookupBySelectorName(t *testing.T) {
	c, ok := Lookup("ethereum-testnet-sepolia")
	require.True(t, ok)
	assert.Equal(t, "Ethereum Sepolia", c.Name)
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	c, ok := Lookup("  base mainnet ")
	require.True(t, ok)
	assert.Equal(t, uint64(15971525489660198786), c.SelectorID)
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("gondor-mainnet")
	assert.False(t, ok)
}

func TestAllReturnsACopy(t *testing.T) {
	all := All()
	all[0].Name = "mutated"

	fresh := All()
	assert.NotEqual(t, "mutated", fresh[0].Name)
}

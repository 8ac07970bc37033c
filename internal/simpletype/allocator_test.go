package simpletype

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(a *Allocator, kind Kind, valid bool) []string {
	var out []string
	for v := range a.Create(kind, valid) {
		out = append(out, v.Raw)
	}
	return out
}

func TestAllocator_CounterStartsAboveSeed(t *testing.T) {
	a := NewAllocator()

	got := collect(a, KindResourceID, true)
	assert.Equal(t, []string{"43", "44", "45", "46", "47"}, got)

	got = collect(a, KindResourceID, true)
	assert.Equal(t, []string{"48", "49", "50", "51", "52"}, got)
}

func TestAllocator_CounterNeverRepeats(t *testing.T) {
	a := NewAllocator()
	seen := make(map[string]bool)
	for range 50 {
		for _, raw := range collect(a, KindResourceIndex, true) {
			require.False(t, seen[raw], "value %s issued twice", raw)
			seen[raw] = true
		}
	}
	assert.Len(t, seen, 250)
}

func TestAllocator_CounterKindsAreIndependent(t *testing.T) {
	a := NewAllocator()
	collect(a, KindResourceID, true)

	v, ok := a.NextValid(KindResourceIndex)
	require.True(t, ok)
	assert.Equal(t, "43", v.Raw)
}

func TestAllocator_CounterExhaustion(t *testing.T) {
	a := NewAllocator()
	a.markIssued(KindResourceID, maxInt32)

	got := collect(a, KindResourceID, true)
	assert.Empty(t, got)
}

func TestAllocator_CounterInvalidUsesCuratedList(t *testing.T) {
	a := NewAllocator()
	assert.Equal(t, []string{"-1", "0", "2147483648"}, collect(a, KindResourceID, false))
	// no counter interaction
	v, _ := a.NextValid(KindResourceID)
	assert.Equal(t, "43", v.Raw)
}

func TestAllocator_MultiCounterRuns(t *testing.T) {
	a := NewAllocator()
	got := collect(a, KindResourceIndices, true)
	assert.Equal(t, []string{"42 43 44", "45", "46 47", "48 49 50 51", "52 53 54"}, got)
	for _, raw := range got {
		assert.True(t, New(KindResourceIndices, raw).Valid())
	}
}

func TestAllocator_RoundRobin(t *testing.T) {
	a := NewAllocator()

	first, ok := a.NextValid(KindColorValue)
	require.True(t, ok)
	second, ok := a.NextValid(KindColorValue)
	require.True(t, ok)
	assert.Equal(t, "#00000055", first.Raw)
	assert.Equal(t, "#000000", second.Raw)

	// a full pass after the cursor moved starts where the last call stopped
	assert.Equal(t, []string{"#00000055", "#000000"}, collect(a, KindColorValue, true))

	a.NextValid(KindColorValue)
	assert.Equal(t, []string{"#000000", "#00000055"}, collect(a, KindColorValue, true))
}

func TestAllocator_EmptyCuratedList(t *testing.T) {
	a := NewAllocator()
	_, ok := a.NextValid(KindURIReference)
	assert.False(t, ok)
	assert.Empty(t, collect(a, KindString, true))
}

func TestAllocator_Reset(t *testing.T) {
	a := NewAllocator()
	first := collect(a, KindResourceID, true)
	a.NextValid(KindUnit)

	a.Reset()

	assert.Equal(t, first, collect(a, KindResourceID, true))
	v, _ := a.NextValid(KindUnit)
	assert.Equal(t, "micron", v.Raw)
	assert.True(t, slices.Contains(Lookup(KindUnit).Allowed, v.Raw))
}

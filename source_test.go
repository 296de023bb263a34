package shufflebag_test

import (
	"testing"

	"github.com/Parkreiner/shufflebag"
	"github.com/stretchr/testify/require"
)

func TestSourcesWithSameSeedMatch(t *testing.T) {
	a := shufflebag.NewSource(777)
	b := shufflebag.NewSource(777)

	for range 50 {
		require.Equal(t, a.Intn(10), b.Intn(10))
	}
}

func TestSourceStaysInRange(t *testing.T) {
	src := shufflebag.NewSource(3)

	for range 200 {
		v := src.Intn(7)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 7)
	}
}

func TestSeededBagsDrawIdentically(t *testing.T) {
	a := shufflebag.NewSeeded[int](2026)
	b := shufflebag.NewSeeded[int](2026)
	for i := range 30 {
		a.Add(i)
		b.Add(i)
	}

	for range 90 {
		itemA, errA := a.NextItem()
		itemB, errB := b.NextItem()
		require.NoError(t, errA)
		require.NoError(t, errB)
		require.Equal(t, itemA, itemB)
	}
}

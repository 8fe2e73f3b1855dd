package registry

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSortBatches_ByExpiryThenID(t *testing.T) {
	batches := []*Batch{
		{ID: "B2", ValidUntil: d(1, 7, 2025)},
		{ID: "C3", ValidUntil: d(1, 6, 2025)},
		{ID: "A1", ValidUntil: d(1, 6, 2025)},
	}
	sortBatches(batches)

	ids := []string{batches[0].ID, batches[1].ID, batches[2].ID}
	require.Equal(t, []string{"A1", "C3", "B2"}, ids)
}

func TestSortBatches_SmallAndEmpty(t *testing.T) {
	sortBatches(nil)
	sortBatches([]*Batch{})

	one := []*Batch{{ID: "A1", ValidUntil: d(1, 6, 2025)}}
	sortBatches(one)
	require.Equal(t, "A1", one[0].ID)
}

// Both code paths (insertion floor and partitioning) must agree with a
// reference sort on the same comparator.
func TestSortBatches_MatchesReferenceSort(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 200).Draw(t, "n")
		batches := make([]*Batch, n)
		for i := range batches {
			batches[i] = &Batch{
				ID: fmt.Sprintf("%X", i+1),
				ValidUntil: d(
					rapid.IntRange(1, 28).Draw(t, "day"),
					rapid.IntRange(1, 12).Draw(t, "month"),
					rapid.IntRange(2024, 2027).Draw(t, "year"),
				),
			}
		}

		want := make([]*Batch, n)
		copy(want, batches)
		sort.SliceStable(want, func(i, j int) bool {
			return compareBatches(want[i], want[j]) < 0
		})

		sortBatches(batches)
		require.Equal(t, want, batches)
	})
}

package hashindex

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestIndex_PutGet(t *testing.T) {
	ix := New[int](1009)

	_, ok := ix.Get("A1F")
	require.False(t, ok)

	ix.Put("A1F", 1)
	ix.Put("B2C", 2)

	v, ok := ix.Get("A1F")
	require.True(t, ok)
	require.Equal(t, 1, v)

	v, ok = ix.Get("B2C")
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, 2, ix.Len())
}

func TestIndex_PutReplaces(t *testing.T) {
	ix := New[string](1009)
	ix.Put("key", "old")
	ix.Put("key", "new")

	v, ok := ix.Get("key")
	require.True(t, ok)
	require.Equal(t, "new", v)
	require.Equal(t, 1, ix.Len())
}

func TestIndex_Delete(t *testing.T) {
	ix := New[int](1009)
	ix.Put("A", 1)

	require.True(t, ix.Delete("A"))
	require.False(t, ix.Delete("A"))

	_, ok := ix.Get("A")
	require.False(t, ok)
	require.Equal(t, 0, ix.Len())
}

// A single-bucket table forces every key onto one chain, so chained
// collision handling carries the whole test.
func TestIndex_CollisionChains(t *testing.T) {
	ix := New[int](1)
	for i := 0; i < 50; i++ {
		ix.Put(fmt.Sprintf("K%d", i), i)
	}
	require.Equal(t, 50, ix.Len())

	for i := 0; i < 50; i++ {
		v, ok := ix.Get(fmt.Sprintf("K%d", i))
		require.True(t, ok)
		require.Equal(t, i, v)
	}

	// Delete from the middle of the chain, then the head, then the tail.
	require.True(t, ix.Delete("K25"))
	require.True(t, ix.Delete("K49"))
	require.True(t, ix.Delete("K0"))
	require.Equal(t, 47, ix.Len())

	_, ok := ix.Get("K25")
	require.False(t, ok)
	v, ok := ix.Get("K24")
	require.True(t, ok)
	require.Equal(t, 24, v)
}

func TestIndex_ZeroBucketsClamped(t *testing.T) {
	ix := New[int](0)
	ix.Put("A", 1)
	v, ok := ix.Get("A")
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestIndex_MatchesMapModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ix := New[int](rapid.IntRange(1, 64).Draw(t, "buckets"))
		model := make(map[string]int)

		numOps := rapid.IntRange(1, 200).Draw(t, "numOps")
		keyGen := rapid.StringMatching(`[0-9A-F]{1,6}`)

		for i := 0; i < numOps; i++ {
			key := keyGen.Draw(t, "key")
			switch rapid.IntRange(0, 2).Draw(t, "op") {
			case 0:
				ix.Put(key, i)
				model[key] = i
			case 1:
				_, inModel := model[key]
				require.Equal(t, inModel, ix.Delete(key))
				delete(model, key)
			case 2:
				want, inModel := model[key]
				got, ok := ix.Get(key)
				require.Equal(t, inModel, ok)
				if inModel {
					require.Equal(t, want, got)
				}
			}
		}
		require.Equal(t, len(model), ix.Len())
	})
}

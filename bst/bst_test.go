package bst_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dskit/bst"
)

func letters() *bst.Tree[string, string] {
	t := bst.New[string, string]()
	for _, k := range []string{"m", "c", "s", "t", "b", "y"} {
		t.Put(k, "Letter "+k)
	}

	return t
}

func TestTree_PutGetLen(t *testing.T) {
	tr := letters()
	assert.Equal(t, 6, tr.Len())
	assert.False(t, tr.IsEmpty())

	v, err := tr.Get("s")
	require.NoError(t, err)
	assert.Equal(t, "Letter s", v)

	_, err = tr.Get("a")
	assert.ErrorIs(t, err, bst.ErrKeyNotFound)

	// Overwrite keeps the size stable.
	tr.Put("s", "again")
	assert.Equal(t, 6, tr.Len())
	v, _ = tr.Get("s")
	assert.Equal(t, "again", v)
}

func TestTree_OrderStatistics(t *testing.T) {
	tr := letters()

	lo, err := tr.Min()
	require.NoError(t, err)
	assert.Equal(t, "b", lo)
	hi, err := tr.Max()
	require.NoError(t, err)
	assert.Equal(t, "y", hi)

	r, err := tr.Rank("s")
	require.NoError(t, err)
	assert.Equal(t, 3, r)
	k, err := tr.Select(3)
	require.NoError(t, err)
	assert.Equal(t, "s", k)

	f, err := tr.Floor("n")
	require.NoError(t, err)
	assert.Equal(t, "m", f)
	c, err := tr.Ceiling("r")
	require.NoError(t, err)
	assert.Equal(t, "s", c)

	_, err = tr.Select(6)
	assert.ErrorIs(t, err, bst.ErrIndexOutOfRange)
	_, err = tr.Floor("a")
	assert.ErrorIs(t, err, bst.ErrNoSuchBound)
	_, err = tr.Ceiling("z")
	assert.ErrorIs(t, err, bst.ErrNoSuchBound)
	_, err = bst.New[string, int]().Min()
	assert.ErrorIs(t, err, bst.ErrEmptyTree)
}

func TestTree_DeleteAndIterate(t *testing.T) {
	tr := letters()

	require.NoError(t, tr.Delete("m"))
	assert.Equal(t, 5, tr.Len())
	assert.False(t, tr.Contains("m"))
	assert.Equal(t, []string{"b", "c", "s", "t", "y"}, slices.Collect(tr.Keys()))

	require.NoError(t, tr.DeleteMin())
	assert.Equal(t, []string{"c", "s", "t", "y"}, slices.Collect(tr.Keys()))

	assert.ErrorIs(t, tr.Delete("nope"), bst.ErrKeyNotFound)
	assert.ErrorIs(t, bst.New[int, int]().DeleteMin(), bst.ErrEmptyTree)
}

// TestTree_OrderedInsertStillCorrect confirms correctness (not balance)
// under the worst-case insertion order.
func TestTree_OrderedInsertStillCorrect(t *testing.T) {
	tr := bst.New[int, int]()
	for i := 0; i < 512; i++ {
		tr.Put(i, i*2)
	}

	assert.Equal(t, 512, tr.Len())
	for i := 0; i < 512; i += 37 {
		v, err := tr.Get(i)
		require.NoError(t, err)
		assert.Equal(t, i*2, v)
		r, err := tr.Rank(i)
		require.NoError(t, err)
		assert.Equal(t, i, r)
	}
}

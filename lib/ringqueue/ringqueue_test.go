package ringqueue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queuectl/queuectl/lib/ringqueue"
)

// wrapped returns a capacity-5 queue whose logical sequence is [1 2 3 4]
// with the storage wrapped around the end of the slice.
func wrapped(t *testing.T) *ringqueue.Queue {
	t.Helper()
	q := ringqueue.FromSlice([]uint32{2, 3, 4}, 5)
	require.NoError(t, q.PushBack(1))
	require.Equal(t, []uint32{1, 2, 3, 4}, contents(q))
	return q
}

func contents(q *ringqueue.Queue) []uint32 {
	dst := make([]uint32, q.Len())
	q.CopyTo(dst)
	return dst
}

func TestNew(t *testing.T) {
	q := ringqueue.New(5)
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, 5, q.Cap())

	assert.Panics(t, func() { ringqueue.New(0) })
	assert.Panics(t, func() { ringqueue.New(-1) })
}

func TestFromSlice(t *testing.T) {
	q := ringqueue.FromSlice([]uint32{10, 20, 30}, 5)
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []uint32{10, 20, 30}, contents(q))

	assert.Panics(t, func() { ringqueue.FromSlice(make([]uint32, 6), 5) })
}

func TestPushBack(t *testing.T) {
	q := wrapped(t)

	require.NoError(t, q.PushBack(15))
	assert.Equal(t, []uint32{15, 1, 2, 3, 4}, contents(q))

	err := q.PushBack(10)
	require.ErrorIs(t, err, ringqueue.ErrFull)
	assert.Equal(t, []uint32{15, 1, 2, 3, 4}, contents(q))
}

func TestPopBack(t *testing.T) {
	q := wrapped(t)

	for _, want := range []uint32{1, 2, 3, 4} {
		got, err := q.PopBack()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := q.PopBack()
	require.ErrorIs(t, err, ringqueue.ErrEmpty)
	assert.Equal(t, 0, q.Len())
}

func TestPopFront(t *testing.T) {
	q := wrapped(t)

	for _, want := range []uint32{4, 3, 2, 1} {
		got, err := q.PopFront()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := q.PopFront()
	require.ErrorIs(t, err, ringqueue.ErrEmpty)
}

func TestPushPopRoundTrip(t *testing.T) {
	q := ringqueue.FromSlice([]uint32{7, 8, 9}, 5)
	before := contents(q)

	require.NoError(t, q.PushBack(42))
	got, err := q.PopBack()
	require.NoError(t, err)
	assert.Equal(t, uint32(42), got)
	assert.Equal(t, before, contents(q))
}

func TestGet(t *testing.T) {
	q := wrapped(t)

	for i, want := range []uint32{1, 2, 3, 4} {
		assert.Equal(t, want, q.Get(i))
	}
	assert.Panics(t, func() { q.Get(4) })
	assert.Panics(t, func() { q.Get(-1) })
}

func TestFind(t *testing.T) {
	q := wrapped(t)

	index, ok := q.Find(3)
	require.True(t, ok)
	assert.Equal(t, 2, index)

	_, ok = q.Find(0)
	assert.False(t, ok)
}

func TestRemoveAt(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []uint32
	}{
		{name: "back", index: 0, want: []uint32{2, 3, 4}},
		{name: "middle", index: 2, want: []uint32{1, 2, 4}},
		{name: "front", index: 3, want: []uint32{1, 2, 3}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			q := wrapped(t)
			q.RemoveAt(test.index)
			assert.Equal(t, 3, q.Len())
			assert.Equal(t, test.want, contents(q))
		})
	}

	t.Run("out of range", func(t *testing.T) {
		q := wrapped(t)
		assert.Panics(t, func() { q.RemoveAt(4) })
		assert.Panics(t, func() { q.RemoveAt(-1) })
	})
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		a, b []uint32
		want []uint32
	}{
		{
			name: "first longer",
			a:    []uint32{1, 3, 5},
			b:    []uint32{2, 4},
			want: []uint32{1, 2, 3, 4, 5},
		},
		{
			name: "second longer",
			a:    []uint32{1, 3},
			b:    []uint32{2, 4, 5},
			want: []uint32{1, 2, 3, 4, 5},
		},
		{
			name: "equal lengths",
			a:    []uint32{1, 3},
			b:    []uint32{2, 4},
			want: []uint32{1, 2, 3, 4},
		},
		{
			name: "second empty",
			a:    []uint32{1, 2, 3},
			b:    nil,
			want: []uint32{1, 2, 3},
		},
		{
			name: "first empty",
			a:    nil,
			b:    []uint32{1, 2, 3},
			want: []uint32{1, 2, 3},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := ringqueue.FromSlice(test.a, 5)
			b := ringqueue.FromSlice(test.b, 5)
			a.Merge(b)
			assert.Equal(t, len(test.a)+len(test.b), a.Len())
			assert.Equal(t, test.want, contents(a))
			assert.Equal(t, 0, b.Len())
		})
	}

	t.Run("wrapped operands", func(t *testing.T) {
		a := wrapped(t) // [1 2 3 4]
		b := ringqueue.FromSlice([]uint32{9}, 5)
		a.Merge(b)
		assert.Equal(t, []uint32{1, 9, 2, 3, 4}, contents(a))
		assert.Equal(t, 0, b.Len())
	})

	t.Run("exceeds capacity", func(t *testing.T) {
		a := ringqueue.FromSlice([]uint32{1, 2, 3}, 5)
		b := ringqueue.FromSlice([]uint32{4, 5, 6}, 5)
		assert.Panics(t, func() { a.Merge(b) })
	})

	t.Run("mismatched capacities", func(t *testing.T) {
		a := ringqueue.New(5)
		b := ringqueue.New(6)
		assert.Panics(t, func() { a.Merge(b) })
	})
}

func TestCopyTo(t *testing.T) {
	q := wrapped(t)

	dst := make([]uint32, 4)
	q.CopyTo(dst)
	assert.Equal(t, []uint32{1, 2, 3, 4}, dst)

	assert.Panics(t, func() { q.CopyTo(make([]uint32, 3)) })
}

func TestWraparoundChurn(t *testing.T) {
	// Push/pop past the physical end several times over; the logical
	// sequence must stay consistent with a plain slice model.
	q := ringqueue.New(3)
	var model []uint32
	for i := uint32(0); i < 20; i++ {
		if q.Len() == q.Cap() {
			got, err := q.PopFront()
			require.NoError(t, err)
			assert.Equal(t, model[len(model)-1], got)
			model = model[:len(model)-1]
		}
		require.NoError(t, q.PushBack(i))
		model = append([]uint32{i}, model...)
		assert.Equal(t, model, contents(q))
	}
}

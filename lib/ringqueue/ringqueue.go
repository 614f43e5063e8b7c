// Package ringqueue implements a fixed-capacity double-ended queue over a
// circular uint32 storage array.
//
// The queue is stored in a contiguous slice, but the logical sequence may
// wrap around the end of it:
//
//	capacity = 7
//	begin    = 4
//	size     = 5
//
//	                                        #0        #1        #2
//	 #3        #4         *         *
//	  ^         ^         ^         ^         ^         ^         ^
//	  |         |         |         |         |         |         |
//	slots[0]  slots[1]  slots[2]  slots[3]  slots[4]  slots[5]  slots[6]
//
// This layout keeps push and pop at both ends O(1) with no allocation or
// memory moves: adding at the back just moves begin one slot to the left,
// wrapping to the end of the slice when it is already zero.
package ringqueue

import (
	"fmt"

	"golang.org/x/xerrors"
)

var (
	// ErrFull is returned by PushBack when the queue already holds
	// capacity elements.
	ErrFull = xerrors.New("ring queue is full")
	// ErrEmpty is returned by PopBack and PopFront when the queue holds
	// no elements.
	ErrEmpty = xerrors.New("ring queue is empty")
)

// Queue is a double-ended circular buffer of uint32 values. The logical
// element at position i lives at slots[(begin+i) % cap]. Slots outside the
// logical range hold stale values and are never exposed.
//
// A Queue is not safe for concurrent use.
type Queue struct {
	// begin is the physical slot of logical position 0, the "back".
	begin int
	// size is the count of logically valid elements.
	size  int
	slots []uint32
}

// New returns an empty queue that can hold up to capacity elements. The
// storage is allocated once here; no operation allocates afterwards except
// Merge, which uses a transient scratch slice.
func New(capacity int) *Queue {
	if capacity < 1 {
		panic(fmt.Sprintf("ringqueue: invalid capacity %d", capacity))
	}
	return &Queue{slots: make([]uint32, capacity)}
}

// FromSlice returns a queue holding the given values in logical order.
// The caller guarantees len(values) <= capacity.
func FromSlice(values []uint32, capacity int) *Queue {
	if len(values) > capacity {
		panic(fmt.Sprintf("ringqueue: %d values exceed capacity %d", len(values), capacity))
	}
	q := New(capacity)
	copy(q.slots, values)
	q.size = len(values)
	return q
}

// Len returns the number of elements currently held.
func (q *Queue) Len() int { return q.size }

// Cap returns the fixed capacity.
func (q *Queue) Cap() int { return len(q.slots) }

// PushBack inserts value as the new back element (logical position 0).
// Returns ErrFull, leaving the queue unchanged, when the queue is full.
func (q *Queue) PushBack(value uint32) error {
	if q.size == len(q.slots) {
		return ErrFull
	}
	if q.begin == 0 {
		q.begin = len(q.slots) - 1
	} else {
		q.begin--
	}
	q.slots[q.begin] = value
	q.size++
	return nil
}

// PopBack removes and returns the back element. Returns ErrEmpty, leaving
// the queue unchanged, when the queue is empty.
func (q *Queue) PopBack() (uint32, error) {
	if q.size == 0 {
		return 0, ErrEmpty
	}
	value := q.slots[q.begin]
	q.begin = (q.begin + 1) % len(q.slots)
	q.size--
	return value, nil
}

// PopFront removes and returns the front element (logical position size-1).
// The vacated slot is not cleared; it is simply excluded from the logical
// range and will be overwritten by a later PushBack. Returns ErrEmpty,
// leaving the queue unchanged, when the queue is empty.
func (q *Queue) PopFront() (uint32, error) {
	if q.size == 0 {
		return 0, ErrEmpty
	}
	value := q.Get(q.size - 1)
	q.size--
	return value, nil
}

// Get returns the element at logical position index. The index must lie in
// [0, Len()); anything else is a caller bug and panics.
func (q *Queue) Get(index int) uint32 {
	if index < 0 || index >= q.size {
		panic(fmt.Sprintf("ringqueue: index %d out of range [0, %d)", index, q.size))
	}
	return q.slots[(q.begin+index)%len(q.slots)]
}

// Find scans logical positions in increasing order and returns the first
// position holding value, or false when the value is absent.
func (q *Queue) Find(value uint32) (int, bool) {
	for i := 0; i < q.size; i++ {
		if q.Get(i) == value {
			return i, true
		}
	}
	return 0, false
}

// RemoveAt deletes the element at logical position index, shifting every
// later element one position toward the back to close the gap. The index
// must lie in [0, Len()); anything else is a caller bug and panics.
func (q *Queue) RemoveAt(index int) {
	if index < 0 || index >= q.size {
		panic(fmt.Sprintf("ringqueue: index %d out of range [0, %d)", index, q.size))
	}
	q.size--
	for i := q.begin + index; i != q.begin+q.size; i++ {
		q.slots[i%len(q.slots)] = q.slots[(i+1)%len(q.slots)]
	}
}

// Merge interleaves other into q like a zipper: q0, other0, q1, other1, ...
// until the shorter of the two runs out, then the remainder of the longer
// follows in its original order. Afterwards q holds the merged sequence with
// begin reset to 0 and other is empty.
//
// The queues must have equal capacities and their combined size must fit in
// q; both are caller contracts and panic when violated. Callers that cannot
// guarantee the size bound must check Len() on both queues first.
func (q *Queue) Merge(other *Queue) {
	if q.Cap() != other.Cap() {
		panic(fmt.Sprintf("ringqueue: merge of mismatched capacities %d and %d", q.Cap(), other.Cap()))
	}
	total := q.size + other.size
	if total > q.Cap() {
		panic(fmt.Sprintf("ringqueue: merged size %d exceeds capacity %d", total, q.Cap()))
	}
	shorter := min(q.size, other.size)
	merged := make([]uint32, 0, total)
	for i := 0; i < shorter; i++ {
		merged = append(merged, q.Get(i), other.Get(i))
	}
	for i := shorter; i < q.size; i++ {
		merged = append(merged, q.Get(i))
	}
	for i := shorter; i < other.size; i++ {
		merged = append(merged, other.Get(i))
	}
	copy(q.slots, merged)
	q.begin = 0
	q.size = total
	other.size = 0
}

// CopyTo writes the logical sequence, in order, into dst. The destination
// must have length exactly Len(); anything else is a caller bug and panics.
// Mostly useful for inspection and tests.
func (q *Queue) CopyTo(dst []uint32) {
	if len(dst) != q.size {
		panic(fmt.Sprintf("ringqueue: destination length %d does not match size %d", len(dst), q.size))
	}
	if q.begin+q.size <= len(q.slots) {
		copy(dst, q.slots[q.begin:q.begin+q.size])
		return
	}
	n := copy(dst, q.slots[q.begin:])
	copy(dst[n:], q.slots[:q.size-n])
}

package binaryheap

// Ticket is an opaque reference to one element of a [Heap], issued by
// [Heap.Enqueue] and [Heap.EnqueueAll] and consumed by [Heap.Update] and
// [Heap.Remove]. The zero Ticket names nothing. A ticket stays valid until
// its element leaves the heap, regardless of how the element moves or how
// the backing array grows in between.
type Ticket struct {
	ref int
	gen uint64
}

// Valid reports whether t could name an element, i.e. is not the zero
// Ticket. A valid ticket may still be stale; [Heap.Update] and [Heap.Remove]
// report that as [ErrNotFound].
func (t Ticket) Valid() bool {
	return t.gen != 0
}

// entry is one cell of the indirection table. While its element is in the
// heap, pos is the element's current offset in the backing array; a retired
// entry has pos -1 and a bumped generation, so tickets issued against the
// old generation no longer match.
type entry struct {
	pos int
	gen uint64
}

// allocEntry claims a table entry recording pos, reusing a retired entry
// when one is free, and returns its index.
func (h *Heap[T]) allocEntry(pos int) int {
	if n := len(h.free); n > 0 {
		ref := h.free[n-1]
		h.free = h.free[:n-1]
		h.table[ref].pos = pos
		return ref
	}
	h.table = append(h.table, entry{pos: pos, gen: 1})
	return len(h.table) - 1
}

// freeEntry retires the entry at ref. Bumping the generation here is what
// invalidates every ticket issued for the departed element.
func (h *Heap[T]) freeEntry(ref int) {
	h.table[ref].pos = -1
	h.table[ref].gen++
	h.free = append(h.free, ref)
}

// resolve maps a ticket to its element's current array offset, rejecting
// the zero ticket and any ticket whose entry is retired, regenerated, or
// out of range.
func (h *Heap[T]) resolve(t Ticket) (int, error) {
	if t.gen == 0 {
		return 0, ErrNilTicket
	}
	if t.ref < 0 || t.ref >= len(h.table) {
		return 0, ErrNotFound
	}
	e := h.table[t.ref]
	if e.gen != t.gen || e.pos < 0 {
		return 0, ErrNotFound
	}
	return e.pos, nil
}

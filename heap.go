package binaryheap

// slot is one cell of the backing array. It carries the element and the
// index of its indirection table entry, so a swap can keep the table's
// recorded position in sync with the cell's offset.
type slot[T any] struct {
	item T
	ref  int
}

// GrowthPolicy decides the new capacity of the backing array when an
// insertion needs at least needed cells and current are allocated. The heap
// clamps any result below needed, so a policy cannot stall insertion.
type GrowthPolicy func(current, needed int) int

// DoublingGrowth is the default [GrowthPolicy]: repeated doubling from a
// floor of one, so a zero-capacity heap still grows.
func DoublingGrowth(current, needed int) int {
	c := max(current, 1)
	for c < needed {
		c *= 2
	}
	return c
}

// Heap is an indirect binary min-heap over elements of type T. The zero
// value is not usable; construct with [New].
type Heap[T any] struct {
	cmp     func(a, b T) int
	grow    GrowthPolicy
	metrics MetricsHook[T]

	slots []slot[T]
	table []entry
	free  []int
}

// New creates an empty [Heap] ordered by cmp and configured by the given
// options.
func New[T any](cmp func(a, b T) int, opts ...Option[T]) *Heap[T] {
	o := &Options[T]{}
	for _, opt := range opts {
		opt(o)
	}

	growth := o.Growth
	if growth == nil {
		growth = DoublingGrowth
	}

	h := &Heap[T]{
		cmp:     cmp,
		grow:    growth,
		metrics: o.Metrics,
	}
	if o.Capacity > 0 {
		h.slots = make([]slot[T], 0, o.Capacity)
		h.table = make([]entry, 0, o.Capacity)
	}
	return h
}

// Len returns the number of elements currently in the heap.
func (h *Heap[T]) Len() int {
	return len(h.slots)
}

// Cap returns the allocated capacity of the backing array. Capacity never
// shrinks.
func (h *Heap[T]) Cap() int {
	return cap(h.slots)
}

// Enqueue inserts item and returns a [Ticket] for it. The backing array
// grows if it is full; outstanding tickets remain valid across growth.
func (h *Heap[T]) Enqueue(item T) Ticket {
	pos := len(h.slots)
	h.ensureCapacity(pos + 1)

	ref := h.allocEntry(pos)
	h.slots = append(h.slots, slot[T]{item: item, ref: ref})
	h.siftUp(pos)

	if h.metrics != nil {
		h.metrics.OnEnqueue(item)
	}
	return Ticket{ref: ref, gen: h.table[ref].gen}
}

// Dequeue removes and returns the element nearest the root. It returns
// [ErrEmpty] if the heap has no elements.
func (h *Heap[T]) Dequeue() (T, error) {
	switch n := len(h.slots); n {
	case 0:
		var zero T
		return zero, ErrEmpty
	case 1:
		item := h.slots[0].item
		h.dropLast()
		if h.metrics != nil {
			h.metrics.OnDequeue(item)
		}
		return item, nil
	default:
		item := h.slots[0].item
		h.swap(0, n-1)
		h.dropLast()
		h.siftDownExtract(0)
		if h.metrics != nil {
			h.metrics.OnDequeue(item)
		}
		return item, nil
	}
}

// Peek returns the element nearest the root without removing it. It returns
// [ErrEmpty] if the heap has no elements.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.slots) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return h.slots[0].item, nil
}

// Update restores heap order after the caller has changed the ordering key
// of the element named by t. The element itself must be the same one the
// ticket was issued for; only its comparator-visible state may have changed.
// Exactly one of the two internal passes moves the element, so a single call
// handles both a raised and a lowered priority.
func (h *Heap[T]) Update(t Ticket) error {
	pos, err := h.resolve(t)
	if err != nil {
		return err
	}
	h.siftDown(h.siftUp(pos))
	return nil
}

// Remove deletes the element named by t from the heap. It returns
// [ErrNilTicket] for the zero ticket and [ErrNotFound] for a ticket that is
// stale or was never issued by this heap; in both cases the heap is left
// untouched.
func (h *Heap[T]) Remove(t Ticket) error {
	pos, err := h.resolve(t)
	if err != nil {
		return err
	}

	last := len(h.slots) - 1
	if pos != last {
		h.swap(pos, last)
	}
	h.dropLast()

	// Fix whatever element the swap moved into the vacated position. When
	// the removed element was the last one there is nothing to fix.
	if pos < len(h.slots) {
		h.siftDown(h.siftUp(pos))
	}
	return nil
}

// EnqueueAll inserts all items and returns one [Ticket] per item, in input
// order. The backing array grows at most once, and heap order is established
// with a single bottom-up rebuild, which is linear in the resulting size
// rather than the O(count * log n) of sequential [Heap.Enqueue] calls. The
// returned tickets are live: they track their elements through the rebuild
// and every later operation.
func (h *Heap[T]) EnqueueAll(items ...T) []Ticket {
	if len(items) == 0 {
		return nil
	}

	n := len(h.slots)
	h.ensureCapacity(n + len(items))

	// Append everything as unordered leaves, then rebuild.
	tickets := make([]Ticket, len(items))
	for i, item := range items {
		ref := h.allocEntry(n + i)
		h.slots = append(h.slots, slot[T]{item: item, ref: ref})
		tickets[i] = Ticket{ref: ref, gen: h.table[ref].gen}
	}
	h.rebuild()

	if h.metrics != nil {
		for _, item := range items {
			h.metrics.OnEnqueue(item)
		}
	}
	return tickets
}

// Clear removes every element and invalidates every outstanding ticket.
// Capacity is retained. Clearing an already-empty heap is a no-op.
func (h *Heap[T]) Clear() {
	for i := range h.slots {
		h.freeEntry(h.slots[i].ref)
		h.slots[i] = slot[T]{}
	}
	h.slots = h.slots[:0]
}

// ensureCapacity grows the backing array so it can hold at least n elements.
// Existing cells keep their contents and positions; only the array moves,
// which tickets are immune to.
func (h *Heap[T]) ensureCapacity(n int) {
	current := cap(h.slots)
	if n <= current {
		return
	}

	newCap := h.grow(current, n)
	if newCap < n {
		newCap = n
	}

	grown := make([]slot[T], len(h.slots), newCap)
	copy(grown, h.slots)
	h.slots = grown

	if h.metrics != nil {
		h.metrics.OnGrow(current, newCap)
	}
}

// dropLast releases the tail cell: its table entry is retired and the cell
// zeroed so the element is not retained.
func (h *Heap[T]) dropLast() {
	last := len(h.slots) - 1
	h.freeEntry(h.slots[last].ref)
	h.slots[last] = slot[T]{}
	h.slots = h.slots[:last]
}

// swap exchanges the cells at i and j and rewrites both table positions in
// the same step, keeping recorded position equal to array offset.
func (h *Heap[T]) swap(i, j int) {
	h.slots[i], h.slots[j] = h.slots[j], h.slots[i]
	h.table[h.slots[i].ref].pos = i
	h.table[h.slots[j].ref].pos = j
}

// siftUp moves the element at i toward the root while it outranks its
// parent, and returns the index where it settles.
func (h *Heap[T]) siftUp(i int) int {
	for i > 0 {
		parent := (i - 1) / 2
		if h.cmp(h.slots[i].item, h.slots[parent].item) >= 0 {
			break
		}
		h.swap(i, parent)
		i = parent
	}
	return i
}

// siftDown moves the element at i toward the leaves, swapping with its
// higher-priority child until it outranks or ties both children.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.slots)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		next := left
		if right := left + 1; right < n && h.cmp(h.slots[right].item, h.slots[left].item) < 0 {
			next = right
		}
		if h.cmp(h.slots[i].item, h.slots[next].item) <= 0 {
			break
		}
		h.swap(i, next)
		i = next
	}
}

// siftDownExtract restores order at i after the tail element has been
// swapped into it during extraction. It descends to a leaf along the
// higher-priority child without comparing against the displaced element,
// then sifts back up from the leaf. The displaced element usually belongs
// near the bottom, so this spends fewer comparisons than siftDown while
// reaching the same arrangement.
func (h *Heap[T]) siftDownExtract(i int) {
	n := len(h.slots)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		next := left
		if right := left + 1; right < n && h.cmp(h.slots[right].item, h.slots[left].item) < 0 {
			next = right
		}
		h.swap(i, next)
		i = next
	}
	h.siftUp(i)
}

// rebuild establishes heap order over the whole array by sifting down every
// internal node from the last to the first (Floyd's bottom-up construction).
func (h *Heap[T]) rebuild() {
	for i := len(h.slots)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
}

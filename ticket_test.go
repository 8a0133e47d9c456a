package binaryheap_test

import (
	"errors"
	"testing"

	"github.com/iskolbin/binaryheap"
)

func TestTicket_Zero(t *testing.T) {
	t.Parallel()

	var zero binaryheap.Ticket
	if zero.Valid() {
		t.Error("zero Ticket must not be valid")
	}

	h := binaryheap.New(binaryheap.Min[int]())
	h.Enqueue(1)

	if err := h.Update(zero); !errors.Is(err, binaryheap.ErrNilTicket) {
		t.Errorf("Update with zero ticket: got %v, want ErrNilTicket", err)
	}
	if err := h.Remove(zero); !errors.Is(err, binaryheap.ErrNilTicket) {
		t.Errorf("Remove with zero ticket: got %v, want ErrNilTicket", err)
	}
	if h.Len() != 1 {
		t.Errorf("rejected tickets must not mutate: Len is %d, want 1", h.Len())
	}
}

func TestTicket_StaleAfterDequeue(t *testing.T) {
	t.Parallel()

	h := binaryheap.New(binaryheap.Min[int]())
	ticket := h.Enqueue(7)
	if !ticket.Valid() {
		t.Fatal("issued ticket must be valid")
	}

	if _, err := h.Dequeue(); err != nil {
		t.Fatalf("unexpected dequeue error: %v", err)
	}

	if err := h.Remove(ticket); !errors.Is(err, binaryheap.ErrNotFound) {
		t.Errorf("Remove with dequeued ticket: got %v, want ErrNotFound", err)
	}
	if err := h.Update(ticket); !errors.Is(err, binaryheap.ErrNotFound) {
		t.Errorf("Update with dequeued ticket: got %v, want ErrNotFound", err)
	}
}

// A removed element's ticket must stay dead even after its internal slot is
// recycled for a new element.
func TestTicket_NoAliasingAfterReuse(t *testing.T) {
	t.Parallel()

	h := binaryheap.New(binaryheap.Min[int]())
	old := h.Enqueue(1)
	if err := h.Remove(old); err != nil {
		t.Fatalf("unexpected remove error: %v", err)
	}

	// This enqueue recycles the entry the old ticket points at.
	fresh := h.Enqueue(2)

	if err := h.Remove(old); !errors.Is(err, binaryheap.ErrNotFound) {
		t.Errorf("stale ticket aliased a recycled slot: got %v, want ErrNotFound", err)
	}
	if err := h.Remove(fresh); err != nil {
		t.Errorf("fresh ticket rejected: %v", err)
	}
}

func TestTicket_SurvivesGrowth(t *testing.T) {
	t.Parallel()

	h := binaryheap.New(byCost)
	first := &job{name: "first", cost: 50}
	ticket := h.Enqueue(first)

	// Force several reallocations of the backing array.
	for i := range 100 {
		h.Enqueue(&job{cost: 100 + i})
	}

	first.cost = 0
	if err := h.Update(ticket); err != nil {
		t.Fatalf("ticket invalidated by growth: %v", err)
	}

	got, err := h.Dequeue()
	if err != nil {
		t.Fatalf("unexpected dequeue error: %v", err)
	}
	if got != first {
		t.Errorf("expected updated element first, got: %+v", got)
	}
}

// Tickets issued by a batch insert track their elements through the
// bottom-up rebuild and remain usable for update and removal.
func TestTicket_LiveAcrossBatchBuild(t *testing.T) {
	t.Parallel()

	h := binaryheap.New(byCost)
	jobs := []*job{
		{name: "a", cost: 40},
		{name: "b", cost: 10},
		{name: "c", cost: 30},
		{name: "d", cost: 20},
	}
	tickets := h.EnqueueAll(jobs...)
	if len(tickets) != len(jobs) {
		t.Fatalf("expected %d tickets, got: %d", len(jobs), len(tickets))
	}

	// Promote "c" past everything via its batch ticket.
	jobs[2].cost = 0
	if err := h.Update(tickets[2]); err != nil {
		t.Fatalf("batch ticket rejected by Update: %v", err)
	}

	got, err := h.Dequeue()
	if err != nil {
		t.Fatalf("unexpected dequeue error: %v", err)
	}
	if got != jobs[2] {
		t.Errorf("expected promoted element first, got: %+v", got)
	}

	// The rest remain individually removable.
	for _, i := range []int{0, 1, 3} {
		if err := h.Remove(tickets[i]); err != nil {
			t.Errorf("batch ticket %d rejected by Remove: %v", i, err)
		}
	}
	if h.Len() != 0 {
		t.Errorf("expected empty heap, got Len %d", h.Len())
	}
}

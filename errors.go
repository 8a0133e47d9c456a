package binaryheap

import "errors"

var (
	// ErrEmpty is returned by Peek and Dequeue on a heap with no elements.
	ErrEmpty = errors.New("binaryheap: heap is empty")
	// ErrNilTicket is returned when an operation is given the zero Ticket.
	ErrNilTicket = errors.New("binaryheap: nil ticket")
	// ErrNotFound is returned when a ticket's element is no longer in the
	// heap, or the ticket was never issued by it.
	ErrNotFound = errors.New("binaryheap: ticket not found")
)

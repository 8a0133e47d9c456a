package binaryheap

// MetricsHook defines hooks for monitoring enqueue, dequeue, and growth
// events. Update and Remove are structural fixes, not arrivals or
// departures of work, so they carry no hook.
type MetricsHook[T any] interface {
	OnEnqueue(item T)
	OnDequeue(item T)
	OnGrow(oldCap, newCap int)
}

package binaryheap

// Options holds configuration options for a [Heap].
type Options[T any] struct {
	Capacity int
	Growth   GrowthPolicy
	Metrics  MetricsHook[T]
}

// Option is a function that configures [Options].
type Option[T any] func(*Options[T])

// WithCapacity pre-sizes the heap for n elements, so no growth happens until
// the n+1th insertion.
func WithCapacity[T any](n int) Option[T] {
	return func(o *Options[T]) {
		o.Capacity = n
	}
}

// WithGrowthPolicy replaces [DoublingGrowth] as the heap's [GrowthPolicy].
func WithGrowthPolicy[T any](p GrowthPolicy) Option[T] {
	return func(o *Options[T]) {
		o.Growth = p
	}
}

// WithMetricsHook sets the metrics hook for the [Heap].
func WithMetricsHook[T any](hook MetricsHook[T]) Option[T] {
	return func(o *Options[T]) {
		o.Metrics = hook
	}
}

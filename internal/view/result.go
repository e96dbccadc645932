// Package view derives the configuration of a schema-driven list view
// from route, query, and fetch state. It is the only place in the service
// with decision logic; everything around it is transport glue.
package view

// ResultState tags a fetch outcome.
type ResultState int

const (
	// ResultPending means the fetch has been issued but has not settled.
	ResultPending ResultState = iota
	// ResultFailed means the fetch settled without usable data.
	ResultFailed
	// ResultReady means the fetch settled with a value.
	ResultReady
)

// Result is the tagged outcome of an asynchronous fetch. The resolver
// consumes Results instead of nil checks so the pending/failed/ready
// distinction is explicit and exhaustive.
type Result[T any] struct {
	state ResultState
	value T
	err   error
}

// Pending returns a Result representing an unsettled fetch.
func Pending[T any]() Result[T] {
	return Result[T]{state: ResultPending}
}

// Failed returns a Result for a fetch that settled without usable data.
func Failed[T any](err error) Result[T] {
	return Result[T]{state: ResultFailed, err: err}
}

// Ready returns a Result carrying a fetched value.
func Ready[T any](v T) Result[T] {
	return Result[T]{state: ResultReady, value: v}
}

// State returns the result's tag.
func (r Result[T]) State() ResultState { return r.state }

// IsPending reports whether the fetch has not settled.
func (r Result[T]) IsPending() bool { return r.state == ResultPending }

// IsFailed reports whether the fetch settled without usable data.
func (r Result[T]) IsFailed() bool { return r.state == ResultFailed }

// Value returns the fetched value and whether one is present.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.state == ResultReady
}

// Err returns the failure cause for failed results, nil otherwise.
func (r Result[T]) Err() error { return r.err }

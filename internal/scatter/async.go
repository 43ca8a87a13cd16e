package scatter

// LoadState tracks externally loaded data through its lifecycle. The core
// itself performs no I/O; the frontend flips the state around its own
// loader commands and the engine just reads it.
type LoadState int

const (
	NotLoaded LoadState = iota
	Loading
	Loaded
)

// Async wraps a value with its three-state load lifecycle. Data is only
// meaningful in the Loaded state.
type Async[T any] struct {
	State LoadState
	Data  T
}

// AsyncLoaded wraps an available value.
func AsyncLoaded[T any](v T) Async[T] {
	return Async[T]{State: Loaded, Data: v}
}

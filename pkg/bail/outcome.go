package bail

// Unit is the payload type of boolean classifications. A true condition
// carries no value beyond the fact of its truth.
type Unit = struct{}

// Outcome is the canonical form of a fallible value: either a payload is
// present, or it is empty with a short reason used in diagnostics. The
// reason never carries an error value, only a word or two describing the
// shape of the failure.
type Outcome[T any] struct {
	value  T
	ok     bool
	reason string
}

func Has[T any](v T) Outcome[T] {
	return Outcome[T]{
		value: v,
		ok:    true,
	}
}

func Empty[T any]() Outcome[T] {
	return EmptyReason[T]("empty")
}

// EmptyReason builds an empty outcome with a custom failure description.
// Custom classifiable types use it to say what kind of emptiness they mean.
func EmptyReason[T any](reason string) Outcome[T] {
	return Outcome[T]{
		ok:     false,
		reason: reason,
	}
}

func (o Outcome[T]) Ok() bool {
	return o.ok
}

// Value returns the payload, or the zero value when the outcome is empty.
func (o Outcome[T]) Value() T {
	return o.value
}

func (o Outcome[T]) Get() (T, bool) {
	return o.value, o.ok
}

// OrElse returns the payload, or fallback when the outcome is empty.
func (o Outcome[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// Reason describes the failure for diagnostics. Empty string on success.
func (o Outcome[T]) Reason() string {
	return o.reason
}

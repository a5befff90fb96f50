package bail

import "reflect"

// Classifiable is implemented by types that know how to map themselves
// onto an Outcome. The rest of the package never cares which classifier
// produced an outcome.
type Classifiable[T any] interface {
	// Classify converts the value into its canonical success/failure form.
	Classify() Outcome[T]
}

func Classify[T any](c Classifiable[T]) Outcome[T] {
	return c.Classify()
}

// Try classifies the (value, error) shape. The error is discarded: bailing
// logs the source text of the failed expression, never the error itself.
func Try[T any](v T, err error) Outcome[T] {
	if err != nil {
		return EmptyReason[T]("an error")
	}
	return Has(v)
}

// Ptr classifies an optional value held behind a pointer.
func Ptr[T any](p *T) Outcome[T] {
	if p == nil {
		return EmptyReason[T]("nil")
	}
	return Has(*p)
}

// From classifies the comma-ok shape: map index, type assertion, channel
// receive.
func From[T any](v T, ok bool) Outcome[T] {
	if !ok {
		return EmptyReason[T]("absent")
	}
	return Has(v)
}

// When classifies a boolean condition. True carries the unit payload.
func When(cond bool) Outcome[Unit] {
	if !cond {
		return EmptyReason[Unit]("false")
	}
	return Has(Unit{})
}

// NotNil classifies an interface value, treating both nil interfaces and
// interfaces holding a nil pointer as empty.
func NotNil(v any) Outcome[any] {
	if isNil(v) {
		return EmptyReason[any]("nil")
	}
	return Has(v)
}

func isNil(i any) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

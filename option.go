package costreams

import "errors"

// ErrNoValue is the value of the panic raised when reading from an absent
// Option. Check Exists before calling Get.
var ErrNoValue = errors.New("costreams: no value present")

// Option is a container that either holds a value or is absent.
// The zero Option is absent. A present Option may legitimately hold the zero
// value of T, including a nil pointer; absence and a present nil are
// distinct and never conflated.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Exists returns true if o holds a value.
func (o Option[T]) Exists() bool {
	return o.ok
}

// Get returns the held value.
// It panics with ErrNoValue if o is absent.
func (o Option[T]) Get() T {
	if !o.ok {
		panic(ErrNoValue)
	}
	return o.value
}

// GetOr returns the held value, or alt if o is absent.
func (o Option[T]) GetOr(alt T) T {
	if !o.ok {
		return alt
	}
	return o.value
}

// OrElse returns o if it holds a value, otherwise the result of calling alt.
// alt is not called if o holds a value.
func (o Option[T]) OrElse(alt func() Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return alt()
}

// Filter returns o if it holds a value matching pred, otherwise an absent
// Option. pred is not called if o is absent.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if !o.ok || pred(o.value) {
		return o
	}
	return None[T]()
}

// Accept calls action with the held value, or does nothing if o is absent.
func (o Option[T]) Accept(action func(T)) {
	if o.ok {
		action(o.value)
	}
}

// MapOption returns an Option holding the result of applying mapper to o's
// value, or an absent Option if o is absent. mapper is not called if o is
// absent.
func MapOption[T any, U any](o Option[T], mapper func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(mapper(o.value))
}

// FlatMapOption returns the Option produced by applying mapper to o's value,
// flattened one level, or an absent Option if o is absent.
func FlatMapOption[T any, U any](o Option[T], mapper func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return mapper(o.value)
}

// CombineOption returns an Option holding the result of zipping the values
// of a and b. If either side is absent, the result is absent and zipper is
// not called.
func CombineOption[T any, U any, R any](a Option[T], b Option[U], zipper func(T, U) R) Option[R] {
	if !a.ok || !b.ok {
		return None[R]()
	}
	return Some(zipper(a.value, b.value))
}

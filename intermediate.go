package costreams

import (
	"errors"

	"golang.org/x/exp/slices"
)

// Map returns a stream producing the elements of s transformed by mapper.
// Absent results pass through without calling mapper.
func Map[T any, U any](s *Stream[T], mapper func(T) (U, error)) *Stream[U] {
	st := &stage[U]{close: s.Close}

	st.produce = func() (Option[U], error) {
		value, err := s.producer.Produce()
		if err != nil {
			return None[U](), err
		}

		if !value.Exists() {
			return None[U](), nil
		}

		mapped, err := mapper(value.Get())
		if err != nil {
			return None[U](), err
		}

		return Some(mapped), nil
	}

	return FromProducer[U](st)
}

// Filter returns a stream producing only the elements of s for which pred
// returns true. Each pull keeps pulling upstream until an element passes or
// the upstream is exhausted.
func Filter[T any](s *Stream[T], pred func(T) (bool, error)) *Stream[T] {
	st := &stage[T]{close: s.Close}

	st.produce = func() (Option[T], error) {
		for {
			value, err := s.producer.Produce()
			if err != nil {
				return None[T](), err
			}

			if !value.Exists() {
				return value, nil
			}

			keep, err := pred(value.Get())
			if err != nil {
				return None[T](), err
			}

			if keep {
				return value, nil
			}
		}
	}

	return FromProducer[T](st)
}

// FlatMap returns a stream producing the elements of the inner streams that
// mapper maps each element of s to, in order. Each inner stream is drained
// fully and closed before the next outer element is mapped. A nil inner
// stream is treated as empty. Closing the new stream closes the currently
// open inner stream, then s.
func FlatMap[T any, U any](s *Stream[T], mapper func(T) (*Stream[U], error)) *Stream[U] {
	var inner *Stream[U]

	st := &stage[U]{}

	st.close = func() error {
		var innerErr error

		if inner != nil {
			innerErr = inner.Close()
			inner = nil
		}

		return errors.Join(innerErr, s.Close())
	}

	st.produce = func() (Option[U], error) {
		for {
			if inner != nil {
				value, err := inner.producer.Produce()
				if err != nil {
					return None[U](), err
				}

				if value.Exists() {
					return value, nil
				}

				err = inner.Close()
				inner = nil

				if err != nil {
					return None[U](), err
				}
			}

			outer, err := s.producer.Produce()
			if err != nil {
				return None[U](), err
			}

			if !outer.Exists() {
				return None[U](), nil
			}

			inner, err = mapper(outer.Get())
			if err != nil {
				inner = nil
				return None[U](), err
			}
		}
	}

	return FromProducer[U](st)
}

// Union returns the concatenation of the given streams.
func Union[T any](streams ...*Stream[T]) *Stream[T] {
	return FlatMap(Of(streams...), func(s *Stream[T]) (*Stream[T], error) {
		return s, nil
	})
}

// Zip returns a stream producing the results of zipping the elements of a
// and b pairwise. The new stream ends as soon as either side is exhausted.
// Closing it closes both sides.
func Zip[T any, U any, R any](a *Stream[T], b *Stream[U], zipper func(T, U) (R, error)) *Stream[R] {
	return ZipAll(a, b, zipper, nil, nil)
}

// ZipAll is Zip with missing-value suppliers. When one side is exhausted and
// its supplier is non-nil, the supplier's value substitutes for that side
// until both sides are exhausted. A nil supplier ends the stream when its
// side exhausts, exactly like Zip.
func ZipAll[T any, U any, R any](
	a *Stream[T],
	b *Stream[U],
	zipper func(T, U) (R, error),
	aMissing func() (T, error),
	bMissing func() (U, error),
) *Stream[R] {
	st := &stage[R]{close: func() error {
		return errors.Join(b.Close(), a.Close())
	}}

	st.produce = func() (Option[R], error) {
		left, err := a.producer.Produce()
		if err != nil {
			return None[R](), err
		}

		right, err := b.producer.Produce()
		if err != nil {
			return None[R](), err
		}

		if !left.Exists() && !right.Exists() {
			return None[R](), nil
		}

		if !left.Exists() {
			if aMissing == nil {
				return None[R](), nil
			}

			value, err := aMissing()
			if err != nil {
				return None[R](), err
			}

			left = Some(value)
		}

		if !right.Exists() {
			if bMissing == nil {
				return None[R](), nil
			}

			value, err := bMissing()
			if err != nil {
				return None[R](), err
			}

			right = Some(value)
		}

		zipped, err := zipper(left.Get(), right.Get())
		if err != nil {
			return None[R](), err
		}

		return Some(zipped), nil
	}

	return FromProducer[R](st)
}

// Peek returns a stream producing the same elements as s, in order, calling
// action on each present element as it passes through.
func Peek[T any](s *Stream[T], action func(T) error) *Stream[T] {
	st := &stage[T]{close: s.Close}

	st.produce = func() (Option[T], error) {
		value, err := s.producer.Produce()
		if err != nil {
			return None[T](), err
		}

		if value.Exists() {
			if err := action(value.Get()); err != nil {
				return None[T](), err
			}
		}

		return value, nil
	}

	return FromProducer[T](st)
}

// Take returns a stream producing the same elements as s, in order, up to
// max elements. The whole pipeline is closed as soon as the last element is
// emitted, or earlier if the upstream exhausts first; pulls after that
// return absent without error.
func Take[T any](s *Stream[T], max int) *Stream[T] {
	st := &stage[T]{close: s.Close}
	count := 0

	st.produce = func() (Option[T], error) {
		if count >= max {
			return None[T](), st.Close()
		}

		value, err := s.producer.Produce()
		if err != nil {
			return None[T](), err
		}

		if !value.Exists() {
			count = max
			return None[T](), st.Close()
		}

		count++

		if count == max {
			if err := st.Close(); err != nil {
				return value, err
			}
		}

		return value, nil
	}

	return FromProducer[T](st)
}

// Drop returns a stream producing the same elements as s, in order, skipping
// the first num elements. If the upstream exhausts before num elements were
// skipped, the new stream is simply exhausted.
func Drop[T any](s *Stream[T], num int) *Stream[T] {
	st := &stage[T]{close: s.Close}
	skipped := 0

	st.produce = func() (Option[T], error) {
		for skipped < num {
			value, err := s.producer.Produce()
			if err != nil {
				return None[T](), err
			}

			if !value.Exists() {
				skipped = num
				return None[T](), nil
			}

			skipped++
		}

		return s.producer.Produce()
	}

	return FromProducer[T](st)
}

// IgnoreErrors returns a stream that retries a failed upstream pull
// transparently, any number of times, until a pull succeeds. Natural
// exhaustion counts as success.
func IgnoreErrors[T any](s *Stream[T]) *Stream[T] {
	st := &stage[T]{close: s.Close}

	st.produce = func() (Option[T], error) {
		for {
			value, err := s.producer.Produce()
			if err == nil {
				return value, nil
			}
		}
	}

	return FromProducer[T](st)
}

// StopOnError returns a stream that converts any upstream failure into the
// end of the stream rather than propagating it.
func StopOnError[T any](s *Stream[T]) *Stream[T] {
	st := &stage[T]{close: s.Close}

	st.produce = func() (Option[T], error) {
		value, err := s.producer.Produce()
		if err != nil {
			return None[T](), nil
		}

		return value, nil
	}

	return FromProducer[T](st)
}

// Recover returns a stream that substitutes exactly one fallback value for
// each failed upstream pull, then resumes normal pulling. The failed pull is
// not retried.
func Recover[T any](s *Stream[T], fallback func(error) T) *Stream[T] {
	st := &stage[T]{close: s.Close}

	st.produce = func() (Option[T], error) {
		value, err := s.producer.Produce()
		if err != nil {
			return Some(fallback(err)), nil
		}

		return value, nil
	}

	return FromProducer[T](st)
}

// RecoverValue is Recover with a fixed fallback value.
func RecoverValue[T any](s *Stream[T], value T) *Stream[T] {
	return Recover(s, func(error) T {
		return value
	})
}

// Sorted returns a stream producing the elements of s in the order defined
// by less. The stage drains s fully on the first pull, sorts, and replays.
func Sorted[T any](s *Stream[T], less func(a T, b T) bool) *Stream[T] {
	var buffer []T

	sorted := false
	index := 0

	st := &stage[T]{}

	st.close = func() error {
		buffer = nil
		return s.Close()
	}

	st.produce = func() (Option[T], error) {
		if !sorted {
			for {
				value, err := s.producer.Produce()
				if err != nil {
					return None[T](), err
				}

				if !value.Exists() {
					break
				}

				buffer = append(buffer, value.Get())
			}

			slices.SortFunc(buffer, less)

			sorted = true
		}

		if index >= len(buffer) {
			return None[T](), nil
		}

		value := buffer[index]
		index++

		return Some(value), nil
	}

	return FromProducer[T](st)
}

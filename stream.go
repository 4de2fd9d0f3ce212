package costreams

// Stream is a facade over a producer chain. It owns exactly one producer,
// the terminal stage of a singly-linked pipeline. Combinators never mutate a
// stream; they return a new stream wrapping a new stage that closes over the
// previous one.
type Stream[T any] struct {
	producer Producer[T]
}

// FromProducer returns a stream that pulls from p.
func FromProducer[T any](p Producer[T]) *Stream[T] {
	return &Stream[T]{producer: p}
}

// Producer returns the terminal producer of the stream's pipeline.
func (s *Stream[T]) Producer() Producer[T] {
	return s.producer
}

// Close tears down the stream's pipeline. Teardown cascades through every
// owned producer and stream exactly once; repeat closes are no-ops.
func (s *Stream[T]) Close() error {
	return s.producer.Close()
}

// Iterator returns a lookahead iterator over the stream's elements.
// Closing the iterator closes the stream.
func (s *Stream[T]) Iterator() *Iterator[T] {
	return newIterator(s.producer)
}

// Empty returns a stream with no elements.
func Empty[T any]() *Stream[T] {
	return FromProducer[T](producerFunc[T](func() (Option[T], error) {
		return None[T](), nil
	}))
}

// Of returns a stream producing the given values, in order.
func Of[T any](values ...T) *Stream[T] {
	index := 0

	return FromProducer[T](producerFunc[T](func() (Option[T], error) {
		if index >= len(values) {
			return None[T](), nil
		}

		value := values[index]
		index++

		return Some(value), nil
	}))
}

// FromChannel returns a stream producing the elements received through ch,
// in order. The stream is exhausted once ch is closed. Closing the stream
// does not close ch.
func FromChannel[T any](ch <-chan T) *Stream[T] {
	return FromProducer[T](producerFunc[T](func() (Option[T], error) {
		value, ok := <-ch
		if !ok {
			return None[T](), nil
		}

		return Some(value), nil
	}))
}

// Repeat returns an infinite stream producing the same value on every pull.
func Repeat[T any](value T) *Stream[T] {
	return FromProducer[T](producerFunc[T](func() (Option[T], error) {
		return Some(value), nil
	}))
}

// Generate returns an infinite stream producing the result of calling
// supplier on every pull.
func Generate[T any](supplier func() (T, error)) *Stream[T] {
	return FromProducer[T](producerFunc[T](func() (Option[T], error) {
		value, err := supplier()
		if err != nil {
			return None[T](), err
		}

		return Some(value), nil
	}))
}

// Iterate returns an infinite stream whose first element is seed and whose
// every subsequent element is the result of applying step to the previous
// one.
func Iterate[T any](seed T, step func(T) (T, error)) *Stream[T] {
	current := None[T]()

	return FromProducer[T](producerFunc[T](func() (Option[T], error) {
		if !current.Exists() {
			current = Some(seed)
			return current, nil
		}

		value, err := step(current.Get())
		if err != nil {
			return None[T](), err
		}

		current = Some(value)

		return current, nil
	}))
}

package costreams

// Producer is a pull-based source of optional values.
//
// Produce returns the next element, or an absent Option once the source is
// exhausted. It is called exactly once per element requested by the
// immediate consumer; nothing is buffered beyond the single in-flight
// optional.
//
// Close releases the resources held by the producer and cascades to every
// upstream producer or stream it owns. It is safe to call at any time,
// including before natural exhaustion and after the pipeline is already
// exhausted.
type Producer[T any] interface {
	Produce() (Option[T], error)
	Close() error
}

// producerFunc adapts a pull function into a root producer.
// Root producers wrap an external source; their Close is a no-op.
type producerFunc[T any] func() (Option[T], error)

func (p producerFunc[T]) Produce() (Option[T], error) {
	return p()
}

func (p producerFunc[T]) Close() error {
	return nil
}

// stage is one link in a producer chain. Its teardown runs at most once no
// matter how many times Close is called, and a closed stage produces absent
// without error.
type stage[T any] struct {
	produce func() (Option[T], error)
	close   func() error
	closed  bool
}

func (s *stage[T]) Produce() (Option[T], error) {
	if s.closed {
		return None[T](), nil
	}
	return s.produce()
}

func (s *stage[T]) Close() error {
	if s.closed {
		return nil
	}

	s.closed = true

	if s.close == nil {
		return nil
	}

	return s.close()
}

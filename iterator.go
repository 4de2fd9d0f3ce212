package costreams

// Iterator iterates over a producer's elements one step at a time, caching
// the element pulled by the last call to Next. It moves through four states:
// not yet queried, value cached, exhausted, and closed.
//
// The usual pattern is:
//
//	it := stream.Iterator()
//	defer it.Close()
//	for it.Next() {
//		use(it.Value())
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type Iterator[T any] struct {
	producer Producer[T]
	current  Option[T]
	err      error
	done     bool
	closed   bool
}

func newIterator[T any](p Producer[T]) *Iterator[T] {
	return &Iterator[T]{producer: p}
}

// Next pulls the next element and caches it. It returns false once the
// producer is exhausted, a pull has failed, or the iterator is closed; after
// that, further calls do not pull again.
func (it *Iterator[T]) Next() bool {
	if it.closed || it.done {
		return false
	}

	it.current, it.err = it.producer.Produce()

	if it.err != nil || !it.current.Exists() {
		it.current = None[T]()
		it.done = true

		return false
	}

	return true
}

// Value returns the element cached by the last successful call to Next.
// It panics with ErrNoValue if no element is cached.
func (it *Iterator[T]) Value() T {
	return it.current.Get()
}

// Err returns the error of the failed pull that ended iteration, if any.
func (it *Iterator[T]) Err() error {
	return it.err
}

// Close tears down the underlying producer and drops the reference to it.
// It is safe to call more than once; repeat closes are no-ops.
func (it *Iterator[T]) Close() error {
	if it.closed {
		return nil
	}

	it.closed = true
	it.current = None[T]()

	p := it.producer
	it.producer = nil

	if p == nil {
		return nil
	}

	return p.Close()
}

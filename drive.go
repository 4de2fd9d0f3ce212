package costreams

// coroutineProducer adapts a coroutine into a root producer: each pull
// resumes the handle with the neutral zero reply and produces the value it
// yields. Closing the producer terminates the handle.
type coroutineProducer[V any, R any] struct {
	c          *Coroutine[V, R]
	useCurrent bool
	done       bool
}

func (p *coroutineProducer[V, R]) Produce() (Option[V], error) {
	if p.done || p.c == nil {
		return None[V](), nil
	}

	if p.c.Done() {
		p.done = true
		return None[V](), nil
	}

	if p.useCurrent {
		p.useCurrent = false
		return Some(p.c.Value()), nil
	}

	var zero R

	if p.c.Resume(zero) == nil {
		p.done = true
		return None[V](), nil
	}

	return Some(p.c.Value()), nil
}

func (p *coroutineProducer[V, R]) Close() error {
	p.done = true

	if p.c != nil {
		p.c.Terminate()
		p.c = nil
	}

	return nil
}

// IteratorOf returns a lookahead iterator over the values yielded by c,
// converting the handle to optimized mode. Replies are discarded: the
// procedure is always resumed with the zero reply. If useCurrent is true,
// the handle's current value is the first element returned. Closing the
// iterator terminates the handle.
func IteratorOf[V any, R any](c *Coroutine[V, R], useCurrent bool) *Iterator[V] {
	return newIterator[V](&coroutineProducer[V, R]{c: c.Optimized(), useCurrent: useCurrent})
}

// StreamOf returns a stream rooted in the values yielded by c, converting
// the handle to optimized mode. Replies are discarded. If useCurrent is
// true, the handle's current value is the first element produced. Closing
// the stream terminates the handle.
func StreamOf[V any, R any](c *Coroutine[V, R], useCurrent bool) *Stream[V] {
	return FromProducer[V](&coroutineProducer[V, R]{c: c.Optimized(), useCurrent: useCurrent})
}

// ForEach drives c to completion, discarding replies, and calls action on
// each yielded value. If useCurrent is true, the handle's current value is
// processed first. The handle is terminated on every exit path: normal
// exhaustion, action failure, or an action panic.
func ForEach[V any, R any](c *Coroutine[V, R], useCurrent bool, action func(V) error) error {
	it := IteratorOf(c, useCurrent)
	defer it.Close()

	for it.Next() {
		if err := action(it.Value()); err != nil {
			return err
		}
	}

	return it.Err()
}

// ForEachReply drives c to completion as a ring pipe: each yielded value is
// passed to action, and action's result becomes the reply the procedure is
// resumed with for the next step, so yields and replies strictly alternate.
//
// The first resume uses the neutral zero reply. If useCurrent is true,
// action is instead first applied to the handle's current value and its
// result is used for the first resume. The handle is terminated on every
// exit path.
func ForEachReply[V any, R any](c *Coroutine[V, R], useCurrent bool, action func(V) (R, error)) error {
	cc := c.Optimized()

	defer func() {
		if cc != nil {
			cc.Terminate()
		}
	}()

	var reply R

	if useCurrent && !cc.Done() {
		r, err := action(cc.Value())
		if err != nil {
			return err
		}

		reply = r
	}

	for cc != nil {
		cc = cc.Resume(reply)
		if cc == nil {
			return nil
		}

		r, err := action(cc.Value())
		if err != nil {
			return err
		}

		reply = r
	}

	return nil
}

// IteratorOfProc creates an optimized coroutine for proc and returns a
// lookahead iterator over its yields.
func IteratorOfProc[V any, R any](proc Proc[V, R]) *Iterator[V] {
	return IteratorOf(New(proc), false)
}

// StreamOfProc creates an optimized coroutine for proc and returns a stream
// over its yields.
func StreamOfProc[V any, R any](proc Proc[V, R]) *Stream[V] {
	return StreamOf(New(proc), false)
}

// ForEachProc fully executes proc, discarding replies, and calls action on
// each yielded value.
func ForEachProc[V any, R any](proc Proc[V, R], action func(V) error) error {
	return ForEach(New(proc), false, action)
}

// ForEachReplyProc fully executes proc as a ring pipe, resuming it with
// action's result after every yield.
func ForEachReplyProc[V any, R any](proc Proc[V, R], action func(V) (R, error)) error {
	return ForEachReply(New(proc), false, action)
}

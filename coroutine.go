package costreams

import "errors"

// ErrNotRestartable is returned by Restart on a coroutine in optimized mode.
var ErrNotRestartable = errors.New("costreams: coroutine is not restartable")

// Proc is a suspending procedure. The yield function is its suspension
// point: calling it hands the value to the driver and blocks until the
// driver resumes, returning the reply the driver resumed with. The yield
// function may be called from any code executing on the procedure's
// goroutine, including callbacks passed to stream operations.
type Proc[V any, R any] func(yield func(V) R)

// terminatedPanic is the sentinel used to unwind a procedure out-of-band.
// It is raised inside the parked yield call and recovered at the top of the
// coroutine goroutine, so the procedure's own deferred calls run.
type terminatedPanic struct{}

// Coroutine is a handle to a suspendable procedure running on a dedicated
// goroutine. Values move over unbuffered rendezvous channels: the procedure
// blocks between yields, at most one value is in flight, and yields strictly
// alternate with replies. At most one goroutine may drive a handle at a
// time.
//
// A handle is created in restartable mode: it retains the procedure and may
// be driven multiple independent times via Restart. Optimized converts it to
// a single-use handle that cannot be restarted.
type Coroutine[V any, R any] struct {
	proc        Proc[V, R]
	restartable bool

	out     chan V
	in      chan R
	cancel  chan struct{}
	value   V
	failure any
	done    bool
}

// New returns a coroutine for proc, suspended before any execution.
// The first Resume starts the procedure; its reply is discarded, since the
// procedure has not yielded yet and nothing can receive it.
func New[V any, R any](proc Proc[V, R]) *Coroutine[V, R] {
	c := &Coroutine[V, R]{proc: proc, restartable: true}
	c.launch()

	return c
}

// Start runs proc until its first suspension point and returns the handle,
// or nil if the procedure completes without suspending.
func Start[V any, R any](proc Proc[V, R]) *Coroutine[V, R] {
	var zero R
	return StartWith(proc, zero)
}

// StartWith is Start with an explicit initial reply. The initial reply is
// discarded, like the reply of the first Resume.
func StartWith[V any, R any](proc Proc[V, R], initial R) *Coroutine[V, R] {
	return New(proc).Resume(initial)
}

// launch starts a fresh run of the procedure, parked before any execution.
// The channels are captured locally so that a run outlives neither its own
// channels nor a later Restart.
func (c *Coroutine[V, R]) launch() {
	out := make(chan V)
	in := make(chan R)
	cancel := make(chan struct{})

	c.out = out
	c.in = in
	c.cancel = cancel
	c.failure = nil
	c.done = false

	proc := c.proc

	go func() {
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(terminatedPanic); !ok {
					c.failure = r
				}
			}

			close(out)
		}()

		// Parked before any execution: wait for the first resume.
		select {
		case <-in:
		case <-cancel:
			return
		}

		proc(func(value V) R {
			select {
			case out <- value:
			case <-cancel:
				panic(terminatedPanic{})
			}

			select {
			case reply := <-in:
				return reply
			case <-cancel:
				panic(terminatedPanic{})
			}
		})
	}()
}

// Value returns the value most recently yielded by the procedure.
func (c *Coroutine[V, R]) Value() V {
	return c.value
}

// Done returns true once the procedure has run to completion or the handle
// has been terminated.
func (c *Coroutine[V, R]) Done() bool {
	return c.done
}

// Resume hands reply to the suspended procedure and runs it to its next
// suspension point. It returns the handle itself, or nil once the procedure
// has run to completion. Resuming a completed or terminated handle returns
// nil without effect.
//
// A panic raised inside the procedure is re-raised on the resumer's
// goroutine.
func (c *Coroutine[V, R]) Resume(reply R) *Coroutine[V, R] {
	if c.done {
		return nil
	}

	c.in <- reply

	value, ok := <-c.out
	if !ok {
		c.done = true

		if f := c.failure; f != nil {
			c.failure = nil
			panic(f)
		}

		return nil
	}

	c.value = value

	return c
}

// Terminate unwinds the procedure out-of-band: the parked yield raises a
// sentinel panic, the procedure's deferred calls run, and its goroutine
// exits. Terminate is idempotent and a no-op on a completed handle. The
// handle must not be resumed afterwards.
func (c *Coroutine[V, R]) Terminate() {
	if c.done {
		return
	}

	c.done = true

	close(c.cancel)

	// Wait for the goroutine to exit; it may be parked delivering a value.
	for range c.out {
	}
}

// Optimized converts the handle to single-use mode and returns it.
func (c *Coroutine[V, R]) Optimized() *Coroutine[V, R] {
	c.restartable = false
	return c
}

// Restartable converts the handle back to restartable mode and returns it.
func (c *Coroutine[V, R]) Restartable() *Coroutine[V, R] {
	c.restartable = true
	return c
}

// Restart terminates the current run, if any, and leaves the handle
// suspended before a fresh, independent run of the procedure. It returns
// ErrNotRestartable on a handle in optimized mode.
func (c *Coroutine[V, R]) Restart() error {
	if !c.restartable {
		return ErrNotRestartable
	}

	c.Terminate()
	c.launch()

	return nil
}

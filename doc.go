// Package costreams provides lazy, pull-based streams of optional values,
// and utilities for driving suspendable procedures (coroutines) as
// generators, iterators, streams, or duplex "ring pipes".
//
// Streams form a pipeline of stages that elements are pulled through.
// A pipeline is rooted in a producer wrapping an external source (a slice,
// a channel, a supplier, or a coroutine), and each combinator returns a new
// stream wrapping a new stage that closes over the previous one. Streams are
// always lazy: a stage pulls its upstream only when its own consumer asks
// for the next element, and nothing is buffered beyond the single in-flight
// optional.
//
// Every stage owns its upstream stream plus any ancillary streams it created
// (the other side of a zip, the current inner stream of a flat map).
// Closing a stream cascades through that ownership tree exactly once,
// in reverse construction order. Closing early is a supported way to free
// resources; a closed stream simply produces no more elements.
//
// Coroutines re-express the suspend/resume generator pattern with Go's
// primitive: the procedure runs on a dedicated goroutine and communicates
// with its driver over unbuffered rendezvous channels, so the procedure
// blocks between yields and values strictly alternate with replies. The
// yield function passed to a procedure is the suspension point: it hands a
// value to the driver and returns the reply the driver resumes with.
// Because any callback executing on a coroutine's goroutine may call that
// coroutine's yield function, every stream and option operation is usable
// from suspendable code without a separate API.
//
// Driving utilities convert coroutines into iterators and streams, or run
// them to completion with ForEach (replies discarded) and ForEachReply
// (each callback result becomes the next resume argument). All drivers
// guarantee the underlying handle is terminated on every exit path,
// including callback failures and early closes.
package costreams

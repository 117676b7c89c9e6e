// Copyright (c) 2026 The gospec authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

import (
	"errors"
	"sync"
)

// panic messages
const (
	completedTwicePanicMsg = "gospec: future outcome completed twice"
	nilCallbackPanicMsg    = "gospec: the provided callback is nil"
)

// FutureOutcome is a single-assignment cell carrying one eventual
// [Outcome].  A chain of callbacks can be attached to it; each
// On*Then-method returns a new FutureOutcome which resolves after the
// receiver resolved and the callback, if its category matched, ran.
// Callbacks fire exactly once, in the order they were attached, and
// never before the underlying computation settled.
//
// A callback raising a categorized condition replaces the resulting
// outcome by the same classification rule that applies to test bodies:
// a fail signal yields Failed, a cancel signal Canceled, a pending
// signal Pending, and a fatal condition resolves the chain aborted.
type FutureOutcome struct {
	mu sync.Mutex

	// closed when this future is resolved.  res must not be read
	// before then.
	done chan struct{}

	res Outcome

	// subscribers attached before resolution; run in attach order by
	// the resolving goroutine, then cleared.
	subs []func(Outcome)
}

// NewFutureOutcome returns an unresolved future outcome to be settled
// via [FutureOutcome.Complete].
func NewFutureOutcome() *FutureOutcome {
	return &FutureOutcome{done: make(chan struct{})}
}

var closedChan = make(chan struct{})

func init() { close(closedChan) }

// newResolved returns a future outcome which is settled on creation.
func newResolved(o Outcome) *FutureOutcome {
	return &FutureOutcome{done: closedChan, res: o}
}

// FutureSucceeded returns an already resolved, succeeded future
// outcome.
func FutureSucceeded() *FutureOutcome { return newResolved(Succeeded()) }

// FutureFailed returns an already resolved future outcome failed with
// given message.
func FutureFailed(msg string) *FutureOutcome {
	return newResolved(Failed(&TestFailedError{Msg: msg, Loc: caller(1)}))
}

// FutureCanceled returns an already resolved future outcome canceled
// with given message.
func FutureCanceled(msg string) *FutureOutcome {
	return newResolved(Canceled(&TestCanceledError{Msg: msg, Loc: caller(1)}))
}

// FuturePending returns an already resolved, pending future outcome.
func FuturePending() *FutureOutcome { return newResolved(Pending()) }

// FutureOf runs given computation in its own goroutine and returns a
// future outcome resolving to its result.  An abrupt completion of the
// computation is classified like a test body's: signal panics become
// the matching outcome, a fatal panic resolves the future aborted.
func FutureOf(compute func() Outcome) *FutureOutcome {
	f := NewFutureOutcome()
	go func() { f.Complete(guarded(compute)) }()
	return f
}

// guarded runs given computation folding an abrupt completion back
// into the outcome domain.
func guarded(compute func() Outcome) (o Outcome) {
	defer func() {
		if r := recover(); r != nil {
			var fatal *FatalError
			if o, fatal = outcomeFor(r); fatal != nil {
				o = Aborted(fatal)
			}
		}
	}()
	return compute()
}

// Complete resolves f to given outcome and fires attached callbacks in
// attach order.  A future outcome must be completed at most once; a
// second attempt is a programmer error and panics.
func (f *FutureOutcome) Complete(o Outcome) {
	f.mu.Lock()
	select {
	case <-f.done:
		f.mu.Unlock()
		panic(completedTwicePanicMsg)
	default:
	}
	f.res = o
	subs := f.subs
	f.subs = nil
	close(f.done)
	f.mu.Unlock()

	for _, sub := range subs {
		sub(o)
	}
}

// IsCompleted reports whether f has resolved.
func (f *FutureOutcome) IsCompleted() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Value returns the resolved outcome and true, or the zero outcome and
// false while f is still pending.
func (f *FutureOutcome) Value() (Outcome, bool) {
	select {
	case <-f.done:
		return f.res, true
	default:
		return Outcome{}, false
	}
}

// Wait blocks until f resolves and returns its outcome.
func (f *FutureOutcome) Wait() Outcome {
	<-f.done
	return f.res
}

// Done returns a channel which is closed once f resolves.
func (f *FutureOutcome) Done() <-chan struct{} { return f.done }

// subscribe registers fn to run with f's outcome once resolved.  On an
// already resolved future fn runs before subscribe returns; callbacks
// hence never fire before settlement but possibly synchronously after.
func (f *FutureOutcome) subscribe(fn func(Outcome)) {
	f.mu.Lock()
	select {
	case <-f.done:
		res := f.res
		f.mu.Unlock()
		fn(res)
		return
	default:
	}
	f.subs = append(f.subs, fn)
	f.mu.Unlock()
}

// then derives a new future outcome resolving to transform's result
// once f resolved.
func (f *FutureOutcome) then(
	transform func(Outcome) Outcome,
) *FutureOutcome {
	next := NewFutureOutcome()
	f.subscribe(func(o Outcome) { next.Complete(transform(o)) })
	return next
}

// fold runs given callback and returns the original outcome unless the
// callback completed abruptly, in which case the recovered condition
// is classified into the replacing outcome.
func fold(orig Outcome, callback func()) (o Outcome) {
	defer func() {
		if r := recover(); r != nil {
			var fatal *FatalError
			if o, fatal = outcomeFor(r); fatal != nil {
				o = Aborted(fatal)
			}
		}
	}()
	callback()
	return orig
}

// OnSucceededThen returns a new future outcome running given callback
// iff f resolves succeeded.
func (f *FutureOutcome) OnSucceededThen(callback func()) *FutureOutcome {
	if callback == nil {
		panic(nilCallbackPanicMsg)
	}
	return f.then(func(o Outcome) Outcome {
		if !o.IsSucceeded() {
			return o
		}
		return fold(o, callback)
	})
}

// OnFailedThen returns a new future outcome running given callback iff
// f resolves failed; the callback receives the failure's condition.
func (f *FutureOutcome) OnFailedThen(
	callback func(cause error),
) *FutureOutcome {
	if callback == nil {
		panic(nilCallbackPanicMsg)
	}
	return f.then(func(o Outcome) Outcome {
		if !o.IsFailed() {
			return o
		}
		return fold(o, func() { callback(o.Cause()) })
	})
}

// OnCanceledThen returns a new future outcome running given callback
// iff f resolves canceled; the callback receives the cancellation's
// condition.
func (f *FutureOutcome) OnCanceledThen(
	callback func(cause error),
) *FutureOutcome {
	if callback == nil {
		panic(nilCallbackPanicMsg)
	}
	return f.then(func(o Outcome) Outcome {
		if !o.IsCanceled() {
			return o
		}
		return fold(o, func() { callback(o.Cause()) })
	})
}

// OnPendingThen returns a new future outcome running given callback
// iff f resolves pending.
func (f *FutureOutcome) OnPendingThen(callback func()) *FutureOutcome {
	if callback == nil {
		panic(nilCallbackPanicMsg)
	}
	return f.then(func(o Outcome) Outcome {
		if !o.IsPending() {
			return o
		}
		return fold(o, callback)
	})
}

// OnAbortedThen returns a new future outcome running given callback
// iff f resolves aborted; the callback receives the fatal condition.
func (f *FutureOutcome) OnAbortedThen(
	callback func(cause error),
) *FutureOutcome {
	if callback == nil {
		panic(nilCallbackPanicMsg)
	}
	return f.then(func(o Outcome) Outcome {
		if !o.IsAborted() {
			return o
		}
		return fold(o, func() { callback(o.Cause()) })
	})
}

// OnOutcomeThen returns a new future outcome running given callback
// with whatever outcome f resolves to.  The derived future resolves to
// the original outcome unless the callback completed abruptly.
func (f *FutureOutcome) OnOutcomeThen(
	callback func(Outcome),
) *FutureOutcome {
	if callback == nil {
		panic(nilCallbackPanicMsg)
	}
	return f.then(func(o Outcome) Outcome {
		return fold(o, func() { callback(o) })
	})
}

// Change returns a new future outcome resolving to given mapping's
// return value.  An abrupt completion of the mapping is folded back
// into the outcome domain like any other callback failure.
func (f *FutureOutcome) Change(
	mapping func(Outcome) Outcome,
) *FutureOutcome {
	if mapping == nil {
		panic(nilCallbackPanicMsg)
	}
	return f.then(func(o Outcome) (mapped Outcome) {
		defer func() {
			if r := recover(); r != nil {
				var fatal *FatalError
				if mapped, fatal = outcomeFor(r); fatal != nil {
					mapped = Aborted(fatal)
				}
			}
		}()
		return mapping(o)
	})
}

// errNilAsyncBody is the failure cause of an async test whose body
// returned no future outcome.
var errNilAsyncBody = errors.New(
	"async test body returned a nil *FutureOutcome")

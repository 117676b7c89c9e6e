// Copyright (c) 2026 The gospec authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

// outcomeKind enumerates the closed set of result categories of a
// single test execution.
type outcomeKind int

const (
	outcomeSucceeded outcomeKind = iota
	outcomeFailed
	outcomeCanceled
	outcomePending
	outcomeAborted
)

var outcomeNames = map[outcomeKind]string{
	outcomeSucceeded: "Succeeded",
	outcomeFailed:    "Failed",
	outcomeCanceled:  "Canceled",
	outcomePending:   "Pending",
	outcomeAborted:   "Aborted",
}

// Outcome is the result category of a single test execution:
// Succeeded, Failed, Canceled, Pending or Aborted.  Succeeded and
// Pending carry no payload; the remaining variants carry the condition
// which triggered them.  The zero value is Succeeded.
type Outcome struct {
	kind  outcomeKind
	cause error
}

// Succeeded is the outcome of a test body which returned normally.
func Succeeded() Outcome { return Outcome{kind: outcomeSucceeded} }

// Failed is the outcome of a test body which raised given non-fatal
// condition.
func Failed(cause error) Outcome {
	return Outcome{kind: outcomeFailed, cause: cause}
}

// Canceled is the outcome of a test body which asked to be skipped.
func Canceled(cause error) Outcome {
	return Outcome{kind: outcomeCanceled, cause: cause}
}

// Pending is the outcome of a test body which declared itself not yet
// implemented.
func Pending() Outcome { return Outcome{kind: outcomePending} }

// Aborted is the outcome of a computation whose execution environment
// was compromised.  Aborted outcomes are not reported as per-test
// results; the engine propagates their cause out of the run.
func Aborted(cause error) Outcome {
	return Outcome{kind: outcomeAborted, cause: cause}
}

// IsSucceeded reports whether o is the Succeeded outcome.
func (o Outcome) IsSucceeded() bool { return o.kind == outcomeSucceeded }

// IsFailed reports whether o is a Failed outcome.
func (o Outcome) IsFailed() bool { return o.kind == outcomeFailed }

// IsCanceled reports whether o is a Canceled outcome.
func (o Outcome) IsCanceled() bool { return o.kind == outcomeCanceled }

// IsPending reports whether o is the Pending outcome.
func (o Outcome) IsPending() bool { return o.kind == outcomePending }

// IsAborted reports whether o is an Aborted outcome.
func (o Outcome) IsAborted() bool { return o.kind == outcomeAborted }

// Cause returns the condition carried by a Failed, Canceled or Aborted
// outcome and nil for Succeeded and Pending.
func (o Outcome) Cause() error { return o.cause }

// String returns the outcome's category name.
func (o Outcome) String() string { return outcomeNames[o.kind] }

// outcomeFor classifies a recovered panic value into an outcome.  This
// is the single boundary at which user signals become outcome
// categories: a fail signal maps to Failed, a cancel signal to
// Canceled, a pending signal to Pending and every other non-fatal
// value to Failed.  A fatal condition is not converted; it is returned
// separately so the caller can propagate it.
func outcomeFor(recovered any) (Outcome, *FatalError) {
	switch c := recovered.(type) {
	case *FatalError:
		return Outcome{}, c
	case *TestPendingError:
		return Pending(), nil
	case *TestCanceledError:
		return Canceled(c), nil
	case *TestFailedError:
		return Failed(c), nil
	case error:
		return Failed(c), nil
	default:
		return Failed(&PanicError{V: recovered}), nil
	}
}

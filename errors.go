// Copyright (c) 2026 The gospec authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

import "fmt"

// DuplicateTestNameError reports the registration of a test name which
// is already taken within its suite.  Whether either registration is
// flagged ignored makes no difference.  Raised during construction it
// aborts building the whole suite.
type DuplicateTestNameError struct {
	Name string
	Loc  Location
}

func (e *DuplicateTestNameError) Error() string {
	return fmt.Sprintf(
		"duplicate test name %q registered at %s", e.Name, e.Loc)
}

// InvalidArgumentError reports a malformed registration argument, e.g.
// an empty test name or an empty tag.  Raised during construction it
// aborts building the whole suite.
type InvalidArgumentError struct {
	Reason string
	Loc    Location
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s at %s", e.Reason, e.Loc)
}

// RegistrationClosedError reports an attempt to register a test or a
// scope after the owning suite's registry was frozen.  If the attempt
// happens inside a running test body the engine recovers it into a
// Failed outcome of that test; outside a run it reaches the caller.
type RegistrationClosedError struct {
	Msg string
	Loc Location
}

func (e *RegistrationClosedError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Msg, e.Loc)
}

// NotAllowedError reports that a scope body did something only test
// bodies may do, like asserting or panicking.  It wraps the original
// condition and aborts construction of the whole suite.
type NotAllowedError struct {
	Cause error
	Loc   Location
}

func (e *NotAllowedError) Error() string {
	return fmt.Sprintf(
		"a describe clause must only declare nested clauses; got at %s: %v",
		e.Loc, e.Cause)
}

func (e *NotAllowedError) Unwrap() error { return e.Cause }

// TestFailedError is the condition carried by a Failed outcome which
// was raised through [T.Fail], [T.Failf] or a failed assertion.
type TestFailedError struct {
	Msg string
	Loc Location
}

func (e *TestFailedError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Msg, e.Loc)
}

// TestCanceledError is the condition carried by a Canceled outcome; it
// marks a test which asked to be skipped at run-time, see [T.Cancel].
type TestCanceledError struct {
	Msg string
	Loc Location
}

func (e *TestCanceledError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Msg, e.Loc)
}

// TestPendingError marks a test body which declared itself not yet
// implemented, see [T.Pending].  It converts to a Pending outcome.
type TestPendingError struct {
	Loc Location
}

func (e *TestPendingError) Error() string {
	return fmt.Sprintf("test pending (%s)", e.Loc)
}

// FatalError marks a condition which compromises the whole execution
// environment.  It is never converted into a per-test outcome: a fatal
// panic from a test body aborts the run and is handed back to the
// caller of [Suite.Run].  Panic with a FatalError to request an abort.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("fatal: %v", e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }

// PanicError wraps an arbitrary non-error panic value recovered from a
// test body or an outcome callback into the cause of a Failed outcome.
type PanicError struct {
	V any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("test panicked: %v", e.V)
}

// Copyright (c) 2026 The gospec authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

import (
	"sync"
	"time"
)

// Note is a diagnostic message emitted through [T.Info] while a test
// body runs.  Notes are buffered and attached to the test's terminal
// event rather than streamed.
type Note struct {
	Message string
	Loc     Location
}

// Event is implemented by all lifecycle events a run emits.  Events of
// one suite arrive at the reporter in a deterministic order: suite
// start, then per registration order either a test's starting/terminal
// pair, a single ignored event or nothing, interleaved with
// construction-time info events, then suite completion or abortion.
type Event interface{ event() }

// SuiteStarting announces the begin of a suite's run.
type SuiteStarting struct {
	Suite string
}

// SuiteCompleted announces the regular end of a suite's run.
type SuiteCompleted struct {
	Suite    string
	Duration time.Duration
}

// SuiteAborted announces that a fatal condition ended a suite's run
// prematurely.  No further events of this suite follow.
type SuiteAborted struct {
	Suite string
	Cause error
}

// TestStarting announces the begin of a single test's execution.
type TestStarting struct {
	Suite string
	Name  string
}

// TestSucceeded is the terminal event of a successful test.
type TestSucceeded struct {
	Suite    string
	Name     string
	Duration time.Duration
	Notes    []Note
}

// TestFailed is the terminal event of a failed test carrying the
// triggering condition and, if available, its call-site.
type TestFailed struct {
	Suite    string
	Name     string
	Duration time.Duration
	Cause    error
	Loc      Location
	Notes    []Note
}

// TestCanceled is the terminal event of a test which asked to be
// skipped at run-time.
type TestCanceled struct {
	Suite    string
	Name     string
	Duration time.Duration
	Cause    error
	Loc      Location
	Notes    []Note
}

// TestPending is the terminal event of a test declaring itself not yet
// implemented.
type TestPending struct {
	Suite    string
	Name     string
	Duration time.Duration
	Notes    []Note
}

// TestIgnored reports a test which was registered ignored and admitted
// by the run's tag filter.  Ignored tests never execute.
type TestIgnored struct {
	Suite string
	Name  string
}

// InfoProvided reports a diagnostic message emitted outside any test
// body, i.e. at suite construction time.  It appears in declaration
// order relative to adjacent test events.
type InfoProvided struct {
	Suite   string
	Message string
	Loc     Location
}

func (SuiteStarting) event()  {}
func (SuiteCompleted) event() {}
func (SuiteAborted) event()   {}
func (TestStarting) event()   {}
func (TestSucceeded) event()  {}
func (TestFailed) event()     {}
func (TestCanceled) event()   {}
func (TestPending) event()    {}
func (TestIgnored) event()    {}
func (InfoProvided) event()   {}

// Reporter consumes the lifecycle events of a run.  Implementations
// must be safe for use by a single run at a time; the engine calls
// Accept sequentially.
type Reporter interface {
	Accept(Event)
}

// Recorder is a Reporter capturing all accepted events in order.  It
// is safe for concurrent use and serves testing of suites as well as
// of custom reporters.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Accept appends given event to the recorded sequence.
func (r *Recorder) Accept(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded event sequence.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	ee := make([]Event, len(r.events))
	copy(ee, r.events)
	return ee
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

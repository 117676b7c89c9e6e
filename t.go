// Copyright (c) 2026 The gospec authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

import (
	"fmt"
	"sync"

	"github.com/go-logr/logr"
)

// ConfigMap is the immutable string-keyed configuration passed
// opaquely through [Suite.Run] into each test body.
type ConfigMap map[string]any

// Get returns the value stored under given key and whether it exists.
func (c ConfigMap) Get(key string) (any, bool) {
	v, ok := c[key]
	return v, ok
}

// T instances are passed to test bodies providing the configuration,
// diagnostic notes and the outcome-signal surface of a running test:
//
//	suite, _ := gospec.NewFunSuite("examples", func(s *gospec.SuiteBuilder) {
//	    s.Test("answers", func(t *gospec.T) {
//	        t.Eq(42, answer())
//	    })
//	})
//
// Fail, Cancel and Pending complete the body abruptly with a typed
// signal which the engine classifies into the test's outcome.
type T struct {
	name string
	cfg  ConfigMap
	log  logr.Logger

	mu    sync.Mutex
	notes []Note
}

// Name returns the running test's full registered name.
func (t *T) Name() string { return t.name }

// Config returns the run's configuration map.
func (t *T) Config() ConfigMap { return t.cfg }

// Log writes given arguments to the run's logger which defaults to a
// discarding logger and may be replaced through [WithLogger].
func (t *T) Log(args ...any) {
	t.log.V(1).Info(fmt.Sprint(args...), "test", t.name)
}

// Logf writes given format string leveraging Sprintf to the run's
// logger, see [T.Log].
func (t *T) Logf(format string, args ...any) {
	t.Log(fmt.Sprintf(format, args...))
}

// Info buffers a diagnostic note which is attached to the test's
// terminal event once the body completed; notes are not streamed.
func (t *T) Info(args ...any) {
	t.note(fmt.Sprint(args...), caller(1))
}

// Infof buffers a diagnostic note leveraging fmt.Sprintf, see [T.Info].
func (t *T) Infof(format string, args ...any) {
	t.note(fmt.Sprintf(format, args...), caller(1))
}

func (t *T) note(msg string, loc Location) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.notes = append(t.notes, Note{Message: msg, Loc: loc})
}

// bufferedNotes returns the notes collected so far.
func (t *T) bufferedNotes() []Note {
	t.mu.Lock()
	defer t.mu.Unlock()
	nn := make([]Note, len(t.notes))
	copy(nn, t.notes)
	return nn
}

// Fail completes the test body abruptly with a Failed outcome carrying
// given arguments as message.
func (t *T) Fail(args ...any) {
	t.failAt(caller(1), fmt.Sprint(args...))
}

// Failf completes the test body abruptly with a Failed outcome
// leveraging fmt.Sprintf for the message.
func (t *T) Failf(format string, args ...any) {
	t.failAt(caller(1), fmt.Sprintf(format, args...))
}

func (t *T) failAt(loc Location, msg string) {
	panic(&TestFailedError{Msg: msg, Loc: loc})
}

// FailOn fails the test iff given error is not nil and is a no-op
// otherwise.
func (t *T) FailOn(err error) {
	if err == nil {
		return
	}
	t.failAt(caller(1), err.Error())
}

// Cancel completes the test body abruptly with a Canceled outcome,
// i.e. the test asks to be skipped at run-time.
func (t *T) Cancel(args ...any) {
	panic(&TestCanceledError{Msg: fmt.Sprint(args...), Loc: caller(1)})
}

// Cancelf completes the test body abruptly with a Canceled outcome
// leveraging fmt.Sprintf for the message.
func (t *T) Cancelf(format string, args ...any) {
	panic(&TestCanceledError{
		Msg: fmt.Sprintf(format, args...), Loc: caller(1)})
}

// Pending completes the test body abruptly declaring the test not yet
// implemented; the test reports a Pending outcome, not a failure.
func (t *T) Pending() {
	panic(&TestPendingError{Loc: caller(1)})
}

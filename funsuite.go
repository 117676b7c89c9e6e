// Copyright (c) 2026 The gospec authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

import "fmt"

// SuiteBuilder is the registration surface of the FunSuite style: flat
// test clauses identified by a name, see [NewFunSuite].  A builder is
// only usable while its construction callback runs.
type SuiteBuilder struct {
	reg  *registry
	done bool
}

// NewFunSuite builds a suite in the FunSuite style: given callback
// registers flat, named test clauses on the passed builder.
//
//	suite, err := gospec.NewFunSuite("Stack", func(s *gospec.SuiteBuilder) {
//	    s.Test("pops pushed values", func(t *gospec.T) { ... })
//	    s.Test("is initially empty", func(t *gospec.T) { ... },
//	        "SlowAsMolasses")
//	})
//
// Registration failures like a duplicate test name, an empty tag or a
// panicking callback abort the construction; then the suite is nil and
// the error identifies the offense.
func NewFunSuite(
	name string, build func(*SuiteBuilder),
) (*Suite, error) {
	b := &SuiteBuilder{reg: newRegistry()}
	if err := construct(func() { build(b) }); err != nil {
		return nil, err
	}
	b.done = true
	return &Suite{name: name, reg: b.reg}, nil
}

// closedGuard panics iff the builder's construction callback already
// returned while no test body is running; registration attempts from
// inside a running body fall through to the registry which raises the
// nesting-specific condition.
func closedGuard(reg *registry, done bool, what string, loc Location) {
	if !done || reg.frozen || reg.runningEntry() != nil {
		return
	}
	panic(&RegistrationClosedError{
		Msg: fmt.Sprintf(
			"%s clauses may not be registered after construction.", what),
		Loc: loc,
	})
}

// Test registers a test clause with given name, body and tags.
func (b *SuiteBuilder) Test(
	name string, body func(*T), tags ...string,
) {
	loc := caller(1)
	closedGuard(b.reg, b.done, "test", loc)
	b.reg.add(&testEntry{
		name: name, tags: tags, clause: clauseTest, loc: loc, run: body,
	})
}

// AsyncTest registers a test clause whose body returns a
// [FutureOutcome]; the test's terminal event is deferred until the
// future resolves.
func (b *SuiteBuilder) AsyncTest(
	name string, body func(*T) *FutureOutcome, tags ...string,
) {
	loc := caller(1)
	closedGuard(b.reg, b.done, "test", loc)
	b.reg.add(&testEntry{
		name: name, tags: tags, clause: clauseTest, loc: loc,
		runAsync: body,
	})
}

// Ignore registers a test clause which is never executed but reported
// ignored when admitted by the run's tag filter.
func (b *SuiteBuilder) Ignore(
	name string, body func(*T), tags ...string,
) {
	loc := caller(1)
	closedGuard(b.reg, b.done, "test", loc)
	b.reg.add(&testEntry{
		name: name, tags: tags, ignored: true, clause: clauseTest,
		loc: loc, run: body,
	})
}

// Info records a standalone diagnostic message at its declaration
// position; a run reports it as InfoProvided event interleaved with
// adjacent test events.
func (b *SuiteBuilder) Info(args ...any) {
	b.reg.addNote(&Note{Message: fmt.Sprint(args...), Loc: caller(1)})
}

// Copyright (c) 2026 The gospec authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package gospec provides a behavior-driven test registration and
// execution core: named, taggable test cases are accumulated during a
// single construction phase, frozen, and executed sequentially in
// registration order while a deterministic stream of lifecycle events
// is handed to a reporter.
//
// Two registration styles build the same kind of suite.  FunSuite
// registers flat test clauses:
//
//	suite, err := gospec.NewFunSuite("Stack", func(s *gospec.SuiteBuilder) {
//	    s.Test("pops pushed values", func(t *gospec.T) {
//	        t.Eq(42, New().Push(42).Pop())
//	    })
//	})
//
// FunSpec nests describe scopes whose names prefix contained tests:
//
//	suite, err := gospec.NewFunSpec("tester", func(s *gospec.SpecBuilder) {
//	    s.Describe("A Tester", func() {
//	        s.It("should test that", func(t *gospec.T) { ... })
//	    })
//	})
//
// Construction is strict: duplicate test names, empty tags and scope
// bodies doing anything but declaring nested clauses abort building
// the whole suite.  After the first run the registry is closed; a test
// body attempting to register further tests fails that test, never the
// run.
//
// Running a suite reports to a [Reporter]:
//
//	rec := &gospec.Recorder{}
//	err := suite.Run(rec,
//	    gospec.WithFilter(gospec.NewFilter(nil, "SlowAsMolasses")))
//
// Every executed test produces exactly one terminal event (succeeded,
// failed, canceled or pending); admitted ignored tests report ignored;
// filtered tests report nothing.  Only a fatal condition, signaled by
// panicking with a [FatalError], escapes Run and aborts the remainder
// of the suite.
//
// Asynchronous tests return a [FutureOutcome], a single-assignment
// cell carrying one eventual [Outcome].  Callback chains attached to
// it fire exactly once, in attach order, after settlement; a callback
// completing abruptly replaces the outcome by the same classification
// rule that applies to test bodies.
package gospec

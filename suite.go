// Copyright (c) 2026 The gospec authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

// Suite is the frozen product of one of the style constructors
// [NewFunSuite] or [NewFunSpec]: a named, ordered collection of test
// entries ready to be run.  A suite executes its tests sequentially in
// registration order; independent suites may run concurrently.
type Suite struct {
	name string
	reg  *registry
}

// Name returns the suite's name as passed to its constructor.
func (s *Suite) Name() string { return s.name }

// Names returns all registered test names in registration order,
// ignored entries included.  Nested scopes flatten into a single
// space-joined name, e.g. "A Tester should test that".
func (s *Suite) Names() []string { return s.reg.namesInOrder() }

// Count returns the number of registered tests, ignored entries
// included.
func (s *Suite) Count() int { return len(s.reg.byName) }

// ExpectedCount returns the number of tests which would actually
// execute under given filter, i.e. the number of TestStarting events a
// run with that filter emits.  Ignored and excluded entries contribute
// zero.
func (s *Suite) ExpectedCount(f Filter) int {
	return s.reg.expectedCount(f)
}

// construct runs a suite-building callback converting construction
// failures into the returned error: registration conditions keep their
// type while any other abrupt completion, e.g. an assertion in a scope
// body, is wrapped into a NotAllowedError.  A fatal condition is not
// recovered.  On a non-nil error the suite never comes into being.
func construct(build func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch c := r.(type) {
		case *FatalError:
			panic(c)
		case *DuplicateTestNameError:
			err = c
		case *InvalidArgumentError:
			err = c
		case *RegistrationClosedError:
			err = c
		case *NotAllowedError:
			err = c
		case error:
			err = &NotAllowedError{Cause: c}
		default:
			err = &NotAllowedError{Cause: &PanicError{V: r}}
		}
	}()
	build()
	return nil
}

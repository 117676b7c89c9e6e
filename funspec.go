// Copyright (c) 2026 The gospec authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

import (
	"fmt"
	"strings"
)

// SpecBuilder is the registration surface of the FunSpec style:
// describe scopes grouping it/they clauses, see [NewFunSpec].  A
// builder is only usable while its construction callback runs.
type SpecBuilder struct {
	reg   *registry
	scope []string
	done  bool
}

// NewFunSpec builds a suite in the FunSpec style: given callback
// registers describe scopes and it/they clauses on the passed builder.
// Scope names prefix contained test names, space-joined:
//
//	suite, err := gospec.NewFunSpec("tester", func(s *gospec.SpecBuilder) {
//	    s.Describe("A Tester", func() {
//	        s.It("should test that", func(t *gospec.T) { ... })
//	    })
//	})
//
// registers the test "A Tester should test that".  A scope body must
// only declare nested clauses; asserting or panicking inside one
// aborts the construction with a NotAllowedError wrapping the cause.
// Shared behaviors are plain functions taking the builder as argument
// and calling its registration methods.
func NewFunSpec(
	name string, build func(*SpecBuilder),
) (*Suite, error) {
	b := &SpecBuilder{reg: newRegistry()}
	if err := construct(func() { build(b) }); err != nil {
		return nil, err
	}
	b.done = true
	return &Suite{name: name, reg: b.reg}, nil
}

// Describe opens a named scope prefixing all clauses registered by
// given body.  Scopes nest; their names flatten into the contained
// tests' names.
func (b *SpecBuilder) Describe(name string, body func()) {
	loc := caller(1)
	b.reg.guardScope(loc)
	closedGuard(b.reg, b.done, "describe", loc)
	if name == "" {
		panic(&InvalidArgumentError{
			Reason: "a describe clause needs a non-empty name", Loc: loc})
	}
	b.scope = append(b.scope, name)
	defer func() { b.scope = b.scope[:len(b.scope)-1] }()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch r.(type) {
		case *FatalError, *DuplicateTestNameError, *InvalidArgumentError,
			*RegistrationClosedError, *NotAllowedError:
			panic(r)
		}
		if err, ok := r.(error); ok {
			panic(&NotAllowedError{Cause: err, Loc: loc})
		}
		panic(&NotAllowedError{Cause: &PanicError{V: r}, Loc: loc})
	}()
	body()
}

// flatten joins the current scope prefix and given clause name.
func (b *SpecBuilder) flatten(name string) string {
	if len(b.scope) == 0 {
		return name
	}
	return strings.Join(b.scope, " ") + " " + name
}

func (b *SpecBuilder) register(
	name string, c clause, ignored bool, loc Location,
	body func(*T), async func(*T) *FutureOutcome, tags []string,
) {
	closedGuard(b.reg, b.done, c.String(), loc)
	b.reg.add(&testEntry{
		name: b.flatten(name), tags: tags, ignored: ignored, clause: c,
		loc: loc, run: body, runAsync: async,
	})
}

// It registers a test clause under the current scope.
func (b *SpecBuilder) It(name string, body func(*T), tags ...string) {
	b.register(name, clauseIt, false, caller(1), body, nil, tags)
}

// They is It's plural-subject alias.
func (b *SpecBuilder) They(name string, body func(*T), tags ...string) {
	b.register(name, clauseThey, false, caller(1), body, nil, tags)
}

// AsyncIt registers a test clause whose body returns a
// [FutureOutcome]; the test's terminal event is deferred until the
// future resolves.
func (b *SpecBuilder) AsyncIt(
	name string, body func(*T) *FutureOutcome, tags ...string,
) {
	b.register(name, clauseIt, false, caller(1), nil, body, tags)
}

// Ignore registers a test clause which is never executed but reported
// ignored when admitted by the run's tag filter.
func (b *SpecBuilder) Ignore(
	name string, body func(*T), tags ...string,
) {
	b.register(name, clauseIt, true, caller(1), body, nil, tags)
}

// Info records a standalone diagnostic message at its declaration
// position; a run reports it as InfoProvided event interleaved with
// adjacent test events.
func (b *SpecBuilder) Info(args ...any) {
	b.reg.addNote(&Note{Message: fmt.Sprint(args...), Loc: caller(1)})
}

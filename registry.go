// Copyright (c) 2026 The gospec authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

import (
	"fmt"
	"sync"
)

// clause identifies the registration construct of an entry; it selects
// the message of a nested-registration failure.
type clause int

const (
	clauseTest clause = iota
	clauseIt
	clauseThey
)

func (c clause) String() string {
	switch c {
	case clauseIt:
		return "it"
	case clauseThey:
		return "they"
	}
	return "test"
}

// article returns the indefinite article preceding a clause's name.
func article(c clause) string {
	if c == clauseIt {
		return "An"
	}
	return "A"
}

// nestedClauseMsg returns the failure message for registering an inner
// clause while an outer clause's body is executing.
func nestedClauseMsg(outer, inner clause) string {
	if outer == clauseTest || inner == clauseTest {
		return fmt.Sprintf(
			"%s %s clause may not appear inside another %s clause.",
			article(inner), inner, outer)
	}
	if inner == clauseIt {
		return "An it clause may not appear inside another it or they clause."
	}
	return "A they clause may not appear inside another it or they clause."
}

// nestedScopeMsg returns the failure message for opening a scope while
// a test body is executing.
func nestedScopeMsg(outer clause) string {
	if outer == clauseTest {
		return "A describe clause may not appear inside a test clause."
	}
	return "A describe clause may not appear inside an it or a they clause."
}

// testEntry is a single registered test: its flattened name, tags,
// body and ignored flag.  Entries are owned by their registry and
// immutable once it froze; their run order is their position in the
// registry's items.
type testEntry struct {
	name    string
	tags    []string
	ignored bool
	clause  clause
	loc     Location

	// exactly one of run and runAsync is set.
	run      func(*T)
	runAsync func(*T) *FutureOutcome
}

// item is one construction-order element of a registry: a test entry
// or a standalone info note.
type item struct {
	entry *testEntry
	note  *Note
}

// registry is the ordered, duplicate-checked collection of a suite's
// test entries.  It is populated single-threaded during construction,
// frozen on the suite's first run and read-only thereafter.
type registry struct {
	items  []item
	byName map[string]*testEntry
	frozen bool

	// mu guards current; the engine marks the entry whose body is
	// executing so that late registration attempts can be classified.
	mu      sync.Mutex
	current *testEntry
}

func newRegistry() *registry {
	return &registry{byName: map[string]*testEntry{}}
}

// add registers a test entry, panicking with the matching typed error
// on a duplicate name, an invalid argument or a closed registry.  The
// suite constructors recover construction-time panics into errors; the
// engine recovers run-time ones into a Failed outcome of the running
// test.
func (r *registry) add(e *testEntry) {
	if cur := r.runningEntry(); cur != nil {
		panic(&RegistrationClosedError{
			Msg: nestedClauseMsg(cur.clause, e.clause),
			Loc: e.loc,
		})
	}
	if r.frozen {
		panic(&RegistrationClosedError{
			Msg: fmt.Sprintf(
				"A %s clause may not be registered after the suite has run.",
				e.clause),
			Loc: e.loc,
		})
	}
	if e.name == "" {
		panic(&InvalidArgumentError{
			Reason: fmt.Sprintf("a %s clause needs a non-empty name", e.clause),
			Loc:    e.loc,
		})
	}
	for i, t := range e.tags {
		if t == "" {
			panic(&InvalidArgumentError{
				Reason: fmt.Sprintf(
					"tag at position %d of %q is empty", i, e.name),
				Loc: e.loc,
			})
		}
	}
	if _, ok := r.byName[e.name]; ok {
		panic(&DuplicateTestNameError{Name: e.name, Loc: e.loc})
	}
	r.byName[e.name] = e
	r.items = append(r.items, item{entry: e})
}

// addNote records a construction-time info note at its declaration
// position.
func (r *registry) addNote(n *Note) {
	if cur := r.runningEntry(); cur != nil {
		panic(&RegistrationClosedError{
			Msg: "An info clause may not appear inside a test body;" +
				" use the test's Info instead.",
			Loc: n.Loc,
		})
	}
	if r.frozen {
		panic(&RegistrationClosedError{
			Msg: "An info clause may not be registered after the suite has run.",
			Loc: n.Loc,
		})
	}
	r.items = append(r.items, item{note: n})
}

// guardScope panics if a scope is declared while a test body runs or
// after the registry froze.
func (r *registry) guardScope(loc Location) {
	if cur := r.runningEntry(); cur != nil {
		panic(&RegistrationClosedError{
			Msg: nestedScopeMsg(cur.clause), Loc: loc})
	}
	if r.frozen {
		panic(&RegistrationClosedError{
			Msg: "A describe clause may not be registered after the suite has run.",
			Loc: loc,
		})
	}
}

// freeze closes the registry for registrations; idempotent.
func (r *registry) freeze() { r.frozen = true }

// beginBody marks given entry's body as executing.
func (r *registry) beginBody(e *testEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = e
}

// endBody clears the executing-body marker.
func (r *registry) endBody() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = nil
}

func (r *registry) runningEntry() *testEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// namesInOrder returns all registered test names in registration
// order, including ignored entries.
func (r *registry) namesInOrder() []string {
	nn := []string{}
	for _, it := range r.items {
		if it.entry == nil {
			continue
		}
		nn = append(nn, it.entry.name)
	}
	return nn
}

// expectedCount returns the number of entries which would execute
// under given filter.  Ignored entries never execute and contribute
// zero regardless of the filter.
func (r *registry) expectedCount(f Filter) int {
	n := 0
	for _, it := range r.items {
		if it.entry == nil {
			continue
		}
		if f.Decide(it.entry.tags, it.entry.ignored) == DecideRun {
			n++
		}
	}
	return n
}

// Copyright (c) 2026 The gospec authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// assertErr is the format-string for assertion failures.
const assertErr = "assert %s:\n%v"

// trueErr default message for a failed 'True'-assertion.
const trueErr = "expected given value to be true"

// True fails the test iff given value is not true.
func (t *T) True(value bool) {
	if value {
		return
	}
	t.failAt(caller(1), fmt.Sprintf(assertErr, "true", trueErr))
}

// Eq fails the test with a corresponding diff iff given values are not
// considered equal.  Values of the same type compare by identity for
// pointers and by their string representations otherwise; values of
// different types compare iff one is a string and the other one a
// Stringer implementation.
func (t *T) Eq(expected, got any) {
	loc := caller(1)
	if fmt.Sprintf("%T", expected) != fmt.Sprintf("%T", got) {
		a, okA := stringOf(expected)
		b, okB := stringOf(got)
		if !okA || !okB {
			t.failAt(loc, fmt.Sprintf(assertErr, "equal: types",
				fmt.Sprintf("types mismatch %T != %T", expected, got)))
			return
		}
		if a != b {
			t.failAt(loc, fmt.Sprintf(assertErr, "equal", cmp.Diff(a, b)))
		}
		return
	}
	if reflect.ValueOf(expected).Kind() == reflect.Ptr {
		if expected != got {
			t.failAt(loc, fmt.Sprintf(assertErr, "equal: pointer",
				fmt.Sprintf("%p != %p", expected, got)))
		}
		return
	}
	a, b := fmt.Sprintf("%v", expected), fmt.Sprintf("%v", got)
	if a != b {
		t.failAt(loc, fmt.Sprintf(assertErr, "equal", cmp.Diff(a, b)))
	}
}

// stringOf returns given value's string representation if it is a
// string or a Stringer.
func stringOf(value any) (string, bool) {
	switch value := value.(type) {
	case string:
		return value, true
	case fmt.Stringer:
		return value.String(), true
	}
	return "", false
}

// containsErr default message for a failed 'Contains'-assertion.
const containsErr = "%q doesn't contain %q"

// Contains fails the test iff given value's string representation
// doesn't contain given sub-string.
func (t *T) Contains(value any, sub string) {
	str, ok := stringOf(value)
	if !ok {
		str = fmt.Sprintf("%v", value)
	}
	if strings.Contains(str, sub) {
		return
	}
	t.failAt(caller(1), fmt.Sprintf(
		assertErr, "contains", fmt.Sprintf(containsErr, str, sub)))
}

// errIsErr default message for a failed 'ErrIs'-assertion.
const errIsErr = "given error doesn't wrap target-error"

// ErrIs fails the test iff given err doesn't wrap given target.
func (t *T) ErrIs(err, target error) {
	if errors.Is(err, target) {
		return
	}
	t.failAt(caller(1), fmt.Sprintf(assertErr, "error is",
		fmt.Sprintf("%s: %+v\n%+v", errIsErr, err, target)))
}

// panicsErr default message for a failed 'Panics'-assertion.
const panicsErr = "given function doesn't panic"

// Panics fails the test iff given function doesn't panic.
func (t *T) Panics(f func()) {
	loc := caller(1)
	defer func() {
		if r := recover(); r == nil {
			t.failAt(loc, fmt.Sprintf(assertErr, "panics", panicsErr))
		}
	}()
	f()
}

// withinErr default message for a failed 'Within'-assertion.
const withinErr = "timeout while condition unfulfilled"

// Within polls given condition after each step of given time-stepper
// and fails the test iff the stepper's whole duration elapses without
// the condition returning true.  It suits waiting on a
// [FutureOutcome]'s resolution from a test body.
func (t *T) Within(d *TimeStepper, cond func() bool) {
	loc := caller(1)
	for ok := true; ok; ok = d.AddStep() {
		d.Sleep()
		if cond() {
			return
		}
	}
	t.failAt(loc, fmt.Sprintf(assertErr, "within", withinErr))
}

// Copyright (c) 2026 The gospec authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

import (
	"sync"
	"time"
)

// Fixtures provides a concurrency safe per-test fixture storage keyed
// by the running test's [T] instance.  A Fixtures instance must not be
// copied after its first use.  It is typically populated from a
// [Fixture] hook and read from the wrapped bodies:
//
//	var fx gospec.Fixtures
//
//	hook := func(t *gospec.T, body func(*gospec.T)) {
//	    fx.Set(t, newEnv())
//	    defer fx.Del(t)
//	    body(t)
//	}
type Fixtures struct {
	mu sync.Mutex
	ff map[*T]any
}

// Set adds concurrency safe a mapping from given test to given
// fixture.
func (ff *Fixtures) Set(t *T, fixture any) {
	ff.mu.Lock()
	defer ff.mu.Unlock()
	if ff.ff == nil {
		ff.ff = map[*T]any{}
	}
	ff.ff[t] = fixture
}

// Get maps given test to its fixture and returns it.
func (ff *Fixtures) Get(t *T) any {
	ff.mu.Lock()
	defer ff.mu.Unlock()
	return ff.ff[t]
}

// Del removes the mapping of given test to its fixture and returns the
// fixture.
func (ff *Fixtures) Del(t *T) any {
	ff.mu.Lock()
	defer ff.mu.Unlock()
	fixture := ff.ff[t]
	delete(ff.ff, t)
	return fixture
}

// TimeStepper splits a polling duration into segments.  The duration
// defaults to 10 milliseconds segmented into 1 millisecond steps.  The
// zero value is ready to use, see [T.Within].
type TimeStepper struct {
	duration time.Duration
	step     time.Duration
	elapsed  time.Duration
}

// Duration is the overall duration a time-stepper represents,
// defaulting to 10 milliseconds.
func (t *TimeStepper) Duration() time.Duration {
	if t.duration == 0 {
		t.duration = 10 * time.Millisecond
	}
	return t.duration
}

// SetDuration sets the overall duration a time-stepper represents.
func (t *TimeStepper) SetDuration(d time.Duration) *TimeStepper {
	t.duration = d
	return t
}

// Step is the step-segment of a time-stepper's overall duration,
// defaulting to 1 millisecond.
func (t *TimeStepper) Step() time.Duration {
	if t.step == 0 {
		t.step = 1 * time.Millisecond
	}
	return t.step
}

// SetStep sets the duration of a segment of a time-stepper's overall
// duration.
func (t *TimeStepper) SetStep(s time.Duration) *TimeStepper {
	t.step = s
	return t
}

// Sleep blocks for one step-segment.
func (t *TimeStepper) Sleep() { time.Sleep(t.Step()) }

// AddStep adds another step to the elapsed time and returns true if
// there is still time left; false otherwise.
func (t *TimeStepper) AddStep() bool {
	t.elapsed += t.Step()
	return t.Duration() > t.elapsed
}

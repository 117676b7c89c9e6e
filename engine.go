// Copyright (c) 2026 The gospec authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

import (
	"time"

	"github.com/go-logr/logr"
)

// Fixture is a user-overridable hook the engine invokes instead of
// calling a test body directly, enabling cross-cutting setup and
// teardown.  Implementations must call body exactly once; panics
// raised from the hook are classified like panics from the body.
type Fixture func(t *T, body func(*T))

// defaultFixture invokes the body without decoration.
func defaultFixture(t *T, body func(*T)) { body(t) }

// runConfig collects the per-run options of [Suite.Run].
type runConfig struct {
	testName string
	filter   Filter
	cfg      ConfigMap
	fixture  Fixture
	log      logr.Logger
}

// RunOption configures a single call to [Suite.Run].
type RunOption func(*runConfig)

// WithTestName restricts the run to the single test with given full
// name.  Non-matching entries produce no event; the tag filter still
// decides over the matching one.  An explicitly named but ignored test
// is still reported ignored, not executed: ignore wins over explicit
// selection.
func WithTestName(name string) RunOption {
	return func(c *runConfig) { c.testName = name }
}

// WithFilter applies given tag filter to the run.
func WithFilter(f Filter) RunOption {
	return func(c *runConfig) { c.filter = f }
}

// WithConfig passes given configuration map opaquely into each test
// body's [T].
func WithConfig(cfg ConfigMap) RunOption {
	return func(c *runConfig) { c.cfg = cfg }
}

// WithFixture installs given hook around every executed test body.
func WithFixture(f Fixture) RunOption {
	return func(c *runConfig) {
		if f != nil {
			c.fixture = f
		}
	}
}

// WithLogger attaches given logger to the run; execution milestones
// are logged at verbosity 1.  Defaults to a discarding logger.
func WithLogger(log logr.Logger) RunOption {
	return func(c *runConfig) { c.log = log }
}

// Run executes the suite's tests sequentially in registration order,
// reporting lifecycle events to given reporter.  The registry freezes
// on the first call.  Every executed test produces exactly one
// terminal event; construction-time info notes are reported standalone
// at their declaration position.  A non-nil error is returned only if
// a fatal condition aborted the run, in which case remaining tests
// neither run nor report.
func (s *Suite) Run(reporter Reporter, opts ...RunOption) error {
	c := runConfig{fixture: defaultFixture, log: logr.Discard()}
	for _, opt := range opts {
		opt(&c)
	}
	s.reg.freeze()

	start := time.Now()
	c.log.V(1).Info("suite starting", "suite", s.name)
	reporter.Accept(SuiteStarting{Suite: s.name})
	for _, it := range s.reg.items {
		if it.note != nil {
			if c.testName != "" {
				continue
			}
			reporter.Accept(InfoProvided{
				Suite:   s.name,
				Message: it.note.Message,
				Loc:     it.note.Loc,
			})
			continue
		}
		e := it.entry
		if c.testName != "" && e.name != c.testName {
			continue
		}
		// the tag filter also decides over an explicitly named entry;
		// ignore wins even over explicit selection by name.
		switch c.filter.Decide(e.tags, e.ignored) {
		case DecideExclude:
			continue
		case DecideIgnore:
			reporter.Accept(TestIgnored{Suite: s.name, Name: e.name})
			continue
		}
		if fatal := s.runEntry(e, reporter, &c); fatal != nil {
			c.log.V(1).Info("suite aborted",
				"suite", s.name, "test", e.name, "cause", fatal.Error())
			reporter.Accept(SuiteAborted{Suite: s.name, Cause: fatal})
			return fatal
		}
	}
	c.log.V(1).Info("suite completed", "suite", s.name)
	reporter.Accept(SuiteCompleted{
		Suite: s.name, Duration: time.Since(start)})
	return nil
}

// runEntry executes a single admitted entry emitting its starting and
// terminal events.  A fatal condition is returned instead of being
// reported; no terminal event is synthesized for it.
func (s *Suite) runEntry(
	e *testEntry, reporter Reporter, c *runConfig,
) *FatalError {
	c.log.V(1).Info("test starting", "suite", s.name, "test", e.name)
	reporter.Accept(TestStarting{Suite: s.name, Name: e.name})

	t := &T{name: e.name, cfg: c.cfg, log: c.log}
	start := time.Now()
	outcome, fatal := s.execute(e, t, c.fixture)
	duration := time.Since(start)
	if fatal != nil {
		return fatal
	}
	notes := t.bufferedNotes()

	switch {
	case outcome.IsSucceeded():
		reporter.Accept(TestSucceeded{Suite: s.name, Name: e.name,
			Duration: duration, Notes: notes})
	case outcome.IsCanceled():
		reporter.Accept(TestCanceled{Suite: s.name, Name: e.name,
			Duration: duration, Cause: outcome.Cause(),
			Loc: causeLocation(outcome.Cause()), Notes: notes})
	case outcome.IsPending():
		reporter.Accept(TestPending{Suite: s.name, Name: e.name,
			Duration: duration, Notes: notes})
	default:
		reporter.Accept(TestFailed{Suite: s.name, Name: e.name,
			Duration: duration, Cause: outcome.Cause(),
			Loc: causeLocation(outcome.Cause()), Notes: notes})
	}
	return nil
}

// execute runs an entry's body under the fixture hook and classifies
// its completion into an outcome.  The registry is marked while the
// body runs so that nested registration attempts become a Failed
// outcome of this entry instead of escaping the run.  An async body's
// completion event is deferred until its future outcome resolves.
func (s *Suite) execute(
	e *testEntry, t *T, fixture Fixture,
) (o Outcome, fatal *FatalError) {
	var future *FutureOutcome
	invoke := func() {
		s.reg.beginBody(e)
		defer s.reg.endBody()

		defer func() {
			if r := recover(); r != nil {
				o, fatal = outcomeFor(r)
			}
		}()
		fixture(t, func(t *T) {
			if e.run != nil {
				e.run(t)
				return
			}
			future = e.runAsync(t)
		})
	}
	invoke()
	if fatal != nil || !o.IsSucceeded() || e.run != nil {
		return o, fatal
	}
	if future == nil {
		return Failed(errNilAsyncBody), nil
	}
	res := future.Wait()
	if res.IsAborted() {
		if fe, ok := res.Cause().(*FatalError); ok {
			return Outcome{}, fe
		}
		return Outcome{}, &FatalError{Err: res.Cause()}
	}
	return res, nil
}

// causeLocation extracts the call-site token of a condition if it
// carries one.
func causeLocation(cause error) Location {
	switch c := cause.(type) {
	case *TestFailedError:
		return c.Loc
	case *TestCanceledError:
		return c.Loc
	case *TestPendingError:
		return c.Loc
	case *RegistrationClosedError:
		return c.Loc
	}
	return Location{}
}

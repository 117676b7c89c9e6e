// Copyright (c) 2026 The gospec authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/gospec-dev/gospec"
)

// outline reduces an event sequence to "Kind name"-lines for compact
// comparison of whole runs.
func outline(ee []gospec.Event) []string {
	oo := []string{}
	for _, e := range ee {
		switch e := e.(type) {
		case gospec.SuiteStarting:
			oo = append(oo, "SuiteStarting")
		case gospec.SuiteCompleted:
			oo = append(oo, "SuiteCompleted")
		case gospec.SuiteAborted:
			oo = append(oo, "SuiteAborted")
		case gospec.TestStarting:
			oo = append(oo, "TestStarting "+e.Name)
		case gospec.TestSucceeded:
			oo = append(oo, "TestSucceeded "+e.Name)
		case gospec.TestFailed:
			oo = append(oo, "TestFailed "+e.Name)
		case gospec.TestCanceled:
			oo = append(oo, "TestCanceled "+e.Name)
		case gospec.TestPending:
			oo = append(oo, "TestPending "+e.Name)
		case gospec.TestIgnored:
			oo = append(oo, "TestIgnored "+e.Name)
		case gospec.InfoProvided:
			oo = append(oo, "InfoProvided "+e.Message)
		default:
			oo = append(oo, fmt.Sprintf("%T", e))
		}
	}
	return oo
}

// mustSuite unwraps a suite-constructor result for fixture suites
// whose construction must not fail.
func mustSuite(s *gospec.Suite, err error) *gospec.Suite {
	if err != nil {
		panic(err)
	}
	return s
}

func Test_tests_run_and_report_in_registration_order(t *testing.T) {
	t.Parallel()
	suite := mustSuite(gospec.NewFunSuite("order",
		func(s *gospec.SuiteBuilder) {
			s.Test("test this", noop)
			s.Test("test that", noop)
		}))
	rec := &gospec.Recorder{}
	if err := suite.Run(rec); err != nil {
		t.Fatal(err)
	}
	exp := []string{
		"SuiteStarting",
		"TestStarting test this", "TestSucceeded test this",
		"TestStarting test that", "TestSucceeded test that",
		"SuiteCompleted",
	}
	if diff := cmp.Diff(exp, outline(rec.Events())); diff != "" {
		t.Errorf("unexpected event sequence:\n%s", diff)
	}
}

func Test_included_tag_runs_only_matching_tests(t *testing.T) {
	t.Parallel()
	suite := mustSuite(gospec.NewFunSuite("molasses",
		func(s *gospec.SuiteBuilder) {
			s.Test("test this", noop, "SlowAsMolasses")
			s.Test("test that", noop)
		}))
	rec := &gospec.Recorder{}
	filter := gospec.NewFilter([]string{"SlowAsMolasses"})
	if err := suite.Run(rec, gospec.WithFilter(filter)); err != nil {
		t.Fatal(err)
	}
	exp := []string{
		"SuiteStarting",
		"TestStarting test this", "TestSucceeded test this",
		"SuiteCompleted",
	}
	if diff := cmp.Diff(exp, outline(rec.Events())); diff != "" {
		t.Errorf("expected 'test that' to produce no event:\n%s", diff)
	}
}

func Test_expected_count_matches_observed_starting_events(t *testing.T) {
	t.Parallel()
	suite := mustSuite(gospec.NewFunSuite("counting",
		func(s *gospec.SuiteBuilder) {
			s.Test("a", noop, "T1")
			s.Test("b", noop, "T1", "T2")
			s.Test("c", noop, "T2")
			s.Test("d", noop)
			s.Ignore("e", noop, "T1")
		}))
	for _, filter := range []gospec.Filter{
		{},
		gospec.NewFilter([]string{"T1"}),
		gospec.NewFilter([]string{"T1"}, "T2"),
		gospec.NewFilter(nil, "T1", "T2"),
		gospec.NewFilter([]string{}),
	} {
		rec := &gospec.Recorder{}
		if err := suite.Run(rec, gospec.WithFilter(filter)); err != nil {
			t.Fatal(err)
		}
		starting := 0
		for _, e := range rec.Events() {
			if _, ok := e.(gospec.TestStarting); ok {
				starting++
			}
		}
		if exp := suite.ExpectedCount(filter); exp != starting {
			t.Errorf("filter %v: expected count %d; observed %d starts",
				filter, exp, starting)
		}
	}
}

func Test_each_outcome_category_reports_exactly_once(t *testing.T) {
	t.Parallel()
	suite := mustSuite(gospec.NewFunSuite("outcomes",
		func(s *gospec.SuiteBuilder) {
			s.Test("failing", func(t *gospec.T) { t.Fail("boom") })
			s.Test("canceled", func(t *gospec.T) { t.Cancel("later") })
			s.Test("pending", func(t *gospec.T) { t.Pending() })
			s.Test("panicking", func(t *gospec.T) { panic("rogue") })
			s.Test("passing", noop)
		}))
	rec := &gospec.Recorder{}
	if err := suite.Run(rec); err != nil {
		t.Fatal(err)
	}
	exp := []string{
		"SuiteStarting",
		"TestStarting failing", "TestFailed failing",
		"TestStarting canceled", "TestCanceled canceled",
		"TestStarting pending", "TestPending pending",
		"TestStarting panicking", "TestFailed panicking",
		"TestStarting passing", "TestSucceeded passing",
		"SuiteCompleted",
	}
	if diff := cmp.Diff(exp, outline(rec.Events())); diff != "" {
		t.Errorf("unexpected event sequence:\n%s", diff)
	}
	for _, e := range rec.Events() {
		f, ok := e.(gospec.TestFailed)
		if !ok || f.Name != "failing" {
			continue
		}
		if f.Cause == nil || f.Loc.IsZero() {
			t.Errorf("expected failure cause with location; got %v at %v",
				f.Cause, f.Loc)
		}
	}
}

func Test_info_notes_buffer_until_the_terminal_event(t *testing.T) {
	t.Parallel()
	suite := mustSuite(gospec.NewFunSuite("notes",
		func(s *gospec.SuiteBuilder) {
			s.Test("noted", func(t *gospec.T) {
				t.Info("first")
				t.Infof("%s", "second")
			})
		}))
	rec := &gospec.Recorder{}
	if err := suite.Run(rec); err != nil {
		t.Fatal(err)
	}
	for _, e := range rec.Events() {
		if _, ok := e.(gospec.InfoProvided); ok {
			t.Fatal("expected no standalone info event for body notes")
		}
	}
	for _, e := range rec.Events() {
		s, ok := e.(gospec.TestSucceeded)
		if !ok {
			continue
		}
		if len(s.Notes) != 2 || s.Notes[0].Message != "first" ||
			s.Notes[1].Message != "second" {
			t.Errorf("expected buffered notes in order; got %v", s.Notes)
		}
	}
}

func Test_construction_info_interleaves_by_declaration_position(
	t *testing.T,
) {
	t.Parallel()
	suite := mustSuite(gospec.NewFunSpec("informed",
		func(s *gospec.SpecBuilder) {
			s.Info("before all")
			s.It("first", noop)
			s.Info("between")
			s.It("second", noop)
		}))
	rec := &gospec.Recorder{}
	if err := suite.Run(rec); err != nil {
		t.Fatal(err)
	}
	exp := []string{
		"SuiteStarting",
		"InfoProvided before all",
		"TestStarting first", "TestSucceeded first",
		"InfoProvided between",
		"TestStarting second", "TestSucceeded second",
		"SuiteCompleted",
	}
	if diff := cmp.Diff(exp, outline(rec.Events())); diff != "" {
		t.Errorf("unexpected interleaving:\n%s", diff)
	}
}

func Test_name_filter_selects_a_single_test(t *testing.T) {
	t.Parallel()
	suite := mustSuite(gospec.NewFunSuite("named",
		func(s *gospec.SuiteBuilder) {
			s.Test("test this", noop)
			s.Test("test that", noop)
		}))
	rec := &gospec.Recorder{}
	err := suite.Run(rec, gospec.WithTestName("test that"))
	if err != nil {
		t.Fatal(err)
	}
	exp := []string{
		"SuiteStarting",
		"TestStarting test that", "TestSucceeded test that",
		"SuiteCompleted",
	}
	if diff := cmp.Diff(exp, outline(rec.Events())); diff != "" {
		t.Errorf("unexpected event sequence:\n%s", diff)
	}
}

func Test_tag_filter_decides_over_an_explicitly_named_test(t *testing.T) {
	t.Parallel()
	suite := mustSuite(gospec.NewFunSuite("named",
		func(s *gospec.SuiteBuilder) {
			s.Test("test this", noop, "SlowAsMolasses")
		}))
	rec := &gospec.Recorder{}
	filter := gospec.NewFilter(nil, "SlowAsMolasses")
	err := suite.Run(rec,
		gospec.WithTestName("test this"), gospec.WithFilter(filter))
	if err != nil {
		t.Fatal(err)
	}
	exp := []string{"SuiteStarting", "SuiteCompleted"}
	if diff := cmp.Diff(exp, outline(rec.Events())); diff != "" {
		t.Errorf("expected the excluded named test to stay silent:\n%s", diff)
	}
}

func Test_ignore_wins_over_explicit_name_selection(t *testing.T) {
	t.Parallel()
	suite := mustSuite(gospec.NewFunSuite("named",
		func(s *gospec.SuiteBuilder) {
			s.Ignore("test this", func(t *gospec.T) {
				t.Fail("must never execute")
			})
		}))
	rec := &gospec.Recorder{}
	if err := suite.Run(rec, gospec.WithTestName("test this")); err != nil {
		t.Fatal(err)
	}
	exp := []string{
		"SuiteStarting", "TestIgnored test this", "SuiteCompleted",
	}
	if diff := cmp.Diff(exp, outline(rec.Events())); diff != "" {
		t.Errorf("expected ignored-report, not execution:\n%s", diff)
	}
}

func Test_nested_registration_fails_the_running_test_only(t *testing.T) {
	t.Parallel()
	var builder *gospec.SpecBuilder
	suite := mustSuite(gospec.NewFunSpec("nesting",
		func(s *gospec.SpecBuilder) {
			builder = s
			s.It("outer", func(t *gospec.T) {
				builder.It("inner", noop)
			})
			s.It("sibling", noop)
		}))
	rec := &gospec.Recorder{}
	if err := suite.Run(rec); err != nil {
		t.Fatal(err)
	}
	exp := []string{
		"SuiteStarting",
		"TestStarting outer", "TestFailed outer",
		"TestStarting sibling", "TestSucceeded sibling",
		"SuiteCompleted",
	}
	if diff := cmp.Diff(exp, outline(rec.Events())); diff != "" {
		t.Errorf("unexpected event sequence:\n%s", diff)
	}
	for _, e := range rec.Events() {
		f, ok := e.(gospec.TestFailed)
		if !ok {
			continue
		}
		closed := &gospec.RegistrationClosedError{}
		if !errors.As(f.Cause, &closed) {
			t.Fatalf("expected RegistrationClosedError cause; got %v",
				f.Cause)
		}
		exp := "An it clause may not appear inside another it or they clause."
		if closed.Msg != exp {
			t.Errorf("expected %q; got %q", exp, closed.Msg)
		}
	}
}

func Test_nested_test_clause_message_names_the_test_clause(t *testing.T) {
	t.Parallel()
	var builder *gospec.SuiteBuilder
	suite := mustSuite(gospec.NewFunSuite("nesting",
		func(s *gospec.SuiteBuilder) {
			builder = s
			s.Test("outer", func(t *gospec.T) {
				builder.Test("inner", noop)
			})
		}))
	rec := &gospec.Recorder{}
	if err := suite.Run(rec); err != nil {
		t.Fatal(err)
	}
	for _, e := range rec.Events() {
		f, ok := e.(gospec.TestFailed)
		if !ok {
			continue
		}
		closed := &gospec.RegistrationClosedError{}
		if !errors.As(f.Cause, &closed) {
			t.Fatalf("expected RegistrationClosedError cause; got %v",
				f.Cause)
		}
		exp := "A test clause may not appear inside another test clause."
		if closed.Msg != exp {
			t.Errorf("expected %q; got %q", exp, closed.Msg)
		}
		return
	}
	t.Error("expected a TestFailed event")
}

func Test_fatal_condition_aborts_the_run(t *testing.T) {
	t.Parallel()
	fatal := errors.New("environment compromised")
	suite := mustSuite(gospec.NewFunSuite("fatal",
		func(s *gospec.SuiteBuilder) {
			s.Test("before", noop)
			s.Test("aborting", func(t *gospec.T) {
				panic(&gospec.FatalError{Err: fatal})
			})
			s.Test("after", noop)
		}))
	rec := &gospec.Recorder{}
	err := suite.Run(rec)
	if !errors.Is(err, fatal) {
		t.Fatalf("expected the fatal condition returned; got %v", err)
	}
	exp := []string{
		"SuiteStarting",
		"TestStarting before", "TestSucceeded before",
		"TestStarting aborting",
		"SuiteAborted",
	}
	if diff := cmp.Diff(exp, outline(rec.Events())); diff != "" {
		t.Errorf("expected no terminal event for the aborting test"+
			" and none for later tests:\n%s", diff)
	}
}

func Test_fixture_hook_wraps_every_executed_body(t *testing.T) {
	t.Parallel()
	suite := mustSuite(gospec.NewFunSuite("wrapped",
		func(s *gospec.SuiteBuilder) {
			s.Test("a", noop)
			s.Test("b", noop)
			s.Ignore("c", noop)
		}))
	wrapped := []string{}
	hook := func(t *gospec.T, body func(*gospec.T)) {
		wrapped = append(wrapped, t.Name())
		body(t)
	}
	rec := &gospec.Recorder{}
	if err := suite.Run(rec, gospec.WithFixture(hook)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, wrapped); diff != "" {
		t.Errorf("expected the hook around executed bodies only:\n%s", diff)
	}
}

func Test_fixture_storage_keyed_by_running_test(t *testing.T) {
	t.Parallel()
	var fx gospec.Fixtures
	suite := mustSuite(gospec.NewFunSuite("fixtures",
		func(s *gospec.SuiteBuilder) {
			s.Test("gets its fixture", func(t *gospec.T) {
				t.Eq("fixture of gets its fixture", fx.Get(t))
			})
		}))
	hook := func(t *gospec.T, body func(*gospec.T)) {
		fx.Set(t, "fixture of "+t.Name())
		defer fx.Del(t)
		body(t)
	}
	rec := &gospec.Recorder{}
	if err := suite.Run(rec, gospec.WithFixture(hook)); err != nil {
		t.Fatal(err)
	}
	for _, e := range rec.Events() {
		if f, ok := e.(gospec.TestFailed); ok {
			t.Errorf("unexpected failure: %v", f.Cause)
		}
	}
}

func Test_config_map_reaches_the_test_body(t *testing.T) {
	t.Parallel()
	suite := mustSuite(gospec.NewFunSuite("configured",
		func(s *gospec.SuiteBuilder) {
			s.Test("reads config", func(t *gospec.T) {
				v, ok := t.Config().Get("answer")
				t.True(ok)
				t.Eq(42, v)
			})
		}))
	rec := &gospec.Recorder{}
	err := suite.Run(rec, gospec.WithConfig(gospec.ConfigMap{"answer": 42}))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range rec.Events() {
		if f, ok := e.(gospec.TestFailed); ok {
			t.Errorf("unexpected failure: %v", f.Cause)
		}
	}
}

func Test_async_body_defers_the_terminal_event_until_resolution(
	t *testing.T,
) {
	t.Parallel()
	release := make(chan struct{})
	suite := mustSuite(gospec.NewFunSuite("async",
		func(s *gospec.SuiteBuilder) {
			s.AsyncTest("eventually succeeds",
				func(t *gospec.T) *gospec.FutureOutcome {
					return gospec.FutureOf(func() gospec.Outcome {
						<-release
						return gospec.Succeeded()
					})
				})
			s.Test("runs after", noop)
		}))
	rec := &gospec.Recorder{}
	done := make(chan error, 1)
	go func() { done <- suite.Run(rec) }()
	// the run must suspend on the unresolved future
	time.Sleep(5 * time.Millisecond)
	select {
	case err := <-done:
		t.Fatalf("expected run to suspend; returned %v", err)
	default:
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	exp := []string{
		"SuiteStarting",
		"TestStarting eventually succeeds",
		"TestSucceeded eventually succeeds",
		"TestStarting runs after", "TestSucceeded runs after",
		"SuiteCompleted",
	}
	if diff := cmp.Diff(exp, outline(rec.Events())); diff != "" {
		t.Errorf("unexpected event sequence:\n%s", diff)
	}
}

func Test_async_body_outcome_categories_are_reported(t *testing.T) {
	t.Parallel()
	suite := mustSuite(gospec.NewFunSpec("async",
		func(s *gospec.SpecBuilder) {
			s.AsyncIt("fails", func(t *gospec.T) *gospec.FutureOutcome {
				return gospec.FutureFailed("eventually failed")
			})
			s.AsyncIt("cancels", func(t *gospec.T) *gospec.FutureOutcome {
				return gospec.FutureCanceled("eventually canceled")
			})
			s.AsyncIt("pends", func(t *gospec.T) *gospec.FutureOutcome {
				return gospec.FuturePending()
			})
			s.AsyncIt("forgets", func(t *gospec.T) *gospec.FutureOutcome {
				return nil
			})
		}))
	rec := &gospec.Recorder{}
	if err := suite.Run(rec); err != nil {
		t.Fatal(err)
	}
	exp := []string{
		"SuiteStarting",
		"TestStarting fails", "TestFailed fails",
		"TestStarting cancels", "TestCanceled cancels",
		"TestStarting pends", "TestPending pends",
		"TestStarting forgets", "TestFailed forgets",
		"SuiteCompleted",
	}
	if diff := cmp.Diff(exp, outline(rec.Events())); diff != "" {
		t.Errorf("unexpected event sequence:\n%s", diff)
	}
}

func Test_aborted_async_outcome_aborts_the_run(t *testing.T) {
	t.Parallel()
	fatal := errors.New("async environment compromised")
	suite := mustSuite(gospec.NewFunSuite("async",
		func(s *gospec.SuiteBuilder) {
			s.AsyncTest("aborting",
				func(t *gospec.T) *gospec.FutureOutcome {
					return gospec.FutureOf(func() gospec.Outcome {
						panic(&gospec.FatalError{Err: fatal})
					})
				})
		}))
	rec := &gospec.Recorder{}
	err := suite.Run(rec)
	if !errors.Is(err, fatal) {
		t.Fatalf("expected the fatal condition returned; got %v", err)
	}
	exp := []string{
		"SuiteStarting", "TestStarting aborting", "SuiteAborted",
	}
	if diff := cmp.Diff(exp, outline(rec.Events())); diff != "" {
		t.Errorf("unexpected event sequence:\n%s", diff)
	}
}

func Test_independent_suites_run_concurrently(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	blocking := mustSuite(gospec.NewFunSuite("blocking",
		func(s *gospec.SuiteBuilder) {
			s.AsyncTest("waits", func(t *gospec.T) *gospec.FutureOutcome {
				return gospec.FutureOf(func() gospec.Outcome {
					<-release
					return gospec.Succeeded()
				})
			})
		}))
	free := mustSuite(gospec.NewFunSuite("free",
		func(s *gospec.SuiteBuilder) {
			s.Test("passes", noop)
		}))
	blockingDone := make(chan error, 1)
	go func() { blockingDone <- blocking.Run(&gospec.Recorder{}) }()
	// the suspended suite must not block an independent one
	if err := free.Run(&gospec.Recorder{}); err != nil {
		t.Fatal(err)
	}
	close(release)
	if err := <-blockingDone; err != nil {
		t.Fatal(err)
	}
}

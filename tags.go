// Copyright (c) 2026 The gospec authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// IgnoreTag is the reserved tag marking ignored registrations.  Adding
// it to a filter's exclude set suppresses even the ignored-reporting
// of ignored tests.
const IgnoreTag = "Ignore"

// Decision is a tag filter's verdict on a single test entry.
type Decision int

const (
	// DecideRun executes the test.
	DecideRun Decision = iota
	// DecideIgnore reports the test ignored without executing it.
	DecideIgnore
	// DecideExclude drops the test silently, i.e. without any event.
	DecideExclude
)

// Filter decides per test entry whether it runs, is reported ignored
// or is silently excluded, given an optional include tag set and an
// exclude tag set.  The zero Filter admits everything.
type Filter struct {
	include map[string]struct{} // nil: no include constraint
	exclude map[string]struct{}
}

// NewFilter returns a filter admitting only entries tagged with at
// least one include tag, minus entries tagged with an exclude tag.  A
// nil include slice leaves inclusion unconstrained while an empty
// non-nil one admits nothing.  Exclusion always wins over inclusion.
func NewFilter(include []string, exclude ...string) Filter {
	f := Filter{}
	if include != nil {
		f.include = map[string]struct{}{}
		for _, t := range include {
			f.include[t] = struct{}{}
		}
	}
	if len(exclude) > 0 {
		f.exclude = map[string]struct{}{}
		for _, t := range exclude {
			f.exclude[t] = struct{}{}
		}
	}
	return f
}

// Include returns the filter's include tags sorted, and whether an
// include constraint is set at all.
func (f Filter) Include() ([]string, bool) {
	if f.include == nil {
		return nil, false
	}
	tt := maps.Keys(f.include)
	slices.Sort(tt)
	return tt, true
}

// Exclude returns the filter's exclude tags sorted.
func (f Filter) Exclude() []string {
	tt := maps.Keys(f.exclude)
	slices.Sort(tt)
	return tt
}

// admitted reports whether given tags survive the include constraint.
func (f Filter) admitted(tags []string) bool {
	if f.include == nil {
		return true
	}
	for _, t := range tags {
		if _, ok := f.include[t]; ok {
			return true
		}
	}
	return false
}

// excluded reports whether given tags intersect the exclude set.
func (f Filter) excluded(tags []string) bool {
	for _, t := range tags {
		if _, ok := f.exclude[t]; ok {
			return true
		}
	}
	return false
}

// Decide returns the filter's verdict for an entry with given tags and
// ignored flag.  An entry failing the include constraint or matching
// an exclude tag is silently excluded even if it is ignored; an
// admitted ignored entry is reported ignored unless [IgnoreTag] is in
// the exclude set.
func (f Filter) Decide(tags []string, ignored bool) Decision {
	_, ignoreFiltered := f.exclude[IgnoreTag]
	if !f.admitted(tags) || f.excluded(tags) {
		return DecideExclude
	}
	if ignored {
		if ignoreFiltered {
			return DecideExclude
		}
		return DecideIgnore
	}
	return DecideRun
}

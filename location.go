// Copyright (c) 2026 The gospec authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Location is a call-site token identifying where a test was registered
// or where an outcome signal was raised.  It is captured once at the
// public API boundary and travels with registrations, signals and
// events; consumers never need to introspect the stack themselves.
type Location struct {
	File string
	Line int
}

// Here returns the location of its caller.
func Here() Location { return caller(1) }

// caller returns the location skip+1 frames above caller.  An
// undeterminable call-site yields the zero Location.
func caller(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	return Location{File: file, Line: line}
}

// IsZero reports whether l carries no call-site information.
func (l Location) IsZero() bool { return l.File == "" && l.Line == 0 }

// String formats l as "file:line" with the file reduced to its base
// name.
func (l Location) String() string {
	if l.IsZero() {
		return "unknown location"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(l.File), l.Line)
}

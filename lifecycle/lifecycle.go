// Copyright 2026 benjerming
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lifecycle tracks whether the application is resident in the
// tray or has been asked to terminate.
package lifecycle

import "sync/atomic"

// State is the window lifecycle state derived from the exit intent.
type State int

const (
	// StateResident means closing the main window hides it to the tray.
	StateResident State = iota
	// StateTerminating means a quit was requested and closes pass through.
	StateTerminating
)

func (s State) String() string {
	switch s {
	case StateResident:
		return "resident"
	case StateTerminating:
		return "terminating"
	default:
		return "unknown"
	}
}

// Lifecycle holds the process-wide exit intent. The zero value is ready
// to use and starts in the tray-resident state.
//
// The flag only ever moves from resident to terminating, so a single
// load per decision is enough and no lock is needed.
type Lifecycle struct {
	terminateRequested atomic.Bool
}

// New returns a Lifecycle in the tray-resident state.
func New() *Lifecycle {
	return &Lifecycle{}
}

// MarkTerminateRequested records that the user asked to quit. Calling it
// more than once has no further effect.
func (l *Lifecycle) MarkTerminateRequested() {
	l.terminateRequested.Store(true)
}

// IsTerminateRequested reports whether a quit has been requested.
func (l *Lifecycle) IsTerminateRequested() bool {
	return l.terminateRequested.Load()
}

// State returns the current lifecycle state.
func (l *Lifecycle) State() State {
	if l.IsTerminateRequested() {
		return StateTerminating
	}
	return StateResident
}

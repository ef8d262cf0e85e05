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

package window

import (
	"github.com/benjerming/AssasinAlarmClock/router"
)

// Controls backs the custom title bar drawn by the frontend.
type Controls struct {
	runtime        *Runtime
	label          string
	closeRequested func(label string) bool
}

// NewControls returns title bar controls for the main window. The close
// decision is delegated to closeRequested, which reports a veto.
func NewControls(rt *Runtime, closeRequested func(string) bool) *Controls {
	return &Controls{
		runtime:        rt,
		label:          router.MainWindowLabel,
		closeRequested: closeRequested,
	}
}

func (c *Controls) Minimise() {
	if w, ok := c.runtime.lookup(c.label); ok {
		w.driver.Minimise(w.ctx)
	}
}

func (c *Controls) ToggleMaximise() {
	if w, ok := c.runtime.lookup(c.label); ok {
		w.driver.ToggleMaximise(w.ctx)
	}
}

func (c *Controls) IsMaximised() bool {
	if w, ok := c.runtime.lookup(c.label); ok {
		return w.driver.IsMaximised(w.ctx)
	}
	return false
}

// Close behaves like the native close button: it hides to the tray unless
// a quit is already in progress.
func (c *Controls) Close() {
	if c.closeRequested(c.label) {
		return
	}
	c.runtime.Exit(0)
}

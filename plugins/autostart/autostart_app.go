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

//go:build !windows

package autostart

import (
	"github.com/benjerming/AssasinAlarmClock/internal/config"
	goautostart "github.com/emersion/go-autostart"
)

// appManager registers the login item through go-autostart: an XDG
// desktop entry on Linux and the BSDs, a LaunchAgent on macOS.
type appManager struct {
	exec []string
}

func newManager(exe string, args []string) (manager, error) {
	return &appManager{
		exec: append([]string{exe}, args...),
	}, nil
}

// app returns a new descriptor with its own copy of Exec.
func (m *appManager) app() *goautostart.App {
	return &goautostart.App{
		Name:        config.AppIdentifier,
		DisplayName: config.AppDisplayName,
		Exec:        append([]string(nil), m.exec...),
	}
}

func (m *appManager) IsEnabled() (bool, error) {
	return m.app().IsEnabled(), nil
}

// Enable writes the entry, replacing any entry left by an older
// executable path.
func (m *appManager) Enable() error {
	app := m.app()
	if app.IsEnabled() {
		if err := app.Disable(); err != nil {
			return err
		}
	}
	return m.app().Enable()
}

func (m *appManager) Disable() error {
	app := m.app()
	if !app.IsEnabled() {
		return nil
	}
	return app.Disable()
}

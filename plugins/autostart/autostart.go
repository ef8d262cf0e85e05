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

package autostart

import (
	"fmt"
	"os"
	"sync"

	"github.com/benjerming/AssasinAlarmClock/internal/config"
	"github.com/benjerming/AssasinAlarmClock/plugin"
)

// manager registers the application as a login item
type manager interface {
	IsEnabled() (bool, error)
	Enable() error
	Disable() error
}

type AutostartPlugin struct {
	logger     plugin.Logger
	policy     string
	executable string
	args       []string
	mu         sync.Mutex
	manager    manager
}

func New(options ...AutostartOptionFunc) *AutostartPlugin {
	a := &AutostartPlugin{
		policy: config.AutostartPolicyEnable,
		args:   []string{"--" + config.AutostartFlag},
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Start applies the configured policy to the login item. Under the
// enable policy the entry is written on every start so it always names
// the current executable. Login item failures are logged, not returned.
func (a *AutostartPlugin) Start() error {
	m, err := a.getManager()
	if err != nil {
		return err
	}
	switch a.policy {
	case config.AutostartPolicyUnmanaged:
		return nil
	case config.AutostartPolicyEnable:
		if err := m.Enable(); err != nil {
			a.warn("failed to enable autostart", "error", err)
		}
		return nil
	case config.AutostartPolicyDisable:
		enabled, err := m.IsEnabled()
		if err != nil {
			a.warn("failed to query autostart", "error", err)
			return nil
		}
		if enabled {
			if err := m.Disable(); err != nil {
				a.warn("failed to disable autostart", "error", err)
			}
		}
		return nil
	default:
		return fmt.Errorf("invalid autostart policy: %q", a.policy)
	}
}

func (a *AutostartPlugin) Stop() error {
	return nil
}

// Bindings exposes the login item controls to the frontend.
func (a *AutostartPlugin) Bindings() []any {
	return []any{&Autostart{plugin: a}}
}

func (a *AutostartPlugin) getManager() (manager, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.manager != nil {
		return a.manager, nil
	}
	exe := a.executable
	if exe == "" {
		var err error
		exe, err = os.Executable()
		if err != nil {
			return nil, fmt.Errorf("locating executable: %w", err)
		}
	}
	m, err := newManager(exe, a.args)
	if err != nil {
		return nil, err
	}
	a.manager = m
	return m, nil
}

func (a *AutostartPlugin) warn(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Warn(msg, args...)
	}
}

// Autostart is the frontend-facing login item API.
type Autostart struct {
	plugin *AutostartPlugin
}

func (a *Autostart) IsEnabled() (bool, error) {
	m, err := a.plugin.getManager()
	if err != nil {
		return false, err
	}
	return m.IsEnabled()
}

func (a *Autostart) Enable() error {
	m, err := a.plugin.getManager()
	if err != nil {
		return err
	}
	return m.Enable()
}

func (a *Autostart) Disable() error {
	m, err := a.plugin.getManager()
	if err != nil {
		return err
	}
	return m.Disable()
}

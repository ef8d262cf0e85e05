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

// Package api holds the methods bound to the frontend that are not owned
// by a plugin.
package api

import (
	"fmt"

	"github.com/benjerming/AssasinAlarmClock/internal/version"
	"github.com/benjerming/AssasinAlarmClock/lifecycle"
)

// StateReporter is implemented by components that know the shell state
type StateReporter interface {
	State() lifecycle.State
}

type API struct {
	state   StateReporter
	plugins []string
}

type APIOption func(*API)

func WithStateReporter(state StateReporter) APIOption {
	return func(a *API) {
		a.state = state
	}
}

func WithPlugins(names []string) APIOption {
	return func(a *API) {
		a.plugins = names
	}
}

func New(options ...APIOption) *API {
	a := &API{}
	for _, opt := range options {
		opt(a)
	}
	return a
}

// Greet returns a greeting for the given name
func (a *API) Greet(name string) string {
	return fmt.Sprintf("Hello, %s! You've been greeted from Go!", name)
}

func (a *API) Version() string {
	return version.GetVersionString()
}

// Status describes the running shell
type Status struct {
	Version string   `json:"version"`
	State   string   `json:"state"`
	Plugins []string `json:"plugins"`
}

// Status reports the version, lifecycle state and loaded plugins.
func (a *API) Status() Status {
	ret := Status{
		Version: version.GetVersionString(),
		State:   lifecycle.StateResident.String(),
		Plugins: append([]string{}, a.plugins...),
	}
	if a.state != nil {
		ret.State = a.state.State().String()
	}
	return ret
}

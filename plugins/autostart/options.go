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

import "github.com/benjerming/AssasinAlarmClock/plugin"

type AutostartOptionFunc func(*AutostartPlugin)

// WithLogger specifies the logger object to use for logging messages
func WithLogger(logger plugin.Logger) AutostartOptionFunc {
	return func(a *AutostartPlugin) {
		a.logger = logger
	}
}

// WithPolicy specifies what Start does with the login item
func WithPolicy(policy string) AutostartOptionFunc {
	return func(a *AutostartPlugin) {
		a.policy = policy
	}
}

// WithExecutable specifies the program launched at login
func WithExecutable(path string) AutostartOptionFunc {
	return func(a *AutostartPlugin) {
		a.executable = path
	}
}

// WithArgs specifies the arguments passed at login
func WithArgs(args []string) AutostartOptionFunc {
	return func(a *AutostartPlugin) {
		a.args = args
	}
}

func withManager(m manager) AutostartOptionFunc {
	return func(a *AutostartPlugin) {
		a.manager = m
	}
}

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

package opener

import "github.com/benjerming/AssasinAlarmClock/plugin"

type OpenerOptionFunc func(*OpenerPlugin)

// WithLogger specifies the logger object to use for logging messages
func WithLogger(logger plugin.Logger) OpenerOptionFunc {
	return func(o *OpenerPlugin) {
		o.logger = logger
	}
}

// WithSchemes specifies the URL schemes the frontend may open
func WithSchemes(schemes []string) OpenerOptionFunc {
	return func(o *OpenerPlugin) {
		o.schemes = schemes
	}
}

func withOpenFunc(fn func(string) error) OpenerOptionFunc {
	return func(o *OpenerPlugin) {
		o.open = fn
	}
}

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

package singleinstance

import "github.com/benjerming/AssasinAlarmClock/plugin"

type SingleInstanceOptionFunc func(*SingleInstancePlugin)

// WithLogger specifies the logger object to use for logging messages
func WithLogger(logger plugin.Logger) SingleInstanceOptionFunc {
	return func(s *SingleInstancePlugin) {
		s.logger = logger
	}
}

// WithIdentifier specifies the identifier the lock id is derived from
func WithIdentifier(identifier string) SingleInstanceOptionFunc {
	return func(s *SingleInstancePlugin) {
		s.uniqueID = UniqueID(identifier)
	}
}

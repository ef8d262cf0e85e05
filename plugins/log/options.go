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

package log

import "github.com/benjerming/AssasinAlarmClock/plugin"

type LogOptionFunc func(*LogPlugin)

// WithLogger specifies the logger object to use for logging messages
func WithLogger(logger plugin.Logger) LogOptionFunc {
	return func(l *LogPlugin) {
		l.logger = logger
	}
}

func withSink(s sink) LogOptionFunc {
	return func(l *LogPlugin) {
		l.sink = s
	}
}

func withEmitFunc(fn emitFunc) LogOptionFunc {
	return func(l *LogPlugin) {
		l.emit = fn
	}
}

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

import (
	"github.com/benjerming/AssasinAlarmClock/internal/logging"
	"github.com/benjerming/AssasinAlarmClock/plugin"
)

func init() {
	plugin.Register(
		plugin.PluginEntry{
			Name:               "log",
			Description:        "forward log records to the frontend console",
			NewFromOptionsFunc: NewFromCmdlineOptions,
		},
	)
}

func NewFromCmdlineOptions() plugin.Plugin {
	p := New(
		WithLogger(
			logging.GetLogger().With("plugin", "log"),
		),
	)
	return p
}

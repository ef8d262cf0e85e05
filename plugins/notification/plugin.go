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

package notification

import (
	"github.com/benjerming/AssasinAlarmClock/internal/config"
	"github.com/benjerming/AssasinAlarmClock/internal/logging"
	"github.com/benjerming/AssasinAlarmClock/plugin"
)

var cmdlineOptions struct {
	title string
	icon  string
	deny  bool
}

func init() {
	plugin.Register(
		plugin.PluginEntry{
			Name:               "notification",
			Description:        "display alarms using operating system notifications",
			NewFromOptionsFunc: NewFromCmdlineOptions,
			Options: []plugin.PluginOption{
				{
					Name:         "title",
					Type:         plugin.PluginOptionTypeString,
					Description:  "specifies the default notification title",
					DefaultValue: config.AppDisplayName,
					Dest:         &(cmdlineOptions.title),
				},
				{
					Name:         "icon",
					Type:         plugin.PluginOptionTypeString,
					Description:  "path to an icon file (default: bundled icon)",
					DefaultValue: "",
					Dest:         &(cmdlineOptions.icon),
				},
				{
					Name:         "deny",
					Type:         plugin.PluginOptionTypeBool,
					Description:  "refuse notification permission to the frontend",
					DefaultValue: false,
					Dest:         &(cmdlineOptions.deny),
				},
			},
		},
	)
}

func NewFromCmdlineOptions() plugin.Plugin {
	p := New(
		WithLogger(
			logging.GetLogger().With("plugin", "notification"),
		),
		WithTitle(cmdlineOptions.title),
		WithIcon(cmdlineOptions.icon),
		WithDeny(cmdlineOptions.deny),
	)
	return p
}

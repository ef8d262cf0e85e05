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

import (
	"strings"

	"github.com/benjerming/AssasinAlarmClock/internal/logging"
	"github.com/benjerming/AssasinAlarmClock/plugin"
)

var cmdlineOptions struct {
	schemes string
}

func init() {
	plugin.Register(
		plugin.PluginEntry{
			Name:               "opener",
			Description:        "open URLs and files with the desktop default handler",
			NewFromOptionsFunc: NewFromCmdlineOptions,
			Options: []plugin.PluginOption{
				{
					Name:         "schemes",
					Type:         plugin.PluginOptionTypeString,
					Description:  "comma separated list of URL schemes the frontend may open",
					DefaultValue: strings.Join(defaultSchemes, ","),
					Dest:         &(cmdlineOptions.schemes),
				},
			},
		},
	)
}

func NewFromCmdlineOptions() plugin.Plugin {
	var schemes []string
	for _, s := range strings.Split(cmdlineOptions.schemes, ",") {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			schemes = append(schemes, s)
		}
	}
	p := New(
		WithLogger(
			logging.GetLogger().With("plugin", "opener"),
		),
		WithSchemes(schemes),
	)
	return p
}

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

package plugin

import (
	"fmt"

	"github.com/spf13/pflag"
)

const enabledOptionName = "enabled"

type PluginEntry struct {
	NewFromOptionsFunc func() Plugin
	Name               string
	Description        string
	Options            []PluginOption
	enabled            *bool
}

// Enabled reports whether the plugin is switched on.
func (p PluginEntry) Enabled() bool {
	return p.enabled == nil || *p.enabled
}

var pluginEntries []PluginEntry

// Register adds a plugin to the registry. Every plugin gets an implicit
// "enabled" option that defaults to true.
func Register(pluginEntry PluginEntry) {
	enabled := new(bool)
	pluginEntry.enabled = enabled
	pluginEntry.Options = append(
		[]PluginOption{
			{
				Name:         enabledOptionName,
				Type:         PluginOptionTypeBool,
				Description:  "enable the " + pluginEntry.Name + " plugin",
				DefaultValue: true,
				Dest:         enabled,
			},
		},
		pluginEntry.Options...,
	)
	// Apply defaults
	for _, option := range pluginEntry.Options {
		option.applyDefault()
	}
	pluginEntries = append(pluginEntries, pluginEntry)
}

func PopulateCmdlineOptions(fs *pflag.FlagSet) error {
	for _, plugin := range pluginEntries {
		for _, option := range plugin.Options {
			if err := option.AddToFlagSet(fs, plugin.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

func ProcessEnvVars() error {
	for _, plugin := range pluginEntries {
		// Generate env var prefix based on plugin name
		envVarPrefix := fmt.Sprintf("plugin-%s-", plugin.Name)
		for _, option := range plugin.Options {
			if err := option.ProcessEnvVars(envVarPrefix); err != nil {
				return err
			}
		}
	}
	return nil
}

func ProcessConfig(pluginConfig map[string]map[string]any) error {
	for _, plugin := range pluginEntries {
		pluginData, ok := pluginConfig[plugin.Name]
		if !ok {
			continue
		}
		for key := range pluginData {
			if !plugin.hasOption(key) {
				return fmt.Errorf(
					"unknown option '%s' for plugin '%s'",
					key,
					plugin.Name,
				)
			}
		}
		for _, option := range plugin.Options {
			if err := option.ProcessConfig(pluginData); err != nil {
				return fmt.Errorf("plugin %s: %w", plugin.Name, err)
			}
		}
	}
	return nil
}

func (p PluginEntry) hasOption(name string) bool {
	for _, option := range p.Options {
		if option.Name == name {
			return true
		}
	}
	return false
}

func GetPlugins() []PluginEntry {
	ret := []PluginEntry{}
	ret = append(ret, pluginEntries...)
	return ret
}

func GetPlugin(name string) Plugin {
	for _, plugin := range pluginEntries {
		if plugin.Name == name {
			return plugin.NewFromOptionsFunc()
		}
	}
	return nil
}

// IsEnabled reports whether the named plugin is registered and enabled.
func IsEnabled(name string) bool {
	for _, plugin := range pluginEntries {
		if plugin.Name == name {
			return plugin.Enabled()
		}
	}
	return false
}

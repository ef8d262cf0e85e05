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

package config

import (
	"os"
	"path/filepath"
)

const (
	configFileName = AppName + ".yaml"
	logFileName    = AppName + ".log"
)

// ConfigDir returns the platform-specific configuration directory.
func ConfigDir() string {
	return configDir()
}

// LogDir returns the platform-specific log directory.
func LogDir() string {
	return logDir()
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), configFileName)
}

// LogPath returns the full path to the log file.
func LogPath() string {
	return filepath.Join(LogDir(), logFileName)
}

// ConfigExists reports whether the configuration file exists on disk.
func ConfigExists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

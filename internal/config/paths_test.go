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
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	require.NotEmpty(t, dir, "ConfigDir must not be empty")
	assert.True(
		t,
		filepath.IsAbs(dir),
		"ConfigDir must return an absolute path",
	)
	assert.True(
		t,
		strings.Contains(strings.ToLower(dir), "alarm"),
		"ConfigDir should contain 'alarm' in the path",
	)
}

func TestLogDir(t *testing.T) {
	dir := LogDir()
	require.NotEmpty(t, dir, "LogDir must not be empty")
	assert.True(
		t,
		filepath.IsAbs(dir),
		"LogDir must return an absolute path",
	)
	assert.True(
		t,
		strings.Contains(strings.ToLower(dir), "alarm"),
		"LogDir should contain 'alarm' in the path",
	)
}

func TestConfigPath(t *testing.T) {
	path := ConfigPath()
	require.NotEmpty(t, path, "ConfigPath must not be empty")
	assert.True(
		t,
		filepath.IsAbs(path),
		"ConfigPath must return an absolute path",
	)
	assert.Equal(
		t,
		configFileName,
		filepath.Base(path),
		"ConfigPath must end with the config file name",
	)
}

func TestLogPath(t *testing.T) {
	assert.Equal(t, logFileName, filepath.Base(LogPath()))
	assert.Equal(t, LogDir(), filepath.Dir(LogPath()))
}

func TestPathsArePlatformAppropriate(t *testing.T) {
	configDir := ConfigDir()
	logDir := LogDir()

	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			assert.True(t, strings.HasPrefix(configDir, xdg),
				"ConfigDir should start with XDG_CONFIG_HOME when set")
		} else {
			assert.Contains(t, configDir, ".config")
		}
		if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
			assert.True(t, strings.HasPrefix(logDir, xdg),
				"LogDir should start with XDG_STATE_HOME when set")
		} else {
			assert.Contains(t, logDir, ".local")
		}
	case "darwin":
		assert.Contains(t, configDir, "Library")
		assert.Contains(t, logDir, "Library")
	case "windows":
		assert.Contains(t, configDir, "AssassinAlarmClock")
		assert.Contains(t, logDir, "AssassinAlarmClock")
	}
}

func TestConfigExists(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	assert.False(
		t,
		ConfigExists(),
		"ConfigExists should be false before the file is written",
	)

	require.NoError(t, os.MkdirAll(ConfigDir(), 0o700))
	require.NoError(t, os.WriteFile(ConfigPath(), []byte("{}\n"), 0o600))

	assert.True(
		t,
		ConfigExists(),
		"ConfigExists should be true once the file is written",
	)
}

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

package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/benjerming/AssasinAlarmClock/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureInvalidLevel(t *testing.T) {
	err := Configure(config.LoggingConfig{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error configuring logger")
}

func TestConfigureUnknownTarget(t *testing.T) {
	err := Configure(config.LoggingConfig{
		Level:   "info",
		Targets: []string{"syslog"},
	})
	assert.Error(t, err)
}

func TestConfigureSetsDefault(t *testing.T) {
	require.NoError(t, Configure(config.LoggingConfig{
		Level:   "debug",
		Targets: []string{config.LogTargetStdout},
	}))
	logger := GetLogger()
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))
}

func TestLogDirTarget(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_STATE_HOME only applies on Linux")
	}
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	require.NoError(t, Configure(config.LoggingConfig{
		Level:   "info",
		Targets: []string{config.LogTargetLogDir},
	}))
	GetLogger().Info("alarm rang", "alarm", "morning")
	GetLogger().Debug("filtered out")
	require.NoError(t, Close())

	data, err := os.ReadFile(config.LogPath())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "alarm rang", record["msg"])
	assert.Equal(t, "morning", record["alarm"])
	assert.Equal(t, "info", record["level"])
	assert.Contains(t, record, "timestamp")
}

func TestCloseWithoutFile(t *testing.T) {
	assert.NoError(t, Close())
}

func TestWebviewTargetUsesSharedSink(t *testing.T) {
	require.NoError(t, Configure(config.LoggingConfig{
		Level:   "info",
		Targets: []string{config.LogTargetWebview},
	}))
	var got []string
	Webview().Attach(func(line string) { got = append(got, line) })
	defer Webview().Detach()
	got = nil

	GetLogger().Warn("snoozed")
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "snoozed")
	assert.Contains(t, got[0], "\"level\":\"warn\"")
}

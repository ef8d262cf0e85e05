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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/benjerming/AssasinAlarmClock/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

type Logger = slog.Logger

var (
	globalLogger = slog.Default()
	webviewSink  = NewWebviewSink(defaultWebviewBacklog)
	logFile      *os.File
	mu           sync.Mutex
)

// Configure builds the global logger from the logging config and
// installs it as the slog default.
func Configure(cfg config.LoggingConfig) error {
	mu.Lock()
	defer mu.Unlock()

	level := zapcore.InfoLevel
	if cfg.Level != "" {
		var err error
		level, err = zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return fmt.Errorf("error configuring logger: %w", err)
		}
	}

	// Build our custom encoder config
	encoderConfig := zap.NewProductionEncoderConfig()
	// Change timestamp key name
	encoderConfig.TimeKey = "timestamp"
	// Use a human readable time format
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	var cores []zapcore.Core
	for _, target := range cfg.Targets {
		switch target {
		case config.LogTargetStdout:
			cores = append(cores, zapcore.NewCore(
				zapcore.NewConsoleEncoder(encoderConfig),
				zapcore.Lock(os.Stdout),
				level,
			))
		case config.LogTargetLogDir:
			f, err := openLogFile()
			if err != nil {
				return err
			}
			cores = append(cores, zapcore.NewCore(
				zapcore.NewJSONEncoder(encoderConfig),
				zapcore.Lock(f),
				level,
			))
		case config.LogTargetWebview:
			cores = append(cores, zapcore.NewCore(
				zapcore.NewJSONEncoder(encoderConfig),
				webviewSink,
				level,
			))
		default:
			return fmt.Errorf("unknown log target: %s", target)
		}
	}

	globalLogger = slog.New(
		zapslog.NewHandler(zapcore.NewTee(cores...)),
	)
	slog.SetDefault(globalLogger)
	return nil
}

func openLogFile() (*os.File, error) {
	if logFile != nil {
		return logFile, nil
	}
	if err := os.MkdirAll(config.LogDir(), 0o700); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(
		config.LogPath(),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		0o600,
	)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	logFile = f
	return f, nil
}

// Close flushes and closes the log file target, if open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	err := errors.Join(logFile.Sync(), logFile.Close())
	logFile = nil
	return err
}

func GetLogger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return globalLogger
}

// Webview returns the sink backing the webview log target.
func Webview() *WebviewSink {
	return webviewSink
}

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
	"log/slog"
	"os"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/logger"
)

// WailsLogger routes window runtime log messages through slog.
type WailsLogger struct {
	logger *slog.Logger
	exit   func(int)
}

func NewWailsLogger(l *slog.Logger) *WailsLogger {
	return &WailsLogger{
		logger: l.With("component", "wails"),
		exit:   os.Exit,
	}
}

func (w *WailsLogger) Print(message string) {
	w.logger.Info(message)
}

func (w *WailsLogger) Trace(message string) {
	w.logger.Debug(message)
}

func (w *WailsLogger) Debug(message string) {
	w.logger.Debug(message)
}

func (w *WailsLogger) Info(message string) {
	w.logger.Info(message)
}

func (w *WailsLogger) Warning(message string) {
	w.logger.Warn(message)
}

func (w *WailsLogger) Error(message string) {
	w.logger.Error(message)
}

func (w *WailsLogger) Fatal(message string) {
	w.logger.Error(message, "fatal", true)
	_ = Close()
	w.exit(1)
}

// WailsLogLevel maps a configured level name to the runtime's level.
func WailsLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.DEBUG
	case "warn", "warning":
		return logger.WARNING
	case "error", "dpanic", "panic", "fatal":
		return logger.ERROR
	default:
		return logger.INFO
	}
}

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

// Package log forwards application log records to the frontend console.
package log

import (
	"context"
	"sync"

	"github.com/benjerming/AssasinAlarmClock/internal/logging"
	"github.com/benjerming/AssasinAlarmClock/plugin"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// EventName is the frontend event carrying one encoded log record
const EventName = "log://log"

type emitFunc func(ctx context.Context, eventName string, data ...any)

type sink interface {
	Attach(emit func(string))
	Detach()
}

type LogPlugin struct {
	logger   plugin.Logger
	sink     sink
	emit     emitFunc
	stopOnce sync.Once
}

func New(options ...LogOptionFunc) *LogPlugin {
	l := &LogPlugin{
		emit: runtime.EventsEmit,
	}
	for _, option := range options {
		option(l)
	}
	if l.sink == nil {
		l.sink = logging.Webview()
	}
	return l
}

func (l *LogPlugin) Start() error {
	return nil
}

// Stop stops forwarding. Later records are buffered by the sink.
func (l *LogPlugin) Stop() error {
	l.stopOnce.Do(func() {
		l.sink.Detach()
	})
	return nil
}

// OnStartup starts forwarding records to the window runtime.
func (l *LogPlugin) OnStartup(ctx context.Context) {
	l.sink.Attach(func(line string) {
		l.emit(ctx, EventName, line)
	})
	if l.logger != nil {
		l.logger.Debug("forwarding logs to webview", "event", EventName)
	}
}

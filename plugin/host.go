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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/benjerming/AssasinAlarmClock/event"
	"github.com/wailsapp/wails/v2/pkg/options"
	"golang.org/x/sync/errgroup"
)

type namedPlugin struct {
	name   string
	plugin Plugin
}

// Host owns the set of active plugins and fans runtime hooks out to them.
type Host struct {
	plugins  []namedPlugin
	logger   Logger
	stopOnce sync.Once
}

type HostOption func(*Host)

// WithHostLogger specifies the logger object to use for logging messages
func WithHostLogger(logger Logger) HostOption {
	return func(h *Host) {
		h.logger = logger
	}
}

func NewHost(opts ...HostOption) *Host {
	h := &Host{
		logger: slog.Default().With("component", "plugin"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Load instantiates every registered plugin that is enabled.
func (h *Host) Load() error {
	for _, entry := range pluginEntries {
		if !entry.Enabled() {
			h.logger.Debug("plugin disabled", "plugin", entry.Name)
			continue
		}
		p := entry.NewFromOptionsFunc()
		if p == nil {
			return fmt.Errorf("plugin %s: constructor returned nil", entry.Name)
		}
		h.Add(entry.Name, p)
	}
	return nil
}

// Add attaches an already constructed plugin.
func (h *Host) Add(name string, p Plugin) {
	h.plugins = append(h.plugins, namedPlugin{name: name, plugin: p})
}

// Names returns the names of the loaded plugins in load order.
func (h *Host) Names() []string {
	ret := make([]string, 0, len(h.plugins))
	for _, np := range h.plugins {
		ret = append(ret, np.name)
	}
	return ret
}

// Start starts all plugins concurrently and waits for them. The first
// error is returned.
func (h *Host) Start() error {
	var g errgroup.Group
	for _, np := range h.plugins {
		g.Go(func() error {
			if err := np.plugin.Start(); err != nil {
				return fmt.Errorf("failed to start plugin %s: %w", np.name, err)
			}
			h.logger.Debug("plugin started", "plugin", np.name)
			return nil
		})
	}
	return g.Wait()
}

// Stop stops all plugins in reverse load order. Stop is idempotent.
func (h *Host) Stop() error {
	var stopErrors []error
	h.stopOnce.Do(func() {
		for i := len(h.plugins) - 1; i >= 0; i-- {
			np := h.plugins[i]
			if err := np.plugin.Stop(); err != nil {
				stopErrors = append(
					stopErrors,
					fmt.Errorf("failed to stop plugin %s: %w", np.name, err),
				)
			}
		}
	})
	return errors.Join(stopErrors...)
}

// Bindings collects the frontend bindings of all plugins.
func (h *Host) Bindings() []any {
	var ret []any
	for _, np := range h.plugins {
		if b, ok := np.plugin.(Binder); ok {
			ret = append(ret, b.Bindings()...)
		}
	}
	return ret
}

// ConfigureApp lets plugins contribute to the window runtime options.
func (h *Host) ConfigureApp(app *options.App) {
	for _, np := range h.plugins {
		if c, ok := np.plugin.(AppConfigurer); ok {
			c.ConfigureApp(app)
		}
	}
}

// OnStartup hands the window runtime context to plugins that need it.
func (h *Host) OnStartup(ctx context.Context) {
	for _, np := range h.plugins {
		if s, ok := np.plugin.(StartupHook); ok {
			s.OnStartup(ctx)
		}
	}
}

// EventSources returns the event channels of all publishing plugins.
func (h *Host) EventSources() []<-chan event.Event {
	var ret []<-chan event.Event
	for _, np := range h.plugins {
		if s, ok := np.plugin.(EventSource); ok {
			ret = append(ret, s.OutputChan())
		}
	}
	return ret
}

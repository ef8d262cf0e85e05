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

// Package window adapts the Wails runtime to the window operations the
// router and frontend need.
package window

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/benjerming/AssasinAlarmClock/router"
)

// Runtime tracks live windows by label and performs process exit.
type Runtime struct {
	mu           sync.RWMutex
	windows      map[string]context.Context
	driver       driver
	logger       *slog.Logger
	quitHooks    []func()
	quitOnce      sync.Once
	exitCode      atomic.Int32
	exitRequested atomic.Bool
}

type RuntimeOption func(*Runtime)

// WithLogger specifies the logger object to use for logging messages
func WithLogger(logger *slog.Logger) RuntimeOption {
	return func(r *Runtime) {
		r.logger = logger
	}
}

func withDriver(d driver) RuntimeOption {
	return func(r *Runtime) {
		r.driver = d
	}
}

func NewRuntime(opts ...RuntimeOption) *Runtime {
	r := &Runtime{
		windows: make(map[string]context.Context),
		driver:  wailsDriver{},
		logger:  slog.Default().With("component", "window"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register records the runtime context of a window once it has started.
// If an exit was requested before the main window started, registering it
// quits the runtime at once.
func (r *Runtime) Register(label string, ctx context.Context) {
	r.mu.Lock()
	r.windows[label] = ctx
	r.mu.Unlock()
	r.logger.Debug("window registered", "window", label)
	if label == router.MainWindowLabel && r.exitRequested.Load() {
		r.logger.Info("exiting on startup", "code", r.ExitCode())
		r.driver.Quit(ctx)
	}
}

// Unregister forgets a window, typically on shutdown.
func (r *Runtime) Unregister(label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.windows, label)
}

// Window returns a handle to the window with the given label.
func (r *Runtime) Window(label string) (router.Window, bool) {
	w, ok := r.lookup(label)
	if !ok {
		return nil, false
	}
	return w, true
}

func (r *Runtime) lookup(label string) (*Window, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctx, ok := r.windows[label]
	if !ok {
		return nil, false
	}
	return &Window{label: label, ctx: ctx, driver: r.driver}, true
}

// OnQuit registers a hook that runs once, before the process exits.
func (r *Runtime) OnQuit(hook func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quitHooks = append(r.quitHooks, hook)
}

// Exit asks the runtime to terminate the process with the given code.
// Before the main window has started the request is held until Register.
func (r *Runtime) Exit(code int) {
	r.exitCode.Store(int32(code))
	r.exitRequested.Store(true)
	r.quitOnce.Do(func() {
		r.mu.RLock()
		hooks := append([]func(){}, r.quitHooks...)
		r.mu.RUnlock()
		for _, hook := range hooks {
			hook()
		}
	})
	if w, ok := r.lookup(router.MainWindowLabel); ok {
		r.logger.Info("exiting", "code", code)
		r.driver.Quit(w.ctx)
		return
	}
	r.logger.Info("exit deferred until the main window starts", "code", code)
}

// ExitRequested reports whether Exit has been called.
func (r *Runtime) ExitRequested() bool {
	return r.exitRequested.Load()
}

// ExitCode returns the code passed to the most recent Exit call.
func (r *Runtime) ExitCode() int {
	return int(r.exitCode.Load())
}

// Window is a handle to a single runtime window. It is only valid for the
// duration of the event that looked it up.
type Window struct {
	label  string
	ctx    context.Context
	driver driver
}

func (w *Window) Label() string {
	return w.label
}

func (w *Window) Show() error {
	w.driver.Show(w.ctx)
	return nil
}

// Focus raises the window and gives it input focus.
func (w *Window) Focus() error {
	w.driver.Unminimise(w.ctx)
	w.driver.Show(w.ctx)
	return nil
}

func (w *Window) Hide() error {
	w.driver.Hide(w.ctx)
	return nil
}

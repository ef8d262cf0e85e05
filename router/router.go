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

// Package router decides what happens to the main window when tray,
// window and secondary-instance events arrive.
package router

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/benjerming/AssasinAlarmClock/event"
	"github.com/benjerming/AssasinAlarmClock/lifecycle"
)

// Identifiers shared with the tray and window runtime.
const (
	TrayIconID      = "main-tray"
	MenuItemShow    = "tray-show"
	MenuItemQuit    = "tray-quit"
	MainWindowLabel = "main"
)

// Window is a handle to a runtime window. Errors are reported but never
// fatal.
type Window interface {
	Show() error
	Focus() error
	Hide() error
}

// WindowLocator finds a window by its label.
type WindowLocator interface {
	Window(label string) (Window, bool)
}

// Exiter terminates the process with the given status code.
type Exiter interface {
	Exit(code int)
}

// Outcome is the result of handling a single event.
type Outcome struct {
	// Veto is true when the runtime must cancel a pending window close.
	Veto bool
}

type Router struct {
	lifecycle *lifecycle.Lifecycle
	windows   WindowLocator
	exiter    Exiter
	logger    *slog.Logger
	sources   []<-chan event.Event
	eventChan chan event.Event
	doneChan  chan struct{}
	wg        sync.WaitGroup
	stopOnce  sync.Once
}

// RouterOption is a functional option for Router.
type RouterOption func(*Router)

// WithLogger sets the logger used by the router.
func WithLogger(logger *slog.Logger) RouterOption {
	return func(r *Router) {
		r.logger = logger
	}
}

// New creates a Router bound to the given lifecycle and runtime
// collaborators.
func New(
	lc *lifecycle.Lifecycle,
	windows WindowLocator,
	exiter Exiter,
	opts ...RouterOption,
) *Router {
	r := &Router{
		lifecycle: lc,
		windows:   windows,
		exiter:    exiter,
		logger:    slog.Default().With("component", "router"),
		eventChan: make(chan event.Event),
		doneChan:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddSource registers a channel of events to be dispatched once the
// router is started.
func (r *Router) AddSource(source <-chan event.Event) {
	if source == nil {
		return
	}
	r.sources = append(r.sources, source)
}

// Start begins dispatching events from all registered sources. Events are
// handled one at a time on a single goroutine.
func (r *Router) Start() error {
	select {
	case <-r.doneChan:
		return errors.New("cannot start a stopped router")
	default:
	}
	for _, source := range r.sources {
		r.wg.Add(1)
		go r.chanCopyLoop(source)
	}
	r.wg.Add(1)
	go r.dispatchLoop()
	return nil
}

// Stop shuts down the dispatch loop. Stop is idempotent and a stopped
// router cannot be restarted.
func (r *Router) Stop() error {
	r.stopOnce.Do(func() {
		close(r.doneChan)
		r.wg.Wait()
	})
	return nil
}

// CloseRequested handles a close request for the window with the given
// label and reports whether the close must be vetoed.
func (r *Router) CloseRequested(label string) bool {
	return r.Handle(event.NewCloseRequested(label)).Veto
}

// Handle processes a single event synchronously.
func (r *Router) Handle(evt event.Event) Outcome {
	switch evt.Type {
	case event.TypeMenuSelected:
		payload, ok := evt.Payload.(event.MenuSelectedEvent)
		if !ok {
			r.logger.Debug("ignoring malformed menu event", "payload", evt.Payload)
			return Outcome{}
		}
		r.handleMenu(payload.ItemID)
	case event.TypeCloseRequested:
		payload, ok := evt.Payload.(event.CloseRequestedEvent)
		if !ok {
			r.logger.Debug("ignoring malformed close event", "payload", evt.Payload)
			return Outcome{}
		}
		return r.handleCloseRequested(payload.WindowLabel)
	case event.TypeSecondInstance:
		payload, ok := evt.Payload.(event.SecondInstanceEvent)
		if ok {
			r.logger.Info(
				"secondary instance launched",
				"args", payload.Args,
				"cwd", payload.WorkingDirectory,
			)
		}
		r.showMainWindow()
	default:
		r.logger.Debug("ignoring unknown event", "type", evt.Type)
	}
	return Outcome{}
}

func (r *Router) handleMenu(itemID string) {
	switch ParseMenuAction(itemID) {
	case MenuActionShow:
		r.showMainWindow()
	case MenuActionQuit:
		r.logger.Info("quit requested from tray")
		r.lifecycle.MarkTerminateRequested()
		r.exiter.Exit(0)
	default:
		r.logger.Debug("ignoring unknown menu item", "id", itemID)
	}
}

func (r *Router) handleCloseRequested(label string) Outcome {
	if label != MainWindowLabel {
		return Outcome{}
	}
	if r.lifecycle.IsTerminateRequested() {
		return Outcome{}
	}
	if w, ok := r.windows.Window(label); ok {
		if err := w.Hide(); err != nil {
			r.logger.Debug("failed to hide window", "window", label, "error", err)
		}
	}
	r.logger.Debug("main window hidden to tray")
	return Outcome{Veto: true}
}

func (r *Router) showMainWindow() {
	w, ok := r.windows.Window(MainWindowLabel)
	if !ok {
		r.logger.Debug("main window not found")
		return
	}
	if err := w.Show(); err != nil {
		r.logger.Debug("failed to show window", "error", err)
	}
	if err := w.Focus(); err != nil {
		r.logger.Debug("failed to focus window", "error", err)
	}
}

// chanCopyLoop forwards events from a source to the dispatch channel
func (r *Router) chanCopyLoop(source <-chan event.Event) {
	defer r.wg.Done()
	for {
		select {
		case <-r.doneChan:
			return
		case evt, ok := <-source:
			if !ok {
				return
			}
			select {
			case r.eventChan <- evt:
			case <-r.doneChan:
				return
			}
		}
	}
}

func (r *Router) dispatchLoop() {
	defer r.wg.Done()
	for {
		select {
		case <-r.doneChan:
			return
		case evt := <-r.eventChan:
			r.Handle(evt)
		}
	}
}

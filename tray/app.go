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

package tray

import (
	"log/slog"
	"sync"

	"fyne.io/systray"
	"github.com/benjerming/AssasinAlarmClock/event"
	"github.com/benjerming/AssasinAlarmClock/router"
)

// MenuItem describes one entry of the tray menu. An empty ID is a
// separator.
type MenuItem struct {
	ID      string
	Title   string
	Tooltip string
}

// Menu is the tray menu in display order.
var Menu = []MenuItem{
	{ID: router.MenuItemShow, Title: "显示主界面", Tooltip: "显示闹钟主界面"},
	{},
	{ID: router.MenuItemQuit, Title: "退出程序", Tooltip: "退出闹钟程序"},
}

// App holds the tray icon state and publishes menu selections as events.
type App struct {
	tooltip   string
	logger    *slog.Logger
	eventChan chan event.Event
	doneChan  chan struct{}
	start     func()
	end       func()
	startOnce sync.Once
	endOnce   sync.Once
	stopOnce  sync.Once
}

type TrayOption func(*App)

// WithTooltip sets the tray icon tooltip.
func WithTooltip(tooltip string) TrayOption {
	return func(a *App) {
		a.tooltip = tooltip
	}
}

// WithLogger specifies the logger object to use for logging messages
func WithLogger(logger *slog.Logger) TrayOption {
	return func(a *App) {
		a.logger = logger
	}
}

// New creates the tray application. The tray is not shown until Start.
func New(opts ...TrayOption) *App {
	a := &App{
		tooltip:   "assassin-alarm-clock",
		logger:    slog.Default().With("component", "tray"),
		eventChan: make(chan event.Event, 10),
		doneChan:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start shows the tray icon. The tray shares the window runtime's event
// loop, so Start must be called once that loop is running.
func (a *App) Start() {
	a.startOnce.Do(func() {
		a.start, a.end = systray.RunWithExternalLoop(a.onReady, a.onExit)
		a.start()
	})
}

// End removes the tray icon. It is safe to call more than once and
// before Start.
func (a *App) End() {
	a.endOnce.Do(func() {
		if a.end != nil {
			a.end()
		}
	})
}

// Stop ends the tray and stops publishing events.
func (a *App) Stop() {
	a.End()
	a.stopOnce.Do(func() {
		close(a.doneChan)
	})
}

// OutputChan returns the channel of menu selection events.
func (a *App) OutputChan() <-chan event.Event {
	return a.eventChan
}

// onReady is called when the system tray is initialised. It configures
// the tray icon and menu.
func (a *App) onReady() {
	systray.SetIcon(icon)
	systray.SetTooltip(a.tooltip)

	for _, item := range Menu {
		if item.ID == "" {
			systray.AddSeparator()
			continue
		}
		mi := systray.AddMenuItem(item.Title, item.Tooltip)
		go a.forwardClicks(item.ID, mi.ClickedCh)
	}

	a.logger.Info("tray ready", "id", router.TrayIconID)
}

// onExit is called when the system tray is shutting down.
func (a *App) onExit() {
	a.logger.Debug("tray exited")
}

func (a *App) forwardClicks(id string, clicked <-chan struct{}) {
	for {
		select {
		case <-a.doneChan:
			return
		case _, ok := <-clicked:
			if !ok {
				return
			}
			a.publish(id)
		}
	}
}

func (a *App) publish(id string) {
	a.logger.Debug("tray menu clicked", "id", id)
	select {
	case a.eventChan <- event.NewMenuSelected(id):
	case <-a.doneChan:
	}
}

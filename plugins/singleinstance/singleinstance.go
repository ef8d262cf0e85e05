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

package singleinstance

import (
	"sync"

	"github.com/benjerming/AssasinAlarmClock/event"
	"github.com/benjerming/AssasinAlarmClock/internal/config"
	"github.com/benjerming/AssasinAlarmClock/plugin"
	"github.com/google/uuid"
	"github.com/wailsapp/wails/v2/pkg/options"
)

type SingleInstancePlugin struct {
	logger    plugin.Logger
	uniqueID  string
	eventChan chan event.Event
	doneChan  chan struct{}
	stopOnce  sync.Once
}

func New(options ...SingleInstanceOptionFunc) *SingleInstancePlugin {
	s := &SingleInstancePlugin{
		uniqueID:  UniqueID(config.AppIdentifier),
		eventChan: make(chan event.Event, 10),
		doneChan:  make(chan struct{}),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// UniqueID derives a stable lock id from an application identifier.
func UniqueID(identifier string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(identifier)).String()
}

func (s *SingleInstancePlugin) Start() error {
	return nil
}

// Stop stops the plugin. Secondary launches reported afterwards are dropped.
func (s *SingleInstancePlugin) Stop() error {
	s.stopOnce.Do(func() {
		close(s.doneChan)
	})
	return nil
}

// ConfigureApp installs the single instance lock on the window runtime.
func (s *SingleInstancePlugin) ConfigureApp(app *options.App) {
	app.SingleInstanceLock = &options.SingleInstanceLock{
		UniqueId:               s.uniqueID,
		OnSecondInstanceLaunch: s.handleSecondInstance,
	}
}

// OutputChan returns the channel of secondary launch events
func (s *SingleInstancePlugin) OutputChan() <-chan event.Event {
	return s.eventChan
}

func (s *SingleInstancePlugin) handleSecondInstance(data options.SecondInstanceData) {
	if s.logger != nil {
		s.logger.Debug(
			"secondary instance detected",
			"args", data.Args,
			"cwd", data.WorkingDirectory,
		)
	}
	evt := event.NewSecondInstance(data.Args, data.WorkingDirectory)
	select {
	case <-s.doneChan:
	case s.eventChan <- evt:
	}
}

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

package event

import (
	"time"
)

const (
	TypeMenuSelected   = "tray.menu_selected"
	TypeCloseRequested = "window.close_requested"
	TypeSecondInstance = "instance.secondary"
)

type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

func New(eventType string, timestamp time.Time, payload any) Event {
	return Event{
		Type:      eventType,
		Timestamp: timestamp,
		Payload:   payload,
	}
}

// MenuSelectedEvent is published when a tray menu item is clicked.
type MenuSelectedEvent struct {
	ItemID string `json:"itemId"`
}

// CloseRequestedEvent is published when the user clicks a window's close
// control.
type CloseRequestedEvent struct {
	WindowLabel string `json:"windowLabel"`
}

// SecondInstanceEvent is published when the application is launched
// again while this process is running.
type SecondInstanceEvent struct {
	Args             []string `json:"args"`
	WorkingDirectory string   `json:"workingDirectory"`
}

func NewMenuSelected(itemID string) Event {
	return New(TypeMenuSelected, time.Now(), MenuSelectedEvent{ItemID: itemID})
}

func NewCloseRequested(windowLabel string) Event {
	return New(
		TypeCloseRequested,
		time.Now(),
		CloseRequestedEvent{WindowLabel: windowLabel},
	)
}

func NewSecondInstance(args []string, workingDirectory string) Event {
	return New(
		TypeSecondInstance,
		time.Now(),
		SecondInstanceEvent{
			Args:             args,
			WorkingDirectory: workingDirectory,
		},
	)
}

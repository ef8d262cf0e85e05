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

package notification

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/benjerming/AssasinAlarmClock/internal/config"
	"github.com/benjerming/AssasinAlarmClock/plugin"
	"github.com/gen2brain/beeep"
)

//go:embed icon.png
var icon []byte

const (
	PermissionGranted = "granted"
	PermissionDenied  = "denied"
)

var ErrPermissionDenied = errors.New("notification permission denied")

type notifyFunc func(title, message, icon string) error

type NotificationPlugin struct {
	logger   plugin.Logger
	title    string
	iconPath string
	deny     bool
	cacheDir func() (string, error)
	notify   notifyFunc
}

// Options is the notification payload sent by the frontend.
type Options struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon,omitempty"`
}

func New(options ...NotificationOptionFunc) *NotificationPlugin {
	n := &NotificationPlugin{
		title:    config.AppDisplayName,
		cacheDir: os.UserCacheDir,
		notify: func(title, message, icon string) error {
			return beeep.Notify(title, message, icon)
		},
	}
	for _, option := range options {
		option(n)
	}
	return n
}

// Start writes the notification icon to the user cache dir unless an
// icon path was configured.
func (n *NotificationPlugin) Start() error {
	if n.iconPath != "" {
		return nil
	}
	userCacheDir, err := n.cacheDir()
	if err != nil {
		return fmt.Errorf("locating cache dir: %w", err)
	}
	dir := filepath.Join(userCacheDir, config.AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating icon dir: %w", err)
	}
	filename := filepath.Join(dir, "icon.png")
	if err := os.WriteFile(filename, icon, 0o600); err != nil {
		return fmt.Errorf("writing icon: %w", err)
	}
	n.iconPath = filename
	return nil
}

func (n *NotificationPlugin) Stop() error {
	return nil
}

// Bindings exposes the notifier to the frontend.
func (n *NotificationPlugin) Bindings() []any {
	return []any{&Notifier{plugin: n}}
}

// Notifier is the frontend-facing notification API.
type Notifier struct {
	plugin *NotificationPlugin
}

func (n *Notifier) IsPermissionGranted() bool {
	return !n.plugin.deny
}

// RequestPermission reports the permission state. Desktop platforms do
// not prompt, so the answer comes from configuration.
func (n *Notifier) RequestPermission() string {
	if n.plugin.deny {
		return PermissionDenied
	}
	return PermissionGranted
}

// SendNotification shows an operating system notification.
func (n *Notifier) SendNotification(opts Options) error {
	if n.plugin.deny {
		return ErrPermissionDenied
	}
	title := opts.Title
	if title == "" {
		title = n.plugin.title
	}
	iconPath := opts.Icon
	if iconPath == "" {
		iconPath = n.plugin.iconPath
	}
	if err := n.plugin.notify(title, opts.Body, iconPath); err != nil {
		if n.plugin.logger != nil {
			n.plugin.logger.Warn("failed to send notification", "error", err)
		}
		return fmt.Errorf("sending notification: %w", err)
	}
	return nil
}

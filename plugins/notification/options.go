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

import "github.com/benjerming/AssasinAlarmClock/plugin"

type NotificationOptionFunc func(*NotificationPlugin)

// WithLogger specifies the logger object to use for logging messages
func WithLogger(logger plugin.Logger) NotificationOptionFunc {
	return func(n *NotificationPlugin) {
		n.logger = logger
	}
}

// WithTitle specifies the default notification title
func WithTitle(title string) NotificationOptionFunc {
	return func(n *NotificationPlugin) {
		n.title = title
	}
}

// WithIcon specifies an icon file to use instead of the bundled one
func WithIcon(path string) NotificationOptionFunc {
	return func(n *NotificationPlugin) {
		n.iconPath = path
	}
}

// WithDeny makes the plugin refuse to show notifications
func WithDeny(deny bool) NotificationOptionFunc {
	return func(n *NotificationPlugin) {
		n.deny = deny
	}
}

func withNotifyFunc(fn notifyFunc) NotificationOptionFunc {
	return func(n *NotificationPlugin) {
		n.notify = fn
	}
}

func withCacheDir(fn func() (string, error)) NotificationOptionFunc {
	return func(n *NotificationPlugin) {
		n.cacheDir = fn
	}
}

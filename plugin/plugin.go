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

	"github.com/benjerming/AssasinAlarmClock/event"
	"github.com/wailsapp/wails/v2/pkg/options"
)

type Plugin interface {
	Start() error
	Stop() error
}

// Binder is implemented by plugins that expose methods to the frontend.
type Binder interface {
	Bindings() []any
}

// AppConfigurer is implemented by plugins that contribute to the window
// runtime options before it starts.
type AppConfigurer interface {
	ConfigureApp(app *options.App)
}

// StartupHook is implemented by plugins that need the window runtime
// context once it exists.
type StartupHook interface {
	OnStartup(ctx context.Context)
}

// EventSource is implemented by plugins that publish shell events.
type EventSource interface {
	OutputChan() <-chan event.Event
}

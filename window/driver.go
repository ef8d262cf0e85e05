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

package window

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// driver is the subset of the Wails runtime used by this package
type driver interface {
	Show(ctx context.Context)
	Hide(ctx context.Context)
	Unminimise(ctx context.Context)
	Minimise(ctx context.Context)
	ToggleMaximise(ctx context.Context)
	IsMaximised(ctx context.Context) bool
	Quit(ctx context.Context)
}

type wailsDriver struct{}

func (wailsDriver) Show(ctx context.Context) {
	runtime.WindowShow(ctx)
}

func (wailsDriver) Hide(ctx context.Context) {
	runtime.WindowHide(ctx)
}

func (wailsDriver) Unminimise(ctx context.Context) {
	runtime.WindowUnminimise(ctx)
}

func (wailsDriver) Minimise(ctx context.Context) {
	runtime.WindowMinimise(ctx)
}

func (wailsDriver) ToggleMaximise(ctx context.Context) {
	runtime.WindowToggleMaximise(ctx)
}

func (wailsDriver) IsMaximised(ctx context.Context) bool {
	return runtime.WindowIsMaximised(ctx)
}

func (wailsDriver) Quit(ctx context.Context) {
	runtime.Quit(ctx)
}

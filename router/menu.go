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

package router

type MenuAction int

const (
	MenuActionUnknown MenuAction = iota
	MenuActionShow
	MenuActionQuit
)

// ParseMenuAction maps a tray menu item id to its action. Ids that are
// not recognised map to MenuActionUnknown.
func ParseMenuAction(id string) MenuAction {
	switch id {
	case MenuItemShow:
		return MenuActionShow
	case MenuItemQuit:
		return MenuActionQuit
	default:
		return MenuActionUnknown
	}
}

func (a MenuAction) String() string {
	switch a {
	case MenuActionShow:
		return "show"
	case MenuActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

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

//go:build windows

package autostart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/benjerming/AssasinAlarmClock/internal/config"
	"golang.org/x/sys/windows/registry"
)

const runKey = `Software\Microsoft\Windows\CurrentVersion\Run`

// registryManager stores the command line under the current user's Run key
type registryManager struct {
	key     string
	name    string
	command string
}

func newManager(exe string, args []string) (manager, error) {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, `"`+exe+`"`)
	parts = append(parts, args...)
	return &registryManager{
		key:     runKey,
		name:    config.AppDisplayName,
		command: strings.Join(parts, " "),
	}, nil
}

// current returns the stored command line, or "" when there is none
func (m *registryManager) current() (string, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, m.key, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("opening run key: %w", err)
	}
	defer k.Close()
	value, _, err := k.GetStringValue(m.name)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (m *registryManager) IsEnabled() (bool, error) {
	value, err := m.current()
	if err != nil {
		return false, err
	}
	return value != "", nil
}

// Enable stores the command line unless the same one is already there.
func (m *registryManager) Enable() error {
	value, err := m.current()
	if err != nil {
		return err
	}
	if value == m.command {
		return nil
	}
	k, _, err := registry.CreateKey(registry.CURRENT_USER, m.key, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("opening run key: %w", err)
	}
	defer k.Close()
	if err := k.SetStringValue(m.name, m.command); err != nil {
		return fmt.Errorf("writing run value: %w", err)
	}
	return nil
}

func (m *registryManager) Disable() error {
	k, err := registry.OpenKey(registry.CURRENT_USER, m.key, registry.SET_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("opening run key: %w", err)
	}
	defer k.Close()
	if err := k.DeleteValue(m.name); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("removing run value: %w", err)
	}
	return nil
}

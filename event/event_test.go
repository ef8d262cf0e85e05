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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenuSelected(t *testing.T) {
	before := time.Now()
	evt := NewMenuSelected("tray-show")
	assert.Equal(t, TypeMenuSelected, evt.Type)
	assert.False(t, evt.Timestamp.Before(before))
	payload, ok := evt.Payload.(MenuSelectedEvent)
	require.True(t, ok, "payload should be a MenuSelectedEvent")
	assert.Equal(t, "tray-show", payload.ItemID)
}

func TestNewCloseRequested(t *testing.T) {
	evt := NewCloseRequested("main")
	assert.Equal(t, TypeCloseRequested, evt.Type)
	payload, ok := evt.Payload.(CloseRequestedEvent)
	require.True(t, ok, "payload should be a CloseRequestedEvent")
	assert.Equal(t, "main", payload.WindowLabel)
}

func TestNewSecondInstance(t *testing.T) {
	evt := NewSecondInstance([]string{"--autostart"}, "/tmp")
	assert.Equal(t, TypeSecondInstance, evt.Type)
	payload, ok := evt.Payload.(SecondInstanceEvent)
	require.True(t, ok, "payload should be a SecondInstanceEvent")
	assert.Equal(t, []string{"--autostart"}, payload.Args)
	assert.Equal(t, "/tmp", payload.WorkingDirectory)
}

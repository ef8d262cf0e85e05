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

package api

import (
	"testing"

	"github.com/benjerming/AssasinAlarmClock/internal/version"
	"github.com/benjerming/AssasinAlarmClock/lifecycle"
	"github.com/stretchr/testify/assert"
)

func TestGreet(t *testing.T) {
	a := New()
	testDefs := map[string]string{
		"World": "Hello, World! You've been greeted from Go!",
		"":      "Hello, ! You've been greeted from Go!",
		"刺客":    "Hello, 刺客! You've been greeted from Go!",
	}
	for name, expected := range testDefs {
		assert.Equal(t, expected, a.Greet(name))
	}
}

func TestVersion(t *testing.T) {
	assert.Equal(t, version.GetVersionString(), New().Version())
}

func TestStatus(t *testing.T) {
	lc := lifecycle.New()
	a := New(
		WithStateReporter(lc),
		WithPlugins([]string{"notification", "opener"}),
	)
	status := a.Status()
	assert.Equal(t, "resident", status.State)
	assert.Equal(t, []string{"notification", "opener"}, status.Plugins)
	assert.Equal(t, version.GetVersionString(), status.Version)

	lc.MarkTerminateRequested()
	assert.Equal(t, "terminating", a.Status().State)
}

func TestStatusWithoutReporter(t *testing.T) {
	status := New().Status()
	assert.Equal(t, "resident", status.State)
	assert.NotNil(t, status.Plugins)
	assert.Empty(t, status.Plugins)
}

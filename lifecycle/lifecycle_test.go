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

package lifecycle

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStartsResident(t *testing.T) {
	l := New()
	assert.False(t, l.IsTerminateRequested())
	assert.Equal(t, StateResident, l.State())
}

func TestZeroValueStartsResident(t *testing.T) {
	var l Lifecycle
	assert.False(t, l.IsTerminateRequested())
	assert.Equal(t, StateResident, l.State())
}

func TestMarkTerminateRequested(t *testing.T) {
	l := New()
	l.MarkTerminateRequested()
	assert.True(t, l.IsTerminateRequested())
	assert.Equal(t, StateTerminating, l.State())
}

func TestMarkTerminateRequestedIdempotent(t *testing.T) {
	l := New()
	l.MarkTerminateRequested()
	l.MarkTerminateRequested()
	assert.True(t, l.IsTerminateRequested())
	assert.Equal(t, StateTerminating, l.State())
}

func TestConcurrentMarkAndRead(t *testing.T) {
	l := New()
	var wg sync.WaitGroup
	// Readers must never observe a transition back to resident once
	// they have seen the terminating state.
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen := false
			for range 1000 {
				if l.IsTerminateRequested() {
					seen = true
				} else if seen {
					t.Error("exit intent reverted to resident")
					return
				}
			}
		}()
	}
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.MarkTerminateRequested()
		}()
	}
	wg.Wait()
	assert.True(t, l.IsTerminateRequested())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "resident", StateResident.String())
	assert.Equal(t, "terminating", StateTerminating.String())
	assert.Equal(t, "unknown", State(42).String())
}

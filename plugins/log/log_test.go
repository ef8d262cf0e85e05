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

package log

import (
	"context"
	"testing"

	"github.com/benjerming/AssasinAlarmClock/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emitted struct {
	ctx   context.Context
	event string
	data  []any
}

func TestForwardsBacklogAndRecords(t *testing.T) {
	s := logging.NewWebviewSink(10)
	_, err := s.Write([]byte("{\"msg\":\"before window\"}\n"))
	require.NoError(t, err)

	var got []emitted
	l := New(
		withSink(s),
		withEmitFunc(func(ctx context.Context, name string, data ...any) {
			got = append(got, emitted{ctx, name, data})
		}),
	)
	require.NoError(t, l.Start())

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "window")
	l.OnStartup(ctx)
	_, err = s.Write([]byte("{\"msg\":\"after window\"}\n"))
	require.NoError(t, err)

	require.Len(t, got, 2)
	for _, e := range got {
		assert.Equal(t, EventName, e.event)
		assert.Equal(t, "window", e.ctx.Value(ctxKey{}))
	}
	assert.Equal(t, []any{"{\"msg\":\"before window\"}"}, got[0].data)
	assert.Equal(t, []any{"{\"msg\":\"after window\"}"}, got[1].data)

	require.NoError(t, l.Stop())
	require.NoError(t, l.Stop())
	_, err = s.Write([]byte("{\"msg\":\"after stop\"}\n"))
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, []string{"{\"msg\":\"after stop\"}"}, s.Backlog())
}

func TestDefaultsToGlobalSink(t *testing.T) {
	l := New()
	assert.Same(t, logging.Webview(), l.sink)
}

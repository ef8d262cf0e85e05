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
	"errors"
	"sync"
	"testing"

	"github.com/benjerming/AssasinAlarmClock/event"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wailsapp/wails/v2/pkg/options"
)

type fakePlugin struct {
	mu       sync.Mutex
	name     string
	startErr error
	stopErr  error
	started  bool
	stopped  bool
	order    *[]string
	events   chan event.Event
	ctx      context.Context
}

func (p *fakePlugin) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.started = true
	return p.startErr
}

func (p *fakePlugin) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopped = true
	if p.order != nil {
		*p.order = append(*p.order, p.name)
	}
	return p.stopErr
}

func (p *fakePlugin) Bindings() []any {
	return []any{p}
}

func (p *fakePlugin) ConfigureApp(app *options.App) {
	app.Title = p.name
}

func (p *fakePlugin) OnStartup(ctx context.Context) {
	p.ctx = ctx
}

func (p *fakePlugin) OutputChan() <-chan event.Event {
	return p.events
}

// plainPlugin implements only the base interface
type plainPlugin struct{}

func (plainPlugin) Start() error { return nil }
func (plainPlugin) Stop() error  { return nil }

type testOptions struct {
	title  string
	flag   bool
	count  int
	volume uint
}

func registerTestPlugin(t *testing.T, name string) *testOptions {
	t.Helper()
	opts := &testOptions{}
	Register(PluginEntry{
		Name:        name,
		Description: "test plugin",
		NewFromOptionsFunc: func() Plugin {
			return &fakePlugin{name: name}
		},
		Options: []PluginOption{
			{
				Name:         "title",
				Type:         PluginOptionTypeString,
				DefaultValue: "Alarm",
				Dest:         &opts.title,
			},
			{
				Name:         "flag",
				Type:         PluginOptionTypeBool,
				DefaultValue: false,
				Dest:         &opts.flag,
			},
			{
				Name:         "count",
				Type:         PluginOptionTypeInt,
				DefaultValue: 3,
				Dest:         &opts.count,
			},
			{
				Name:         "volume",
				Type:         PluginOptionTypeUint,
				DefaultValue: uint(5),
				Dest:         &opts.volume,
				CustomEnvVar: "TEST_" + name + "_VOLUME",
			},
		},
	})
	return opts
}

func TestRegisterAppliesDefaults(t *testing.T) {
	opts := registerTestPlugin(t, "defaults")
	assert.Equal(t, "Alarm", opts.title)
	assert.False(t, opts.flag)
	assert.Equal(t, 3, opts.count)
	assert.Equal(t, uint(5), opts.volume)
	assert.True(t, IsEnabled("defaults"))
	assert.False(t, IsEnabled("never-registered"))
}

func TestPopulateCmdlineOptions(t *testing.T) {
	opts := registerTestPlugin(t, "flags")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, PopulateCmdlineOptions(fs))
	require.NotNil(t, fs.Lookup("plugin-flags-enabled"))
	require.NoError(t, fs.Parse([]string{
		"--plugin-flags-title", "Wake",
		"--plugin-flags-flag",
		"--plugin-flags-count", "7",
		"--plugin-flags-volume", "9",
	}))
	assert.Equal(t, "Wake", opts.title)
	assert.True(t, opts.flag)
	assert.Equal(t, 7, opts.count)
	assert.Equal(t, uint(9), opts.volume)
}

func TestProcessEnvVars(t *testing.T) {
	opts := registerTestPlugin(t, "env")
	t.Setenv("PLUGIN_ENV_TITLE", "From env")
	t.Setenv("PLUGIN_ENV_FLAG", "true")
	t.Setenv("PLUGIN_ENV_COUNT", "11")
	t.Setenv("TEST_env_VOLUME", "2")
	require.NoError(t, ProcessEnvVars())
	assert.Equal(t, "From env", opts.title)
	assert.True(t, opts.flag)
	assert.Equal(t, 11, opts.count)
	assert.Equal(t, uint(2), opts.volume)
}

func TestProcessEnvVarsInvalid(t *testing.T) {
	registerTestPlugin(t, "badenv")
	t.Setenv("PLUGIN_BADENV_FLAG", "perhaps")
	assert.Error(t, ProcessEnvVars())
}

func TestProcessConfig(t *testing.T) {
	opts := registerTestPlugin(t, "cfg")
	err := ProcessConfig(map[string]map[string]any{
		"cfg": {
			"title":  "From config",
			"flag":   true,
			"count":  4,
			"volume": 8,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "From config", opts.title)
	assert.True(t, opts.flag)
	assert.Equal(t, 4, opts.count)
	assert.Equal(t, uint(8), opts.volume)
}

func TestProcessConfigErrors(t *testing.T) {
	registerTestPlugin(t, "cfgerr")
	tests := map[string]map[string]any{
		"unknown option":  {"colour": "red"},
		"string mismatch": {"title": 1},
		"bool mismatch":   {"flag": "yes"},
		"int mismatch":    {"count": "many"},
		"negative uint":   {"volume": -1},
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			err := ProcessConfig(map[string]map[string]any{"cfgerr": data})
			assert.Error(t, err)
		})
	}
}

func TestDisabledPluginIsNotLoaded(t *testing.T) {
	registerTestPlugin(t, "disabled")
	registerTestPlugin(t, "stillenabled")
	require.NoError(t, ProcessConfig(map[string]map[string]any{
		"disabled": {"enabled": false},
	}))
	assert.False(t, IsEnabled("disabled"))

	h := NewHost()
	require.NoError(t, h.Load())
	assert.NotContains(t, h.Names(), "disabled")
	assert.Contains(t, h.Names(), "stillenabled")
}

func TestGetPlugin(t *testing.T) {
	registerTestPlugin(t, "lookup")
	p := GetPlugin("lookup")
	require.NotNil(t, p)
	assert.Equal(t, "lookup", p.(*fakePlugin).name)
	assert.Nil(t, GetPlugin("missing"))

	var names []string
	for _, entry := range GetPlugins() {
		names = append(names, entry.Name)
	}
	assert.Contains(t, names, "lookup")
}

func TestHostStartStop(t *testing.T) {
	var order []string
	first := &fakePlugin{name: "first", order: &order}
	second := &fakePlugin{name: "second", order: &order}
	h := NewHost()
	h.Add("first", first)
	h.Add("second", second)

	require.NoError(t, h.Start())
	assert.True(t, first.started)
	assert.True(t, second.started)

	require.NoError(t, h.Stop())
	assert.Equal(t, []string{"second", "first"}, order)

	// Stop is idempotent
	require.NoError(t, h.Stop())
	assert.Equal(t, []string{"second", "first"}, order)
}

func TestHostStartError(t *testing.T) {
	h := NewHost()
	h.Add("ok", &fakePlugin{name: "ok"})
	h.Add("broken", &fakePlugin{name: "broken", startErr: errors.New("boom")})
	err := h.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestHostStopJoinsErrors(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	h := NewHost()
	h.Add("a", &fakePlugin{name: "a", stopErr: errA})
	h.Add("b", &fakePlugin{name: "b", stopErr: errB})
	err := h.Stop()
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}

func TestHostOptionalInterfaces(t *testing.T) {
	events := make(chan event.Event)
	fp := &fakePlugin{name: "full", events: events}
	h := NewHost()
	h.Add("full", fp)
	h.Add("plain", plainPlugin{})

	assert.Equal(t, []any{fp}, h.Bindings())

	app := &options.App{}
	h.ConfigureApp(app)
	assert.Equal(t, "full", app.Title)

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "runtime")
	h.OnStartup(ctx)
	assert.Equal(t, ctx, fp.ctx)

	sources := h.EventSources()
	require.Len(t, sources, 1)
	assert.Equal(t, (<-chan event.Event)(events), sources[0])
}

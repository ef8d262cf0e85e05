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

package opener

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/benjerming/AssasinAlarmClock/plugin"
	"github.com/skratchdot/open-golang/open"
)

var (
	ErrUnsupportedScheme = errors.New("unsupported URL scheme")
	ErrRelativePath      = errors.New("path must be absolute")
)

var defaultSchemes = []string{"http", "https", "mailto", "tel"}

type OpenerPlugin struct {
	logger  plugin.Logger
	schemes []string
	open    func(string) error
}

func New(options ...OpenerOptionFunc) *OpenerPlugin {
	o := &OpenerPlugin{
		schemes: defaultSchemes,
		open:    open.Start,
	}
	for _, option := range options {
		option(o)
	}
	return o
}

func (o *OpenerPlugin) Start() error {
	return nil
}

func (o *OpenerPlugin) Stop() error {
	return nil
}

// Bindings exposes the opener to the frontend.
func (o *OpenerPlugin) Bindings() []any {
	return []any{&Opener{plugin: o}}
}

// Opener is the frontend-facing API for handing URLs and files to the
// desktop environment.
type Opener struct {
	plugin *OpenerPlugin
}

// OpenURL opens a URL with the default handler for its scheme.
func (o *Opener) OpenURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parsing URL: %w", err)
	}
	scheme := strings.ToLower(u.Scheme)
	if !slices.Contains(o.plugin.schemes, scheme) {
		return fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
	return o.plugin.start(rawURL)
}

// OpenPath opens an existing local file or directory with its default
// application.
func (o *Opener) OpenPath(path string) error {
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%w: %q", ErrRelativePath, path)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("checking path: %w", err)
	}
	return o.plugin.start(filepath.Clean(path))
}

func (o *OpenerPlugin) start(target string) error {
	if o.logger != nil {
		o.logger.Debug("opening", "target", target)
	}
	if err := o.open(target); err != nil {
		return fmt.Errorf("opening %s: %w", target, err)
	}
	return nil
}

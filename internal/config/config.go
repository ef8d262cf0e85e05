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

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	AppName        = "assassin-alarm-clock"
	AppDisplayName = "Assassin Alarm Clock"
	// AppIdentifier is the reverse-DNS identifier used for OS registration
	AppIdentifier = "com.benjerming.assassin-alarm-clock"

	// AutostartFlag marks a launch triggered by the login item
	AutostartFlag = "autostart"
)

// Log targets
const (
	LogTargetStdout  = "stdout"
	LogTargetLogDir  = "logdir"
	LogTargetWebview = "webview"
)

// Autostart policies
const (
	AutostartPolicyEnable    = "enable"
	AutostartPolicyDisable   = "disable"
	AutostartPolicyUnmanaged = "unmanaged"
)

type Config struct {
	ConfigFile  string                    `yaml:"-" ignored:"true"`
	Version     bool                      `yaml:"-" ignored:"true"`
	Autostarted bool                      `yaml:"-" ignored:"true"`
	LogLevel    string                    `yaml:"-" ignored:"true"`
	Logging     LoggingConfig             `yaml:"logging"`
	Window      WindowConfig              `yaml:"window"`
	Tray        TrayConfig                `yaml:"tray"`
	Autostart   AutostartConfig           `yaml:"autostart"`
	Plugin      map[string]map[string]any `yaml:"plugins" ignored:"true"`
}

type LoggingConfig struct {
	Level   string   `yaml:"level"   envconfig:"ALARM_LOGGING_LEVEL"`
	Targets []string `yaml:"targets" envconfig:"ALARM_LOGGING_TARGETS"`
}

type WindowConfig struct {
	Title       string `yaml:"title"       envconfig:"ALARM_WINDOW_TITLE"`
	Width       int    `yaml:"width"       envconfig:"ALARM_WINDOW_WIDTH"`
	Height      int    `yaml:"height"      envconfig:"ALARM_WINDOW_HEIGHT"`
	MinWidth    int    `yaml:"minWidth"    envconfig:"ALARM_WINDOW_MIN_WIDTH"`
	MinHeight   int    `yaml:"minHeight"   envconfig:"ALARM_WINDOW_MIN_HEIGHT"`
	Frameless   bool   `yaml:"frameless"   envconfig:"ALARM_WINDOW_FRAMELESS"`
	StartHidden bool   `yaml:"startHidden" envconfig:"ALARM_WINDOW_START_HIDDEN"`
}

type TrayConfig struct {
	Tooltip string `yaml:"tooltip" envconfig:"ALARM_TRAY_TOOLTIP"`
}

type AutostartConfig struct {
	// Policy is one of enable, disable or unmanaged
	Policy string `yaml:"policy" envconfig:"ALARM_AUTOSTART_POLICY"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
			Targets: []string{
				LogTargetStdout,
				LogTargetLogDir,
				LogTargetWebview,
			},
		},
		Window: WindowConfig{
			Title:     AppDisplayName,
			Width:     960,
			Height:    720,
			MinWidth:  720,
			MinHeight: 540,
			Frameless: true,
		},
		Tray: TrayConfig{
			Tooltip: AppName,
		},
		Autostart: AutostartConfig{
			Policy: AutostartPolicyEnable,
		},
	}
}

// Singleton config instance with default values
var globalConfig = DefaultConfig()

// BindFlags registers the command line flags that populate the config.
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	if fs == nil {
		return errors.New("nil flag set")
	}
	fs.StringVar(
		&c.ConfigFile,
		"config",
		"",
		"path to config file to load (default: "+ConfigPath()+")",
	)
	fs.BoolVar(&c.Version, "version", false, "show version and exit")
	fs.BoolVar(
		&c.Autostarted,
		AutostartFlag,
		false,
		"launched by the login item, start hidden in the tray",
	)
	fs.StringVar(
		&c.LogLevel,
		"log-level",
		"",
		"log level (debug, info, warn, error), overrides the config file",
	)
	return nil
}

// Load reads the YAML config file, if any, and then applies environment
// variables and command line overrides. When configFile is empty the
// platform config path is used if it exists.
func (c *Config) Load(configFile string) error {
	if configFile == "" && ConfigExists() {
		configFile = ConfigPath()
	}
	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(buf, c); err != nil {
			return fmt.Errorf("error parsing config file: %w", err)
		}
		c.ConfigFile = configFile
	}
	// Load config values from environment variables
	// We use "dummy" as the app name here to (mostly) prevent picking up env
	// vars that we hadn't explicitly specified in annotations above
	if err := envconfig.Process("dummy", c); err != nil {
		return fmt.Errorf("error processing environment: %w", err)
	}
	if c.LogLevel != "" {
		c.Logging.Level = c.LogLevel
	}
	// A login-item launch always begins in the tray
	if c.Autostarted {
		c.Window.StartHidden = true
	}
	return c.Validate()
}

// Validate checks the values that can't be caught by the YAML decoder.
func (c *Config) Validate() error {
	switch c.Autostart.Policy {
	case AutostartPolicyEnable, AutostartPolicyDisable, AutostartPolicyUnmanaged:
	default:
		return fmt.Errorf("invalid autostart policy: %q", c.Autostart.Policy)
	}
	for _, target := range c.Logging.Targets {
		switch target {
		case LogTargetStdout, LogTargetLogDir, LogTargetWebview:
		default:
			return fmt.Errorf("invalid log target: %q", target)
		}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf(
			"invalid window size: %dx%d",
			c.Window.Width,
			c.Window.Height,
		)
	}
	return nil
}

// HasLogTarget reports whether the given log target is enabled.
func (c *Config) HasLogTarget(target string) bool {
	for _, t := range c.Logging.Targets {
		if t == target {
			return true
		}
	}
	return false
}

// GetConfig returns the global config instance
func GetConfig() *Config {
	return globalConfig
}

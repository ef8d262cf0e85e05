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

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"syscall"

	"github.com/benjerming/AssasinAlarmClock/api"
	"github.com/benjerming/AssasinAlarmClock/frontend"
	"github.com/benjerming/AssasinAlarmClock/internal/config"
	"github.com/benjerming/AssasinAlarmClock/internal/logging"
	"github.com/benjerming/AssasinAlarmClock/internal/version"
	"github.com/benjerming/AssasinAlarmClock/lifecycle"
	"github.com/benjerming/AssasinAlarmClock/plugin"
	_ "github.com/benjerming/AssasinAlarmClock/plugins"
	"github.com/benjerming/AssasinAlarmClock/router"
	"github.com/benjerming/AssasinAlarmClock/tray"
	"github.com/benjerming/AssasinAlarmClock/window"
	"github.com/inconshreveable/mousetrap"
	"github.com/spf13/cobra"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"go.uber.org/automaxprocs/maxprocs"
)

var (
	programName string = config.AppName
	cfg                = config.GetConfig()
	exitCode    int
	rootCmd            = &cobra.Command{
		Use:          programName,
		Short:        config.AppDisplayName + " desktop shell",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	pluginsCmd = &cobra.Command{
		Use:   "plugins",
		Short: "list available plugins",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			listPlugins()
		},
	}
)

func slogPrintf(format string, v ...any) {
	slog.Info(fmt.Sprintf(format, v...))
}

func init() {
	if err := cfg.BindFlags(rootCmd.Flags()); err != nil {
		panic(err)
	}
	if err := plugin.PopulateCmdlineOptions(rootCmd.Flags()); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(pluginsCmd)
}

func listPlugins() {
	fmt.Printf("Available plugins:\n\n")
	for _, p := range plugin.GetPlugins() {
		fmt.Printf("%- 16s %s\n", p.Name, p.Description)
	}
}

func run() error {
	if cfg.Version {
		fmt.Printf("%s %s\n", programName, version.GetVersionString())
		return nil
	}

	// Load config
	if err := cfg.Load(cfg.ConfigFile); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// There is no console to write to when launched from Explorer
	if runtime.GOOS == "windows" && mousetrap.StartedByExplorer() {
		cfg.Logging.Targets = slices.DeleteFunc(
			cfg.Logging.Targets,
			func(t string) bool { return t == config.LogTargetStdout },
		)
	}

	// Process config for plugins
	if err := plugin.ProcessConfig(cfg.Plugin); err != nil {
		return fmt.Errorf("failed to process plugin config: %w", err)
	}

	// Process env vars for plugins
	if err := plugin.ProcessEnvVars(); err != nil {
		return fmt.Errorf("failed to process env vars: %w", err)
	}

	// Configure logging
	if err := logging.Configure(cfg.Logging); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}
	defer logging.Close()
	logger := logging.GetLogger()

	// Configure max processes with our logger wrapper, toss undo func
	_, err := maxprocs.Set(maxprocs.Logger(slogPrintf))
	if err != nil {
		// If we hit this, something really wrong happened
		logger.Error(err.Error())
		return err
	}

	logger.Info(
		"starting",
		"version", version.GetVersionString(),
		"autostarted", cfg.Autostarted,
	)

	lc := lifecycle.New()
	rt := window.NewRuntime(
		window.WithLogger(logger.With("component", "window")),
	)
	r := router.New(
		lc,
		rt,
		rt,
		router.WithLogger(logger.With("component", "router")),
	)
	trayApp := tray.New(
		tray.WithTooltip(cfg.Tray.Tooltip),
		tray.WithLogger(logger.With("component", "tray")),
	)
	rt.OnQuit(trayApp.End)

	// Load and start plugins
	host := plugin.NewHost(
		plugin.WithHostLogger(logger.With("component", "plugin")),
	)
	if err := host.Load(); err != nil {
		return fmt.Errorf("failed to load plugins: %w", err)
	}
	if err := host.Start(); err != nil {
		_ = host.Stop()
		return fmt.Errorf("failed to start plugins: %w", err)
	}

	r.AddSource(trayApp.OutputChan())
	for _, source := range host.EventSources() {
		r.AddSource(source)
	}

	apiInstance := api.New(
		api.WithStateReporter(lc),
		api.WithPlugins(host.Names()),
	)
	controls := window.NewControls(rt, r.CloseRequested)

	app := &options.App{
		Title:       cfg.Window.Title,
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		MinWidth:    cfg.Window.MinWidth,
		MinHeight:   cfg.Window.MinHeight,
		Frameless:   cfg.Window.Frameless,
		StartHidden: cfg.Window.StartHidden,
		AssetServer: &assetserver.Options{
			Assets: frontend.Assets(),
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		Logger:           logging.NewWailsLogger(logger),
		LogLevel:         logging.WailsLogLevel(cfg.Logging.Level),
		OnStartup: func(ctx context.Context) {
			// Registering quits at once if a signal arrived earlier
			rt.Register(router.MainWindowLabel, ctx)
			if lc.IsTerminateRequested() {
				return
			}
			host.OnStartup(ctx)
			trayApp.Start()
			if err := r.Start(); err != nil {
				logger.Error("failed to start event router", "error", err)
			}
		},
		OnBeforeClose: func(ctx context.Context) bool {
			return r.CloseRequested(router.MainWindowLabel)
		},
		OnShutdown: func(ctx context.Context) {
			rt.Unregister(router.MainWindowLabel)
		},
		Bind: append(
			[]any{apiInstance, controls},
			host.Bindings()...,
		),
	}
	host.ConfigureApp(app)

	// Handle OS signals as a quit from the tray
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		if _, ok := <-sigChan; !ok {
			return
		}
		logger.Info("received shutdown signal")
		go func() {
			<-sigChan
			logger.Warn("received second signal, forcing exit")
			os.Exit(1)
		}()
		lc.MarkTerminateRequested()
		rt.Exit(0)
	}()

	runErr := wails.Run(app)

	// Shut down in reverse order of startup
	if err := r.Stop(); err != nil {
		logger.Error("failed to stop event router", "error", err)
	}
	trayApp.Stop()
	if err := host.Stop(); err != nil {
		logger.Error("failed to stop plugins", "error", err)
	}
	if runErr != nil {
		logger.Error("window runtime failed", "error", runErr)
		return fmt.Errorf("window runtime failed: %w", runErr)
	}
	exitCode = rt.ExitCode()
	logger.Info("stopped", "code", exitCode)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}

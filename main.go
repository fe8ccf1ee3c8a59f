/*
Headless testbed: a free-look camera over a single lit object. The camera
follows a synthetic mouse sweep and settings.toml is reloaded on every save.
*/
package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/tinyphong/engine"
	"github.com/spaghettifunk/tinyphong/engine/config"
	"github.com/spaghettifunk/tinyphong/engine/core"
	"github.com/spaghettifunk/tinyphong/engine/renderer"
	"github.com/spaghettifunk/tinyphong/testbed"
)

const settingsPath = "settings.toml"

func loadSettings() *config.Settings {
	settings, err := config.Load(settingsPath)
	if err == nil {
		return settings
	}
	if !errors.Is(err, fs.ErrNotExist) {
		core.LogFatal("failed to load settings: %s", err)
	}
	core.LogInfo("%s not found, writing defaults", settingsPath)
	settings = config.Default()
	if err := settings.Save(settingsPath); err != nil {
		core.LogWarn("could not write %s, hot reload disabled: %s", settingsPath, err)
	}
	return settings
}

func main() {
	settings := loadSettings()

	appConfig := &engine.ApplicationConfig{
		Name:            "Tinyphong Testbed",
		TargetFrameRate: 60,
		SettingsPath:    settingsPath,
		LogLevel:        settings.Log.LogLevel(),
	}
	tb := testbed.NewTestGame(appConfig, settings, true)

	e, err := engine.New(tb.Game, settings, renderer.NewHeadlessBackend())
	if err != nil {
		core.LogFatal("%s", err)
	}
	if err := e.Initialize(); err != nil {
		core.LogFatal("%s", err)
	}

	// signal channel to capture system calls
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	// run engine
	if err := e.Run(ctx); err != nil {
		core.LogError("engine stopped: %s", err)
	}

	fps, frameTime := e.Metrics()
	core.LogInfo("last measured %.1f fps (%.2fms per frame)", fps, frameTime)
	if err := e.Shutdown(); err != nil {
		core.LogError("%s", err)
		os.Exit(1)
	}
}

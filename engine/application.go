package engine

import "github.com/spaghettifunk/tinyphong/engine/core"

type ApplicationConfig struct {
	// The application name handed to the renderer backend.
	Name string
	// Frames per second the run loop aims for.
	TargetFrameRate uint32
	// Settings file watched for changes. Empty disables hot reload.
	SettingsPath string
	LogLevel     core.LogLevel
}

package engine

import (
	"github.com/spaghettifunk/tinyphong/engine/config"
	"github.com/spaghettifunk/tinyphong/engine/core"
	"github.com/spaghettifunk/tinyphong/engine/renderer"
	"github.com/spaghettifunk/tinyphong/engine/systems"
)

// Game is the set of hooks the engine drives every frame.
type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnRender          Render
	FnOnResize        OnResize
	FnOnSettings      OnSettings
	FnShutdown        Shutdown
}

type Initialize func(sm *systems.SystemManager, events *core.EventBus) error
type Update func(deltaTime float64, input *core.InputState) error
type Render func(packet *renderer.RenderPacket, deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type OnSettings func(settings *config.Settings) error
type Shutdown func() error

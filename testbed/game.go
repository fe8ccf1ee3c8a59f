package testbed

import (
	"github.com/chewxy/math32"
	"github.com/spaghettifunk/tinyphong/engine"
	"github.com/spaghettifunk/tinyphong/engine/config"
	"github.com/spaghettifunk/tinyphong/engine/core"
	"github.com/spaghettifunk/tinyphong/engine/math"
	"github.com/spaghettifunk/tinyphong/engine/renderer"
	"github.com/spaghettifunk/tinyphong/engine/renderer/components"
	"github.com/spaghettifunk/tinyphong/engine/systems"
)

// Frames between two camera status lines.
const STATUS_INTERVAL uint64 = 60

// Pixels of noise added to each swept cursor sample.
const SWEEP_JITTER float32 = 0.5

type TestGame struct {
	*engine.Game
}

type gameState struct {
	settings *config.Settings
	scene    *Scene
	// Moves the cursor along a slow figure eight when no window feeds input.
	sweep bool
	// Starting angle of the sweep in degrees, picked once per game.
	phase  float32
	frames uint64
	width  uint32
	height uint32
}

var keyMoves = map[core.KeyCode]components.CameraMovement{
	core.KEY_W:      components.CAMERA_FORWARD,
	core.KEY_UP:     components.CAMERA_FORWARD,
	core.KEY_S:      components.CAMERA_BACKWARD,
	core.KEY_DOWN:   components.CAMERA_BACKWARD,
	core.KEY_A:      components.CAMERA_LEFT,
	core.KEY_LEFT:   components.CAMERA_LEFT,
	core.KEY_D:      components.CAMERA_RIGHT,
	core.KEY_RIGHT:  components.CAMERA_RIGHT,
	core.KEY_SPACE:  components.CAMERA_UP,
	core.KEY_LSHIFT: components.CAMERA_DOWN,
}

func NewTestGame(appConfig *engine.ApplicationConfig, settings *config.Settings, sweep bool) *TestGame {
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: appConfig,
			State: &gameState{
				settings: settings,
				sweep:    sweep,
				phase:    float32(math.RandomInRange(0, 359)),
				width:    settings.Projection.Width,
				height:   settings.Projection.Height,
			},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnOnSettings = tg.OnSettings
	tg.FnShutdown = tg.Shutdown

	return tg
}

func (g *TestGame) state() *gameState {
	return g.State.(*gameState)
}

func (g *TestGame) Scene() *Scene {
	return g.state().scene
}

func (g *TestGame) Initialize(sm *systems.SystemManager, events *core.EventBus) error {
	core.LogDebug("TestGame Initialize fn....")
	state := g.state()
	state.scene = NewScene(state.settings, sm)

	events.Register(core.EVENT_CODE_MOUSE_MOVED, g, g.onMouseMoved)
	events.Register(core.EVENT_CODE_KEY_PRESSED, g, g.onKey)
	return nil
}

func (g *TestGame) Update(deltaTime float64, input *core.InputState) error {
	state := g.state()

	if state.sweep {
		t := float32(state.scene.Elapsed()) + math.DegToRad(state.phase)
		x := float32(state.width)*0.5 + 200*math32.Sin(t) + math.FRandomInRange(-SWEEP_JITTER, SWEEP_JITTER)
		y := float32(state.height)*0.5 + 50*math32.Sin(2*t) + math.FRandomInRange(-SWEEP_JITTER, SWEEP_JITTER)
		input.ProcessMouseMove(x, y)
	}

	moves := make([]components.CameraMovement, 0, 2)
	for key, move := range keyMoves {
		if input.IsKeyDown(key) {
			moves = append(moves, move)
		}
	}
	state.scene.Move(moves, float32(deltaTime))
	return nil
}

func (g *TestGame) Render(packet *renderer.RenderPacket, deltaTime float64) error {
	state := g.state()
	packet.Uniforms = state.scene.Uniforms()

	state.frames++
	if state.frames%STATUS_INTERVAL == 0 {
		camera := state.scene.Camera()
		pos := camera.GetPosition()
		front := camera.GetFront()
		core.LogInfo("Pos=[%7.3f %7.3f %7.3f] Front=[%6.3f %6.3f %6.3f] Yaw=%7.2f Pitch=%6.2f Zoom=%.1f",
			pos.X, pos.Y, pos.Z, front.X, front.Y, front.Z, camera.GetYaw(), camera.GetPitch(), camera.GetZoom())
	}
	return nil
}

func (g *TestGame) OnResize(width, height uint32) error {
	state := g.state()
	state.width = width
	state.height = height
	core.LogDebug("testbed resized to %dx%d", width, height)
	return nil
}

func (g *TestGame) OnSettings(settings *config.Settings) error {
	state := g.state()
	if err := state.scene.ApplySettings(settings); err != nil {
		return err
	}
	state.settings = settings
	state.width = settings.Projection.Width
	state.height = settings.Projection.Height
	return nil
}

func (g *TestGame) Shutdown() error {
	core.LogInfo("testbed shutting down after %d frames", g.state().frames)
	return nil
}

func (g *TestGame) onMouseMoved(ctx core.EventContext, sender, listener interface{}) bool {
	me, ok := ctx.Data.(core.MouseEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", ctx.Type)
		return false
	}
	g.state().scene.Look(me.XOffset, me.YOffset)
	return true
}

func (g *TestGame) onKey(ctx core.EventContext, sender, listener interface{}) bool {
	ke, ok := ctx.Data.(core.KeyEvent)
	if !ok {
		return false
	}
	// R puts the camera back where the settings file says.
	if ke.KeyCode == core.KEY_R {
		state := g.state()
		if err := state.scene.ApplySettings(state.settings); err != nil {
			core.LogError("%s", err)
		}
		if input, ok := sender.(*core.InputState); ok {
			input.ResetMouse()
		}
		return true
	}
	return false
}

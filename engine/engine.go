package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spaghettifunk/tinyphong/engine/config"
	"github.com/spaghettifunk/tinyphong/engine/containers"
	"github.com/spaghettifunk/tinyphong/engine/core"
	"github.com/spaghettifunk/tinyphong/engine/renderer"
	"github.com/spaghettifunk/tinyphong/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

const (
	DEFAULT_TARGET_FRAME_RATE uint32 = 60
	MAX_PENDING_INPUT_EVENTS  int    = 256
)

type inputEventKind uint8

const (
	inputEventMouseMove inputEventKind = iota
	inputEventKey
	inputEventResize
	inputEventQuit
)

// inputEvent is platform input waiting to be processed on the run loop.
type inputEvent struct {
	kind    inputEventKind
	x, y    float32
	key     core.KeyCode
	pressed bool
	width   uint32
	height  uint32
}

type Engine struct {
	currentStage  Stage
	gameInstance  *Game
	settings      *config.Settings
	systemManager *systems.SystemManager
	events        *core.EventBus
	input         *core.InputState
	clock         *core.Clock
	metrics       *core.FrameMetrics
	pending       *containers.RingQueue[inputEvent]
	reloads       chan *config.Settings
	watcher       *config.Watcher
	isRunning     bool
	lastTime      float64
}

func New(g *Game, settings *config.Settings, backend renderer.RendererBackend) (*Engine, error) {
	if g.FnUpdate == nil || g.FnRender == nil {
		return nil, fmt.Errorf("game must provide update and render hooks: %w", core.ErrInvalidConfig)
	}
	core.SetLogLevel(g.ApplicationConfig.LogLevel)

	sm, err := systems.NewSystemManager(g.ApplicationConfig.Name, settings, backend)
	if err != nil {
		core.LogError("%s", err)
		return nil, err
	}

	events := core.NewEventBus()
	return &Engine{
		currentStage:  EngineStageUninitialized,
		gameInstance:  g,
		settings:      settings,
		systemManager: sm,
		events:        events,
		input:         core.NewInputState(events),
		clock:         core.NewClock(),
		metrics:       core.NewFrameMetrics(),
		pending:       containers.NewRingQueue[inputEvent](MAX_PENDING_INPUT_EVENTS),
		reloads:       make(chan *config.Settings, 1),
		isRunning:     false,
		lastTime:      0,
	}, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing

	// register some events
	e.events.Register(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)
	e.events.Register(core.EVENT_CODE_KEY_PRESSED, e, e.onKey)

	if path := e.gameInstance.ApplicationConfig.SettingsPath; path != "" {
		w, err := config.NewWatcher(path, e.onSettingsChanged)
		if err != nil {
			core.LogWarn("settings hot reload disabled: %s", err)
		} else {
			e.watcher = w
		}
	}

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(e.systemManager, e.events); err != nil {
			core.LogError("game failed to initialize: %s", err)
			return err
		}
	}

	e.currentStage = EngineStageInitialized
	return nil
}

// QueueMouseMove records a cursor position to be processed on the next frame.
// Safe to call from any goroutine.
func (e *Engine) QueueMouseMove(x, y float32) error {
	return e.pending.Enqueue(inputEvent{kind: inputEventMouseMove, x: x, y: y})
}

func (e *Engine) QueueKey(key core.KeyCode, pressed bool) error {
	return e.pending.Enqueue(inputEvent{kind: inputEventKey, key: key, pressed: pressed})
}

func (e *Engine) QueueResize(width, height uint32) error {
	return e.pending.Enqueue(inputEvent{kind: inputEventResize, width: width, height: height})
}

// Quit stops the run loop at the next frame.
func (e *Engine) Quit() error {
	return e.pending.Enqueue(inputEvent{kind: inputEventQuit})
}

// Run drives frames at the target frame rate until ctx is done or a quit
// event is fired.
func (e *Engine) Run(ctx context.Context) error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("engine must be initialized before running: %w", core.ErrInvalidConfig)
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	watcherDone := make(chan struct{})
	if e.watcher != nil {
		go func() {
			defer close(watcherDone)
			if err := e.watcher.Run(ctx); err != nil && !errors.Is(err, core.ErrWatcherClosed) {
				core.LogError("settings watcher stopped: %s", err)
			}
		}()
	} else {
		close(watcherDone)
	}

	fps := e.gameInstance.ApplicationConfig.TargetFrameRate
	if fps == 0 {
		fps = DEFAULT_TARGET_FRAME_RATE
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	e.currentStage = EngineStageRunning
	e.isRunning = true
	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	var err error
	for e.isRunning && err == nil {
		select {
		case <-ctx.Done():
			e.isRunning = false
		case s := <-e.reloads:
			e.applySettings(s)
		case <-ticker.C:
			err = e.frame()
		}
	}

	cancel()
	<-watcherDone
	e.currentStage = EngineStageInitialized
	return err
}

func (e *Engine) frame() error {
	frameStart := time.Now()

	// Update clock and get delta time.
	e.clock.Update()
	currentTime := e.clock.Elapsed()
	delta := currentTime - e.lastTime

	for _, ev := range e.pending.Drain() {
		e.processInput(ev)
	}
	if !e.isRunning {
		return nil
	}

	if err := e.gameInstance.FnUpdate(delta, e.input); err != nil {
		core.LogError("game update failed, shutting down: %s", err)
		return err
	}

	packet := &renderer.RenderPacket{DeltaTime: delta}
	if err := e.gameInstance.FnRender(packet, delta); err != nil {
		core.LogError("game render failed, shutting down: %s", err)
		return err
	}
	if err := e.systemManager.DrawFrame(packet); err != nil {
		return err
	}

	e.metrics.Update(time.Since(frameStart).Seconds())

	// NOTE: Input update/state copying should always be handled
	// after any input should be recorded; I.E. before this line.
	e.input.Update()

	e.lastTime = currentTime
	return nil
}

func (e *Engine) processInput(ev inputEvent) {
	switch ev.kind {
	case inputEventMouseMove:
		e.input.ProcessMouseMove(ev.x, ev.y)
	case inputEventKey:
		e.input.ProcessKey(ev.key, ev.pressed)
	case inputEventResize:
		e.onResized(ev.width, ev.height)
	case inputEventQuit:
		e.events.Fire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT}, e)
	}
}

// onSettingsChanged runs on the watcher goroutine; the settings are handed
// over to the run loop, keeping only the newest.
func (e *Engine) onSettingsChanged(s *config.Settings) {
	select {
	case e.reloads <- s:
	default:
		select {
		case <-e.reloads:
		default:
		}
		e.reloads <- s
	}
}

func (e *Engine) applySettings(s *config.Settings) {
	core.SetLogLevel(s.Log.LogLevel())
	e.settings = s
	// The camera is rebuilt from the template, so the next cursor sample must not turn it.
	e.input.ResetMouse()
	if e.gameInstance.FnOnSettings != nil {
		if err := e.gameInstance.FnOnSettings(s); err != nil {
			core.LogError("game rejected reloaded settings: %s", err)
			return
		}
	}
	e.events.Fire(core.EventContext{Type: core.EVENT_CODE_SETTINGS_RELOADED, Data: s}, e)
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	if e.watcher != nil {
		if err := e.watcher.Close(); err != nil {
			return err
		}
	}
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			return err
		}
	}
	e.events.Shutdown()
	if err := e.systemManager.Shutdown(); err != nil {
		return err
	}
	e.currentStage = EngineStageUninitialized
	return nil
}

func (e *Engine) Settings() *config.Settings {
	return e.settings
}

// Metrics returns the frames per second and the average frame time in ms.
func (e *Engine) Metrics() (float64, float64) {
	return e.metrics.Frame()
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) onEvent(ctx core.EventContext, sender, listener interface{}) bool {
	switch ctx.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.isRunning = false
		return true
	}
	return false
}

func (e *Engine) onKey(ctx core.EventContext, sender, listener interface{}) bool {
	ke, ok := ctx.Data.(core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", ctx.Type)
		return false
	}
	if ke.KeyCode == core.KEY_ESCAPE {
		// NOTE: Technically firing an event to itself, but there may be other listeners.
		e.events.Fire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT}, e)
		// Block anything else from processing this.
		return true
	}
	return false
}

func (e *Engine) onResized(width, height uint32) {
	if width == 0 || height == 0 {
		core.LogInfo("ignoring resize to %dx%d", width, height)
		return
	}
	core.LogDebug("resize: %d, %d", width, height)
	if err := e.systemManager.OnResize(width, height); err != nil {
		core.LogError("%s", err)
		return
	}
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(width, height); err != nil {
			core.LogError("%s", err)
		}
	}
}

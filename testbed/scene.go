package testbed

import (
	"github.com/spaghettifunk/tinyphong/engine/config"
	"github.com/spaghettifunk/tinyphong/engine/core"
	"github.com/spaghettifunk/tinyphong/engine/renderer"
	"github.com/spaghettifunk/tinyphong/engine/renderer/components"
	"github.com/spaghettifunk/tinyphong/engine/systems"
)

// Scene is a single lit object seen through the default free-look camera.
type Scene struct {
	systemManager *systems.SystemManager
	settings      *config.Settings
	camera        *components.Camera
	clock         *core.Clock
}

func NewScene(settings *config.Settings, sm *systems.SystemManager) *Scene {
	s := &Scene{
		systemManager: sm,
		settings:      settings,
		camera:        sm.CameraSystem().GetDefault(),
		clock:         core.NewClock(),
	}
	s.clock.Start()
	return s
}

func (s *Scene) Camera() *components.Camera {
	return s.camera
}

// Look applies freecam offsets, constraining pitch when the settings ask for it.
func (s *Scene) Look(xOffset, yOffset float32) {
	s.camera.Freecam(xOffset, yOffset, s.settings.Camera.ConstrainPitch)
}

// Move steps the camera along each direction for deltaTime.
func (s *Scene) Move(moves []components.CameraMovement, deltaTime float32) {
	for _, m := range moves {
		s.camera.Step(m, deltaTime)
	}
}

// Uniforms returns what the lighting pass needs for the current camera.
func (s *Scene) Uniforms() renderer.FrameUniforms {
	return renderer.NewFrameUniforms(s.camera, s.systemManager.RendererSystem().Projection(), s.settings.Light.PositionVec3())
}

// ApplySettings re-initializes the camera and the projection from reloaded settings.
func (s *Scene) ApplySettings(settings *config.Settings) error {
	if err := s.systemManager.ApplySettings(settings); err != nil {
		return err
	}
	s.settings = settings
	core.LogInfo("scene settings applied: camera at %v, zoom %.1f", s.camera.GetPosition(), s.camera.GetZoom())
	return nil
}

// Elapsed is the time in seconds since the scene was created.
func (s *Scene) Elapsed() float64 {
	s.clock.Update()
	return s.clock.Elapsed()
}

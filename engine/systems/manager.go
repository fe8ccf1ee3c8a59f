package systems

import (
	"github.com/spaghettifunk/tinyphong/engine/config"
	"github.com/spaghettifunk/tinyphong/engine/core"
	"github.com/spaghettifunk/tinyphong/engine/renderer"
)

// SystemManager owns the camera system and the renderer frontend.
type SystemManager struct {
	cameraSystem   *CameraSystem
	rendererSystem *renderer.Renderer
}

// CameraTemplateFromSettings converts the [camera] section into a template.
func CameraTemplateFromSettings(c config.CameraSettings) CameraTemplate {
	return CameraTemplate{
		Position:    c.PositionVec3(),
		Up:          c.UpVec3(),
		Yaw:         c.Yaw,
		Pitch:       c.Pitch,
		Roll:        c.Roll,
		Zoom:        c.Zoom,
		Speed:       c.Speed,
		Sensitivity: c.Sensitivity,
	}
}

func NewSystemManager(appName string, settings *config.Settings, backend renderer.RendererBackend) (*SystemManager, error) {
	cs, err := NewCameraSystem(CameraSystemConfig{
		MaxCameraCount: settings.System.MaxCameraCount,
		Template:       CameraTemplateFromSettings(settings.Camera),
	})
	if err != nil {
		return nil, err
	}
	rs, err := renderer.New(appName, settings.Projection, backend)
	if err != nil {
		return nil, err
	}
	return &SystemManager{
		cameraSystem:   cs,
		rendererSystem: rs,
	}, nil
}

func (sm *SystemManager) CameraSystem() *CameraSystem {
	return sm.cameraSystem
}

func (sm *SystemManager) RendererSystem() *renderer.Renderer {
	return sm.rendererSystem
}

// ApplySettings pushes reloaded settings into every system: the default
// camera is rebuilt from the new template and the projection is replaced.
// The camera slot count is fixed for the life of the system.
func (sm *SystemManager) ApplySettings(settings *config.Settings) error {
	if count := settings.System.MaxCameraCount; count != sm.cameraSystem.MaxCameraCount() {
		core.LogWarn("system.max_camera_count changed from %d to %d; it only applies after a restart",
			sm.cameraSystem.MaxCameraCount(), count)
	}
	sm.cameraSystem.SetTemplate(CameraTemplateFromSettings(settings.Camera))
	if err := sm.rendererSystem.SetProjection(settings.Projection); err != nil {
		core.LogError("failed to apply projection settings: %s", err)
		return err
	}
	return nil
}

func (sm *SystemManager) DrawFrame(packet *renderer.RenderPacket) error {
	return sm.rendererSystem.DrawFrame(packet)
}

func (sm *SystemManager) OnResize(width, height uint32) error {
	return sm.rendererSystem.OnResize(width, height)
}

func (sm *SystemManager) Shutdown() error {
	if err := sm.rendererSystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.cameraSystem.Shutdown(); err != nil {
		return err
	}
	return nil
}

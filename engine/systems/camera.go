package systems

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/spaghettifunk/tinyphong/engine/core"
	"github.com/spaghettifunk/tinyphong/engine/math"
	"github.com/spaghettifunk/tinyphong/engine/renderer/components"
)

/**
 * @brief The values every camera created by the system starts from.
 * Speed and sensitivity are applied on top of the camera defaults.
 */
type CameraTemplate struct {
	Position    math.Vec3
	Up          math.Vec3
	Yaw         float32
	Pitch       float32
	Roll        float32
	Zoom        float32
	Speed       float32
	Sensitivity float32
}

// DefaultCameraTemplate matches components.NewCamera at the origin.
func DefaultCameraTemplate() CameraTemplate {
	return CameraTemplate{
		Position:    math.NewVec3Zero(),
		Up:          math.NewVec3Up(),
		Yaw:         components.DEFAULT_YAW,
		Pitch:       components.DEFAULT_PITCH,
		Roll:        components.DEFAULT_ROLL,
		Zoom:        components.DEFAULT_ZOOM,
		Speed:       components.DEFAULT_SPEED,
		Sensitivity: components.DEFAULT_SENSITIVITY,
	}
}

func (t CameraTemplate) NewCamera() *components.Camera {
	c := components.NewCameraFull(t.Position, t.Up, t.Yaw, t.Pitch, t.Roll, t.Zoom)
	c.SetSpeed(t.Speed)
	c.SetSensitivity(t.Sensitivity)
	return c
}

/** @brief The camera system configuration. */
type CameraSystemConfig struct {
	/**
	 * @brief NOTE: The maximum number of cameras that can be managed by
	 * the system. The default camera does not count against it.
	 */
	MaxCameraCount uint16
	Template       CameraTemplate
}

/**
 * @brief Owns named, reference counted cameras plus a default camera that
 * always exists. Safe for concurrent use; the cameras it hands out are not.
 */
type CameraSystem struct {
	mu       sync.Mutex
	config   CameraSystemConfig
	lookup   map[string]uint16
	cameras  []*components.CameraLookup
	template CameraTemplate
	// A default, non-registered camera that always exists as a fallback.
	defaultCamera *components.Camera
}

/**
 * @brief Initializes the camera system.
 *
 * @param config The configuration for this system.
 * @return The system, or ErrInvalidConfig when MaxCameraCount is zero.
 */
func NewCameraSystem(config CameraSystemConfig) (*CameraSystem, error) {
	if config.MaxCameraCount == 0 || config.MaxCameraCount == core.InvalidIDUint16 {
		err := fmt.Errorf("max camera count must be in [1, %d): %w", core.InvalidIDUint16, core.ErrInvalidConfig)
		core.LogError("%s", err)
		return nil, err
	}
	cs := &CameraSystem{
		config:   config,
		cameras:  make([]*components.CameraLookup, config.MaxCameraCount),
		lookup:   make(map[string]uint16, config.MaxCameraCount),
		template: config.Template,
	}
	// Invalidate all cameras in the array.
	for i := uint16(0); i < config.MaxCameraCount; i++ {
		cs.cameras[i] = &components.CameraLookup{
			ID:             core.InvalidIDUint16,
			ReferenceCount: 0,
		}
	}
	// Setup default camera.
	cs.defaultCamera = config.Template.NewCamera()
	core.LogDebug("camera system initialized with %d slots", config.MaxCameraCount)
	return cs, nil
}

/**
 * @brief Shuts down the camera system, dropping every registered camera.
 */
func (cs *CameraSystem) Shutdown() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for name, id := range cs.lookup {
		cs.cameras[id].Camera = nil
		cs.cameras[id].ID = core.InvalidIDUint16
		cs.cameras[id].ReferenceCount = 0
		delete(cs.lookup, name)
	}
	return nil
}

/**
 * @brief Acquires a pointer to a camera by name.
 * If one is not found, a new one is created from the template and returned.
 * Internal reference counter is incremented.
 *
 * @param name The name of the camera to acquire.
 * @return The camera, or ErrCameraSystemFull when every slot is taken.
 */
func (cs *CameraSystem) Acquire(name string) (*components.Camera, error) {
	if name == components.DEFAULT_CAMERA_NAME {
		return cs.GetDefault(), nil
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()

	id, ok := cs.lookup[name]
	if !ok {
		// Find free slot
		id = core.InvalidIDUint16
		for i := uint16(0); i < cs.config.MaxCameraCount; i++ {
			if cs.cameras[i].ID == core.InvalidIDUint16 {
				id = i
				break
			}
		}
		if id == core.InvalidIDUint16 {
			err := fmt.Errorf("acquire camera '%s': %w", name, core.ErrCameraSystemFull)
			core.LogError("%s. Adjust the camera system config to allow more.", err)
			return nil, err
		}

		// Create/register the new camera.
		core.LogDebug("creating new camera named '%s'", name)
		cs.cameras[id].Camera = cs.template.NewCamera()
		cs.cameras[id].ID = id
		cs.lookup[name] = id
	}
	cs.cameras[id].ReferenceCount++
	return cs.cameras[id].Camera, nil
}

/**
 * @brief Acquires a camera under a freshly generated unique name.
 *
 * @return The generated name, to be passed to Release, and the camera.
 */
func (cs *CameraSystem) AcquireUnique() (string, *components.Camera, error) {
	name := uuid.NewString()
	c, err := cs.Acquire(name)
	if err != nil {
		return "", nil, err
	}
	return name, c, nil
}

/**
 * @brief Releases a camera with the given name. Internal reference
 * counter is decremented. If this reaches 0, the camera is reset,
 * and the slot is usable by a new camera.
 *
 * @param name The name of the camera to release.
 */
func (cs *CameraSystem) Release(name string) error {
	if name == components.DEFAULT_CAMERA_NAME {
		core.LogDebug("cannot release default camera. Nothing was done.")
		return nil
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()

	id, ok := cs.lookup[name]
	if !ok {
		err := fmt.Errorf("release camera '%s': %w", name, core.ErrCameraNotFound)
		core.LogWarn("%s", err)
		return err
	}
	// Decrement the reference count, and reset the camera if the counter reaches 0.
	cs.cameras[id].ReferenceCount--
	if cs.cameras[id].ReferenceCount < 1 {
		cs.cameras[id].Camera.Reset()
		cs.cameras[id].Camera = nil
		cs.cameras[id].ID = core.InvalidIDUint16
		delete(cs.lookup, name)
	}
	return nil
}

// ReferenceCount reports how many holders a named camera has.
func (cs *CameraSystem) ReferenceCount(name string) (uint16, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	id, ok := cs.lookup[name]
	if !ok {
		return 0, fmt.Errorf("camera '%s': %w", name, core.ErrCameraNotFound)
	}
	return cs.cameras[id].ReferenceCount, nil
}

func (cs *CameraSystem) Count() int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return len(cs.lookup)
}

/**
 * @brief Gets a pointer to the default camera.
 *
 * @return A pointer to the default camera.
 */
func (cs *CameraSystem) GetDefault() *components.Camera {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.defaultCamera
}

/**
 * @brief Replaces the template for cameras created from now on and rebuilds
 * the default camera in place, so existing holders of it see the change.
 * Registered cameras keep their current state.
 */
func (cs *CameraSystem) SetTemplate(t CameraTemplate) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.template = t
	*cs.defaultCamera = *t.NewCamera()
}

func (cs *CameraSystem) Template() CameraTemplate {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.template
}

// MaxCameraCount is the slot count fixed when the system was created.
func (cs *CameraSystem) MaxCameraCount() uint16 {
	return cs.config.MaxCameraCount
}

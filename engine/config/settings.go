package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/tinyphong/engine/core"
	"github.com/spaghettifunk/tinyphong/engine/math"
)

// Settings is the content of a settings file. Keys missing from the file keep
// the values from Default.
type Settings struct {
	Camera     CameraSettings     `toml:"camera"`
	Projection ProjectionSettings `toml:"projection"`
	Light      LightSettings      `toml:"light"`
	Log        LogSettings        `toml:"log"`
	System     SystemSettings     `toml:"system"`
}

type CameraSettings struct {
	Position       [3]float32 `toml:"position"`
	Up             [3]float32 `toml:"up"`
	Yaw            float32    `toml:"yaw"`
	Pitch          float32    `toml:"pitch"`
	Roll           float32    `toml:"roll"`
	Zoom           float32    `toml:"zoom"`
	Sensitivity    float32    `toml:"sensitivity"`
	Speed          float32    `toml:"speed"`
	ConstrainPitch bool       `toml:"constrain_pitch"`
}

type ProjectionSettings struct {
	Width  uint32  `toml:"width"`
	Height uint32  `toml:"height"`
	Near   float32 `toml:"near"`
	Far    float32 `toml:"far"`
}

type LightSettings struct {
	Position [3]float32 `toml:"position"`
}

type LogSettings struct {
	Level string `toml:"level"`
}

type SystemSettings struct {
	MaxCameraCount uint16 `toml:"max_camera_count"`
}

// Default returns the settings of the stock scene: a camera three units
// behind the origin looking down -Z, an 800x600 viewport and a light just
// above the origin.
func Default() *Settings {
	return &Settings{
		Camera: CameraSettings{
			Position:       [3]float32{0, 0, -3},
			Up:             [3]float32{0, 1, 0},
			Yaw:            -90,
			Pitch:          0,
			Roll:           0,
			Zoom:           45,
			Sensitivity:    0.2,
			Speed:          0.1,
			ConstrainPitch: true,
		},
		Projection: ProjectionSettings{
			Width:  800,
			Height: 600,
			Near:   0.1,
			Far:    100,
		},
		Light: LightSettings{
			Position: [3]float32{0, 0.1, 0},
		},
		Log: LogSettings{
			Level: "info",
		},
		System: SystemSettings{
			MaxCameraCount: 61,
		},
	}
}

// Load reads and validates the settings file at path.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes TOML on top of Default and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (*Settings, error) {
	s := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: %s", core.ErrInvalidSettings, strict.String())
		}
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidSettings, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes s to path as TOML.
func (s *Settings) Save(path string) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate reports every problem found, each wrapping core.ErrInvalidSettings.
func (s *Settings) Validate() error {
	var errs []error
	invalid := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("%w: %s", core.ErrInvalidSettings, fmt.Sprintf(format, args...)))
	}

	if s.Camera.UpVec3().LengthSquared() == 0 {
		invalid("camera.up must not be the zero vector")
	}
	if s.Camera.Zoom <= 0 || s.Camera.Zoom >= 180 {
		invalid("camera.zoom must be in (0, 180), got %v", s.Camera.Zoom)
	}
	if s.Camera.Sensitivity < 0 {
		invalid("camera.sensitivity must not be negative, got %v", s.Camera.Sensitivity)
	}
	if s.Camera.Speed < 0 {
		invalid("camera.speed must not be negative, got %v", s.Camera.Speed)
	}
	if s.Projection.Width == 0 || s.Projection.Height == 0 {
		invalid("projection size must be non-zero, got %dx%d", s.Projection.Width, s.Projection.Height)
	}
	if s.Projection.Near <= 0 {
		invalid("projection.near must be positive, got %v", s.Projection.Near)
	}
	if s.Projection.Far <= s.Projection.Near {
		invalid("projection.far (%v) must be greater than projection.near (%v)", s.Projection.Far, s.Projection.Near)
	}
	if _, err := core.ParseLogLevel(s.Log.Level); err != nil {
		invalid("log.level %q: %v", s.Log.Level, err)
	}
	if s.System.MaxCameraCount == 0 || s.System.MaxCameraCount == core.InvalidIDUint16 {
		invalid("system.max_camera_count must be in [1, %d), got %d", core.InvalidIDUint16, s.System.MaxCameraCount)
	}
	return errors.Join(errs...)
}

func (c CameraSettings) PositionVec3() math.Vec3 {
	return math.NewVec3(c.Position[0], c.Position[1], c.Position[2])
}

func (c CameraSettings) UpVec3() math.Vec3 {
	return math.NewVec3(c.Up[0], c.Up[1], c.Up[2])
}

// Aspect is width over height, computed in floating point.
func (p ProjectionSettings) Aspect() float32 {
	return float32(p.Width) / float32(p.Height)
}

func (l LightSettings) PositionVec3() math.Vec3 {
	return math.NewVec3(l.Position[0], l.Position[1], l.Position[2])
}

// LogLevel returns the parsed log level, falling back to info.
func (l LogSettings) LogLevel() core.LogLevel {
	level, err := core.ParseLogLevel(l.Level)
	if err != nil {
		return core.LOG_LEVEL_INFO
	}
	return level
}

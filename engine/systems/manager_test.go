package systems

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/spaghettifunk/tinyphong/engine/config"
	"github.com/spaghettifunk/tinyphong/engine/core"
	"github.com/spaghettifunk/tinyphong/engine/math"
	"github.com/spaghettifunk/tinyphong/engine/renderer"
)

func TestSystemManagerFromSettings(t *testing.T) {
	settings := config.Default()
	sm, err := NewSystemManager("test", settings, renderer.NewHeadlessBackend())
	if err != nil {
		t.Fatal(err)
	}
	defer sm.Shutdown()

	def := sm.CameraSystem().GetDefault()
	if def.GetPosition() != math.NewVec3(0, 0, -3) || def.GetZoom() != 45 {
		t.Fatalf("default camera = %v zoom %v", def.GetPosition(), def.GetZoom())
	}

	next := config.Default()
	next.Camera.Position = [3]float32{1, 1, 1}
	next.Projection.Width = 1024
	if err := sm.ApplySettings(next); err != nil {
		t.Fatal(err)
	}
	if def.GetPosition() != math.NewVec3(1, 1, 1) {
		t.Errorf("default camera not updated: %v", def.GetPosition())
	}
	if sm.RendererSystem().Projection().Width != 1024 {
		t.Errorf("projection not updated: %+v", sm.RendererSystem().Projection())
	}
}

func TestSystemManagerRejectsZeroCameras(t *testing.T) {
	settings := config.Default()
	settings.System.MaxCameraCount = 0
	_, err := NewSystemManager("test", settings, renderer.NewHeadlessBackend())
	if !errors.Is(err, core.ErrInvalidConfig) {
		t.Fatalf("err = %v", err)
	}
}

func TestSystemManagerRejectsInvalidIDCameraCount(t *testing.T) {
	settings := config.Default()
	settings.System.MaxCameraCount = core.InvalidIDUint16
	if err := settings.Validate(); !errors.Is(err, core.ErrInvalidSettings) {
		t.Fatalf("validate err = %v", err)
	}
	_, err := NewSystemManager("test", settings, renderer.NewHeadlessBackend())
	if !errors.Is(err, core.ErrInvalidConfig) {
		t.Fatalf("err = %v", err)
	}
}

func TestApplySettingsKeepsCameraCount(t *testing.T) {
	settings := config.Default()
	sm, err := NewSystemManager("test", settings, renderer.NewHeadlessBackend())
	if err != nil {
		t.Fatal(err)
	}
	defer sm.Shutdown()

	var buf bytes.Buffer
	core.SetLogOutput(&buf)
	defer core.SetLogOutput(os.Stderr)

	next := config.Default()
	next.System.MaxCameraCount = 10
	if err := sm.ApplySettings(next); err != nil {
		t.Fatal(err)
	}
	if got := sm.CameraSystem().MaxCameraCount(); got != settings.System.MaxCameraCount {
		t.Errorf("max camera count = %d, want %d", got, settings.System.MaxCameraCount)
	}
	if !strings.Contains(buf.String(), "max_camera_count") {
		t.Errorf("no warning about the ignored camera count: %q", buf.String())
	}
}

package systems

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/spaghettifunk/tinyphong/engine/core"
	"github.com/spaghettifunk/tinyphong/engine/math"
	"github.com/spaghettifunk/tinyphong/engine/renderer/components"
)

func newTestSystem(t *testing.T, max uint16) *CameraSystem {
	t.Helper()
	cs, err := NewCameraSystem(CameraSystemConfig{
		MaxCameraCount: max,
		Template:       DefaultCameraTemplate(),
	})
	if err != nil {
		t.Fatalf("NewCameraSystem: %v", err)
	}
	return cs
}

func TestNewCameraSystemRejectsZeroCount(t *testing.T) {
	_, err := NewCameraSystem(CameraSystemConfig{Template: DefaultCameraTemplate()})
	if !errors.Is(err, core.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestAcquireIsReferenceCounted(t *testing.T) {
	cs := newTestSystem(t, 4)

	a, err := cs.Acquire("world")
	if err != nil {
		t.Fatal(err)
	}
	b, err := cs.Acquire("world")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatal("same name returned different cameras")
	}
	if n, _ := cs.ReferenceCount("world"); n != 2 {
		t.Fatalf("reference count = %d, want 2", n)
	}

	other, err := cs.Acquire("ui")
	if err != nil {
		t.Fatal(err)
	}
	if other == a {
		t.Fatal("different names share a camera")
	}
	if cs.Count() != 2 {
		t.Fatalf("count = %d, want 2", cs.Count())
	}

	a.MoveForward(5)
	if err := cs.Release("world"); err != nil {
		t.Fatal(err)
	}
	if n, _ := cs.ReferenceCount("world"); n != 1 {
		t.Fatalf("reference count = %d, want 1", n)
	}
	if err := cs.Release("world"); err != nil {
		t.Fatal(err)
	}
	if _, err := cs.ReferenceCount("world"); !errors.Is(err, core.ErrCameraNotFound) {
		t.Fatalf("released camera still registered: %v", err)
	}
	if a.GetPosition() != math.NewVec3Zero() {
		t.Errorf("released camera was not reset: %v", a.GetPosition())
	}

	again, err := cs.Acquire("world")
	if err != nil {
		t.Fatal(err)
	}
	if again.GetPosition() != math.NewVec3Zero() {
		t.Errorf("reacquired camera carries old state: %v", again.GetPosition())
	}
}

func TestAcquireFull(t *testing.T) {
	cs := newTestSystem(t, 2)
	for _, name := range []string{"a", "b"} {
		if _, err := cs.Acquire(name); err != nil {
			t.Fatalf("acquire %s: %v", name, err)
		}
	}
	if _, err := cs.Acquire("c"); !errors.Is(err, core.ErrCameraSystemFull) {
		t.Fatalf("err = %v, want ErrCameraSystemFull", err)
	}
	// Existing names still resolve when full.
	if _, err := cs.Acquire("a"); err != nil {
		t.Fatalf("acquire existing: %v", err)
	}

	if err := cs.Release("b"); err != nil {
		t.Fatal(err)
	}
	if _, err := cs.Acquire("c"); err != nil {
		t.Fatalf("slot was not freed: %v", err)
	}
}

func TestReleaseUnknown(t *testing.T) {
	cs := newTestSystem(t, 1)
	if err := cs.Release("nope"); !errors.Is(err, core.ErrCameraNotFound) {
		t.Fatalf("err = %v, want ErrCameraNotFound", err)
	}
}

func TestDefaultCamera(t *testing.T) {
	cs := newTestSystem(t, 1)
	def, err := cs.Acquire(components.DEFAULT_CAMERA_NAME)
	if err != nil {
		t.Fatal(err)
	}
	if def != cs.GetDefault() {
		t.Fatal("default name did not return the default camera")
	}
	if err := cs.Release(components.DEFAULT_CAMERA_NAME); err != nil {
		t.Fatal(err)
	}
	// The default camera does not use a slot.
	if _, err := cs.Acquire("only"); err != nil {
		t.Fatalf("acquire with default in use: %v", err)
	}
}

func TestAcquireUnique(t *testing.T) {
	cs := newTestSystem(t, 8)
	name1, c1, err := cs.AcquireUnique()
	if err != nil {
		t.Fatal(err)
	}
	name2, c2, err := cs.AcquireUnique()
	if err != nil {
		t.Fatal(err)
	}
	if name1 == name2 || c1 == c2 {
		t.Fatalf("unique acquisitions collided: %s %s", name1, name2)
	}
	if _, err := uuid.Parse(name1); err != nil {
		t.Errorf("generated name %q is not a uuid: %v", name1, err)
	}
	if err := cs.Release(name1); err != nil {
		t.Fatal(err)
	}
}

func TestTemplateAppliesToNewCameras(t *testing.T) {
	cs := newTestSystem(t, 4)
	before, _ := cs.Acquire("before")

	tmpl := DefaultCameraTemplate()
	tmpl.Position = math.NewVec3(0, 0, -3)
	tmpl.Zoom = 60
	tmpl.Sensitivity = 0.5
	def := cs.GetDefault()
	cs.SetTemplate(tmpl)

	if def.GetPosition() != tmpl.Position || def.GetZoom() != 60 || def.GetSensitivity() != 0.5 {
		t.Errorf("default camera not rebuilt in place: %v zoom %v", def.GetPosition(), def.GetZoom())
	}
	after, _ := cs.Acquire("after")
	if after.GetPosition() != tmpl.Position {
		t.Errorf("new camera position = %v", after.GetPosition())
	}
	if before.GetPosition() != math.NewVec3Zero() {
		t.Errorf("existing camera changed: %v", before.GetPosition())
	}
	if cs.Template() != tmpl {
		t.Errorf("template = %+v", cs.Template())
	}
}

func TestAcquireConcurrent(t *testing.T) {
	cs := newTestSystem(t, 4)
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cs.Acquire("shared"); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	if n, _ := cs.ReferenceCount("shared"); n != 32 {
		t.Fatalf("reference count = %d, want 32", n)
	}
}

func TestShutdown(t *testing.T) {
	cs := newTestSystem(t, 2)
	cs.Acquire("a")
	cs.Acquire("b")
	if err := cs.Shutdown(); err != nil {
		t.Fatal(err)
	}
	if cs.Count() != 0 {
		t.Fatalf("count after shutdown = %d", cs.Count())
	}
}

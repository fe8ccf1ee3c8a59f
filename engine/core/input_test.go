package core

import "testing"

func TestMouseLookFirstEventIsSuppressed(t *testing.T) {
	m := NewMouseLook()

	x, y := m.Process(400, 300)
	if x != 0 || y != 0 {
		t.Fatalf("first event offsets = (%v, %v), want zero", x, y)
	}

	x, y = m.Process(410, 290)
	if x != 10 || y != 10 {
		t.Fatalf("offsets = (%v, %v), want (10, 10)", x, y)
	}

	// Moving the cursor down the screen looks down.
	x, y = m.Process(405, 320)
	if x != -5 || y != -30 {
		t.Fatalf("offsets = (%v, %v), want (-5, -30)", x, y)
	}

	m.Reset()
	x, y = m.Process(0, 0)
	if x != 0 || y != 0 {
		t.Fatalf("offsets after reset = (%v, %v), want zero", x, y)
	}
}

func TestInputStateKeys(t *testing.T) {
	bus := NewEventBus()
	var pressed, released []KeyCode
	bus.Register(EVENT_CODE_KEY_PRESSED, "pressed", func(ctx EventContext, sender, listener interface{}) bool {
		pressed = append(pressed, ctx.Data.(KeyEvent).KeyCode)
		return true
	})
	bus.Register(EVENT_CODE_KEY_RELEASED, "released", func(ctx EventContext, sender, listener interface{}) bool {
		released = append(released, ctx.Data.(KeyEvent).KeyCode)
		return true
	})

	s := NewInputState(bus)
	s.ProcessKey(KEY_W, true)
	s.ProcessKey(KEY_W, true)
	if !s.IsKeyDown(KEY_W) || s.WasKeyDown(KEY_W) {
		t.Fatalf("W state: down=%v wasDown=%v", s.IsKeyDown(KEY_W), s.WasKeyDown(KEY_W))
	}

	s.Update()
	s.ProcessKey(KEY_W, false)
	if !s.IsKeyUp(KEY_W) || !s.WasKeyDown(KEY_W) {
		t.Fatalf("W state after release: up=%v wasDown=%v", s.IsKeyUp(KEY_W), s.WasKeyDown(KEY_W))
	}

	if len(pressed) != 1 || pressed[0] != KEY_W {
		t.Errorf("pressed events = %v, want one W", pressed)
	}
	if len(released) != 1 || released[0] != KEY_W {
		t.Errorf("released events = %v, want one W", released)
	}
}

func TestInputStateMouseMoveFiresOffsets(t *testing.T) {
	bus := NewEventBus()
	var got []MouseEvent
	bus.Register(EVENT_CODE_MOUSE_MOVED, nil, func(ctx EventContext, sender, listener interface{}) bool {
		got = append(got, ctx.Data.(MouseEvent))
		return false
	})

	s := NewInputState(bus)
	s.ProcessMouseMove(100, 100)
	xOffset, yOffset := s.ProcessMouseMove(103, 96)
	if xOffset != 3 || yOffset != 4 {
		t.Fatalf("offsets = (%v, %v)", xOffset, yOffset)
	}
	if len(got) != 2 {
		t.Fatalf("got %d mouse events, want 2", len(got))
	}
	if got[0].XOffset != 0 || got[0].YOffset != 0 {
		t.Errorf("first event carried offsets: %+v", got[0])
	}
	if got[1].XOffset != 3 || got[1].YOffset != 4 || got[1].X != 103 {
		t.Errorf("second event = %+v", got[1])
	}
}

func TestInputStateResetMouse(t *testing.T) {
	s := NewInputState(nil)
	s.ProcessMouseMove(100, 100)
	s.ProcessMouseMove(150, 100)

	s.ResetMouse()
	if x, y := s.ProcessMouseMove(900, 900); x != 0 || y != 0 {
		t.Fatalf("offsets after reset = (%v, %v), want zero", x, y)
	}
	if x, y := s.ProcessMouseMove(905, 900); x != 5 || y != 0 {
		t.Fatalf("offsets = (%v, %v), want (5, 0)", x, y)
	}
}

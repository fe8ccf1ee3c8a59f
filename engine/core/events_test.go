package core

import "testing"

func TestEventBusRegisterFire(t *testing.T) {
	bus := NewEventBus()
	calls := 0
	handler := func(ctx EventContext, sender, listener interface{}) bool {
		calls++
		return false
	}

	if !bus.Register(EVENT_CODE_APPLICATION_QUIT, "a", handler) {
		t.Fatal("first registration failed")
	}
	if bus.Register(EVENT_CODE_APPLICATION_QUIT, "a", handler) {
		t.Fatal("duplicate listener registered twice")
	}
	if bus.Register(EVENT_CODE_APPLICATION_QUIT, "b", nil) {
		t.Fatal("nil callback registered")
	}
	bus.Register(EVENT_CODE_APPLICATION_QUIT, "b", handler)

	if bus.Fire(EventContext{Type: EVENT_CODE_APPLICATION_QUIT}, nil) {
		t.Error("Fire reported handled, no handler returned true")
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}

	if bus.Fire(EventContext{Type: EVENT_CODE_KEY_PRESSED}, nil) {
		t.Error("Fire with no listeners reported handled")
	}
}

func TestEventBusHandledStopsPropagation(t *testing.T) {
	bus := NewEventBus()
	var order []string
	bus.Register(EVENT_CODE_SETTINGS_RELOADED, "first", func(ctx EventContext, sender, listener interface{}) bool {
		order = append(order, listener.(string))
		return true
	})
	bus.Register(EVENT_CODE_SETTINGS_RELOADED, "second", func(ctx EventContext, sender, listener interface{}) bool {
		order = append(order, listener.(string))
		return true
	})

	if !bus.Fire(EventContext{Type: EVENT_CODE_SETTINGS_RELOADED}, nil) {
		t.Fatal("event not handled")
	}
	if len(order) != 1 || order[0] != "first" {
		t.Fatalf("order = %v", order)
	}

	if !bus.Unregister(EVENT_CODE_SETTINGS_RELOADED, "first") {
		t.Fatal("unregister failed")
	}
	if bus.Unregister(EVENT_CODE_SETTINGS_RELOADED, "first") {
		t.Fatal("unregistered twice")
	}
	bus.Fire(EventContext{Type: EVENT_CODE_SETTINGS_RELOADED}, nil)
	if len(order) != 2 || order[1] != "second" {
		t.Fatalf("order after unregister = %v", order)
	}

	bus.Shutdown()
	if bus.Fire(EventContext{Type: EVENT_CODE_SETTINGS_RELOADED}, nil) {
		t.Fatal("event handled after shutdown")
	}
}

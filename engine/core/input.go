package core

import "sync"

// Key code definitions
type KeyCode uint16

const (
	KEY_ENTER     KeyCode = 0x0D
	KEY_TAB       KeyCode = 0x09
	KEY_SHIFT     KeyCode = 0x10
	KEY_ESCAPE    KeyCode = 0x1B
	KEY_SPACE     KeyCode = 0x20
	KEY_LEFT      KeyCode = 0x25
	KEY_UP        KeyCode = 0x26
	KEY_RIGHT     KeyCode = 0x27
	KEY_DOWN      KeyCode = 0x28
	KEY_A         KeyCode = 0x41
	KEY_D         KeyCode = 0x44
	KEY_E         KeyCode = 0x45
	KEY_Q         KeyCode = 0x51
	KEY_R         KeyCode = 0x52
	KEY_S         KeyCode = 0x53
	KEY_W         KeyCode = 0x57
	KEY_LSHIFT    KeyCode = 0xA0
	KEY_LCONTROL  KeyCode = 0xA2
	KEYS_MAX_KEYS KeyCode = 0x100
)

// Keyboard state structure
type KeyboardState struct {
	Keys [KEYS_MAX_KEYS]bool
}

/**
 * @brief Turns absolute cursor positions into freecam offsets. The first
 * position only primes the tracker and yields zero offsets, so the camera
 * does not jump when the cursor enters the window.
 */
type MouseLook struct {
	lastX      float32
	lastY      float32
	firstMouse bool
}

func NewMouseLook() *MouseLook {
	return &MouseLook{firstMouse: true}
}

// Process returns the offsets for the cursor at (x, y). Screen Y grows
// downward, so yOffset is positive when the cursor moves up.
func (m *MouseLook) Process(x, y float32) (xOffset, yOffset float32) {
	if m.firstMouse {
		m.lastX = x
		m.lastY = y
		m.firstMouse = false
	}
	xOffset = x - m.lastX
	yOffset = m.lastY - y
	m.lastX = x
	m.lastY = y
	return xOffset, yOffset
}

// Reset makes the next Process call prime the tracker again.
func (m *MouseLook) Reset() {
	m.firstMouse = true
}

// Input state structure that holds current and previous keyboard states and
// the mouse look tracker.
type InputState struct {
	mu               sync.Mutex
	keyboardCurrent  KeyboardState
	keyboardPrevious KeyboardState
	mouse            *MouseLook
	bus              *EventBus
}

// NewInputState creates the input state. Events are fired on bus when it is not nil.
func NewInputState(bus *EventBus) *InputState {
	return &InputState{
		mouse: NewMouseLook(),
		bus:   bus,
	}
}

// Update copies the current states to the previous ones. Call once per frame.
func (s *InputState) Update() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyboardPrevious = s.keyboardCurrent
}

func (s *InputState) IsKeyDown(key KeyCode) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keyboardCurrent.Keys[key]
}

func (s *InputState) IsKeyUp(key KeyCode) bool {
	return !s.IsKeyDown(key)
}

func (s *InputState) WasKeyDown(key KeyCode) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keyboardPrevious.Keys[key]
}

func (s *InputState) WasKeyUp(key KeyCode) bool {
	return !s.WasKeyDown(key)
}

func (s *InputState) ProcessKey(key KeyCode, pressed bool) {
	if key >= KEYS_MAX_KEYS {
		LogWarn("ignoring out of range key code 0x%X", uint16(key))
		return
	}
	s.mu.Lock()
	changed := s.keyboardCurrent.Keys[key] != pressed
	s.keyboardCurrent.Keys[key] = pressed
	s.mu.Unlock()

	// Only fire if the state actually changed.
	if !changed || s.bus == nil {
		return
	}
	code := EVENT_CODE_KEY_RELEASED
	if pressed {
		code = EVENT_CODE_KEY_PRESSED
	}
	s.bus.Fire(EventContext{Type: code, Data: KeyEvent{KeyCode: key}}, s)
}

// ResetMouse makes the next mouse move prime the tracker instead of turning the camera.
func (s *InputState) ResetMouse() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mouse.Reset()
}

// ProcessMouseMove feeds the cursor position to the mouse look tracker and
// fires EVENT_CODE_MOUSE_MOVED with the resulting offsets.
func (s *InputState) ProcessMouseMove(x, y float32) (xOffset, yOffset float32) {
	s.mu.Lock()
	xOffset, yOffset = s.mouse.Process(x, y)
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Fire(EventContext{
			Type: EVENT_CODE_MOUSE_MOVED,
			Data: MouseEvent{X: x, Y: y, XOffset: xOffset, YOffset: yOffset},
		}, s)
	}
	return xOffset, yOffset
}

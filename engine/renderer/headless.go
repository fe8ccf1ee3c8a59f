package renderer

import (
	"sync"

	"github.com/spaghettifunk/tinyphong/engine/core"
)

// HeadlessBackend is a RendererBackend without a window. It keeps the last
// value written to every uniform, which is what a GPU-side uniform would hold.
type HeadlessBackend struct {
	mutex   sync.RWMutex
	mat4s   map[string][16]float32
	vec3s   map[string][3]float32
	width   uint32
	height  uint32
	inFrame bool
	frames  uint64
}

func NewHeadlessBackend() *HeadlessBackend {
	return &HeadlessBackend{
		mat4s: make(map[string][16]float32),
		vec3s: make(map[string][3]float32),
	}
}

func (b *HeadlessBackend) Initialize(appName string, appWidth, appHeight uint32) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.width, b.height = appWidth, appHeight
	core.LogInfo("headless renderer initialized for '%s' at %dx%d", appName, appWidth, appHeight)
	return nil
}

func (b *HeadlessBackend) Shutdown() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.mat4s = make(map[string][16]float32)
	b.vec3s = make(map[string][3]float32)
	return nil
}

func (b *HeadlessBackend) Resized(width, height uint32) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.width, b.height = width, height
	return nil
}

func (b *HeadlessBackend) BeginFrame(deltaTime float64) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.inFrame = true
	return nil
}

func (b *HeadlessBackend) EndFrame(deltaTime float64) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if !b.inFrame {
		return core.ErrFrameNotStarted
	}
	b.inFrame = false
	b.frames++
	return nil
}

func (b *HeadlessBackend) SetMat4(name string, data [16]float32) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.mat4s[name] = data
}

func (b *HeadlessBackend) SetVec3(name string, data [3]float32) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.vec3s[name] = data
}

func (b *HeadlessBackend) Mat4(name string) ([16]float32, bool) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	m, ok := b.mat4s[name]
	return m, ok
}

func (b *HeadlessBackend) Vec3(name string) ([3]float32, bool) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	v, ok := b.vec3s[name]
	return v, ok
}

func (b *HeadlessBackend) Size() (uint32, uint32) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return b.width, b.height
}

// Frames is the number of completed frames.
func (b *HeadlessBackend) Frames() uint64 {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return b.frames
}

package renderer

import (
	"sync"

	"github.com/spaghettifunk/tinyphong/engine/config"
	"github.com/spaghettifunk/tinyphong/engine/core"
)

// RenderPacket carries what a single frame draws.
type RenderPacket struct {
	DeltaTime float64
	Uniforms  FrameUniforms
}

// Renderer is the frontend: it owns the projection settings and drives the
// backend through a frame.
type Renderer struct {
	mutex      sync.Mutex
	backend    RendererBackend
	projection config.ProjectionSettings
}

func New(appName string, projection config.ProjectionSettings, backend RendererBackend) (*Renderer, error) {
	if err := backend.Initialize(appName, projection.Width, projection.Height); err != nil {
		core.LogError("renderer backend failed to initialize: %s", err)
		return nil, err
	}
	return &Renderer{
		backend:    backend,
		projection: projection,
	}, nil
}

func (r *Renderer) Shutdown() error {
	return r.backend.Shutdown()
}

// Projection returns the projection settings currently in effect.
func (r *Renderer) Projection() config.ProjectionSettings {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.projection
}

// SetProjection replaces near/far and the viewport size, resizing the backend
// when the size changed.
func (r *Renderer) SetProjection(projection config.ProjectionSettings) error {
	r.mutex.Lock()
	resized := projection.Width != r.projection.Width || projection.Height != r.projection.Height
	r.projection = projection
	r.mutex.Unlock()

	if resized {
		return r.backend.Resized(projection.Width, projection.Height)
	}
	return nil
}

func (r *Renderer) OnResize(width, height uint32) error {
	r.mutex.Lock()
	r.projection.Width = width
	r.projection.Height = height
	r.mutex.Unlock()
	return r.backend.Resized(width, height)
}

func (r *Renderer) DrawFrame(renderPacket *RenderPacket) error {
	if err := r.backend.BeginFrame(renderPacket.DeltaTime); err != nil {
		core.LogError("%s", err)
		return err
	}
	renderPacket.Uniforms.Upload(r.backend)
	if err := r.backend.EndFrame(renderPacket.DeltaTime); err != nil {
		core.LogError("RendererEndFrame failed: %s", err)
		return err
	}
	return nil
}

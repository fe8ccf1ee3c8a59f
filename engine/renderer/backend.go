package renderer

// RendererBackend is the graphics API side of the renderer. Window and
// context creation live behind it.
type RendererBackend interface {
	UniformSink
	Initialize(appName string, appWidth, appHeight uint32) error
	Shutdown() error
	Resized(width, height uint32) error
	BeginFrame(deltaTime float64) error
	EndFrame(deltaTime float64) error
}

package renderer

import (
	"github.com/spaghettifunk/tinyphong/engine/config"
	"github.com/spaghettifunk/tinyphong/engine/math"
	"github.com/spaghettifunk/tinyphong/engine/renderer/components"
)

// Uniform names shared with the lighting shaders.
const (
	UNIFORM_PROJECTION = "projection"
	UNIFORM_VIEW       = "view"
	UNIFORM_VIEW_POS   = "view_pos"
	UNIFORM_LIGHT_POS  = "light_pos"
)

// UniformSink receives named shader uniforms. Matrices arrive as the 16
// floats of math.Mat4.Data, in storage order.
type UniformSink interface {
	SetMat4(name string, data [16]float32)
	SetVec3(name string, data [3]float32)
}

/**
 * @brief Builds the projection matrix for a vertical field of view given in
 * degrees.
 */
func Projection(zoomDegrees, aspect, near, far float32) math.Mat4 {
	return math.NewMat4Perspective(math.DegToRad(zoomDegrees), aspect, near, far)
}

// FrameUniforms is everything the lighting pass needs from the camera each frame.
type FrameUniforms struct {
	Projection math.Mat4
	View       math.Mat4
	ViewPos    math.Vec3
	LightPos   math.Vec3
}

func NewFrameUniforms(camera *components.Camera, projection config.ProjectionSettings, lightPos math.Vec3) FrameUniforms {
	return FrameUniforms{
		Projection: Projection(camera.GetZoom(), projection.Aspect(), projection.Near, projection.Far),
		View:       camera.GetView(),
		ViewPos:    camera.GetPosition(),
		LightPos:   lightPos,
	}
}

// Upload writes the four uniforms to sink.
func (u FrameUniforms) Upload(sink UniformSink) {
	sink.SetMat4(UNIFORM_PROJECTION, u.Projection.Data)
	sink.SetMat4(UNIFORM_VIEW, u.View.Data)
	sink.SetVec3(UNIFORM_VIEW_POS, u.ViewPos.ToArray())
	sink.SetVec3(UNIFORM_LIGHT_POS, u.LightPos.ToArray())
}

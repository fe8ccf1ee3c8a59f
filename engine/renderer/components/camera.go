package components

import (
	"github.com/chewxy/math32"
	"github.com/spaghettifunk/tinyphong/engine/math"
)

const (
	/** @brief Default yaw in degrees; points the initial front vector along -Z. */
	DEFAULT_YAW float32 = -90.0
	/** @brief Default pitch in degrees. */
	DEFAULT_PITCH float32 = 0.0
	/** @brief Default roll in degrees. Roll is stored but not applied to the basis. */
	DEFAULT_ROLL float32 = 0.0
	/** @brief Default movement speed, in world units per unit of elapsed time. */
	DEFAULT_SPEED float32 = 0.1
	/** @brief Default scale applied to raw mouse offsets. */
	DEFAULT_SENSITIVITY float32 = 0.2
	/** @brief Default field of view in degrees. */
	DEFAULT_ZOOM float32 = 45.0
	/** @brief Pitch limit in degrees applied by constrained freecam updates. */
	PITCH_LIMIT float32 = 89.0
)

/** @brief The name of the default camera. */
const DEFAULT_CAMERA_NAME string = "default"

// CameraMovement names a direction along the camera basis for Step.
type CameraMovement uint8

const (
	CAMERA_FORWARD CameraMovement = iota
	CAMERA_BACKWARD
	CAMERA_LEFT
	CAMERA_RIGHT
	CAMERA_UP
	CAMERA_DOWN
)

/**
 * @brief A free-look camera. Orientation is kept as Euler angles in degrees,
 * and the front/up/right basis is derived from them on every change. The
 * basis is never written from outside; use the setters, which recompute it
 * before returning.
 *
 * A Camera is not safe for concurrent use.
 */
type Camera struct {
	position math.Vec3
	front    math.Vec3
	up       math.Vec3
	right    math.Vec3
	worldUp  math.Vec3

	yaw   float32
	pitch float32
	roll  float32
	zoom  float32

	speed       float32
	sensitivity float32

	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	isDirty    bool
	viewMatrix math.Mat4
}

type CameraLookup struct {
	ID             uint16
	ReferenceCount uint16
	Camera         *Camera
}

/**
 * @brief Creates a camera at position with every other parameter at its default:
 * world up (0, 1, 0), yaw -90, pitch 0, roll 0, zoom 45.
 */
func NewCamera(position math.Vec3) *Camera {
	return NewCameraFull(position, math.NewVec3Up(), DEFAULT_YAW, DEFAULT_PITCH, DEFAULT_ROLL, DEFAULT_ZOOM)
}

/**
 * @brief Creates a camera from caller supplied values. The world up reference
 * is copied from up.
 */
func NewCameraFull(position, up math.Vec3, yaw, pitch, roll, zoom float32) *Camera {
	c := &Camera{
		speed:       DEFAULT_SPEED,
		sensitivity: DEFAULT_SENSITIVITY,
	}
	c.initialize(position, up, yaw, pitch, roll, zoom)
	return c
}

// NewCameraFullScalars is NewCameraFull taking individual components.
func NewCameraFullScalars(posX, posY, posZ, upX, upY, upZ, yaw, pitch, roll, zoom float32) *Camera {
	return NewCameraFull(math.NewVec3(posX, posY, posZ), math.NewVec3(upX, upY, upZ), yaw, pitch, roll, zoom)
}

func (c *Camera) initialize(position, up math.Vec3, yaw, pitch, roll, zoom float32) {
	c.position = position
	c.up = up
	c.worldUp = up
	c.yaw = yaw
	c.pitch = pitch
	c.roll = roll
	c.zoom = zoom
	c.updateVectors()
}

/**
 * @brief Puts the camera back to the position-only defaults at the origin.
 * Speed and sensitivity are left alone.
 */
func (c *Camera) Reset() {
	c.initialize(math.NewVec3Zero(), math.NewVec3Up(), DEFAULT_YAW, DEFAULT_PITCH, DEFAULT_ROLL, DEFAULT_ZOOM)
}

// updateVectors derives front, right and up from yaw, pitch and world up.
func (c *Camera) updateVectors() {
	yaw := math.DegToRad(c.yaw)
	pitch := math.DegToRad(c.pitch)

	front := math.NewVec3(
		math32.Cos(yaw)*math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw)*math32.Cos(pitch),
	)
	c.front = front.Normalized()
	// Parallel front and world up leave right (and so up) as the zero vector.
	c.right = c.front.Cross(c.worldUp).Normalized()
	c.up = c.right.Cross(c.front).Normalized()
	c.isDirty = true
}

func (c *Camera) GetPosition() math.Vec3 {
	return c.position
}

func (c *Camera) SetPosition(position math.Vec3) {
	c.position = position
	c.isDirty = true
}

func (c *Camera) GetFront() math.Vec3 {
	return c.front
}

func (c *Camera) GetUp() math.Vec3 {
	return c.up
}

func (c *Camera) GetRight() math.Vec3 {
	return c.right
}

func (c *Camera) GetWorldUp() math.Vec3 {
	return c.worldUp
}

func (c *Camera) GetYaw() float32 {
	return c.yaw
}

func (c *Camera) SetYaw(yaw float32) {
	c.yaw = yaw
	c.updateVectors()
}

func (c *Camera) GetPitch() float32 {
	return c.pitch
}

func (c *Camera) SetPitch(pitch float32) {
	c.pitch = pitch
	c.updateVectors()
}

func (c *Camera) GetRoll() float32 {
	return c.roll
}

func (c *Camera) SetRoll(roll float32) {
	c.roll = roll
	c.updateVectors()
}

// SetEulerAngles sets yaw, pitch and roll (degrees) and recomputes the basis once.
func (c *Camera) SetEulerAngles(yaw, pitch, roll float32) {
	c.yaw = yaw
	c.pitch = pitch
	c.roll = roll
	c.updateVectors()
}

// GetZoom returns the vertical field of view in degrees.
func (c *Camera) GetZoom() float32 {
	return c.zoom
}

func (c *Camera) SetZoom(zoom float32) {
	c.zoom = zoom
}

func (c *Camera) GetSpeed() float32 {
	return c.speed
}

func (c *Camera) SetSpeed(speed float32) {
	c.speed = speed
}

func (c *Camera) GetSensitivity() float32 {
	return c.sensitivity
}

func (c *Camera) SetSensitivity(sensitivity float32) {
	c.sensitivity = sensitivity
}

/**
 * @brief Reports whether the basis collapsed because front ended up parallel
 * to world up. The right and up vectors are zero in that case.
 */
func (c *Camera) IsDegenerate() bool {
	return c.right.LengthSquared() == 0
}

/**
 * @brief Returns the view matrix looking from the camera position towards a
 * point one unit ahead along front. Rebuilt only after the camera changed.
 */
func (c *Camera) GetView() math.Mat4 {
	if c.isDirty {
		c.viewMatrix = math.NewMat4LookAt(c.position, c.position.Add(c.front), c.up)
		c.isDirty = false
	}
	return c.viewMatrix
}

/**
 * @brief Mouse-look update. Both offsets are scaled by the camera sensitivity
 * and added to yaw and pitch. When constrainPitch is set, pitch is clamped to
 * [-89, 89] so the front vector never reaches world up. Yaw is left free.
 *
 * @param xOffset Horizontal pixel delta.
 * @param yOffset Vertical pixel delta, positive looks up.
 * @param constrainPitch Clamp pitch after applying the offset.
 */
func (c *Camera) Freecam(xOffset, yOffset float32, constrainPitch bool) {
	xOffset *= c.sensitivity
	yOffset *= c.sensitivity

	c.yaw += xOffset
	c.pitch += yOffset

	if constrainPitch {
		c.pitch = math.Clamp(c.pitch, -PITCH_LIMIT, PITCH_LIMIT)
	}

	c.updateVectors()
}

func (c *Camera) move(direction math.Vec3, amount float32) {
	c.position = c.position.Add(direction.Scale(amount))
	c.isDirty = true
}

func (c *Camera) MoveForward(amount float32) {
	c.move(c.front, amount)
}

func (c *Camera) MoveBackward(amount float32) {
	c.move(c.front.Negate(), amount)
}

func (c *Camera) MoveLeft(amount float32) {
	c.move(c.right.Negate(), amount)
}

func (c *Camera) MoveRight(amount float32) {
	c.move(c.right, amount)
}

func (c *Camera) MoveUp(amount float32) {
	c.move(c.worldUp, amount)
}

func (c *Camera) MoveDown(amount float32) {
	c.move(c.worldUp.Negate(), amount)
}

// Step moves the camera in direction by speed * deltaTime.
func (c *Camera) Step(direction CameraMovement, deltaTime float32) {
	amount := c.speed * deltaTime
	switch direction {
	case CAMERA_FORWARD:
		c.MoveForward(amount)
	case CAMERA_BACKWARD:
		c.MoveBackward(amount)
	case CAMERA_LEFT:
		c.MoveLeft(amount)
	case CAMERA_RIGHT:
		c.MoveRight(amount)
	case CAMERA_UP:
		c.MoveUp(amount)
	case CAMERA_DOWN:
		c.MoveDown(amount)
	}
}

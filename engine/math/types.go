package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector. Also used as a flat colour or generic 4-tuple.
type Vec4 struct {
	X, Y, Z, W float32
}

/**
 * @brief A quaternion, stored exactly like a Vec4 (x, y, z, w).
 * Only additive, scalar and normalize operations are defined on it.
 */
type Quaternion Vec4

/**
 * @brief a 4x4 matrix, typically used to represent object transformations.
 * Element [row][col] lives at Data[row*4+col]; Data is handed to the
 * graphics pipeline as-is.
 */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

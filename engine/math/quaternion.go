package math

// ------------------------------------------
// Quaternion
// ------------------------------------------

/**
 * @brief Creates a quaternion with every component set to 0.0f.
 */
func NewQuatZero() Quaternion {
	return Quaternion{0, 0, 0, 0}
}

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1.0}
}

func (q Quaternion) Add(other Quaternion) Quaternion {
	return Quaternion(Vec4(q).Add(Vec4(other)))
}

func (q Quaternion) Sub(other Quaternion) Quaternion {
	return Quaternion(Vec4(q).Sub(Vec4(other)))
}

func (q Quaternion) Scale(scalar float32) Quaternion {
	return Quaternion(Vec4(q).Scale(scalar))
}

/**
 * @brief Returns the length of the quaternion treated as a 4-component vector.
 */
func (q Quaternion) Normal() float32 {
	return Vec4(q).Length()
}

/**
 * @brief Returns a normalized copy of the provided quaternion. The zero
 * quaternion stays zero, following the vector normalize policy.
 *
 * @param q The quaternion to normalize.
 * @return A normalized copy of the provided quaternion.
 */
func (q Quaternion) Normalized() Quaternion {
	return Quaternion(Vec4(q).Normalized())
}

// Compare reports whether every component of q is within tolerance of other.
func (q Quaternion) Compare(other Quaternion, tolerance float32) bool {
	return Vec4(q).Compare(Vec4(other), tolerance)
}

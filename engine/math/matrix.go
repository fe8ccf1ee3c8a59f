package math

/**
 * @brief Creates and returns a matrix with every element set to 0.0f.
 */
func NewMat4Zero() Mat4 {
	return Mat4{}
}

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[5] = 1.0
	out_matrix.Data[10] = 1.0
	out_matrix.Data[15] = 1.0
	return out_matrix
}

// At returns element [row][col].
func (mt Mat4) At(row, col int) float32 {
	return mt.Data[row*4+col]
}

// Set writes element [row][col].
func (mt *Mat4) Set(row, col int, value float32) {
	mt.Data[row*4+col] = value
}

func (mt Mat4) rowVec(i int) Vec4 {
	return Vec4{mt.Data[i*4+0], mt.Data[i*4+1], mt.Data[i*4+2], mt.Data[i*4+3]}
}

func (mt *Mat4) setRowVec(i int, v Vec4) {
	mt.Data[i*4+0] = v.X
	mt.Data[i*4+1] = v.Y
	mt.Data[i*4+2] = v.Z
	mt.Data[i*4+3] = v.W
}

/**
 * @brief Adds other to mt row by row and returns a copy of the result.
 */
func (mt Mat4) Add(other Mat4) Mat4 {
	out_matrix := Mat4{}
	for i := 0; i < 4; i++ {
		out_matrix.setRowVec(i, mt.rowVec(i).Add(other.rowVec(i)))
	}
	return out_matrix
}

/**
 * @brief Subtracts other from mt row by row and returns a copy of the result.
 */
func (mt Mat4) Sub(other Mat4) Mat4 {
	out_matrix := Mat4{}
	for i := 0; i < 4; i++ {
		out_matrix.setRowVec(i, mt.rowVec(i).Sub(other.rowVec(i)))
	}
	return out_matrix
}

/**
 * @brief Multiplies every row of mt by s and returns a copy of the result.
 */
func (mt Mat4) Scale(s float32) Mat4 {
	out_matrix := Mat4{}
	for i := 0; i < 4; i++ {
		out_matrix.setRowVec(i, mt.rowVec(i).Scale(s))
	}
	return out_matrix
}

/**
 * @brief Gathers element [j][index] for j = 0..3.
 * NOTE: this walks the column named by index across all rows. Shader-side
 * code relies on this layout, so it is kept as-is; Col is its counterpart.
 */
func (mt Mat4) Row(index uint8) Vec4 {
	i := int(index)
	return Vec4{mt.Data[0*4+i], mt.Data[1*4+i], mt.Data[2*4+i], mt.Data[3*4+i]}
}

/**
 * @brief Gathers element [index][j] for j = 0..3.
 */
func (mt Mat4) Col(index uint8) Vec4 {
	return mt.rowVec(int(index))
}

/**
 * @brief Returns the result of multiplying mt and other,
 * result[i][j] = sum_k mt[i][k] * other[k][j].
 *
 * @param other The right-hand matrix.
 * @return The result of the matrix multiplication.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out_matrix := Mat4{}
	Mat4MulTo(&out_matrix, &mt, &other)
	return out_matrix
}

/**
 * @brief Writes a * b into out without copying the operands.
 * out must not point at a or b; aliasing corrupts the result.
 */
func Mat4MulTo(out, a, b *Mat4) {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := float32(0)
			for i := 0; i < 4; i++ {
				sum += a.Data[row*4+i] * b.Data[i*4+col]
			}
			out.Data[row*4+col] = sum
		}
	}
}

/**
 * @brief Adds v to elements [0][3], [1][3] and [2][3] in place.
 * This composes by addition, so the matrix must already be suitable.
 */
func (mt *Mat4) Translate(v Vec3) {
	mt.Data[0*4+3] += v.X
	mt.Data[1*4+3] += v.Y
	mt.Data[2*4+3] += v.Z
}

/**
 * @brief Creates a rotation matrix of angle radians around a unit axis.
 * All 16 elements are written; the last row and column match the identity.
 */
func NewMat4RotateAxis(axis Vec3, angle float32) Mat4 {
	c := kcos(angle)
	s := ksin(angle)
	t := 1.0 - c

	x := axis.X
	y := axis.Y
	z := axis.Z

	return Mat4{Data: [16]float32{
		t*x*x + c, t*x*y - s*z, t*x*z + s*y, 0.0,
		t*x*y + s*z, t*y*y + c, t*y*z - s*x, 0.0,
		t*x*z - s*y, t*y*z + s*x, t*z*z + c, 0.0,
		0.0, 0.0, 0.0, 1.0,
	}}
}

/**
 * @brief Creates a rotation matrix from the provided x angle.
 *
 * @param angle_radians The x angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerX(angle_radians float32) Mat4 {
	out_matrix := NewMat4Identity()
	c := kcos(angle_radians)
	s := ksin(angle_radians)

	out_matrix.Data[5] = c
	out_matrix.Data[6] = s
	out_matrix.Data[9] = -s
	out_matrix.Data[10] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided y angle.
 *
 * @param angle_radians The y angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerY(angle_radians float32) Mat4 {
	out_matrix := NewMat4Identity()
	c := kcos(angle_radians)
	s := ksin(angle_radians)

	out_matrix.Data[0] = c
	out_matrix.Data[2] = -s
	out_matrix.Data[8] = s
	out_matrix.Data[10] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided z angle.
 *
 * @param angle_radians The z angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerZ(angle_radians float32) Mat4 {
	out_matrix := NewMat4Identity()

	c := kcos(angle_radians)
	s := ksin(angle_radians)

	out_matrix.Data[0] = c
	out_matrix.Data[1] = s
	out_matrix.Data[4] = -s
	out_matrix.Data[5] = c
	return out_matrix
}

// RotateX returns mt * Rx(angle_radians).
func (mt Mat4) RotateX(angle_radians float32) Mat4 {
	return mt.Mul(NewMat4EulerX(angle_radians))
}

// RotateY returns mt * Ry(angle_radians).
func (mt Mat4) RotateY(angle_radians float32) Mat4 {
	return mt.Mul(NewMat4EulerY(angle_radians))
}

// RotateZ returns mt * Rz(angle_radians).
func (mt Mat4) RotateZ(angle_radians float32) Mat4 {
	return mt.Mul(NewMat4EulerZ(angle_radians))
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->colums)
 */
func (mt Mat4) Transposed() Mat4 {
	out_matrix := Mat4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out_matrix.Data[col*4+row] = mt.Data[row*4+col]
		}
	}
	return out_matrix
}

/**
 * @brief Compares every element of mt and other against tolerance.
 */
func (mt Mat4) Compare(other Mat4, tolerance float32) bool {
	for i := 0; i < 16; i++ {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

// ------------------------------------------
// Camera
// ------------------------------------------

/**
 * @brief Creates and returns a right-handed look-at matrix, or a matrix looking
 * at target from the perspective of position.
 *
 * @param position The position of the matrix.
 * @param target The position to "look at".
 * @param up The up vector.
 * @return A matrix looking at target from the perspective of position.
 */
func NewMat4LookAt(position, target, up Vec3) Mat4 {
	f := target.Sub(position).Normalized()
	s := f.Cross(up).Normalized()
	u := s.Cross(f)

	out_matrix := Mat4{}
	out_matrix.Data[0] = s.X
	out_matrix.Data[1] = u.X
	out_matrix.Data[2] = -f.X
	out_matrix.Data[3] = 0
	out_matrix.Data[4] = s.Y
	out_matrix.Data[5] = u.Y
	out_matrix.Data[6] = -f.Y
	out_matrix.Data[7] = 0
	out_matrix.Data[8] = s.Z
	out_matrix.Data[9] = u.Z
	out_matrix.Data[10] = -f.Z
	out_matrix.Data[11] = 0
	out_matrix.Data[12] = -s.Dot(position)
	out_matrix.Data[13] = -u.Dot(position)
	out_matrix.Data[14] = f.Dot(position)
	out_matrix.Data[15] = 1.0

	return out_matrix
}

/**
 * @brief Creates and returns a right-handed perspective matrix. Typically used
 * to render 3d scenes.
 *
 * @param fov_radians The field of view in radians.
 * @param aspect_ratio The aspect ratio.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4Perspective(fov_radians, aspect_ratio, near_clip, far_clip float32) Mat4 {
	f := 1.0 / ktan(fov_radians*0.5)
	fn := 1.0 / (near_clip - far_clip)

	out_matrix := Mat4{}
	out_matrix.Data[0] = f / aspect_ratio
	out_matrix.Data[5] = f
	out_matrix.Data[10] = far_clip * fn
	out_matrix.Data[11] = -1.0
	out_matrix.Data[14] = near_clip * far_clip * fn
	return out_matrix
}

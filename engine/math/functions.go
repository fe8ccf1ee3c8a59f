package math

import (
	"sync"
	"time"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float32 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float32 = 0.5 * K_PI
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float32 = 180.0 / K_PI
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
)

var seedOnce sync.Once

func ksin(x float32) float32 {
	return math32.Sin(x)
}

func kcos(x float32) float32 {
	return math32.Cos(x)
}

func ktan(x float32) float32 {
	return math32.Tan(x)
}

func ksqrt(x float32) float32 {
	return math32.Sqrt(x)
}

func kabs(x float32) float32 {
	return math32.Abs(x)
}

// kmin mirrors fminf: when exactly one operand is NaN the other one wins.
func kmin(a, b float32) float32 {
	if math32.IsNaN(a) {
		return b
	}
	if math32.IsNaN(b) {
		return a
	}
	if a < b {
		return a
	}
	return b
}

// kmax mirrors fmaxf.
func kmax(a, b float32) float32 {
	if math32.IsNaN(a) {
		return b
	}
	if math32.IsNaN(b) {
		return a
	}
	if a > b {
		return a
	}
	return b
}

func seedRandom() {
	seedOnce.Do(func() {
		rand.Seed(uint64(time.Now().UnixNano()))
	})
}

/**
 * @brief Returns a random integer in the inclusive range [min, max]. An empty
 * or single-value range returns min.
 */
func RandomInRange(min, max int32) int32 {
	if min >= max {
		return min
	}
	seedRandom()
	span := int64(max) - int64(min) + 1
	return int32(int64(min) + rand.Int63n(span))
}

/**
 * @brief Returns a random floating-point number in the range [min, max).
 */
func FRandomInRange(min, max float32) float32 {
	seedRandom()
	return min + rand.Float32()*(max-min)
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}

/**
 * @brief Linearly interpolates between v0 and v1. t is not clamped, so
 * values outside [0, 1] extrapolate.
 */
func Lerp(v0, v1, t float32) float32 {
	return (1-t)*v0 + t*v1
}

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any ordered type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

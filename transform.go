package jamjar

import "math"

// Affine matrices are stored as [a, b, c, d, tx, ty], mapping
// (x, y) to (a*x + c*y + tx, b*x + d*y + ty).

var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// composeTransform scales, then rotates, then translates to (x, y).
func composeTransform(x, y, rotation, sx, sy float64) [6]float64 {
	sin, cos := math.Sincos(rotation)
	return [6]float64{cos * sx, sin * sx, -sin * sy, cos * sy, x, y}
}

// multiplyAffine returns outer * inner: inner is applied first.
func multiplyAffine(outer, inner [6]float64) [6]float64 {
	return [6]float64{
		outer[0]*inner[0] + outer[2]*inner[1],
		outer[1]*inner[0] + outer[3]*inner[1],
		outer[0]*inner[2] + outer[2]*inner[3],
		outer[1]*inner[2] + outer[3]*inner[3],
		outer[0]*inner[4] + outer[2]*inner[5] + outer[4],
		outer[1]*inner[4] + outer[3]*inner[5] + outer[5],
	}
}

// invertAffine returns the inverse of m, or the identity when m is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if math.Abs(det) < 1e-12 {
		return identityTransform
	}
	inv := 1 / det
	a, b := m[3]*inv, -m[1]*inv
	c, d := -m[2]*inv, m[0]*inv
	return [6]float64{a, b, c, d, -(a*m[4] + c*m[5]), -(b*m[4] + d*m[5])}
}

func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

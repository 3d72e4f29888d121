// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate performs cubic interpolation
// x is the fractional position between y1 and y2 (0 <= x <= 1)
// y0, y1, y2, y3 are four consecutive samples
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	// Catmull-Rom spline interpolation
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}

// SampleAt reads data at a fractional position using cubic interpolation.
// The four tap indices are clamped to the valid range, so the read never
// goes out of bounds: positions at or past the end hold the last sample,
// positions before 0 hold the first.
func SampleAt(data []float32, pos float64) float32 {
	n := len(data)
	if n == 0 {
		return 0
	}
	if pos <= 0 {
		return data[0]
	}

	i := int(pos)
	frac := float32(pos - float64(i))

	y0 := data[clampIndex(i-1, n)]
	y1 := data[clampIndex(i, n)]
	y2 := data[clampIndex(i+1, n)]
	y3 := data[clampIndex(i+2, n)]

	return CubicInterpolate(y0, y1, y2, y3, frac)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

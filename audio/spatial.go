// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// distanceFalloff controls how quickly sounds attenuate with distance.
// Tuned by ear rather than derived from acoustics.
const distanceFalloff = 1.0

// panGain returns the left/right gains of the linear pan law for a sound at
// horizontal offset x, in world units. x = 0 is centered (both ears at
// 1.0); |x| >= 2 fully isolates one ear.
func panGain(x float32) (left, right float32) {
	if x == 0 {
		return 1, 1
	}
	return clamp01(1 - x*0.5), clamp01(1 + x*0.5)
}

// spatialGains combines panning with distance attenuation for a sound at
// (x, y). Attenuation is the square of an inverse-linear curve:
// (1/(1+k*d))^2, with unity gain at the origin.
func spatialGains(x, y float32) (left, right float32) {
	attenuation := float32(1.0)
	distance := float32(math.Sqrt(float64(x*x + y*y)))
	if distance > 0 {
		attenuation = 1 / (1 + distanceFalloff*distance)
		if attenuation > 1 {
			attenuation = 1
		}
		attenuation *= attenuation
	}

	left, right = panGain(x)
	return left * attenuation, right * attenuation
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

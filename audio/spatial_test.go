// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"testing"
)

func TestPanGain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		x         float32
		wantLeft  float32
		wantRight float32
	}{
		{
			name:      "centered",
			x:         0,
			wantLeft:  1,
			wantRight: 1,
		},
		{
			name:      "half right",
			x:         1,
			wantLeft:  0.5,
			wantRight: 1.0,
		},
		{
			name:      "half left",
			x:         -1,
			wantLeft:  1.0,
			wantRight: 0.5,
		},
		{
			name:      "fully right",
			x:         2,
			wantLeft:  0,
			wantRight: 1.0,
		},
		{
			name:      "fully left",
			x:         -2,
			wantLeft:  1.0,
			wantRight: 0,
		},
		{
			name:      "beyond full isolation clamps",
			x:         10,
			wantLeft:  0,
			wantRight: 1.0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, r := panGain(tt.x)
			if math.Abs(float64(l-tt.wantLeft)) > 0.0001 {
				t.Errorf("panGain(%v) left = %v, want %v", tt.x, l, tt.wantLeft)
			}
			if math.Abs(float64(r-tt.wantRight)) > 0.0001 {
				t.Errorf("panGain(%v) right = %v, want %v", tt.x, r, tt.wantRight)
			}
		})
	}
}

func TestPanGain_Symmetric(t *testing.T) {
	t.Parallel()

	for _, x := range []float32{0.25, 0.5, 1, 1.5, 2} {
		l1, r1 := panGain(x)
		l2, r2 := panGain(-x)
		if l1 != r2 || r1 != l2 {
			t.Errorf("panGain not symmetric at x=%v: (%v,%v) vs mirrored (%v,%v)", x, l1, r1, l2, r2)
		}
	}
}

func TestSpatialGains_OriginIsUnity(t *testing.T) {
	t.Parallel()

	l, r := spatialGains(0, 0)
	if l != 1 || r != 1 {
		t.Errorf("spatialGains(0, 0) = (%v, %v), want (1, 1)", l, r)
	}
}

func TestSpatialGains_DistanceAttenuation(t *testing.T) {
	t.Parallel()

	// Straight ahead at distance 1: no pan, attenuation (1/(1+1))^2 = 0.25
	l, r := spatialGains(0, 1)
	if math.Abs(float64(l-0.25)) > 0.0001 || math.Abs(float64(r-0.25)) > 0.0001 {
		t.Errorf("spatialGains(0, 1) = (%v, %v), want (0.25, 0.25)", l, r)
	}
}

func TestSpatialGains_FurtherIsQuieter(t *testing.T) {
	t.Parallel()

	prevL, _ := spatialGains(0, 0)
	for _, y := range []float32{0.5, 1, 2, 5, 10} {
		l, r := spatialGains(0, y)
		if l >= prevL {
			t.Errorf("gain at distance %v = %v, want < %v (closer)", y, l, prevL)
		}
		if l != r {
			t.Errorf("on-axis gains differ at distance %v: (%v, %v)", y, l, r)
		}
		prevL = l
	}
}

func TestSpatialGains_CombinesPanAndDistance(t *testing.T) {
	t.Parallel()

	// x=1, y=0: distance 1 so attenuation 0.25; pan (0.5, 1.0)
	l, r := spatialGains(1, 0)
	if math.Abs(float64(l-0.125)) > 0.0001 {
		t.Errorf("spatialGains(1, 0) left = %v, want 0.125", l)
	}
	if math.Abs(float64(r-0.25)) > 0.0001 {
		t.Errorf("spatialGains(1, 0) right = %v, want 0.25", r)
	}
}

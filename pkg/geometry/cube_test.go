package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCube_Intersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		t1, t2    float64
	}{
		{"+x face", core.NewPoint(5, 0.5, 0), core.NewVector(-1, 0, 0), 4, 6},
		{"-x face", core.NewPoint(-5, 0.5, 0), core.NewVector(1, 0, 0), 4, 6},
		{"+y face", core.NewPoint(0.5, 5, 0), core.NewVector(0, -1, 0), 4, 6},
		{"-y face", core.NewPoint(0.5, -5, 0), core.NewVector(0, 1, 0), 4, 6},
		{"+z face", core.NewPoint(0.5, 0, 5), core.NewVector(0, 0, -1), 4, 6},
		{"-z face", core.NewPoint(0.5, 0, -5), core.NewVector(0, 0, 1), 4, 6},
		{"inside", core.NewPoint(0, 0.5, 0), core.NewVector(0, 0, 1), -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCube()
			xs := c.Intersect(core.NewRay(tt.origin, tt.direction))
			if len(xs) != 2 {
				t.Fatalf("Expected 2 intersections, got %d", len(xs))
			}
			if math.Abs(xs[0].T-tt.t1) > core.Epsilon || math.Abs(xs[1].T-tt.t2) > core.Epsilon {
				t.Errorf("Expected t=%f,%f got %f,%f", tt.t1, tt.t2, xs[0].T, xs[1].T)
			}
		})
	}
}

func TestCube_Miss(t *testing.T) {
	tests := []struct {
		origin    core.Tuple
		direction core.Tuple
	}{
		{core.NewPoint(-2, 0, 0), core.NewVector(0.2673, 0.5345, 0.8018)},
		{core.NewPoint(0, -2, 0), core.NewVector(0.8018, 0.2673, 0.5345)},
		{core.NewPoint(0, 0, -2), core.NewVector(0.5345, 0.8018, 0.2673)},
		{core.NewPoint(2, 0, 2), core.NewVector(0, 0, -1)},
		{core.NewPoint(0, 2, 2), core.NewVector(0, -1, 0)},
		{core.NewPoint(2, 2, 0), core.NewVector(-1, 0, 0)},
	}

	for _, tt := range tests {
		c := NewCube()
		if xs := c.Intersect(core.NewRay(tt.origin, tt.direction)); len(xs) != 0 {
			t.Errorf("Ray from %v should miss, got %d intersections", tt.origin, len(xs))
		}
	}
}

func TestCube_NormalAt(t *testing.T) {
	tests := []struct {
		point    core.Tuple
		expected core.Tuple
	}{
		{core.NewPoint(1, 0.5, -0.8), core.NewVector(1, 0, 0)},
		{core.NewPoint(-1, -0.2, 0.9), core.NewVector(-1, 0, 0)},
		{core.NewPoint(-0.4, 1, -0.1), core.NewVector(0, 1, 0)},
		{core.NewPoint(0.3, -1, -0.7), core.NewVector(0, -1, 0)},
		{core.NewPoint(-0.6, 0.3, 1), core.NewVector(0, 0, 1)},
		{core.NewPoint(0.4, 0.4, -1), core.NewVector(0, 0, -1)},
		{core.NewPoint(1, 1, 1), core.NewVector(1, 0, 0)},
		{core.NewPoint(-1, -1, -1), core.NewVector(-1, 0, 0)},
	}

	for _, tt := range tests {
		c := NewCube()
		if got := c.NormalAt(tt.point); !got.Equals(tt.expected) {
			t.Errorf("Normal at %v: expected %v, got %v", tt.point, tt.expected, got)
		}
	}
}

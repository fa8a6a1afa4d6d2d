package core

import (
	"math"
	"testing"
)

func TestTranslation(t *testing.T) {
	transform := Translation(5, -3, 2)

	if got := transform.MultiplyTuple(NewPoint(-3, 4, 5)); !got.Equals(NewPoint(2, 1, 7)) {
		t.Errorf("Translating a point: expected (2,1,7), got %v", got)
	}

	inv, _ := transform.Inverse()
	if got := inv.MultiplyTuple(NewPoint(-3, 4, 5)); !got.Equals(NewPoint(-8, 7, 3)) {
		t.Errorf("Inverse translation: expected (-8,7,3), got %v", got)
	}

	// Translation leaves vectors unchanged.
	v := NewVector(-3, 4, 5)
	if got := transform.MultiplyTuple(v); !got.Equals(v) {
		t.Errorf("Translating a vector should not change it, got %v", got)
	}
}

func TestScaling(t *testing.T) {
	transform := Scaling(2, 3, 4)

	if got := transform.MultiplyTuple(NewPoint(-4, 6, 8)); !got.Equals(NewPoint(-8, 18, 32)) {
		t.Errorf("Scaling a point: expected (-8,18,32), got %v", got)
	}
	if got := transform.MultiplyTuple(NewVector(-4, 6, 8)); !got.Equals(NewVector(-8, 18, 32)) {
		t.Errorf("Scaling a vector: expected (-8,18,32), got %v", got)
	}

	inv, _ := transform.Inverse()
	if got := inv.MultiplyTuple(NewVector(-4, 6, 8)); !got.Equals(NewVector(-2, 2, 2)) {
		t.Errorf("Inverse scaling: expected (-2,2,2), got %v", got)
	}

	// Scaling by a negative value reflects.
	if got := Scaling(-1, 1, 1).MultiplyTuple(NewPoint(2, 3, 4)); !got.Equals(NewPoint(-2, 3, 4)) {
		t.Errorf("Reflection: expected (-2,3,4), got %v", got)
	}
}

func TestScaling_VectorMagnitude(t *testing.T) {
	v := NewVector(1, 2, 2) // magnitude 3
	scaled := UniformScaling(5).MultiplyTuple(v)
	if math.Abs(scaled.Magnitude()-15) > Epsilon {
		t.Errorf("Uniform scaling by 5 should scale magnitude to 15, got %f", scaled.Magnitude())
	}
}

func TestRotations(t *testing.T) {
	irr := math.Sqrt2 / 2
	tests := []struct {
		name     string
		m        Matrix4
		point    Tuple
		expected Tuple
	}{
		{"x half quarter", RotationX(math.Pi / 4), NewPoint(0, 1, 0), NewPoint(0, irr, irr)},
		{"x full quarter", RotationX(math.Pi / 2), NewPoint(0, 1, 0), NewPoint(0, 0, 1)},
		{"y half quarter", RotationY(math.Pi / 4), NewPoint(0, 0, 1), NewPoint(irr, 0, irr)},
		{"y full quarter", RotationY(math.Pi / 2), NewPoint(0, 0, 1), NewPoint(1, 0, 0)},
		{"z half quarter", RotationZ(math.Pi / 4), NewPoint(0, 1, 0), NewPoint(-irr, irr, 0)},
		{"z full quarter", RotationZ(math.Pi / 2), NewPoint(0, 1, 0), NewPoint(-1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MultiplyTuple(tt.point); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestShearing(t *testing.T) {
	tests := []struct {
		name     string
		m        Matrix4
		expected Tuple
	}{
		{"x in proportion to y", Shearing(1, 0, 0, 0, 0, 0), NewPoint(5, 3, 4)},
		{"x in proportion to z", Shearing(0, 1, 0, 0, 0, 0), NewPoint(6, 3, 4)},
		{"y in proportion to x", Shearing(0, 0, 1, 0, 0, 0), NewPoint(2, 5, 4)},
		{"y in proportion to z", Shearing(0, 0, 0, 1, 0, 0), NewPoint(2, 7, 4)},
		{"z in proportion to x", Shearing(0, 0, 0, 0, 1, 0), NewPoint(2, 3, 6)},
		{"z in proportion to y", Shearing(0, 0, 0, 0, 0, 1), NewPoint(2, 3, 7)},
	}

	point := NewPoint(2, 3, 4)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MultiplyTuple(point); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTransform_CompositionOrder(t *testing.T) {
	p := NewPoint(1, 0, 1)
	a := RotationX(math.Pi / 2)
	b := Scaling(5, 5, 5)
	c := Translation(10, 5, 7)

	// Applied individually: rotate, then scale, then translate.
	p2 := a.MultiplyTuple(p)
	if !p2.Equals(NewPoint(1, -1, 0)) {
		t.Fatalf("After rotation: expected (1,-1,0), got %v", p2)
	}
	p3 := b.MultiplyTuple(p2)
	if !p3.Equals(NewPoint(5, -5, 0)) {
		t.Fatalf("After scaling: expected (5,-5,0), got %v", p3)
	}
	p4 := c.MultiplyTuple(p3)
	if !p4.Equals(NewPoint(15, 0, 7)) {
		t.Fatalf("After translation: expected (15,0,7), got %v", p4)
	}

	// Chained composition applies innermost (rightmost) first.
	chained := c.Multiply(b).Multiply(a)
	if got := chained.MultiplyTuple(p); !got.Equals(NewPoint(15, 0, 7)) {
		t.Errorf("Chained transform: expected (15,0,7), got %v", got)
	}
}

func TestViewTransform(t *testing.T) {
	t.Run("default orientation is identity", func(t *testing.T) {
		got := ViewTransform(NewPoint(0, 0, 0), NewPoint(0, 0, -1), NewVector(0, 1, 0))
		if !got.Equals(Identity()) {
			t.Errorf("Expected identity, got %v", got)
		}
	})

	t.Run("looking in +z direction mirrors", func(t *testing.T) {
		got := ViewTransform(NewPoint(0, 0, 0), NewPoint(0, 0, 1), NewVector(0, 1, 0))
		if !got.Equals(Scaling(-1, 1, -1)) {
			t.Errorf("Expected scaling(-1,1,-1), got %v", got)
		}
	})

	t.Run("the eye moves the world", func(t *testing.T) {
		got := ViewTransform(NewPoint(0, 0, 8), NewPoint(0, 0, 0), NewVector(0, 1, 0))
		if !got.Equals(Translation(0, 0, -8)) {
			t.Errorf("Expected translation(0,0,-8), got %v", got)
		}
	})

	t.Run("arbitrary view", func(t *testing.T) {
		got := ViewTransform(NewPoint(1, 3, 2), NewPoint(4, -2, 8), NewVector(1, 1, 0))
		expected := Matrix4{
			{-0.50709, 0.50709, 0.67612, -2.36643},
			{0.76772, 0.60609, 0.12122, -2.82843},
			{-0.35857, 0.59761, -0.71714, 0},
			{0, 0, 0, 1},
		}
		if !got.Equals(expected) {
			t.Errorf("Expected %v, got %v", expected, got)
		}
	})
}

package core

import (
	"errors"
	"math"
	"testing"
)

func TestMatrix4_Multiply(t *testing.T) {
	a := Matrix4{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 8, 7, 6},
		{5, 4, 3, 2},
	}
	b := Matrix4{
		{-2, 1, 2, 3},
		{3, 2, 1, -1},
		{4, 3, 6, 5},
		{1, 2, 7, 8},
	}
	expected := Matrix4{
		{20, 22, 50, 48},
		{44, 54, 114, 108},
		{40, 58, 110, 102},
		{16, 26, 46, 42},
	}

	if got := a.Multiply(b); !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestMatrix4_MultiplyTuple(t *testing.T) {
	m := Matrix4{
		{1, 2, 3, 4},
		{2, 4, 4, 2},
		{8, 6, 4, 1},
		{0, 0, 0, 1},
	}
	got := m.MultiplyTuple(NewPoint(1, 2, 3))
	if !got.Equals(NewPoint(18, 24, 33)) {
		t.Errorf("Expected (18,24,33), got %v", got)
	}
}

func TestMatrix4_IdentityIsNeutral(t *testing.T) {
	m := Matrix4{
		{0, 1, 2, 4},
		{1, 2, 4, 8},
		{2, 4, 8, 16},
		{4, 8, 16, 32},
	}
	if got := m.Multiply(Identity()); !got.Equals(m) {
		t.Errorf("Multiplying by identity changed the matrix: %v", got)
	}

	p := NewPoint(1, 2, 3)
	if got := Identity().MultiplyTuple(p); !got.Equals(p) {
		t.Errorf("Identity changed the tuple: %v", got)
	}
}

func TestMatrix4_Transpose(t *testing.T) {
	m := Matrix4{
		{0, 9, 3, 0},
		{9, 8, 0, 8},
		{1, 8, 5, 3},
		{0, 0, 5, 8},
	}
	expected := Matrix4{
		{0, 9, 1, 0},
		{9, 8, 8, 0},
		{3, 0, 5, 5},
		{0, 8, 3, 8},
	}
	if got := m.Transpose(); !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	if got := Identity().Transpose(); !got.Equals(Identity()) {
		t.Error("Transposing identity should give identity")
	}
}

func TestMatrix4_Determinant(t *testing.T) {
	m := Matrix4{
		{-2, -8, 3, 5},
		{-3, 1, 7, 3},
		{1, 2, -9, 6},
		{-6, 7, 7, -9},
	}
	if got := m.Determinant(); math.Abs(got-(-4071)) > Epsilon {
		t.Errorf("Expected determinant -4071, got %f", got)
	}
}

func TestMatrix4_Inverse(t *testing.T) {
	m := Matrix4{
		{-5, 2, 6, -8},
		{1, -5, 1, 8},
		{7, 7, -6, -7},
		{1, -3, 7, 4},
	}

	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse failed: %v", err)
	}

	if got := m.Determinant(); math.Abs(got-532) > Epsilon {
		t.Errorf("Expected determinant 532, got %f", got)
	}

	expected := Matrix4{
		{0.21805, 0.45113, 0.24060, -0.04511},
		{-0.80827, -1.45677, -0.44361, 0.52068},
		{-0.07895, -0.22368, -0.05263, 0.19737},
		{-0.52256, -0.81391, -0.30075, 0.30639},
	}
	if !inv.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, inv)
	}
}

func TestMatrix4_InverseRoundTrip(t *testing.T) {
	m := Matrix4{
		{3, -9, 7, 3},
		{3, -8, 2, -9},
		{-4, 4, 4, 1},
		{-6, 5, -1, 1},
	}

	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse failed: %v", err)
	}

	// Multiplying by the inverse yields identity.
	if got := m.Multiply(inv); !got.Equals(Identity()) {
		t.Errorf("m * m^-1 should be identity, got %v", got)
	}

	// Inverting twice yields the original.
	invInv, err := inv.Inverse()
	if err != nil {
		t.Fatalf("Second inverse failed: %v", err)
	}
	if !invInv.Equals(m) {
		t.Errorf("Double inverse should be the original, got %v", invInv)
	}
}

func TestMatrix4_InverseUndoesMultiplication(t *testing.T) {
	a := Matrix4{
		{3, -9, 7, 3},
		{3, -8, 2, -9},
		{-4, 4, 4, 1},
		{-6, 5, -1, 1},
	}
	b := Matrix4{
		{8, 2, 2, 2},
		{3, -1, 7, 0},
		{7, 0, 5, 4},
		{6, -2, 0, 5},
	}

	invB, err := b.Inverse()
	if err != nil {
		t.Fatalf("Inverse failed: %v", err)
	}
	if got := a.Multiply(b).Multiply(invB); !got.Equals(a) {
		t.Errorf("(a*b)*b^-1 should be a, got %v", got)
	}
}

func TestMatrix4_NonInvertible(t *testing.T) {
	singular := Matrix4{
		{-4, 2, -2, -3},
		{9, 6, 2, 6},
		{0, -5, 1, -5},
		{0, 0, 0, 0},
	}

	_, err := singular.Inverse()
	if !errors.Is(err, ErrNonInvertible) {
		t.Errorf("Expected ErrNonInvertible, got %v", err)
	}
}

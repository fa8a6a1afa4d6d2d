package core

import (
	"errors"
	"math"
)

// ErrNonInvertible is returned when a transform's determinant is (near)
// zero. It can only surface at construction time; a validated scene never
// fails mid-trace.
var ErrNonInvertible = errors.New("transform is not invertible")

// Matrix4 is a 4x4 matrix in row-major order
type Matrix4 [4][4]float64

// Identity returns the 4x4 identity matrix
func Identity() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns the matrix product m * other. Used for transform
// composition: the right-hand operand applies first to a tuple.
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var result Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MultiplyTuple applies the matrix to a tuple
func (m Matrix4) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix4) Transpose() Matrix4 {
	var result Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// Determinant returns the determinant by cofactor expansion along row 0
func (m Matrix4) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.cofactor(0, col)
	}
	return det
}

// Inverse returns the inverted matrix, or ErrNonInvertible when the
// determinant is near zero.
func (m Matrix4) Inverse() (Matrix4, error) {
	det := m.Determinant()
	if math.Abs(det) < Epsilon {
		return Matrix4{}, ErrNonInvertible
	}

	var result Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// Transposed assignment inverts via the adjugate.
			result[col][row] = m.cofactor(row, col) / det
		}
	}
	return result, nil
}

// Equals compares two matrices elementwise with epsilon tolerance
func (m Matrix4) Equals(other Matrix4) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !floatEquals(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}

// submatrix returns the 3x3 matrix with the given row and column removed
func (m Matrix4) submatrix(row, col int) [3][3]float64 {
	var result [3][3]float64
	ri := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		ci := 0
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			result[ri][ci] = m[r][c]
			ci++
		}
		ri++
	}
	return result
}

func (m Matrix4) minor(row, col int) float64 {
	return determinant3(m.submatrix(row, col))
}

func (m Matrix4) cofactor(row, col int) float64 {
	minor := m.minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

func determinant3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

package matrix

import "fmt"

// MatMul computes the matrix product m · other.
//
// Shapes: [m, k] · [k, n] = [m, n]. Panics if the inner dimensions do not
// match.
func (m *Matrix) MatMul(other *Matrix) *Matrix {
	if m.cols != other.rows {
		panic(fmt.Sprintf("Matrix.MatMul: dimension mismatch %dx%d · %dx%d", m.rows, m.cols, other.rows, other.cols))
	}
	out := Zeros(m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			v := m.data[i*m.cols+k]
			if v == 0 {
				continue
			}
			row := other.data[k*other.cols:]
			outRow := out.data[i*out.cols:]
			for j := 0; j < other.cols; j++ {
				outRow[j] += v * row[j]
			}
		}
	}
	return out
}

// Transpose returns a new matrix that is the transpose of m.
func (m *Matrix) Transpose() *Matrix {
	out := Zeros(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*out.cols+i] = m.data[i*m.cols+j]
		}
	}
	return out
}

// Add computes the element-wise sum m + other.
//
// Panics if the shapes differ.
func (m *Matrix) Add(other *Matrix) *Matrix {
	m.checkSameShape("Add", other)
	out := Zeros(m.rows, m.cols)
	for i := range m.data {
		out.data[i] = m.data[i] + other.data[i]
	}
	return out
}

// Sub computes the element-wise difference m - other.
//
// Panics if the shapes differ.
func (m *Matrix) Sub(other *Matrix) *Matrix {
	m.checkSameShape("Sub", other)
	out := Zeros(m.rows, m.cols)
	for i := range m.data {
		out.data[i] = m.data[i] - other.data[i]
	}
	return out
}

// Hadamard computes the element-wise product m ⊙ other.
//
// Panics if the shapes differ.
func (m *Matrix) Hadamard(other *Matrix) *Matrix {
	m.checkSameShape("Hadamard", other)
	out := Zeros(m.rows, m.cols)
	for i := range m.data {
		out.data[i] = m.data[i] * other.data[i]
	}
	return out
}

// Scale multiplies every element by s.
func (m *Matrix) Scale(s float64) *Matrix {
	out := Zeros(m.rows, m.cols)
	for i := range m.data {
		out.data[i] = m.data[i] * s
	}
	return out
}

// Apply returns a new matrix with f applied to every element.
func (m *Matrix) Apply(f func(float64) float64) *Matrix {
	out := Zeros(m.rows, m.cols)
	for i := range m.data {
		out.data[i] = f(m.data[i])
	}
	return out
}

func (m *Matrix) checkSameShape(op string, other *Matrix) {
	if m.rows != other.rows || m.cols != other.cols {
		panic(fmt.Sprintf("Matrix.%s: shape mismatch %dx%d vs %dx%d", op, m.rows, m.cols, other.rows, other.cols))
	}
}

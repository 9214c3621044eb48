// Package matrix implements the dense matrix type underlying the Dendrite
// ML framework.
//
// Matrices are 2-D, float64, and stored row-major. The framework follows
// denominator layout throughout: each column of a data matrix is one sample,
// and a layer's weight matrix has shape [out_units, in_units] so that the
// forward pass is a plain left-multiplication.
//
// Construction functions return errors for invalid dimensions or data.
// Operations on already-constructed matrices panic on shape mismatch, since
// a mismatch there is a programming error rather than a runtime condition.
package matrix

import (
	"fmt"
	"math/rand"
)

// Matrix is a dense 2-D matrix of float64 values in row-major order.
type Matrix struct {
	rows int
	cols int
	data []float64
}

// New creates a zero-valued matrix with the given dimensions.
//
// Returns an error if either dimension is not positive.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid matrix dimensions %dx%d (must be > 0)", rows, cols)
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// Zeros creates a zero-valued matrix with the given dimensions.
//
// Panics if the dimensions are invalid. Use New when the dimensions come
// from untrusted input.
func Zeros(rows, cols int) *Matrix {
	m, err := New(rows, cols)
	if err != nil {
		panic(err)
	}
	return m
}

// FromSlice creates a matrix from a row-major flat slice.
//
// The slice is copied, so the caller may reuse it. Returns an error if the
// dimensions are invalid or the slice length does not equal rows*cols.
//
// Example:
//
//	// [[1, 2, 3],
//	//  [4, 5, 6]]
//	m, err := matrix.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
func FromSlice(data []float64, rows, cols int) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("data length %d does not match dimensions %dx%d", len(data), rows, cols)
	}
	copy(m.data, data)
	return m, nil
}

// Uniform creates a matrix with entries drawn uniformly from [-bound, bound].
//
// The random source is supplied by the caller so that runs are reproducible.
// Panics if the dimensions are invalid.
func Uniform(rng *rand.Rand, rows, cols int, bound float64) *Matrix {
	m := Zeros(rows, cols)
	for i := range m.data {
		m.data[i] = (rng.Float64()*2.0 - 1.0) * bound
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	m.checkIndex(i, j)
	return m.data[i*m.cols+j]
}

// Set assigns the element at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.checkIndex(i, j)
	m.data[i*m.cols+j] = v
}

// Data returns the underlying row-major slice.
//
// The slice is shared with the matrix; mutations are visible to both sides.
// This is the hook used by optimizers for in-place parameter updates.
func (m *Matrix) Data() []float64 {
	return m.data
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	c := Zeros(m.rows, m.cols)
	copy(c.data, m.data)
	return c
}

func (m *Matrix) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
}

package geom

import (
	"fmt"
	"iter"
)

// Matrix is an R×C matrix stored row-major in a flat slice. The
// dimensions are fixed at construction and every operation that needs
// compatible shapes checks them up front: a mismatch is a programming
// error and panics rather than producing a wrong-shaped result.
//
// Matrices behave as values. No operation mutates its receiver; results
// are always freshly allocated.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix builds a matrix from an explicit grid of rows. All rows
// must have the same length and the grid must be non-empty.
func NewMatrix(rows [][]float64) Matrix {
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic("geom: empty matrix")
	}
	r, c := len(rows), len(rows[0])
	data := make([]float64, 0, r*c)
	for _, row := range rows {
		if len(row) != c {
			panic(fmt.Sprintf("geom: ragged matrix row: got %d columns, want %d", len(row), c))
		}
		data = append(data, row...)
	}
	return Matrix{rows: r, cols: c, data: data}
}

// Identity returns the n×n identity matrix.
func Identity(n int) Matrix {
	m := Matrix{rows: n, cols: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Filled returns an r×c matrix with every entry set to v.
func Filled(r, c int, v float64) Matrix {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = v
	}
	return Matrix{rows: r, cols: c, data: data}
}

// Dims returns the row and column counts.
func (m Matrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// At returns the entry at row r, column c.
func (m Matrix) At(r, c int) float64 {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("geom: index (%d,%d) out of range for %d×%d matrix", r, c, m.rows, m.cols))
	}
	return m.data[r*m.cols+c]
}

// Rows yields each row in order as a fresh length-C slice.
func (m Matrix) Rows() iter.Seq[[]float64] {
	return func(yield func([]float64) bool) {
		for r := 0; r < m.rows; r++ {
			row := make([]float64, m.cols)
			copy(row, m.data[r*m.cols:(r+1)*m.cols])
			if !yield(row) {
				return
			}
		}
	}
}

// Cols yields each column in order as a fresh length-R slice.
func (m Matrix) Cols() iter.Seq[[]float64] {
	return func(yield func([]float64) bool) {
		for c := 0; c < m.cols; c++ {
			col := make([]float64, m.rows)
			for r := 0; r < m.rows; r++ {
				col[r] = m.data[r*m.cols+c]
			}
			if !yield(col) {
				return
			}
		}
	}
}

// Elements yields every entry in row-major order.
func (m Matrix) Elements() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, v := range m.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Transpose returns the C×R matrix with row and column roles swapped.
func (m Matrix) Transpose() Matrix {
	t := Matrix{rows: m.cols, cols: m.rows, data: make([]float64, len(m.data))}
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			t.data[c*m.rows+r] = m.data[r*m.cols+c]
		}
	}
	return t
}

// Mul returns m × n. The inner dimensions must agree.
func (m Matrix) Mul(n Matrix) Matrix {
	if m.cols != n.rows {
		panic(fmt.Sprintf("geom: dimension mismatch: %d×%d × %d×%d", m.rows, m.cols, n.rows, n.cols))
	}
	out := Matrix{rows: m.rows, cols: n.cols, data: make([]float64, m.rows*n.cols)}
	for r := 0; r < m.rows; r++ {
		for c := 0; c < n.cols; c++ {
			var sum float64
			for k := 0; k < m.cols; k++ {
				sum += m.data[r*m.cols+k] * n.data[k*n.cols+c]
			}
			out.data[r*n.cols+c] = sum
		}
	}
	return out
}

// Inverse returns the inverse of a square matrix, computed by in-place
// Gauss-Jordan elimination without row pivoting. Each diagonal pivot is
// assumed nonzero at the time it is used: a singular matrix (or one
// that develops a zero pivot during elimination) silently yields
// NaN/Inf entries instead of an error.
func (m Matrix) Inverse() Matrix {
	if m.rows != m.cols {
		panic(fmt.Sprintf("geom: inverse of non-square %d×%d matrix", m.rows, m.cols))
	}
	n := m.rows
	inv := make([]float64, len(m.data))
	copy(inv, m.data)

	for p := 0; p < n; p++ {
		pivot := inv[p*n+p]

		// Pivot column: negate and divide by the pivot.
		for j := 0; j < n; j++ {
			if j != p {
				inv[j*n+p] = -inv[j*n+p] / pivot
			}
		}

		// Rank-one update of everything off the pivot row/column,
		// using the pivot row's pre-division values.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != p && j != p {
					inv[i*n+j] += inv[p*n+j] * inv[i*n+p]
				}
			}
		}

		// Pivot row: divide by the pivot.
		for j := 0; j < n; j++ {
			if j != p {
				inv[p*n+j] /= pivot
			}
		}

		inv[p*n+p] = 1 / pivot
	}

	return Matrix{rows: n, cols: n, data: inv}
}

// Equal reports exact equality: same dimensions, identical entries.
func (m Matrix) Equal(n Matrix) bool {
	if m.rows != n.rows || m.cols != n.cols {
		return false
	}
	for i, v := range m.data {
		if v != n.data[i] {
			return false
		}
	}
	return true
}

// AbsDiffEq reports whether m and n have the same dimensions and match
// entry-wise within eps.
func (m Matrix) AbsDiffEq(n Matrix, eps float64) bool {
	if m.rows != n.rows || m.cols != n.cols {
		return false
	}
	for i, v := range m.data {
		if !absDiffEq(v, n.data[i], eps) {
			return false
		}
	}
	return true
}

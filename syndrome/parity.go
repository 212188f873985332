package syndrome

import (
	"fmt"

	mat "github.com/nathanhack/sparsemat"
)

// ParityCheckMatrix stacks the basis syndromes as rows by ascending
// dimension, drops the leading columns that are zero in every row and
// returns the transpose. Column i is the trimmed syndrome of the i-th basis
// vector. It returns nil when there is no basis.
func (m *Mapper) ParityCheckMatrix() mat.SparseMat {
	rows := make([]Vector, 0, len(m.classes))
	for _, p := range m.BasisMap() {
		rows = append(rows, p.Syndrome)
	}
	return trimTranspose(rows, m.n)
}

// PositionalParityCheckMatrix returns the matrix whose column p is the
// trimmed image of the unit vector at position p, so multiplying it with a
// mapped pattern gives the pattern's trimmed syndrome. This is the form a
// decoder needs. It fails unless there is a basis vector for every dimension.
func (m *Mapper) PositionalParityCheckMatrix() (mat.SparseMat, error) {
	if len(m.classes) != m.n {
		return nil, fmt.Errorf("%w: %v of %v dimensions", ErrIncompleteBasis, len(m.classes), m.n)
	}

	columns := make([]Vector, m.n)
	for p := range columns {
		s, ok := m.Extend(Unit(m.n, p))
		if !ok {
			// a full basis spans every vector
			panic(fmt.Sprintf("unit vector %v outside the span of a full basis", p))
		}
		columns[p] = s
	}
	return trimTranspose(columns, m.n), nil
}

// Shape returns the dimensions of a parity check matrix, treating nil as
// a 0x0 matrix.
func Shape(h mat.SparseMat) (rows, cols int) {
	if h == nil {
		return 0, 0
	}
	return h.Dims()
}

func trimTranspose(vectors []Vector, n int) mat.SparseMat {
	if len(vectors) == 0 {
		return nil
	}

	// m is the smallest index of a first nonzero element, n for zero vectors
	m := n
	for _, v := range vectors {
		if first := n - 1 - v.Dimension(); first < m {
			m = first
		}
	}

	h := mat.CSRMat(n-m, len(vectors))
	for c, v := range vectors {
		for i := m; i < n; i++ {
			if v.At(i) == 1 {
				h.Set(i-m, c, 1)
			}
		}
	}
	return h
}

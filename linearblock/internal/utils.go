package internal

import (
	"context"

	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

//NewFromH creates the column ordering and generator G for the systematic form of parity matrix H.
// Under HColumnOrder H becomes [A, I] and G is [I, A^T].
func NewFromH(ctx context.Context, H mat.SparseMat, threads int) (HColumnOrder []int, G mat.SparseMat, err error) {
	m, N := H.Dims()

	logrus.Debugf("Creating generator matrix from H matrix")
	r, err := reduce(ctx, H, threads)
	if err != nil {
		logrus.Debugf("Unable to create generator matrix from H")
		return nil, nil, err
	}

	// the reduction is [I, A] under r.order, we want [A, I]
	HColumnOrder = make([]int, N)
	copy(HColumnOrder[0:N-m], r.order[m:N])
	copy(HColumnOrder[N-m:N], r.order[0:m])

	k := N - m
	AT := mat.CSRMat(k, m)
	for i, row := range r.rows {
		for c := m; c < N; c++ {
			if row.At(r.order[c]) == 1 {
				AT.Set(c-m, i, 1)
			}
		}
	}

	G = mat.DOKMat(k, N)
	G.SetMatrix(mat.CSRIdentity(k), 0, 0)
	G.SetMatrix(AT, 0, k)

	logrus.Debugf("Generator Matrix complete")
	return HColumnOrder, G, nil
}

//ColumnSwapped returns H with column c taken from column order[c].
func ColumnSwapped(H mat.SparseMat, order []int) mat.SparseMat {
	rows, cols := H.Dims()
	result := mat.CSRMat(rows, cols)

	for c, c1 := range order {
		result.SetColumn(c, H.Column(c1))
	}
	return result
}

//ValidateHGMatrices tests if G*H.T ==0 where H.T is the transpose of H
func ValidateHGMatrices(G, H mat.SparseMat) bool {
	rows, _ := G.Dims()
	cols, _ := H.Dims()

	cache := make([]mat.SparseVector, cols)
	for i := 0; i < cols; i++ {
		cache[i] = H.Row(i)
	}
	for i := 0; i < rows; i++ {
		row := G.Row(i)
		for j := 0; j < cols; j++ {
			//equiv to G*H.T
			if row.Dot(cache[j]) > 0 {
				return false
			}
		}
	}

	return true
}

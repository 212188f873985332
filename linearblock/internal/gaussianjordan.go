package internal

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/cheggaaa/pb/v3"
	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
)

var ErrDependentRows = errors.New("rows of H are not linearly independent")

// reduction is a matrix being brought into reduced row echelon form. The
// columns are never moved, order records the permutation instead: column c
// of the reduced matrix is column order[c] of the rows.
type reduction struct {
	rows  []mat.SparseVector
	order []int
}

func newReduction(H mat.SparseMat) *reduction {
	rows, cols := H.Dims()
	r := &reduction{
		rows:  make([]mat.SparseVector, rows),
		order: make([]int, cols),
	}
	for i := range r.rows {
		r.rows[i] = mat.CSRVecCopy(H.Row(i))
	}
	for c := range r.order {
		r.order[c] = c
	}
	return r
}

// pivot finds a row at or below forRow with a 1 in a column at or after
// forRow (permuted order).
func (r *reduction) pivot(forRow int) (row, col int) {
	for c := forRow; c < len(r.order); c++ {
		for i := forRow; i < len(r.rows); i++ {
			if r.rows[i].At(r.order[c]) == 1 {
				return i, c
			}
		}
	}
	return -1, -1
}

// eliminate clears the pivot column of every row but rowIndex.
func (r *reduction) eliminate(ctx context.Context, rowIndex int, threads int) {
	col := r.order[rowIndex]
	prow := r.rows[rowIndex]
	pool := threadpool.New(ctx, threads)

	//in GF2 subtract is add, each task only touches its own row
	for i := range r.rows {
		if i == rowIndex || r.rows[i].At(col) == 0 {
			continue
		}
		index := i
		pool.Add(func() {
			r.rows[index].Add(r.rows[index], prow)
		})
	}
	pool.Wait()
}

// run reduces as many rows as possible and returns the rank found.
func (r *reduction) run(ctx context.Context, threads int, showProgressBar bool) (int, error) {
	bar := pb.Full.New(len(r.rows))
	bar.Set("prefix", "Processing Row ")
	bar.SetWriter(os.Stdout)
	if showProgressBar {
		bar.Start()
	}

	for i := range r.rows {
		select {
		case <-ctx.Done():
			return i, ctx.Err()
		default:
		}
		bar.Increment()

		prow, pcol := r.pivot(i)
		if prow == -1 {
			//every remaining row is zero
			bar.Finish()
			return i, nil
		}
		r.rows[i], r.rows[prow] = r.rows[prow], r.rows[i]
		r.order[i], r.order[pcol] = r.order[pcol], r.order[i]

		r.eliminate(ctx, i, threads)
	}

	bar.SetTemplateString(`{{string . "prefix"}}{{counters . }}{{string . "suffix"}}`)
	bar.Set("suffix", " Done")
	bar.Finish()
	return len(r.rows), nil
}

// matrix returns the reduced rows with the columns permuted.
func (r *reduction) matrix() mat.SparseMat {
	result := mat.CSRMat(len(r.rows), len(r.order))
	for i, row := range r.rows {
		for c, c1 := range r.order {
			if row.At(c1) == 1 {
				result.Set(i, c, 1)
			}
		}
	}
	return result
}

// GaussianJordanEliminationGF2 reduces H to [I, A] up to a column permutation
// and returns the reduced matrix (columns permuted) along with that
// permutation. It returns nil when the rows of H are dependent.
func GaussianJordanEliminationGF2(ctx context.Context, H mat.SparseMat, threads int) (mat.SparseMat, []int) {
	r, err := reduce(ctx, H, threads)
	if err != nil {
		logrus.Debugf("Gaussian-Jordan Elimination failed: %v", err)
		return nil, nil
	}
	return r.matrix(), r.order
}

func reduce(ctx context.Context, H mat.SparseMat, threads int) (*reduction, error) {
	rows, cols := H.Dims()
	if cols < rows {
		return nil, fmt.Errorf("%w: shape (%v,%v)", ErrDependentRows, rows, cols)
	}

	r := newReduction(H)
	logrus.Debugf("Reduced row echelon")
	rank, err := r.run(ctx, threads, logrus.GetLevel() == logrus.DebugLevel)
	if err != nil {
		return nil, err
	}
	if rank != rows {
		return nil, fmt.Errorf("%w: rank %v of %v rows", ErrDependentRows, rank, rows)
	}
	logrus.Debugf("Gaussian-Jordan Elimination complete")
	return r, nil
}

//CalculateRank returns the GF2 rank of H or -1 when H is nil.
func CalculateRank(ctx context.Context, H mat.SparseMat, threads int, showProgressBar bool) int {
	if H == nil {
		return -1
	}
	rank, err := newReduction(H).run(ctx, threads, showProgressBar)
	if err != nil {
		return -1
	}
	return rank
}

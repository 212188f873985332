package internal

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	mat "github.com/nathanhack/sparsemat"
)

func TestGaussianJordanEliminationGF2(t *testing.T) {
	tests := []struct {
		input    mat.SparseMat
		expected mat.SparseMat
	}{
		{ //Hamming 7
			mat.CSRMat(3, 7, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1),
			mat.CSRMat(3, 7, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1),
		},
		{ //rows out of order
			mat.CSRMat(2, 3, 0, 1, 1, 1, 0, 1),
			mat.CSRMat(2, 3, 1, 0, 1, 0, 1, 1),
		},
		{ //needs a column swap
			mat.CSRMat(2, 3, 1, 1, 0, 1, 1, 1),
			mat.CSRMat(2, 3, 1, 0, 1, 0, 1, 0),
		},
		{ //Random - one linearly dependent row
			mat.CSRMat(4, 5, 1, 1, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 1, 1),
			nil,
		},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {

			gen, _ := GaussianJordanEliminationGF2(context.Background(), test.input, 0)

			if test.expected != nil {
				if !test.expected.Equals(gen) {
					t.Fatalf("expected \n%v\n but found \n%v\n", test.expected, gen)
				}
			} else {
				if gen != nil {
					t.Fatalf("expected nil but found \n%v\n", gen)
				}
			}
		})
	}
}

func TestCalculateRank(t *testing.T) {
	tests := []struct {
		input    mat.SparseMat
		expected int
	}{
		{mat.CSRIdentity(5), 5},
		{mat.CSRMat(4, 5, 1, 1, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 1, 1), 3},
		{mat.CSRMat(2, 2, 1, 1, 1, 1), 1},
		{mat.CSRMat(2, 3), 0},
		{nil, -1},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := CalculateRank(context.Background(), test.input, 0, false)
			if actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}

func TestNewFromH(t *testing.T) {
	tests := []mat.SparseMat{
		mat.CSRMat(3, 7, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1),
		mat.CSRMat(2, 3, 1, 1, 0, 1, 0, 1),
		mat.CSRMat(4, 6, 1, 0, 1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 1),
		mat.CSRMat(3, 4, 1, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 1),
	}
	for i, H := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			order, G, err := NewFromH(context.Background(), H, 0)
			if err != nil {
				t.Fatalf("expected no error but found %v", err)
			}

			rows, cols := H.Dims()
			k, n := G.Dims()
			if k != cols-rows || n != cols {
				t.Fatalf("expected G of shape (%v,%v) but found (%v,%v)", cols-rows, cols, k, n)
			}
			if !ValidateHGMatrices(G, ColumnSwapped(H, order)) {
				t.Fatalf("expected G*H.T == 0 for \n%v\n%v", G, H)
			}
		})
	}
}

func TestNewFromHDependent(t *testing.T) {
	H := mat.CSRMat(3, 5, 1, 1, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 1, 0, 0)
	_, _, err := NewFromH(context.Background(), H, 0)
	if !errors.Is(err, ErrDependentRows) {
		t.Fatalf("expected %v but found %v", ErrDependentRows, err)
	}
}

// most rows have nothing to eliminate, so each round adds far fewer jobs than rows
func TestCalculateRankSparseRows(t *testing.T) {
	h := mat.CSRIdentity(64)
	h.Set(0, 63, 1)

	done := make(chan int)
	go func() { done <- CalculateRank(context.Background(), h, 4, false) }()

	select {
	case actual := <-done:
		if actual != 64 {
			t.Fatalf("expected %v but found %v", 64, actual)
		}
	case <-time.After(10 * time.Second):
		t.Fatalf("rank did not finish")
	}
}

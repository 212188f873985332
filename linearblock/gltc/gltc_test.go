package gltc

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/nathanhack/gltc/patterns"
	"github.com/nathanhack/gltc/syndrome"
	mat "github.com/nathanhack/sparsemat"
	"github.com/stretchr/testify/require"
)

func allMessages(k int) []mat.SparseVector {
	result := make([]mat.SparseVector, 0, 1<<k)
	for v := 0; v < 1<<k; v++ {
		message := mat.CSRVec(k)
		for j := 0; j < k; j++ {
			if v&(1<<j) > 0 {
				message.Set(j, 1)
			}
		}
		result = append(result, message)
	}
	return result
}

func mustBursts(n, b int) [][]int {
	p, err := patterns.Bursts(n, b)
	if err != nil {
		panic(err)
	}
	return p
}

func TestCorrect(t *testing.T) {
	tests := []struct {
		patterns [][]int
		expected Report
	}{
		{patterns.StandardBasis(3), Report{CodewordLength: 3, MessageLength: 1, ParitySymbols: 2, Patterns: 3, Girth: -1}},
		{patterns.StandardBasis(7), Report{CodewordLength: 7, MessageLength: 4, ParitySymbols: 3, Patterns: 7, Girth: 4}},
		{mustBursts(6, 2), Report{CodewordLength: 6, MessageLength: 2, ParitySymbols: 4, Patterns: 11, Girth: -1}},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			code, err := New(context.Background(), test.patterns, 0)
			require.NoError(t, err)
			require.True(t, code.Block.Validate())

			report := code.Report(context.Background(), 0)
			test.expected.CodeRate = float64(test.expected.MessageLength) / float64(test.expected.CodewordLength)
			require.Equal(t, test.expected, report)

			for _, message := range allMessages(code.Block.MessageLength()) {
				codeword := code.Block.Encode(message)

				corrected, ok := code.Correct(codeword)
				require.True(t, ok)
				require.True(t, corrected.Equals(codeword))

				for _, p := range code.Mapper.Patterns() {
					received := mat.CSRVecCopy(codeword)
					received.Add(received, p.Sparse())

					corrected, ok := code.Correct(received)
					require.True(t, ok, "pattern %v", p)
					if !corrected.Equals(codeword) {
						t.Fatalf("expected %v but found %v for pattern %v", codeword, corrected, p)
					}
					if actual := code.Decode(received); !actual.Equals(message) {
						t.Fatalf("expected %v but found %v for pattern %v", message, actual, p)
					}
				}
			}
		})
	}
}

func TestCorrectUnknownSyndrome(t *testing.T) {
	// single errors on 6 bits use syndromes 1 to 6, an error on the first and
	// last position gives 7
	code, err := New(context.Background(), patterns.StandardBasis(6), 0)
	require.NoError(t, err)

	received := mat.CSRVec(6, 1, 0, 0, 0, 0, 1)
	key, err := syndrome.FromSparse(code.Block.Syndrome(received))
	require.NoError(t, err)
	require.Equal(t, syndrome.MustVector(1, 1, 1), key)

	corrected, ok := code.Correct(received)
	require.False(t, ok)
	require.True(t, corrected.Equals(received))
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		patterns [][]int
		err      error
	}{
		{[][]int{{0, 0, 1}, {0, 1, 0}}, syndrome.ErrIncompleteBasis},
		{[][]int{{1, 0, 0}, {1, 1, 0}}, syndrome.ErrMissingResidual},
		{nil, syndrome.ErrEmptyPatterns},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			_, err := New(context.Background(), test.patterns, 0)
			require.ErrorIs(t, err, test.err)
		})
	}
}

func TestNewNoMessage(t *testing.T) {
	// a single bit has one syndrome, leaving no message symbols
	_, err := New(context.Background(), [][]int{{1}}, 0)
	require.ErrorContains(t, err, "fewer rows than columns")

	_, err = New(context.Background(), [][]int{{1, 0}, {0, 1}, {1, 1}}, 0)
	require.ErrorContains(t, err, "fewer rows than columns")
}

func TestCodeJSON(t *testing.T) {
	code, err := New(context.Background(), mustBursts(6, 2), 0)
	require.NoError(t, err)

	bs, err := json.Marshal(code)
	require.NoError(t, err)

	var loaded Code
	require.NoError(t, json.Unmarshal(bs, &loaded))
	require.Equal(t, code.Mapper.FullMap(), loaded.Mapper.FullMap())
	require.True(t, code.Block.H.Equals(loaded.Block.H))

	for _, p := range loaded.Mapper.Patterns() {
		corrected, ok := loaded.Correct(p.Sparse())
		require.True(t, ok)
		require.True(t, corrected.IsZero())
	}
}

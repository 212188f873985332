package patterns

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		literal  string
		expected [][]int
		err      error
	}{
		{"[[1,0,0],[0,1,0]]", [][]int{{1, 0, 0}, {0, 1, 0}}, nil},
		{"[(1, 0), (0, 1)]", [][]int{{1, 0}, {0, 1}}, nil},
		{" [ [1] ] ", [][]int{{1}}, nil},
		{"[[1,0]", nil, ErrSyntax},
		{"[[1,a]]", nil, ErrSyntax},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual, err := Parse(test.literal)
			if test.err != nil {
				require.ErrorIs(t, err, test.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.expected, actual)
		})
	}
}

func TestRead(t *testing.T) {
	input := `# bursts of length 2
[0, 0, 1]
0 1 1   # trailing comment

1,1,0
(1, 0, 0)
`
	actual, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 0, 1}, {0, 1, 1}, {1, 1, 0}, {1, 0, 0}}, actual)
}

func TestReadSyntaxError(t *testing.T) {
	_, err := Read(strings.NewReader("1 0 1\n1 x 1\n"))
	require.ErrorIs(t, err, ErrSyntax)
	require.Contains(t, err.Error(), "line 2")
}

func TestStandardBasis(t *testing.T) {
	require.Equal(t, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, StandardBasis(3))
	require.Empty(t, StandardBasis(0))
}

func TestBursts(t *testing.T) {
	tests := []struct {
		n, b     int
		expected [][]int
	}{
		{3, 1, [][]int{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}}},
		{3, 2, [][]int{{0, 0, 1}, {0, 1, 0}, {0, 1, 1}, {1, 0, 0}, {1, 1, 0}}},
		{3, 3, [][]int{{0, 0, 1}, {0, 1, 0}, {0, 1, 1}, {1, 0, 0}, {1, 0, 1}, {1, 1, 0}, {1, 1, 1}}},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual, err := Bursts(test.n, test.b)
			require.NoError(t, err)
			require.Equal(t, test.expected, actual)
		})
	}

	actual, err := Bursts(6, 2)
	require.NoError(t, err)
	require.Len(t, actual, 11)

	_, err = Bursts(3, 4)
	require.Error(t, err)
	_, err = Bursts(3, 0)
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		src      Source
		expected [][]int
	}{
		{Source{Literal: "[[1,1]]", StandardBasis: 2}, [][]int{{1, 1}}},
		{Source{Lines: strings.NewReader("1 1"), StandardBasis: 2}, [][]int{{1, 1}}},
		{Source{StandardBasis: 2, Burst: []int{2, 2}}, [][]int{{1, 0}, {0, 1}}},
		{Source{Burst: []int{2, 2}}, [][]int{{0, 1}, {1, 0}, {1, 1}}},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual, err := Load(test.src)
			require.NoError(t, err)
			require.Equal(t, test.expected, actual)
		})
	}

	_, err := Load(Source{})
	require.ErrorIs(t, err, ErrNoSource)

	_, err = Load(Source{Burst: []int{3}})
	require.ErrorIs(t, err, ErrSyntax)
}

package syndrome

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// class holds every pattern sharing one dimension index, in canonical
// order. The first member is the basis vector of the class.
type class struct {
	dimension int
	members   []Vector
}

func (c class) basis() Vector {
	return c.members[0]
}

// canonicalize validates the raw patterns and returns them deduplicated and
// sorted lexicographically, together with their common length.
func canonicalize(patterns [][]int) ([]Vector, int, error) {
	if len(patterns) == 0 {
		return nil, 0, ErrEmptyPatterns
	}

	n := len(patterns[0])
	seen := make(map[Vector]bool, len(patterns))
	result := make([]Vector, 0, len(patterns))
	for i, p := range patterns {
		if len(p) != n {
			return nil, 0, fmt.Errorf("%w: pattern %v has length %v, expected %v", ErrLengthMismatch, i, len(p), n)
		}
		v, err := NewVector(p)
		if err != nil {
			return nil, 0, fmt.Errorf("pattern %v: %w", i, err)
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		result = append(result, v)
	}

	slices.SortFunc(result, compareVectors)
	return result, n, nil
}

// extractBasis groups the nonzero patterns by dimension index. The
// patterns must already be canonical so each class keeps canonical order.
// Classes are returned by ascending dimension.
func extractBasis(patterns []Vector) []class {
	groups := make(map[int][]Vector)
	for _, p := range patterns {
		d := p.Dimension()
		if d < 0 {
			continue
		}
		groups[d] = append(groups[d], p)
	}

	dims := maps.Keys(groups)
	slices.Sort(dims)

	classes := make([]class, 0, len(dims))
	for _, d := range dims {
		classes = append(classes, class{dimension: d, members: groups[d]})
	}
	return classes
}

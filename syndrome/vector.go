package syndrome

import (
	"fmt"
	"math/bits"
	"strings"

	mat "github.com/nathanhack/sparsemat"
)

// MaxLength is the longest supported vector. Syndromes live in a roaring
// bitmap keyed by uint32, so a vector can not be wider than 32 elements.
const MaxLength = 32

// Vector is a binary vector over GF(2) with at most MaxLength elements.
//
// Bit order: element 0 is the most significant (leftmost) element and is kept
// in bit n-1 of value, element n-1 is kept in bit 0. Comparing two values of
// the same length numerically is therefore the same as comparing the element
// sequences lexicographically, and the dimension index of a vector is simply
// the position of its highest set bit in value.
//
// Vector is comparable and can be used as a map key.
type Vector struct {
	value uint32
	n     int
}

// NewVector creates a Vector from a sequence of 0/1 elements.
func NewVector(elements []int) (Vector, error) {
	if len(elements) == 0 {
		return Vector{}, ErrZeroLength
	}
	if len(elements) > MaxLength {
		return Vector{}, fmt.Errorf("%w: found %v elements", ErrTooLong, len(elements))
	}

	v := Vector{n: len(elements)}
	for i, e := range elements {
		switch e {
		case 0:
		case 1:
			v.value |= 1 << (v.n - 1 - i)
		default:
			return Vector{}, fmt.Errorf("%w: element %v is %v", ErrNotBinary, i, e)
		}
	}
	return v, nil
}

// MustVector is like NewVector but panics on invalid input.
func MustVector(elements ...int) Vector {
	v, err := NewVector(elements)
	if err != nil {
		panic(err)
	}
	return v
}

// Unit returns the length n vector with only element position set.
func Unit(n, position int) Vector {
	if n <= 0 || n > MaxLength || position < 0 || position >= n {
		panic(fmt.Sprintf("unit vector position %v out of range for length %v", position, n))
	}
	return Vector{value: 1 << (n - 1 - position), n: n}
}

// FromSparse converts a sparse GF(2) vector into a Vector.
func FromSparse(v mat.SparseVector) (Vector, error) {
	elements := make([]int, v.Len())
	for _, i := range v.NonzeroArray() {
		elements[i] = 1
	}
	return NewVector(elements)
}

func fromValue(value uint32, n int) Vector {
	return Vector{value: value, n: n}
}

// Len returns the number of elements.
func (v Vector) Len() int {
	return v.n
}

// At returns element i (0 is the leftmost element).
func (v Vector) At(i int) int {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("index %v out of range for length %v", i, v.n))
	}
	return int(v.value>>(v.n-1-i)) & 1
}

// Ints returns the elements as a slice.
func (v Vector) Ints() []int {
	result := make([]int, v.n)
	for i := range result {
		result[i] = v.At(i)
	}
	return result
}

func (v Vector) IsZero() bool {
	return v.value == 0
}

// Dimension returns the dimension index of v: (n-1) minus the position of
// the first set element. The zero vector has no dimension and returns -1.
func (v Vector) Dimension() int {
	return bits.Len32(v.value) - 1
}

// Xor returns v+o over GF(2). Both vectors must have the same length.
func (v Vector) Xor(o Vector) Vector {
	if v.n != o.n {
		panic(fmt.Sprintf("vector lengths %v and %v differ", v.n, o.n))
	}
	return Vector{value: v.value ^ o.value, n: v.n}
}

// Weight returns the hamming weight.
func (v Vector) Weight() int {
	return bits.OnesCount32(v.value)
}

// Less reports whether v comes before o in canonical (lexicographic) order.
// Shorter vectors sort first.
func (v Vector) Less(o Vector) bool {
	if v.n != o.n {
		return v.n < o.n
	}
	return v.value < o.value
}

// Sparse converts v into a sparse vector with the same element order.
func (v Vector) Sparse() mat.SparseVector {
	result := mat.CSRVec(v.n)
	for i := 0; i < v.n; i++ {
		if v.At(i) == 1 {
			result.Set(i, 1)
		}
	}
	return result
}

// String returns v as a list, for example "[1, 0, 1]".
func (v Vector) String() string {
	sb := strings.Builder{}
	sb.WriteString("[")
	for i := 0; i < v.n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprint(v.At(i)))
	}
	sb.WriteString("]")
	return sb.String()
}

func compareVectors(a, b Vector) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}
	return 0
}

package syndrome

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Pair is one entry of the basis mapping.
type Pair struct {
	Basis    Vector
	Syndrome Vector
}

// Round records how one dimension class was assigned.
type Round struct {
	Dimension  int
	Basis      Vector
	Syndrome   Vector
	GroupSize  int
	Candidates int // candidates examined, the accepted one included
}

// Mapper is an immutable syndrome mapping built greedily from a set of
// error patterns. Every nonzero pattern gets a distinct nonzero syndrome
// of the same length, and the mapping is the restriction of a linear map
// defined on the basis vectors (one per dimension class).
type Mapper struct {
	n         int
	patterns  []Vector
	classes   []class
	syndromes map[Vector]Vector
	inverse   map[Vector]Vector
	rounds    []Round
}

// Construct validates the patterns and builds the mapping.
//
// Patterns are deduplicated and sorted before processing, so the result does
// not depend on input order. The zero pattern is accepted and ignored.
func Construct(patterns [][]int) (*Mapper, error) {
	vectors, n, err := canonicalize(patterns)
	if err != nil {
		return nil, err
	}

	m := &Mapper{
		n:        n,
		patterns: vectors,
		classes:  extractBasis(vectors),
	}
	logrus.Debugf("constructing syndromes for %v patterns of length %v in %v dimension classes", len(vectors), n, len(m.classes))

	a := newAssigner(n)
	for _, c := range m.classes {
		round, err := a.assign(c)
		if err != nil {
			return nil, err
		}
		m.rounds = append(m.rounds, round)
	}

	m.syndromes = a.assigned
	m.inverse = make(map[Vector]Vector, len(a.assigned))
	for p, s := range a.assigned {
		m.inverse[s] = p
	}
	return m, nil
}

// assigner hands out syndromes one dimension class at a time. pool holds
// every nonzero syndrome not yet committed.
type assigner struct {
	n        int
	pool     *roaring.Bitmap
	assigned map[Vector]Vector
	batch    []uint32
	seen     *roaring.Bitmap
}

func newAssigner(n int) *assigner {
	pool := roaring.New()
	pool.AddRange(1, uint64(1)<<n)
	return &assigner{
		n:        n,
		pool:     pool,
		assigned: make(map[Vector]Vector),
		seen:     roaring.New(),
	}
}

func (a *assigner) assign(c class) (Round, error) {
	b := c.basis()

	// the residual of each member lies in a lower dimension, so its syndrome
	// must already be known
	residuals := make([]uint32, 0, len(c.members)-1)
	for _, member := range c.members[1:] {
		r := member.Xor(b)
		s, has := a.assigned[r]
		if !has {
			return Round{}, &ConstructionError{
				Dimension: c.dimension,
				Basis:     b,
				Member:    member,
				Residual:  r,
				Err:       ErrMissingResidual,
			}
		}
		residuals = append(residuals, s.value)
	}

	tried := 0
	accepted := false
	it := a.pool.Iterator()
	for it.HasNext() {
		candidate := it.Next()
		tried++
		if a.propose(candidate, residuals) {
			accepted = true
			break
		}
	}

	if !accepted {
		return Round{}, &ConstructionError{Dimension: c.dimension, Basis: b, Err: ErrNoCandidate}
	}

	for i, member := range c.members {
		a.assigned[member] = fromValue(a.batch[i], a.n)
		a.pool.Remove(a.batch[i])
	}

	round := Round{
		Dimension:  c.dimension,
		Basis:      b,
		Syndrome:   a.assigned[b],
		GroupSize:  len(c.members),
		Candidates: tried,
	}
	logrus.Debugf("dimension %v: basis %v -> %v (group size %v, %v candidates)",
		round.Dimension, round.Basis, round.Syndrome, round.GroupSize, round.Candidates)
	return round, nil
}

// propose fills batch with the syndromes the class would get if its basis
// took candidate, and reports whether all of them are unused and distinct.
// Nothing is committed here.
func (a *assigner) propose(candidate uint32, residuals []uint32) bool {
	a.batch = append(a.batch[:0], candidate)
	for _, s := range residuals {
		a.batch = append(a.batch, candidate^s)
	}

	a.seen.Clear()
	for _, s := range a.batch {
		if !a.pool.Contains(s) || !a.seen.CheckedAdd(s) {
			return false
		}
	}
	return true
}

// Len returns the length of the patterns and syndromes.
func (m *Mapper) Len() int {
	return m.n
}

// FullMap returns a copy of the mapping from every nonzero pattern to its
// syndrome.
func (m *Mapper) FullMap() map[Vector]Vector {
	result := make(map[Vector]Vector, len(m.syndromes))
	for p, s := range m.syndromes {
		result[p] = s
	}
	return result
}

// BasisMap returns the basis vectors with their syndromes by ascending
// dimension.
func (m *Mapper) BasisMap() []Pair {
	result := make([]Pair, 0, len(m.classes))
	for _, c := range m.classes {
		b := c.basis()
		result = append(result, Pair{Basis: b, Syndrome: m.syndromes[b]})
	}
	return result
}

// Patterns returns the mapped patterns in canonical order.
func (m *Mapper) Patterns() []Vector {
	result := maps.Keys(m.syndromes)
	slices.SortFunc(result, compareVectors)
	return result
}

// Syndrome looks up the syndrome of a mapped pattern.
func (m *Mapper) Syndrome(pattern Vector) (Vector, bool) {
	s, has := m.syndromes[pattern]
	return s, has
}

// Pattern looks up the pattern owning a syndrome.
func (m *Mapper) Pattern(syndrome Vector) (Vector, bool) {
	p, has := m.inverse[syndrome]
	return p, has
}

// Rounds returns the construction trace, one entry per dimension class.
func (m *Mapper) Rounds() []Round {
	return slices.Clone(m.rounds)
}

// Extend applies the underlying linear map to any vector in the span of the
// basis. It returns false when v has the wrong length or lies outside the span.
func (m *Mapper) Extend(v Vector) (Vector, bool) {
	if v.n != m.n {
		return Vector{}, false
	}

	rest := v.value
	var acc uint32
	for i := len(m.classes) - 1; i >= 0 && rest != 0; i-- {
		c := m.classes[i]
		if rest>>c.dimension&1 == 0 {
			continue
		}
		rest ^= c.basis().value
		acc ^= m.syndromes[c.basis()].value
	}
	if rest != 0 {
		return Vector{}, false
	}
	return fromValue(acc, m.n), true
}

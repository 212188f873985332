// Package gltc builds loop-transversal codes. The parity check matrix comes
// from a greedy syndrome mapping of the error patterns the code must correct,
// and decoding is a lookup of the received word's syndrome.
package gltc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nathanhack/gltc/linearblock"
	"github.com/nathanhack/gltc/syndrome"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

// Code is a loop-transversal linear block code together with the mapping it
// was built from.
type Code struct {
	Block  *linearblock.LinearBlock
	Mapper *syndrome.Mapper
	table  map[syndrome.Vector]syndrome.Vector
}

// New constructs the syndrome mapping for patterns and derives the code.
// The patterns must contain a basis vector for every position, otherwise
// some positions would never be checked.
func New(ctx context.Context, patterns [][]int, threads int) (*Code, error) {
	m, err := syndrome.Construct(patterns)
	if err != nil {
		return nil, err
	}
	return FromMapper(ctx, m, threads)
}

// FromMapper derives the code for an already constructed mapping.
func FromMapper(ctx context.Context, m *syndrome.Mapper, threads int) (*Code, error) {
	H, err := m.PositionalParityCheckMatrix()
	if err != nil {
		return nil, err
	}

	rows, cols := H.Dims()
	logrus.Debugf("parity check matrix is %vx%v", rows, cols)
	block, err := linearblock.New(ctx, H, threads)
	if err != nil {
		return nil, err
	}
	return newCode(m, block)
}

func newCode(m *syndrome.Mapper, block *linearblock.LinearBlock) (*Code, error) {
	c := &Code{
		Block:  block,
		Mapper: m,
		table:  make(map[syndrome.Vector]syndrome.Vector),
	}
	for _, p := range m.Patterns() {
		s, err := syndrome.FromSparse(block.Syndrome(p.Sparse()))
		if err != nil {
			return nil, err
		}
		if q, has := c.table[s]; has {
			return nil, fmt.Errorf("patterns %v and %v share syndrome %v", q, p, s)
		}
		c.table[s] = p
	}
	return c, nil
}

// For JSON, the mapping is rebuilt from the patterns on load.
type code struct {
	Patterns [][]int
	Block    *linearblock.LinearBlock
}

func (c *Code) MarshalJSON() ([]byte, error) {
	ps := c.Mapper.Patterns()
	cc := code{Patterns: make([][]int, len(ps)), Block: c.Block}
	for i, p := range ps {
		cc.Patterns[i] = p.Ints()
	}
	return json.Marshal(cc)
}

func (c *Code) UnmarshalJSON(bytes []byte) error {
	var cc code
	if err := json.Unmarshal(bytes, &cc); err != nil {
		return err
	}
	if cc.Block == nil || cc.Block.Processing == nil {
		return fmt.Errorf("code is missing its linear block")
	}

	m, err := syndrome.Construct(cc.Patterns)
	if err != nil {
		return err
	}
	loaded, err := newCode(m, cc.Block)
	if err != nil {
		return err
	}
	*c = *loaded
	return nil
}

// Correct removes the error pattern whose syndrome matches received. Words
// with a zero syndrome are returned unchanged, as are words whose syndrome
// belongs to no pattern (ok is then false).
func (c *Code) Correct(received mat.SparseVector) (corrected mat.SparseVector, ok bool) {
	corrected = mat.CSRVecCopy(received)

	s := c.Block.Syndrome(received)
	if s.IsZero() {
		return corrected, true
	}

	key, err := syndrome.FromSparse(s)
	if err != nil {
		panic(err)
	}
	pattern, has := c.table[key]
	if !has {
		logrus.Debugf("syndrome %v matches no error pattern", key)
		return corrected, false
	}

	corrected.Add(corrected, pattern.Sparse())
	return corrected, true
}

// Decode corrects received and extracts the message.
func (c *Code) Decode(received mat.SparseVector) mat.SparseVector {
	corrected, _ := c.Correct(received)
	return c.Block.Decode(corrected)
}

// Report summarizes a code.
type Report struct {
	CodewordLength int
	MessageLength  int
	ParitySymbols  int
	CodeRate       float64
	Patterns       int
	Girth          int
}

// Report gathers the code parameters. Girth comes from the tanner graph of
// the parity check matrix and is -1 when it has no cycles.
func (c *Code) Report(ctx context.Context, threads int) Report {
	return Report{
		CodewordLength: c.Block.CodewordLength(),
		MessageLength:  c.Block.MessageLength(),
		ParitySymbols:  c.Block.ParitySymbols(),
		CodeRate:       c.Block.CodeRate(),
		Patterns:       len(c.table),
		Girth:          linearblock.CalculateGirth(ctx, c.Block.H, threads),
	}
}

func (r Report) String() string {
	return fmt.Sprintf("{n:%v, k:%v, parity:%v, rate:%0.3f, patterns:%v, girth:%v}",
		r.CodewordLength, r.MessageLength, r.ParitySymbols, r.CodeRate, r.Patterns, r.Girth)
}

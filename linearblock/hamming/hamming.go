package hamming

import (
	"context"
	"fmt"

	"github.com/nathanhack/gltc/linearblock/gltc"
	"github.com/nathanhack/gltc/patterns"
	"github.com/nathanhack/gltc/syndrome"
)

// New creates the systematic hamming code with paritySymbols number of parity symbols.
// Hamming codes can detect up to two-bit errors or correct one-bit errors without
// detection of uncorrected errors.
//
// The code is the loop-transversal code of the single bit errors: the greedy
// syndrome mapping of the standard basis of length 2^paritySymbols-1 uses
// every nonzero syndrome exactly once.
func New(ctx context.Context, paritySymbols int, threads int) (*gltc.Code, error) {
	if paritySymbols < 2 {
		panic("hamming codes require >=2 parity symbols")
	}
	n := 1<<paritySymbols - 1
	if n > syndrome.MaxLength {
		return nil, fmt.Errorf("hamming code of length %v exceeds the maximum length %v", n, syndrome.MaxLength)
	}

	code, err := gltc.New(ctx, patterns.StandardBasis(n), threads)
	if err != nil {
		return nil, err
	}
	if p := code.Block.ParitySymbols(); p != paritySymbols {
		return nil, fmt.Errorf("expected %v parity symbols but found %v", paritySymbols, p)
	}
	return code, nil
}

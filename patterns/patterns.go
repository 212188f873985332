// Package patterns reads and generates sets of binary error patterns.
package patterns

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

var (
	ErrNoSource = errors.New("no error pattern source given")
	ErrSyntax   = errors.New("malformed error patterns")
)

// Parse reads a list literal such as "[[1,0,0],[0,1,0]]". Parentheses are
// accepted in place of brackets.
func Parse(literal string) ([][]int, error) {
	literal = strings.NewReplacer("(", "[", ")", "]").Replace(literal)

	var result [][]int
	if err := json.Unmarshal([]byte(literal), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return result, nil
}

// Read reads one pattern per line. A line is either a list literal like
// "[1, 0, 1]" or elements separated by spaces or commas. Blank lines and
// anything after a '#' are ignored.
func Read(r io.Reader) ([][]int, error) {
	var result [][]int
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		pattern, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %v: %v", ErrSyntax, line, err)
		}
		result = append(result, pattern)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func parseLine(text string) ([]int, error) {
	if strings.HasPrefix(text, "[") || strings.HasPrefix(text, "(") {
		text = strings.NewReplacer("(", "[", ")", "]").Replace(text)
		var pattern []int
		err := json.Unmarshal([]byte(text), &pattern)
		return pattern, err
	}

	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	pattern := make([]int, len(fields))
	for i, f := range fields {
		e, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		pattern[i] = e
	}
	return pattern, nil
}

// StandardBasis returns the n unit vectors of length n, the single bit
// errors.
func StandardBasis(n int) [][]int {
	result := make([][]int, n)
	for j := range result {
		result[j] = make([]int, n)
		result[j][j] = 1
	}
	return result
}

// Bursts returns every burst error of length 1 to b in n elements, sorted.
// A burst of length l starts and ends with a 1 and has arbitrary elements
// in between.
func Bursts(n, b int) ([][]int, error) {
	if n < 1 || b < 1 || b > n {
		return nil, fmt.Errorf("burst length %v must be between 1 and the pattern length %v", b, n)
	}

	var result [][]int
	for l := 1; l <= b; l++ {
		inner := 0
		if l > 2 {
			inner = l - 2
		}
		for start := 0; start+l <= n; start++ {
			for fill := 0; fill < 1<<inner; fill++ {
				pattern := make([]int, n)
				pattern[start] = 1
				pattern[start+l-1] = 1
				for i := 0; i < inner; i++ {
					pattern[start+1+i] = fill >> (inner - 1 - i) & 1
				}
				result = append(result, pattern)
			}
		}
	}

	slices.SortFunc(result, func(a, b []int) int {
		return slices.Compare(a, b)
	})
	return result, nil
}

// Source selects where patterns come from. The first field set wins, in
// declaration order.
type Source struct {
	Literal       string
	Lines         io.Reader
	StandardBasis int
	Burst         []int // pattern length and maximum burst length
}

// Load returns the patterns described by src.
func Load(src Source) ([][]int, error) {
	switch {
	case src.Literal != "":
		return Parse(src.Literal)
	case src.Lines != nil:
		return Read(src.Lines)
	case src.StandardBasis > 0:
		return StandardBasis(src.StandardBasis), nil
	case len(src.Burst) > 0:
		if len(src.Burst) != 2 {
			return nil, fmt.Errorf("%w: burst needs a pattern length and a burst length, found %v", ErrSyntax, src.Burst)
		}
		return Bursts(src.Burst[0], src.Burst[1])
	}
	return nil, ErrNoSource
}

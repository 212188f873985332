package hamming

import (
	"context"
	"strconv"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		paritySymbols int
	}{
		{2},
		{3},
		{4},
		{5},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			code, err := New(context.Background(), test.paritySymbols, 0)
			if err != nil {
				t.Fatalf("expected no error found :%v", err)
			}
			actual := code.Block

			if !actual.Validate() {
				t.Fatalf("expected valid linearblock code")
			}

			n := 1<<test.paritySymbols - 1
			if actual.CodewordLength() != n || actual.MessageLength() != n-test.paritySymbols {
				t.Fatalf("expected (%v,%v) code but found (%v,%v)", n, n-test.paritySymbols, actual.CodewordLength(), actual.MessageLength())
			}
		})
	}
}

func TestNewTooLong(t *testing.T) {
	_, err := New(context.Background(), 6, 0)
	if err == nil {
		t.Fatalf("expected an error for a code longer than 32 symbols")
	}
}

package mapping

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathanhack/gltc/cmd/internal/source"
	"github.com/nathanhack/gltc/syndrome"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	OutputDir string
	Compress  string
)

var FullRun = func(cmd *cobra.Command, args []string) {
	exitOnError(run(os.Stdout, printFull))
}

var BasisRun = func(cmd *cobra.Command, args []string) {
	exitOnError(run(os.Stdout, printBasis))
}

var ParityRun = func(cmd *cobra.Command, args []string) {
	exitOnError(run(os.Stdout, printParity))
}

var AllRun = func(cmd *cobra.Command, args []string) {
	exitOnError(run(os.Stdout, func(w io.Writer, m *syndrome.Mapper) error {
		source.Describe(w)
		for _, p := range []func(io.Writer, *syndrome.Mapper) error{printFull, printBasis, printRounds, printParity} {
			if err := p(w, m); err != nil {
				return err
			}
			fmt.Fprintln(w)
		}
		if OutputDir == "" {
			return nil
		}
		files, err := Export(OutputDir, Compress, m)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "Wrote", strings.Join(files, ", "))
		return nil
	}))
}

func exitOnError(err error) {
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func run(w io.Writer, view func(io.Writer, *syndrome.Mapper) error) error {
	ps, err := source.Load()
	if err != nil {
		return err
	}

	m, err := syndrome.Construct(ps)
	if err != nil {
		return err
	}
	logrus.Debugf("constructed %v syndromes", len(m.FullMap()))
	return view(w, m)
}

func printFull(w io.Writer, m *syndrome.Mapper) error {
	fmt.Fprintln(w, "Full syndrome mapping (pattern -> syndrome):")
	full := m.FullMap()
	for _, p := range m.Patterns() {
		fmt.Fprintf(w, "  %v -> %v\n", p, full[p])
	}
	return nil
}

func printBasis(w io.Writer, m *syndrome.Mapper) error {
	fmt.Fprintln(w, "Basis mapping (basis -> syndrome):")
	for _, p := range m.BasisMap() {
		fmt.Fprintf(w, "  %v -> %v\n", p.Basis, p.Syndrome)
	}
	return nil
}

func printRounds(w io.Writer, m *syndrome.Mapper) error {
	fmt.Fprintln(w, "Construction rounds (dimension: basis -> syndrome, group size, candidates):")
	for _, r := range m.Rounds() {
		fmt.Fprintf(w, "  %v: %v -> %v, %v, %v\n", r.Dimension, r.Basis, r.Syndrome, r.GroupSize, r.Candidates)
	}
	return nil
}

func printParity(w io.Writer, m *syndrome.Mapper) error {
	h := m.ParityCheckMatrix()
	rows, cols := syndrome.Shape(h)
	fmt.Fprintf(w, "Parity check matrix (%vx%v):\n", rows, cols)
	for i := 0; i < rows; i++ {
		row := h.Row(i)
		elements := make([]string, cols)
		for j := range elements {
			elements[j] = fmt.Sprint(row.At(j))
		}
		fmt.Fprintf(w, "  %v\n", strings.Join(elements, " "))
	}
	return nil
}

// Package source holds the pattern flags shared by the commands that build
// syndrome mappings.
package source

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/nathanhack/gltc/cmd/internal/tools"
	"github.com/nathanhack/gltc/patterns"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

var (
	ErrorPatterns string
	File          string
	StandardBasis uint
	Burst         []int
)

//AddFlags binds the pattern flags to flags.
func AddFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&ErrorPatterns, "error-patterns", "e", "", `the error patterns as a list literal, e.g. "[[1,0,0],[0,1,0],[0,0,1]]"`)
	flags.StringVarP(&File, "file", "f", "", "file with one error pattern per line (may be .gz, .zst or .lz4 compressed)")
	flags.UintVarP(&StandardBasis, "standard-basis", "s", 0, "use the single bit errors of this length")
	flags.IntSliceVar(&Burst, "burst", nil, "use every burst error up to a length, given as LENGTH,BURST")
}

//Load returns the patterns selected by the flags, the first one given wins.
func Load() ([][]int, error) {
	src := patterns.Source{
		Literal:       ErrorPatterns,
		StandardBasis: int(StandardBasis),
		Burst:         Burst,
	}

	if ErrorPatterns == "" && File != "" {
		r, err := tools.Open(File)
		if err != nil {
			return nil, fmt.Errorf("unable to open %v: %w", File, err)
		}
		defer r.Close()
		src.Lines = r
	}

	return load(src)
}

func load(src patterns.Source) ([][]int, error) {
	ps, err := patterns.Load(src)
	if err != nil {
		return nil, err
	}
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debugf("loaded %v patterns:\n%v", len(ps), spew.Sdump(ps))
	}
	return ps, nil
}

//Describe writes a one line summary of where the patterns came from.
func Describe(w io.Writer) {
	switch {
	case ErrorPatterns != "":
		fmt.Fprintln(w, "Error patterns: literal")
	case File != "":
		fmt.Fprintln(w, "Error patterns:", File)
	case StandardBasis > 0:
		fmt.Fprintln(w, "Error patterns: standard basis of length", StandardBasis)
	case len(Burst) == 2:
		fmt.Fprintf(w, "Error patterns: bursts up to %v in length %v\n", Burst[1], Burst[0])
	}
}

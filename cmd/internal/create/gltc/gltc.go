package gltc

import (
	"fmt"
	"os"

	"github.com/nathanhack/gltc/cmd/internal/source"
	"github.com/nathanhack/gltc/cmd/internal/tools"
	"github.com/nathanhack/gltc/linearblock/gltc"
	"github.com/spf13/cobra"
)

var Threads uint

var GLTCRun = func(cmd *cobra.Command, args []string) {
	ps, err := source.Load()
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	ctx, cancel := tools.SignalContext()
	defer cancel()

	code, err := gltc.New(ctx, ps, int(Threads))
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	if err := tools.SaveCode(args[0], code); err != nil {
		fmt.Println(err)
		return
	}

	source.Describe(os.Stdout)
	fmt.Println(code.Report(ctx, int(Threads)))
}

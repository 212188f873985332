package hamming

import (
	"fmt"

	"github.com/nathanhack/gltc/cmd/internal/tools"
	"github.com/nathanhack/gltc/linearblock/hamming"
	"github.com/spf13/cobra"
)

var (
	ParityBits uint
	Threads    uint
)

var HammingRun = func(cmd *cobra.Command, args []string) {
	ctx, cancel := tools.SignalContext()
	defer cancel()

	code, err := hamming.New(ctx, int(ParityBits), int(Threads))
	if err != nil {
		fmt.Println("Unable to create hamming code: ", err)
		return
	}

	if err := tools.SaveCode(args[0], code); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(code.Report(ctx, int(Threads)))
}

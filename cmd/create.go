package cmd

import (
	"github.com/nathanhack/gltc/cmd/internal/create/gltc"
	"github.com/nathanhack/gltc/cmd/internal/create/hamming"
	"github.com/nathanhack/gltc/cmd/internal/source"

	"github.com/spf13/cobra"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"c"},
	Short:   "used to create a new ECC",
	Long:    `create provides the ability to make a new ECC from a set of error patterns and save it so it can be used later by the tools.`,
}

// createlinearblockCmd represents the linearblock command
var createlinearblockCmd = &cobra.Command{
	Use:     "linearblock",
	Aliases: []string{"lb", "l"},
	Short:   "creates linearblock ECCs",
	Long:    `Creates linearblock ECCs.`,
}

// createGLTCCmd represents the gltc command
var createGLTCCmd = &cobra.Command{
	Use:     "gltc OUTPUT_ECC_JSON",
	Aliases: []string{"g"},
	Short:   "Creates a new loop-transversal code correcting the given error patterns",
	Long: `Creates a new loop-transversal code whose parity check matrix comes from the greedy
syndrome mapping of the error patterns. The output is compressed when OUTPUT_ECC_JSON
ends in .gz, .zst or .lz4.`,
	Args: cobra.ExactArgs(1),
	Run:  gltc.GLTCRun,
}

// createHammingCmd represents the Hamming command
var createHammingCmd = &cobra.Command{
	Use:     "hamming OUTPUT_HAMMING_JSON",
	Aliases: []string{"h", "ham"},
	Short:   "Creates a new Hamming code based ECC",
	Long:    `Creates a new Hamming code based ECC, the loop-transversal code of the single bit errors.`,
	Args:    cobra.ExactArgs(1),
	Run:     hamming.HammingRun,
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.AddCommand(createlinearblockCmd)

	createlinearblockCmd.AddCommand(createGLTCCmd)
	source.AddFlags(createGLTCCmd.Flags())
	createGLTCCmd.Flags().UintVarP(&gltc.Threads, "threads", "t", 0, "the number of threads to use; note 0 means use the number of cpus")

	createlinearblockCmd.AddCommand(createHammingCmd)
	createHammingCmd.Flags().UintVarP(&hamming.ParityBits, "parity", "p", 4, "the parity >=2, sets codeword size (cs) == 2^parity-1 and message size == cs-parity")
	createHammingCmd.Flags().UintVarP(&hamming.Threads, "threads", "t", 0, "the number of threads to use; note 0 means use the number of cpus")
}

package cmd

import (
	"github.com/nathanhack/gltc/cmd/internal/mapping"
	"github.com/nathanhack/gltc/cmd/internal/source"

	"github.com/spf13/cobra"
)

// mapCmd represents the map command
var mapCmd = &cobra.Command{
	Use:     "map",
	Aliases: []string{"m"},
	Short:   "Builds the greedy syndrome mapping of a set of error patterns",
	Long: `Builds the greedy syndrome mapping of a set of error patterns. The patterns are
taken from the first of --error-patterns, --file, --standard-basis or --burst given.`,
}

// mapFullCmd represents the full command
var mapFullCmd = &cobra.Command{
	Use:     "full",
	Aliases: []string{"f"},
	Short:   "Prints the syndrome of every error pattern",
	Long:    `Prints the syndrome of every error pattern`,
	Args:    cobra.NoArgs,
	Run:     mapping.FullRun,
}

// mapBasisCmd represents the basis command
var mapBasisCmd = &cobra.Command{
	Use:     "basis",
	Aliases: []string{"b"},
	Short:   "Prints the basis vectors and their syndromes",
	Long:    `Prints the basis vectors, one per dimension, and their syndromes`,
	Args:    cobra.NoArgs,
	Run:     mapping.BasisRun,
}

// mapParityCmd represents the parity command
var mapParityCmd = &cobra.Command{
	Use:     "parity",
	Aliases: []string{"p", "h"},
	Short:   "Prints the parity check matrix",
	Long:    `Prints the parity check matrix built from the basis syndromes`,
	Args:    cobra.NoArgs,
	Run:     mapping.ParityRun,
}

// mapAllCmd represents the all command
var mapAllCmd = &cobra.Command{
	Use:     "all",
	Aliases: []string{"a"},
	Short:   "Prints every view and optionally exports them",
	Long:    `Prints every view of the mapping and, with --output, writes them as CSV and JSON files.`,
	Args:    cobra.NoArgs,
	Run:     mapping.AllRun,
}

func init() {
	rootCmd.AddCommand(mapCmd)

	for _, c := range []*cobra.Command{mapFullCmd, mapBasisCmd, mapParityCmd, mapAllCmd} {
		mapCmd.AddCommand(c)
		source.AddFlags(c.Flags())
	}

	mapAllCmd.Flags().StringVarP(&mapping.OutputDir, "output", "o", "", "directory to export the mapping to")
	mapAllCmd.Flags().StringVar(&mapping.Compress, "compress", "", "compress exported files: .gz, .zst or .lz4")
}

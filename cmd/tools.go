package cmd

import (
	"time"

	"github.com/nathanhack/gltc/cmd/internal/tools/chansim"
	"github.com/nathanhack/gltc/cmd/internal/tools/chart"
	"github.com/nathanhack/gltc/cmd/internal/tools/csv"

	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for ECCs",
	Long:    `Tools for ECCs`,
}

// toolsChansimCmd represents the chansim command
var toolsChansimCmd = &cobra.Command{
	Use:     "chansim",
	Aliases: []string{"cs", "c"},
	Short:   "Channel simulators",
	Long:    `Channel simulators for loop-transversal codes. Results are resumed when RESULT_JSON already exists.`,
}

// toolsPatternsCmd represents the patterns command
var toolsPatternsCmd = &cobra.Command{
	Use:     "patterns ECC_JSON_FILE RESULT_JSON",
	Aliases: []string{"p"},
	Short:   "A channel that adds one of the code's error patterns",
	Long:    `A channel that adds one of the code's error patterns, picked uniformly, to every codeword`,
	Args:    cobra.ExactArgs(2),
	Run:     chansim.PatternsRun,
}

// toolsBscCmd represents the bsc command
var toolsBscCmd = &cobra.Command{
	Use:   "bsc ECC_JSON_FILE RESULT_JSON",
	Short: "A binary symmetric channel simulator",
	Long:  `A binary symmetric channel simulator using syndrome lookup decoding`,
	Args:  cobra.ExactArgs(2),
	Run:   chansim.BSCRun,
}

// toolsBpskCmd represents the bpsk command
var toolsBpskCmd = &cobra.Command{
	Use:   "bpsk ECC_JSON_FILE RESULT_JSON",
	Short: "A BPSK over AWGN channel simulator",
	Long:  `A BPSK over AWGN channel simulator using hard decisions and syndrome lookup decoding`,
	Args:  cobra.ExactArgs(2),
	Run:   chansim.BPSKRun,
}

// toolsResultsCmd represents the results command
var toolsResultsCmd = &cobra.Command{
	Use:     "results",
	Aliases: []string{"r"},
	Short:   "A tool to organize results for graphing and comparison",
	Long:    `A tool to organize results for graphing and comparison`,
}

// toolsCSVCmd represents the csv command
var toolsCSVCmd = &cobra.Command{
	Use:     "csv RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"c"},
	Short:   "Export to a CSV file",
	Long:    `Export to a CSV file`,
	Run:     csv.CSVRun,
}

// toolsChartCmd represents the chart command
var toolsChartCmd = &cobra.Command{
	Use:   "chart RESULTS_JSON [RESULTS_JSON] ...",
	Short: "Export to an HTML bar chart",
	Long:  `Export to an HTML bar chart`,
	Run:   chart.ChartRun,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsChansimCmd)
	toolsCmd.AddCommand(toolsResultsCmd)

	for _, c := range []*cobra.Command{toolsPatternsCmd, toolsBscCmd, toolsBpskCmd} {
		toolsChansimCmd.AddCommand(c)
		c.Flags().UintVarP(&chansim.Trials, "trials", "t", 1_000_000, "the number of trials per step")
		c.Flags().UintVar(&chansim.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")
		c.Flags().DurationVar(&chansim.SaveInterval, "save", 10*time.Second, "how often the results are checkpointed to RESULT_JSON")
	}
	toolsBscCmd.Flags().Float64SliceVarP(&chansim.ErrorProbability, "probability", "p", []float64{0.01, 0.05, 0.10, 0.15, 0.20, 0.25, 0.30, 0.35, 0.40, 0.45, 0.50}, "probability of crossover errors to test [0, 0.5]")
	toolsBpskCmd.Flags().Float64SliceVarP(&chansim.EbN0, "ebn0", "e", []float64{0.5, 1, 2, 4, 8, 16}, "the Eb/N0 ratios to test (linear, not dB)")

	toolsResultsCmd.AddCommand(toolsCSVCmd)
	toolsCSVCmd.Flags().StringVarP(&csv.OutputFile, "output", "o", "results.csv", "filename of the combined csv")
	toolsCSVCmd.Flags().BoolVarP(&csv.MessageError, "message", "m", false, "outputs the MessageError instead of CodewordError or ParityError")
	toolsCSVCmd.Flags().BoolVarP(&csv.ParityError, "parity", "p", false, "outputs the ParityError instead of CodewordError or MessageError")

	toolsResultsCmd.AddCommand(toolsChartCmd)
	toolsChartCmd.Flags().StringVarP(&chart.OutputFile, "output", "o", "results.html", "filename of the chart")
	toolsChartCmd.Flags().BoolVarP(&chart.MessageError, "message", "m", false, "charts the MessageError instead of CodewordError or ParityError")
	toolsChartCmd.Flags().BoolVarP(&chart.ParityError, "parity", "p", false, "charts the ParityError instead of CodewordError or MessageError")
}

package chart

import (
	"fmt"
	"io"

	"github.com/nathanhack/gltc/cmd/internal/tools"
	"github.com/spf13/cobra"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var OutputFile string
var MessageError bool
var ParityError bool

var ChartRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one RESULTS_JSON")
		return
	}

	// loop through all the results files and collect data needed for displaying
	stats, params, err := tools.LoadAllResults(args)
	if err != nil {
		fmt.Println(err)
		return
	}

	f, err := tools.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}

	err = render(f, args, stats, params)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Println(err)
	}
}

func render(w io.Writer, names []string, stats []*tools.SimulationStats, params []float64) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Results",
			Subtitle: subtitle(),
			Left:     "20%",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true,
			Orient: "vertical",
			Right:  "0",
			Top:    "top",
			Type:   "scroll",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Channel Parameter",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Remaining Error",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	xnames := make([]string, len(params))
	for i, p := range params {
		xnames[i] = fmt.Sprint(p)
	}
	bar.SetXAxis(xnames)

	for i, s := range stats {
		bar.AddSeries(names[i], series(s, params))
	}

	return bar.Render(w)
}

func subtitle() string {
	switch {
	case MessageError:
		return "Message Error Rates"
	case ParityError:
		return "Parity Error Rates"
	default:
		return "Codeword Error Rates"
	}
}

func series(stat *tools.SimulationStats, values []float64) []opts.BarData {
	results := make([]opts.BarData, len(values))
	null := opts.BarData{Value: nil}
	for i, v := range values {
		x, has := stat.Stats[v]
		if !has {
			results[i] = null
			continue
		}

		results[i] = opts.BarData{
			Value: tools.ErrorRate(x, MessageError, ParityError),
		}
	}
	return results
}

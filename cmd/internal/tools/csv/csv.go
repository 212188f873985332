package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/nathanhack/gltc/cmd/internal/tools"
	"github.com/spf13/cobra"
)

var OutputFile string
var MessageError bool
var ParityError bool

var CSVRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one RESULTS_JSON")
		return
	}

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

	err = write(f, args, stats, params)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Println(err)
	}
}

func write(out io.Writer, names []string, stats []*tools.SimulationStats, params []float64) error {
	w := csv.NewWriter(out)

	//first write headers
	header := []string{"Results File"}
	for _, p := range params {
		header = append(header, fmt.Sprintf("%v", p))
	}

	err := w.Write(header)
	if err != nil {
		return err
	}

	for i, s := range stats {
		record := make([]string, len(header))
		record[0] = strings.TrimSuffix(filepath.Base(names[i]), filepath.Ext(names[i]))

		for j, p := range params {
			if v, has := s.Stats[p]; has {
				record[j+1] = fmt.Sprintf("%v", tools.ErrorRate(v, MessageError, ParityError))
			}
		}

		err = w.Write(record)
		if err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

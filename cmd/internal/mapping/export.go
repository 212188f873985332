package mapping

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nathanhack/gltc/cmd/internal/tools"
	"github.com/nathanhack/gltc/syndrome"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// Export writes the mapping into dir as CSV and JSON files, compressed when
// compress is one of tools.Compressions. It returns the files written.
func Export(dir, compress string, m *syndrome.Mapper) ([]string, error) {
	if compress != "" && !slices.Contains(tools.Compressions, compress) {
		return nil, fmt.Errorf("unknown compression %q, expected one of %v", compress, tools.Compressions)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	writers := map[string]func(string) error{
		"full_mapping.csv":  func(f string) error { return writeCSV(f, fullRecords(m)) },
		"basis_mapping.csv": func(f string) error { return writeCSV(f, basisRecords(m)) },
		"rounds.csv":        func(f string) error { return writeCSV(f, roundRecords(m)) },
		"parity_matrix.csv": func(f string) error { return writeCSV(f, parityRecords(m)) },
		"patterns.json":     func(f string) error { return writePatterns(f, m) },
	}

	var g errgroup.Group
	files := make([]string, 0, len(writers))
	for name, write := range writers {
		filename := filepath.Join(dir, name+compress)
		files = append(files, filename)
		write := write
		g.Go(func() error {
			if err := write(filename); err != nil {
				return fmt.Errorf("%v: %w", filename, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.Sort(files)
	return files, nil
}

func writeCSV(filename string, records [][]string) error {
	f, err := tools.Create(filename)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writePatterns(filename string, m *syndrome.Mapper) error {
	ps := m.Patterns()
	ints := make([][]int, len(ps))
	for i, p := range ps {
		ints[i] = p.Ints()
	}

	bs, err := json.Marshal(ints)
	if err != nil {
		return err
	}
	return tools.WriteFile(filename, bs)
}

func fullRecords(m *syndrome.Mapper) [][]string {
	full := m.FullMap()
	records := [][]string{{"Vector", "Syndrome"}}
	for _, p := range m.Patterns() {
		records = append(records, []string{p.String(), full[p].String()})
	}
	return records
}

func basisRecords(m *syndrome.Mapper) [][]string {
	records := [][]string{{"Basis", "Syndrome"}}
	for _, p := range m.BasisMap() {
		records = append(records, []string{p.Basis.String(), p.Syndrome.String()})
	}
	return records
}

func roundRecords(m *syndrome.Mapper) [][]string {
	records := [][]string{{"Dimension", "Basis", "Syndrome", "GroupSize", "Candidates"}}
	for _, r := range m.Rounds() {
		records = append(records, []string{
			strconv.Itoa(r.Dimension),
			r.Basis.String(),
			r.Syndrome.String(),
			strconv.Itoa(r.GroupSize),
			strconv.Itoa(r.Candidates),
		})
	}
	return records
}

func parityRecords(m *syndrome.Mapper) [][]string {
	h := m.ParityCheckMatrix()
	rows, cols := syndrome.Shape(h)

	header := make([]string, cols)
	for j := range header {
		header[j] = strconv.Itoa(j)
	}
	records := [][]string{header}
	for i := 0; i < rows; i++ {
		row := h.Row(i)
		record := make([]string, cols)
		for j := range record {
			record[j] = strconv.Itoa(row.At(j))
		}
		records = append(records, record)
	}
	return records
}

package csv

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/nathanhack/gltc/benchmarking"
	"github.com/nathanhack/gltc/cmd/internal/tools"
	"github.com/stretchr/testify/require"
)

func results(t *testing.T, dir, name string, values map[float64]float64) string {
	stats := map[float64]benchmarking.Stats{}
	for p, v := range values {
		var s benchmarking.Stats
		s.ChannelCodewordError.Update(v)
		s.ChannelMessageError.Update(v / 2)
		stats[p] = s
	}

	filename := filepath.Join(dir, name)
	require.NoError(t, tools.SaveResults(filename, &tools.SimulationStats{TypeInfo: "BSC", ECCInfo: "x", Stats: stats}))
	return filename
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		results(t, dir, "a.json", map[float64]float64{0.1: 0.5, 0.2: 0.25}),
		results(t, dir, "b.json", map[float64]float64{0.3: 1}),
	}

	stats, params, err := tools.LoadAllResults(names)
	require.NoError(t, err)
	require.Equal(t, []float64{0.1, 0.2, 0.3}, params)

	var buf bytes.Buffer
	require.NoError(t, write(&buf, names, stats, params))
	require.Equal(t, "Results File,0.1,0.2,0.3\na,0.5,0.25,\nb,,,1\n", buf.String())

	MessageError = true
	t.Cleanup(func() { MessageError = false })
	buf.Reset()
	require.NoError(t, write(&buf, names, stats, params))
	require.Equal(t, "Results File,0.1,0.2,0.3\na,0.25,0.125,\nb,,,0.5\n", buf.String())
}

func TestLoadAllResultsMissing(t *testing.T) {
	_, _, err := tools.LoadAllResults([]string{filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, err)
}

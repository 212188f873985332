package chansim

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/nathanhack/gltc/benchmarking"
	"github.com/nathanhack/gltc/cmd/internal/tools"
	"github.com/nathanhack/gltc/linearblock/gltc"
	"github.com/nathanhack/gltc/patterns"
	mat "github.com/nathanhack/sparsemat"
	"github.com/stretchr/testify/require"
)

func hamming7(t *testing.T) *gltc.Code {
	code, err := gltc.New(context.Background(), patterns.StandardBasis(7), 2)
	require.NoError(t, err)
	return code
}

func TestSimulatePatterns(t *testing.T) {
	Trials, Threads, SaveInterval = 50, 2, time.Hour
	code := hamming7(t)
	filename := filepath.Join(t.TempDir(), "results.json.zst")

	data, err := loadResults(filename, patternsType, tools.Md5Sum(code.Block.H))
	require.NoError(t, err)

	ps := code.Mapper.Patterns()
	simulate(context.Background(), data, filename, code, []float64{1}, func(c *gltc.Code, _ float64) benchmarking.BSC {
		return bscChannel(c, func(cw mat.SparseVector) mat.SparseVector { return benchmarking.RandomPattern(cw, ps) })
	})

	stats := data.Stats[1]
	require.Equal(t, 50, stats.ChannelCodewordError.Count)
	require.Equal(t, 0.0, stats.ChannelCodewordError.Mean)
	require.Equal(t, 0.0, stats.ChannelMessageError.Mean)

	// the first checkpoint is always written
	saved, err := tools.LoadResults(filename)
	require.NoError(t, err)
	require.NotNil(t, saved)
	require.Equal(t, patternsType, saved.TypeInfo)
}

func TestSimulateBPSK(t *testing.T) {
	Trials, Threads, SaveInterval = 20, 2, time.Hour
	code := hamming7(t)
	filename := filepath.Join(t.TempDir(), "results.json")

	data, err := loadResults(filename, bpskType, tools.Md5Sum(code.Block.H))
	require.NoError(t, err)

	simulate(context.Background(), data, filename, code, []float64{1e12}, bpskChannel)
	require.Equal(t, 20, data.Stats[1e12].ChannelCodewordError.Count)
	require.Equal(t, 0.0, data.Stats[1e12].ChannelCodewordError.Mean)
}

func TestLoadResultsMismatch(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, tools.SaveResults(filename, &tools.SimulationStats{
		TypeInfo: bscType,
		ECCInfo:  "abc",
		Stats:    map[float64]benchmarking.Stats{},
	}))

	_, err := loadResults(filename, bpskType, "abc")
	require.Error(t, err)
	_, err = loadResults(filename, bscType, "def")
	require.Error(t, err)

	data, err := loadResults(filename, bscType, "abc")
	require.NoError(t, err)
	require.Equal(t, "abc", data.ECCInfo)
}

// Package chansim runs channel simulations of loop-transversal codes and
// keeps the accumulated results in a resumable RESULT_JSON.
package chansim

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/nathanhack/gltc/benchmarking"
	"github.com/nathanhack/gltc/cmd/internal/tools"
	"github.com/nathanhack/gltc/linearblock/gltc"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
	mat2 "gonum.org/v1/gonum/mat"
)

var (
	Trials           uint
	ErrorProbability []float64
	EbN0             []float64
	Threads          uint
	SaveInterval     time.Duration
)

const (
	patternsType = "PATTERNS:gltc/Code.Correct"
	bscType      = "BSC:gltc/Code.Correct"
	bpskType     = "BPSK:gltc/Code.Correct"
)

var PatternsRun = func(cmd *cobra.Command, args []string) {
	// the patterns channel has a single setting, every trial injects one pattern
	run(args, patternsType, []float64{1}, func(code *gltc.Code, _ float64) benchmarking.BSC {
		ps := code.Mapper.Patterns()
		return bscChannel(code, func(cw mat.SparseVector) mat.SparseVector {
			return benchmarking.RandomPattern(cw, ps)
		})
	})
}

var BSCRun = func(cmd *cobra.Command, args []string) {
	run(args, bscType, ErrorProbability, func(code *gltc.Code, p float64) benchmarking.BSC {
		return bscChannel(code, func(cw mat.SparseVector) mat.SparseVector {
			return benchmarking.RandomFlipProbability(cw, p)
		})
	})
}

var BPSKRun = func(cmd *cobra.Command, args []string) {
	run(args, bpskType, EbN0, bpskChannel)
}

func run[C any](args []string, typeInfo string, values []float64, channel func(*gltc.Code, float64) benchmarking.Channel[C]) {
	if len(args) != 2 {
		fmt.Println("requires both ECC_JSON_FILE RESULT_JSON")
		return
	}

	code, err := tools.LoadCode(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	data, err := loadResults(args[1], typeInfo, tools.Md5Sum(code.Block.H))
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, cancel := tools.SignalContext()
	defer cancel()

	simulate(ctx, data, args[1], code, values, channel)

	err = tools.SaveResults(args[1], data)
	if err != nil {
		fmt.Println(err)
	}
}

//loadResults loads the previous results at filename, or starts new ones, and
//checks they were produced by the same simulation of the same code.
func loadResults(filename, typeInfo, eccInfo string) (*tools.SimulationStats, error) {
	data, err := tools.LoadResults(filename)
	if err != nil {
		return nil, err
	}

	if data == nil {
		return &tools.SimulationStats{
			TypeInfo: typeInfo,
			ECCInfo:  eccInfo,
			Stats:    make(map[float64]benchmarking.Stats),
		}, nil
	}

	if data.TypeInfo != typeInfo {
		return nil, fmt.Errorf("results loaded do not match the same type expected %v but found %v", typeInfo, data.TypeInfo)
	}
	if data.ECCInfo != eccInfo {
		return nil, fmt.Errorf("results loaded do not match the ECC")
	}
	if data.Stats == nil {
		data.Stats = make(map[float64]benchmarking.Stats)
	}
	return data, nil
}

func simulate[C any](ctx context.Context, data *tools.SimulationStats, outputFilename string, code *gltc.Code, values []float64, channel func(*gltc.Code, float64) benchmarking.Channel[C]) {
	numberOfThread := int(Threads)
	if numberOfThread == 0 {
		numberOfThread = runtime.NumCPU()
	}

	save := rate.Sometimes{Interval: SaveInterval}
	createMessage := func(trial int) mat.SparseVector {
		return benchmarking.RandomMessage(code.Block.MessageLength())
	}

	for _, p := range values {
		select {
		case <-ctx.Done():
			return
		default:
		}

		logrus.Infof("simulating %v", p)
		checkpoint := func(stats benchmarking.Stats) {
			data.Stats[p] = stats
			save.Do(func() {
				if err := tools.SaveResults(outputFilename, data); err != nil {
					fmt.Println(err)
				}
			})
		}
		data.Stats[p] = benchmarking.Benchmark(ctx, int(Trials), numberOfThread, createMessage, channel(code, p), checkpoint, data.Stats[p], true)
		logrus.Infof("%v: %v", p, data.Stats[p])
	}
}

func bscChannel(code *gltc.Code, noise func(mat.SparseVector) mat.SparseVector) benchmarking.BSC {
	return benchmarking.BSC{
		Encode:  code.Block.Encode,
		Channel: noise,
		Repair: func(_, received mat.SparseVector) mat.SparseVector {
			corrected, _ := code.Correct(received)
			return corrected
		},
		Metrics: func(message, codeword, fixed mat.SparseVector) (float64, float64, float64) {
			return benchmarking.BitErrorRates(code.Block, message, codeword, fixed)
		},
	}
}

func bpskChannel(code *gltc.Code, ebn0 float64) benchmarking.BPSK {
	return benchmarking.BPSK{
		Encode: func(message mat.SparseVector) mat2.Vector {
			return benchmarking.BitsToBPSK(code.Block.Encode(message))
		},
		Channel: func(codeword mat2.Vector) mat2.Vector {
			return benchmarking.RandomNoiseBPSK(codeword, ebn0)
		},
		Repair: func(_, received mat2.Vector) mat2.Vector {
			corrected, _ := code.Correct(benchmarking.BPSKToBits(received, 0))
			return benchmarking.BitsToBPSK(corrected)
		},
		Metrics: func(message mat.SparseVector, codeword, fixed mat2.Vector) (float64, float64, float64) {
			return benchmarking.BitErrorRates(code.Block, message, benchmarking.BPSKToBits(codeword, 0), benchmarking.BPSKToBits(fixed, 0))
		},
	}
}

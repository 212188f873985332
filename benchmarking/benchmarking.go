package benchmarking

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/gltc/linearblock"
	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
	mat2 "gonum.org/v1/gonum/mat"
)

type Stats struct {
	ChannelCodewordError avgstd.AvgStd // probability of a bit error after channel errors are fixed
	ChannelMessageError  avgstd.AvgStd // probability of a bit error after channel errors are fixed
	ChannelParityError   avgstd.AvgStd // probability of a bit error after channel errors are fixed
}

func (s Stats) String() string {
	return fmt.Sprintf("{Codeword:%0.02f(+/-%0.02f), Message:%0.02f(+/-%0.02f), Parity:%0.02f(+/-%0.02f)}",
		s.ChannelCodewordError.Mean, math.Sqrt(s.ChannelCodewordError.SampledVariance()),
		s.ChannelMessageError.Mean, math.Sqrt(s.ChannelMessageError.SampledVariance()),
		s.ChannelParityError.Mean, math.Sqrt(s.ChannelParityError.SampledVariance()),
	)
}

type Checkpoints func(updatedStats Stats)

type BinaryMessageConstructor func(trial int) (message mat.SparseVector)

//Channel describes one simulated transmission of codewords of type C.
type Channel[C any] struct {
	Encode  func(message mat.SparseVector) (codeword C)
	Channel func(codeword C) (channelInducedCodeword C)
	Repair  func(originalCodeword, channelInducedCodeword C) (fixedChannelInducedCodeword C)
	Metrics func(originalMessage mat.SparseVector, originalCodeword, fixedChannelInducedCodeword C) (percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors float64)
}

//BSC is a channel over hard bits.
type BSC = Channel[mat.SparseVector]

//BPSK is a channel over modulated symbols.
type BPSK = Channel[mat2.Vector]

//Benchmark runs trials through channel, skipping the trials already counted
//in previousStats, and returns the accumulated stats.
func Benchmark[C any](ctx context.Context,
	trials int, threads int,
	createMessage BinaryMessageConstructor,
	channel Channel[C],
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {
	trialsToRun := trials - previousStats.ChannelCodewordError.Count
	if trialsToRun <= 0 {
		return previousStats
	}

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(trialsToRun)
	}

	pool := threadpool.NewFixedSize(ctx, threads, trialsToRun)
	statsMux := sync.Mutex{}

	trial := func(i int) {
		if showProgress {
			bar.Increment()
		}
		message := createMessage(i)
		codeword := channel.Encode(message)

		// send through the channel to get channel induced errors
		channelInducedCodeword := channel.Channel(codeword)

		// repair the codeword (if possible)
		repaired := channel.Repair(codeword, channelInducedCodeword)

		percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors := channel.Metrics(message, codeword, repaired)

		statsMux.Lock()
		previousStats.ChannelCodewordError.Update(percentFixedCodewordErrors)
		previousStats.ChannelMessageError.Update(percentFixedMessageErrors)
		previousStats.ChannelParityError.Update(percentFixedParityErrors)
		if checkpoints != nil {
			checkpoints(previousStats) //give them the updated checkpoint
		}
		statsMux.Unlock()
	}

	for i := previousStats.ChannelCodewordError.Count; i < trials; i++ {
		tmp := i
		pool.Add(func() { trial(tmp) })
	}
	pool.Wait()
	if showProgress {
		bar.Finish()
	}
	return previousStats
}

//BenchmarkBSC runs a fresh BSC benchmark.
func BenchmarkBSC(ctx context.Context, trials, threads int, createMessage BinaryMessageConstructor, channel BSC, checkpoints Checkpoints, showProgress bool) Stats {
	return Benchmark(ctx, trials, threads, createMessage, channel, checkpoints, Stats{}, showProgress)
}

//BenchmarkBPSK runs a fresh BPSK benchmark.
func BenchmarkBPSK(ctx context.Context, trials, threads int, createMessage BinaryMessageConstructor, channel BPSK, checkpoints Checkpoints, showProgress bool) Stats {
	return Benchmark(ctx, trials, threads, createMessage, channel, checkpoints, Stats{}, showProgress)
}

//BitErrorRates returns the fraction of codeword, message and parity bits of
//fixed that differ from the originals.
func BitErrorRates(lb *linearblock.LinearBlock, originalMessage, originalCodeword, fixed mat.SparseVector) (codeword, message, parity float64) {
	codewordErrors := originalCodeword.HammingDistance(fixed)
	messageErrors := lb.Decode(fixed).HammingDistance(originalMessage)
	parityErrors := codewordErrors - messageErrors

	codeword = float64(codewordErrors) / float64(lb.CodewordLength())
	message = float64(messageErrors) / float64(lb.MessageLength())
	parity = float64(parityErrors) / float64(lb.ParitySymbols())
	return
}

//BitsToBPSK converts a [0,1] matrix to a [-1,1] matrix
func BitsToBPSK(a mat.SparseVector) mat2.Vector {
	output := mat2.NewVecDense(a.Len(), nil)

	for i := 0; i < a.Len(); i++ {
		if a.At(i) > 0 {
			output.SetVec(i, 1)
		} else {
			output.SetVec(i, -1)
		}
	}

	return output
}

//BPSKToBits conversts a BPSK vector [-1,1] to sparse vector [0,1].
// Values >= boundary will be considered a 1, otherwise a 0.
func BPSKToBits(a mat2.Vector, boundary float64) mat.SparseVector {
	result := mat.CSRVec(a.Len())

	for i := 0; i < a.Len(); i++ {
		if a.AtVec(i) >= boundary {
			result.Set(i, 1)
		}
	}
	return result
}

//HammingDistanceBPSK calculates number of bits different.
// Assumes >=0 is 1 and <0 is 0
// If a and b are different sizes it assumes they are
// both aligned with the zero index (the difference is at the end)
func HammingDistanceBPSK(a, b mat2.Vector) int {
	min := a.Len()
	max := b.Len()
	if min > max {
		min = b.Len()
		max = a.Len()
	}

	count := 0
	for i := 0; i < min; i++ {
		aOne := a.AtVec(i) >= 0
		bOne := b.AtVec(i) >= 0
		if aOne != bOne {
			count++
		}
	}
	return max - min + count
}

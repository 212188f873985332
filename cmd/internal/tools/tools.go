package tools

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/nathanhack/gltc/benchmarking"
	"github.com/nathanhack/gltc/linearblock/gltc"
	mat "github.com/nathanhack/sparsemat"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type SimulationStats struct {
	TypeInfo string
	ECCInfo  string
	Stats    map[float64]benchmarking.Stats
}
type simulationStats struct {
	TypeInfo string
	ECCInfo  string
	Stats    map[string]benchmarking.Stats
}

func (s *SimulationStats) MarshalJSON() ([]byte, error) {
	ss := simulationStats{
		TypeInfo: s.TypeInfo,
		ECCInfo:  s.ECCInfo,
		Stats:    map[string]benchmarking.Stats{},
	}

	for f, stat := range s.Stats {
		ss.Stats[strconv.FormatFloat(f, 'g', -1, 64)] = stat
	}

	return json.Marshal(ss)
}

func (s *SimulationStats) UnmarshalJSON(bytes []byte) error {
	var ss simulationStats

	err := json.Unmarshal(bytes, &ss)
	if err != nil {
		return err
	}

	s.TypeInfo = ss.TypeInfo
	s.ECCInfo = ss.ECCInfo
	s.Stats = map[float64]benchmarking.Stats{}

	for fs, stat := range ss.Stats {
		f, err := strconv.ParseFloat(fs, 64)
		if err != nil {
			return err
		}
		s.Stats[f] = stat
	}
	return nil
}

func Md5Sum(H mat.SparseMat) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(H.String())))
}

//SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext() (context.Context, context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case sig := <-sigs:
			fmt.Println()
			fmt.Println(sig)
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigs)
	}()
	return ctx, cancel
}

func LoadCode(filepath string) (*gltc.Code, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, fmt.Errorf("the ECC_JSON_FILE must exist")
	}

	bs, err := ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %v", filepath, err)
	}

	var code gltc.Code
	err = json.Unmarshal(bs, &code)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %v", filepath, err)
	}

	return &code, nil
}

func SaveCode(filepath string, code *gltc.Code) error {
	bs, err := json.Marshal(code)
	if err != nil {
		return fmt.Errorf("unable to serialize the ECC: %v", err)
	}

	err = WriteFile(filepath, bs)
	if err != nil {
		return fmt.Errorf("unable to write file %v: %v", filepath, err)
	}
	return nil
}

func LoadResults(filepath string) (*SimulationStats, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, nil
	}

	bs, err := ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %v", filepath, err)
	}

	var stat SimulationStats
	err = json.Unmarshal(bs, &stat)
	if err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %v", filepath, err)
	}
	return &stat, nil
}

func SaveResults(filepath string, data *SimulationStats) error {
	bs, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error serializing results: %v", err)
	}

	err = WriteFile(filepath, bs)
	if err != nil {
		return fmt.Errorf("error while saving results to %v: %v", filepath, err)
	}
	return nil
}

//LoadAllResults loads every results file and returns them with the sorted
//union of their channel parameters.
func LoadAllResults(filenames []string) ([]*SimulationStats, []float64, error) {
	stats := make([]*SimulationStats, len(filenames))
	params := make(map[float64]bool)
	for i, resultFile := range filenames {
		s, err := LoadResults(resultFile)
		if err != nil {
			return nil, nil, err
		}
		if s == nil {
			return nil, nil, fmt.Errorf("results file %v does not exist", resultFile)
		}
		stats[i] = s
		for p := range s.Stats {
			params[p] = true
		}
	}

	keys := maps.Keys(params)
	slices.Sort(keys)
	return stats, keys, nil
}

//ErrorRate selects the mean codeword, message or parity error rate of s.
func ErrorRate(s benchmarking.Stats, message, parity bool) float64 {
	switch {
	case message:
		return s.ChannelMessageError.Mean
	case parity:
		return s.ChannelParityError.Mean
	default:
		return s.ChannelCodewordError.Mean
	}
}

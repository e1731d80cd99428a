// Command lfqbench drives timed producer/consumer runs against Queue at a
// range of concurrency levels and reports throughput, optionally exporting
// results as JSON for lfqplot to render.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/coren-io/lfq"
	"github.com/coren-io/lfq/internal/stress"
)

// runResult holds one benchmark result for a single concurrency setting.
type runResult struct {
	NumProducers int     `json:"num_producers"`
	NumConsumers int     `json:"num_consumers"`
	Produced     int64   `json:"produced"`
	Consumed     int64   `json:"consumed"`
	ActualElapsed string `json:"actual_elapsed"`
	ThroughputHz float64 `json:"throughput_msgs_sec"`
	Timestamp    int64   `json:"timestamp"`
	GoVersion    string  `json:"go_version"`
}

// systemInfo captures the machine the run executed on.
type systemInfo struct {
	NumCPU      int     `json:"num_cpu"`
	CPUModel    string  `json:"cpu_model,omitempty"`
	CPUSpeedMHz float64 `json:"cpu_speed_mhz,omitempty"`
	GOARCH      string  `json:"go_arch"`
	TotalMemory uint64  `json:"total_memory_bytes,omitempty"`
}

// session is one complete invocation's output: system info plus every
// concurrency setting's result.
type session struct {
	SessionTime string      `json:"session_time"`
	SystemInfo  systemInfo  `json:"system_info"`
	Runs        []runResult `json:"runs"`
}

func main() {
	iterDuration := flag.Duration("duration", 2*time.Second, "duration to run each concurrency setting for")
	jsonExport := flag.Bool("json", false, "append results to lfqbench-results.json")
	capacity := flag.Int("capacity", 4096, "queue capacity for the benchmark run")
	flag.Parse()

	concurrencySettings := []struct{ producers, consumers int }{
		{1, 1},
		{2, 2},
		{4, 4},
		{8, 8},
		{runtime.NumCPU(), runtime.NumCPU()},
	}

	bar := progressbar.Default(int64(len(concurrencySettings)), "running lfqbench")

	var runs []runResult
	for _, cc := range concurrencySettings {
		q := lfq.NewQueue[uint64](*capacity)
		result := stress.Run(queueTarget{q}, stress.Config{
			Producers: cc.producers,
			Consumers: cc.consumers,
			Duration:  *iterDuration,
		})

		throughput := float64(result.Consumed) / result.Elapsed.Seconds()
		runs = append(runs, runResult{
			NumProducers:  cc.producers,
			NumConsumers:  cc.consumers,
			Produced:      result.Produced,
			Consumed:      result.Consumed,
			ActualElapsed: result.Elapsed.String(),
			ThroughputHz:  throughput,
			Timestamp:     time.Now().Unix(),
			GoVersion:     runtime.Version(),
		})

		fmt.Printf("producers=%d consumers=%d produced=%d consumed=%d throughput=%.0f msg/s\n",
			cc.producers, cc.consumers, result.Produced, result.Consumed, throughput)

		_ = bar.Add(1)
	}

	if *jsonExport {
		writeSession(session{
			SessionTime: time.Now().Format(time.RFC3339),
			SystemInfo:  gatherSystemInfo(),
			Runs:        runs,
		})
	}
}

// queueTarget adapts *lfq.Queue[uint64] to stress.Target.
type queueTarget struct{ q *lfq.Queue[uint64] }

func (t queueTarget) Push(v uint64)           { t.q.Push(v) }
func (t queueTarget) TryPop() (uint64, error) { return t.q.TryPop() }

func gatherSystemInfo() systemInfo {
	info := systemInfo{
		NumCPU: runtime.NumCPU(),
		GOARCH: runtime.GOARCH,
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		info.CPUModel = infos[0].ModelName
		info.CPUSpeedMHz = infos[0].Mhz
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.TotalMemory = vm.Total
	}
	return info
}

const resultsFile = "lfqbench-results.json"

func writeSession(s session) {
	var sessions []session
	if data, err := os.ReadFile(resultsFile); err == nil {
		_ = json.Unmarshal(data, &sessions)
	}
	sessions = append(sessions, s)

	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "lfqbench: marshal results: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(resultsFile, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "lfqbench: write %s: %v\n", resultsFile, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", resultsFile)
}

// Command lfqplot renders the JSON results produced by lfqbench -json into
// a throughput-vs-concurrency PNG.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type runResult struct {
	NumProducers int     `json:"num_producers"`
	NumConsumers int     `json:"num_consumers"`
	ThroughputHz float64 `json:"throughput_msgs_sec"`
}

type systemInfo struct {
	NumCPU int `json:"num_cpu"`
}

type session struct {
	SystemInfo systemInfo  `json:"system_info"`
	Runs       []runResult `json:"runs"`
}

func main() {
	jsonFile := flag.String("jsonfile", "lfqbench-results.json", "path to lfqbench's JSON output")
	out := flag.String("out", "lfqbench_throughput.png", "output image path")
	flag.Parse()

	data, err := os.ReadFile(*jsonFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lfqplot: read %s: %v\n", *jsonFile, err)
		os.Exit(1)
	}

	var sessions []session
	if err := json.Unmarshal(data, &sessions); err != nil {
		fmt.Fprintf(os.Stderr, "lfqplot: unmarshal %s: %v\n", *jsonFile, err)
		os.Exit(1)
	}
	if len(sessions) == 0 {
		fmt.Fprintln(os.Stderr, "lfqplot: no sessions in input file")
		os.Exit(1)
	}

	last := sessions[len(sessions)-1]
	sort.Slice(last.Runs, func(i, j int) bool {
		return (last.Runs[i].NumProducers + last.Runs[i].NumConsumers) <
			(last.Runs[j].NumProducers + last.Runs[j].NumConsumers)
	})

	pts := make(plotter.XYs, len(last.Runs))
	for i, r := range last.Runs {
		pts[i].X = float64(r.NumProducers + r.NumConsumers)
		pts[i].Y = r.ThroughputHz
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Queue throughput vs concurrency (%d CPU)", last.SystemInfo.NumCPU)
	p.X.Label.Text = "producers + consumers"
	p.Y.Label.Text = "messages/sec"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lfqplot: build line: %v\n", err)
		os.Exit(1)
	}
	points, err := plotter.NewScatter(pts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lfqplot: build scatter: %v\n", err)
		os.Exit(1)
	}
	p.Add(line, points)

	if err := p.Save(10*vg.Inch, 6*vg.Inch, *out); err != nil {
		fmt.Fprintf(os.Stderr, "lfqplot: save %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *out)
}

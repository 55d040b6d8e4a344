package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/meikuraledutech/gantt"
)

const sampleChart = `
id: release-plan
tasks:
  - ref: design
    x: 0
    y: 0
    width: 100
    height: 24
  - ref: build
    x: 150
    y: 32
    width: 120
    height: 24
  - ref: docs
    x: 150
    y: 64
    width: 80
    height: 24
  - ref: review
    x: 300
    y: 96
    width: 60
    height: 24
links:
  - from: design
    to: build
    type: FS
  - from: design
    to: docs
    type: SS
    lag: 20
  - from: build
    to: review
    elastic: false
`

func main() {
	// A chart comes either from a YAML file argument or the built-in sample.
	var chart *gantt.Chart
	var err error
	if len(os.Args) > 1 {
		chart, err = gantt.LoadChartFile(os.Args[1])
	} else {
		chart, err = gantt.ParseChart([]byte(sampleChart))
	}
	if err != nil {
		log.Fatalf("load chart: %v", err)
	}

	store := gantt.NewMemStore(chart.Tasks)
	resolver := gantt.NewResolver(store, chart.Links, gantt.Options{
		OnDepthExceeded: func(taskID string) {
			log.Printf("cascade stopped at task %s", taskID)
		},
	})

	// ── Elastic cascade: dragging design forward pushes build and docs ─
	res := resolver.ResolveMovement("design", 200, 0)
	if res == nil {
		log.Fatal("move blocked")
	}
	resolver.Apply(res)
	fmt.Println("moved design to x=200:")
	printJSON(res)

	// ── Rigid pair: build and review share a fixed link ───────────────
	build, _ := store.Task("build")
	res = resolver.ResolveMovement("build", build.Bar.X+30, build.Bar.Y)
	if res == nil {
		log.Fatal("move blocked")
	}
	resolver.Apply(res)
	fmt.Println("\ndragged build +30 (review follows rigidly):")
	printJSON(res)

	// ── Resize: widening design re-validates its successors ───────────
	w := 160.0
	store.SetBar("design", gantt.BarPatch{Width: &w})
	resolver.ResolveAfterResize("design")
	fmt.Println("\nafter widening design to 160:")
	printJSON(store.Tasks())
}

func printJSON(v any) {
	out, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(out))
}

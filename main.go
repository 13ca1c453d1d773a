//go:build !lambda

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
)

// LayoutResult is the JSON-serializable output of a generation run.
type LayoutResult struct {
	Height int          `json:"height"`
	Width  int          `json:"width"`
	Area   int          `json:"area"`
	Rows   []string     `json:"rows"`
	Words  []PlacedWord `json:"words"`
}

const usage = `Usage: wordgrid [flags] <words.yaml|words.json>

The input file holds two word lists:

  horizontal:
    - cat
  vertical:
    - car

Flags:
`

func main() {
	silent := flag.Bool("silent", false, "Disable progress output")
	maxAttempts := flag.Int("max-attempts", 1000, "Maximum attempts to find an optimal layout")
	seed := flag.Int64("seed", 0, "Random seed (0 = seed from current time)")
	jsonOut := flag.Bool("json", false, "Output the layout as JSON")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	lists, err := LoadWordListsFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg := DefaultConfig()
	cfg.MaxAttempts = *maxAttempts
	cfg.Seed = *seed
	cfg.Verbose = !*silent

	gen := NewGenerator(lists, cfg)
	sol := gen.Generate()
	if sol == nil {
		fmt.Fprintln(os.Stderr, "Failed to generate layout. Try increasing -max-attempts or using shorter words.")
		os.Exit(1)
	}

	if *jsonOut {
		h, w := sol.Grid.UsedDimensions()
		out := LayoutResult{
			Height: h,
			Width:  w,
			Area:   h * w,
			Rows:   GridRows(sol.Grid),
			Words:  sol.Words,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(out)
		return
	}

	if !*silent {
		fmt.Println("\nSuccessfully generated layout!")
		fmt.Println(FormatSolution(sol))
	} else {
		fmt.Print(FormatGrid(sol.Grid))
	}
}

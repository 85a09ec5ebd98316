// Command hornitl is the CLI collaborator for the saturation-based
// decision procedure: it reads a program in the text grammar, decides its
// satisfiability under a chosen case (or all three at once), and prints
// the resulting model. Flag parsing, file I/O and pretty printing are all
// outside the core's scope (spec.md §1/§6); this command is where they
// live.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/righier/hornitl/core"
	"github.com/righier/hornitl/lang"
	"github.com/righier/hornitl/tableau"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("hornitl", flag.ContinueOnError)
	file := fs.String("file", "", "path to a program in the text grammar (required)")
	caseName := fs.String("case", "DISCRETE", "FINITE, NATURAL, DISCRETE, or ALL")
	verbose := fs.Bool("verbose", false, "print progress diagnostics")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *file == "" {
		fmt.Fprintln(os.Stderr, "hornitl: -file is required")
		return 2
	}

	f, err := os.Open(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hornitl: %v\n", err)
		return 2
	}
	defer f.Close()

	input, err := lang.ParseProgram(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hornitl: %v\n", err)
		return 2
	}

	printProgram(os.Stdout, input)

	cfg := tableau.DefaultSearchConfig()
	if *verbose {
		cfg.Logger = newMutexLogger(log.New(os.Stdout, "", 0))
	}

	cases, err := parseCaseSelection(*caseName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hornitl: %v\n", err)
		return 1
	}

	if len(cases) > 1 {
		results := runConcurrently(input, cfg, cases)
		for _, c := range cases {
			fmt.Printf("== %s ==\n", c)
			printModel(os.Stdout, input, results[c])
		}
		return 0
	}

	model := tableau.Check(input, cases[0], cfg)
	printModel(os.Stdout, input, model)
	return 0
}

func parseCaseSelection(name string) ([]core.Case, error) {
	if name == "ALL" {
		return []core.Case{core.FINITE, core.NATURAL, core.DISCRETE}, nil
	}
	c := core.ParseCase(name)
	if c == core.Invalid {
		return nil, fmt.Errorf("the case %q is not valid", name)
	}
	return []core.Case{c}, nil
}

// runConcurrently spawns one goroutine per requested case, the way the
// original CLI spawned one std::thread per case for "ALL".
func runConcurrently(input core.Input, cfg tableau.SearchConfig, cases []core.Case) map[core.Case]core.Model {
	results := make(map[core.Case]core.Model, len(cases))
	done := make(chan struct {
		c core.Case
		m core.Model
	}, len(cases))

	for _, c := range cases {
		go func(c core.Case) {
			done <- struct {
				c core.Case
				m core.Model
			}{c, tableau.Check(input, c, cfg)}
		}(c)
	}
	for range cases {
		r := <-done
		results[r.c] = r.m
	}
	return results
}

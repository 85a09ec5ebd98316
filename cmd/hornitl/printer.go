package main

import (
	"fmt"
	"io"

	"github.com/righier/hornitl/core"
)

// printProgram renders the rules and facts of an Input, mirroring the
// original CLI's "---- Rules ----" / "---- Facts ----" banner.
func printProgram(w io.Writer, input core.Input) {
	fmt.Fprintln(w, "---- Rules ----")
	for _, rule := range input.Rules {
		fmt.Fprintln(w, rule.Render(input.Labels))
	}
	fmt.Fprintln(w, "---- Facts ----")
	for _, fact := range input.Facts {
		fmt.Fprintln(w, fact.Render(input.Labels))
	}
	fmt.Fprintln(w, "---------------")
}

// printModel renders a satisfied Model's lo-sets cell by cell, the way the
// original printState walked every (z,t) of the IntervalVector.
func printModel(w io.Writer, input core.Input, model core.Model) {
	if !model.Satisfied {
		fmt.Fprintln(w, "not satisfiable")
		return
	}
	fmt.Fprintf(w, "satisfiable: size=%d start=%s\n", model.Dimension, model.Start)
	for z := 0; z < model.Dimension; z++ {
		for t := z + 1; t < model.Dimension; t++ {
			set := model.At(z, t)
			if len(set) == 0 {
				continue
			}
			fmt.Fprintf(w, "[%d, %d]:\n", z, t)
			for _, f := range set.Slice() {
				fmt.Fprintf(w, "\t%s\n", f.Render(input.Labels))
			}
		}
	}
}

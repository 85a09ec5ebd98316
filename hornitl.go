// Package hornitl is the facade wiring the text grammar (lang) and the
// saturation-based decision procedure (tableau) into a single
// convenience API, mirroring the teacher's root logic.go facade that
// registers its sub-packages' systems behind a handful of top-level
// functions.
package hornitl

import (
	"io"
	"os"

	"github.com/righier/hornitl/core"
	"github.com/righier/hornitl/lang"
	"github.com/righier/hornitl/tableau"
)

// Type aliases for the most commonly referenced core types, so callers of
// this package rarely need to import core directly.
type (
	Case    = core.Case
	Model   = core.Model
	Input   = core.Input
	Formula = core.Formula
)

const (
	FINITE   = core.FINITE
	NATURAL  = core.NATURAL
	DISCRETE = core.DISCRETE
)

// CheckProgram parses r as a program in the text grammar and decides its
// satisfiability under the given case, using the default search
// configuration.
func CheckProgram(r io.Reader, c Case) (Model, error) {
	input, err := lang.ParseProgram(r)
	if err != nil {
		return core.Unsatisfiable(), err
	}
	return tableau.Check(input, c, tableau.DefaultSearchConfig()), nil
}

// CheckFile opens path and delegates to CheckProgram.
func CheckFile(path string, c Case) (Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return core.Unsatisfiable(), core.NewLogicError("hornitl", "CheckFile", err.Error())
	}
	defer f.Close()
	return CheckProgram(f, c)
}

// CheckAllCases parses r once and runs FINITE/NATURAL/DISCRETE concurrently
// against the resulting Input.
func CheckAllCases(r io.Reader) (map[Case]Model, error) {
	input, err := lang.ParseProgram(r)
	if err != nil {
		return nil, err
	}
	return tableau.CheckAllCases(input, tableau.DefaultSearchConfig()), nil
}

// Render renders a Formula using an Input's label table.
func Render(f Formula, input Input) string {
	return f.Render(input.Labels)
}

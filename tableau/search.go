package tableau

import (
	"sync"

	"github.com/righier/hornitl/core"
)

// SearchConfig holds the tunable constants of the search driver: the
// per-case minimum model length, the coefficient that bounds the upper
// search length in terms of the clause count, and the Logger used for
// progress diagnostics. Exposing these as a config struct (rather than
// bare package constants) follows the teacher's InprocessConfig /
// DefaultInprocessConfig convention.
type SearchConfig struct {
	// MinLength maps each Case to its minimum model length. Absent
	// entries fall back to DefaultSearchConfig's values.
	MinLength map[core.Case]int
	// MaxLengthCoefficient is the multiplier on |rules| added to MinLength
	// to obtain the search's upper bound: max_d = min_d + Coefficient*|rules|.
	// spec.md §9 calls this a stated small-model bound: preserve it rather
	// than guessing a different constant.
	MaxLengthCoefficient int
	// Logger receives progress diagnostics; nil is treated as a no-op.
	Logger core.Logger
}

// DefaultSearchConfig returns the constants spec.md §4.6 mandates: minimum
// lengths 2/3/4 for FINITE/NATURAL/DISCRETE, and a 6x clause-count bound on
// the search's upper end.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		MinLength: map[core.Case]int{
			core.FINITE:   2,
			core.NATURAL:  3,
			core.DISCRETE: 4,
		},
		MaxLengthCoefficient: 6,
		Logger:               core.NopLogger{},
	}
}

func (c SearchConfig) logf(format string, args ...interface{}) {
	if c.Logger == nil {
		return
	}
	c.Logger.Logf(format, args...)
}

// Check is the search driver: for the given Input and Case it walks model
// length d upward from the case's minimum to min+Coefficient*|rules|, and
// at each d enumerates candidate starting intervals (x,y) in strict
// lexicographic order, returning the first satisfying Model. An unknown
// Case returns the unsat sentinel, per spec.md §7's "invalid case" soft
// error.
func Check(input core.Input, c core.Case, cfg SearchConfig) core.Model {
	minD, ok := cfg.MinLength[c]
	if !ok {
		minD, ok = DefaultSearchConfig().MinLength[c]
	}
	if !ok {
		return core.Unsatisfiable()
	}
	maxD := minD + cfg.MaxLengthCoefficient*len(input.Rules)
	state := BuildState(input, c)

	xMin := 0
	if c == core.DISCRETE {
		xMin = 1
	}

	for d := minD; d <= maxD; d++ {
		yMax := d
		if c != core.FINITE {
			yMax = d - 1
		}
		cfg.logf("check: case=%s trying d=%d (yMax=%d)", c, d, yMax)
		for x := xMin; x < yMax-1; x++ {
			for y := x + 1; y < yMax; y++ {
				model := Saturate(d, x, y, state)
				if model.Satisfied {
					cfg.logf("check: case=%s satisfied at d=%d start=%s", c, d, model.Start)
					return model
				}
			}
		}
	}
	cfg.logf("check: case=%s exhausted search up to d=%d", c, maxD)
	return core.Unsatisfiable()
}

// CheckAllCases runs Check for FINITE, NATURAL and DISCRETE concurrently
// against the same Input, matching spec.md §5's "multiple independent
// checks... may be run on parallel threads" allowance. The Input is read
// only, so no synchronization is required between the goroutines; only the
// shared Logger (if any) needs to serialize its own output, which is the
// caller's responsibility.
func CheckAllCases(input core.Input, cfg SearchConfig) map[core.Case]core.Model {
	cases := []core.Case{core.FINITE, core.NATURAL, core.DISCRETE}
	results := make(map[core.Case]core.Model, len(cases))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, c := range cases {
		wg.Add(1)
		go func(c core.Case) {
			defer wg.Done()
			model := Check(input, c, cfg)
			mu.Lock()
			results[c] = model
			mu.Unlock()
		}(c)
	}
	wg.Wait()
	return results
}

package tableau

import "github.com/righier/hornitl/core"

// State is the derived, read-only context built once from an Input: the
// case under consideration and the deduplicated lists of BoxA/BoxP witness
// formulas that seed Extend's global modal introduction rule.
type State struct {
	Case          core.Case
	Input         core.Input
	BoxAWitnesses []core.Formula
	BoxPWitnesses []core.Formula
}

// BuildState is the preprocessor: it unions the facts with the flattened
// formulas of every clause, keeps those of shape BoxA or BoxP, and
// deduplicates each list. Duplicates would not affect correctness (Extend's
// global rule is idempotent per witness) but scanning the same witness
// twice per Extend pass is wasted work.
func BuildState(input core.Input, c core.Case) State {
	seenA := make(map[core.Formula]bool)
	seenP := make(map[core.Formula]bool)
	var boxA, boxP []core.Formula

	consider := func(f core.Formula) {
		switch {
		case f.IsBoxA():
			if !seenA[f] {
				seenA[f] = true
				boxA = append(boxA, f)
			}
		case f.IsBoxP():
			if !seenP[f] {
				seenP[f] = true
				boxP = append(boxP, f)
			}
		}
	}

	for _, fact := range input.Facts {
		consider(fact)
	}
	for _, clause := range input.Rules {
		for _, f := range clause {
			consider(f)
		}
	}

	return State{
		Case:          c,
		Input:         input,
		BoxAWitnesses: boxA,
		BoxPWitnesses: boxP,
	}
}

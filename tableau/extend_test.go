package tableau_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/righier/hornitl/core"
	"github.com/righier/hornitl/tableau"
)

func TestBuildState_DeduplicatesWitnesses(t *testing.T) {
	rules := []core.Clause{
		{core.BoxA(p), core.BoxA(p)},
		{core.BoxP(q)},
	}
	facts := []core.Formula{core.BoxA(p), core.BoxP(q)}
	in := input(rules, facts)

	state := tableau.BuildState(in, core.NATURAL)

	assert.Len(t, state.BoxAWitnesses, 1)
	assert.Len(t, state.BoxPWitnesses, 1)
	assert.Equal(t, core.BoxA(p), state.BoxAWitnesses[0])
	assert.Equal(t, core.BoxP(q), state.BoxPWitnesses[0])
}

func TestSaturate_NaturalBoundaryInheritsRightmostContent(t *testing.T) {
	// NATURAL has no last point: the boundary relation of spec.md §8 says
	// lo[z,d-1] is a superset of the non-clause content at lo[z,d-2] for
	// z <= d-3.
	in := input(nil, []core.Formula{core.Letter(p)})
	state := tableau.BuildState(in, core.NATURAL)

	model := tableau.Saturate(3, 0, 1, state)
	require.True(t, model.Satisfied)

	d := model.Dimension
	for z := 0; z <= d-3; z++ {
		for _, f := range model.At(z, d-2).Slice() {
			if f.IsClauseRef() {
				continue
			}
			assert.True(t, model.At(z, d-1).Has(f), "lo[%d,%d] missing %v from lo[%d,%d]", z, d-1, f, z, d-2)
		}
	}
}

func TestSaturate_NeverContainsFalsehood(t *testing.T) {
	in := input(nil, []core.Formula{core.Letter(p), core.BoxA(p)})
	state := tableau.BuildState(in, core.FINITE)

	model := tableau.Saturate(3, 0, 1, state)
	require.True(t, model.Satisfied)

	for z := 0; z < model.Dimension; z++ {
		for tt := z + 1; tt < model.Dimension; tt++ {
			assert.False(t, model.At(z, tt).Has(core.FALSEHOOD))
			assert.True(t, model.At(z, tt).Has(core.TRUTH))
		}
	}
}

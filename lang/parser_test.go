package lang_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/righier/hornitl/core"
	"github.com/righier/hornitl/lang"
)

func TestParseLine_BareFact(t *testing.T) {
	labels := lang.NewLabelTable()
	_, fact, isRule, err := lang.ParseLine("p", labels)
	require.NoError(t, err)
	assert.False(t, isRule)
	assert.Equal(t, core.Letter(2), fact)
}

func TestParseLine_ModalFact(t *testing.T) {
	labels := lang.NewLabelTable()
	_, fact, isRule, err := lang.ParseLine("[A]p", labels)
	require.NoError(t, err)
	assert.False(t, isRule)
	assert.Equal(t, core.BoxA(2), fact)
}

func TestParseLine_Rule(t *testing.T) {
	labels := lang.NewLabelTable()
	clause, _, isRule, err := lang.ParseLine("[U] p & q -> r", labels)
	require.NoError(t, err)
	require.True(t, isRule)
	require.Len(t, clause, 3)
	assert.Equal(t, core.Letter(2), clause[0])
	assert.Equal(t, core.Letter(3), clause[1])
	assert.Equal(t, core.Letter(4), clause.Head())
}

func TestParseLine_ReservedLabels(t *testing.T) {
	labels := lang.NewLabelTable()
	_, fact, _, err := lang.ParseLine("F", labels)
	require.NoError(t, err)
	assert.True(t, fact.IsFalsehood())

	_, fact, _, err = lang.ParseLine("T", labels)
	require.NoError(t, err)
	assert.True(t, fact.IsTruth())
}

func TestParseLine_InvalidToken(t *testing.T) {
	labels := lang.NewLabelTable()
	_, _, _, err := lang.ParseLine("p @ q", labels)
	assert.Error(t, err)
}

func TestParseProgram_LiftsLength1Clause(t *testing.T) {
	input, err := lang.ParseProgram(strings.NewReader("[U] p\n[U] p & q -> r\n"))
	require.NoError(t, err)
	require.Len(t, input.Rules, 1)
	require.Len(t, input.Facts, 1)
	assert.Equal(t, core.Letter(2), input.Facts[0])
}

func TestParseProgram_SkipsBlankLines(t *testing.T) {
	input, err := lang.ParseProgram(strings.NewReader("\np\n\n[A]q\n"))
	require.NoError(t, err)
	require.Len(t, input.Facts, 2)
	assert.Equal(t, []string{"F", "T", "p", "q"}, input.Labels)
}

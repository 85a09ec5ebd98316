package lang

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/righier/hornitl/core"
)

// ParseProgram reads every non-blank line of r and builds a core.Input: a
// line starting with "[U]" is a rule, anything else is a single fact. A
// parsed rule of length 1 (no "&"-joined premises, a bare head) carries no
// premises to discharge and is lifted into facts, matching the original
// parser's treatment of a degenerate one-literal "[U]" line.
func ParseProgram(r io.Reader) (core.Input, error) {
	labels := NewLabelTable()
	var rules []core.Clause
	var facts []core.Formula

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		clause, fact, isRule, err := ParseLine(line, labels)
		if err != nil {
			return core.Input{}, core.NewLogicError("lang", "ParseProgram",
				fmt.Sprintf("line %d: %v", lineNum, err))
		}

		if !isRule {
			facts = append(facts, fact)
			continue
		}
		if len(clause) == 1 {
			facts = append(facts, clause[0])
			continue
		}
		rules = append(rules, clause)
	}
	if err := scanner.Err(); err != nil {
		return core.Input{}, core.NewLogicError("lang", "ParseProgram", err.Error())
	}

	return core.NewInput(rules, facts, labels.Labels()[2:]), nil
}

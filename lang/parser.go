package lang

import (
	"fmt"

	"github.com/righier/hornitl/core"
)

// Parser consumes the tokens of a single line and builds either a fact
// Formula or a rule Clause, interning identifiers into a shared
// LabelTable as it goes.
type Parser struct {
	tokens  []Token
	current int
	labels  *LabelTable
}

// NewParser creates a Parser over a line's tokens, reusing labels across
// lines so identifiers keep a stable id throughout a program.
func NewParser(tokens []Token, labels *LabelTable) *Parser {
	return &Parser{tokens: tokens, labels: labels}
}

func (p *Parser) peek() Token   { return p.tokens[p.current] }
func (p *Parser) isAtEnd() bool { return p.peek().Type == TokenEOF }

func (p *Parser) advance() Token {
	t := p.tokens[p.current]
	p.current++
	return t
}

func (p *Parser) check(t TokenType) bool {
	return !p.isAtEnd() && p.peek().Type == t
}

// ParseLine parses one non-blank input line into either a rule Clause
// (isRule=true) or a single fact Formula (isRule=false).
func ParseLine(line string, labels *LabelTable) (clause core.Clause, fact core.Formula, isRule bool, err error) {
	tokens := NewLexer(line).Lex()
	for _, tok := range tokens {
		if tok.Type == TokenError {
			return nil, core.Formula{}, false, core.NewLogicError("lang", "ParseLine",
				fmt.Sprintf("invalid token %q", tok.Value)).WithPosition(tok.Position)
		}
	}

	p := NewParser(tokens, labels)

	if p.check(TokenRuleMarker) {
		p.advance()
		c, err := p.parseClause()
		if err != nil {
			return nil, core.Formula{}, false, err
		}
		return c, core.Formula{}, true, nil
	}

	f, err := p.parseLiteral()
	if err != nil {
		return nil, core.Formula{}, false, err
	}
	if !p.isAtEnd() {
		return nil, core.Formula{}, false, core.NewLogicError("lang", "ParseLine",
			fmt.Sprintf("unexpected trailing token %q", p.peek().Value)).WithPosition(p.peek().Position)
	}
	return nil, f, false, nil
}

// parseClause reads a sequence of literals separated by optional "&"/"->"
// punctuation until end of line; the separators carry no semantic weight
// beyond readability, the clause is simply the ordered literal sequence
// with the last element read as the head.
func (p *Parser) parseClause() (core.Clause, error) {
	var clause core.Clause
	for {
		if p.check(TokenAnd) || p.check(TokenArrow) {
			p.advance()
			continue
		}
		if p.isAtEnd() {
			break
		}
		f, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		clause = append(clause, f)
	}
	if len(clause) == 0 {
		return nil, core.NewLogicError("lang", "parseClause", "rule line has no literals")
	}
	return clause, nil
}

// parseLiteral reads one modal-or-bare literal: "[A]x", "[P]x", or a bare
// identifier x.
func (p *Parser) parseLiteral() (core.Formula, error) {
	switch {
	case p.check(TokenModalA):
		p.advance()
		id, err := p.expectIdent()
		if err != nil {
			return core.Formula{}, err
		}
		return core.BoxA(id), nil
	case p.check(TokenModalP):
		p.advance()
		id, err := p.expectIdent()
		if err != nil {
			return core.Formula{}, err
		}
		return core.BoxP(id), nil
	case p.check(TokenIdent):
		id, _ := p.expectIdent()
		return core.Letter(id), nil
	default:
		tok := p.peek()
		return core.Formula{}, core.NewLogicError("lang", "parseLiteral",
			fmt.Sprintf("expected a literal, found %q", tok.Value)).WithPosition(tok.Position)
	}
}

func (p *Parser) expectIdent() (int, error) {
	if !p.check(TokenIdent) {
		tok := p.peek()
		return 0, core.NewLogicError("lang", "expectIdent",
			fmt.Sprintf("expected an identifier, found %q", tok.Value)).WithPosition(tok.Position)
	}
	tok := p.advance()
	return p.labels.Intern(tok.Value), nil
}

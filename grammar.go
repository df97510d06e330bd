package coegg

import (
	"strings"

	"github.com/altanh/coegg/errors"
	"golang.org/x/exp/ebnf"
)

// GrammarStart is the start production of SExprGrammar.
const GrammarStart = "Expr"

// SExprGrammar describes the text produced by RExpr.MarshalText.
// Operator text is written verbatim, so symbol is only indicative of the
// operators a reader can expect.
const SExprGrammar = `
Expr     = Node | Operator .
Node     = "(" Operator { " " Expr } ")" .
Operator = symbol .

symbol = char { char } .
char   = "!" … "'" | "*" … "~" .
`

// Grammar parses and verifies SExprGrammar.
func Grammar() (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse("sexpr.ebnf", strings.NewReader(SExprGrammar))
	if err != nil {
		return nil, errors.NewGrammarError(err)
	}
	if err := ebnf.Verify(grammar, GrammarStart); err != nil {
		return nil, errors.NewGrammarError(err)
	}
	return grammar, nil
}

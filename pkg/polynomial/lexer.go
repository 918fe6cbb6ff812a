package polynomial

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ExprLexer defines the lexical structure of feedback polynomial
// expressions such as "x^16 + x^5 + x^3 + x^2 + 1".
var ExprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	{Name: "Variable", Pattern: `[xX]`},
	{Name: "Caret", Pattern: `\^`},
	{Name: "Plus", Pattern: `\+`},
	{Name: "Integer", Pattern: `[0-9]+`},
})

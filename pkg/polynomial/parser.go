package polynomial

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser parses feedback polynomial expressions into Polynomial values.
type Parser struct {
	parser *participle.Parser[Expression]
}

// NewParser builds a polynomial expression parser.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[Expression](
		participle.Lexer(ExprLexer),
		participle.Elide("Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse reads a polynomial expression from a reader.
func (p *Parser) Parse(r io.Reader) (Polynomial, error) {
	expr, err := p.parser.Parse("", r)
	if err != nil {
		return Polynomial{}, fmt.Errorf("parse error: %w", err)
	}
	return fromExpression(expr)
}

// ParseString parses a polynomial expression from a string.
func (p *Parser) ParseString(input string) (Polynomial, error) {
	expr, err := p.parser.ParseString("", input)
	if err != nil {
		return Polynomial{}, fmt.Errorf("parse error: %w", err)
	}
	return fromExpression(expr)
}

// ParseFile parses a polynomial expression from a file.
func (p *Parser) ParseFile(filename string) (Polynomial, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Polynomial{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

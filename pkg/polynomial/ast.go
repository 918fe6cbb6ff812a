package polynomial

// Expression is a parsed feedback polynomial: a sum of terms.
// Example: x^8 + x^7 + x^3 + x^2 + x
type Expression struct {
	First *Term   `parser:"@@"`
	Rest  []*Term `parser:"( Plus @@ )*"`
}

// Terms returns all terms in source order.
func (e *Expression) Terms() []*Term {
	terms := make([]*Term, 0, 1+len(e.Rest))
	terms = append(terms, e.First)
	terms = append(terms, e.Rest...)
	return terms
}

// Term is a single polynomial term: a power of x or the constant 1.
type Term struct {
	Power    *Power `parser:"  @@"`
	Constant *int   `parser:"| @Integer"`
}

// Exponent returns the term's exponent: the power's exponent, 1 for a bare
// "x", and 0 for the constant term.
func (t *Term) Exponent() int {
	if t.Power != nil {
		return t.Power.Exponent()
	}
	return 0
}

// Power is "x" optionally raised to an integer exponent.
type Power struct {
	Raised *int `parser:"Variable ( Caret @Integer )?"`
}

// Exponent returns the explicit exponent, or 1 for a bare "x".
func (p *Power) Exponent() int {
	if p.Raised != nil {
		return *p.Raised
	}
	return 1
}

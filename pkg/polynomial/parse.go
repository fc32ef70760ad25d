package polynomial

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Parse converts text such as "x^3 + 2x - 2" into a canonical polynomial.
//
// The accepted grammar is
//
//	polynomial := term { ('+' | '-') term }
//	term       := [ '+' | '-' ] ( number [ monomial ] | monomial )
//	monomial   := 'x' [ '^' exponent ]
//	number     := decimal literal with optional fraction and e-exponent
//	exponent   := integer literal from 0 to MaxDegree
//
// Whitespace may appear between any two tokens. The whole input must match;
// on failure a *FormatError is returned and no partial result is produced.
func Parse(text string) (Polynomial, error) {
	p := &parser{input: text}
	terms, err := p.parsePolynomial()
	if err != nil {
		return Polynomial{}, err
	}
	return fromRaw(terms), nil
}

// MustParse is like Parse but panics if text is not a valid polynomial
func MustParse(text string) Polynomial {
	poly, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return poly
}

type parser struct {
	input string
	pos   int
}

func (p *parser) parsePolynomial() ([]Term, error) {
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	terms := []Term{first}

	for {
		p.skipSpace()
		if p.eof() {
			return terms, nil
		}

		negate, ok := p.acceptSign()
		if !ok {
			return nil, p.unexpected()
		}

		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if negate {
			t = t.neg()
		}
		terms = append(terms, t)
	}
}

func (p *parser) parseTerm() (Term, error) {
	p.skipSpace()
	negate, _ := p.acceptSign()
	p.skipSpace()

	coefficient, hasNumber, err := p.parseNumber()
	if err != nil {
		return Term{}, err
	}
	if !hasNumber {
		coefficient = 1
	}

	p.skipSpace()
	degree, hasX, err := p.parseMonomial()
	if err != nil {
		return Term{}, err
	}
	if !hasNumber && !hasX {
		if p.eof() {
			return Term{}, p.fail("expected a term")
		}
		return Term{}, p.unexpected()
	}

	if negate {
		coefficient = -coefficient
	}
	return Term{coefficient: coefficient, degree: degree}, nil
}

// parseNumber reads an unsigned decimal literal. An 'e' that is not followed
// by exponent digits is left unconsumed.
func (p *parser) parseNumber() (float64, bool, error) {
	start := p.pos
	digits := p.skipDigits()
	if p.peek() == '.' {
		p.pos++
		digits += p.skipDigits()
	}
	if digits == 0 {
		p.pos = start
		return 0, false, nil
	}

	if c := p.peek(); c == 'e' || c == 'E' {
		mark := p.pos
		p.pos++
		if c := p.peek(); c == '+' || c == '-' {
			p.pos++
		}
		if p.skipDigits() == 0 {
			p.pos = mark
		}
	}

	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, false, &FormatError{Input: p.input, Offset: start, Reason: "number out of range"}
	}
	return v, true, nil
}

func (p *parser) parseMonomial() (int, bool, error) {
	if p.peek() != 'x' {
		return 0, false, nil
	}
	p.pos++

	p.skipSpace()
	if p.peek() != '^' {
		return 1, true, nil
	}
	p.pos++
	p.skipSpace()

	degree, err := p.parseExponent()
	if err != nil {
		return 0, false, err
	}
	return degree, true, nil
}

func (p *parser) parseExponent() (int, error) {
	if p.eof() {
		return 0, p.fail("expected an exponent")
	}
	switch c := p.peek(); {
	case c == '-':
		return 0, p.fail("negative exponent")
	case c < '0' || c > '9':
		return 0, p.unexpected()
	}

	start := p.pos
	p.skipDigits()
	if p.peek() == '.' {
		return 0, p.fail("exponent must be an integer")
	}

	degree, err := strconv.ParseInt(p.input[start:p.pos], 10, 64)
	if err != nil || degree > MaxDegree {
		return 0, &FormatError{Input: p.input, Offset: start, Reason: "exponent out of range"}
	}
	return int(degree), nil
}

// acceptSign consumes a '+' or '-' and reports whether it was '-'
func (p *parser) acceptSign() (negate bool, ok bool) {
	switch p.peek() {
	case '+':
		p.pos++
		return false, true
	case '-':
		p.pos++
		return true, true
	}
	return false, false
}

func (p *parser) skipDigits() int {
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	return p.pos - start
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			p.pos++
		default:
			return
		}
	}
}

// peek returns the current byte, or 0 at end of input
func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) unexpected() error {
	r, _ := utf8.DecodeRuneInString(p.input[p.pos:])
	return p.fail(fmt.Sprintf("unexpected %q", r))
}

func (p *parser) fail(reason string) error {
	return &FormatError{Input: p.input, Offset: p.pos, Reason: reason}
}

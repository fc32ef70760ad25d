// Package polynomial implements single-variable polynomials with real
// coefficients and non-negative integer exponents.
//
// A Polynomial is always kept in canonical form: terms sorted by strictly
// descending degree, at most one term per degree, and no term whose
// coefficient is within Epsilon of zero. Degrees never exceed MaxDegree. The zero value is the zero
// polynomial. All operations return new values and never modify their
// operands.
package polynomial

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Polynomial is an immutable polynomial in canonical form
type Polynomial struct {
	terms []Term
}

// Zero returns the zero polynomial
func Zero() Polynomial {
	return Polynomial{}
}

// Constant returns the polynomial representing the constant c
func Constant(c float64) Polynomial {
	if isZero(c) {
		return Polynomial{}
	}
	return Polynomial{terms: []Term{{coefficient: c, degree: 0}}}
}

// New creates a polynomial from the given terms in any order
func New(terms ...Term) Polynomial {
	return fromRaw(slices.Clone(terms))
}

// fromRaw takes ownership of terms and normalizes them in place
func fromRaw(terms []Term) Polynomial {
	return Polynomial{terms: arrange(terms)}
}

// arrange sorts terms by descending degree, merges equal degrees and
// drops negligible terms. Merging is strictly left to right after a stable
// sort, so the summation order of like terms is the input order.
func arrange(terms []Term) []Term {
	if len(terms) == 0 {
		return nil
	}

	slices.SortStableFunc(terms, func(a, b Term) int {
		return cmp.Compare(b.degree, a.degree)
	})

	head := 0
	for tail := 1; tail < len(terms); tail++ {
		if terms[head].tryMergeWith(terms[tail]) {
			continue
		}
		if !terms[head].IsNegligible() {
			head++
		}
		terms[head] = terms[tail]
	}
	if !terms[head].IsNegligible() {
		head++
	}

	if head == 0 {
		return nil
	}
	return terms[:head:head]
}

// Terms returns a copy of the canonical terms, highest degree first
func (p Polynomial) Terms() []Term {
	return slices.Clone(p.terms)
}

// Len returns the number of non-zero terms
func (p Polynomial) Len() int {
	return len(p.terms)
}

// IsZero reports whether p is the zero polynomial
func (p Polynomial) IsZero() bool {
	return len(p.terms) == 0
}

// Degree returns the highest degree in p, or -1 for the zero polynomial
func (p Polynomial) Degree() int {
	if p.IsZero() {
		return -1
	}
	return p.terms[0].degree
}

// Add returns p + q
func (p Polynomial) Add(q Polynomial) Polynomial {
	sum := make([]Term, 0, len(p.terms)+len(q.terms))
	sum = append(sum, p.terms...)
	sum = append(sum, q.terms...)
	return fromRaw(sum)
}

// Sub returns p - q
func (p Polynomial) Sub(q Polynomial) Polynomial {
	diff := make([]Term, 0, len(p.terms)+len(q.terms))
	diff = append(diff, p.terms...)
	for _, t := range q.terms {
		diff = append(diff, t.neg())
	}
	return fromRaw(diff)
}

// Mul returns p * q. It fails with a *DegreeOverflowError if the product
// would have a term above MaxDegree.
func (p Polynomial) Mul(q Polynomial) (Polynomial, error) {
	if p.IsZero() || q.IsZero() {
		return Polynomial{}, nil
	}
	if d := int64(p.Degree()) + int64(q.Degree()); d > MaxDegree {
		return Polynomial{}, &DegreeOverflowError{Degree: d}
	}

	product := make([]Term, 0, len(p.terms)*len(q.terms))
	for _, a := range p.terms {
		for _, b := range q.terms {
			product = append(product, Term{
				coefficient: a.coefficient * b.coefficient,
				degree:      a.degree + b.degree,
			})
		}
	}
	return fromRaw(product), nil
}

// Scale returns c * p
func (p Polynomial) Scale(c float64) Polynomial {
	scaled := make([]Term, 0, len(p.terms))
	for _, t := range p.terms {
		scaled = append(scaled, Term{coefficient: c * t.coefficient, degree: t.degree})
	}
	return fromRaw(scaled)
}

// Derivative returns dp/dx
func (p Polynomial) Derivative() Polynomial {
	derived := make([]Term, 0, len(p.terms))
	for _, t := range p.terms {
		derived = append(derived, t.Derivative())
	}
	return fromRaw(derived)
}

// Eval returns the value of p at x
func (p Polynomial) Eval(x float64) float64 {
	var y float64
	for _, t := range p.terms {
		y += t.coefficient * math.Pow(x, float64(t.degree))
	}
	return y
}

// Equal reports whether p and q have the same canonical terms within Epsilon
func (p Polynomial) Equal(q Polynomial) bool {
	return slices.EqualFunc(p.terms, q.terms, Term.Equal)
}

// String renders p in the same syntax accepted by Parse, e.g. "x^3+2x-2"
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}

	var b strings.Builder
	for i, t := range p.terms {
		switch {
		case t.coefficient < 0:
			b.WriteByte('-')
		case i > 0:
			b.WriteByte('+')
		}

		abs := math.Abs(t.coefficient)
		if !isZero(abs-1) || t.degree == 0 {
			b.WriteString(strconv.FormatFloat(abs, 'g', -1, 64))
		}
		if t.degree > 0 {
			b.WriteByte('x')
			if t.degree != 1 {
				b.WriteByte('^')
				b.WriteString(strconv.Itoa(t.degree))
			}
		}
	}
	return b.String()
}

package polynomial

import "math"

// Epsilon is the tolerance below which a coefficient is treated as zero
const Epsilon = 1e-7

// MaxDegree is the largest degree a term may have
const MaxDegree = math.MaxInt32

// isZero reports whether v is small enough to be considered zero
func isZero(v float64) bool {
	return math.Abs(v) < Epsilon
}

// Term is a single monomial coefficient·x^degree
type Term struct {
	coefficient float64
	degree      int
}

// NewTerm creates a new term, failing if the degree is negative or above MaxDegree
func NewTerm(coefficient float64, degree int) (Term, error) {
	if degree < 0 {
		return Term{}, &NegativeDegreeError{Degree: degree}
	}
	if int64(degree) > MaxDegree {
		return Term{}, &DegreeOverflowError{Degree: int64(degree)}
	}
	return Term{coefficient: coefficient, degree: degree}, nil
}

// MustNewTerm is like NewTerm but panics on an invalid degree
func MustNewTerm(coefficient float64, degree int) Term {
	t, err := NewTerm(coefficient, degree)
	if err != nil {
		panic(err)
	}
	return t
}

// Coefficient returns the coefficient of the term
func (t Term) Coefficient() float64 { return t.coefficient }

// Degree returns the degree of the term
func (t Term) Degree() int { return t.degree }

// IsNegligible reports whether the coefficient is within Epsilon of zero
func (t Term) IsNegligible() bool {
	return isZero(t.coefficient)
}

// Equal reports whether both terms have the same degree and coefficients within Epsilon
func (t Term) Equal(other Term) bool {
	return t.degree == other.degree && isZero(t.coefficient-other.coefficient)
}

// Derivative returns d/dx of the term. The derivative of a constant is the zero term.
func (t Term) Derivative() Term {
	if t.degree == 0 {
		return Term{}
	}
	return Term{coefficient: t.coefficient * float64(t.degree), degree: t.degree - 1}
}

func (t Term) neg() Term {
	return Term{coefficient: -t.coefficient, degree: t.degree}
}

// tryMergeWith adds other's coefficient into t if both have the same degree.
// It reports whether the merge happened; t is left unchanged otherwise.
func (t *Term) tryMergeWith(other Term) bool {
	if t.degree != other.degree {
		return false
	}
	t.coefficient += other.coefficient
	return true
}

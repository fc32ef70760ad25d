package results

import "github.com/averycrespi/polycalc/pkg/polynomial"

// PolynomialResult is the JSON representation of a canonical polynomial
type PolynomialResult struct {
	Text   string       `json:"text"`
	Degree int          `json:"degree"` // -1 for the zero polynomial
	Terms  []TermResult `json:"terms"`
}

// TermResult is a single term of a polynomial, highest degree first
type TermResult struct {
	Coefficient float64 `json:"coefficient"`
	Degree      int     `json:"degree"`
}

// NewPolynomialResult converts a polynomial into its JSON representation
func NewPolynomialResult(p polynomial.Polynomial) PolynomialResult {
	result := PolynomialResult{
		Text:   p.String(),
		Degree: p.Degree(),
		Terms:  make([]TermResult, 0, p.Len()),
	}
	for _, t := range p.Terms() {
		result.Terms = append(result.Terms, TermResult{
			Coefficient: t.Coefficient(),
			Degree:      t.Degree(),
		})
	}
	return result
}

// OperandResult describes how one polynomial argument was resolved
type OperandResult struct {
	Input      string           `json:"input"`
	Source     string           `json:"source"`         // variable, literal or assigned
	Name       string           `json:"name,omitempty"` // set when the input named a variable
	Polynomial PolynomialResult `json:"polynomial"`
}

package types

import (
	"iter"

	"github.com/averycrespi/polycalc/pkg/polynomial"
)

// Store defines the named-variable store used by the calculator
type Store interface {
	// ValidateIdentifier fails if id may not name a variable
	ValidateIdentifier(id string) error
	Get(id string) (polynomial.Polynomial, error)
	Set(id string, p polynomial.Polynomial) error
	// All yields every stored variable in ascending identifier order
	All() iter.Seq2[string, polynomial.Polynomial]
	Len() int
}

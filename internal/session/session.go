package session

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/averycrespi/polycalc/pkg/polynomial"
	"github.com/averycrespi/polycalc/pkg/types"
)

// Kind tells how a piece of user input was resolved into a polynomial
type Kind string

const (
	KindVariable Kind = "variable"
	KindLiteral  Kind = "literal"
	KindAssigned Kind = "assigned"
)

// Resolution is the result of resolving user input
type Resolution struct {
	Kind       Kind
	Name       string // set for KindVariable and KindAssigned
	Polynomial polynomial.Polynomial
}

// UnresolvedError is returned when input is neither a stored identifier nor a valid polynomial
type UnresolvedError struct {
	Input     string
	LookupErr error
	ParseErr  error
}

func (e *UnresolvedError) Error() string {
	msg := fmt.Sprintf("%q is neither a stored identifier nor a valid polynomial", e.Input)
	var formatErr *polynomial.FormatError
	if errors.As(e.ParseErr, &formatErr) {
		msg += fmt.Sprintf(" (%s at offset %d)", formatErr.Reason, formatErr.Offset)
	}
	return msg
}

// Unwrap exposes both the lookup and the parse failure
func (e *UnresolvedError) Unwrap() []error {
	return []error{e.LookupErr, e.ParseErr}
}

// Session resolves calculator input against a variable store
type Session struct {
	store types.Store
}

// New creates a new session backed by store
func New(store types.Store) *Session {
	return &Session{store: store}
}

// Resolve turns input into a polynomial. Assignments of the form
// "name = expr" store the right-hand side first; otherwise the input is
// looked up as an identifier and, failing that, parsed as a polynomial.
func (s *Session) Resolve(input string) (Resolution, error) {
	input = strings.TrimSpace(input)

	if name, expr, ok := strings.Cut(input, "="); ok {
		return s.assign(strings.TrimSpace(name), expr)
	}

	p, lookupErr := s.store.Get(input)
	if lookupErr == nil {
		return Resolution{Kind: KindVariable, Name: input, Polynomial: p}, nil
	}

	p, parseErr := polynomial.Parse(input)
	if parseErr == nil {
		return Resolution{Kind: KindLiteral, Polynomial: p}, nil
	}

	return Resolution{}, &UnresolvedError{
		Input:     input,
		LookupErr: lookupErr,
		ParseErr:  parseErr,
	}
}

// ResolvePolynomial is Resolve without the resolution details
func (s *Session) ResolvePolynomial(input string) (polynomial.Polynomial, error) {
	r, err := s.Resolve(input)
	if err != nil {
		return polynomial.Polynomial{}, err
	}
	return r.Polynomial, nil
}

func (s *Session) assign(name, expr string) (Resolution, error) {
	if err := s.store.ValidateIdentifier(name); err != nil {
		return Resolution{}, fmt.Errorf("failed to assign %q: %w", name, err)
	}
	value, err := s.Resolve(expr)
	if err != nil {
		return Resolution{}, err
	}
	if err := s.store.Set(name, value.Polynomial); err != nil {
		return Resolution{}, fmt.Errorf("failed to assign %q: %w", name, err)
	}
	return Resolution{Kind: KindAssigned, Name: name, Polynomial: value.Polynomial}, nil
}

// Store saves p under name
func (s *Session) Store(name string, p polynomial.Polynomial) error {
	return s.store.Set(strings.TrimSpace(name), p)
}

// Variables yields every stored variable in ascending identifier order
func (s *Session) Variables() iter.Seq2[string, polynomial.Polynomial] {
	return s.store.All()
}

// Count returns the number of stored variables
func (s *Session) Count() int {
	return s.store.Len()
}

// IsUnresolved reports whether err came from input that could not be resolved
func IsUnresolved(err error) bool {
	var unresolved *UnresolvedError
	return errors.As(err, &unresolved)
}

package store

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"regexp"
	"slices"
	"sync"

	"github.com/averycrespi/polycalc/pkg/polynomial"
	"github.com/averycrespi/polycalc/pkg/types"
)

// DefaultMaxIdentifierLength is the longest identifier accepted by the default rule
const DefaultMaxIdentifierLength = 10

var (
	ErrInvalidIdentifier  = errors.New("invalid identifier")
	ErrIdentifierNotFound = errors.New("identifier not found")
)

var _ types.Store = &Store{}

// IdentifierRule reports whether id may be used as a variable name
type IdentifierRule func(id string) bool

// LettersRule accepts identifiers of 1 to maxLen ASCII letters
func LettersRule(maxLen int) IdentifierRule {
	return func(id string) bool {
		if len(id) == 0 || len(id) > maxLen {
			return false
		}
		for i := 0; i < len(id); i++ {
			c := id[i]
			if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
				return false
			}
		}
		return true
	}
}

// Option configures a Store
type Option func(*Store)

// WithIdentifierRule replaces the identifier legality rule
func WithIdentifierRule(rule IdentifierRule) Option {
	return func(s *Store) {
		s.isLegal = rule
	}
}

// WithIdentifierPattern accepts identifiers that fully match re
func WithIdentifierPattern(re *regexp.Regexp) Option {
	anchored := regexp.MustCompile(`^(?:` + re.String() + `)$`)
	return WithIdentifierRule(anchored.MatchString)
}

// Store is an in-memory variable store safe for concurrent use
type Store struct {
	mu        sync.RWMutex
	variables map[string]polynomial.Polynomial
	isLegal   IdentifierRule
}

// New creates a new empty store
func New(opts ...Option) *Store {
	s := &Store{
		variables: make(map[string]polynomial.Polynomial),
		isLegal:   LettersRule(DefaultMaxIdentifierLength),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateIdentifier returns an error wrapping ErrInvalidIdentifier if id
// does not satisfy the store's identifier rule
func (s *Store) ValidateIdentifier(id string) error {
	if !s.isLegal(id) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}
	return nil
}

// Get returns the polynomial stored under id
func (s *Store) Get(id string) (polynomial.Polynomial, error) {
	if err := s.ValidateIdentifier(id); err != nil {
		return polynomial.Polynomial{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.variables[id]
	if !ok {
		return polynomial.Polynomial{}, fmt.Errorf("%w: %q", ErrIdentifierNotFound, id)
	}
	return p, nil
}

// Set stores p under id, replacing any previous value
func (s *Store) Set(id string, p polynomial.Polynomial) error {
	if err := s.ValidateIdentifier(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.variables[id] = p
	return nil
}

// All yields a snapshot of the stored variables in ascending identifier order
func (s *Store) All() iter.Seq2[string, polynomial.Polynomial] {
	s.mu.RLock()
	snapshot := maps.Clone(s.variables)
	s.mu.RUnlock()

	return func(yield func(string, polynomial.Polynomial) bool) {
		for _, id := range slices.Sorted(maps.Keys(snapshot)) {
			if !yield(id, snapshot[id]) {
				return
			}
		}
	}
}

// Len returns the number of stored variables
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.variables)
}

package store

import (
	"regexp"
	"sync"
	"testing"

	"github.com/averycrespi/polycalc/pkg/polynomial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLettersRule(t *testing.T) {
	rule := LettersRule(DefaultMaxIdentifierLength)

	tests := []struct {
		name     string
		id       string
		expected bool
	}{
		{name: "single letter", id: "a", expected: true},
		{name: "mixed case", id: "Poly", expected: true},
		{name: "maximum length", id: "abcdefghij", expected: true},
		{name: "too long", id: "abcdefghijk", expected: false},
		{name: "empty", id: "", expected: false},
		{name: "digit", id: "p1", expected: false},
		{name: "underscore", id: "my_poly", expected: false},
		{name: "space", id: "a b", expected: false},
		{name: "non-ascii letter", id: "é", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rule(tt.id))
		})
	}
}

func TestStore_SetAndGet(t *testing.T) {
	s := New()
	p := polynomial.MustParse("x^2+1")

	require.NoError(t, s.Set("a", p))

	got, err := s.Get("a")
	require.NoError(t, err)
	assert.True(t, p.Equal(got))
	assert.Equal(t, 1, s.Len())
}

func TestStore_LastAssignWins(t *testing.T) {
	s := New()

	require.NoError(t, s.Set("a", polynomial.MustParse("x")))
	require.NoError(t, s.Set("a", polynomial.MustParse("2x")))

	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "2x", got.String())
	assert.Equal(t, 1, s.Len())
}

func TestStore_Errors(t *testing.T) {
	s := New()

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrIdentifierNotFound)
	assert.Contains(t, err.Error(), `"missing"`)

	_, err = s.Get("x1")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)

	err = s.Set("way_too_long_name", polynomial.Zero())
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
	assert.Equal(t, 0, s.Len())
}

func TestStore_All_SortedByKey(t *testing.T) {
	s := New()
	for _, id := range []string{"zeta", "alpha", "Mid", "beta"} {
		require.NoError(t, s.Set(id, polynomial.Constant(float64(len(id)))))
	}

	var ids []string
	for id := range s.All() {
		ids = append(ids, id)
	}

	assert.Equal(t, []string{"Mid", "alpha", "beta", "zeta"}, ids)
}

func TestStore_All_StopsEarly(t *testing.T) {
	s := New()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.Set(id, polynomial.Zero()))
	}

	count := 0
	for range s.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestStore_All_IsSnapshot(t *testing.T) {
	s := New()
	require.NoError(t, s.Set("a", polynomial.Zero()))

	seq := s.All()
	require.NoError(t, s.Set("b", polynomial.Zero()))

	var ids []string
	for id := range seq {
		ids = append(ids, id)
	}
	assert.Equal(t, []string{"a"}, ids)
}

func TestStore_CustomRules(t *testing.T) {
	t.Run("rule function", func(t *testing.T) {
		s := New(WithIdentifierRule(LettersRule(3)))
		assert.NoError(t, s.ValidateIdentifier("abc"))
		assert.ErrorIs(t, s.ValidateIdentifier("abcd"), ErrInvalidIdentifier)
	})

	t.Run("pattern", func(t *testing.T) {
		s := New(WithIdentifierPattern(regexp.MustCompile(`[a-z][a-z0-9_]*`)))
		assert.NoError(t, s.ValidateIdentifier("p_1"))
		assert.ErrorIs(t, s.ValidateIdentifier("1p"), ErrInvalidIdentifier)
		assert.ErrorIs(t, s.ValidateIdentifier("p-1"), ErrInvalidIdentifier, "pattern must match the whole identifier")
		require.NoError(t, s.Set("p_1", polynomial.MustParse("x")))
	})
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.Set("shared", polynomial.Constant(float64(j)))
				_, _ = s.Get("shared")
				for range s.All() {
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, s.Len())
}

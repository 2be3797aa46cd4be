package locale

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatesAreWellFormed(t *testing.T) {
	require.NotEmpty(t, States)

	seen := make(map[string]bool)
	for _, st := range States {
		assert.False(t, seen[st.Name], "duplicate state %s", st.Name)
		seen[st.Name] = true
		assert.NotEmpty(t, st.Capital, st.Name)
		assert.NotEmpty(t, st.LGAs, st.Name)
		assert.NotEmpty(t, st.Areas, st.Name)
	}
}

func TestLookupState(t *testing.T) {
	st, ok := LookupState("Lagos")
	require.True(t, ok)
	assert.Equal(t, "Ikeja", st.Capital)

	_, ok = LookupState("Atlantis")
	assert.False(t, ok)

	assert.Len(t, StateNames(), len(States))
}

func TestPhonePrefixes(t *testing.T) {
	re := regexp.MustCompile(`^0\d{3}$`)
	seen := make(map[string]bool)
	for _, p := range PhonePrefixes {
		assert.Regexp(t, re, p)
		assert.False(t, seen[p], "duplicate prefix %s", p)
		seen[p] = true
		assert.True(t, IsPhonePrefix(p))
	}
	assert.False(t, IsPhonePrefix("0000"))
}

func TestNameTablesHaveNoDuplicates(t *testing.T) {
	for name, list := range map[string][]string{
		"male":    MaleFirstNames,
		"female":  FemaleFirstNames,
		"surname": Surnames,
	} {
		seen := make(map[string]bool)
		for _, n := range list {
			assert.False(t, seen[n], "%s: duplicate %s", name, n)
			seen[n] = true
		}
	}
	assert.Len(t, EmailDomains, 7)
}

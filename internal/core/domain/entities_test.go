package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMemberStatus(t *testing.T) {
	cases := map[string]MemberStatus{
		"Retiree":       StatusRetiree,
		" survivor ":    StatusSurvivor,
		"Jubilado":      StatusRetiree,
		"SOBREVIVIENTE": StatusSurvivor,
	}
	for in, want := range cases {
		got, err := ParseMemberStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
		assert.True(t, got.IsValid())
	}

	_, err := ParseMemberStatus("Widow")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.False(t, MemberStatus("").IsValid())
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(fmt.Errorf("full_name: %w", ErrMissingField)))
	assert.True(t, IsValidation(ErrInvalidDateFormat))
	assert.False(t, IsValidation(ErrDuplicateKey))
	assert.False(t, IsValidation(ErrNotFound))
}

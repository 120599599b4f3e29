package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("StrongPass123!", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "StrongPass123!", hash)

	assert.True(t, CheckPassword("StrongPass123!", hash))
	assert.False(t, CheckPassword("strongpass123!", hash))
	assert.False(t, CheckPassword("StrongPass123!", "not-a-hash"))
	assert.False(t, CheckPasswordAgainstNothing("StrongPass123!"))
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		attrs    []string
		want     string
	}{
		{name: "strong", password: "StrongPass123!", attrs: []string{"Test User", "a@x.com"}},
		{name: "too short", password: "Ab1!", want: "too short"},
		{name: "too long for bcrypt", password: "Aa1!" + strings.Repeat("x", 80), want: "too long"},
		{name: "exactly 72 bytes", password: "Aa1!" + strings.Repeat("x", 68)},
		{name: "numeric", password: "3141592653", want: "entirely numeric"},
		{name: "common", password: "Password123", want: "too common"},
		{name: "contains email local part", password: "Tester2024!", attrs: []string{"tester@example.com"}, want: "too similar"},
		{name: "contains name", password: "margaret-99", attrs: []string{"Margaret Hale"}, want: "too similar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := ValidatePassword(tt.password, tt.attrs...)
			if tt.want == "" {
				assert.Empty(t, problems)
				return
			}
			require.NotEmpty(t, problems)
			assert.Contains(t, strings.Join(problems, " "), tt.want)
		})
	}
}

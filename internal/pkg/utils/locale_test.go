package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalLocale(t *testing.T) {
	assert.Equal(t, "en", CanonicalLocale("EN"))
	assert.Equal(t, "ar-SA", CanonicalLocale(" ar-sa "))
	assert.Equal(t, "", CanonicalLocale(""))
	assert.Equal(t, "not a locale!", CanonicalLocale("not a locale!"))
}

func TestParseUnverifiedSubject(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "admin-42"}).SignedString([]byte("any-secret"))
	require.NoError(t, err)

	assert.Equal(t, "admin-42", ParseUnverifiedSubject(token))
	assert.Equal(t, "", ParseUnverifiedSubject("opaque-token"))
	assert.Equal(t, "", ParseUnverifiedSubject(""))
}

package utils

import (
	"github.com/golang-jwt/jwt/v4"
)

// ParseUnverifiedSubject returns the `sub` claim of an access token without
// checking its signature. The backend owns verification; the value is only
// used to attribute log lines.
func ParseUnverifiedSubject(tokenString string) string {
	if tokenString == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return ""
	}

	subject, _ := claims["sub"].(string)
	return subject
}

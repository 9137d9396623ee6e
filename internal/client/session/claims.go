package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// userIDClaims lists the claim names servers commonly use for the user id,
// in lookup order.
var userIDClaims = []string{"userId", "id", "sub"}

// PeekUserID extracts the user id from a JWT bearer token without verifying
// its signature. The token stays opaque to the rest of the client; this is
// only used to refetch the profile after a restart, when the token is known
// but the user is not. It returns "" for tokens that are not JWTs.
func PeekUserID(token string) string {
	if token == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	for _, name := range userIDClaims {
		if v, ok := claims[name].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

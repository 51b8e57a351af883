package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload embedded in every issued bearer token.
//
// Only the stable user identifier (the "sub" claim) and the e-mail at issue
// time are carried; everything else is re-read from the store when the token
// is verified.
type Claims struct {
	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, iss) as defined by RFC 7519.
	jwt.RegisteredClaims

	// Email is the user's e-mail at issue time.
	Email string `json:"email"`
}

// UserID returns the subject claim, which is the identifier of the user the
// token was issued for.
func (c Claims) UserID() string {
	return c.Subject
}

// Token is an issued bearer token together with the claims it carries.
type Token struct {
	Claims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

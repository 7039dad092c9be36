package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims are the claims carried by access tokens issued by the identity provider.
// UserID falls back to the registered subject when the provider does not set user_id.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
}

// SubjectUserID returns the user identifier carried by the token
func (c *CustomClaims) SubjectUserID() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.Subject
}

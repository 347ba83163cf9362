package domain

// Principal is the authenticated identity derived from a validated token.
type Principal struct {
	UserID int64
	Role   Role
	// TokenID is the jti of the token the principal was resolved from.
	TokenID string
}

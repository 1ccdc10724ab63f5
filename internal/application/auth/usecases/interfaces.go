package usecases

import "time"

// TokenIssuer issues and validates API tokens. Implemented by the JWT
// service.
type TokenIssuer interface {
	GenerateAccessToken(userID, organizationID uint, role string) (string, time.Time, error)
	GenerateRefreshToken(userID uint) (string, error)
	ValidateRefreshToken(token string) (uint, error)
}

package usecases

import (
	"context"
	"errors"
	"time"

	"gymstack/internal/domain/user"
	apperrors "gymstack/internal/shared/errors"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenResult struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type RefreshTokenUseCase struct {
	users  user.Repository
	tokens TokenIssuer
}

func NewRefreshTokenUseCase(users user.Repository, tokens TokenIssuer) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{users: users, tokens: tokens}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error) {
	userID, err := uc.tokens.ValidateRefreshToken(cmd.RefreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid refresh token")
	}

	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid refresh token")
		}
		return nil, err
	}
	if !u.IsActive() {
		return nil, apperrors.NewUnauthorizedError("account is disabled")
	}

	var orgID uint
	if id := u.OrganizationID(); id != nil {
		orgID = *id
	}
	accessToken, expiresAt, err := uc.tokens.GenerateAccessToken(u.ID(), orgID, u.Role().String())
	if err != nil {
		return nil, apperrors.NewInternalError("failed to issue token")
	}
	return &RefreshTokenResult{AccessToken: accessToken, ExpiresAt: expiresAt}, nil
}

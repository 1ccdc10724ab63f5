package usecases

import (
	"context"
	"errors"
	"time"

	"gymstack/internal/application/staff/dto"
	"gymstack/internal/domain/user"
	apperrors "gymstack/internal/shared/errors"
	"gymstack/internal/shared/logger"
	"gymstack/internal/shared/utils"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresAt    time.Time     `json:"expires_at"`
	User         *dto.StaffDTO `json:"user"`
}

type LoginUseCase struct {
	users  user.Repository
	tokens TokenIssuer
	logger logger.Interface
}

func NewLoginUseCase(users user.Repository, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{users: users, tokens: tokens, logger: logger}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	u, err := uc.users.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		return nil, err
	}
	if !u.IsActive() {
		return nil, apperrors.NewUnauthorizedError("account is disabled")
	}
	if !utils.VerifyPassword(u.PasswordHash(), cmd.Password) {
		uc.logger.Warnw("failed login attempt", "email", cmd.Email)
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	var orgID uint
	if id := u.OrganizationID(); id != nil {
		orgID = *id
	}
	accessToken, expiresAt, err := uc.tokens.GenerateAccessToken(u.ID(), orgID, u.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "error", err, "user_id", u.ID())
		return nil, apperrors.NewInternalError("failed to issue token")
	}
	refreshToken, err := uc.tokens.GenerateRefreshToken(u.ID())
	if err != nil {
		uc.logger.Errorw("failed to issue refresh token", "error", err, "user_id", u.ID())
		return nil, apperrors.NewInternalError("failed to issue token")
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		User:         dto.ToStaffDTO(u),
	}, nil
}

package services

import (
	"AgendaDental/models"
	"AgendaDental/repositories"
	"AgendaDental/utils"
	"context"
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned on any login failure: unknown or inactive
// email, or an admin password mismatch.
var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService interface {
	Login(ctx context.Context, email, secret string) (string, *models.Account, error)
	GetActiveByEmail(ctx context.Context, email string) (*models.Account, error)
	UpdatePassword(ctx context.Context, accountID int64, hashedPassword string) error
	GetAccountSummaries(ctx context.Context) ([]models.AccountSummary, error)
}

type authService struct {
	accountRepo repositories.AccountRepository
}

func NewAuthService(accountRepo repositories.AccountRepository) AuthService {
	return &authService{accountRepo: accountRepo}
}

// Login authenticates an account and issues its access token.
//
// Admin accounts must present the correct password, compared against the
// stored bcrypt hash. Patient accounts authenticate on email match alone:
// patients self-register without passwords, so no secret check occurs. That
// is intentional current behavior, not an omission.
func (s *authService) Login(ctx context.Context, email, secret string) (string, *models.Account, error) {
	account, err := s.accountRepo.GetActiveByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("login lookup failed: %w", err)
	}
	if account == nil {
		return "", nil, ErrInvalidCredentials
	}

	if account.Role == models.RoleAdmin {
		if !utils.CheckPassword(account.Password, secret) {
			return "", nil, ErrInvalidCredentials
		}
	}

	token, err := utils.GenerateAccessToken(account.ID, account.Email, account.Role, account.PatientID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, account, nil
}

func (s *authService) GetActiveByEmail(ctx context.Context, email string) (*models.Account, error) {
	return s.accountRepo.GetActiveByEmail(ctx, email)
}

func (s *authService) UpdatePassword(ctx context.Context, accountID int64, hashedPassword string) error {
	return s.accountRepo.UpdatePassword(ctx, accountID, hashedPassword)
}

func (s *authService) GetAccountSummaries(ctx context.Context) ([]models.AccountSummary, error) {
	return s.accountRepo.GetSummaries(ctx)
}

package services

import (
	"AgendaDental/models"
	"AgendaDental/utils"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTokenKey(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
}

func adminAccount(t *testing.T, password string) *models.Account {
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &models.Account{
		ID:       1,
		Email:    "admin@dental.clinic",
		Password: hash,
		Role:     models.RoleAdmin,
		Active:   true,
	}
}

func TestLoginAdminSuccess(t *testing.T) {
	setTokenKey(t)
	stored := adminAccount(t, "Adm1n$pass")

	repo := &mockAccountRepository{
		GetActiveByEmailFn: func(ctx context.Context, email string) (*models.Account, error) {
			assert.Equal(t, "admin@dental.clinic", email)
			return stored, nil
		},
	}
	svc := NewAuthService(repo)

	token, account, err := svc.Login(context.Background(), "admin@dental.clinic", "Adm1n$pass")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, stored, account)

	claims, err := utils.ValidateToken(token, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.AccountID)
	assert.Nil(t, claims.PatientID)
}

func TestLoginAdminWrongPassword(t *testing.T) {
	setTokenKey(t)
	stored := adminAccount(t, "Adm1n$pass")

	repo := &mockAccountRepository{
		GetActiveByEmailFn: func(ctx context.Context, email string) (*models.Account, error) {
			return stored, nil
		},
	}
	svc := NewAuthService(repo)

	_, _, err := svc.Login(context.Background(), "admin@dental.clinic", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	setTokenKey(t)

	repo := &mockAccountRepository{
		GetActiveByEmailFn: func(ctx context.Context, email string) (*models.Account, error) {
			return nil, nil
		},
	}
	svc := NewAuthService(repo)

	_, _, err := svc.Login(context.Background(), "nobody@x.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// Patient accounts carry no password; email alone logs them in.
func TestLoginPatientWithoutSecret(t *testing.T) {
	setTokenKey(t)

	patientID := "b2f1c4a0-0000-0000-0000-000000000001"
	repo := &mockAccountRepository{
		GetActiveByEmailFn: func(ctx context.Context, email string) (*models.Account, error) {
			return &models.Account{
				ID:        7,
				Email:     "ana@x.com",
				Role:      models.RolePatient,
				PatientID: &patientID,
				Active:    true,
			}, nil
		},
	}
	svc := NewAuthService(repo)

	token, account, err := svc.Login(context.Background(), "ana@x.com", "")
	require.NoError(t, err)
	assert.Equal(t, models.RolePatient, account.Role)

	claims, err := utils.ValidateToken(token, models.RolePatient)
	require.NoError(t, err)
	require.NotNil(t, claims.PatientID)
	assert.Equal(t, patientID, *claims.PatientID)
}

func TestLoginLookupError(t *testing.T) {
	setTokenKey(t)

	repo := &mockAccountRepository{
		GetActiveByEmailFn: func(ctx context.Context, email string) (*models.Account, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := NewAuthService(repo)

	_, _, err := svc.Login(context.Background(), "admin@dental.clinic", "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetAccountSummaries(t *testing.T) {
	want := []models.AccountSummary{
		{ID: 1, Email: "admin@dental.clinic", Role: models.RoleAdmin, Active: true},
		{ID: 2, Email: "ana@x.com", Role: models.RolePatient, Active: true, PatientName: "Ana"},
	}
	repo := &mockAccountRepository{
		GetSummariesFn: func(ctx context.Context) ([]models.AccountSummary, error) {
			return want, nil
		},
	}
	svc := NewAuthService(repo)

	got, err := svc.GetAccountSummaries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

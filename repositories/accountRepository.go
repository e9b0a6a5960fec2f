package repositories

import (
	"AgendaDental/cache"
	"AgendaDental/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AccountRepository interface {
	GetActiveByEmail(ctx context.Context, email string) (*models.Account, error)
	UpdatePassword(ctx context.Context, accountID int64, hashedPassword string) error
	GetSummaries(ctx context.Context) ([]models.AccountSummary, error)
}

type accountRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewAccountRepository(db *gorm.DB, cache *cache.Cache) AccountRepository {
	return &accountRepository{db: db, cache: cache}
}

// GetActiveByEmail looks up an active account by email. Returns nil without
// error when no active account matches.
func (r *accountRepository) GetActiveByEmail(ctx context.Context, email string) (*models.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var account models.Account
	err := r.db.WithContext(ctx).
		Where("email = ? AND active = ?", email, true).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (r *accountRepository) UpdatePassword(ctx context.Context, accountID int64, hashedPassword string) error {
	return r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", accountID).
		Update("password", hashedPassword).Error
}

// GetSummaries lists every account joined with the linked patient's name,
// ordered by id.
func (r *accountRepository) GetSummaries(ctx context.Context) ([]models.AccountSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var summaries []models.AccountSummary
	err := r.db.WithContext(ctx).
		Table("account AS a").
		Select("a.id, a.email, a.role, a.active, COALESCE(p.name, '') AS patient_name").
		Joins("LEFT JOIN patient p ON p.id = a.patient_id").
		Order("a.id").
		Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return summaries, nil
}

package repositories

import (
	"AgendaDental/models"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type StatsRepository interface {
	TodayCount(ctx context.Context) (int64, error)
	TodayRevenue(ctx context.Context) (float64, error)
	NoShows30d(ctx context.Context) (int64, error)
	StoreCounts(ctx context.Context) (*models.StoreInfo, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// TodayCount counts today's appointments, cancelled ones excluded. "Today" is
// the database server's local date.
func (r *statsRepository) TodayCount(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("DATE(scheduled_at) = CURRENT_DATE AND status <> ?", models.StatusCancelled).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count today's appointments: %w", err)
	}
	return count, nil
}

// TodayRevenue sums procedure prices over today's completed appointments. A
// day with no completed appointments yields 0.
func (r *statsRepository) TodayRevenue(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var revenue float64
	err := r.db.WithContext(ctx).
		Table("appointment AS a").
		Joins("JOIN procedure pr ON pr.id = a.procedure_id").
		Where("DATE(a.scheduled_at) = CURRENT_DATE AND a.status = ?", models.StatusCompleted).
		Select("COALESCE(SUM(pr.price), 0)").
		Scan(&revenue).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum today's revenue: %w", err)
	}
	return revenue, nil
}

// NoShows30d counts no-show appointments within the last 30 days, today
// inclusive.
func (r *statsRepository) NoShows30d(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("status = ? AND DATE(scheduled_at) >= CURRENT_DATE - INTERVAL '30 days'", models.StatusNoShow).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count no-shows: %w", err)
	}
	return count, nil
}

// StoreCounts returns the table row counts shown on the admin store-info
// screen. Three independent statements, no shared snapshot.
func (r *statsRepository) StoreCounts(ctx context.Context) (*models.StoreInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	info := &models.StoreInfo{}
	if err := r.db.WithContext(ctx).Model(&models.Account{}).Count(&info.Accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}
	if err := r.db.WithContext(ctx).Model(&models.Patient{}).Count(&info.Patients).Error; err != nil {
		return nil, fmt.Errorf("failed to count patients: %w", err)
	}
	if err := r.db.WithContext(ctx).Model(&models.Appointment{}).Count(&info.Appointments).Error; err != nil {
		return nil, fmt.Errorf("failed to count appointments: %w", err)
	}
	return info, nil
}

package repositories

import (
	"AgendaDental/cache"
	"AgendaDental/models"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	AppointmentCacheExpiry = 1 * time.Hour
	appointmentsCacheKey   = "appointments_cache"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	List(ctx context.Context, patientID string, date string) ([]models.AppointmentView, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.AppointmentView, error)
	Update(ctx context.Context, id uint, scheduledAt time.Time, status string) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type appointmentRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewAppointmentRepository(db *gorm.DB, cache *cache.Cache) AppointmentRepository {
	return &appointmentRepository{db: db, cache: cache}
}

const appointmentViewSelect = "a.id, a.patient_id, a.procedure_id, a.scheduled_at, a.status, a.notes, " +
	"p.name AS patient_name, p.phone AS patient_phone, " +
	"pr.name AS procedure_name, pr.duration, pr.price"

func (r *appointmentRepository) viewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("appointment AS a").
		Select(appointmentViewSelect).
		Joins("JOIN patient p ON p.id = a.patient_id").
		Joins("JOIN procedure pr ON pr.id = a.procedure_id")
}

// Create inserts the appointment. Foreign key targets must exist; a violation
// surfaces as a store error and no row is written. There is no overlap or
// double-booking check.
func (r *appointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if err := r.db.WithContext(ctx).Create(appointment).Error; err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	r.invalidateListing(ctx)
	return nil
}

// List returns appointments joined with patient and procedure display
// fields. An empty patientID means no ownership scope (the admin view); a
// non-empty date (YYYY-MM-DD) filters to that calendar day. The full
// unfiltered listing is read through the cache.
func (r *appointmentRepository) List(ctx context.Context, patientID string, date string) ([]models.AppointmentView, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	unfiltered := patientID == "" && date == ""
	if unfiltered {
		cachedViews, err := r.cache.Get(ctx, appointmentsCacheKey)
		if err == nil {
			var views []models.AppointmentView
			if err := json.Unmarshal([]byte(cachedViews), &views); err == nil {
				return views, nil
			}
		} else if err != redis.Nil {
			log.Printf("Failed to get appointments from cache: %v", err)
		}
	}

	query := r.viewQuery(ctx)
	if patientID != "" {
		query = query.Where("a.patient_id = ?", patientID)
	}
	if date != "" {
		query = query.Where("DATE(a.scheduled_at) = ?", date)
	}

	var views []models.AppointmentView
	if err := query.Scan(&views).Error; err != nil {
		return nil, fmt.Errorf("failed to get appointments: %w", err)
	}

	if unfiltered {
		viewsJSON, err := json.Marshal(views)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal appointments: %w", err)
		}
		if err := r.cache.Set(ctx, appointmentsCacheKey, viewsJSON, AppointmentCacheExpiry); err != nil {
			log.Printf("Failed to set appointments in cache: %v", err)
		}
	}

	return views, nil
}

// ListByPatient returns one patient's appointments, most recent first.
func (r *appointmentRepository) ListByPatient(ctx context.Context, patientID string) ([]models.AppointmentView, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var views []models.AppointmentView
	err := r.viewQuery(ctx).
		Where("a.patient_id = ?", patientID).
		Order("a.scheduled_at DESC").
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get patient appointments: %w", err)
	}
	return views, nil
}

// Update replaces the appointment's time and status, returning the number of
// rows changed. Zero rows means the id does not exist; that is a no-op, not
// an error.
func (r *appointmentRepository) Update(ctx context.Context, id uint, scheduledAt time.Time, status string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"scheduled_at": scheduledAt,
			"status":       status,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update appointment: %w", result.Error)
	}
	r.invalidateListing(ctx)
	return result.RowsAffected, nil
}

// Delete hard-deletes the appointment, returning the number of rows changed.
func (r *appointmentRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete appointment: %w", result.Error)
	}
	r.invalidateListing(ctx)
	return result.RowsAffected, nil
}

func (r *appointmentRepository) invalidateListing(ctx context.Context) {
	if err := r.cache.Delete(ctx, appointmentsCacheKey); err != nil {
		log.Printf("Failed to invalidate appointments cache: %v", err)
	}
}

package repositories

import (
	"AgendaDental/cache"
	"AgendaDental/database"
	"AgendaDental/models"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PatientCacheExpiry = 24 * time.Hour
	patientsCacheKey   = "patients_cache"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	RegisterWithAccount(ctx context.Context, patient *models.Patient, account *models.Account) error
	GetAll(ctx context.Context) ([]models.Patient, error)
}

type patientRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewPatientRepository(db *gorm.DB, cache *cache.Cache) PatientRepository {
	return &patientRepository{db: db, cache: cache}
}

func (r *patientRepository) Create(ctx context.Context, patient *models.Patient) error {
	if err := r.db.WithContext(ctx).Create(patient).Error; err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	if err := r.cache.Delete(ctx, patientsCacheKey); err != nil {
		log.Printf("Failed to invalidate patients cache: %v", err)
	}
	return nil
}

// RegisterWithAccount creates the patient row and its patient-role account in
// a single transaction: a rejected account insert (duplicate email) rolls the
// patient back instead of leaving it orphaned. A short Redis lock on the
// email guards concurrent duplicate registration.
func (r *patientRepository) RegisterWithAccount(ctx context.Context, patient *models.Patient, account *models.Account) error {
	lockKey := fmt.Sprintf("register_lock:%s", account.Email)
	lockValue := uuid.New().String()
	locked, err := database.NewLock(ctx, lockKey, lockValue, 10*time.Second)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("registration already in progress for %s", account.Email)
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(patient).Error; err != nil {
			return err
		}
		account.PatientID = &patient.ID
		return tx.Create(account).Error
	})
	if err != nil {
		return fmt.Errorf("failed to register patient: %w", err)
	}

	if err := r.cache.Delete(ctx, patientsCacheKey); err != nil {
		log.Printf("Failed to invalidate patients cache: %v", err)
	}
	return nil
}

// GetAll returns every patient ordered by name, read through the cache.
func (r *patientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cachedPatients, err := r.cache.Get(ctx, patientsCacheKey)
	if err == nil {
		var patients []models.Patient
		if err := json.Unmarshal([]byte(cachedPatients), &patients); err == nil {
			return patients, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get patients from cache: %v", err)
	}

	var patients []models.Patient
	err = r.db.WithContext(ctx).
		Select("id, name, phone, email, created_at").
		Order("name").
		Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all patients: %w", err)
	}

	patientsJSON, err := json.Marshal(patients)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patients: %w", err)
	}
	if err := r.cache.Set(ctx, patientsCacheKey, patientsJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patients in cache: %v", err)
	}

	return patients, nil
}

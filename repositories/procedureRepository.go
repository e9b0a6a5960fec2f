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
	ProcedureCacheExpiry = 7 * 24 * time.Hour
	proceduresCacheKey   = "procedures_cache"
)

type ProcedureRepository interface {
	GetAll(ctx context.Context) ([]models.Procedure, error)
}

type procedureRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewProcedureRepository(db *gorm.DB, cache *cache.Cache) ProcedureRepository {
	return &procedureRepository{db: db, cache: cache}
}

// GetAll returns the procedure catalogue, read through the cache. The
// catalogue changes only through seeding, so the expiry is generous.
func (r *procedureRepository) GetAll(ctx context.Context) ([]models.Procedure, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cachedProcedures, err := r.cache.Get(ctx, proceduresCacheKey)
	if err == nil {
		var procedures []models.Procedure
		if err := json.Unmarshal([]byte(cachedProcedures), &procedures); err == nil {
			return procedures, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get procedures from cache: %v", err)
	}

	var procedures []models.Procedure
	err = r.db.WithContext(ctx).Order("id").Find(&procedures).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all procedures: %w", err)
	}

	proceduresJSON, err := json.Marshal(procedures)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal procedures: %w", err)
	}
	if err := r.cache.Set(ctx, proceduresCacheKey, proceduresJSON, ProcedureCacheExpiry); err != nil {
		log.Printf("Failed to set procedures in cache: %v", err)
	}

	return procedures, nil
}

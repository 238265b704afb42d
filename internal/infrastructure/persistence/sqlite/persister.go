package sqlite

import (
	"context"
	"errors"

	"github.com/platewise/v1/internal/ports/outbound"
	apperrors "github.com/platewise/v1/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Persister implements the state persister on top of the store_states table.
type Persister struct {
	db     *gorm.DB
	logger *zap.Logger
}

var _ outbound.StatePersister = (*Persister)(nil)

// NewPersister creates a persister over an already-migrated database.
func NewPersister(db *gorm.DB, logger *zap.Logger) *Persister {
	return &Persister{db: db, logger: logger}
}

// Save upserts the payload for key.
func (p *Persister) Save(ctx context.Context, key string, data []byte) error {
	record := StateModel{Key: key, Data: data}
	err := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		p.logger.Error("sqlite save failed", zap.String("key", key), zap.Error(err))
		return apperrors.NewPersistenceError("save state row", err)
	}
	return nil
}

// Load returns the payload stored under key.
func (p *Persister) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var record StateModel
	err := p.db.WithContext(ctx).First(&record, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		p.logger.Error("sqlite load failed", zap.String("key", key), zap.Error(err))
		return nil, false, apperrors.NewPersistenceError("load state row", err)
	}
	return record.Data, true, nil
}

// Delete removes the payload stored under key.
func (p *Persister) Delete(ctx context.Context, key string) error {
	err := p.db.WithContext(ctx).Delete(&StateModel{}, "key = ?", key).Error
	if err != nil {
		p.logger.Error("sqlite delete failed", zap.String("key", key), zap.Error(err))
		return apperrors.NewPersistenceError("delete state row", err)
	}
	return nil
}

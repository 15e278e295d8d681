package repository

import (
	"errors"
	"time"

	"github.com/algo-odyssey/backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BlockRepository interface {
	// Block inserts or reactivates the record for email. Calling it for an
	// already-active block is a no-op, never a duplicate.
	Block(email, reason string) error
	// Unblock deactivates the record; it is a no-op when the email is not
	// currently blocked.
	Unblock(email string) error
	IsBlocked(email string) (bool, error)
	ListActive() ([]model.BlockedUser, error)
}

type blockRepository struct {
	db *gorm.DB
}

func NewBlockRepository(db *gorm.DB) BlockRepository {
	return &blockRepository{db: db}
}

func (r *blockRepository) Block(email, reason string) error {
	record := model.BlockedUser{
		Email:     email,
		Reason:    reason,
		BlockedAt: time.Now(),
		Active:    true,
	}
	// Upsert keyed on email keeps the operation idempotent under concurrent
	// sessions crossing the threshold at the same time.
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"reason":     reason,
			"blocked_at": record.BlockedAt,
			"active":     true,
		}),
	}).Create(&record).Error
}

func (r *blockRepository) Unblock(email string) error {
	return r.db.Model(&model.BlockedUser{}).
		Where("email = ? AND active = ?", email, true).
		Update("active", false).Error
}

func (r *blockRepository) IsBlocked(email string) (bool, error) {
	var record model.BlockedUser
	err := r.db.Where("email = ? AND active = ?", email, true).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *blockRepository) ListActive() ([]model.BlockedUser, error) {
	var records []model.BlockedUser
	err := r.db.Where("active = ?", true).Order("blocked_at DESC").Find(&records).Error
	return records, err
}

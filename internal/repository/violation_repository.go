package repository

import (
	"github.com/algo-odyssey/backend/internal/model"
	"gorm.io/gorm"
)

// ViolationRepository is append-only; records are never updated or deleted.
type ViolationRepository interface {
	Create(record *model.ViolationRecord) error
	FindByKind(kind model.ViolationKind) ([]model.ViolationRecord, error)
	FindByChallengeAndKind(challengeID uint, kind model.ViolationKind) ([]model.ViolationRecord, error)
}

type violationRepository struct {
	db *gorm.DB
}

func NewViolationRepository(db *gorm.DB) ViolationRepository {
	return &violationRepository{db: db}
}

func (r *violationRepository) Create(record *model.ViolationRecord) error {
	return r.db.Create(record).Error
}

func (r *violationRepository) FindByKind(kind model.ViolationKind) ([]model.ViolationRecord, error) {
	var records []model.ViolationRecord
	err := r.db.Where("kind = ?", kind).Order("created_at ASC").Find(&records).Error
	return records, err
}

func (r *violationRepository) FindByChallengeAndKind(challengeID uint, kind model.ViolationKind) ([]model.ViolationRecord, error) {
	var records []model.ViolationRecord
	err := r.db.Where("challenge_id = ? AND kind = ?", challengeID, kind).
		Order("created_at ASC").
		Find(&records).Error
	return records, err
}

package repository

import (
	"github.com/algo-odyssey/backend/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(submission *model.Submission) error
	FindAllWithUsers() ([]model.Submission, error)
	FindByChallengeWithUsers(challengeID uint) ([]model.Submission, error)
	FindByUser(userID uint) ([]model.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *model.Submission) error {
	return r.db.Create(submission).Error
}

func (r *submissionRepository) FindAllWithUsers() ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.Preload("User").Order("created_at ASC").Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) FindByChallengeWithUsers(challengeID uint) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.Preload("User").
		Where("challenge_id = ?", challengeID).
		Order("created_at ASC").
		Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) FindByUser(userID uint) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&submissions).Error
	return submissions, err
}

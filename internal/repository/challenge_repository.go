package repository

import (
	"time"

	"github.com/algo-odyssey/backend/internal/model"
	"gorm.io/gorm"
)

type ChallengeRepository interface {
	Create(challenge *model.Challenge) error
	FindByID(id uint) (*model.Challenge, error)
	FindByIDWithTestCases(id uint) (*model.Challenge, error)
	FindAll() ([]model.Challenge, error)
	// DueForReminder selects challenges whose start time falls inside the
	// reminder window and which have not been reminded yet.
	DueForReminder(windowStart, windowEnd time.Time) ([]model.Challenge, error)
	// DueForLeaderboard selects challenges whose window has closed and whose
	// leaderboard has not been computed.
	DueForLeaderboard(now time.Time) ([]model.Challenge, error)
	Participants(challengeID uint) ([]model.User, error)
	// MarkReminderSent flips reminder_sent only if still false. Returns true
	// when this call performed the transition.
	MarkReminderSent(challengeID uint) (bool, error)
	// MarkLeaderboardComputed flips leaderboard_computed only if still false.
	MarkLeaderboardComputed(challengeID uint) (bool, error)
}

type challengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) ChallengeRepository {
	return &challengeRepository{db: db}
}

func (r *challengeRepository) Create(challenge *model.Challenge) error {
	return r.db.Create(challenge).Error
}

func (r *challengeRepository) FindByID(id uint) (*model.Challenge, error) {
	var challenge model.Challenge
	if err := r.db.First(&challenge, id).Error; err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (r *challengeRepository) FindByIDWithTestCases(id uint) (*model.Challenge, error) {
	var challenge model.Challenge
	err := r.db.Preload("TestCases", func(db *gorm.DB) *gorm.DB {
		return db.Order("test_cases.order_index ASC")
	}).First(&challenge, id).Error
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (r *challengeRepository) FindAll() ([]model.Challenge, error) {
	var challenges []model.Challenge
	err := r.db.Order("start_time ASC NULLS LAST, created_at DESC").Find(&challenges).Error
	return challenges, err
}

func (r *challengeRepository) DueForReminder(windowStart, windowEnd time.Time) ([]model.Challenge, error) {
	var challenges []model.Challenge
	err := r.db.
		Where("reminder_sent = ? AND start_time IS NOT NULL AND start_time BETWEEN ? AND ?",
			false, windowStart, windowEnd).
		Find(&challenges).Error
	return challenges, err
}

func (r *challengeRepository) DueForLeaderboard(now time.Time) ([]model.Challenge, error) {
	var challenges []model.Challenge
	err := r.db.
		Where("leaderboard_computed = ? AND start_time IS NOT NULL AND start_time + make_interval(secs => time_limit) <= ?",
			false, now).
		Find(&challenges).Error
	return challenges, err
}

func (r *challengeRepository) Participants(challengeID uint) ([]model.User, error) {
	var users []model.User
	err := r.db.Model(&model.Challenge{ID: challengeID}).
		Association("Participants").Find(&users)
	return users, err
}

func (r *challengeRepository) MarkReminderSent(challengeID uint) (bool, error) {
	return r.flipFlag(challengeID, "reminder_sent")
}

func (r *challengeRepository) MarkLeaderboardComputed(challengeID uint) (bool, error) {
	return r.flipFlag(challengeID, "leaderboard_computed")
}

// flipFlag performs the conditional false->true transition that keeps the
// lifecycle flags one-way under concurrent schedulers.
func (r *challengeRepository) flipFlag(challengeID uint, column string) (bool, error) {
	res := r.db.Model(&model.Challenge{}).
		Where("id = ? AND "+column+" = ?", challengeID, false).
		Update(column, true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

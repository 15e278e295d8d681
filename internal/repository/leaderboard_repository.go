package repository

import (
	"github.com/algo-odyssey/backend/internal/model"
	"gorm.io/gorm"
)

type LeaderboardRepository interface {
	// ReplaceForChallenge atomically swaps the persisted rows for one
	// challenge; reruns of the sweep overwrite rather than append.
	ReplaceForChallenge(challengeID uint, entries []model.LeaderboardEntry) error
	FindByChallenge(challengeID uint) ([]model.LeaderboardEntry, error)
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) ReplaceForChallenge(challengeID uint, entries []model.LeaderboardEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("challenge_id = ?", challengeID).
			Delete(&model.LeaderboardEntry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		for i := range entries {
			entries[i].ChallengeID = challengeID
		}
		return tx.Create(&entries).Error
	})
}

func (r *leaderboardRepository) FindByChallenge(challengeID uint) ([]model.LeaderboardEntry, error) {
	var entries []model.LeaderboardEntry
	err := r.db.Where("challenge_id = ?", challengeID).Order("rank ASC").Find(&entries).Error
	return entries, err
}

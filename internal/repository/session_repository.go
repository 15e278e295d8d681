package repository

import (
	"time"

	"github.com/algo-odyssey/backend/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(session *model.Session) error
	// End records the terminal status; a session that is no longer active is
	// left untouched so the first terminal transition wins.
	End(id uuid.UUID, status model.SessionStatus) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *model.Session) error {
	return r.db.Create(session).Error
}

func (r *sessionRepository) End(id uuid.UUID, status model.SessionStatus) error {
	now := time.Now()
	return r.db.Model(&model.Session{}).
		Where("id = ? AND status = ?", id, model.SessionActive).
		Updates(map[string]interface{}{"status": status, "ended_at": now}).Error
}

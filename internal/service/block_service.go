package service

import (
	"fmt"

	"github.com/algo-odyssey/backend/internal/model"
	"github.com/algo-odyssey/backend/internal/repository"
	"github.com/rs/zerolog/log"
)

// BlockService is the block registry surface: consulted before any session
// start, written by the violation aggregator and by admins.
type BlockService interface {
	Block(email, reason string) error
	Unblock(email string) error
	IsBlocked(email string) (bool, error)
	ListActive() ([]model.BlockedUser, error)
}

type blockService struct {
	blockRepo repository.BlockRepository
}

func NewBlockService(blockRepo repository.BlockRepository) BlockService {
	return &blockService{blockRepo: blockRepo}
}

func (s *blockService) Block(email, reason string) error {
	if email == "" {
		return fmt.Errorf("cannot block an empty identity")
	}
	if err := s.blockRepo.Block(email, reason); err != nil {
		return fmt.Errorf("failed to block %s: %w", email, err)
	}
	log.Info().Str("email", email).Str("reason", reason).Msg("Identity blocked")
	return nil
}

func (s *blockService) Unblock(email string) error {
	// Unblocking an identity that is not blocked is a recoverable condition,
	// not an error.
	if err := s.blockRepo.Unblock(email); err != nil {
		return fmt.Errorf("failed to unblock %s: %w", email, err)
	}
	log.Info().Str("email", email).Msg("Identity unblocked")
	return nil
}

func (s *blockService) IsBlocked(email string) (bool, error) {
	return s.blockRepo.IsBlocked(email)
}

func (s *blockService) ListActive() ([]model.BlockedUser, error) {
	return s.blockRepo.ListActive()
}

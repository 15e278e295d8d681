package service

import (
	"fmt"

	"github.com/algo-odyssey/backend/internal/dto"
	"github.com/algo-odyssey/backend/internal/model"
	"github.com/algo-odyssey/backend/internal/repository"
	"github.com/rs/zerolog/log"
)

// LeaderboardService exposes the leaderboard query surface and the
// compute-and-persist path used by the lifecycle scheduler.
type LeaderboardService interface {
	Global() (*dto.LeaderboardResponse, error)
	ForChallenge(challengeID uint) (*dto.LeaderboardResponse, error)
	// ComputeAndStore ranks one challenge and persists the result. Used by
	// the leaderboard sweep once a challenge window closes.
	ComputeAndStore(challengeID uint) error
}

type leaderboardService struct {
	submissionRepo  repository.SubmissionRepository
	violationRepo   repository.ViolationRepository
	leaderboardRepo repository.LeaderboardRepository
	challengeRepo   repository.ChallengeRepository
}

func NewLeaderboardService(
	submissionRepo repository.SubmissionRepository,
	violationRepo repository.ViolationRepository,
	leaderboardRepo repository.LeaderboardRepository,
	challengeRepo repository.ChallengeRepository,
) LeaderboardService {
	return &leaderboardService{
		submissionRepo:  submissionRepo,
		violationRepo:   violationRepo,
		leaderboardRepo: leaderboardRepo,
		challengeRepo:   challengeRepo,
	}
}

func (s *leaderboardService) Global() (*dto.LeaderboardResponse, error) {
	submissions, err := s.submissionRepo.FindAllWithUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to load submissions: %w", err)
	}
	plagiarism, err := s.violationRepo.FindByKind(model.ViolationPlagiarism)
	if err != nil {
		return nil, fmt.Errorf("failed to load plagiarism records: %w", err)
	}

	entries := ComputeLeaderboard(submissions, plagiarism)
	resp := &dto.LeaderboardResponse{Leaderboard: entries}
	if len(entries) == 0 {
		resp.Message = "No submissions yet"
	}
	return resp, nil
}

func (s *leaderboardService) ForChallenge(challengeID uint) (*dto.LeaderboardResponse, error) {
	challenge, err := s.challengeRepo.FindByID(challengeID)
	if err != nil {
		return nil, fmt.Errorf("challenge %d not found: %w", challengeID, err)
	}

	// Serve the frozen ranking once the sweep has persisted it; before that
	// the scope is still open and is ranked live.
	if challenge.LeaderboardComputed {
		entries, err := s.leaderboardRepo.FindByChallenge(challengeID)
		if err != nil {
			return nil, fmt.Errorf("failed to load stored leaderboard: %w", err)
		}
		resp := &dto.LeaderboardResponse{ChallengeID: challengeID, Leaderboard: entries}
		if len(entries) == 0 {
			resp.Message = "No submissions for this challenge yet"
		}
		return resp, nil
	}

	entries, err := s.computeForChallenge(challengeID)
	if err != nil {
		return nil, err
	}
	resp := &dto.LeaderboardResponse{ChallengeID: challengeID, Leaderboard: entries}
	if len(entries) == 0 {
		resp.Message = "No submissions for this challenge yet"
	}
	return resp, nil
}

func (s *leaderboardService) ComputeAndStore(challengeID uint) error {
	entries, err := s.computeForChallenge(challengeID)
	if err != nil {
		return err
	}
	if err := s.leaderboardRepo.ReplaceForChallenge(challengeID, entries); err != nil {
		return fmt.Errorf("failed to persist leaderboard for challenge %d: %w", challengeID, err)
	}
	log.Info().Uint("challengeID", challengeID).Int("entries", len(entries)).Msg("Leaderboard computed and stored")
	return nil
}

func (s *leaderboardService) computeForChallenge(challengeID uint) ([]model.LeaderboardEntry, error) {
	submissions, err := s.submissionRepo.FindByChallengeWithUsers(challengeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load submissions for challenge %d: %w", challengeID, err)
	}
	plagiarism, err := s.violationRepo.FindByChallengeAndKind(challengeID, model.ViolationPlagiarism)
	if err != nil {
		return nil, fmt.Errorf("failed to load plagiarism records for challenge %d: %w", challengeID, err)
	}
	return ComputeLeaderboard(submissions, plagiarism), nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/algo-odyssey/backend/internal/dto"
	"github.com/algo-odyssey/backend/internal/model"
	"github.com/algo-odyssey/backend/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// SubmissionService runs a session's code against the challenge test cases
// via the external runner and freezes the result as an immutable submission.
type SubmissionService interface {
	SubmitCode(ctx context.Context, userID, challengeID uint, startedAt time.Time, req dto.SubmitCodeRequest) (*dto.SubmissionResponse, error)
	GetUserSubmissions(userID uint) ([]dto.SubmissionResponse, error)
}

type submissionService struct {
	challengeRepo  repository.ChallengeRepository
	submissionRepo repository.SubmissionRepository
	runner         RunnerService
}

func NewSubmissionService(
	challengeRepo repository.ChallengeRepository,
	submissionRepo repository.SubmissionRepository,
	runner RunnerService,
) SubmissionService {
	return &submissionService{
		challengeRepo:  challengeRepo,
		submissionRepo: submissionRepo,
		runner:         runner,
	}
}

func (s *submissionService) SubmitCode(ctx context.Context, userID, challengeID uint, startedAt time.Time, req dto.SubmitCodeRequest) (*dto.SubmissionResponse, error) {
	challenge, err := s.challengeRepo.FindByIDWithTestCases(challengeID)
	if err != nil {
		return nil, fmt.Errorf("challenge %d not found: %w", challengeID, err)
	}
	if len(challenge.TestCases) == 0 {
		return nil, fmt.Errorf("challenge %d has no test cases, submission is not possible", challengeID)
	}

	results, err := s.runner.Run(ctx, req.Code, req.Language, challenge.TestCases)
	if err != nil {
		return nil, fmt.Errorf("code runner failed: %w", err)
	}
	correctness, maxRuntime := GradeResults(results)

	submission := model.Submission{
		UserID:           userID,
		ChallengeID:      challengeID,
		Code:             req.Code,
		Language:         req.Language,
		TimeTaken:        time.Since(startedAt).Seconds(),
		ExecutionTime:    maxRuntime,
		CorrectnessScore: correctness,
	}
	if err := s.submissionRepo.Create(&submission); err != nil {
		return nil, fmt.Errorf("failed to persist submission: %w", err)
	}
	log.Info().Uint("userID", userID).Uint("challengeID", challengeID).
		Float64("correctness", correctness).Float64("executionTime", maxRuntime).
		Msg("Submission recorded")

	var resp dto.SubmissionResponse
	if err := copier.Copy(&resp, &submission); err != nil {
		return nil, fmt.Errorf("failed to map submission: %w", err)
	}
	return &resp, nil
}

func (s *submissionService) GetUserSubmissions(userID uint) ([]dto.SubmissionResponse, error) {
	submissions, err := s.submissionRepo.FindByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load submissions: %w", err)
	}
	responses := make([]dto.SubmissionResponse, 0, len(submissions))
	for _, sub := range submissions {
		var resp dto.SubmissionResponse
		if err := copier.Copy(&resp, &sub); err != nil {
			return nil, fmt.Errorf("failed to map submission %d: %w", sub.ID, err)
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

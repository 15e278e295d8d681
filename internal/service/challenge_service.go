package service

import (
	"encoding/json"
	"fmt"

	"github.com/algo-odyssey/backend/internal/dto"
	"github.com/algo-odyssey/backend/internal/model"
	"github.com/algo-odyssey/backend/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type ChallengeService interface {
	CreateChallenge(req dto.CreateChallengeRequest) (*dto.ChallengeResponse, error)
	GetAllChallenges() ([]dto.ChallengeSummaryResponse, error)
	GetChallengeDetails(id uint) (*dto.ChallengeResponse, error)
}

type challengeService struct {
	challengeRepo repository.ChallengeRepository
	userRepo      repository.UserRepository
}

func NewChallengeService(challengeRepo repository.ChallengeRepository, userRepo repository.UserRepository) ChallengeService {
	return &challengeService{challengeRepo: challengeRepo, userRepo: userRepo}
}

func (s *challengeService) CreateChallenge(req dto.CreateChallengeRequest) (*dto.ChallengeResponse, error) {
	challenge := model.Challenge{
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		TimeLimit:   req.TimeLimit,
		StartTime:   req.StartTime,
	}
	if challenge.Difficulty == "" {
		challenge.Difficulty = "Easy"
	}
	for i, tc := range req.TestCases {
		challenge.TestCases = append(challenge.TestCases, model.TestCase{
			Input:          tc.Input,
			ExpectedOutput: tc.ExpectedOutput,
			OrderIndex:     i,
		})
	}
	if len(req.StarterCode) > 0 {
		raw, err := json.Marshal(req.StarterCode)
		if err != nil {
			return nil, fmt.Errorf("failed to encode starter code: %w", err)
		}
		challenge.StarterCode = datatypes.JSON(raw)
	}
	for _, userID := range req.ParticipantIDs {
		user, err := s.userRepo.FindByID(userID)
		if err != nil {
			return nil, fmt.Errorf("participant %d not found: %w", userID, err)
		}
		challenge.Participants = append(challenge.Participants, *user)
	}

	if err := s.challengeRepo.Create(&challenge); err != nil {
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}
	log.Info().Uint("challengeID", challenge.ID).Str("title", challenge.Title).
		Int("testCases", len(challenge.TestCases)).Int("participants", len(challenge.Participants)).
		Msg("Challenge created")

	return s.toResponse(&challenge)
}

func (s *challengeService) GetAllChallenges() ([]dto.ChallengeSummaryResponse, error) {
	challenges, err := s.challengeRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load challenges: %w", err)
	}
	summaries := make([]dto.ChallengeSummaryResponse, 0, len(challenges))
	for _, ch := range challenges {
		var summary dto.ChallengeSummaryResponse
		if err := copier.Copy(&summary, &ch); err != nil {
			return nil, fmt.Errorf("failed to map challenge %d: %w", ch.ID, err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *challengeService) GetChallengeDetails(id uint) (*dto.ChallengeResponse, error) {
	challenge, err := s.challengeRepo.FindByIDWithTestCases(id)
	if err != nil {
		return nil, fmt.Errorf("challenge %d not found: %w", id, err)
	}
	return s.toResponse(challenge)
}

func (s *challengeService) toResponse(challenge *model.Challenge) (*dto.ChallengeResponse, error) {
	var resp dto.ChallengeResponse
	if err := copier.Copy(&resp, challenge); err != nil {
		return nil, fmt.Errorf("failed to map challenge: %w", err)
	}
	if len(challenge.StarterCode) > 0 {
		starter := make(map[string]string)
		if err := json.Unmarshal(challenge.StarterCode, &starter); err == nil {
			resp.StarterCode = starter
		}
	}
	return &resp, nil
}

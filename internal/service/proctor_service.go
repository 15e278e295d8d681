package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/algo-odyssey/backend/config"
	"github.com/algo-odyssey/backend/internal/model"
	"github.com/algo-odyssey/backend/internal/repository"
	"github.com/rs/zerolog/log"
)

// ErrNoReferenceDescriptor means the user has no stored face descriptor, so
// identity verification cannot run for them at all.
var ErrNoReferenceDescriptor = errors.New("user has no reference face descriptor")

// ProctorService classifies one identity verification cycle: a live frame is
// turned into a descriptor by the external comparator and measured against
// the user's stored reference.
type ProctorService interface {
	Check(ctx context.Context, userID uint, frame []byte) (model.ProctorStatus, float64, error)
}

type proctorService struct {
	userRepo   repository.UserRepository
	comparator FaceComparator
	threshold  float64
}

func NewProctorService(userRepo repository.UserRepository, comparator FaceComparator, cfg *config.Config) ProctorService {
	return &proctorService{
		userRepo:   userRepo,
		comparator: comparator,
		threshold:  cfg.Proctor.MatchThreshold,
	}
}

// Check returns the classified status and, for ok/mismatch, the measured
// distance. Comparator failures classify as ProctorError rather than
// propagating: the caller decides whether that feeds a violation.
// ErrComparatorNotReady and a missing reference descriptor are hard errors.
func (s *proctorService) Check(ctx context.Context, userID uint, frame []byte) (model.ProctorStatus, float64, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return model.ProctorError, 0, fmt.Errorf("user %d not found: %w", userID, err)
	}

	reference, err := DecodeDescriptor(user.FaceDescriptor)
	if err != nil {
		return model.ProctorError, 0, fmt.Errorf("user %d: %w", userID, ErrNoReferenceDescriptor)
	}

	live, err := s.comparator.Descriptor(ctx, frame)
	if errors.Is(err, ErrComparatorNotReady) {
		return model.ProctorError, 0, err
	}
	if errors.Is(err, ErrNoFace) {
		return model.ProctorNoFace, 0, nil
	}
	if err != nil {
		log.Warn().Err(err).Uint("userID", userID).Msg("Proctor check: comparator failure")
		return model.ProctorError, 0, nil
	}

	distance, err := EuclideanDistance(reference, live)
	if err != nil {
		log.Warn().Err(err).Uint("userID", userID).Msg("Proctor check: descriptor length mismatch")
		return model.ProctorError, 0, nil
	}

	if distance >= s.threshold {
		return model.ProctorMismatch, distance, nil
	}
	return model.ProctorOK, distance, nil
}

// DecodeDescriptor unpacks the stored JSON descriptor column.
func DecodeDescriptor(raw []byte) ([]float64, error) {
	if len(raw) == 0 {
		return nil, errors.New("empty descriptor")
	}
	var descriptor []float64
	if err := json.Unmarshal(raw, &descriptor); err != nil {
		return nil, fmt.Errorf("failed to decode descriptor: %w", err)
	}
	if len(descriptor) == 0 {
		return nil, errors.New("empty descriptor")
	}
	return descriptor, nil
}

// EuclideanDistance is the comparator metric used by the face collaborator;
// both vectors must have the same length.
func EuclideanDistance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("descriptor length mismatch: %d vs %d", len(a), len(b))
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/algo-odyssey/backend/internal/dto"
	"github.com/algo-odyssey/backend/internal/model"
	"github.com/algo-odyssey/backend/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrEmailTaken is returned when registering an already-known email.
var ErrEmailTaken = errors.New("email already registered")

// StudentService handles student registration (including reference face
// descriptor capture) and the student listing surface.
type StudentService interface {
	RegisterStudent(ctx context.Context, req dto.RegisterStudentRequest) (*dto.StudentResponse, error)
	ListStudents() ([]dto.StudentResponse, error)
}

type studentService struct {
	userRepo   repository.UserRepository
	comparator FaceComparator
}

func NewStudentService(userRepo repository.UserRepository, comparator FaceComparator) StudentService {
	return &studentService{userRepo: userRepo, comparator: comparator}
}

func (s *studentService) RegisterStudent(ctx context.Context, req dto.RegisterStudentRequest) (*dto.StudentResponse, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	image, err := decodeImage(req.Image)
	if err != nil {
		return nil, fmt.Errorf("invalid image payload: %w", err)
	}

	// Registration requires the comparator: without a usable reference
	// descriptor the student could never pass a proctored session.
	descriptor, err := s.comparator.Descriptor(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("failed to extract face descriptor: %w", err)
	}

	raw, err := json.Marshal(descriptor)
	if err != nil {
		return nil, fmt.Errorf("failed to encode descriptor: %w", err)
	}

	user := model.User{
		SeatNumber:     req.SeatNumber,
		FullName:       req.FullName,
		Email:          req.Email,
		Password:       req.Password, // hashing is the auth collaborator's concern
		Role:           "student",
		FaceDescriptor: datatypes.JSON(raw),
	}
	if err := s.userRepo.Create(&user); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}
	log.Info().Uint("userID", user.ID).Str("email", user.Email).
		Int("descriptorLen", len(descriptor)).Msg("Student registered with face descriptor")

	var resp dto.StudentResponse
	if err := copier.Copy(&resp, &user); err != nil {
		return nil, fmt.Errorf("failed to map student: %w", err)
	}
	return &resp, nil
}

func (s *studentService) ListStudents() ([]dto.StudentResponse, error) {
	users, err := s.userRepo.FindStudents()
	if err != nil {
		return nil, fmt.Errorf("failed to load students: %w", err)
	}
	students := make([]dto.StudentResponse, 0, len(users))
	for _, u := range users {
		var resp dto.StudentResponse
		if err := copier.Copy(&resp, &u); err != nil {
			return nil, fmt.Errorf("failed to map student %d: %w", u.ID, err)
		}
		students = append(students, resp)
	}
	return students, nil
}

// decodeImage accepts both raw base64 and data-URL payloads.
func decodeImage(payload string) ([]byte, error) {
	if idx := strings.Index(payload, ","); idx != -1 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}
	image, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, err
	}
	if len(image) == 0 {
		return nil, errors.New("empty image")
	}
	return image, nil
}

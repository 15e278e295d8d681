package user

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/algo-odyssey/backend/internal/dto"
	"github.com/algo-odyssey/backend/internal/model"
	"github.com/algo-odyssey/backend/internal/repository"
	"github.com/algo-odyssey/backend/internal/service"
	"github.com/algo-odyssey/backend/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type SessionController struct {
	manager           *session.Manager
	userRepo          repository.UserRepository
	submissionService service.SubmissionService
}

func NewSessionController(manager *session.Manager, userRepo repository.UserRepository, ss service.SubmissionService) *SessionController {
	return &SessionController{manager: manager, userRepo: userRepo, submissionService: ss}
}

// StartSession godoc
// @Summary Start a proctored session for a challenge
// @Description Rejects identities with an active block before anything else.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session body dto.StartSessionRequest true "User and challenge"
// @Success 201 {object} dto.SessionStateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Identity is blocked"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /sessions [post]
func (c *SessionController) StartSession(ctx *gin.Context) {
	var req dto.StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	user, err := c.userRepo.FindByID(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "User not found"})
		return
	}

	sess, err := c.manager.Start(ctx.Request.Context(), user, req.ChallengeID)
	if errors.Is(err, session.ErrBlocked) {
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "Your challenge access has been disabled due to repeated violations."})
		return
	}
	if err != nil {
		log.Error().Err(err).Uint("userID", req.UserID).Msg("StartSession: failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to start session", Details: []string{err.Error()}})
		return
	}

	state, err := c.manager.Snapshot(sess.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to read session state"})
		return
	}
	ctx.JSON(http.StatusCreated, state)
}

// RaiseEvent godoc
// @Summary Report a client-observed behavioral violation
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param event body dto.ViolationEventRequest true "Violation detail"
// @Success 200 {object} dto.SessionStateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid session ID or body"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 410 {object} dto.ErrorResponse "Session has ended"
// @Router /sessions/{id}/events [post]
func (c *SessionController) RaiseEvent(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid session ID format"})
		return
	}
	var req dto.ViolationEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	err = c.manager.Raise(id, session.Event{Kind: model.ViolationBehavioral, Detail: req.Detail})
	if errors.Is(err, session.ErrSessionNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Session not found"})
		return
	}
	if errors.Is(err, session.ErrSessionEnded) {
		ctx.JSON(http.StatusGone, dto.ErrorResponse{Message: "Session has ended"})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("sessionID", id.String()).Msg("RaiseEvent: failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to record violation"})
		return
	}

	state, err := c.manager.Snapshot(id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to read session state"})
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// UploadFrame godoc
// @Summary Upload a webcam frame for identity verification
// @Description Frames are checked on the verifier's own cadence; an empty or undecodable frame is skipped, not punished.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param frame body dto.FrameRequest true "Base64-encoded frame"
// @Success 202 "Frame accepted"
// @Failure 400 {object} dto.ErrorResponse "Invalid session ID or frame"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/frames [post]
func (c *SessionController) UploadFrame(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid session ID format"})
		return
	}
	var req dto.FrameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	payload := req.Image
	if idx := strings.Index(payload, ","); idx != -1 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}
	frame, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid frame encoding"})
		return
	}

	if err := c.manager.StoreFrame(id, frame); err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Session not found"})
		return
	}
	ctx.Status(http.StatusAccepted)
}

// GetSessionState godoc
// @Summary Poll session state (violation count, warnings, block status)
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionStateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid session ID"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [get]
func (c *SessionController) GetSessionState(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid session ID format"})
		return
	}
	state, err := c.manager.Snapshot(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Session not found"})
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// SubmitCode godoc
// @Summary Submit code for the session's challenge and end the session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param submission body dto.SubmitCodeRequest true "Code and language"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid session ID or body"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Runner or persistence failure"
// @Router /sessions/{id}/submit [post]
func (c *SessionController) SubmitCode(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid session ID format"})
		return
	}
	var req dto.SubmitCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	sess, err := c.manager.Get(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Session not found"})
		return
	}

	submission, err := c.submissionService.SubmitCode(ctx.Request.Context(), sess.UserID, sess.ChallengeID, sess.StartedAt, req)
	if err != nil {
		log.Error().Err(err).Str("sessionID", id.String()).Msg("SubmitCode: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit code", Details: []string{err.Error()}})
		return
	}

	if err := c.manager.End(id, model.SessionSubmitted); err != nil && !errors.Is(err, session.ErrSessionEnded) {
		log.Warn().Err(err).Str("sessionID", id.String()).Msg("SubmitCode: failed to end session")
	}
	ctx.JSON(http.StatusOK, submission)
}

// AbandonSession godoc
// @Summary End a session without submitting (logout / leave)
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 204 "Session ended"
// @Failure 400 {object} dto.ErrorResponse "Invalid session ID"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [delete]
func (c *SessionController) AbandonSession(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid session ID format"})
		return
	}
	if err := c.manager.End(id, model.SessionAbandoned); err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Session not found"})
		return
	}
	ctx.Status(http.StatusNoContent)
}

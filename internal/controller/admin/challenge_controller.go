package admin

import (
	"net/http"

	"github.com/algo-odyssey/backend/internal/dto"
	"github.com/algo-odyssey/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ChallengeController struct {
	challengeService service.ChallengeService
}

func NewChallengeController(cs service.ChallengeService) *ChallengeController {
	return &ChallengeController{challengeService: cs}
}

// CreateChallenge godoc
// @Summary (Admin) Create a challenge with test cases and participants
// @Tags Admin - Challenges
// @Accept json
// @Produce json
// @Param challenge body dto.CreateChallengeRequest true "Challenge definition"
// @Success 201 {object} dto.ChallengeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/challenges [post]
func (c *ChallengeController) CreateChallenge(ctx *gin.Context) {
	var req dto.CreateChallengeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	challenge, err := c.challengeService.CreateChallenge(req)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateChallenge: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create challenge", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, challenge)
}

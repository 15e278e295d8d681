package user

import (
	"net/http"
	"strconv"

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

// GetAllChallenges godoc
// @Summary List all challenges
// @Tags Challenges
// @Produce json
// @Success 200 {array} dto.ChallengeSummaryResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /challenges [get]
func (c *ChallengeController) GetAllChallenges(ctx *gin.Context) {
	challenges, err := c.challengeService.GetAllChallenges()
	if err != nil {
		log.Error().Err(err).Msg("GetAllChallenges: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve challenges", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, challenges)
}

// GetChallengeDetails godoc
// @Summary Get one challenge with its test cases and starter code
// @Tags Challenges
// @Produce json
// @Param id path int true "Challenge ID"
// @Success 200 {object} dto.ChallengeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid challenge ID"
// @Failure 404 {object} dto.ErrorResponse "Challenge not found"
// @Router /challenges/{id} [get]
func (c *ChallengeController) GetChallengeDetails(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid challenge ID format"})
		return
	}
	challenge, err := c.challengeService.GetChallengeDetails(uint(id))
	if err != nil {
		log.Warn().Err(err).Uint64("challengeID", id).Msg("GetChallengeDetails: not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, challenge)
}

package user

import (
	"net/http"
	"strconv"

	"github.com/algo-odyssey/backend/internal/dto"
	"github.com/algo-odyssey/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type LeaderboardController struct {
	leaderboardService service.LeaderboardService
}

func NewLeaderboardController(ls service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{leaderboardService: ls}
}

// GetLatestLeaderboard godoc
// @Summary Get the global leaderboard
// @Description Ranks every user across all challenges by weighted correctness, efficiency and plagiarism penalty.
// @Tags Leaderboard
// @Produce json
// @Success 200 {object} dto.LeaderboardResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /leaderboard/latest [get]
func (c *LeaderboardController) GetLatestLeaderboard(ctx *gin.Context) {
	resp, err := c.leaderboardService.Global()
	if err != nil {
		log.Error().Err(err).Msg("GetLatestLeaderboard: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load leaderboard", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetChallengeLeaderboard godoc
// @Summary Get the leaderboard for one challenge
// @Description Returns the frozen ranking once the challenge window closed, or a live ranking before that.
// @Tags Leaderboard
// @Produce json
// @Param challenge_id path int true "Challenge ID"
// @Success 200 {object} dto.LeaderboardResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid challenge ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /leaderboard/{challenge_id} [get]
func (c *LeaderboardController) GetChallengeLeaderboard(ctx *gin.Context) {
	challengeID, err := strconv.ParseUint(ctx.Param("challenge_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid challenge ID format"})
		return
	}
	resp, err := c.leaderboardService.ForChallenge(uint(challengeID))
	if err != nil {
		log.Error().Err(err).Uint64("challengeID", challengeID).Msg("GetChallengeLeaderboard: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch leaderboard", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

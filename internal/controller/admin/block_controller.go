package admin

import (
	"net/http"

	"github.com/algo-odyssey/backend/internal/dto"
	"github.com/algo-odyssey/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type BlockController struct {
	blockService service.BlockService
}

func NewBlockController(bs service.BlockService) *BlockController {
	return &BlockController{blockService: bs}
}

// ListBlocks godoc
// @Summary (Admin) List all actively blocked identities
// @Tags Admin - Blocks
// @Produce json
// @Success 200 {array} dto.BlockedUserResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/blocks [get]
func (c *BlockController) ListBlocks(ctx *gin.Context) {
	records, err := c.blockService.ListActive()
	if err != nil {
		log.Error().Err(err).Msg("ListBlocks: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list blocked users", Details: []string{err.Error()}})
		return
	}
	responses := make([]dto.BlockedUserResponse, 0, len(records))
	for _, rec := range records {
		var resp dto.BlockedUserResponse
		if err := copier.Copy(&resp, &rec); err != nil {
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to map blocked users"})
			return
		}
		responses = append(responses, resp)
	}
	ctx.JSON(http.StatusOK, responses)
}

// BlockUser godoc
// @Summary (Admin) Block an identity
// @Description Idempotent: blocking an already-blocked identity updates the reason, never duplicates.
// @Tags Admin - Blocks
// @Accept json
// @Produce json
// @Param block body dto.BlockRequest true "Identity and reason"
// @Success 200 "Identity blocked"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/blocks [post]
func (c *BlockController) BlockUser(ctx *gin.Context) {
	var req dto.BlockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.blockService.Block(req.Email, req.Reason); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("BlockUser: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to block user", Details: []string{err.Error()}})
		return
	}
	ctx.Status(http.StatusOK)
}

// UnblockUser godoc
// @Summary (Admin) Clear an identity's active block
// @Description No-op when the identity is not currently blocked.
// @Tags Admin - Blocks
// @Produce json
// @Param email path string true "Blocked email"
// @Success 204 "Block cleared"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/blocks/{email} [delete]
func (c *BlockController) UnblockUser(ctx *gin.Context) {
	email := ctx.Param("email")
	if err := c.blockService.Unblock(email); err != nil {
		log.Error().Err(err).Str("email", email).Msg("UnblockUser: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to unblock user", Details: []string{err.Error()}})
		return
	}
	ctx.Status(http.StatusNoContent)
}

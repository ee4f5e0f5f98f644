package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"scratchbook/internal/api/handler/v1/response"
	"scratchbook/internal/stats"
)

type SettingsService interface {
	Summary(ctx context.Context) (stats.Summary, error)
	ResetAll(ctx context.Context) error
}

type SettingsHandler struct {
	svc SettingsService
}

func NewSettingsHandler(svc SettingsService) *SettingsHandler {
	return &SettingsHandler{
		svc: svc,
	}
}

// HandleGetSummary godoc
// @Summary      Get collection counters
// @Description  Returns the number of games, tickets, and winning tickets
// @Tags         settings
// @Produce      json
// @Success      200  {object}  stats.Summary
// @Failure      500  {object}  response.Err
// @Router       /summary [get]
func (h *SettingsHandler) HandleGetSummary(ctx *gin.Context) {
	summary, err := h.svc.Summary(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetSummary -> h.svc.Summary -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// HandleResetAll godoc
// @Summary      Reset everything
// @Description  Deletes all games and tickets atomically
// @Tags         settings
// @Produce      json
// @Success      204
// @Failure      500  {object}  response.Err
// @Router       /reset [post]
func (h *SettingsHandler) HandleResetAll(ctx *gin.Context) {
	if err := h.svc.ResetAll(ctx.Request.Context()); err != nil {
		err = fmt.Errorf("HandleResetAll -> h.svc.ResetAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

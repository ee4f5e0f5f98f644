package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"scratchbook/internal/api/handler/v1/request"
	"scratchbook/internal/api/handler/v1/response"
	"scratchbook/internal/domain"
	"scratchbook/internal/service"
)

type TicketService interface {
	AddTickets(ctx context.Context, gameID uint, gains []*decimal.Decimal) ([]domain.Ticket, error)
	UpdateTicketGain(ctx context.Context, ticketID uint, gain *decimal.Decimal) (domain.Ticket, error)
	DeleteTicket(ctx context.Context, ticketID uint) error
}

type TicketHandler struct {
	svc TicketService
}

func NewTicketHandler(svc TicketService) *TicketHandler {
	return &TicketHandler{
		svc: svc,
	}
}

// HandleAddTickets godoc
// @Summary      Add tickets to a game
// @Description  Registers a batch of purchased tickets. Null gains are pending tickets; the batch is inserted atomically.
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        gameID  path      int                        true  "Game ID"
// @Param        input   body      request.AddTicketsRequest  true  "Gains, null for unscratched"
// @Success      201     {array}   domain.Ticket
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /games/{gameID}/tickets [post]
func (h *TicketHandler) HandleAddTickets(ctx *gin.Context) {
	gameID, err := parseIDParam(ctx, "gameID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var input request.AddTicketsRequest
	if err = ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	tickets, err := h.svc.AddTickets(ctx.Request.Context(), gameID, input.Gains)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGameNotFound):
			response.RenderErr(ctx, response.ErrNotFound("game", "ID", gameID))
		case errors.Is(err, service.ErrNegativeGain):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleAddTickets -> h.svc.AddTickets -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, tickets)
}

// HandleUpdateTicket godoc
// @Summary      Update a ticket's gain
// @Description  Sets the scratched gain, or clears it back to pending when gain is null
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        ticketID  path      int                          true  "Ticket ID"
// @Param        input     body      request.UpdateTicketRequest  true  "New gain, null to mark pending"
// @Success      200       {object}  domain.Ticket
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /tickets/{ticketID} [put]
func (h *TicketHandler) HandleUpdateTicket(ctx *gin.Context) {
	ticketID, err := parseIDParam(ctx, "ticketID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var input request.UpdateTicketRequest
	if err = ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ticket, err := h.svc.UpdateTicketGain(ctx.Request.Context(), ticketID, input.Gain)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTicketNotFound):
			response.RenderErr(ctx, response.ErrNotFound("ticket", "ID", ticketID))
		case errors.Is(err, service.ErrNegativeGain):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleUpdateTicket -> h.svc.UpdateTicketGain -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, ticket)
}

// HandleDeleteTicket godoc
// @Summary      Delete a ticket
// @Description  Removes one ticket; deleting an unknown ID succeeds silently
// @Tags         tickets
// @Produce      json
// @Param        ticketID  path  int  true  "Ticket ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/{ticketID} [delete]
func (h *TicketHandler) HandleDeleteTicket(ctx *gin.Context) {
	ticketID, err := parseIDParam(ctx, "ticketID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteTicket(ctx.Request.Context(), ticketID); err != nil {
		err = fmt.Errorf("HandleDeleteTicket -> h.svc.DeleteTicket -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

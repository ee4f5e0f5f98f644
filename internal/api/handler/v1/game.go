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

type GameService interface {
	Overview(ctx context.Context) (service.Overview, error)
	GameDetail(ctx context.Context, gameID uint) (service.GameDetail, error)
	CreateGame(ctx context.Context, name string, ticketPrice decimal.Decimal) (domain.Game, error)
	DeleteGame(ctx context.Context, gameID uint) error
}

type GameHandler struct {
	svc GameService
}

func NewGameHandler(svc GameService) *GameHandler {
	return &GameHandler{
		svc: svc,
	}
}

// HandleGetOverview godoc
// @Summary      Get the home overview
// @Description  Returns global gains/spend, best and worst game, and one stat card per game sorted by name
// @Tags         games
// @Produce      json
// @Success      200  {object}  service.Overview
// @Failure      500  {object}  response.Err
// @Router       /overview [get]
func (h *GameHandler) HandleGetOverview(ctx *gin.Context) {
	overview, err := h.svc.Overview(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetOverview -> h.svc.Overview -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, overview)
}

// HandleCreateGame godoc
// @Summary      Create a game
// @Description  Registers a new scratch game with a fixed ticket price. Names are unique.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateGameRequest  true  "Game details"
// @Success      201    {object}  domain.Game
// @Failure      400    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /games [post]
func (h *GameHandler) HandleCreateGame(ctx *gin.Context) {
	var input request.CreateGameRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	game, err := h.svc.CreateGame(ctx.Request.Context(), input.Name, input.TicketPrice)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGameNameExists):
			response.RenderErr(ctx, response.ErrConflict(err))
		case errors.Is(err, service.ErrEmptyGameName), errors.Is(err, service.ErrInvalidTicketPrice):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleCreateGame -> h.svc.CreateGame -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, game)
}

// HandleGetGameDetail godoc
// @Summary      Get a game's detail
// @Description  Returns the game, its aggregates including the win ratio, and tickets with pending ones first
// @Tags         games
// @Produce      json
// @Param        gameID  path      int  true  "Game ID"
// @Success      200     {object}  service.GameDetail
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /games/{gameID} [get]
func (h *GameHandler) HandleGetGameDetail(ctx *gin.Context) {
	gameID, err := parseIDParam(ctx, "gameID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	detail, err := h.svc.GameDetail(ctx.Request.Context(), gameID)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("game", "ID", gameID))
			return
		}

		err = fmt.Errorf("HandleGetGameDetail -> h.svc.GameDetail -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

// HandleDeleteGame godoc
// @Summary      Delete a game
// @Description  Removes the game and every one of its tickets atomically
// @Tags         games
// @Produce      json
// @Param        gameID  path  int  true  "Game ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /games/{gameID} [delete]
func (h *GameHandler) HandleDeleteGame(ctx *gin.Context) {
	gameID, err := parseIDParam(ctx, "gameID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteGame(ctx.Request.Context(), gameID); err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("game", "ID", gameID))
			return
		}

		err = fmt.Errorf("HandleDeleteGame -> h.svc.DeleteGame -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

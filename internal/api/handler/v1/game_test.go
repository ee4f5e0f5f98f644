package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scratchbook/internal/domain"
	"scratchbook/internal/service"
)

type fakeGameService struct {
	createGameFn func(ctx context.Context, name string, ticketPrice decimal.Decimal) (domain.Game, error)
	gameDetailFn func(ctx context.Context, gameID uint) (service.GameDetail, error)
}

func (f *fakeGameService) Overview(ctx context.Context) (service.Overview, error) {
	return service.Overview{}, nil
}

func (f *fakeGameService) GameDetail(ctx context.Context, gameID uint) (service.GameDetail, error) {
	return f.gameDetailFn(ctx, gameID)
}

func (f *fakeGameService) CreateGame(ctx context.Context, name string, ticketPrice decimal.Decimal) (domain.Game, error) {
	return f.createGameFn(ctx, name, ticketPrice)
}

func (f *fakeGameService) DeleteGame(ctx context.Context, gameID uint) error {
	return nil
}

func setupGameRouter(svc GameService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewGameHandler(svc)
	router.POST("/games", h.HandleCreateGame)
	router.GET("/games/:gameID", h.HandleGetGameDetail)
	return router
}

func TestGameHandler_HandleCreateGame(t *testing.T) {
	t.Run("valid payload returns 201", func(t *testing.T) {
		svc := &fakeGameService{
			createGameFn: func(ctx context.Context, name string, ticketPrice decimal.Decimal) (domain.Game, error) {
				return domain.Game{ID: 1, Name: name, TicketPrice: ticketPrice}, nil
			},
		}
		router := setupGameRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/games", strings.NewReader(`{"name":"Morpion","ticket_price":3}`))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusCreated, resp.Code)
		assert.Contains(t, resp.Body.String(), `"Morpion"`)
	})

	t.Run("non-positive price returns 400", func(t *testing.T) {
		router := setupGameRouter(&fakeGameService{})

		req := httptest.NewRequest(http.MethodPost, "/games", strings.NewReader(`{"name":"Morpion","ticket_price":0}`))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("duplicate name returns 409", func(t *testing.T) {
		svc := &fakeGameService{
			createGameFn: func(ctx context.Context, name string, ticketPrice decimal.Decimal) (domain.Game, error) {
				return domain.Game{}, service.ErrGameNameExists
			},
		}
		router := setupGameRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/games", strings.NewReader(`{"name":"Morpion","ticket_price":3}`))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusConflict, resp.Code)
	})
}

func TestGameHandler_HandleGetGameDetail(t *testing.T) {
	t.Run("unknown game returns 404", func(t *testing.T) {
		svc := &fakeGameService{
			gameDetailFn: func(ctx context.Context, gameID uint) (service.GameDetail, error) {
				return service.GameDetail{}, service.ErrGameNotFound
			},
		}
		router := setupGameRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/games/42", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		router := setupGameRouter(&fakeGameService{})

		req := httptest.NewRequest(http.MethodGet, "/games/abc", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

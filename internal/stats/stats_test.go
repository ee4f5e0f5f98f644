package stats

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scratchbook/internal/domain"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func decPtr(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d := dec(t, s)
	return &d
}

func newGame(t *testing.T, id uint, name, price string) domain.Game {
	t.Helper()
	return domain.Game{
		ID:          id,
		Name:        name,
		TicketPrice: dec(t, price),
		CreatedAt:   time.Now(),
	}
}

func TestComputeGameStats(t *testing.T) {
	t.Run("morpion scenario", func(t *testing.T) {
		// Game at 3, tickets with gains [0, 5, pending].
		game := newGame(t, 1, "Morpion", "3")
		tickets := []domain.Ticket{
			{ID: 1, GameID: 1, Gain: decPtr(t, "0")},
			{ID: 2, GameID: 1, Gain: decPtr(t, "5")},
			{ID: 3, GameID: 1, Gain: nil},
		}

		s := ComputeGameStats(game, tickets)

		assert.Equal(t, 3, s.TicketCount)
		assert.Equal(t, 2, s.ResolvedCount)
		assert.Equal(t, 1, s.PendingCount)
		assert.True(t, s.TotalCost.Equal(dec(t, "9")), "totalCost = %v", s.TotalCost)
		assert.True(t, s.TotalGains.Equal(dec(t, "5")), "totalGains = %v", s.TotalGains)
		assert.True(t, s.AvgGain.Equal(dec(t, "2.5")), "avgGain = %v", s.AvgGain)
		assert.True(t, s.Profit.Equal(dec(t, "-4")), "profit = %v", s.Profit)
	})

	t.Run("average divides by resolved count, not ticket count", func(t *testing.T) {
		game := newGame(t, 1, "Banco", "2")
		tickets := []domain.Ticket{
			{ID: 1, GameID: 1, Gain: decPtr(t, "2")},
			{ID: 2, GameID: 1, Gain: decPtr(t, "8")},
			{ID: 3, GameID: 1, Gain: nil},
		}

		s := ComputeGameStats(game, tickets)

		assert.True(t, s.AvgGain.Equal(dec(t, "5")), "avgGain = %v", s.AvgGain)
	})

	t.Run("cost counts pending tickets", func(t *testing.T) {
		game := newGame(t, 1, "Cash", "5")
		tickets := []domain.Ticket{
			{ID: 1, GameID: 1, Gain: nil},
			{ID: 2, GameID: 1, Gain: nil},
			{ID: 3, GameID: 1, Gain: decPtr(t, "10")},
			{ID: 4, GameID: 1, Gain: nil},
		}

		s := ComputeGameStats(game, tickets)

		assert.Equal(t, 4, s.TicketCount)
		assert.Equal(t, 3, s.PendingCount)
		assert.True(t, s.TotalCost.Equal(dec(t, "20")), "totalCost = %v", s.TotalCost)
	})

	t.Run("win ratio as percentage of cost", func(t *testing.T) {
		game := newGame(t, 1, "Astro", "2")
		tickets := []domain.Ticket{
			{ID: 1, GameID: 1, Gain: decPtr(t, "1")},
			{ID: 2, GameID: 1, Gain: decPtr(t, "2")},
		}

		s := ComputeGameStats(game, tickets)

		assert.True(t, s.Ratio.Equal(dec(t, "75")), "ratio = %v", s.Ratio)
	})

	t.Run("no tickets yields zeroes", func(t *testing.T) {
		game := newGame(t, 1, "Solitaire", "3")

		s := ComputeGameStats(game, nil)

		assert.Equal(t, 0, s.TicketCount)
		assert.True(t, s.AvgGain.IsZero())
		assert.True(t, s.Ratio.IsZero())
		assert.True(t, s.TotalCost.IsZero())
		assert.True(t, s.Profit.IsZero())
	})

	t.Run("only pending tickets keeps average at zero", func(t *testing.T) {
		game := newGame(t, 1, "Jackpot", "10")
		tickets := []domain.Ticket{
			{ID: 1, GameID: 1, Gain: nil},
			{ID: 2, GameID: 1, Gain: nil},
		}

		s := ComputeGameStats(game, tickets)

		assert.True(t, s.AvgGain.IsZero())
		assert.True(t, s.TotalCost.Equal(dec(t, "20")))
		assert.True(t, s.Profit.Equal(dec(t, "-20")))
	})
}

func TestComputeGlobalStats(t *testing.T) {
	t.Run("best and worst by profit, zero-ticket games excluded", func(t *testing.T) {
		gameA := newGame(t, 1, "A", "2")  // profit +10
		gameB := newGame(t, 2, "B", "2")  // profit -4
		gameC := newGame(t, 3, "C", "50") // no tickets
		tickets := []domain.Ticket{
			{ID: 1, GameID: 1, Gain: decPtr(t, "14")},
			{ID: 2, GameID: 1, Gain: decPtr(t, "0")},
			{ID: 3, GameID: 2, Gain: decPtr(t, "0")},
			{ID: 4, GameID: 2, Gain: decPtr(t, "0")},
		}

		g := ComputeGlobalStats([]domain.Game{gameA, gameB, gameC}, tickets)

		require.NotNil(t, g.BestGame)
		require.NotNil(t, g.WorstGame)
		assert.Equal(t, uint(1), g.BestGame.Game.ID)
		assert.True(t, g.BestGame.Profit.Equal(dec(t, "10")))
		assert.Equal(t, uint(2), g.WorstGame.Game.ID)
		assert.True(t, g.WorstGame.Profit.Equal(dec(t, "-4")))
	})

	t.Run("grand totals sum across games", func(t *testing.T) {
		gameA := newGame(t, 1, "A", "2")
		gameB := newGame(t, 2, "B", "3")
		tickets := []domain.Ticket{
			{ID: 1, GameID: 1, Gain: decPtr(t, "5")},
			{ID: 2, GameID: 1, Gain: nil},
			{ID: 3, GameID: 2, Gain: decPtr(t, "1")},
		}

		g := ComputeGlobalStats([]domain.Game{gameA, gameB}, tickets)

		assert.True(t, g.GrandTotalGains.Equal(dec(t, "6")), "gains = %v", g.GrandTotalGains)
		assert.True(t, g.GrandTotalSpent.Equal(dec(t, "7")), "spent = %v", g.GrandTotalSpent)
	})

	t.Run("no game with tickets leaves ranking empty", func(t *testing.T) {
		games := []domain.Game{newGame(t, 1, "A", "2"), newGame(t, 2, "B", "3")}

		g := ComputeGlobalStats(games, nil)

		assert.Nil(t, g.BestGame)
		assert.Nil(t, g.WorstGame)
		assert.True(t, g.GrandTotalGains.IsZero())
		assert.True(t, g.GrandTotalSpent.IsZero())
	})

	t.Run("profit tie keeps first game in input order", func(t *testing.T) {
		gameA := newGame(t, 1, "A", "2")
		gameB := newGame(t, 2, "B", "2")
		tickets := []domain.Ticket{
			{ID: 1, GameID: 1, Gain: decPtr(t, "2")},
			{ID: 2, GameID: 2, Gain: decPtr(t, "2")},
		}

		g := ComputeGlobalStats([]domain.Game{gameA, gameB}, tickets)

		require.NotNil(t, g.BestGame)
		require.NotNil(t, g.WorstGame)
		assert.Equal(t, uint(1), g.BestGame.Game.ID)
		assert.Equal(t, uint(1), g.WorstGame.Game.ID)
	})
}

func TestComputeSummary(t *testing.T) {
	games := []domain.Game{newGame(t, 1, "A", "2"), newGame(t, 2, "B", "3")}
	tickets := []domain.Ticket{
		{ID: 1, GameID: 1, Gain: decPtr(t, "5")},  // winning
		{ID: 2, GameID: 1, Gain: decPtr(t, "0")},  // resolved, not winning
		{ID: 3, GameID: 2, Gain: nil},             // pending
		{ID: 4, GameID: 2, Gain: decPtr(t, "12")}, // winning
	}

	s := ComputeSummary(games, tickets)

	assert.Equal(t, 2, s.TotalGames)
	assert.Equal(t, 4, s.TotalTickets)
	assert.Equal(t, 2, s.WinningTickets)
}

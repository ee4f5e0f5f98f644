// Package stats derives aggregate figures from games and tickets.
// Everything in here is a pure function of its inputs: no storage access,
// no mutation of the passed slices' records.
package stats

import (
	"github.com/shopspring/decimal"

	"scratchbook/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// GameStats aggregates a single game's tickets. Cost is incurred at
// purchase, so pending tickets count toward TotalCost but contribute
// nothing to TotalGains. AvgGain averages over resolved tickets only.
type GameStats struct {
	TicketCount   int             `json:"ticket_count"`
	ResolvedCount int             `json:"resolved_count"`
	PendingCount  int             `json:"pending_count"`
	TotalGains    decimal.Decimal `json:"total_gains"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Profit        decimal.Decimal `json:"profit"`
	AvgGain       decimal.Decimal `json:"avg_gain"`
	Ratio         decimal.Decimal `json:"ratio"`
}

// RankedGame pairs a game with the profit that ranked it.
type RankedGame struct {
	Game   domain.Game     `json:"game"`
	Profit decimal.Decimal `json:"profit"`
}

// GlobalStats sums gains and spend across all games. BestGame and
// WorstGame are nil when no game has any tickets.
type GlobalStats struct {
	GrandTotalGains decimal.Decimal `json:"grand_total_gains"`
	GrandTotalSpent decimal.Decimal `json:"grand_total_spent"`
	BestGame        *RankedGame     `json:"best_game"`
	WorstGame       *RankedGame     `json:"worst_game"`
}

// Summary holds the collection-wide counters shown on the settings page.
type Summary struct {
	TotalGames     int `json:"total_games"`
	TotalTickets   int `json:"total_tickets"`
	WinningTickets int `json:"winning_tickets"`
}

// ComputeGameStats aggregates the given tickets, which must all belong to
// the game. Tickets of other games are the caller's bug, not filtered here.
func ComputeGameStats(game domain.Game, tickets []domain.Ticket) GameStats {
	s := GameStats{
		TicketCount: len(tickets),
		TotalGains:  decimal.Zero,
	}

	for _, t := range tickets {
		if t.IsPending() {
			s.PendingCount++
			continue
		}
		s.ResolvedCount++
		s.TotalGains = s.TotalGains.Add(*t.Gain)
	}

	s.TotalCost = game.TicketPrice.Mul(decimal.NewFromInt(int64(s.TicketCount)))
	s.Profit = s.TotalGains.Sub(s.TotalCost)

	if s.ResolvedCount > 0 {
		s.AvgGain = s.TotalGains.Div(decimal.NewFromInt(int64(s.ResolvedCount)))
	} else {
		s.AvgGain = decimal.Zero
	}

	if s.TotalCost.IsPositive() {
		s.Ratio = s.TotalGains.Div(s.TotalCost).Mul(oneHundred)
	} else {
		s.Ratio = decimal.Zero
	}

	return s
}

// ComputeGlobalStats aggregates every game against the full ticket set.
// Games with zero tickets are excluded from the best/worst ranking; a tie
// keeps the game encountered first in input order.
func ComputeGlobalStats(games []domain.Game, allTickets []domain.Ticket) GlobalStats {
	byGame := make(map[uint][]domain.Ticket, len(games))
	for _, t := range allTickets {
		byGame[t.GameID] = append(byGame[t.GameID], t)
	}

	g := GlobalStats{
		GrandTotalGains: decimal.Zero,
		GrandTotalSpent: decimal.Zero,
	}

	for _, game := range games {
		tickets := byGame[game.ID]
		s := ComputeGameStats(game, tickets)

		g.GrandTotalGains = g.GrandTotalGains.Add(s.TotalGains)
		g.GrandTotalSpent = g.GrandTotalSpent.Add(s.TotalCost)

		if s.TicketCount == 0 {
			continue
		}
		if g.BestGame == nil || s.Profit.GreaterThan(g.BestGame.Profit) {
			g.BestGame = &RankedGame{Game: game, Profit: s.Profit}
		}
		if g.WorstGame == nil || s.Profit.LessThan(g.WorstGame.Profit) {
			g.WorstGame = &RankedGame{Game: game, Profit: s.Profit}
		}
	}

	return g
}

// ComputeSummary counts games, tickets and winning tickets (gain > 0).
func ComputeSummary(games []domain.Game, tickets []domain.Ticket) Summary {
	s := Summary{
		TotalGames:   len(games),
		TotalTickets: len(tickets),
	}
	for _, t := range tickets {
		if t.IsWinning() {
			s.WinningTickets++
		}
	}
	return s
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"scratchbook/internal/domain"
	"scratchbook/internal/repository"
	"scratchbook/internal/stats"
)

var (
	ErrGameNameExists = repository.ErrGameNameExists
	ErrGameNotFound   = repository.ErrGameNotFound
	ErrTicketNotFound = repository.ErrTicketNotFound

	ErrEmptyGameName      = errors.New("game name must not be empty")
	ErrInvalidTicketPrice = errors.New("ticket price must be positive")
	ErrNegativeGain       = errors.New("gain must not be negative")
)

type Store interface {
	ListGames(ctx context.Context) ([]domain.Game, error)
	GetGame(ctx context.Context, gameID uint) (domain.Game, error)
	CreateGame(ctx context.Context, game domain.Game) (domain.Game, error)
	DeleteGame(ctx context.Context, gameID uint) error
	ListTicketsByGame(ctx context.Context, gameID uint) ([]domain.Ticket, error)
	ListAllTickets(ctx context.Context) ([]domain.Ticket, error)
	GetTicket(ctx context.Context, ticketID uint) (domain.Ticket, error)
	AddTickets(ctx context.Context, tickets []domain.Ticket) ([]domain.Ticket, error)
	UpdateTicket(ctx context.Context, ticket domain.Ticket) error
	DeleteTicket(ctx context.Context, ticketID uint) error
	ResetAll(ctx context.Context) error
}

// GameOverview is one card on the home page: the game plus its aggregates.
type GameOverview struct {
	Game  domain.Game     `json:"game"`
	Stats stats.GameStats `json:"stats"`
}

// Overview is everything the home page renders in one call.
type Overview struct {
	Global stats.GlobalStats `json:"global"`
	Games  []GameOverview    `json:"games"`
}

// GameDetail is the detail page payload: stats including the win ratio,
// and tickets in display order (pending first, then newest resolved).
type GameDetail struct {
	Game    domain.Game     `json:"game"`
	Stats   stats.GameStats `json:"stats"`
	Tickets []domain.Ticket `json:"tickets"`
}

type TrackerService struct {
	store Store
}

func NewTrackerService(store Store) *TrackerService {
	return &TrackerService{
		store: store,
	}
}

// Overview loads a snapshot of both collections and derives the global
// aggregates plus one stat card per game, sorted by name.
func (s *TrackerService) Overview(ctx context.Context) (Overview, error) {
	games, err := s.store.ListGames(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("s.store.ListGames -> %w", err)
	}

	allTickets, err := s.store.ListAllTickets(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("s.store.ListAllTickets -> %w", err)
	}

	stats.SortGamesByName(games)

	byGame := make(map[uint][]domain.Ticket, len(games))
	for _, t := range allTickets {
		byGame[t.GameID] = append(byGame[t.GameID], t)
	}

	overview := Overview{
		Global: stats.ComputeGlobalStats(games, allTickets),
		Games:  make([]GameOverview, len(games)),
	}
	for i, game := range games {
		overview.Games[i] = GameOverview{
			Game:  game,
			Stats: stats.ComputeGameStats(game, byGame[game.ID]),
		}
	}

	return overview, nil
}

func (s *TrackerService) GameDetail(ctx context.Context, gameID uint) (GameDetail, error) {
	game, err := s.store.GetGame(ctx, gameID)
	if err != nil {
		return GameDetail{}, err
	}

	tickets, err := s.store.ListTicketsByGame(ctx, gameID)
	if err != nil {
		return GameDetail{}, fmt.Errorf("s.store.ListTicketsByGame -> %w", err)
	}

	detail := GameDetail{
		Game:    game,
		Stats:   stats.ComputeGameStats(game, tickets),
		Tickets: tickets,
	}
	stats.SortTicketsForDisplay(detail.Tickets)

	return detail, nil
}

// CreateGame validates the input before anything touches storage, so a
// rejected game leaves no record behind.
func (s *TrackerService) CreateGame(ctx context.Context, name string, ticketPrice decimal.Decimal) (domain.Game, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Game{}, ErrEmptyGameName
	}
	if !ticketPrice.IsPositive() {
		return domain.Game{}, ErrInvalidTicketPrice
	}

	game, err := s.store.CreateGame(ctx, domain.Game{
		Name:        name,
		TicketPrice: ticketPrice,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return domain.Game{}, err
	}

	return game, nil
}

func (s *TrackerService) DeleteGame(ctx context.Context, gameID uint) error {
	return s.store.DeleteGame(ctx, gameID)
}

// AddTickets registers a batch of purchases for one game. A nil gain means
// the ticket has not been scratched yet. The whole batch is validated
// up front and inserted atomically.
func (s *TrackerService) AddTickets(ctx context.Context, gameID uint, gains []*decimal.Decimal) ([]domain.Ticket, error) {
	if _, err := s.store.GetGame(ctx, gameID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tickets := make([]domain.Ticket, len(gains))
	for i, gain := range gains {
		if gain != nil && gain.IsNegative() {
			return nil, ErrNegativeGain
		}
		tickets[i] = domain.Ticket{
			GameID:    gameID,
			Gain:      gain,
			CreatedAt: now,
		}
	}

	inserted, err := s.store.AddTickets(ctx, tickets)
	if err != nil {
		return nil, fmt.Errorf("s.store.AddTickets -> %w", err)
	}

	return inserted, nil
}

// UpdateTicketGain sets, changes, or clears a ticket's gain. A nil gain
// puts the ticket back into the pending state.
func (s *TrackerService) UpdateTicketGain(ctx context.Context, ticketID uint, gain *decimal.Decimal) (domain.Ticket, error) {
	if gain != nil && gain.IsNegative() {
		return domain.Ticket{}, ErrNegativeGain
	}

	ticket, err := s.store.GetTicket(ctx, ticketID)
	if err != nil {
		return domain.Ticket{}, err
	}

	ticket.Gain = gain
	if err = s.store.UpdateTicket(ctx, ticket); err != nil {
		return domain.Ticket{}, err
	}

	return ticket, nil
}

func (s *TrackerService) DeleteTicket(ctx context.Context, ticketID uint) error {
	return s.store.DeleteTicket(ctx, ticketID)
}

func (s *TrackerService) ResetAll(ctx context.Context) error {
	return s.store.ResetAll(ctx)
}

// Summary returns the settings-page counters.
func (s *TrackerService) Summary(ctx context.Context) (stats.Summary, error) {
	games, err := s.store.ListGames(ctx)
	if err != nil {
		return stats.Summary{}, fmt.Errorf("s.store.ListGames -> %w", err)
	}

	tickets, err := s.store.ListAllTickets(ctx)
	if err != nil {
		return stats.Summary{}, fmt.Errorf("s.store.ListAllTickets -> %w", err)
	}

	return stats.ComputeSummary(games, tickets), nil
}

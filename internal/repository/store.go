package repository

import (
	"context"
	"fmt"

	"scratchbook/internal/domain"
	"scratchbook/internal/repository/dao"
)

var (
	ErrGameNameExists = dao.ErrGameNameExists
	ErrGameNotFound   = dao.ErrGameNotFound
	ErrTicketNotFound = dao.ErrTicketNotFound
)

type GameDAO interface {
	Insert(ctx context.Context, game dao.Game) (dao.Game, error)
	FindAll(ctx context.Context) ([]dao.Game, error)
	FindByID(ctx context.Context, id uint) (dao.Game, error)
	DeleteWithTickets(ctx context.Context, id uint) error
	PurgeAllWithTickets(ctx context.Context) error
}

type TicketDAO interface {
	InsertBatch(ctx context.Context, tickets []dao.Ticket) ([]dao.Ticket, error)
	FindByID(ctx context.Context, id uint) (dao.Ticket, error)
	FindByGameID(ctx context.Context, gameID uint) ([]dao.Ticket, error)
	FindAll(ctx context.Context) ([]dao.Ticket, error)
	Update(ctx context.Context, ticket dao.Ticket) error
	Delete(ctx context.Context, id uint) error
}

// Store is the only way the rest of the application touches persisted
// state. Each operation maps to one transaction in the dao layer.
type Store struct {
	games   GameDAO
	tickets TicketDAO
}

func NewStore(games GameDAO, tickets TicketDAO) *Store {
	return &Store{
		games:   games,
		tickets: tickets,
	}
}

func (s *Store) gameDaoToDomain(g dao.Game) domain.Game {
	return domain.Game{
		ID:          g.ID,
		Name:        g.Name,
		TicketPrice: g.TicketPrice,
		CreatedAt:   g.CreatedAt,
	}
}

func (s *Store) gamesDaoToDomain(daoGames []dao.Game) []domain.Game {
	games := make([]domain.Game, len(daoGames))
	for i, g := range daoGames {
		games[i] = s.gameDaoToDomain(g)
	}
	return games
}

func (s *Store) ticketDomainToDao(t domain.Ticket) dao.Ticket {
	return dao.Ticket{
		ID:        t.ID,
		GameID:    t.GameID,
		Gain:      t.Gain,
		CreatedAt: t.CreatedAt,
	}
}

func (s *Store) ticketsDaoToDomain(daoTickets []dao.Ticket) []domain.Ticket {
	tickets := make([]domain.Ticket, len(daoTickets))
	for i, t := range daoTickets {
		tickets[i] = domain.Ticket{
			ID:        t.ID,
			GameID:    t.GameID,
			Gain:      t.Gain,
			CreatedAt: t.CreatedAt,
		}
	}
	return tickets
}

func (s *Store) ListGames(ctx context.Context) ([]domain.Game, error) {
	games, err := s.games.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.games.FindAll -> %w", err)
	}

	return s.gamesDaoToDomain(games), nil
}

func (s *Store) GetGame(ctx context.Context, gameID uint) (domain.Game, error) {
	game, err := s.games.FindByID(ctx, gameID)
	if err != nil {
		return domain.Game{}, err
	}

	return s.gameDaoToDomain(game), nil
}

// CreateGame persists a new game and returns it with its assigned ID.
// A duplicate name fails with ErrGameNameExists and leaves no record behind.
func (s *Store) CreateGame(ctx context.Context, game domain.Game) (domain.Game, error) {
	created, err := s.games.Insert(ctx, dao.Game{
		Name:        game.Name,
		TicketPrice: game.TicketPrice,
		CreatedAt:   game.CreatedAt,
	})
	if err != nil {
		return domain.Game{}, err
	}

	return s.gameDaoToDomain(created), nil
}

// DeleteGame removes the game and all of its tickets atomically.
func (s *Store) DeleteGame(ctx context.Context, gameID uint) error {
	return s.games.DeleteWithTickets(ctx, gameID)
}

func (s *Store) GetTicket(ctx context.Context, ticketID uint) (domain.Ticket, error) {
	ticket, err := s.tickets.FindByID(ctx, ticketID)
	if err != nil {
		return domain.Ticket{}, err
	}

	return domain.Ticket{
		ID:        ticket.ID,
		GameID:    ticket.GameID,
		Gain:      ticket.Gain,
		CreatedAt: ticket.CreatedAt,
	}, nil
}

func (s *Store) ListTicketsByGame(ctx context.Context, gameID uint) ([]domain.Ticket, error) {
	tickets, err := s.tickets.FindByGameID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("s.tickets.FindByGameID -> %w", err)
	}

	return s.ticketsDaoToDomain(tickets), nil
}

func (s *Store) ListAllTickets(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.tickets.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.tickets.FindAll -> %w", err)
	}

	return s.ticketsDaoToDomain(tickets), nil
}

// AddTickets inserts the batch all-or-nothing and returns the inserted
// tickets with their assigned IDs.
func (s *Store) AddTickets(ctx context.Context, tickets []domain.Ticket) ([]domain.Ticket, error) {
	daoTickets := make([]dao.Ticket, len(tickets))
	for i, t := range tickets {
		daoTickets[i] = dao.Ticket{
			GameID:    t.GameID,
			Gain:      t.Gain,
			CreatedAt: t.CreatedAt,
		}
	}

	inserted, err := s.tickets.InsertBatch(ctx, daoTickets)
	if err != nil {
		return nil, fmt.Errorf("s.tickets.InsertBatch -> %w", err)
	}

	return s.ticketsDaoToDomain(inserted), nil
}

// UpdateTicket replaces the stored ticket with the same ID, both for
// setting a gain and for clearing it back to pending.
func (s *Store) UpdateTicket(ctx context.Context, ticket domain.Ticket) error {
	return s.tickets.Update(ctx, s.ticketDomainToDao(ticket))
}

// DeleteTicket is idempotent: deleting an unknown ID succeeds silently.
func (s *Store) DeleteTicket(ctx context.Context, ticketID uint) error {
	return s.tickets.Delete(ctx, ticketID)
}

// ResetAll clears both collections in one transaction.
func (s *Store) ResetAll(ctx context.Context) error {
	return s.games.PurgeAllWithTickets(ctx)
}

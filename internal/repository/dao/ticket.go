package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrTicketNotFound = errors.New("ticket not found")

type Ticket struct {
	ID uint `gorm:"primaryKey"`

	GameID uint             `gorm:"index;not null"`
	Gain   *decimal.Decimal `gorm:"type:numeric(20,2)"`

	CreatedAt time.Time `gorm:"not null"`
}

type TicketDAO struct {
	db *gorm.DB
}

func NewTicketDAO(db *gorm.DB) *TicketDAO {
	return &TicketDAO{
		db: db,
	}
}

// InsertBatch inserts every ticket or none: gorm runs a multi-row Create
// inside one transaction, so a mid-batch failure rolls the batch back.
func (d *TicketDAO) InsertBatch(ctx context.Context, tickets []Ticket) ([]Ticket, error) {
	if len(tickets) == 0 {
		return nil, nil
	}

	result := d.db.WithContext(ctx).Create(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}

	return tickets, nil
}

func (d *TicketDAO) FindByGameID(ctx context.Context, gameID uint) ([]Ticket, error) {
	var tickets []Ticket

	result := d.db.WithContext(ctx).Where("game_id = ?", gameID).Find(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}

	return tickets, nil
}

func (d *TicketDAO) FindByID(ctx context.Context, id uint) (Ticket, error) {
	var ticket Ticket

	result := d.db.WithContext(ctx).First(&ticket, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Ticket{}, ErrTicketNotFound
		}

		return Ticket{}, result.Error
	}

	return ticket, nil
}

func (d *TicketDAO) FindAll(ctx context.Context) ([]Ticket, error) {
	var tickets []Ticket

	result := d.db.WithContext(ctx).Find(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}

	return tickets, nil
}

// Update replaces the stored row with the same ID. Select("*") forces a
// full-column write so clearing Gain back to NULL is persisted too.
func (d *TicketDAO) Update(ctx context.Context, ticket Ticket) error {
	result := d.db.WithContext(ctx).
		Model(&Ticket{ID: ticket.ID}).
		Select("*").
		Omit("id").
		Updates(ticket)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTicketNotFound
	}

	return nil
}

// Delete is a silent no-op when the ID does not exist.
func (d *TicketDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Ticket{}, id)

	return result.Error
}

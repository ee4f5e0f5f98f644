package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Game is a scratch-lottery product with a fixed ticket price.
// Name is unique across all games; the price never changes after creation.
type Game struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	TicketPrice decimal.Decimal `json:"ticket_price"`
	CreatedAt   time.Time       `json:"created_at"`
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ticket is one purchased instance of a Game. Gain stays nil until the
// ticket is scratched; resolution state is derived from that alone.
type Ticket struct {
	ID        uint             `json:"id"`
	GameID    uint             `json:"game_id"`
	Gain      *decimal.Decimal `json:"gain"`
	CreatedAt time.Time        `json:"created_at"`
}

func (t Ticket) IsPending() bool {
	return t.Gain == nil
}

func (t Ticket) IsWinning() bool {
	return t.Gain != nil && t.Gain.IsPositive()
}

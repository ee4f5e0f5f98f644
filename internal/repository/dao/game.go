package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrGameNameExists = errors.New("a game with this name already exists")
	ErrGameNotFound   = errors.New("game not found")
)

type Game struct {
	ID uint `gorm:"primaryKey"`

	Name        string          `gorm:"uniqueIndex;not null"`
	TicketPrice decimal.Decimal `gorm:"type:numeric(20,2);not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type GameDAO struct {
	db *gorm.DB
}

func NewGameDAO(db *gorm.DB) *GameDAO {
	return &GameDAO{
		db: db,
	}
}

// Insert persists a new game. The unique index on name makes a duplicate
// insert fail as a whole; gorm's TranslateError turns that into
// gorm.ErrDuplicatedKey, which is mapped to the sentinel here.
func (d *GameDAO) Insert(ctx context.Context, game Game) (Game, error) {
	result := d.db.WithContext(ctx).Create(&game)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return Game{}, ErrGameNameExists
		}

		return Game{}, result.Error
	}

	return game, nil
}

func (d *GameDAO) FindAll(ctx context.Context) ([]Game, error) {
	var games []Game

	result := d.db.WithContext(ctx).Find(&games)
	if result.Error != nil {
		return nil, result.Error
	}

	return games, nil
}

func (d *GameDAO) FindByID(ctx context.Context, id uint) (Game, error) {
	var game Game

	result := d.db.WithContext(ctx).First(&game, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Game{}, ErrGameNotFound
		}

		return Game{}, result.Error
	}

	return game, nil
}

// DeleteWithTickets removes the game and every ticket referencing it in a
// single transaction, so no orphan ticket is ever observable.
func (d *GameDAO) DeleteWithTickets(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&Game{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrGameNotFound
		}

		if err := tx.Where("game_id = ?", id).Delete(&Ticket{}).Error; err != nil {
			return err
		}

		return nil
	})
}

// PurgeAllWithTickets clears both collections atomically.
func (d *GameDAO) PurgeAllWithTickets(ctx context.Context) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Ticket{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&Game{}).Error; err != nil {
			return err
		}

		return nil
	})
}

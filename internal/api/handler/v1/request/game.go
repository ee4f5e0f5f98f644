package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

var errNonPositivePrice = errors.New("ticket_price must be greater than zero")

type CreateGameRequest struct {
	Name        string          `json:"name"`
	TicketPrice decimal.Decimal `json:"ticket_price"`
}

func (req *CreateGameRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.TicketPrice, validation.By(positivePrice)),
	)
}

func positivePrice(value interface{}) error {
	price, ok := value.(decimal.Decimal)
	if !ok || !price.IsPositive() {
		return errNonPositivePrice
	}
	return nil
}

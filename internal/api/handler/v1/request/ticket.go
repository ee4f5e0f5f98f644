package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

var errNegativeGain = errors.New("gain must not be negative")

// AddTicketsRequest registers a batch of purchased tickets for one game.
// A null entry in Gains is a ticket that has not been scratched yet.
type AddTicketsRequest struct {
	Gains []*decimal.Decimal `json:"gains"`
}

func (req *AddTicketsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Gains, validation.Required, validation.Length(1, 500), validation.By(nonNegativeGains)),
	)
}

// UpdateTicketRequest sets a ticket's gain, or clears it back to pending
// when Gain is null.
type UpdateTicketRequest struct {
	Gain *decimal.Decimal `json:"gain"`
}

func (req *UpdateTicketRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Gain, validation.By(nonNegativeGain)),
	)
}

func nonNegativeGains(value interface{}) error {
	gains, ok := value.([]*decimal.Decimal)
	if !ok {
		return errNegativeGain
	}
	for _, gain := range gains {
		if gain != nil && gain.IsNegative() {
			return errNegativeGain
		}
	}
	return nil
}

func nonNegativeGain(value interface{}) error {
	gain, ok := value.(*decimal.Decimal)
	if !ok {
		return errNegativeGain
	}
	if gain != nil && gain.IsNegative() {
		return errNegativeGain
	}
	return nil
}

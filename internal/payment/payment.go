package payment

import (
	"context"
	"errors"
	"time"
)

// ErrDeclined is returned by a Processor that refused the charge.
var ErrDeclined = errors.New("payment declined")

type ChargeRequest struct {
	Amount      float64
	Currency    string
	Method      string
	DonorName   string
	DonorEmail  string
	Description string
}

type ChargeResult struct {
	PaymentID   string
	Status      string
	ProcessedAt time.Time
}

// Processor charges a donor. A non-nil error means nothing was charged.
type Processor interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

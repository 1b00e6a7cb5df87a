package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const StatusCompleted = "completed"

// SimulatedProcessor accepts every charge without contacting a gateway.
type SimulatedProcessor struct {
	now func() time.Time
}

func NewSimulatedProcessor() *SimulatedProcessor {
	return &SimulatedProcessor{now: time.Now}
}

func (p *SimulatedProcessor) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount %.2f: %w", req.Amount, ErrDeclined)
	}

	now := p.now().UTC()
	return &ChargeResult{
		PaymentID:   NewPaymentID(now),
		Status:      StatusCompleted,
		ProcessedAt: now,
	}, nil
}

// NewPaymentID formats pay_<unix millis>_<9 random chars>.
func NewPaymentID(at time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("pay_%d_%s", at.UnixMilli(), suffix)
}

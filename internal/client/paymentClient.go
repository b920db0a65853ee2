package client

import (
	"context"
	"file-shop-demo/internal/config"
	"time"
)

// PaymentIntent is what the processor needs to confirm a single charge.
type PaymentIntent struct {
	SessionID string
	FileID    int
	Amount    int
}

// PaymentProcessor is the boundary to the external payment confirmation
// signal. A real integration would create an intent with a processor and wait
// for its webhook; the demo implementation simulates the round trip.
type PaymentProcessor interface {
	Confirm(ctx context.Context, intent PaymentIntent) error
}

type simulatedProcessor struct {
	delay time.Duration
}

func NewSimulatedProcessor(paymentCfg *config.Payment) PaymentProcessor {
	return &simulatedProcessor{
		delay: paymentCfg.SimDelay,
	}
}

// Confirm waits the configured processing delay and reports success, the way
// the scan-to-pay flow this demo stands in for always settles. Cancelling the
// context aborts the wait.
func (p *simulatedProcessor) Confirm(ctx context.Context, intent PaymentIntent) error {
	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package checkout

import (
	"context"
	"log/slog"
	"time"

	"github.com/movshovich/scarves-store/internal/cart"
)

// Address is the shipping destination captured at checkout.
type Address struct {
	FirstName  string
	LastName   string
	Address    string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      string
}

// Order is what a Processor is asked to charge. Card data beyond the last
// four digits is never kept past validation.
type Order struct {
	ID        string
	Email     string
	ShipTo    Address
	CardLast4 string
	Items     []cart.Item
	Totals    Totals
}

type Receipt struct {
	OrderID     string
	AmountCents int
	ProcessedAt time.Time
}

// Processor charges an order. One in-flight charge per cart is enforced by
// the Service, not here; implementations only need to be safe for
// concurrent use across different orders.
type Processor interface {
	Charge(ctx context.Context, o Order) (Receipt, error)
}

// SimulatedProcessor stands in for a real gateway: it waits a fixed delay,
// logs the order payload, and approves unconditionally.
type SimulatedProcessor struct {
	Delay time.Duration
	Log   *slog.Logger
}

func (p *SimulatedProcessor) Charge(ctx context.Context, o Order) (Receipt, error) {
	delay := p.Delay
	if delay <= 0 {
		delay = 2 * time.Second
	}

	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
		return Receipt{}, ctx.Err()
	}

	if p.Log != nil {
		p.Log.Info("payment_simulated",
			"order_id", o.ID,
			"email", o.Email,
			"card_last4", o.CardLast4,
			"lines", len(o.Items),
			"amount_cents", o.Totals.TotalCents,
		)
	}

	return Receipt{
		OrderID:     o.ID,
		AmountCents: o.Totals.TotalCents,
		ProcessedAt: time.Now(),
	}, nil
}

package checkout

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/movshovich/scarves-store/internal/cart"
)

// SubmitInput is the validated checkout form. Validation happens at the
// HTTP layer; by the time it reaches the service the fields are shaped.
type SubmitInput struct {
	Email      string
	FirstName  string
	LastName   string
	Address    string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      string

	CardNumber string
	CardExpiry string
	CardCVC    string
}

// Service runs the checkout submission: one in-flight submission per cart,
// charge through the processor, then clear the cart on success.
type Service struct {
	proc Processor
	opts Options
	log  *slog.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewService(proc Processor, opts Options, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{proc: proc, opts: opts, log: log, inflight: make(map[string]struct{})}
}

// Options exposes the pricing knobs the service was built with.
func (s *Service) Options() Options { return s.opts }

// Totals recomputes the order arithmetic for the given store with the
// service's pricing options. Handlers use this for both the cart summary
// and the checkout summary, which is how the two stay in agreement.
func (s *Service) Totals(store *cart.Store) Totals {
	return Compute(store.Snapshot().Items, s.opts)
}

// Submit charges the cart and clears it. ErrCartEmpty when there is
// nothing to buy, ErrInFlight when this cart is already processing.
// The cart is only cleared after the processor approves.
func (s *Service) Submit(ctx context.Context, cartID string, store *cart.Store, in SubmitInput) (Receipt, error) {
	snap := store.Snapshot()
	if len(snap.Items) == 0 {
		return Receipt{}, ErrCartEmpty
	}

	if !s.acquire(cartID) {
		return Receipt{}, ErrInFlight
	}
	defer s.release(cartID)

	order := Order{
		ID:    uuid.NewString(),
		Email: strings.ToLower(strings.TrimSpace(in.Email)),
		ShipTo: Address{
			FirstName:  strings.TrimSpace(in.FirstName),
			LastName:   strings.TrimSpace(in.LastName),
			Address:    strings.TrimSpace(in.Address),
			City:       strings.TrimSpace(in.City),
			State:      strings.TrimSpace(in.State),
			PostalCode: strings.TrimSpace(in.PostalCode),
			Country:    strings.ToUpper(strings.TrimSpace(in.Country)),
			Phone:      strings.TrimSpace(in.Phone),
		},
		CardLast4: last4(in.CardNumber),
		Items:     snap.Items,
		Totals:    Compute(snap.Items, s.opts),
	}

	receipt, err := s.proc.Charge(ctx, order)
	if err != nil {
		s.log.Error("checkout_charge_failed", "cart_id", cartID, "order_id", order.ID, "err", err)
		return Receipt{}, err
	}

	store.Clear()
	s.log.Info("checkout_confirmed",
		"cart_id", cartID,
		"order_id", receipt.OrderID,
		"amount_cents", receipt.AmountCents,
	)
	return receipt, nil
}

func (s *Service) acquire(cartID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[cartID]; busy {
		return false
	}
	s.inflight[cartID] = struct{}{}
	return true
}

func (s *Service) release(cartID string) {
	s.mu.Lock()
	delete(s.inflight, cartID)
	s.mu.Unlock()
}

func last4(cardNumber string) string {
	digits := make([]rune, 0, len(cardNumber))
	for _, r := range cardNumber {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) < 4 {
		return ""
	}
	return string(digits[len(digits)-4:])
}

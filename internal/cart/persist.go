package cart

import (
	"context"
	"errors"
	"log/slog"
)

// ErrNoRecord is returned by a Persister when no payload exists for the ID.
var ErrNoRecord = errors.New("cart: no persisted record")

// Persister is the durable key-value store behind a cart. Save is fired
// synchronously on every mutation; Load runs once when a cart is opened.
type Persister interface {
	Save(ctx context.Context, cartID string, payload []byte) error
	Load(ctx context.Context, cartID string) ([]byte, error)
}

// PersistentStore decorates Store with write-through persistence: the
// snapshot is serialized after each mutation and reloaded the next time
// the same cart ID is opened. Persistence failures are logged, never
// surfaced, because cart operations do not fail.
type PersistentStore struct {
	*Store
	id  string
	p   Persister
	log *slog.Logger
}

// OpenPersistent loads the cart with the given ID, or starts empty when
// there is no record or the record cannot be decoded (e.g. written by an
// older schema version).
func OpenPersistent(ctx context.Context, p Persister, cartID string, log *slog.Logger) *PersistentStore {
	if log == nil {
		log = slog.Default()
	}

	var snap Snapshot
	payload, err := p.Load(ctx, cartID)
	switch {
	case errors.Is(err, ErrNoRecord):
		// first visit
	case err != nil:
		log.Warn("cart_load_failed", "cart_id", cartID, "err", err)
	default:
		snap, err = DecodeSnapshot(payload)
		if err != nil {
			log.Warn("cart_decode_failed", "cart_id", cartID, "err", err)
			snap = Snapshot{}
		}
	}

	ps := &PersistentStore{Store: Restore(snap), id: cartID, p: p, log: log}
	ps.Subscribe(ps.save)
	return ps
}

func (ps *PersistentStore) ID() string { return ps.id }

func (ps *PersistentStore) save(snap Snapshot) {
	payload, err := EncodeSnapshot(snap)
	if err != nil {
		ps.log.Error("cart_encode_failed", "cart_id", ps.id, "err", err)
		return
	}
	if err := ps.p.Save(context.Background(), ps.id, payload); err != nil {
		ps.log.Error("cart_save_failed", "cart_id", ps.id, "err", err)
	}
}

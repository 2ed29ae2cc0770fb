package cart

import (
	"sync"

	"github.com/movshovich/scarves-store/internal/catalog"
)

// Item is one cart line: a product/variant snapshot plus a quantity.
// The snapshot is taken at add time, so catalog price changes never
// reprice lines already in a cart.
type Item struct {
	Product  catalog.Product
	Variant  catalog.Variant
	Quantity int
}

func (it Item) LineTotalCents() int {
	return it.Product.PriceCents * it.Quantity
}

// Snapshot is an immutable view of the store handed to subscribers and
// to the persistence layer.
type Snapshot struct {
	Items []Item
	Open  bool
}

func (s Snapshot) ItemCount() int {
	n := 0
	for _, it := range s.Items {
		n += it.Quantity
	}
	return n
}

func (s Snapshot) SubtotalCents() int {
	sum := 0
	for _, it := range s.Items {
		sum += it.LineTotalCents()
	}
	return sum
}

// Store is the single source of truth for one shopper's in-progress order:
// an ordered line-item list (insertion order is display order) and the
// drawer-open flag. Mutations never fail; unknown keys are no-ops and
// non-positive quantities remove the line.
type Store struct {
	mu    sync.Mutex
	items []Item
	open  bool
	subs  []func(Snapshot)
}

func NewStore() *Store { return &Store{} }

// Restore builds a store from a previously persisted snapshot.
func Restore(snap Snapshot) *Store {
	s := &Store{open: snap.Open}
	s.items = append(s.items, snap.Items...)
	return s
}

// Subscribe registers fn to run after every mutation with a fresh snapshot.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// AddItem merges into an existing line with the same (product, variant) key
// or appends a new line at the end. There is no stock check here: the
// storefront has always allowed adding out-of-stock variants and the
// product page gates the control instead.
func (s *Store) AddItem(p catalog.Product, v catalog.Variant, qty int) {
	if qty < 1 {
		qty = 1
	}
	s.mu.Lock()
	if i := s.indexOf(p.ID, v.ID); i >= 0 {
		s.items[i].Quantity += qty
	} else {
		s.items = append(s.items, Item{Product: p.Clone(), Variant: v, Quantity: qty})
	}
	s.unlockAndNotify()
}

// RemoveItem deletes the matching line. Absent keys are a no-op.
func (s *Store) RemoveItem(productID, variantID string) {
	s.mu.Lock()
	if i := s.indexOf(productID, variantID); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
	s.unlockAndNotify()
}

// UpdateQuantity sets the line quantity to an absolute value. A quantity
// of zero or less removes the line; absent keys are a no-op.
func (s *Store) UpdateQuantity(productID, variantID string, qty int) {
	if qty <= 0 {
		s.RemoveItem(productID, variantID)
		return
	}
	s.mu.Lock()
	if i := s.indexOf(productID, variantID); i >= 0 {
		s.items[i].Quantity = qty
	}
	s.unlockAndNotify()
}

// Clear empties the line items. The drawer flag is left untouched.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.unlockAndNotify()
}

func (s *Store) OpenDrawer() {
	s.mu.Lock()
	s.open = true
	s.unlockAndNotify()
}

func (s *Store) CloseDrawer() {
	s.mu.Lock()
	s.open = false
	s.unlockAndNotify()
}

func (s *Store) ToggleDrawer() {
	s.mu.Lock()
	s.open = !s.open
	s.unlockAndNotify()
}

// ItemCount is the sum of quantities, not the number of lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked().ItemCount()
}

func (s *Store) SubtotalCents() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked().SubtotalCents()
}

func (s *Store) DrawerOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) indexOf(productID, variantID string) int {
	for i, it := range s.items {
		if it.Product.ID == productID && it.Variant.ID == variantID {
			return i
		}
	}
	return -1
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{Open: s.open, Items: make([]Item, len(s.items))}
	copy(snap.Items, s.items)
	return snap
}

// unlockAndNotify releases the lock, then runs subscribers with the
// post-mutation snapshot. Subscribers run outside the lock so they may
// call read methods on the store.
func (s *Store) unlockAndNotify() {
	snap := s.snapshotLocked()
	subs := append(([]func(Snapshot))(nil), s.subs...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}

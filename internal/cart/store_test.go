package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movshovich/scarves-store/internal/catalog"
)

func seedProduct(t *testing.T, slug string) catalog.Product {
	t.Helper()
	p, err := catalog.Default().BySlug(slug)
	require.NoError(t, err)
	return p
}

func TestAddItemMergesSameVariant(t *testing.T) {
	s := NewStore()
	p := seedProduct(t, "equinox-bloom")
	v := p.Variants[0]

	s.AddItem(p, v, 1)
	s.AddItem(p, v, 2)

	snap := s.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 3, snap.Items[0].Quantity)
	assert.Equal(t, 3, s.ItemCount())
}

func TestAddItemDifferentVariantsAreSeparateLines(t *testing.T) {
	s := NewStore()
	p := seedProduct(t, "equinox-bloom")

	s.AddItem(p, p.Variants[0], 1)
	s.AddItem(p, p.Variants[1], 1)

	require.Len(t, s.Snapshot().Items, 2)
	assert.Equal(t, 2, s.ItemCount())
}

func TestAddItemClampsQuantityToOne(t *testing.T) {
	s := NewStore()
	p := seedProduct(t, "lumen-veil")

	s.AddItem(p, p.Variants[0], 0)
	s.AddItem(p, p.Variants[1], -5)

	snap := s.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, 1, snap.Items[0].Quantity)
	assert.Equal(t, 1, snap.Items[1].Quantity)
}

func TestInsertionOrderIsDisplayOrder(t *testing.T) {
	s := NewStore()
	first := seedProduct(t, "nocturne-tides")
	second := seedProduct(t, "equinox-bloom")

	s.AddItem(first, first.Variants[0], 1)
	s.AddItem(second, second.Variants[0], 1)
	// merging into the first line must not reorder
	s.AddItem(first, first.Variants[0], 1)

	snap := s.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "nocturne-tides", snap.Items[0].Product.Slug)
	assert.Equal(t, "equinox-bloom", snap.Items[1].Product.Slug)
}

func TestUpdateQuantityIsAbsolute(t *testing.T) {
	s := NewStore()
	p := seedProduct(t, "equinox-bloom")
	v := p.Variants[0]

	s.AddItem(p, v, 5)
	s.UpdateQuantity(p.ID, v.ID, 2)

	assert.Equal(t, 2, s.ItemCount())
}

func TestUpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	for _, qty := range []int{0, -3} {
		s := NewStore()
		p := seedProduct(t, "equinox-bloom")
		v := p.Variants[0]

		s.AddItem(p, v, 2)
		s.UpdateQuantity(p.ID, v.ID, qty)

		assert.Empty(t, s.Snapshot().Items)
	}
}

func TestRemoveAndUpdateUnknownKeysAreNoOps(t *testing.T) {
	s := NewStore()
	p := seedProduct(t, "equinox-bloom")
	s.AddItem(p, p.Variants[0], 1)

	s.RemoveItem("nope", "nope")
	s.UpdateQuantity("nope", "nope", 7)

	require.Len(t, s.Snapshot().Items, 1)
	assert.Equal(t, 1, s.ItemCount())
}

func TestClearKeepsDrawerFlag(t *testing.T) {
	s := NewStore()
	p := seedProduct(t, "equinox-bloom")
	s.AddItem(p, p.Variants[0], 1)
	s.OpenDrawer()

	s.Clear()

	assert.Empty(t, s.Snapshot().Items)
	assert.True(t, s.DrawerOpen())
}

func TestDrawerToggle(t *testing.T) {
	s := NewStore()

	assert.False(t, s.DrawerOpen())
	s.ToggleDrawer()
	assert.True(t, s.DrawerOpen())
	s.ToggleDrawer()
	assert.False(t, s.DrawerOpen())

	s.OpenDrawer()
	s.OpenDrawer()
	assert.True(t, s.DrawerOpen())
	s.CloseDrawer()
	assert.False(t, s.DrawerOpen())
}

func TestSubtotalSumsLineTotals(t *testing.T) {
	s := NewStore()
	eb := seedProduct(t, "equinox-bloom") // 18000
	nt := seedProduct(t, "nocturne-tides") // 21000

	s.AddItem(eb, eb.Variants[0], 2)
	s.AddItem(nt, nt.Variants[0], 1)

	assert.Equal(t, 2*18000+21000, s.SubtotalCents())
}

func TestSnapshotPriceUnaffectedByLaterCatalogChange(t *testing.T) {
	s := NewStore()
	p := seedProduct(t, "equinox-bloom")
	s.AddItem(p, p.Variants[0], 1)

	// mutate the caller's copy after adding
	p.PriceCents = 99999
	p.Variants[0].InStock = false

	snap := s.Snapshot()
	assert.Equal(t, 18000, snap.Items[0].Product.PriceCents)
	assert.True(t, snap.Items[0].Product.Variants[0].InStock)
}

func TestSubscribeSeesEveryMutation(t *testing.T) {
	s := NewStore()
	p := seedProduct(t, "equinox-bloom")

	var got []Snapshot
	s.Subscribe(func(snap Snapshot) { got = append(got, snap) })

	s.AddItem(p, p.Variants[0], 1)
	s.OpenDrawer()
	s.Clear()

	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].ItemCount())
	assert.True(t, got[1].Open)
	assert.Equal(t, 0, got[2].ItemCount())
}

func TestSubscriberMayReadStore(t *testing.T) {
	s := NewStore()
	p := seedProduct(t, "equinox-bloom")

	var count int
	s.Subscribe(func(Snapshot) { count = s.ItemCount() })

	s.AddItem(p, p.Variants[0], 4)
	assert.Equal(t, 4, count)
}

func TestRestoreRoundTrip(t *testing.T) {
	s := NewStore()
	p := seedProduct(t, "equinox-bloom")
	s.AddItem(p, p.Variants[0], 2)
	s.OpenDrawer()

	restored := Restore(s.Snapshot())

	assert.Equal(t, 2, restored.ItemCount())
	assert.True(t, restored.DrawerOpen())
	assert.Equal(t, s.SubtotalCents(), restored.SubtotalCents())
}

package view

// CartLine is one row of the cart page and drawer.
type CartLine struct {
	ProductID   string
	ProductName string
	ProductSlug string
	Background  string
	VariantID   string
	Size        string
	Qty         int
	UnitPrice   string
	LineTotal   string
}

// CartPage is shared by the cart page and the drawer fragment. The drawer
// never shows tax, so only subtotal and shipping appear here.
type CartPage struct {
	Items      []CartLine
	Count      int
	DrawerOpen bool

	SubtotalCents int
	ShippingCents int
	Subtotal      string
	Shipping      string
	Total         string // subtotal + shipping, the drawer total

	// Free-shipping nudge: how much more to spend, zero once reached.
	FreeShippingGapCents int
	FreeShippingGap      string
}

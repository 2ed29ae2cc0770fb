package catalog

// Variant is a purchasable size of a product. A variant belongs to exactly
// one product; variant IDs are unique within the whole catalog.
type Variant struct {
	ID      string
	Size    string
	InStock bool
	SKU     string
}

// Details holds the care-and-provenance block shown on the detail page.
type Details struct {
	Dimensions string
	Weight     string
	Care       string
	Origin     string
}

// LimitedEdition tracks a numbered run. Remaining never exceeds Total.
type LimitedEdition struct {
	Total     int
	Remaining int
}

type Product struct {
	ID              string
	Slug            string
	Name            string
	Description     string
	LongDescription string
	PriceCents      int
	CompareAtCents  int // 0 when the product is not marked down
	Palette         string
	Fabric          string
	Background      string
	Badge           string
	Images          []string
	Variants        []Variant
	Details         Details
	Features        []string
	InStock         bool
	Limited         *LimitedEdition
}

// Variant returns the variant with the given ID.
func (p Product) Variant(id string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// OnSale reports whether a compare-at price should be shown.
func (p Product) OnSale() bool {
	return p.CompareAtCents > p.PriceCents && p.CompareAtCents > 0
}

// Clone returns a deep copy. The cart stores clones so that later catalog
// edits never change lines that are already in a cart.
func (p Product) Clone() Product {
	out := p
	out.Images = append([]string(nil), p.Images...)
	out.Variants = append([]Variant(nil), p.Variants...)
	out.Features = append([]string(nil), p.Features...)
	if p.Limited != nil {
		le := *p.Limited
		out.Limited = &le
	}
	return out
}

package view

// ProductCard is one tile in the collection grid.
type ProductCard struct {
	Slug             string
	Name             string
	Description      string
	Price            string
	CompareAt        string // empty when not marked down
	Palette          string
	Fabric           string
	Background       string
	Badge            string
	LimitedRemaining int // 0 when not a limited edition
	LimitedTotal     int
}

type VariantOption struct {
	ID      string
	Size    string
	SKU     string
	InStock bool
}

// ProductPage is the detail view model.
type ProductPage struct {
	ID               string
	Slug             string
	Name             string
	Description      string
	LongDescription  string
	Price            string
	CompareAt        string
	Palette          string
	Fabric           string
	Background       string
	Badge            string
	Images           []string
	Variants         []VariantOption
	Dimensions       string
	Weight           string
	Care             string
	Origin           string
	Features         []string
	InStock          bool
	LimitedRemaining int
	LimitedTotal     int
}

package catalog

import (
	"errors"
	"fmt"

	"github.com/movshovich/scarves-store/internal/shared/slug"
)

var ErrNotFound = errors.New("catalog: product not found")

// Catalog is the read-only product collection. It is built once at startup
// and never mutated afterwards, so lookups need no locking.
type Catalog struct {
	products []Product
	bySlug   map[string]int
	byID     map[string]int
}

// New validates the product set and builds the lookup indexes.
func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: products,
		bySlug:   make(map[string]int, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	variantOwner := make(map[string]string)

	for i, p := range products {
		if p.Slug == "" {
			p.Slug = slug.FromName(p.Name)
			c.products[i].Slug = p.Slug
		}
		if p.ID == "" {
			return nil, fmt.Errorf("catalog: product %q missing id", p.Name)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate product id %q", p.ID)
		}
		if _, dup := c.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("catalog: duplicate slug %q", p.Slug)
		}
		if p.PriceCents <= 0 {
			return nil, fmt.Errorf("catalog: product %q has non-positive price", p.Slug)
		}
		if p.Limited != nil && p.Limited.Remaining > p.Limited.Total {
			return nil, fmt.Errorf("catalog: product %q limited edition has remaining > total", p.Slug)
		}
		for _, v := range p.Variants {
			if owner, dup := variantOwner[v.ID]; dup {
				return nil, fmt.Errorf("catalog: variant %q owned by both %q and %q", v.ID, owner, p.Slug)
			}
			variantOwner[v.ID] = p.Slug
		}
		c.byID[p.ID] = i
		c.bySlug[p.Slug] = i
	}
	return c, nil
}

// List returns the products in catalog order.
func (c *Catalog) List() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) BySlug(slug string) (Product, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Product{}, ErrNotFound
	}
	return c.products[i], nil
}

func (c *Catalog) ByID(id string) (Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return c.products[i], nil
}

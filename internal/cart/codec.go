package cart

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/movshovich/scarves-store/internal/catalog"
)

// SchemaVersion is the persisted-payload version. Bump it whenever the
// record layout changes; old payloads are then rejected loudly instead of
// being half-read.
const SchemaVersion = 1

var ErrSchemaVersion = errors.New("cart: unsupported payload version")

type envelope struct {
	Version int          `json:"v"`
	Open    bool         `json:"is_open"`
	Items   []itemRecord `json:"items"`
}

type itemRecord struct {
	Product  productRecord `json:"product"`
	Variant  variantRecord `json:"variant"`
	Quantity int           `json:"quantity"`
}

// productRecord is the embedded product snapshot. It carries every display
// field so a persisted cart renders without a catalog lookup.
type productRecord struct {
	ID              string         `json:"id"`
	Slug            string         `json:"slug"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	LongDescription string         `json:"long_description,omitempty"`
	PriceCents      int            `json:"price_cents"`
	CompareAtCents  int            `json:"compare_at_cents,omitempty"`
	Palette         string         `json:"palette,omitempty"`
	Fabric          string         `json:"fabric,omitempty"`
	Background      string         `json:"background,omitempty"`
	Badge           string         `json:"badge,omitempty"`
	Images          []string       `json:"images,omitempty"`
	InStock         bool           `json:"in_stock"`
	Limited         *limitedRecord `json:"limited_edition,omitempty"`
}

type variantRecord struct {
	ID      string `json:"id"`
	Size    string `json:"size"`
	InStock bool   `json:"in_stock"`
	SKU     string `json:"sku"`
}

type limitedRecord struct {
	Total     int `json:"total"`
	Remaining int `json:"remaining"`
}

// EncodeSnapshot serializes a snapshot into the versioned record payload.
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	env := envelope{Version: SchemaVersion, Open: snap.Open}
	for _, it := range snap.Items {
		env.Items = append(env.Items, itemRecord{
			Product:  toProductRecord(it.Product),
			Variant:  variantRecord(it.Variant),
			Quantity: it.Quantity,
		})
	}
	return json.Marshal(env)
}

// DecodeSnapshot parses a persisted payload. Lines with a non-positive
// quantity are dropped rather than restored.
func DecodeSnapshot(payload []byte) (Snapshot, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return Snapshot{}, fmt.Errorf("cart: decode payload: %w", err)
	}
	if env.Version != SchemaVersion {
		return Snapshot{}, fmt.Errorf("%w: got %d, want %d", ErrSchemaVersion, env.Version, SchemaVersion)
	}

	snap := Snapshot{Open: env.Open}
	for _, rec := range env.Items {
		if rec.Quantity <= 0 {
			continue
		}
		snap.Items = append(snap.Items, Item{
			Product:  fromProductRecord(rec.Product),
			Variant:  catalog.Variant(rec.Variant),
			Quantity: rec.Quantity,
		})
	}
	return snap, nil
}

func toProductRecord(p catalog.Product) productRecord {
	rec := productRecord{
		ID:              p.ID,
		Slug:            p.Slug,
		Name:            p.Name,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		PriceCents:      p.PriceCents,
		CompareAtCents:  p.CompareAtCents,
		Palette:         p.Palette,
		Fabric:          p.Fabric,
		Background:      p.Background,
		Badge:           p.Badge,
		Images:          p.Images,
		InStock:         p.InStock,
	}
	if p.Limited != nil {
		rec.Limited = &limitedRecord{Total: p.Limited.Total, Remaining: p.Limited.Remaining}
	}
	return rec
}

func fromProductRecord(rec productRecord) catalog.Product {
	p := catalog.Product{
		ID:              rec.ID,
		Slug:            rec.Slug,
		Name:            rec.Name,
		Description:     rec.Description,
		LongDescription: rec.LongDescription,
		PriceCents:      rec.PriceCents,
		CompareAtCents:  rec.CompareAtCents,
		Palette:         rec.Palette,
		Fabric:          rec.Fabric,
		Background:      rec.Background,
		Badge:           rec.Badge,
		Images:          rec.Images,
		InStock:         rec.InStock,
	}
	if rec.Limited != nil {
		p.Limited = &catalog.LimitedEdition{Total: rec.Limited.Total, Remaining: rec.Limited.Remaining}
	}
	return p
}

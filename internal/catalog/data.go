package catalog

// Seed returns the Aurora collection. Prices are USD cents.
func Seed() []Product {
	return []Product{
		{
			ID:          "1",
			Slug:        "equinox-bloom",
			Name:        "Equinox Bloom",
			Description: "Blooming botanicals etched in copper leaf, finished with hand-rolled edges.",
			LongDescription: "Equinox Bloom captures the ephemeral beauty of spring's first light through delicate " +
				"botanical illustrations layered with metallic copper accents. Each scarf is hand-finished with rolled " +
				"edges and undergoes a specialized printing process that preserves the luminosity of the original " +
				"watercolor artwork. The amber and juniper palette evokes early morning gardens, making this piece " +
				"equally stunning as a neck scarf, hair wrap, or framed textile art.",
			PriceCents: 18000,
			Palette:    "Amber + Juniper",
			Fabric:     "Mulberry silk",
			Background: "linear-gradient(135deg, #f9ddc8 0%, #f8f3ee 42%, #d7e4fa 100%)",
			Badge:      "Edition of 90",
			Images: []string{
				"/products/equinox-bloom-1.jpg",
				"/products/equinox-bloom-2.jpg",
				"/products/equinox-bloom-3.jpg",
				"/products/equinox-bloom-4.jpg",
			},
			Variants: []Variant{
				{ID: "1-small", Size: "70cm × 70cm", InStock: true, SKU: "AUR-EB-70"},
				{ID: "1-large", Size: "90cm × 90cm", InStock: true, SKU: "AUR-EB-90"},
			},
			Details: Details{
				Dimensions: "70cm × 70cm or 90cm × 90cm",
				Weight:     "35g (small), 58g (large)",
				Care:       "Dry clean or hand wash cold with silk detergent",
				Origin:     "Woven and printed in Como, Italy",
			},
			Features: []string{
				"100% mulberry silk twill (16 momme)",
				"Hand-rolled edges with invisible stitching",
				"Archival pigment inks rated for 100+ years",
				"Limited edition of 90 pieces worldwide",
				"Numbered certificate of authenticity",
				"Packaged in heirloom muslin sleeve",
			},
			InStock: true,
			Limited: &LimitedEdition{Total: 90, Remaining: 23},
		},
		{
			ID:          "2",
			Slug:        "nocturne-tides",
			Name:        "Nocturne Tides",
			Description: "A deep-sea gradient with pearl microdots inspired by night photography.",
			LongDescription: "Nocturne Tides draws inspiration from long-exposure ocean photography, where moonlit " +
				"waves blur into abstract ribbons of cobalt and obsidian. The design features a sophisticated gradient " +
				"punctuated by hand-applied pearl microdots that catch light like bioluminescent plankton. Printed on " +
				"our signature silk satin, this scarf offers a liquid drape and subtle sheen that enhances both formal " +
				"and casual styling.",
			PriceCents: 21000,
			Palette:    "Cobalt + Obsidian",
			Fabric:     "Silk satin",
			Background: "linear-gradient(135deg, #0f1d3a 0%, #234b74 48%, #9fbff2 100%)",
			Badge:      "Bestseller",
			Images: []string{
				"/products/nocturne-tides-1.jpg",
				"/products/nocturne-tides-2.jpg",
				"/products/nocturne-tides-3.jpg",
				"/products/nocturne-tides-4.jpg",
			},
			Variants: []Variant{
				{ID: "2-small", Size: "70cm × 70cm", InStock: true, SKU: "AUR-NT-70"},
				{ID: "2-large", Size: "90cm × 90cm", InStock: false, SKU: "AUR-NT-90"},
			},
			Details: Details{
				Dimensions: "70cm × 70cm or 90cm × 90cm",
				Weight:     "42g (small), 68g (large)",
				Care:       "Dry clean recommended; hand wash cold if needed",
				Origin:     "Woven and printed in Como, Italy",
			},
			Features: []string{
				"100% silk satin with pearl finish (19 momme)",
				"Hand-applied pearl microdot detailing",
				"UV-resistant inks for lasting color depth",
				"Best-selling design since 2024",
				"Signed by the artist",
				"Gift-ready presentation box included",
			},
			InStock: true,
		},
		{
			ID:          "3",
			Slug:        "lumen-veil",
			Name:        "Lumen Veil",
			Description: "Layered translucent brushwork capturing the warmth of first light.",
			LongDescription: "Lumen Veil translates the soft, diffused quality of dawn into wearable art through " +
				"layered translucent brushstrokes in quartz and alabaster tones. The original painting was created " +
				"using a unique wet-on-wet watercolor technique, then digitally refined to preserve every subtle color " +
				"shift. Printed on ethereal silk chiffon, this scarf offers an airy, cloud-like drape perfect for " +
				"layering or elegant evening wear.",
			PriceCents: 19500,
			Palette:    "Quartz + Alabaster",
			Fabric:     "Silk chiffon",
			Background: "linear-gradient(140deg, #fef6ec 0%, #fbe4d0 33%, #dbccee 100%)",
			Badge:      "New Arrival",
			Images: []string{
				"/products/lumen-veil-1.jpg",
				"/products/lumen-veil-2.jpg",
				"/products/lumen-veil-3.jpg",
				"/products/lumen-veil-4.jpg",
			},
			Variants: []Variant{
				{ID: "3-small", Size: "70cm × 70cm", InStock: true, SKU: "AUR-LV-70"},
				{ID: "3-large", Size: "90cm × 90cm", InStock: true, SKU: "AUR-LV-90"},
			},
			Details: Details{
				Dimensions: "70cm × 70cm or 90cm × 90cm",
				Weight:     "28g (small), 45g (large)",
				Care:       "Hand wash cold with pH-neutral detergent",
				Origin:     "Woven and printed in Como, Italy",
			},
			Features: []string{
				"100% silk chiffon (12 momme)",
				"Feather-light and semi-sheer",
				"Wet-on-wet watercolor technique",
				"Released in limited quantities",
				"Eco-friendly water-based inks",
				"Includes styling guide",
			},
			InStock: true,
		},
		{
			ID:          "4",
			Slug:        "cinder-atlas",
			Name:        "Cinder Atlas",
			Description: "Smoke-washed cartography with gold foil constellations and archival inks.",
			LongDescription: "Cinder Atlas reimagines ancient star maps through a contemporary lens, layering " +
				"smoke-washed cartographic elements with 22-karat gold foil constellations. The design juxtaposes " +
				"charcoal and gilt tones to evoke both exploration and luxury. Printed on heavyweight silk twill with " +
				"metallic foil application, this statement piece is ideal for collectors seeking bold, architectural " +
				"accessories with a narrative edge.",
			PriceCents:     23000,
			CompareAtCents: 28000,
			Palette:        "Char + Gilt",
			Fabric:         "Silk twill",
			Background:     "linear-gradient(130deg, #1d1612 0%, #3d2c26 45%, #c8a782 100%)",
			Badge:          "Studio Run",
			Images: []string{
				"/products/cinder-atlas-1.jpg",
				"/products/cinder-atlas-2.jpg",
				"/products/cinder-atlas-3.jpg",
				"/products/cinder-atlas-4.jpg",
			},
			Variants: []Variant{
				{ID: "4-small", Size: "70cm × 70cm", InStock: true, SKU: "AUR-CA-70"},
				{ID: "4-large", Size: "90cm × 90cm", InStock: true, SKU: "AUR-CA-90"},
			},
			Details: Details{
				Dimensions: "70cm × 70cm or 90cm × 90cm",
				Weight:     "48g (small), 75g (large)",
				Care:       "Dry clean only to preserve foil details",
				Origin:     "Woven and printed in Como, Italy",
			},
			Features: []string{
				"100% silk twill (22 momme)",
				"22-karat gold foil constellation details",
				"Double-sided print for versatility",
				"Exclusive studio collaboration",
				"Accompanied by artist statement",
				"Premium gift box with wax seal",
			},
			InStock: true,
			Limited: &LimitedEdition{Total: 50, Remaining: 12},
		},
	}
}

// Default builds the catalog from Seed. It panics on a bad seed, which can
// only happen from an editing mistake in this file.
func Default() *Catalog {
	c, err := New(Seed())
	if err != nil {
		panic(err)
	}
	return c
}

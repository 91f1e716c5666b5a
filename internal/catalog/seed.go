package catalog

// SeedItems returns the fixed sample listing set used by the seed command.
// Seeding replaces the whole collection, so these are safe to reuse as a
// known baseline in demos and tests.
func SeedItems() []Item {
	return []Item{
		{
			Title:        "Vintage Longboard Surfboard",
			Description:  "A 1970s single-fin longboard surfboard with original resin work. Some dings, fully watertight.",
			StartPrice:   120,
			ReservePrice: 250,
		},
		{
			Title:        "Antique Brass Paper Clip Holder",
			Description:  "Victorian brass desk holder for paper clips and letters, with a hinged lid shaped like a scallop shell.",
			StartPrice:   15,
			ReservePrice: 40,
		},
		{
			Title:        "Retro Typewriter",
			Description:  "Olivetti portable typewriter from the 1960s in working order, with original carry case and spare ribbon.",
			StartPrice:   60,
			ReservePrice: 110,
		},
		{
			Title:        "Acoustic Parlour Guitar",
			Description:  "Small-bodied parlour guitar with solid spruce top. Warm tone, recently refretted and set up.",
			StartPrice:   180,
			ReservePrice: 320,
		},
		{
			Title:        "Mid-Century Teak Sideboard",
			Description:  "Danish teak sideboard with sliding doors and four drawers. Light wear consistent with age.",
			StartPrice:   300,
			ReservePrice: 550,
		},
		{
			Title:        "Film Camera with Lens Kit",
			Description:  "35mm film camera body with 50mm and 135mm lenses, lens hoods, and a leather shoulder bag.",
			StartPrice:   90,
			ReservePrice: 160,
		},
		{
			Title:        "Cast Iron Garden Bench",
			Description:  "Heavy cast iron garden bench with hardwood slats, repainted in black. Seats two comfortably.",
			StartPrice:   75,
			ReservePrice: 140,
		},
		{
			Title:        "Surfboard Wall Rack",
			Description:  "Handmade hardwood wall rack that displays a surfboard horizontally. Fits most longboards.",
			StartPrice:   25,
			ReservePrice: 45,
		},
		{
			Title:        "Boxed Fountain Pen Set",
			Description:  "Fountain pen and ballpoint set in a presentation box, gold-plated trim, never inked.",
			StartPrice:   35,
			ReservePrice: 70,
		},
		{
			Title:        "Stack of Vintage Surf Magazines",
			Description:  "Forty issues of surf magazines from the 1980s, including several sought-after annuals.",
			StartPrice:   20,
			ReservePrice: 55,
		},
	}
}

package catalog

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	valid := Item{
		Title:        "Vintage Surfboard",
		Description:  "Classic longboard",
		StartPrice:   120,
		ReservePrice: 250,
	}

	tests := []struct {
		name      string
		mutate    func(*Item)
		wantField string
	}{
		{"valid", func(i *Item) {}, ""},
		{"empty title", func(i *Item) { i.Title = "" }, "title"},
		{"whitespace title", func(i *Item) { i.Title = "  \t " }, "title"},
		{"empty description", func(i *Item) { i.Description = "" }, "description"},
		{"whitespace description", func(i *Item) { i.Description = "   " }, "description"},
		{"zero start price", func(i *Item) { i.StartPrice = 0 }, "start_price"},
		{"negative start price", func(i *Item) { i.StartPrice = -1 }, "start_price"},
		{"zero reserve price", func(i *Item) { i.ReservePrice = 0 }, "reserve_price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := valid
			tt.mutate(&item)
			err := item.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("ValidationError.Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestValidateTrimsTitle(t *testing.T) {
	item := Item{
		Title:        "  Teak Sideboard  ",
		Description:  "Danish sideboard",
		StartPrice:   300,
		ReservePrice: 550,
	}
	if err := item.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if item.Title != "Teak Sideboard" {
		t.Errorf("Title = %q, want trimmed", item.Title)
	}
}

func TestSeedItemsAllValid(t *testing.T) {
	items := SeedItems()
	if len(items) == 0 {
		t.Fatal("SeedItems() returned nothing")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			t.Errorf("seed item %q invalid: %v", item.Title, err)
		}
		if item.ID != "" {
			t.Errorf("seed item %q carries a preset id", item.Title)
		}
	}
}

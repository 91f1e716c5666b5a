package main

import (
	"bufio"
	"path/filepath"
	"strings"
	"testing"

	"lotcat/internal/catalog"
	"lotcat/internal/storage"
)

func newDeleteTestDB(t *testing.T) (*storage.DB, []catalog.Item) {
	t.Helper()

	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.InsertMany([]catalog.Item{
		{Title: "Vintage Surfboard", Description: "Classic single-fin longboard", StartPrice: 120, ReservePrice: 250},
		{Title: "Brass Paper Clip", Description: "Oversized decorative paper clip", StartPrice: 12, ReservePrice: 30},
		{Title: "Teak Sideboard", Description: "Danish sideboard with sliding doors", StartPrice: 300, ReservePrice: 550},
	})
	if err != nil {
		t.Fatalf("InsertMany() error = %v", err)
	}

	items, err := db.FindAll()
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	return db, items
}

func TestChooseDeletionCancel(t *testing.T) {
	db, items := newDeleteTestDB(t)

	_, confirmed, err := chooseDeletion(bufio.NewReader(strings.NewReader("0\n")), items)
	if err != nil {
		t.Fatalf("chooseDeletion() error = %v", err)
	}
	if confirmed {
		t.Fatal("chooseDeletion() confirmed = true, want false after cancel")
	}

	count, err := db.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != len(items) {
		t.Errorf("Count() = %d, want %d unchanged", count, len(items))
	}
}

func TestChooseDeletionDeclined(t *testing.T) {
	db, items := newDeleteTestDB(t)

	// An empty answer and an explicit "n" both mean no.
	for _, input := range []string{"2\n\n", "2\nn\n"} {
		_, confirmed, err := chooseDeletion(bufio.NewReader(strings.NewReader(input)), items)
		if err != nil {
			t.Fatalf("chooseDeletion(%q) error = %v", input, err)
		}
		if confirmed {
			t.Fatalf("chooseDeletion(%q) confirmed = true, want false", input)
		}
	}

	count, err := db.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != len(items) {
		t.Errorf("Count() = %d, want %d unchanged", count, len(items))
	}
}

func TestChooseDeletionConfirmed(t *testing.T) {
	db, items := newDeleteTestDB(t)

	target, confirmed, err := chooseDeletion(bufio.NewReader(strings.NewReader("1\ny\n")), items)
	if err != nil {
		t.Fatalf("chooseDeletion() error = %v", err)
	}
	if !confirmed {
		t.Fatal("chooseDeletion() confirmed = false, want true")
	}
	if target.ID != items[0].ID {
		t.Errorf("target.ID = %q, want first listed item %q", target.ID, items[0].ID)
	}

	deleted, err := db.DeleteByID(target.ID)
	if err != nil {
		t.Fatalf("DeleteByID() error = %v", err)
	}
	if !deleted {
		t.Fatal("DeleteByID() = false, want true")
	}

	count, err := db.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != len(items)-1 {
		t.Errorf("Count() = %d, want %d", count, len(items)-1)
	}
	if got, _ := db.FindByID(target.ID); got != nil {
		t.Errorf("FindByID(%q) = %+v, want gone", target.ID, got)
	}
}

func TestChooseDeletionRepromptsOnInvalidInput(t *testing.T) {
	_, items := newDeleteTestDB(t)

	// Junk and out-of-range selections are retried until a valid one arrives.
	target, confirmed, err := chooseDeletion(bufio.NewReader(strings.NewReader("abc\n9\n3\nyes\n")), items)
	if err != nil {
		t.Fatalf("chooseDeletion() error = %v", err)
	}
	if !confirmed {
		t.Fatal("chooseDeletion() confirmed = false, want true")
	}
	if target.ID != items[2].ID {
		t.Errorf("target.ID = %q, want third listed item %q", target.ID, items[2].ID)
	}
}

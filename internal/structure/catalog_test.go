package structure

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	catalog, err := Default()
	if err != nil {
		t.Fatalf("Default error: %v", err)
	}
	if len(catalog.Groups) == 0 {
		t.Fatal("embedded catalog has no groups")
	}

	group, err := catalog.Lookup("GY")
	if err != nil {
		t.Fatalf("Lookup(GY) error: %v", err)
	}
	codes := make([]string, 0, len(group.Jahrgaenge))
	for _, grade := range group.Jahrgaenge {
		codes = append(codes, grade.Kuerzel)
	}
	want := []string{"05", "06", "07", "08", "09", "10", "EF", "Q1", "Q2"}
	if len(codes) != len(want) {
		t.Fatalf("GY grade levels = %v, want %v", codes, want)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("GY grade levels = %v, want %v", codes, want)
		}
	}
}

func TestDefaultCatalogVocationalPrefix(t *testing.T) {
	catalog, err := Default()
	if err != nil {
		t.Fatalf("Default error: %v", err)
	}
	group, err := catalog.Lookup("BK")
	if err != nil {
		t.Fatalf("Lookup(BK) error: %v", err)
	}
	for _, grade := range group.Jahrgaenge {
		if grade.Prefix != "BS" {
			t.Fatalf("grade %s prefix = %q, want BS", grade.Kuerzel, grade.Prefix)
		}
	}
}

func TestLookupUnknownForm(t *testing.T) {
	catalog, err := Default()
	if err != nil {
		t.Fatalf("Default error: %v", err)
	}
	if _, err := catalog.Lookup("XX"); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestParseRejectsEmptyAndInvalid(t *testing.T) {
	if _, err := Parse([]byte(`{"groups": []}`), "test"); err == nil {
		t.Fatal("expected error for catalog without groups")
	}
	if _, err := Parse([]byte(`{not json`), "test"); err == nil {
		t.Fatal("expected error for malformed document")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "struktur.json")
	doc := `{"groups": [{"name": "Testgruppe", "schulformen": ["ZZ"], "jahrgaenge": [{"kuerzel": "05", "beschreibung": "Jahrgang 05"}]}]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	catalog, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	group, err := catalog.Lookup("ZZ")
	if err != nil {
		t.Fatalf("Lookup(ZZ) error: %v", err)
	}
	if group.Name != "Testgruppe" || len(group.Jahrgaenge) != 1 {
		t.Fatalf("unexpected group: %+v", group)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

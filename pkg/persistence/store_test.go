package persistence

import (
	"path/filepath"
	"testing"

	"github.com/sbml-kit/sbml-go/pkg/core"
)

func testDocument() *core.Document {
	doc := core.NewDocument(3, 2)
	m := doc.CreateModel("cell")
	p := m.CreateParameter("k1")
	p.SetValue(0.1)
	return doc
}

func TestStoreSaveLoad(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "docs"))

	if err := store.Save("cell", testDocument()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	doc, err := store.Load("cell")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc == nil {
		t.Fatal("expected document, got nil")
	}

	m := doc.Model()
	if m == nil || m.ID() != "cell" {
		t.Errorf("unexpected model: %+v", m)
	}
	p := m.Parameter("k1")
	if p == nil || !p.IsSetValue() || p.Value() != 0.1 {
		t.Errorf("unexpected parameter: %+v", p)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store := NewStore(t.TempDir())

	doc, err := store.Load("nope")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc != nil {
		t.Errorf("expected nil for missing snapshot, got %+v", doc)
	}
}

func TestStoreList(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "docs"))

	names, err := store.List()
	if err != nil {
		t.Fatalf("List on empty store: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("expected empty list, got %v", names)
	}

	for _, name := range []string{"b", "a", "c"} {
		if err := store.Save(name, testDocument()); err != nil {
			t.Fatalf("Save %q: %v", name, err)
		}
	}

	names, err = store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("expected %v, got %v", want, names)
			break
		}
	}
}

func TestStoreDelete(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "docs"))

	if err := store.Save("cell", testDocument()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete("cell"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	doc, err := store.Load("cell")
	if err != nil {
		t.Fatalf("Load after delete: %v", err)
	}
	if doc != nil {
		t.Error("expected nil after delete")
	}

	// Deleting again is not an error.
	if err := store.Delete("cell"); err != nil {
		t.Errorf("Delete of missing snapshot: %v", err)
	}
}

func TestStoreRejectsBadNames(t *testing.T) {
	store := NewStore(t.TempDir())

	for _, name := range []string{"", "../escape", "a/b", `a\b`} {
		if err := store.Save(name, testDocument()); err == nil {
			t.Errorf("Save(%q): expected error", name)
		}
	}
}

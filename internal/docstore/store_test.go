package docstore

import (
	"errors"
	"testing"
)

func TestGet_Missing(t *testing.T) {
	m := NewMemory()
	_, err := m.Get("nope.txt")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPutGet(t *testing.T) {
	m := NewMemory()
	m.Put("a.md", "alpha")

	got, err := m.Get("a.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "alpha" {
		t.Errorf("expected %q, got %q", "alpha", got)
	}

	m.Put("a.md", "beta")
	got, _ = m.Get("a.md")
	if got != "beta" {
		t.Errorf("expected overwrite to %q, got %q", "beta", got)
	}
}

func TestList_Sorted(t *testing.T) {
	m := NewMemory()
	m.Put("b.md", "")
	m.Put("a.md", "")
	m.Put("c.md", "")

	ids := m.List()
	want := []string{"a.md", "b.md", "c.md"}
	if len(ids) != len(want) {
		t.Fatalf("expected %d ids, got %d", len(want), len(ids))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d]: expected %q, got %q", i, want[i], ids[i])
		}
	}
}

func TestNewSeeded(t *testing.T) {
	m := NewSeeded()
	if len(m.List()) != 6 {
		t.Fatalf("expected 6 seeded docs, got %d", len(m.List()))
	}
	content, err := m.Get("report.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content == "" {
		t.Error("expected non-empty seeded content")
	}
}

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefault(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Projects) != 6 {
		t.Fatalf("expected 6 projects, got %d", len(c.Projects))
	}
	if len(c.ReadyHouses) != 3 {
		t.Fatalf("expected 3 ready houses, got %d", len(c.ReadyHouses))
	}

	p, ok := c.Project("modern-villa-construction")
	if !ok {
		t.Fatalf("expected generated slug for the first project")
	}
	if p.Location != "Bangalore, Karnataka" {
		t.Fatalf("unexpected project %#v", p)
	}

	h, ok := c.ReadyHouse("modern-3bhk-villa")
	if !ok {
		t.Fatalf("expected generated slug for the first ready house")
	}
	if h.Bedrooms != 3 || len(h.Features) == 0 {
		t.Fatalf("unexpected ready house %#v", h)
	}

	if _, ok := c.Project("nope"); ok {
		t.Fatalf("unknown slug should not match")
	}
}

func TestParseKeepsExplicitSlugs(t *testing.T) {
	c, err := Parse([]byte(`
projects:
  - title: Café Résidence
  - title: Riverside Plot
    slug: riverside
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := []string{c.Projects[0].Slug, c.Projects[1].Slug}
	if diff := cmp.Diff([]string{"cafe-residence", "riverside"}, got); diff != "" {
		t.Fatalf("slugs mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsDuplicateSlugs(t *testing.T) {
	_, err := Parse([]byte(`
ready_houses:
  - title: Green Villa
  - title: green villa
`))
	if err == nil {
		t.Fatalf("expected duplicate slug error")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("projects:\n  - title: One\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Projects) != 1 || c.Projects[0].Slug != "one" {
		t.Fatalf("unexpected catalog %#v", c)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for a missing file")
	}
}

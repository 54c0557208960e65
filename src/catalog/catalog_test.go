package catalog

import (
	"context"
	"errors"
	"testing"
)

func TestStaticCatalogOrderAndLookup(t *testing.T) {
	c := NewStaticCatalog([]Profile{
		{ID: "a", Name: "Alpha"},
		{ID: "b", Name: "Beta"},
		{ID: ""}, // invalid, skipped
	})

	profiles, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}
	if profiles[0].Name != "Alpha" || profiles[1].Name != "Beta" {
		t.Fatalf("registration order not preserved: %+v", profiles)
	}

	p, err := c.Get(context.Background(), "b")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Name != "Beta" {
		t.Fatalf("unexpected profile %+v", p)
	}
}

func TestStaticCatalogNotFound(t *testing.T) {
	c := DefaultCatalog()
	if _, err := c.Get(context.Background(), "999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStaticCatalogDuplicate(t *testing.T) {
	c := NewStaticCatalog(nil)
	if err := c.Register(Profile{ID: "x"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if err := c.Register(Profile{ID: "x"}); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}

func TestFilterMatchesNameDescriptionTags(t *testing.T) {
	profiles := DefaultProfiles()

	byName := Filter(profiles, "resume", CategoryAll)
	if len(byName) != 1 || byName[0].Name != "ResumeAI" {
		t.Fatalf("name search failed: %+v", byName)
	}

	byTag := Filter(profiles, "security", CategoryAll)
	if len(byTag) != 1 || byTag[0].Name != "CodeReviewer" {
		t.Fatalf("tag search failed: %+v", byTag)
	}

	micro := Filter(profiles, "", CategoryMicro)
	for _, p := range micro {
		if p.Category != CategoryMicro {
			t.Fatalf("category filter leaked %+v", p)
		}
	}
	if len(micro) != 2 {
		t.Fatalf("expected 2 micro agents, got %d", len(micro))
	}
}

func TestAverageRating(t *testing.T) {
	if got := AverageRating(nil); got != 0 {
		t.Fatalf("AverageRating(nil) = %v", got)
	}
	got := AverageRating([]Profile{{Rating: 4}, {Rating: 5}})
	if got != 4.5 {
		t.Fatalf("AverageRating = %v, want 4.5", got)
	}
}

func TestFeaturedVerifiedOnly(t *testing.T) {
	featured := Featured(DefaultProfiles(), 3)
	if len(featured) != 3 {
		t.Fatalf("expected 3 featured, got %d", len(featured))
	}
	for _, p := range featured {
		if !p.Verified {
			t.Fatalf("unverified agent featured: %+v", p)
		}
	}
	if featured[0].Name != "ResumeAI" {
		t.Fatalf("catalog order not preserved: %+v", featured)
	}
}

package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrNotFound is returned when a referenced agent is absent from the
// catalog. Callers surface it as an empty-state view, not a crash.
var ErrNotFound = errors.New("agent not found")

// Category buckets marketplace agents.
type Category string

const (
	CategoryMicro   Category = "micro"
	CategoryMacro   Category = "macro"
	CategoryPopular Category = "popular"
)

// Profile is one cataloged agent. Catalog data is immutable: the core
// reads it, never mutates it.
type Profile struct {
	ID              string
	Name            string
	Description     string
	LongDescription string
	Price           float64
	Currency        string
	Rating          float64
	TotalUses       int
	Author          string
	Category        Category
	Image           string
	Tags            []string
	Verified        bool
	CreatedAt       string
}

// Catalog is the read-only collaborator: an ordered list plus
// lookup-by-id. No mutation interface exists for consumers.
type Catalog interface {
	List(ctx context.Context) ([]Profile, error)
	Get(ctx context.Context, id string) (Profile, error)
}

// StaticCatalog is the default in-memory Catalog implementation.
type StaticCatalog struct {
	mu       sync.RWMutex
	profiles map[string]Profile
	order    []string
}

// NewStaticCatalog constructs a catalog seeded with the provided profiles.
func NewStaticCatalog(profiles []Profile) *StaticCatalog {
	c := &StaticCatalog{profiles: make(map[string]Profile)}
	for _, p := range profiles {
		_ = c.Register(p) // skip invalid entries silently
	}
	return c
}

// Register adds a profile keyed by its trimmed id. Duplicate ids return an error.
func (c *StaticCatalog) Register(p Profile) error {
	key := strings.TrimSpace(p.ID)
	if key == "" {
		return fmt.Errorf("profile id is empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.profiles[key]; exists {
		return fmt.Errorf("agent %s already registered", p.ID)
	}
	c.profiles[key] = p
	c.order = append(c.order, key)
	return nil
}

// List returns a snapshot of the profiles in registration order.
func (c *StaticCatalog) List(ctx context.Context) ([]Profile, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	profiles := make([]Profile, 0, len(c.order))
	for _, key := range c.order {
		profiles = append(profiles, c.profiles[key])
	}
	return profiles, nil
}

// Get retrieves a profile by id.
func (c *StaticCatalog) Get(ctx context.Context, id string) (Profile, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.profiles[strings.TrimSpace(id)]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

// Package content loads the brochure dataset: villa constants, reviews,
// gallery images, amenities, attractions and restaurants.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"villaoasis/internal/domain"
)

//go:embed villa.toml
var embedded []byte

var (
	ErrNoReviews         = errors.New("content: no reviews")
	ErrNoImages          = errors.New("content: no gallery images")
	ErrUnknownAttraction = errors.New("content: unknown attraction")
)

// Catalog is the immutable dataset behind every section
type Catalog struct {
	Villa       domain.Villa          `toml:"villa"`
	Contact     domain.Contact        `toml:"contact"`
	Buzz        []string              `toml:"buzz"`
	Reviews     []domain.Review       `toml:"reviews"`
	Gallery     []domain.GalleryImage `toml:"gallery"`
	Amenities   []domain.Amenity      `toml:"amenities"`
	Attractions []domain.Attraction   `toml:"attractions"`
	Restaurants []domain.Restaurant   `toml:"restaurants"`
}

// Embedded returns the dataset compiled into the binary
func Embedded() (*Catalog, error) {
	return Parse(embedded)
}

// EmbeddedTOML returns the raw embedded dataset, for writing a starting copy
func EmbeddedTOML() []byte {
	out := make([]byte, len(embedded))
	copy(out, embedded)
	return out
}

// Load reads a dataset from path. An empty path selects the embedded one.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Embedded()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a TOML dataset. Unknown keys are rejected so
// typos in an override file surface at startup.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("failed to parse content: %s", strict.String())
		}
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the invariants the carousels depend on
func (c *Catalog) Validate() error {
	if len(c.Reviews) == 0 {
		return ErrNoReviews
	}
	if len(c.Gallery) == 0 {
		return ErrNoImages
	}
	seen := make(map[string]bool, len(c.Attractions))
	for _, a := range c.Attractions {
		if a.Slug == "" {
			return fmt.Errorf("content: attraction %q has no slug", a.Title)
		}
		if seen[a.Slug] {
			return fmt.Errorf("content: duplicate attraction slug %q", a.Slug)
		}
		seen[a.Slug] = true
	}
	for i, r := range c.Reviews {
		if r.Rating < 0 || r.Rating > 10 {
			return fmt.Errorf("content: review %d rating %d outside 0..10", i+1, r.Rating)
		}
	}
	return nil
}

// AttractionBySlug looks up an attraction detail page
func (c *Catalog) AttractionBySlug(slug string) (domain.Attraction, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, a := range c.Attractions {
		if a.Slug == slug {
			return a, nil
		}
	}
	return domain.Attraction{}, fmt.Errorf("%w: %s", ErrUnknownAttraction, slug)
}

// Headline returns the buzz phrases shown on the home section, at most four
func (c *Catalog) Headline() []string {
	return c.Buzz[:min(4, len(c.Buzz))]
}

package catalog

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/aurakai/gatenav/internal/carousel"
)

type fileGate struct {
	ID          string `toml:"id"`
	Route       string `toml:"route"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Region      string `toml:"region"`
	Accent      string `toml:"accent"`
	ComingSoon  bool   `toml:"coming_soon"`
	Protected   bool   `toml:"protected"`
}

type fileCatalog struct {
	Gates []fileGate `toml:"gate"`
}

// LoadFile reads a catalog from a TOML file of [[gate]] tables.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes a TOML catalog document.
func Parse(doc string) (Catalog, error) {
	var fc fileCatalog
	meta, err := toml.Decode(doc, &fc)
	if err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Catalog{}, fmt.Errorf("decode catalog: unknown key %s", undecoded[0])
	}
	gates := make([]carousel.Gate, 0, len(fc.Gates))
	for _, g := range fc.Gates {
		gates = append(gates, carousel.Gate{
			ID:          g.ID,
			Route:       g.Route,
			Title:       g.Title,
			Description: g.Description,
			Region:      g.Region,
			Accent:      g.Accent,
			ComingSoon:  g.ComingSoon,
			Protected:   g.Protected,
		})
	}
	return New(gates)
}

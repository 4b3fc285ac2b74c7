package catalog

import (
	"errors"
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/aurakai/gatenav/internal/carousel"
)

var (
	ErrDuplicateID    = errors.New("catalog: duplicate gate id")
	ErrDuplicateRoute = errors.New("catalog: duplicate gate route")
	ErrEmpty          = errors.New("catalog: no gates")
)

var (
	idPattern     = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
	routePattern  = regexp.MustCompile(`^[a-z0-9_/]+$`)
	accentPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// Catalog is an immutable, ordered gate list. It satisfies carousel.Catalog.
type Catalog struct {
	gates []carousel.Gate
}

// New validates gates and returns them as a catalog.
func New(gates []carousel.Gate) (Catalog, error) {
	if err := Validate(gates); err != nil {
		return Catalog{}, err
	}
	return Catalog{gates: append([]carousel.Gate(nil), gates...)}, nil
}

// Gates returns a copy so callers cannot mutate the catalog.
func (c Catalog) Gates() []carousel.Gate {
	return append([]carousel.Gate(nil), c.gates...)
}

func (c Catalog) Len() int { return len(c.gates) }

func (c Catalog) ByID(id string) (carousel.Gate, bool) {
	for _, g := range c.gates {
		if g.ID == id {
			return g, true
		}
	}
	return carousel.Gate{}, false
}

func (c Catalog) ByRoute(route string) (carousel.Gate, bool) {
	for _, g := range c.gates {
		if g.Route == route {
			return g, true
		}
	}
	return carousel.Gate{}, false
}

// ByRegion returns the gates of one region in catalog order. An empty
// region returns everything.
func (c Catalog) ByRegion(region string) []carousel.Gate {
	if region == "" {
		return c.Gates()
	}
	var out []carousel.Gate
	for _, g := range c.gates {
		if g.Region == region {
			out = append(out, g)
		}
	}
	return out
}

// Validate checks every gate and rejects duplicate ids or routes.
func Validate(gates []carousel.Gate) error {
	if len(gates) == 0 {
		return ErrEmpty
	}
	ids := make(map[string]struct{}, len(gates))
	routes := make(map[string]struct{}, len(gates))
	for i, g := range gates {
		if err := validateGate(g); err != nil {
			return fmt.Errorf("gate %d (%s): %w", i, g.ID, err)
		}
		if _, ok := ids[g.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, g.ID)
		}
		if _, ok := routes[g.Route]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateRoute, g.Route)
		}
		ids[g.ID] = struct{}{}
		routes[g.Route] = struct{}{}
	}
	return nil
}

func validateGate(g carousel.Gate) error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.ID, validation.Required, validation.Match(idPattern)),
		validation.Field(&g.Route, validation.Required, validation.Match(routePattern)),
		validation.Field(&g.Title, validation.Required, validation.Length(1, 64)),
		validation.Field(&g.Accent, validation.Match(accentPattern)),
	)
}

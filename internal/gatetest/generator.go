// Package gatetest generates catalogs and tap sequences for property tests.
package gatetest

import (
	"fmt"
	"math/rand"

	"github.com/aurakai/gatenav/internal/carousel"
	"github.com/aurakai/gatenav/internal/catalog"
)

// Gates returns n random, valid gates. Roughly a third are protected and a
// tenth are marked coming soon.
func Gates(r *rand.Rand, n int) []carousel.Gate {
	out := make([]carousel.Gate, 0, n)
	for i := 0; i < n; i++ {
		region := catalog.RegionOrder[r.Intn(len(catalog.RegionOrder))]
		out = append(out, carousel.Gate{
			ID:          fmt.Sprintf("gate-%d", i),
			Route:       fmt.Sprintf("gate_%d", i),
			Title:       fmt.Sprintf("Gate %d", i),
			Description: "generated gate",
			Region:      region,
			Protected:   r.Intn(3) == 0,
			ComingSoon:  r.Intn(10) == 0,
		})
	}
	return out
}

// TapTimes returns n increasing timestamps with gaps drawn from [0, maxGap).
func TapTimes(r *rand.Rand, n int, maxGap int64) []int64 {
	out := make([]int64, 0, n)
	var t int64
	for i := 0; i < n; i++ {
		t += r.Int63n(maxGap)
		out = append(out, t)
	}
	return out
}

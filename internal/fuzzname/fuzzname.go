// Package fuzzname hands out human-readable names for generated fuzz
// cases, so a generated case can be reported as "case silly-mongoose-42"
// instead of a bare index. Adapted from the
// god_of_war_browser RandomNameGenerator, which does the same thing for
// synthesized asset names during testing.
package fuzzname

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/Pallinder/go-randomdata"
)

var customRandOnce sync.Once

// Generator hands out unique names for a single test run.
type Generator map[string]struct{}

// New returns a Generator seeded deterministically, so repeated test
// runs with the same seed produce the same sequence of names. Only the
// first call to New in a process seeds the shared random source; the
// seed passed to later calls is ignored.
func New(seed int64) Generator {
	customRandOnce.Do(func() {
		randomdata.CustomRand(rand.New(rand.NewSource(seed)))
	})
	return make(Generator)
}

// Name returns a new, not-yet-seen name for this generator, suffixed
// with idx so it stays unique even across collisions in the underlying
// word list.
func (g Generator) Name(idx int) string {
	for {
		candidate := fmt.Sprintf("%s-%d", randomdata.SillyName(), idx)
		if _, exists := g[candidate]; !exists {
			g[candidate] = struct{}{}
			return candidate
		}
	}
}

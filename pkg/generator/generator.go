// Package generator produces unique names and entities with random friend sets.
package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/sherine-k/onboarding/pkg/entity"
)

// DefaultFriendCount is the number of friends given to a generated entity.
const DefaultFriendCount = 5

// ErrGenerationExhausted is returned when the name corpus cannot satisfy a
// uniqueness request.
var ErrGenerationExhausted = errors.New("generation exhausted")

// Generator draws names and friend sets from a random source
type Generator struct {
	rng    *rand.Rand
	corpus []string
}

// New creates a generator over the built-in name corpus
func New(rng *rand.Rand) *Generator {
	return &Generator{
		rng:    rng,
		corpus: firstNames,
	}
}

// WithCorpus replaces the name corpus
func (g *Generator) WithCorpus(names []string) *Generator {
	g.corpus = names
	return g
}

// Name draws a single random name; it may repeat earlier draws.
func (g *Generator) Name() string {
	if len(g.corpus) == 0 {
		return ""
	}
	return g.corpus[g.rng.IntN(len(g.corpus))]
}

// UniqueNames draws count distinct names, rejecting repeats.
func (g *Generator) UniqueNames(count int) ([]string, error) {
	if count <= 0 {
		return []string{}, nil
	}
	if available := distinct(g.corpus); available < count {
		return nil, fmt.Errorf("%w: need %d distinct names, corpus has %d", ErrGenerationExhausted, count, available)
	}

	names := make([]string, 0, count)
	seen := make(map[string]struct{}, count)
	for len(names) < count {
		name := g.Name()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}

// UniqueName draws one name that is not in taken.
func (g *Generator) UniqueName(taken map[string]struct{}) (string, error) {
	free := make([]string, 0, len(g.corpus))
	for _, name := range g.corpus {
		if _, ok := taken[name]; !ok {
			free = append(free, name)
		}
	}
	if len(free) == 0 {
		return "", fmt.Errorf("%w: all %d corpus names are taken", ErrGenerationExhausted, distinct(g.corpus))
	}
	return free[g.rng.IntN(len(free))], nil
}

// BuildEntity creates an entity named name with up to friendCount friends
// drawn from pool. Friends are stubs without friends of their own.
func (g *Generator) BuildEntity(name string, pool []string, friendCount int) *entity.Entity {
	candidates := make([]string, 0, len(pool))
	for _, candidate := range pool {
		if candidate != name {
			candidates = append(candidates, candidate)
		}
	}
	return entity.New(name, PickRandomDistinct(g.rng, candidates, friendCount)...)
}

// SeedPopulation creates size uniquely named entities, each befriending up to
// friendCount of the others.
func (g *Generator) SeedPopulation(size, friendCount int) (*entity.Population, error) {
	names, err := g.UniqueNames(size)
	if err != nil {
		return nil, err
	}

	entities := make([]*entity.Entity, 0, size)
	for _, name := range names {
		entities = append(entities, g.BuildEntity(name, names, friendCount))
	}
	return entity.NewPopulation(entities...)
}

// PickRandomDistinct samples up to count distinct items without replacement.
// When count covers every distinct item, all of them are returned in random order.
func PickRandomDistinct[T comparable](rng *rand.Rand, items []T, count int) []T {
	if count <= 0 {
		return []T{}
	}

	unique := make([]T, 0, len(items))
	seen := make(map[T]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		unique = append(unique, item)
	}

	n := min(count, len(unique))
	// partial Fisher-Yates over the first n slots
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(unique)-i)
		unique[i], unique[j] = unique[j], unique[i]
	}
	return unique[:n]
}

func distinct(names []string) int {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		seen[name] = struct{}{}
	}
	return len(seen)
}

package generate

import (
	"math/rand"
	"time"

	"github.com/fakemp/collection-gen/internal/model"
)

// Definition describes one attribute that can appear on a token.
//
// Exactly one of the two value sources is set: a closed integer range
// (Min/Max, inclusive) or an enumerated set of string choices.
type Definition struct {
	Name     string
	Min, Max int
	Choices  []string
}

// Ranged reports whether values are sampled from the integer range.
func (d Definition) Ranged() bool {
	return len(d.Choices) == 0
}

// Catalog is the fixed set of attribute definitions tokens draw from.
//
// The catalog is read-only; a token's attribute list holds at most two
// entries, each from a distinct definition.
var Catalog = []Definition{
	{Name: "Height", Min: 150, Max: 210},
	{Name: "Hair", Choices: []string{"Black", "Brown", "Blonde", "Red", "Gray"}},
	{Name: "Age", Min: 18, Max: 100},
	{Name: "Eye Color", Choices: []string{"Blue", "Green", "Brown", "Hazel", "Gray"}},
	{Name: "Nationality", Choices: []string{"American", "British", "Canadian", "Australian", "French", "German"}},
	{Name: "Hobby", Choices: []string{"Photography", "Painting", "Hiking", "Gaming", "Cooking", "Traveling"}},
}

// Generator produces random attribute lists for tokens.
//
// Generation is pure sampling with no I/O: every call re-samples
// independently from the catalog. Tests pass a seeded rand.Rand to make
// the output reproducible.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator.
//
// A nil rng gets a time-seeded source, which is what production callers
// want; there is no determinism requirement for generated attributes.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate returns 0, 1, or 2 attributes drawn without replacement from
// the catalog. The count is uniform over {0,1,2}; each chosen definition
// contributes one value sampled uniformly from its range or its set.
func (g *Generator) Generate() []model.Attribute {
	count := g.rng.Intn(3)
	attributes := make([]model.Attribute, 0, count)

	for _, idx := range g.rng.Perm(len(Catalog))[:count] {
		def := Catalog[idx]
		attr := model.Attribute{Name: def.Name}
		if def.Ranged() {
			attr.Value = def.Min + g.rng.Intn(def.Max-def.Min+1)
		} else {
			attr.Value = def.Choices[g.rng.Intn(len(def.Choices))]
		}
		attributes = append(attributes, attr)
	}

	return attributes
}

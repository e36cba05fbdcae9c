package generate

import (
	"math/rand"
	"testing"
)

func TestGenerator_Properties(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(1)))

	counts := make(map[int]int)
	for i := 0; i < 2000; i++ {
		attrs := gen.Generate()

		if len(attrs) > 2 {
			t.Fatalf("attribute list too long: %d", len(attrs))
		}
		counts[len(attrs)]++

		seen := make(map[string]bool)
		for _, attr := range attrs {
			if seen[attr.Name] {
				t.Fatalf("duplicate attribute %q in one list", attr.Name)
			}
			seen[attr.Name] = true

			def, ok := findDefinition(attr.Name)
			if !ok {
				t.Fatalf("attribute %q not in catalog", attr.Name)
			}

			switch v := attr.Value.(type) {
			case int:
				if !def.Ranged() {
					t.Fatalf("%q: got int value for enumerated attribute", attr.Name)
				}
				if v < def.Min || v > def.Max {
					t.Fatalf("%q: value %d outside [%d, %d]", attr.Name, v, def.Min, def.Max)
				}
			case string:
				if def.Ranged() {
					t.Fatalf("%q: got string value for ranged attribute", attr.Name)
				}
				if !contains(def.Choices, v) {
					t.Fatalf("%q: value %q not in choices", attr.Name, v)
				}
			default:
				t.Fatalf("%q: unexpected value type %T", attr.Name, attr.Value)
			}
		}
	}

	// All three list lengths should occur over a large sample.
	for _, n := range []int{0, 1, 2} {
		if counts[n] == 0 {
			t.Errorf("no lists of length %d in 2000 samples", n)
		}
	}
}

func TestGenerator_NeverNil(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(7)))
	for i := 0; i < 100; i++ {
		if gen.Generate() == nil {
			t.Fatal("Generate returned nil slice")
		}
	}
}

func TestCatalog_Definitions(t *testing.T) {
	if len(Catalog) != 6 {
		t.Fatalf("catalog has %d definitions, want 6", len(Catalog))
	}
	for _, def := range Catalog {
		if def.Ranged() && def.Min >= def.Max {
			t.Errorf("%q: invalid range [%d, %d]", def.Name, def.Min, def.Max)
		}
	}
}

func findDefinition(name string) (Definition, bool) {
	for _, def := range Catalog {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

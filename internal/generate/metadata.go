package generate

import (
	"fmt"

	"github.com/fakemp/collection-gen/internal/config"
	"github.com/fakemp/collection-gen/internal/model"
)

// Synthesizer builds one metadata record per item index.
//
// Records are deterministic in everything except the attribute list:
// name, description, image reference, and tier all derive from the index
// and the configured collection shape.
type Synthesizer struct {
	settings   *config.Settings
	attributes *Generator
}

// NewSynthesizer creates a Synthesizer.
//
// A nil attribute generator gets a time-seeded one.
func NewSynthesizer(settings *config.Settings, attributes *Generator) *Synthesizer {
	if attributes == nil {
		attributes = NewGenerator(nil)
	}
	return &Synthesizer{settings: settings, attributes: attributes}
}

// TokenTypeFor assigns the rarity tier for a 0-based item index.
//
// The collection is partitioned contiguously: the first N-K1-K2 indices
// are Folio, the next K2 are Edition, and the trailing K1 are "One of
// one", where K1 is the one-of-one count and K2 the edition count.
func (s *Synthesizer) TokenTypeFor(index int) model.TokenType {
	n := s.settings.NumItems
	k1 := s.settings.NumOneOfOne
	k2 := s.settings.NumEdition

	switch {
	case index < n-(k1+k2):
		return model.TokenTypeFolio
	case index < n-k1:
		return model.TokenTypeEdition
	default:
		return model.TokenTypeOneOfOne
	}
}

// Metadata builds the full record for an item index.
//
// The attribute list is freshly sampled on every call; everything else is
// stable across runs with the same settings.
func (s *Synthesizer) Metadata(index int) model.Metadata {
	return model.Metadata{
		Name:        fmt.Sprintf("Fake MP %d", index),
		Description: fmt.Sprintf("This is the item with id %d in the fake MP collection", index),
		Image:       model.ImageURI(s.settings.IPFSFolder, index),
		TokenType:   s.TokenTypeFor(index),
		Attributes:  s.attributes.Generate(),
	}
}

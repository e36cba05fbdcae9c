package model

import (
	"fmt"
	"strings"
)

// TokenType is the rarity tier label assigned to a collection item.
//
// Tiers are assigned purely by index position: the collection is a
// contiguous block of Folio items, followed by a block of Edition items,
// followed by a trailing block of "One of one" items.
type TokenType string

const (
	TokenTypeFolio    TokenType = "Folio"
	TokenTypeEdition  TokenType = "Edition"
	TokenTypeOneOfOne TokenType = "One of one"
)

// String returns the tier label as it appears in metadata files.
func (t TokenType) String() string {
	return string(t)
}

// Valid reports whether t is one of the three known tiers.
func (t TokenType) Valid() bool {
	switch t {
	case TokenTypeFolio, TokenTypeEdition, TokenTypeOneOfOne:
		return true
	}
	return false
}

// Attribute is a single named trait on a token.
//
// Value is either an int (sampled from a bounded range) or a string
// (sampled from an enumerated set), depending on the attribute definition
// it was generated from.
type Attribute struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Metadata is one token's metadata record.
//
// A record is built fresh from an index plus configuration constants,
// serialized immediately, and never mutated afterward — the file on disk
// is its only durable form. Field order matters: the JSON keys in the
// written file follow the struct order below.
//
// Example:
//
//	{
//	  "name": "Fake MP 42",
//	  "description": "This is the item with id 42 in the fake MP collection",
//	  "image": "ipfs://Qm.../42.jpg",
//	  "token_type": "Folio",
//	  "attributes": [{"name": "Age", "value": 34}]
//	}
type Metadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	TokenType   TokenType   `json:"token_type"`
	Attributes  []Attribute `json:"attributes"`
}

// ImageURI builds the image reference for an item index.
//
// The folder is an opaque configured prefix (typically an IPFS folder);
// a trailing slash is tolerated and stripped. No validation is done that
// the result is a well-formed URI.
//
//	ImageURI("ipfs://QmABC/", 7) // "ipfs://QmABC/7.jpg"
func ImageURI(folder string, index int) string {
	return fmt.Sprintf("%s/%d.jpg", strings.TrimRight(folder, "/"), index)
}

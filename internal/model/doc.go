// Package model defines the data types for a placeholder NFT collection:
// token metadata records, their attributes, and the rarity tier labels.
//
// Records are value types with no behavior beyond construction helpers.
// They are created by the generate package, persisted once by the metadata
// package, and never mutated afterward.
package model

// Package generate produces placeholder NFT metadata: random trait lists
// sampled from a fixed attribute catalog, and full per-index records with
// position-based rarity tiers.
//
// # Attributes
//
//	gen := generate.NewGenerator(nil)
//	attrs := gen.Generate() // 0-2 distinct traits, values in range/set
//
// # Records
//
//	synth := generate.NewSynthesizer(settings, nil)
//	md := synth.Metadata(42)
//	// md.TokenType assigned by trailing-block position,
//	// md.Image points into the configured IPFS folder
package generate

// Package config provides configuration management for collection-gen.
//
// Settings are stored as a JSON file and validated once at startup; after
// Validate passes the rest of the code treats them as trusted constants.
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// 520 items, last 10 "One of one", the 10 before those "Edition"
//	// metadata under data/json-metadata, images under data/downloaded-images
//
// # Loading from File
//
//	settings, err := config.Load("config.json")
//	// Missing file falls back to defaults.
//	// The IPFS_FOLDER environment variable overrides ipfs_folder.
//
// # Validation
//
//	if err := settings.Validate(); err != nil {
//	    // counts out of range, missing paths, or the tier counts
//	    // leave no room for Folio items
//	}
package config

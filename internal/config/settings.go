package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// EnvIPFSFolder overrides Settings.IPFSFolder when set. The variable is
// typically supplied through a .env file loaded at startup.
const EnvIPFSFolder = "IPFS_FOLDER"

// Settings holds all configuration for both pipelines.
//
// The two pipelines share only NumItems and the tier counts; everything
// else belongs to exactly one of them. Settings are trusted after Validate
// passes — components do not re-check them.
type Settings struct {
	// Collection shape
	NumItems    int `json:"num_items"`
	NumOneOfOne int `json:"num_one_of_one"`
	NumEdition  int `json:"num_edition"`

	// Metadata generation
	MetadataPath       string `json:"metadata_path"`
	SeparateTokenTypes bool   `json:"separate_token_types"`
	IPFSFolder         string `json:"ipfs_folder"`

	// Image download
	DownloadPath   string  `json:"download_path"`
	ImageBaseURL   string  `json:"image_base_url"`
	RequestDelay   float64 `json:"request_delay"`
	RequestTimeout float64 `json:"request_timeout"`
	ResizeImages   bool    `json:"resize_images"`
	ImageMaxSize   int     `json:"image_max_size"`
	JPEGQuality    int     `json:"jpeg_quality"`
}

// DefaultSettings returns settings with default values.
//
// The defaults describe the original fake-MP collection: 520 items, the
// last 10 labeled "One of one" and the 10 before those labeled "Edition",
// images pulled from the this-mp-does-not-exist generator.
func DefaultSettings() *Settings {
	return &Settings{
		NumItems:    520,
		NumOneOfOne: 10,
		NumEdition:  10,

		MetadataPath:       filepath.Join("data", "json-metadata"),
		SeparateTokenTypes: true,
		IPFSFolder:         "ipfs://REPLACE_WITH_YOUR_IPFS_FOLDER",

		DownloadPath:   filepath.Join("data", "downloaded-images"),
		ImageBaseURL:   "https://vole.wtf/this-mp-does-not-exist/mp/mp",
		RequestDelay:   0.5,
		RequestTimeout: 60,
		ResizeImages:   false,
		ImageMaxSize:   1000,
		JPEGQuality:    90,
	}
}

// Load reads settings from a JSON file and applies environment overrides.
//
// A missing file yields the defaults. The IPFS_FOLDER environment variable,
// when non-empty, replaces the ipfs_folder value from the file so the
// content hash never has to live in version-controlled config.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if folder := os.Getenv(EnvIPFSFolder); folder != "" {
		settings.IPFSFolder = folder
	}

	return settings, nil
}

// Save writes settings to a JSON file, creating parent directories.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks the settings once at startup.
//
// Beyond field-level checks it enforces that the two trailing tier blocks
// leave room for at least one Folio item; allowing the tiers to swallow
// the whole collection would silently produce an empty or inconsistent
// Folio block instead of an error.
func (s *Settings) Validate() error {
	err := validation.ValidateStruct(s,
		validation.Field(&s.NumItems, validation.Required, validation.Min(1)),
		validation.Field(&s.NumOneOfOne, validation.Min(0)),
		validation.Field(&s.NumEdition, validation.Min(0)),
		validation.Field(&s.MetadataPath, validation.Required),
		validation.Field(&s.IPFSFolder, validation.Required),
		validation.Field(&s.DownloadPath, validation.Required),
		validation.Field(&s.ImageBaseURL, validation.Required),
		validation.Field(&s.RequestDelay, validation.Min(0.0)),
		validation.Field(&s.RequestTimeout, validation.Min(0.0)),
		validation.Field(&s.JPEGQuality, validation.Min(1), validation.Max(100)),
	)
	if err != nil {
		return err
	}

	if s.NumOneOfOne+s.NumEdition >= s.NumItems {
		return fmt.Errorf("num_one_of_one (%d) + num_edition (%d) must be less than num_items (%d)",
			s.NumOneOfOne, s.NumEdition, s.NumItems)
	}

	if s.ResizeImages && s.ImageMaxSize < 1 {
		return fmt.Errorf("image_max_size must be positive when resize_images is set")
	}

	return nil
}

// Delay returns the per-item throttle delay as a duration.
func (s *Settings) Delay() time.Duration {
	return time.Duration(s.RequestDelay * float64(time.Second))
}

// Timeout returns the HTTP request timeout as a duration.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.RequestTimeout * float64(time.Second))
}

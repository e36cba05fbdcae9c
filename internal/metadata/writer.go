package metadata

import (
	"encoding/json"
	"path/filepath"
	"strconv"

	ioutils "github.com/fakemp/collection-gen/internal/io"
	"github.com/fakemp/collection-gen/internal/model"
)

// Writer persists metadata records as individual files.
//
// Each record lands at <root>/<index> — no extension, so the filename can
// double as a token URI path segment. With separation enabled the file
// goes under a subfolder named after the record's token type instead,
// created on demand. Writes overwrite unconditionally; unlike the image
// cache there is no skip-if-exists behavior for metadata.
type Writer struct {
	root     string
	separate bool
}

// NewWriter creates a Writer rooted at the given output folder.
func NewWriter(root string, separateTokenTypes bool) *Writer {
	return &Writer{root: root, separate: separateTokenTypes}
}

// Write serializes one record to its file.
//
// The serialization is pretty-printed JSON with 2-space indentation and
// the record's field order.
func (w *Writer) Write(index int, md model.Metadata) error {
	dir := w.root
	if w.separate {
		dir = filepath.Join(w.root, md.TokenType.String())
		if err := ioutils.EnsureDir(dir); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(md, "", "  ")
	if err != nil {
		return err
	}

	return ioutils.WriteFile(filepath.Join(dir, strconv.Itoa(index)), data)
}

// Path returns where Write would place the record for an index, given its
// token type.
func (w *Writer) Path(index int, tokenType model.TokenType) string {
	if w.separate {
		return filepath.Join(w.root, tokenType.String(), strconv.Itoa(index))
	}
	return filepath.Join(w.root, strconv.Itoa(index))
}

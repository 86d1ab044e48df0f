package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// ErrDocumentTooLarge is returned by OpenDocument when the file exceeds
// the configured size limit.
var ErrDocumentTooLarge = errors.New("document too large")

// Document is the input to ingestion.
type Document struct {
	// Name is a display name, usually the file's base name.
	Name string

	// Path is the source path, empty for in-memory documents.
	Path string

	// Size is the byte length of the source.
	Size int64

	// Text is the document content when it is valid UTF-8.
	Text string

	// Binary is set when the content is not UTF-8 text (PDF, images, ...).
	Binary bool
}

// NewDocument wraps in-memory text.
func NewDocument(name, text string) Document {
	return Document{Name: name, Size: int64(len(text)), Text: text, Binary: !utf8.ValidString(text)}
}

// OpenDocument reads the file at path. maxBytes <= 0 disables the limit.
func OpenDocument(path string, maxBytes int64) (Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Document{}, fmt.Errorf("open document: %w", err)
	}
	if info.IsDir() {
		return Document{}, fmt.Errorf("open document: %s is a directory", path)
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return Document{}, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrDocumentTooLarge, path, info.Size(), maxBytes)
	}

	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Document{}, fmt.Errorf("read document: %w", err)
	}

	doc := Document{Name: filepath.Base(path), Path: path, Size: int64(len(data))}
	if utf8.Valid(data) {
		doc.Text = string(data)
	} else {
		doc.Binary = true
	}
	return doc, nil
}

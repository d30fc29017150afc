// Package storage owns the durable JSON documents the books are kept
// in. The books never touch the filesystem themselves, they go through
// the Saver contract, so tests (and anything else) can swap the medium.
package storage

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Saver reads and writes a whole document at a time. There is no
// partial update: every write replaces the document at path.
type Saver interface {
	Read(path string) (*Document, error)
	Write(path string, doc *Document) error
}

// DiskSaver keeps documents as indented JSON files on an afero
// filesystem. Empty or malformed content reads as an empty document, a
// missing file is an error (EnsureFile is expected to have run first).
type DiskSaver struct {
	fs afero.Fs
}

func NewDiskSaver(fs afero.Fs) *DiskSaver {
	return &DiskSaver{fs: fs}
}

func (s *DiskSaver) Read(path string) (*Document, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading document %q", path)
	}

	doc := NewDocument()
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, doc); err != nil {
		// Unparsable content reads as an empty document rather than
		// failing every operation on the book.
		return NewDocument(), nil
	}
	return doc, nil
}

func (s *DiskSaver) Write(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encoding document %q", path)
	}

	if err := afero.WriteFile(s.fs, path, data, 0600); err != nil {
		return errors.Wrapf(err, "writing document %q", path)
	}
	return nil
}

// EnsureFile initializes an empty document file at path unless one
// already exists.
func (s *DiskSaver) EnsureFile(path string) error {
	_, err := s.fs.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return errors.Wrapf(err, "checking document %q", path)
	}

	if err := afero.WriteFile(s.fs, path, nil, 0600); err != nil {
		return errors.Wrapf(err, "initializing document %q", path)
	}
	return nil
}

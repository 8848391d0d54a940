// Package impexp converts the whole store to and from the exchange
// document offered for download and accepted for upload.
package impexp

import (
	"fmt"
	"io"
	"io/fs"

	"budget/internal/core"
)

// maxDocumentSize bounds how much of an uploaded file is read.
const maxDocumentSize = 32 << 20

// Export renders every month of s as an indented JSON document.
func Export(s core.Store) ([]byte, error) {
	b, err := core.EncodeStore(s, true)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// Filename is the suggested download name for an export made while month
// is active.
func Filename(month core.MonthKey) string {
	return "finance-" + string(month) + ".json"
}

// Import parses a document that replaces the current store wholesale.
// A failure matches core.ErrMalformedDocument and carries the reason.
func Import(text []byte) (core.Store, error) {
	return core.DecodeStore(text)
}

// ImportFile reads name from fsys once and imports it. reset runs when the
// read has finished, whether it succeeded or not.
func ImportFile(fsys fs.FS, name string, reset func()) (core.Store, error) {
	if reset != nil {
		defer reset()
	}
	text, err := readAll(fsys, name)
	if err != nil {
		return core.Store{}, err
	}
	return Import(text)
}

func readAll(fsys fs.FS, name string) ([]byte, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	b, err := io.ReadAll(io.LimitReader(f, maxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(b) > maxDocumentSize {
		return nil, fmt.Errorf("read %s: file larger than %d bytes", name, maxDocumentSize)
	}
	return b, nil
}

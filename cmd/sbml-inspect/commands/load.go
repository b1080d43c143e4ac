package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sbml-kit/sbml-go/pkg/core"
	"github.com/sbml-kit/sbml-go/pkg/sbmlxml"
	"github.com/sbml-kit/sbml-go/pkg/snapshot"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)

// loadDocument reads a document from disk in either supported format.
// Markup starts with '<' after optional whitespace; anything else is
// treated as a snapshot.
func loadDocument(path string) (*core.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isMarkup(data) {
		doc, err := sbmlxml.Read(string(data))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return doc, nil
	}
	doc, err := snapshot.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return doc, nil
}

func isMarkup(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '<'
}

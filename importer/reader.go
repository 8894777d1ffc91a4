package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/extremtechniker/dnsmigrate/model"
)

// ReadDocument parses an export document from r. Decode failures are fatal
// for the run and carry the input position when the JSON itself is broken.
func ReadDocument(r io.Reader) (model.Document, error) {
	var doc model.Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		var syn *json.SyntaxError
		if errors.As(err, &syn) {
			return nil, fmt.Errorf("invalid JSON at offset %d: %w", syn.Offset, err)
		}
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// WriteJSON serializes v with two-space indentation to path, or to stdout
// when path is empty. The document is marshaled in full before the file is
// touched, so a marshal failure never leaves a truncated file behind.
func WriteJSON(v any, path string) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	b = append(b, '\n')

	if path == "" {
		_, err = os.Stdout.Write(b)
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadDomains splits a whitespace-separated domain list from r, for piping
// domains on stdin.
func ReadDomains(r io.Reader) ([]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read domains: %w", err)
	}
	return strings.Fields(string(b)), nil
}

package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// readInput reads path (or stdin when path is "-"), stripping a
// leading UTF-8/UTF-16 byte-order mark if present. Repair inputs are
// often copy-pasted from editors or exported from Windows tooling that
// leaves a BOM in place, and the parser has no reason to see it.
func readInput(path string) (string, error) {
	var r io.Reader
	if path == "-" || path == "" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	raw, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(raw), nil
}

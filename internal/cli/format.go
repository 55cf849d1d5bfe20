package cli

import (
	"bytes"
	"encoding/json"
	"strings"
)

// reindent pretty-prints already-valid JSON with the given indent
// width, or compacts it when width is 0. It is applied after Repair
// succeeds, never as part of repairing itself.
func reindent(compact string, width int) (string, error) {
	var buf bytes.Buffer
	if width == 0 {
		if err := json.Compact(&buf, []byte(compact)); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
	if err := json.Indent(&buf, []byte(compact), "", strings.Repeat(" ", width)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

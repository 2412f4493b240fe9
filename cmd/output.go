package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// dumpToTmpFile writes v as indented JSON to a new temporary file.
func dumpToTmpFile(pattern string, v any) (string, error) {
	file, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer file.Close()

	if err := printJSON(file, v); err != nil {
		return "", fmt.Errorf("write %s: %w", file.Name(), err)
	}

	return file.Name(), nil
}

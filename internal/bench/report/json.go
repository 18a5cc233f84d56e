package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSON writes summaries as indented JSON. A single summary is written as
// an object, several as an array.
func WriteJSON(w io.Writer, summaries ...*Summary) error {
	var v any = summaries
	if len(summaries) == 1 {
		v = summaries[0]
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// WriteJSONFile writes summaries as JSON to path.
func WriteJSONFile(path string, summaries ...*Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	if err := WriteJSON(f, summaries...); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}
	return nil
}

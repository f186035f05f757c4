package calendar

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/emersion/go-ical"
)

// Write serializes the calendar to path, creating the parent directory if
// needed. The document is encoded fully in memory first so an encoding
// failure never leaves a truncated file behind.
func Write(cal *ical.Calendar, path string) error {
	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write calendar: %w", err)
	}
	return nil
}

package backup

import (
	"fmt"
	"os"
)

// WriteFile writes a rendered backup document to path.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("unable to write backup file %q: %w", path, err)
	}
	return nil
}

// ReadFile reads a backup document from path.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read backup file %q: %w", path, err)
	}
	return data, nil
}

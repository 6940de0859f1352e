package litetable

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	litetableDir = ".litetable"
)

// GetLitetableDir returns the path to the LiteTable directory in the user's home directory.
func GetLitetableDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, litetableDir), nil
}

// GetLitetableFile returns the path of name inside the LiteTable directory.
func GetLitetableFile(name string) (string, error) {
	dir, err := GetLitetableDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

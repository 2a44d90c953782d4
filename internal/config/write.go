package config

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//go:embed default_config.toml
var defaultConfig []byte

// WriteDefault writes the commented starter config to path.
func WriteDefault(path string) error {
	return writeConfigFile(path, func(w io.Writer) error {
		_, err := w.Write(defaultConfig)
		return err
	})
}

// Write encodes the effective values of c as TOML to path. Environment
// references are written out already substituted.
func (c *Config) Write(path string) error {
	return writeConfigFile(path, func(w io.Writer) error {
		return toml.NewEncoder(w).Encode(c)
	})
}

func writeConfigFile(path string, fill func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fill(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "file.txt")
	writeTestFile(t, file)

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"existing root", func(c *Config) { c.Organizer.Root = tmp }, ""},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"negative jobs", func(c *Config) { c.Organizer.Jobs = -2 }, "organizer.jobs"},
		{"missing root", func(c *Config) { c.Organizer.Root = filepath.Join(tmp, "nope") }, "does not exist"},
		{"root is file", func(c *Config) { c.Organizer.Root = file }, "not a directory"},
		{"exclude with path", func(c *Config) { c.Organizer.Exclude = []string{"Tools/assetorg"} }, "organizer.exclude"},
		{"empty exclude", func(c *Config) { c.Organizer.Exclude = []string{""} }, "organizer.exclude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			errs := cfg.Validate()
			if tt.wantErr == "" {
				assert.Empty(t, errs)
				return
			}
			assert.NotEmpty(t, errs)
			assert.Contains(t, strings.Join(errs, "\n"), tt.wantErr)
		})
	}
}

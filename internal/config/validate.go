// internal/config/validate.go
package config

import (
	"fmt"
	"os"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validLogFormats = map[string]bool{
	"text": true, "json": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}
	if !validLogFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("log.format: must be one of text, json; got %q", c.Log.Format))
	}

	if c.Organizer.Jobs < 0 {
		errs = append(errs, fmt.Sprintf("organizer.jobs: must not be negative, got %d", c.Organizer.Jobs))
	}

	for _, name := range c.Organizer.Exclude {
		if name == "" || strings.ContainsAny(name, `/\`) {
			errs = append(errs, fmt.Sprintf("organizer.exclude: %q must be a plain entry name", name))
		}
	}

	if c.Organizer.Root != "" {
		info, err := os.Stat(c.Organizer.Root)
		switch {
		case os.IsNotExist(err):
			errs = append(errs, fmt.Sprintf("organizer.root: directory %q does not exist", c.Organizer.Root))
		case err == nil && !info.IsDir():
			errs = append(errs, fmt.Sprintf("organizer.root: %q is not a directory", c.Organizer.Root))
		}
	}

	return errs
}

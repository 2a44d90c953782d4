package config

import "strings"

// ConfigError reports everything wrong with one config file: ${VAR}
// references left unresolved and validation rules that failed.
type ConfigError struct {
	Path    string
	Missing []string
	Errors  []string
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	if len(e.Missing) > 0 {
		b.WriteString("missing environment variables: ")
		b.WriteString(strings.Join(e.Missing, ", "))
	}
	if len(e.Errors) > 0 {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("validation failed:")
		for _, msg := range e.Errors {
			b.WriteString("\n  - ")
			b.WriteString(msg)
		}
	}
	return b.String()
}

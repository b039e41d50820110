// internal/config/validate.go
package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validSourceTypes = map[string]bool{
	"localfs": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if c.Resolver.FanOut < 0 {
		errs = append(errs, fmt.Sprintf("resolver.fan_out: must be >= 0, got %d", c.Resolver.FanOut))
	}

	// Classifier thresholds
	if p := c.Classifier.WatchedPercent; p < 0 || p > 100 {
		errs = append(errs, fmt.Sprintf("classifier.watched_percent: must be between 0 and 100, got %v", p))
	}
	if p := c.Classifier.ShortformPercent; p < 0 || p > 100 {
		errs = append(errs, fmt.Sprintf("classifier.shortform_percent: must be between 0 and 100, got %v", p))
	}

	// Sources
	for name, src := range c.Sources {
		if !validSourceTypes[src.Type] {
			errs = append(errs, fmt.Sprintf("sources.%s.type: unknown type %q", name, src.Type))
		}
		if src.Type == "localfs" && src.Root == "" {
			errs = append(errs, fmt.Sprintf("sources.%s.root: required for localfs sources", name))
		}
	}

	// Aliases must target "source:collection"
	for alias, target := range c.Aliases {
		if !strings.Contains(target, ":") {
			errs = append(errs, fmt.Sprintf("aliases.%s: target must be \"source:collection\", got %q", alias, target))
		}
	}

	return errs
}

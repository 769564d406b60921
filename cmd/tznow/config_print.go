package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hyperifyio/tznow/internal/clock"
)

// resolvedConfig is the -print-config view of cliConfig.
type resolvedConfig struct {
	Timezone string `json:"timezone"`
	Format   string `json:"format"`
	Layout   string `json:"layout"`
	Output   string `json:"output"`
	At       string `json:"at,omitempty"`
	Provider string `json:"provider"`
	Debug    bool   `json:"debug"`
}

// printResolvedConfig writes the resolved configuration as indented JSON.
func printResolvedConfig(cfg cliConfig, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	err := enc.Encode(resolvedConfig{
		Timezone: cfg.timezone,
		Format:   cfg.format,
		Layout:   clock.Layout(cfg.format),
		Output:   cfg.output,
		At:       cfg.at,
		Provider: providerName(cfg),
		Debug:    cfg.debug,
	})
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

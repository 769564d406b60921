package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/hyperifyio/tznow/internal/clock"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func validOutput(s string) bool {
	switch s {
	case outputText, outputJSON, outputYAML:
		return true
	}
	return false
}

// reading is the structured form of one moment for json/yaml output.
type reading struct {
	Timezone string `json:"timezone" yaml:"timezone"`
	ISO8601  string `json:"iso8601" yaml:"iso8601"`
	Unix     int64  `json:"unix" yaml:"unix"`
}

func newReading(t time.Time) reading {
	return reading{
		Timezone: t.Location().String(),
		ISO8601:  clock.Format(t, "default"),
		Unix:     t.Unix(),
	}
}

// writeMoment renders t to w in the requested encoding. The text form uses
// format; the structured forms always carry the default ISO-8601 rendering.
func writeMoment(w io.Writer, t time.Time, output, format string) error {
	switch output {
	case outputJSON:
		b, err := json.Marshal(newReading(t))
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case outputYAML:
		b, err := yaml.Marshal(newReading(t))
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	default:
		_, err := fmt.Fprintln(w, clock.Format(t, format))
		return err
	}
}

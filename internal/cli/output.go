package cli

import (
	"encoding/json"
	"io"

	"github.com/rileyhilliard/netmon/internal/errors"
	"gopkg.in/yaml.v3"
)

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.WrapWithCode(err, errors.ErrOutput,
			"Couldn't write JSON output",
			"Check that the output stream is still open")
	}
	return nil
}

// writeYAML writes v as a YAML document.
func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.WrapWithCode(err, errors.ErrOutput,
			"Couldn't write YAML output",
			"Check that the output stream is still open")
	}
	if err := enc.Close(); err != nil {
		return errors.WrapWithCode(err, errors.ErrOutput,
			"Couldn't write YAML output",
			"Check that the output stream is still open")
	}
	return nil
}

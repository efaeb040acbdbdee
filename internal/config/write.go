package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rileyhilliard/netmon/internal/errors"
	"gopkg.in/yaml.v3"
)

// Marshal renders cfg as a commented YAML document.
func Marshal(cfg *Config) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.DocumentNode}
	root := &yaml.Node{Kind: yaml.MappingNode}
	doc.Content = []*yaml.Node{root}

	addScalar(root, "version", strconv.Itoa(cfg.Version), "!!int", "")
	addScalar(root, "seed", strconv.FormatInt(cfg.Seed, 10), "!!int",
		"Random seed. 0 seeds from the clock so every run differs.")
	addScalar(root, "detail_samples", strconv.Itoa(cfg.DetailSamples), "!!int",
		"Fresh values generated when a metric is opened.")
	addScalar(root, "history", strconv.Itoa(cfg.History), "!!int",
		"Summary values kept per card for the sparkline.")
	addScalar(root, "refresh", cfg.Refresh.String(), "!!str",
		"Auto-refresh interval for the summary. 0s refreshes only on 'r'.")

	output := &yaml.Node{Kind: yaml.MappingNode}
	addScalar(output, "color", cfg.Output.Color, "!!str", "auto | always | never")
	addScalar(output, "format", cfg.Output.Format, "!!str", "table | json | yaml")
	root.Content = append(root.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "output"},
		output,
	)

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't encode config",
			"This is a bug, please report it")
	}
	if err := encoder.Close(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't encode config",
			"This is a bug, please report it")
	}
	return buf.Bytes(), nil
}

// WriteDefault writes the default config to path. It refuses to overwrite an
// existing file unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("%s already exists", path),
				"Use --force to overwrite it")
		}
	}

	data, err := Marshal(DefaultConfig())
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Couldn't create config directory",
				"Check permissions on "+dir)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't write config file",
			"Check permissions on "+path)
	}
	return nil
}

func addScalar(mapping *yaml.Node, key, value, tag, comment string) {
	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key, HeadComment: comment}
	valueNode := &yaml.Node{Kind: yaml.ScalarNode, Value: value, Tag: tag}
	mapping.Content = append(mapping.Content, keyNode, valueNode)
}

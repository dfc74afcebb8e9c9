// internal/config/loader.go
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// defaults returns the base configuration layer. File values and GAZETTE_*
// environment variables are laid over it in that order.
func defaults() Config {
	return Config{
		ContentDir:  "content",
		OutputDir:   "public",
		Theme:       "plain",
		Timezone:    "Etc/UTC",
		DefaultLang: "en",
		Feeds: Feeds{
			AllAtom:      "feeds/atom.xml",
			CategoryAtom: "feeds/%s.atom.xml",
		},
		Pagination:   10,
		StaticPaths:  []string{"images"},
		SummaryWords: 50,
	}
}

// Load reads the configuration with precedence defaults < file < environment
// and validates the result. The file is parsed strictly: unknown keys,
// trailing documents and type mismatches are errors, so a typo in site.yaml
// fails the run instead of silently building with defaults.
func Load(path string) (Config, error) {
	cfg := defaults()

	file, err := parseFile(path)
	if err != nil {
		return Config{}, err
	}
	merge(&cfg, file)
	mergeEnv(&cfg)

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return cfg, nil
}

func parseFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var file fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return fileConfig{}, fmt.Errorf("config file %s contains more than one YAML document", path)
	}
	return file, nil
}

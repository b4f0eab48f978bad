package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type brandFile struct {
	Brands []string `yaml:"brands"`
}

// LoadBrands reads the ordered brand lexicon used by the lexicon extraction
// strategy. Order matters: extraction results come back in lexicon order.
func LoadBrands(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read brand lexicon: %w", err)
	}
	var f brandFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse brand lexicon: %w", err)
	}
	if len(f.Brands) == 0 {
		return nil, fmt.Errorf("brand lexicon %s has no brands", path)
	}
	return f.Brands, nil
}

type sourceFile struct {
	Sources map[string][]string `yaml:"sources"`
}

// LoadSources reads the category -> citation-source list mapping used to
// enrich records that arrive without a source_citation column.
func LoadSources(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read citation sources: %w", err)
	}
	var f sourceFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse citation sources: %w", err)
	}
	if len(f.Sources) == 0 {
		return nil, fmt.Errorf("citation sources %s has no categories", path)
	}
	return f.Sources, nil
}

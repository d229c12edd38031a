package classifier

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	errEmptyDefault  = errors.New("keyword table: default label is empty")
	errEmptyProducts = errors.New("keyword table: no products")
)

// LoadTable reads an ordered keyword table from a YAML file:
//
//	default: OpenAI Platform / Multiple services
//	products:
//	  - label: Chat Completions
//	    keywords: [chat completions, gpt-4o]
func LoadTable(path string) (KeywordTable, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return KeywordTable{}, fmt.Errorf("read keyword table %q: %w", path, err)
	}
	return ParseTable(b)
}

// ParseTable decodes and validates a YAML keyword table.
func ParseTable(b []byte) (KeywordTable, error) {
	var t KeywordTable
	if err := yaml.Unmarshal(b, &t); err != nil {
		return KeywordTable{}, fmt.Errorf("decode keyword table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return KeywordTable{}, err
	}
	return t, nil
}

// Validate checks labels are present and unique and every product has triggers.
func (t KeywordTable) Validate() error {
	if strings.TrimSpace(t.Default) == "" {
		return errEmptyDefault
	}
	if len(t.Products) == 0 {
		return errEmptyProducts
	}
	seen := make(map[string]struct{}, len(t.Products))
	for i, p := range t.Products {
		label := strings.TrimSpace(p.Label)
		if label == "" {
			return fmt.Errorf("keyword table: product %d has no label", i+1)
		}
		if _, dup := seen[label]; dup {
			return fmt.Errorf("keyword table: duplicate label %q", label)
		}
		seen[label] = struct{}{}
		if len(p.Keywords) == 0 {
			return fmt.Errorf("keyword table: product %q has no keywords", label)
		}
		for _, kw := range p.Keywords {
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("keyword table: product %q has an empty keyword", label)
			}
		}
	}
	return nil
}

// Resolve picks the table a binary runs with: keywordsFile when set, else the
// named preset, else fallback.
func Resolve(preset, keywordsFile, fallback string) (KeywordTable, error) {
	if keywordsFile != "" {
		return LoadTable(keywordsFile)
	}
	if preset == "" {
		preset = fallback
	}
	return Preset(preset)
}

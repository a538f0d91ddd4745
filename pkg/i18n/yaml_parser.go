package i18n

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse expects a top-level mapping of language mappings. Nested mappings
// decode as map[string]any.
func (p *YAMLParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no languages found", ErrInvalidCatalogue)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, v := range data {
		msgs, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q must be a mapping, got %T", ErrInvalidCatalogue, lang, v)
		}
		result[lang] = msgs
	}
	return result, nil
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	return hasExt(ext, "yaml", "yml")
}

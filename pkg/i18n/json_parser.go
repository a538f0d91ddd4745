package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse expects a top-level object of language objects.
func (p *JSONParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, v := range data {
		msgs, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q must be an object, got %T", ErrInvalidCatalogue, lang, v)
		}
		result[lang] = msgs
	}
	return result, nil
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return hasExt(ext, "json")
}

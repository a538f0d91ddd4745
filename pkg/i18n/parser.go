package i18n

import (
	"context"
	"strings"
)

// Parser turns file content into a catalogue keyed by language.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)
	// SupportsFileExtension accepts the extension with or without the dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile picks a parser by extension, or returns nil.
func NewParserForFile(filename string) Parser {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return nil
	}
	switch strings.ToLower(filename[i+1:]) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

func hasExt(ext string, want ...string) bool {
	ext = strings.TrimPrefix(ext, ".")
	for _, w := range want {
		if strings.EqualFold(ext, w) {
			return true
		}
	}
	return false
}

package i18n

import (
	"context"
	"embed"
)

//go:embed locales/*.yaml
var locales embed.FS

// Default returns a translator over the built-in Spanish and English
// catalogue.
func Default(ctx context.Context, options ...Option) (*Translator, error) {
	return NewTranslator(ctx, NewEmbeddedFsAdapter(NewYAMLParser(), locales, "locales"), options...)
}

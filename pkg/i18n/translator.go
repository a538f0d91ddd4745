package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language is requested or the requested
// one has no catalogue.
const DefaultLanguage = "es"

// Translator resolves message keys against a loaded catalogue. It is safe
// for concurrent use.
type Translator struct {
	mu             sync.RWMutex
	translations   map[string]map[string]any
	languages      []string
	matchOrder     []string
	matcher        language.Matcher
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator loads the catalogue from adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, msgs := range translations {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidCatalogue)
		}
		if msgs == nil {
			return nil, fmt.Errorf("%w: nil messages for %q", ErrInvalidCatalogue, lang)
		}
	}
	if len(translations) == 0 {
		t.logger.WarnContext(ctx, "no translations provided")
	}

	t.translations = translations
	t.languages = sortedKeys(translations)
	t.matchOrder, t.matcher = newMatcher(t.defaultLang, t.languages)

	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.languages))
	return t, nil
}

func sortedKeys(m map[string]map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// newMatcher puts the default language first so it wins ties and serves as
// the matcher's fallback.
func newMatcher(def string, langs []string) ([]string, language.Matcher) {
	ordered := make([]string, 0, len(langs)+1)
	ordered = append(ordered, def)
	for _, l := range langs {
		if l != def {
			ordered = append(ordered, l)
		}
	}

	tags := make([]language.Tag, 0, len(ordered))
	for _, l := range ordered {
		tag, err := language.Parse(l)
		if err != nil {
			tag = language.Und
		}
		tags = append(tags, tag)
	}
	return ordered, language.NewMatcher(tags)
}

// SupportedLanguages returns the catalogue's languages, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.languages)
}

// DefaultLanguage reports the language used for fallbacks.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match picks the best supported language for a BCP 47 tag or an
// Accept-Language style list ("es-CL", "en-GB,es;q=0.5"). Unparseable or
// unmatched input yields the default language.
func (t *Translator) Match(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return t.defaultLang
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	if _, ok := t.translations[tag]; ok {
		return tag
	}

	wanted, _, err := language.ParseAcceptLanguage(tag)
	if err != nil || len(wanted) == 0 {
		return t.defaultLang
	}

	_, idx, conf := t.matcher.Match(wanted...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.matchOrder[idx]
}

// HasTranslation reports whether lang has a string or nested entry at key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	msgs, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(msgs, key)
	return ok
}

// T translates key for lang, substituting %{name} placeholders from
// name/value pairs in args:
//
//	tr.T("es", "validation.run_format", "example", "12345678-9")
//
// A language without a catalogue falls back to the default language. A key
// missing there too returns the key itself, or "" when WithFallbackToKey
// is false.
func (t *Translator) T(lang, key string, args ...string) string {
	msg, ok := t.resolve(lang, key)
	if ok {
		return substitute(msg, args)
	}
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// Td is T with an explicit fallback text instead of the key.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if msg, ok := t.resolve(lang, key); ok {
		return substitute(msg, args)
	}
	return substitute(defaultValue, args)
}

func (t *Translator) resolve(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	msgs, ok := t.translations[lang]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", slog.String("lang", lang), slog.String("key", key))
		}
		if msgs, ok = t.translations[t.defaultLang]; !ok {
			return "", false
		}
	}

	val, ok := lookup(msgs, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
		}
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		if t.missingLogMode {
			t.logger.Warn("translation is not a string",
				slog.String("lang", lang),
				slog.String("key", key),
				slog.String("type", fmt.Sprintf("%T", val)),
			)
		}
		return "", false
	}
}

// lookup walks dot-separated keys through nested maps. A flat key that
// itself contains dots is tried first.
func lookup(m map[string]any, key string) (any, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}

	head, rest, found := strings.Cut(key, ".")
	if !found {
		return nil, false
	}
	next, ok := m[head].(map[string]any)
	if !ok {
		return nil, false
	}
	return lookup(next, rest)
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} with the value paired with name in args.
// Unknown placeholders stay as they are; an odd trailing arg is ignored.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		if v, ok := params[m[2:len(m)-1]]; ok {
			return v
		}
		return m
	})
}

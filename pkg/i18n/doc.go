// Package i18n translates message keys, mainly validation error codes, into
// user-facing text.
//
// A Translator is loaded once from a TranslationAdapter (MapAdapter,
// FileAdapter or EmbeddedFsAdapter) whose files are decoded by a Parser
// (YAMLParser or JSONParser). Catalogues are keyed by language and may nest:
//
//	es:
//	  validation:
//	    run_format: "El formato del RUN no es válido, se espera un formato como %{example}."
//
// Keys are looked up with dots ("validation.run_format") and placeholders
// in the form %{name} are filled from name/value argument pairs.
//
// # Built-in catalogue
//
// Default loads the embedded es and en catalogues covering every key the
// validator package emits. Spanish is the default language.
//
//	tr, err := i18n.Default(ctx)
//	lang := tr.Match("es-CL") // "es"
//	msgs := i18n.Localize(tr, lang, validator.ExtractValidationErrors(err))
//
// Match accepts a single BCP 47 tag or an Accept-Language style list and
// uses golang.org/x/text/language to pick the closest supported language.
package i18n

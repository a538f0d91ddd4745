package i18n

import (
	"fmt"

	"github.com/bomberos-cl/runkit/pkg/validator"
)

// Message renders one validation failure in lang, falling back to the
// error's own English message when the key is unknown.
func Message(tr *Translator, lang string, e validator.ValidationError) string {
	if tr == nil || e.TranslationKey == "" {
		return e.Message
	}
	args := make([]string, 0, len(e.TranslationValues)*2)
	for k, v := range e.TranslationValues {
		args = append(args, k, fmt.Sprint(v))
	}
	return tr.Td(lang, e.TranslationKey, e.Message, args...)
}

// Localize groups rendered messages by field, keeping the order in which
// failures were reported.
func Localize(tr *Translator, lang string, errs validator.ValidationErrors) map[string][]string {
	fields := errs.Fields()
	out := make(map[string][]string, len(fields))
	for _, field := range fields {
		for _, e := range errs.GetErrors(field) {
			out[field] = append(out[field], Message(tr, lang, e))
		}
	}
	return out
}

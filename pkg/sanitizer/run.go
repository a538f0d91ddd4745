package sanitizer

import (
	"strings"

	"github.com/bomberos-cl/runkit/pkg/run"
)

// visibleBodyDigits is how many trailing body digits MaskRUN leaves readable.
const visibleBodyDigits = 3

// MaskRUN hides a RUN before it is logged or rendered to third parties while
// keeping it recognisable: "12.345.678-5" becomes "**.***.678-5".
// Malformed input is masked entirely, keeping only its length.
func MaskRUN(raw string) string {
	if !run.IsStructurallyValid(raw) {
		return strings.Repeat("*", len(run.Clean(raw)))
	}

	display := run.FormatForDisplay(raw)
	dash := strings.LastIndexByte(display, '-')

	out := []byte(display)
	visible := 0
	for i := dash - 1; i >= 0; i-- {
		if out[i] == '.' {
			continue
		}
		if visible < visibleBodyDigits {
			visible++
			continue
		}
		out[i] = '*'
	}
	return string(out)
}

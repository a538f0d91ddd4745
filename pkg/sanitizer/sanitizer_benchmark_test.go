package sanitizer_test

import (
	"testing"

	"github.com/bomberos-cl/runkit/pkg/sanitizer"
)

func BenchmarkInputLine(b *testing.B) {
	inputs := map[string]string{
		"clean":   "12.345.678-5",
		"padded":  "\ufeff  12.345.678-5\t# chief\r",
		"garbage": "\x00\x01 not a run at all, just a long line of text that keeps going",
	}
	for name, in := range inputs {
		b.Run(name, func(b *testing.B) {
			for b.Loop() {
				_ = sanitizer.InputLine(in)
			}
		})
	}
}

func BenchmarkMaskRUN(b *testing.B) {
	for b.Loop() {
		_ = sanitizer.MaskRUN("12.345.678-5")
	}
}

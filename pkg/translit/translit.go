// Package translit converts names into canonical uppercase pinyin
// codes. The conversion is tone-free and keeps characters the pinyin
// table does not know (Latin letters, digits, punctuation) in place.
package translit

import (
	"strings"

	"github.com/mozillazg/go-pinyin"
)

// Transliterator derives a phonetic code from a run of text.
// Implementations must be pure: same input, same output.
type Transliterator interface {
	// Transliterate returns the uppercase, tone-free pinyin code for
	// text. Empty and whitespace-only input yields an empty code.
	Transliterate(text string) string
}

type translit struct {
	args pinyin.Args
}

// New creates a Transliterator backed by the bundled pinyin table.
// The table is configured once here, so there is no process-wide
// mutable state to set up before use.
func New() Transliterator {
	args := pinyin.NewArgs()
	args.Style = pinyin.Normal
	// Runes outside the pinyin table pass through unchanged, so
	// mixed-script names keep their Latin parts.
	args.Fallback = func(r rune, _ pinyin.Args) []string {
		return []string{string(r)}
	}
	return &translit{args: args}
}

// Transliterate implements Transliterator.
func (t *translit) Transliterate(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	var b strings.Builder
	for _, syl := range pinyin.Pinyin(text, t.args) {
		if len(syl) > 0 {
			b.WriteString(syl[0])
		}
	}
	return strings.ToUpper(b.String())
}

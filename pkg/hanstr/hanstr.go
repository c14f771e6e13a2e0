// Package hanstr composes and decomposes whole strings that mix
// individual jamo (or syllables) with arbitrary non-Hangul text.
package hanstr

import (
	"fmt"
	"strings"

	"hanword/pkg/block"
	"hanword/pkg/jamo"
	"hanword/pkg/word"
)

// Compose walks a string of individual jamo and turns runs of them
// into syllable text. Non-Hangul runes end the current word and pass
// through unchanged; a trailing open block renders best-effort. A
// jamo that is phonotactically impossible in its position aborts with
// an error naming the rune and its byte offset.
func Compose(text string) (string, error) {
	var out strings.Builder
	composer := word.New()

	for i, ch := range text {
		letter := jamo.Classify(ch)
		if !letter.IsHangul() {
			out.WriteString(composer.String())
			composer.Reset()
			out.WriteRune(ch)
			continue
		}

		res := composer.Push(letter)
		switch res.Disposition {
		case word.Composable:
		case word.StartNewBlock:
			if err := composer.StartNewBlock(letter); err != nil {
				return "", fmt.Errorf("compose at byte %d: %w", i, err)
			}
		case word.InvalidHangul:
			return "", fmt.Errorf("compose at byte %d: %q cannot follow %s", i, ch, composer.Current().Kind)
		}
	}

	out.WriteString(composer.String())
	return out.String(), nil
}

// ComposeLenient composes like Compose but never fails: a jamo that
// cannot extend the open block flushes it and either starts a fresh
// block or, when even that is impossible, stays in the output as a
// bare letter. This is the behavior live typing wants.
func ComposeLenient(text string) string {
	var out strings.Builder
	composer := word.New()

	flush := func() {
		out.WriteString(composer.String())
		composer.Reset()
	}

	for _, ch := range text {
		letter := jamo.Classify(ch)
		if !letter.IsHangul() {
			flush()
			out.WriteRune(ch)
			continue
		}

		res := composer.Push(letter)
		switch res.Disposition {
		case word.Composable:
		case word.StartNewBlock:
			if err := composer.StartNewBlock(letter); err != nil {
				flush()
				composer.Push(letter)
			}
		case word.InvalidHangul:
			flush()
			if res := composer.Push(letter); res.Disposition != word.Composable {
				out.WriteRune(ch)
			}
		}
	}

	flush()
	return out.String()
}

// Decompose expands every composed syllable in text back into its
// jamo, leaving all other runes untouched. Final clusters are written
// as the pair they were fused from, so the output feeds back through
// Compose unchanged.
func Decompose(text string) string {
	var out strings.Builder
	for _, ch := range text {
		if !block.IsSyllable(ch) {
			out.WriteRune(ch)
			continue
		}
		b, err := block.Decompose(ch)
		if err != nil {
			out.WriteRune(ch)
			continue
		}
		out.WriteRune(b.Initial)
		out.WriteRune(b.Vowel)
		if b.Final == 0 {
			continue
		}
		if first, second, ok := jamo.SplitFinal(b.Final); ok {
			out.WriteRune(first)
			out.WriteRune(second)
		} else {
			out.WriteRune(b.Final)
		}
	}
	return out.String()
}

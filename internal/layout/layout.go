// Package layout maps Latin keystrokes to jamo so composed text can be
// typed on an ordinary keyboard.
package layout

import (
	"fmt"
	"strings"

	ini "gopkg.in/ini.v1"

	"hanword/pkg/jamo"
)

// Layout is a key-to-jamo table. Keys without a mapping are treated as
// literal characters by the callers.
type Layout struct {
	name string
	keys map[rune]rune
}

// Dubeolsik is the standard two-set layout. Shifted keys carry the
// doubled consonants and the ㅒ/ㅖ vowels; the remaining shifted keys
// fall back to their unshifted jamo.
func Dubeolsik() *Layout {
	keys := map[rune]rune{
		'q': 'ㅂ', 'Q': 'ㅃ',
		'w': 'ㅈ', 'W': 'ㅉ',
		'e': 'ㄷ', 'E': 'ㄸ',
		'r': 'ㄱ', 'R': 'ㄲ',
		't': 'ㅅ', 'T': 'ㅆ',
		'a': 'ㅁ', 'A': 'ㅁ',
		's': 'ㄴ', 'S': 'ㄴ',
		'd': 'ㅇ', 'D': 'ㅇ',
		'f': 'ㄹ', 'F': 'ㄹ',
		'g': 'ㅎ', 'G': 'ㅎ',
		'z': 'ㅋ', 'Z': 'ㅋ',
		'x': 'ㅌ', 'X': 'ㅌ',
		'c': 'ㅊ', 'C': 'ㅊ',
		'v': 'ㅍ', 'V': 'ㅍ',
		'k': 'ㅏ', 'K': 'ㅏ',
		'o': 'ㅐ', 'O': 'ㅒ',
		'i': 'ㅑ', 'I': 'ㅑ',
		'j': 'ㅓ', 'J': 'ㅓ',
		'p': 'ㅔ', 'P': 'ㅖ',
		'u': 'ㅕ', 'U': 'ㅕ',
		'h': 'ㅗ', 'H': 'ㅗ',
		'y': 'ㅛ', 'Y': 'ㅛ',
		'n': 'ㅜ', 'N': 'ㅜ',
		'b': 'ㅠ', 'B': 'ㅠ',
		'm': 'ㅡ', 'M': 'ㅡ',
		'l': 'ㅣ', 'L': 'ㅣ',
	}
	return &Layout{name: "dubeolsik", keys: keys}
}

func (l *Layout) Name() string { return l.name }

// JamoFor resolves one keystroke.
func (l *Layout) JamoFor(key rune) (rune, bool) {
	j, ok := l.keys[key]
	return j, ok
}

// MapString rewrites every mapped keystroke in text to its jamo and
// leaves everything else alone.
func (l *Layout) MapString(text string) string {
	var out strings.Builder
	out.Grow(len(text))
	for _, key := range text {
		if j, ok := l.keys[key]; ok {
			out.WriteRune(j)
		} else {
			out.WriteRune(key)
		}
	}
	return out.String()
}

// Load reads a custom layout file and applies it on top of dubeolsik.
// The file carries [consonants] and [vowels] sections of key = jamo
// lines and an optional [layout] name.
func Load(path string) (*Layout, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	l := Dubeolsik()
	if name := file.Section("layout").Key("name").String(); name != "" {
		l.name = name
	}

	if err := l.applySection(file.Section("consonants"), jamo.Letter.IsConsonant); err != nil {
		return nil, err
	}
	if err := l.applySection(file.Section("vowels"), jamo.Letter.IsVowel); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Layout) applySection(sec *ini.Section, accept func(jamo.Letter) bool) error {
	for _, key := range sec.Keys() {
		keyRunes := []rune(key.Name())
		if len(keyRunes) != 1 {
			return fmt.Errorf("layout: key %q must be a single character", key.Name())
		}
		valRunes := []rune(key.String())
		if len(valRunes) != 1 {
			return fmt.Errorf("layout: value %q for key %q must be a single jamo", key.String(), key.Name())
		}
		if !accept(jamo.Classify(valRunes[0])) {
			return fmt.Errorf("layout: %q is not a valid jamo for section [%s]", valRunes[0], sec.Name())
		}
		l.keys[keyRunes[0]] = valRunes[0]
	}
	return nil
}

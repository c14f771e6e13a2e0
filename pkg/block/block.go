// Package block converts between (initial, vowel, optional final) jamo
// triples and their precomposed syllable code points.
package block

import (
	"errors"
	"fmt"
)

// Block is one finished syllable. Final is 0 when the block has no
// trailing consonant. A Block built through Make is always encodable.
type Block struct {
	Initial rune
	Vowel   rune
	Final   rune
}

var (
	choseong  = []rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	jungseong = []rune{'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ'}
	jongseong = []rune{0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
)

const (
	base          = 0xAC00
	medialCount   = 21
	trailingCount = 28
)

var (
	choseongIndex  = buildIndex(choseong)
	jungseongIndex = buildIndex(jungseong)
	jongseongIndex = buildIndex(jongseong)
)

func buildIndex(list []rune) map[rune]int {
	idx := make(map[rune]int, len(list))
	for i, ch := range list {
		idx[ch] = i
	}
	return idx
}

// ErrNotSyllable is returned by Decompose for runes outside the
// precomposed syllable range.
var ErrNotSyllable = errors.New("rune is not a composed hangul syllable")

// Compose encodes a triple into its syllable rune. final may be 0 for
// an open block. The components must already be members of the
// initial/medial/final orderings; feeding anything else is an
// invariant violation, not a reported error, because the composition
// state machine can only ever hand over valid triples. Untrusted
// input goes through Make instead.
func Compose(initial, vowel, final rune) rune {
	li := choseongIndex[initial]
	mi := jungseongIndex[vowel]
	ti := 0
	if final != 0 {
		ti = jongseongIndex[final]
	}
	return rune(base + (li*medialCount+mi)*trailingCount + ti)
}

// Make validates the triple against the jamo orderings and returns the
// Block. This is the checked counterpart of Compose.
func Make(initial, vowel, final rune) (Block, error) {
	if _, ok := choseongIndex[initial]; !ok {
		return Block{}, fmt.Errorf("%q cannot occupy the initial position", initial)
	}
	if _, ok := jungseongIndex[vowel]; !ok {
		return Block{}, fmt.Errorf("%q cannot occupy the vowel position", vowel)
	}
	if final != 0 {
		if _, ok := jongseongIndex[final]; !ok {
			return Block{}, fmt.Errorf("%q cannot occupy the final position", final)
		}
	}
	return Block{Initial: initial, Vowel: vowel, Final: final}, nil
}

// Decompose splits a composed syllable rune back into its triple.
func Decompose(ch rune) (Block, error) {
	if !IsSyllable(ch) {
		return Block{}, fmt.Errorf("%q: %w", ch, ErrNotSyllable)
	}
	offset := int(ch - base)
	ti := offset % trailingCount
	mi := (offset / trailingCount) % medialCount
	li := offset / (trailingCount * medialCount)
	return Block{
		Initial: choseong[li],
		Vowel:   jungseong[mi],
		Final:   jongseong[ti],
	}, nil
}

// IsSyllable reports whether ch falls inside the precomposed syllable
// range (가..힣).
func IsSyllable(ch rune) bool {
	return ch >= base && ch < base+19*medialCount*trailingCount
}

// Rune is the composed code point of the block.
func (b Block) Rune() rune {
	return Compose(b.Initial, b.Vowel, b.Final)
}

func (b Block) String() string {
	return string(b.Rune())
}

// Jamo lists the letters of the block in order, with a compound final
// expanded to nothing extra; the final stays a single rune so the
// caller can decide how to display clusters.
func (b Block) Jamo() []rune {
	out := []rune{b.Initial, b.Vowel}
	if b.Final != 0 {
		out = append(out, b.Final)
	}
	return out
}

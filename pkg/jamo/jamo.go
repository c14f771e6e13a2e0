// Package jamo classifies individual Hangul letters and answers which
// pairs of them may fuse inside one syllable block.
package jamo

// Kind tags a classified rune. Exactly one kind applies to any rune.
type Kind int

const (
	NonHangul Kind = iota
	Consonant
	CompoundConsonant
	Vowel
	CompoundVowel
)

func (k Kind) String() string {
	switch k {
	case Consonant:
		return "consonant"
	case CompoundConsonant:
		return "compound consonant"
	case Vowel:
		return "vowel"
	case CompoundVowel:
		return "compound vowel"
	default:
		return "non-hangul"
	}
}

// Letter is one classified input character. Equality is structural:
// two Letters are equal when kind and rune match.
type Letter struct {
	Kind Kind
	Ch   rune
}

// IsHangul reports whether the letter belongs to the modern jamo
// inventory at all.
func (l Letter) IsHangul() bool {
	return l.Kind != NonHangul
}

// IsConsonant reports whether the letter is a plain or compound consonant.
func (l Letter) IsConsonant() bool {
	return l.Kind == Consonant || l.Kind == CompoundConsonant
}

// IsVowel reports whether the letter is a plain or compound vowel.
func (l Letter) IsVowel() bool {
	return l.Kind == Vowel || l.Kind == CompoundVowel
}

var (
	plainConsonants = []rune{'ㄱ', 'ㄴ', 'ㄷ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅅ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	plainVowels     = []rune{'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅛ', 'ㅜ', 'ㅠ', 'ㅡ', 'ㅣ'}
	compoundVowels  = []rune{'ㅘ', 'ㅙ', 'ㅚ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅢ'}

	// Doubled initials plus the two-consonant final clusters; ㄲ and ㅆ
	// live in both groups but are listed once.
	compoundConsonants = []rune{'ㄲ', 'ㄳ', 'ㄵ', 'ㄶ', 'ㄸ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅃ', 'ㅄ', 'ㅆ', 'ㅉ'}
)

var (
	plainConsonantSet    = buildSet(plainConsonants)
	compoundConsonantSet = buildSet(compoundConsonants)
	plainVowelSet        = buildSet(plainVowels)
	compoundVowelSet     = buildSet(compoundVowels)
)

func buildSet(list []rune) map[rune]struct{} {
	set := make(map[rune]struct{}, len(list))
	for _, ch := range list {
		set[ch] = struct{}{}
	}
	return set
}

// Classify tags a rune as one of the four modern jamo kinds, or as
// NonHangul when it matches none of them. Archaic jamo (ᅀ and friends)
// are outside the modern inventory and classify as NonHangul; that is a
// documented limit, not an oversight.
func Classify(ch rune) Letter {
	switch {
	case isMember(plainConsonantSet, ch):
		return Letter{Kind: Consonant, Ch: ch}
	case isMember(compoundConsonantSet, ch):
		return Letter{Kind: CompoundConsonant, Ch: ch}
	case isMember(plainVowelSet, ch):
		return Letter{Kind: Vowel, Ch: ch}
	case isMember(compoundVowelSet, ch):
		return Letter{Kind: CompoundVowel, Ch: ch}
	default:
		return Letter{Kind: NonHangul, Ch: ch}
	}
}

func isMember(set map[rune]struct{}, ch rune) bool {
	_, ok := set[ch]
	return ok
}

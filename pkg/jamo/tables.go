package jamo

var (
	doubleInitial = map[[2]rune]rune{
		{'ㄱ', 'ㄱ'}: 'ㄲ',
		{'ㄷ', 'ㄷ'}: 'ㄸ',
		{'ㅂ', 'ㅂ'}: 'ㅃ',
		{'ㅅ', 'ㅅ'}: 'ㅆ',
		{'ㅈ', 'ㅈ'}: 'ㅉ',
	}
	compoundMedial = map[[2]rune]rune{
		{'ㅗ', 'ㅏ'}: 'ㅘ',
		{'ㅗ', 'ㅐ'}: 'ㅙ',
		{'ㅗ', 'ㅣ'}: 'ㅚ',
		{'ㅜ', 'ㅓ'}: 'ㅝ',
		{'ㅜ', 'ㅔ'}: 'ㅞ',
		{'ㅜ', 'ㅣ'}: 'ㅟ',
		{'ㅡ', 'ㅣ'}: 'ㅢ',
	}
	compoundFinal = map[[2]rune]rune{
		{'ㄱ', 'ㄱ'}: 'ㄲ',
		{'ㄱ', 'ㅅ'}: 'ㄳ',
		{'ㄴ', 'ㅈ'}: 'ㄵ',
		{'ㄴ', 'ㅎ'}: 'ㄶ',
		{'ㄹ', 'ㄱ'}: 'ㄺ',
		{'ㄹ', 'ㅁ'}: 'ㄻ',
		{'ㄹ', 'ㅂ'}: 'ㄼ',
		{'ㄹ', 'ㅅ'}: 'ㄽ',
		{'ㄹ', 'ㅌ'}: 'ㄾ',
		{'ㄹ', 'ㅍ'}: 'ㄿ',
		{'ㄹ', 'ㅎ'}: 'ㅀ',
		{'ㅂ', 'ㅅ'}: 'ㅄ',
		{'ㅅ', 'ㅅ'}: 'ㅆ',
	}
)

var (
	legalInitialSet = invertToSet(doubleInitial)
	legalFinalSet   = invertToSet(compoundFinal)
	finalSplitTable = invertDouble(compoundFinal)
)

func invertDouble(src map[[2]rune]rune) map[rune][2]rune {
	dst := make(map[rune][2]rune, len(src))
	for pair, fused := range src {
		dst[fused] = pair
	}
	return dst
}

func invertToSet(src map[[2]rune]rune) map[rune]struct{} {
	dst := make(map[rune]struct{}, len(src))
	for _, fused := range src {
		dst[fused] = struct{}{}
	}
	return dst
}

// DoubleConsonant fuses two identical plain consonants into a doubled
// initial. Only the five doubling consonants have an entry.
func DoubleConsonant(c1, c2 rune) (rune, bool) {
	fused, ok := doubleInitial[[2]rune{c1, c2}]
	return fused, ok
}

// CombineVowel fuses an already placed vowel with a following plain
// vowel into a diphthong. Argument order matters.
func CombineVowel(v1, v2 rune) (rune, bool) {
	fused, ok := compoundMedial[[2]rune{v1, v2}]
	return fused, ok
}

// CombineFinal fuses the consonant already sitting in the final
// position with a following plain consonant into a final cluster.
// Argument order matters.
func CombineFinal(f, c rune) (rune, bool) {
	fused, ok := compoundFinal[[2]rune{f, c}]
	return fused, ok
}

// SplitFinal undoes CombineFinal for a compound final, yielding the
// pair it was fused from. Used when a trailing consonant has to be
// reinterpreted as the next block's initial.
func SplitFinal(f rune) (rune, rune, bool) {
	pair, ok := finalSplitTable[f]
	if !ok {
		return 0, 0, false
	}
	return pair[0], pair[1], true
}

// IsLegalInitial reports whether ch may occupy the initial position of
// a block: any plain consonant, or one of the five doubled consonants.
func IsLegalInitial(ch rune) bool {
	if _, ok := plainConsonantSet[ch]; ok {
		return true
	}
	_, ok := legalInitialSet[ch]
	return ok
}

// IsLegalFinal reports whether a compound consonant may occupy the
// final position of a block. The set is the thirteen final clusters,
// not the five doubled initials; ㄲ and ㅆ belong to both.
func IsLegalFinal(ch rune) bool {
	_, ok := legalFinalSet[ch]
	return ok
}

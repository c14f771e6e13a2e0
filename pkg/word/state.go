package word

// StateKind names the shape of the block currently under composition.
// The shapes are ordered by how much of the block is committed; a push
// never skips over an intermediate shape.
type StateKind int

const (
	// Nothing committed; waiting for the first consonant.
	ExpectingInitial StateKind = iota

	// One plain consonant down: it may still double (ㄷ -> ㄸ) or the
	// vowel may arrive (다).
	ExpectingDoubleInitialOrVowel

	// The initial is a compound and can only be followed by a vowel
	// (ㄸ -> 따).
	ExpectingVowel

	// Initial and plain vowel down: the vowel may still grow into a
	// diphthong (두 -> 둬) or a final may arrive (둔).
	ExpectingCompoundVowelOrFinal

	// The vowel is closed; only a final consonant can extend the block
	// (둬 -> 뒀).
	ExpectingFinal

	// A tentative final is in place: it may grow into a cluster
	// (달 -> 닳) or turn out to belong to the next block (다래).
	ExpectingCompoundFinalOrNextBlock

	// The final is a closed cluster; nothing more fits in this block
	// (닳 -> 달하).
	ExpectingNextBlock
)

func (k StateKind) String() string {
	switch k {
	case ExpectingInitial:
		return "expecting initial"
	case ExpectingDoubleInitialOrVowel:
		return "expecting double initial or vowel"
	case ExpectingVowel:
		return "expecting vowel"
	case ExpectingCompoundVowelOrFinal:
		return "expecting compound vowel or final"
	case ExpectingFinal:
		return "expecting final"
	case ExpectingCompoundFinalOrNextBlock:
		return "expecting compound final or next block"
	case ExpectingNextBlock:
		return "expecting next block"
	default:
		return "unknown"
	}
}

// State is the live block. Initial, Vowel and Final are populated
// progressively; which of them are meaningful follows from Kind alone,
// so comparing States structurally also compares shapes.
type State struct {
	Kind    StateKind
	Initial rune
	Vowel   rune
	Final   rune
}

// hasVowel reports whether the state has committed both an initial and
// a vowel, i.e. whether it could finalize into a block right now.
func (s State) hasVowel() bool {
	switch s.Kind {
	case ExpectingCompoundVowelOrFinal, ExpectingFinal,
		ExpectingCompoundFinalOrNextBlock, ExpectingNextBlock:
		return true
	default:
		return false
	}
}

// pendingFinal reports whether the state holds a trailing consonant
// that a following vowel would claim for the next block.
func (s State) pendingFinal() bool {
	switch s.Kind {
	case ExpectingCompoundFinalOrNextBlock, ExpectingNextBlock:
		return true
	default:
		return false
	}
}

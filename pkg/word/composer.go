// Package word assembles a stream of individual jamo into syllable
// blocks, one letter at a time and without lookahead.
package word

import (
	"errors"
	"fmt"
	"strings"

	"hanword/pkg/block"
	"hanword/pkg/jamo"
)

// Disposition is the per-letter verdict of a push.
type Disposition int

const (
	// The letter extended the open block.
	Composable Disposition = iota

	// The open block is done; the returned letter seeds the next one.
	// The caller resolves it with StartNewBlock.
	StartNewBlock

	// The letter is phonotactically impossible in the current
	// position. The open block is left untouched.
	InvalidHangul

	// The rune is not a jamo at all; it passed through unconsumed.
	NonHangul
)

func (d Disposition) String() string {
	switch d {
	case Composable:
		return "composable"
	case StartNewBlock:
		return "start new block"
	case InvalidHangul:
		return "invalid hangul"
	default:
		return "non-hangul"
	}
}

// Result pairs a disposition with the rune it concerns. Ch is set for
// every disposition except Composable, which consumed its letter.
type Result struct {
	Disposition Disposition
	Ch          rune
}

var (
	// ErrIncompleteBlock rejects finalizing a block that has not yet
	// committed both an initial and a vowel.
	ErrIncompleteBlock = errors.New("open block has no initial and vowel yet")

	// ErrBadSeed rejects a restart letter that cannot begin a block.
	ErrBadSeed = errors.New("letter cannot begin a block")
)

// Composer owns the finished blocks of one word plus the single live
// block state. One instance per word; it is not safe for concurrent
// use, but independent instances share nothing mutable.
type Composer struct {
	blocks []block.Block
	cur    State
}

// New returns an empty composer positioned before the first block.
func New() *Composer {
	return &Composer{cur: State{Kind: ExpectingInitial}}
}

// Current exposes the live block state.
func (c *Composer) Current() State {
	return c.cur
}

// Blocks returns the finished blocks so far, oldest first.
func (c *Composer) Blocks() []block.Block {
	out := make([]block.Block, len(c.blocks))
	copy(out, c.blocks)
	return out
}

// Reset discards all progress and returns the composer to its initial
// position.
func (c *Composer) Reset() {
	c.blocks = c.blocks[:0]
	c.cur = State{Kind: ExpectingInitial}
}

// Push feeds one classified letter into the live block. Invalid input
// never mutates state and never aborts; every rejection comes back as
// a disposition the caller must act on.
func (c *Composer) Push(l jamo.Letter) Result {
	switch l.Kind {
	case jamo.Consonant:
		return c.pushConsonant(l.Ch)
	case jamo.CompoundConsonant:
		return c.pushCompoundConsonant(l.Ch)
	case jamo.Vowel:
		return c.pushVowel(l.Ch)
	case jamo.CompoundVowel:
		return c.pushCompoundVowel(l.Ch)
	default:
		return Result{Disposition: NonHangul, Ch: l.Ch}
	}
}

// PushRune classifies ch and pushes it. Non-jamo runes pass straight
// through without touching the live block.
func (c *Composer) PushRune(ch rune) Result {
	return c.Push(jamo.Classify(ch))
}

func (c *Composer) pushConsonant(ch rune) Result {
	switch c.cur.Kind {
	case ExpectingInitial:
		c.cur = State{Kind: ExpectingDoubleInitialOrVowel, Initial: ch}
		return Result{Disposition: Composable}

	case ExpectingDoubleInitialOrVowel:
		// A second consonant either doubles the initial or is stuck:
		// no vowel has closed the first block, so it cannot seed a new
		// one either.
		if fused, ok := jamo.DoubleConsonant(c.cur.Initial, ch); ok {
			c.cur = State{Kind: ExpectingVowel, Initial: fused}
			return Result{Disposition: Composable}
		}
		return Result{Disposition: InvalidHangul, Ch: ch}

	case ExpectingVowel:
		return Result{Disposition: InvalidHangul, Ch: ch}

	case ExpectingCompoundVowelOrFinal, ExpectingFinal:
		c.cur = State{Kind: ExpectingCompoundFinalOrNextBlock, Initial: c.cur.Initial, Vowel: c.cur.Vowel, Final: ch}
		return Result{Disposition: Composable}

	case ExpectingCompoundFinalOrNextBlock:
		if fused, ok := jamo.CombineFinal(c.cur.Final, ch); ok {
			c.cur = State{Kind: ExpectingNextBlock, Initial: c.cur.Initial, Vowel: c.cur.Vowel, Final: fused}
			return Result{Disposition: Composable}
		}
		return Result{Disposition: StartNewBlock, Ch: ch}

	default: // ExpectingNextBlock
		return Result{Disposition: StartNewBlock, Ch: ch}
	}
}

func (c *Composer) pushCompoundConsonant(ch rune) Result {
	switch c.cur.Kind {
	case ExpectingInitial:
		if jamo.IsLegalInitial(ch) {
			c.cur = State{Kind: ExpectingVowel, Initial: ch}
			return Result{Disposition: Composable}
		}
		return Result{Disposition: InvalidHangul, Ch: ch}

	case ExpectingDoubleInitialOrVowel, ExpectingVowel:
		return Result{Disposition: InvalidHangul, Ch: ch}

	case ExpectingCompoundVowelOrFinal, ExpectingFinal:
		if jamo.IsLegalFinal(ch) {
			// A cluster that arrives as one letter is already closed;
			// nothing can fuse onto it.
			c.cur = State{Kind: ExpectingNextBlock, Initial: c.cur.Initial, Vowel: c.cur.Vowel, Final: ch}
			return Result{Disposition: Composable}
		}
		if jamo.IsLegalInitial(ch) {
			return Result{Disposition: StartNewBlock, Ch: ch}
		}
		return Result{Disposition: InvalidHangul, Ch: ch}

	case ExpectingCompoundFinalOrNextBlock, ExpectingNextBlock:
		// Cluster fusion only ever consumes a plain consonant, so a
		// compound here can at best open the next block.
		if fused, ok := jamo.CombineFinal(c.cur.Final, ch); ok {
			c.cur = State{Kind: ExpectingNextBlock, Initial: c.cur.Initial, Vowel: c.cur.Vowel, Final: fused}
			return Result{Disposition: Composable}
		}
		if jamo.IsLegalInitial(ch) {
			return Result{Disposition: StartNewBlock, Ch: ch}
		}
		return Result{Disposition: InvalidHangul, Ch: ch}

	default:
		return Result{Disposition: InvalidHangul, Ch: ch}
	}
}

func (c *Composer) pushVowel(ch rune) Result {
	switch c.cur.Kind {
	case ExpectingInitial:
		// A block cannot begin with a vowel.
		return Result{Disposition: InvalidHangul, Ch: ch}

	case ExpectingDoubleInitialOrVowel, ExpectingVowel:
		c.cur = State{Kind: ExpectingCompoundVowelOrFinal, Initial: c.cur.Initial, Vowel: ch}
		return Result{Disposition: Composable}

	case ExpectingCompoundVowelOrFinal:
		if fused, ok := jamo.CombineVowel(c.cur.Vowel, ch); ok {
			c.cur = State{Kind: ExpectingFinal, Initial: c.cur.Initial, Vowel: fused}
			return Result{Disposition: Composable}
		}
		return Result{Disposition: InvalidHangul, Ch: ch}

	case ExpectingFinal:
		return Result{Disposition: InvalidHangul, Ch: ch}

	default: // ExpectingCompoundFinalOrNextBlock, ExpectingNextBlock
		// The trailing consonant belongs to the next block once a
		// vowel follows it; StartNewBlock carries the reinterpretation.
		return Result{Disposition: StartNewBlock, Ch: ch}
	}
}

func (c *Composer) pushCompoundVowel(ch rune) Result {
	switch c.cur.Kind {
	case ExpectingDoubleInitialOrVowel, ExpectingVowel:
		// A compound vowel arrives whole and cannot grow further.
		c.cur = State{Kind: ExpectingFinal, Initial: c.cur.Initial, Vowel: ch}
		return Result{Disposition: Composable}

	case ExpectingCompoundFinalOrNextBlock, ExpectingNextBlock:
		return Result{Disposition: StartNewBlock, Ch: ch}

	default:
		return Result{Disposition: InvalidHangul, Ch: ch}
	}
}

// StartNewBlock finalizes the open block and reseeds the live state
// with l. It is the required follow-up to a StartNewBlock disposition.
//
// A consonant seed closes the block as it stands. A vowel seed means
// the pending trailing consonant was never a final at all: it moves
// over as the next block's initial (a fused cluster splits, its first
// half staying behind) and the vowel lands in the reseeded block.
func (c *Composer) StartNewBlock(l jamo.Letter) error {
	if !c.cur.hasVowel() {
		return fmt.Errorf("start new block with %q: %w", l.Ch, ErrIncompleteBlock)
	}

	switch l.Kind {
	case jamo.Consonant:
		if err := c.finalize(c.cur.Final); err != nil {
			return err
		}
		c.cur = State{Kind: ExpectingDoubleInitialOrVowel, Initial: l.Ch}
		return nil

	case jamo.CompoundConsonant:
		if !jamo.IsLegalInitial(l.Ch) {
			return fmt.Errorf("start new block with %q: %w", l.Ch, ErrBadSeed)
		}
		if err := c.finalize(c.cur.Final); err != nil {
			return err
		}
		c.cur = State{Kind: ExpectingVowel, Initial: l.Ch}
		return nil

	case jamo.Vowel, jamo.CompoundVowel:
		if !c.cur.pendingFinal() {
			return fmt.Errorf("start new block with vowel %q: %w", l.Ch, ErrBadSeed)
		}
		carry, err := c.carryFinal()
		if err != nil {
			return err
		}
		if res := c.Push(jamo.Classify(carry)); res.Disposition != Composable {
			return fmt.Errorf("carry %q into new block: %w", carry, ErrBadSeed)
		}
		if res := c.Push(l); res.Disposition != Composable {
			return fmt.Errorf("start new block with vowel %q: %w", l.Ch, ErrBadSeed)
		}
		return nil

	default:
		return fmt.Errorf("start new block with %q: %w", l.Ch, ErrBadSeed)
	}
}

// carryFinal closes the open block while handing its trailing
// consonant to the caller, and rewinds the live state to
// ExpectingInitial. A tentative final moves over whole; a closed
// cluster splits, the first half staying behind (닳 + ㅏ -> 달하).
func (c *Composer) carryFinal() (rune, error) {
	final := c.cur.Final
	if c.cur.Kind == ExpectingCompoundFinalOrNextBlock {
		return final, c.finalize(0)
	}
	kept, carried, ok := jamo.SplitFinal(final)
	if !ok {
		return 0, fmt.Errorf("carry final %q: %w", final, ErrBadSeed)
	}
	return carried, c.finalize(kept)
}

// finalize moves the live block, with the given final consonant, into
// the finished sequence.
func (c *Composer) finalize(final rune) error {
	b, err := block.Make(c.cur.Initial, c.cur.Vowel, final)
	if err != nil {
		return fmt.Errorf("finalize block: %w", err)
	}
	c.blocks = append(c.blocks, b)
	c.cur = State{Kind: ExpectingInitial}
	return nil
}

// String renders the finished blocks plus a best-effort view of the
// open block: the bare consonant while no vowel has arrived, the
// composed syllable once initial and vowel are in place. Calling it
// repeatedly without pushes yields identical output.
func (c *Composer) String() string {
	var b strings.Builder
	for _, blk := range c.blocks {
		b.WriteRune(blk.Rune())
	}
	switch c.cur.Kind {
	case ExpectingInitial:
	case ExpectingDoubleInitialOrVowel, ExpectingVowel:
		b.WriteRune(c.cur.Initial)
	default:
		b.WriteRune(block.Compose(c.cur.Initial, c.cur.Vowel, c.cur.Final))
	}
	return b.String()
}

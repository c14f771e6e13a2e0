package block

import (
	"errors"
	"testing"
)

func TestComposeKnownSyllables(t *testing.T) {
	cases := []struct {
		initial, vowel, final rune
		want                  rune
	}{
		{'ㅎ', 'ㅏ', 'ㄴ', '한'},
		{'ㄱ', 'ㅏ', 0, '가'},
		{'ㄱ', 'ㅏ', 'ㅂ', '갑'},
		{'ㄱ', 'ㅏ', 'ㅄ', '값'},
		{'ㄲ', 'ㅏ', 'ㄲ', '깎'},
		{'ㅇ', 'ㅓ', 'ㅄ', '없'},
		{'ㄷ', 'ㅏ', 'ㅀ', '닳'},
		{'ㅎ', 'ㅣ', 'ㅎ', '힣'},
	}
	for _, c := range cases {
		if got := Compose(c.initial, c.vowel, c.final); got != c.want {
			t.Fatalf("Compose(%q, %q, %q) = %q, want %q", c.initial, c.vowel, c.final, got, c.want)
		}
	}
}

func TestDecompose(t *testing.T) {
	b, err := Decompose('값')
	if err != nil {
		t.Fatalf("Decompose(값): %v", err)
	}
	if b.Initial != 'ㄱ' || b.Vowel != 'ㅏ' || b.Final != 'ㅄ' {
		t.Fatalf("Decompose(값) = %q %q %q", b.Initial, b.Vowel, b.Final)
	}

	b, err = Decompose('가')
	if err != nil {
		t.Fatalf("Decompose(가): %v", err)
	}
	if b.Final != 0 {
		t.Fatalf("가 has no final, got %q", b.Final)
	}
}

func TestDecomposeRejectsNonSyllables(t *testing.T) {
	for _, ch := range []rune{'a', 'ㄱ', 'ㅏ', 0xABFF, 0xD7A4} {
		if _, err := Decompose(ch); !errors.Is(err, ErrNotSyllable) {
			t.Fatalf("Decompose(%q) should report ErrNotSyllable, got %v", ch, err)
		}
	}
}

func TestRoundTripAllTriples(t *testing.T) {
	for _, initial := range choseong {
		for _, vowel := range jungseong {
			for _, final := range jongseong {
				composed := Compose(initial, vowel, final)
				if !IsSyllable(composed) {
					t.Fatalf("Compose(%q, %q, %q) = %q outside the syllable range", initial, vowel, final, composed)
				}
				back, err := Decompose(composed)
				if err != nil {
					t.Fatalf("Decompose(%q): %v", composed, err)
				}
				if back.Initial != initial || back.Vowel != vowel || back.Final != final {
					t.Fatalf("round trip of (%q, %q, %q) came back as (%q, %q, %q)",
						initial, vowel, final, back.Initial, back.Vowel, back.Final)
				}
			}
		}
	}
}

func TestMakeValidates(t *testing.T) {
	if _, err := Make('ㄱ', 'ㅏ', 'ㅄ'); err != nil {
		t.Fatalf("Make(ㄱ, ㅏ, ㅄ): %v", err)
	}
	if _, err := Make('ㅏ', 'ㅏ', 0); err == nil {
		t.Fatalf("a vowel must not pass as initial")
	}
	if _, err := Make('ㄱ', 'ㄱ', 0); err == nil {
		t.Fatalf("a consonant must not pass as vowel")
	}
	if _, err := Make('ㄱ', 'ㅏ', 'ㄸ'); err == nil {
		t.Fatalf("ㄸ must not pass as final")
	}
}

func TestIsSyllableBounds(t *testing.T) {
	if !IsSyllable('가') || !IsSyllable('힣') {
		t.Fatalf("가 and 힣 bound the syllable range")
	}
	if IsSyllable('가' - 1) {
		t.Fatalf("rune before 가 is not a syllable")
	}
	if IsSyllable('힣' + 1) {
		t.Fatalf("rune after 힣 is not a syllable")
	}
}

package crypto

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// DoubleFiller separates two equal letters inside a digraph.
	DoubleFiller = 'X'
	// PadFiller completes a trailing unpaired letter.
	PadFiller = 'Z'
)

// Digraph is a pair of letters substituted as one unit.
type Digraph [2]byte

func (d Digraph) String() string {
	return string(d[:])
}

// Normalize upper-cases text, drops everything outside A-Z and folds J into I.
// Upper-casing uses full Unicode case mapping, so "ß" yields "SS".
func Normalize(text string) string {
	upper := cases.Upper(language.Und).String(text)

	out := make([]byte, 0, len(upper))
	for i := 0; i < len(upper); i++ {
		c := upper[i]
		if c < 'A' || c > 'Z' {
			continue
		}
		if c == 'J' {
			c = 'I'
		}
		out = append(out, c)
	}
	return string(out)
}

// Digraphs splits text into digraphs for encryption. Equal neighbours are
// split by DoubleFiller and a trailing single letter is padded with PadFiller,
// so no digraph ever holds the same letter twice.
func Digraphs(text string) []Digraph {
	letters := Normalize(text)

	pairs := make([]Digraph, 0, len(letters)/2+1)
	for i := 0; i < len(letters); {
		first := letters[i]
		if i+1 >= len(letters) {
			pairs = append(pairs, Digraph{first, PadFiller})
			i++
			continue
		}

		second := letters[i+1]
		if first == second {
			pairs = append(pairs, Digraph{first, DoubleFiller})
			i++
		} else {
			pairs = append(pairs, Digraph{first, second})
			i += 2
		}
	}
	return pairs
}

// CipherPairs splits text into consecutive pairs for decryption. Only an odd
// trailing letter is padded; equal neighbours are left alone.
func CipherPairs(text string) []Digraph {
	letters := Normalize(text)
	if len(letters)%2 != 0 {
		letters += string(PadFiller)
	}

	pairs := make([]Digraph, 0, len(letters)/2)
	for i := 0; i < len(letters); i += 2 {
		pairs = append(pairs, Digraph{letters[i], letters[i+1]})
	}
	return pairs
}

// Join concatenates digraphs without separators.
func Join(pairs []Digraph) string {
	out := make([]byte, 0, len(pairs)*2)
	for _, p := range pairs {
		out = append(out, p[0], p[1])
	}
	return string(out)
}

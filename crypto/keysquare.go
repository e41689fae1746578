// Package crypto contains the Playfair key square and cipher
package crypto

import (
	"strings"
)

const (
	// Size is the side length of the key square.
	Size = 5
	// Cells is the number of cells in the key square (A-Z without J).
	Cells = Size * Size
)

// GridPosition is a (row, column) coordinate inside the key square.
type GridPosition struct {
	Row int
	Col int
}

// KeySquare is the immutable 5x5 arrangement derived from a passphrase.
type KeySquare struct {
	cells [Cells]byte
	index [26]int8 // letter-'A' -> cell index, -1 for J
}

// NewKeySquare builds the key square for passphrase. Every string is accepted.
func NewKeySquare(passphrase string) *KeySquare {
	ks := &KeySquare{}
	for i := range ks.index {
		ks.index[i] = -1
	}

	var used [26]bool
	n := 0
	add := func(c byte) {
		if used[c-'A'] {
			return
		}
		used[c-'A'] = true
		ks.cells[n] = c
		ks.index[c-'A'] = int8(n)
		n++
	}

	for _, c := range []byte(Normalize(passphrase)) {
		add(c)
	}
	for c := byte('A'); c <= 'Z'; c++ {
		if c != 'J' {
			add(c)
		}
	}

	return ks
}

// Locate returns the grid position of letter. J is looked up as I.
// The boolean is false for anything outside A-Z.
func (ks *KeySquare) Locate(letter byte) (GridPosition, bool) {
	if letter == 'J' {
		letter = 'I'
	}
	if letter < 'A' || letter > 'Z' {
		return GridPosition{}, false
	}
	i := ks.index[letter-'A']
	if i < 0 {
		return GridPosition{}, false
	}
	return GridPosition{Row: int(i) / Size, Col: int(i) % Size}, true
}

// At returns the letter stored at pos.
func (ks *KeySquare) At(pos GridPosition) byte {
	return ks.cells[pos.Row*Size+pos.Col]
}

// Letters returns the 25 letters in row-major order.
func (ks *KeySquare) Letters() string {
	return string(ks.cells[:])
}

// Rows returns the square as five rows of single-letter strings.
func (ks *KeySquare) Rows() [][]string {
	rows := make([][]string, Size)
	for r := 0; r < Size; r++ {
		rows[r] = make([]string, Size)
		for c := 0; c < Size; c++ {
			rows[r][c] = string(ks.cells[r*Size+c])
		}
	}
	return rows
}

// String renders the square one row per line, each letter followed by a
// space, with a newline after every row.
func (ks *KeySquare) String() string {
	var sb strings.Builder
	sb.Grow(Cells*2 + Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			sb.WriteByte(ks.cells[r*Size+c])
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

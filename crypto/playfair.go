package crypto

import (
	"fmt"
	"strings"
)

// MaxKeyLength bounds passphrases accepted through ValidateKey.
const MaxKeyLength = 256

// Playfair encrypts and decrypts with a fixed key square.
// It holds no mutable state and is safe for concurrent use.
type Playfair struct {
	square *KeySquare
}

func NewPlayfair(passphrase string) *Playfair {
	return &Playfair{
		square: NewKeySquare(passphrase),
	}
}

// KeySquare returns the square the cipher was built with.
func (pf *Playfair) KeySquare() *KeySquare {
	return pf.square
}

func (pf *Playfair) Encrypt(plaintext string) string {
	return pf.transform(Digraphs(plaintext), 1)
}

func (pf *Playfair) Decrypt(ciphertext string) string {
	return pf.transform(CipherPairs(ciphertext), Size-1)
}

// transform substitutes every pair, moving shift cells along a shared row or
// column. A pair with a letter missing from the square contributes nothing.
func (pf *Playfair) transform(pairs []Digraph, shift int) string {
	out := make([]byte, 0, len(pairs)*2)

	for _, p := range pairs {
		a, okA := pf.square.Locate(p[0])
		b, okB := pf.square.Locate(p[1])
		if !okA || !okB {
			continue
		}

		switch {
		case a.Row == b.Row:
			a.Col = (a.Col + shift) % Size
			b.Col = (b.Col + shift) % Size
		case a.Col == b.Col:
			a.Row = (a.Row + shift) % Size
			b.Row = (b.Row + shift) % Size
		default:
			// Rectangle: swap columns, identical in both directions.
			a.Col, b.Col = b.Col, a.Col
		}

		out = append(out, pf.square.At(a), pf.square.At(b))
	}

	return string(out)
}

// ValidateKey validates if the key is suitable for a Playfair key square
func ValidateKey(key string, maxLength int) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("key cannot be empty")
	}
	if maxLength <= 0 {
		maxLength = MaxKeyLength
	}
	if len(key) > maxLength {
		return fmt.Errorf("key length cannot exceed %d characters", maxLength)
	}
	return nil
}

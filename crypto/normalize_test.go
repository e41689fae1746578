package crypto

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Hello, World!", "HELLOWORLD"},
		{"jump JJ", "IUMPII"},
		{"12 34 !?", ""},
		{"straße", "STRASSE"},
		{"café", "CAF"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func pairsString(pairs []Digraph) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

func TestDigraphs(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"BALLOON", "BA LX LO ON"},
		{"balloon", "BA LX LO ON"},
		{"HELLO", "HE LX LO"},
		{"A", "AZ"},
		{"AAA", "AX AX AZ"},
		{"b-a-l-l", "BA LX LZ"},
		{"jig", "IX IG"},
	}

	for _, tt := range tests {
		got := Digraphs(tt.in)
		if s := pairsString(got); s != tt.want {
			t.Errorf("Digraphs(%q) = %q, want %q", tt.in, s, tt.want)
		}
		for _, p := range got {
			if p[0] == p[1] {
				t.Errorf("Digraphs(%q) produced doubled pair %s", tt.in, p)
			}
		}
	}
}

func TestCipherPairs(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"ABCDE", "AB CD EZ"},
		{"AABB", "AA BB"},
		{"ab cd", "AB CD"},
		{"X", "XZ"},
	}

	for _, tt := range tests {
		if got := pairsString(CipherPairs(tt.in)); got != tt.want {
			t.Errorf("CipherPairs(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJoin(t *testing.T) {
	if got := Join(Digraphs("BALLOON")); got != "BALXLOON" {
		t.Fatalf("Join = %q", got)
	}
	if got := Join(nil); got != "" {
		t.Fatalf("Join(nil) = %q", got)
	}
}

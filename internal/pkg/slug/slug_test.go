package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Luxury Villas & Estates!", "luxury-villas--estates"},
		{"Hello World", "hello-world"},
		{"Already-Slugged", "already-slugged"},
		{"Lagos  Living", "lagos--living"},
		{"2024 Market Outlook", "2024-market-outlook"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Derive(tc.title), "title %q", tc.title)
	}
}

func TestDeriveIdempotent(t *testing.T) {
	once := Derive("Luxury Villas & Estates!")
	assert.Equal(t, once, Derive(once))
}

func TestDeriveCharacterSet(t *testing.T) {
	got := Derive("Luxury Villas & Estates!")
	for _, r := range got {
		ok := r == '-' || r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		assert.True(t, ok, "unexpected rune %q in slug %q", r, got)
	}
}

package core

import "testing"

func TestDefaultAssetsResolveBallTexture(t *testing.T) {
	a := DefaultAssets()

	h := a.Load("textures/circle.png")
	if h == TexturePlaceholder {
		t.Fatal("circle texture should be known")
	}
	if g := a.Glyph(h); g != '●' {
		t.Errorf("Glyph() = %q, expected '●'", g)
	}
}

func TestUnknownAssetUsesPlaceholder(t *testing.T) {
	a := NewGlyphAssets(map[string]rune{"x": 'x'}, '?')

	tests := []struct {
		name   string
		handle TextureHandle
	}{
		{"unknown name", a.Load("missing.png")},
		{"negative handle", TextureHandle(-1)},
		{"out of range handle", TextureHandle(99)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if g := a.Glyph(tc.handle); g != '?' {
				t.Errorf("Glyph(%d) = %q, expected placeholder", tc.handle, g)
			}
		})
	}
}

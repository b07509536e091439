package core

import "testing"

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected float64
	}{
		{"none", nil, 0},
		{"left", []Action{ActionLeft}, -1},
		{"right", []Action{ActionRight}, 1},
		{"both cancel", []Action{ActionLeft, ActionRight}, 0},
		{"unrelated", []Action{ActionPlay}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.Direction(); got != tc.expected {
				t.Errorf("Direction() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	clone := f.Clone()
	f.Clear()

	if f.Has(ActionLeft) {
		t.Error("Clear should remove actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionRight)
	if !zero.Has(ActionRight) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestGlyphAssets(t *testing.T) {
	a := DefaultAssets()

	h := a.Load("textures/circle.png")
	if h == TexturePlaceholder {
		t.Fatal("circle texture should resolve")
	}
	if a.Glyph(h) != '●' {
		t.Errorf("Glyph = %q, expected '●'", a.Glyph(h))
	}

	missing := a.Load("textures/missing.png")
	if missing != TexturePlaceholder {
		t.Errorf("unknown texture should give placeholder handle, got %d", missing)
	}
	if a.Glyph(missing) != '■' || a.Glyph(TextureHandle(99)) != '■' {
		t.Error("placeholder glyph expected for unknown handles")
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("salmon")
	if err != nil || c != ColorSalmon {
		t.Errorf("ParseColor(salmon) = %v, %v", c, err)
	}
	if _, err := ParseColor("chartreuse"); err == nil {
		t.Error("unknown color should fail")
	}

	var back Color
	text, _ := ColorLavender.MarshalText()
	if err := back.UnmarshalText(text); err != nil || back != ColorLavender {
		t.Errorf("text round trip gave %v, %v", back, err)
	}
}

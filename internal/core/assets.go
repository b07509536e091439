package core

// TextureHandle refers to a texture resolved by an AssetLoader.
type TextureHandle int

// TexturePlaceholder is returned for names the loader does not know.
const TexturePlaceholder TextureHandle = 0

// AssetLoader resolves logical asset names to texture handles and
// texture handles to the glyph a cell renderer should draw.
type AssetLoader interface {
	Load(name string) TextureHandle
	Glyph(h TextureHandle) rune
}

// GlyphAssets is an AssetLoader backed by a fixed name-to-glyph table.
type GlyphAssets struct {
	handles     map[string]TextureHandle
	glyphs      []rune
	placeholder rune
}

// NewGlyphAssets creates a loader from a name-to-glyph table.
// Unknown names resolve to the placeholder glyph.
func NewGlyphAssets(table map[string]rune, placeholder rune) *GlyphAssets {
	a := &GlyphAssets{
		handles:     make(map[string]TextureHandle, len(table)),
		glyphs:      []rune{placeholder},
		placeholder: placeholder,
	}
	for name, glyph := range table {
		a.handles[name] = TextureHandle(len(a.glyphs))
		a.glyphs = append(a.glyphs, glyph)
	}
	return a
}

// DefaultAssets returns the built-in terminal texture table.
func DefaultAssets() *GlyphAssets {
	return NewGlyphAssets(map[string]rune{
		"textures/circle.png": '●',
	}, '■')
}

// Load returns the handle for name, or TexturePlaceholder.
func (a *GlyphAssets) Load(name string) TextureHandle {
	if h, ok := a.handles[name]; ok {
		return h
	}
	return TexturePlaceholder
}

// Glyph returns the glyph for a handle, or the placeholder glyph.
func (a *GlyphAssets) Glyph(h TextureHandle) rune {
	if h < 0 || int(h) >= len(a.glyphs) {
		return a.placeholder
	}
	return a.glyphs[h]
}

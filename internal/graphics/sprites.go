package graphics

import (
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"

	"serfpopup/internal/popup"

	"github.com/hajimehoshi/ebiten/v2"
)

type SpriteManager struct {
	dir     string
	sprites map[popup.Sprite]*ebiten.Image
	missing map[popup.Sprite]bool // Cache misses to avoid repeated file checks
}

func NewSpriteManager(dir string) *SpriteManager {
	return &SpriteManager{
		dir:     dir,
		sprites: make(map[popup.Sprite]*ebiten.Image),
		missing: make(map[popup.Sprite]bool),
	}
}

// SpritePath is where the image of s is looked up:
// <dir>/<set>/<index>.png.
func (sm *SpriteManager) SpritePath(s popup.Sprite) string {
	return filepath.Join(sm.dir, s.Set.String(), strconv.Itoa(s.Index)+".png")
}

func (sm *SpriteManager) GetSprite(s popup.Sprite) *ebiten.Image {
	if sprite, exists := sm.sprites[s]; exists {
		return sprite
	}

	if !sm.missing[s] {
		if img, err := loadImage(sm.SpritePath(s)); err == nil {
			sprite := ebiten.NewImageFromImage(img)
			sm.sprites[s] = sprite
			return sprite
		}
		sm.missing[s] = true
	}

	// Placeholders are cached like real sprites
	sprite := sm.createPlaceholder(s)
	sm.sprites[s] = sprite
	return sprite
}

// Missing reports whether s was looked up and had no image file.
func (sm *SpriteManager) Missing(s popup.Sprite) bool {
	return sm.missing[s]
}

func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	return img, err
}

func (sm *SpriteManager) createPlaceholder(s popup.Sprite) *ebiten.Image {
	w, h := PlaceholderSize(s)
	img := ebiten.NewImage(w, h)
	img.Fill(PlaceholderColor(s))
	return img
}

// PlaceholderSize is the size of the stand-in image for a missing sprite.
func PlaceholderSize(s popup.Sprite) (int, int) {
	switch s.Set {
	case popup.SetFramePopup:
		switch s.Index {
		case 0:
			return popup.Width, 9
		case 1:
			return popup.Width, 7
		default:
			return 8, 144
		}
	case popup.SetMapObject:
		return 32, 32
	}
	return 16, 16
}

// PlaceholderColor tints a missing sprite by set so the layout stays
// readable without assets.
func PlaceholderColor(s popup.Sprite) color.RGBA {
	shade := uint8(64 + (s.Index*37)%128)
	switch s.Set {
	case popup.SetFramePopup:
		return color.RGBA{96, 72, 40, 255} // Wooden frame
	case popup.SetMapObject:
		return color.RGBA{shade, 0, shade, 255} // Purple for buildings
	case popup.SetIcon:
		return color.RGBA{0, shade, shade / 2, 255} // Green for icons
	}
	return color.RGBA{128, 128, 128, 255} // Gray for unknown
}

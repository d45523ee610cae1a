package graphics

import (
	"strconv"

	"serfpopup/internal/popup"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Frame draws popup graphics onto an ebiten image with the popup's
// top-left corner at X, Y.
type Frame struct {
	Screen  *ebiten.Image
	Sprites *SpriteManager
	X, Y    int
}

func NewFrame(screen *ebiten.Image, sprites *SpriteManager, x, y int) *Frame {
	return &Frame{Screen: screen, Sprites: sprites, X: x, Y: y}
}

func (f *Frame) DrawSprite(s popup.Sprite, x, y int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(f.X+x), float64(f.Y+y))
	f.Screen.DrawImage(f.Sprites.GetSprite(s), op)
}

// DrawTransparentSprite draws s blended over what is below.
func (f *Frame) DrawTransparentSprite(s popup.Sprite, x, y int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(f.X+x), float64(f.Y+y))
	op.ColorScale.ScaleAlpha(0.85)
	f.Screen.DrawImage(f.Sprites.GetSprite(s), op)
}

func (f *Frame) FillRect(x, y, w, h, color int) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(f.Screen, float32(f.X+x), float32(f.Y+y), float32(w), float32(h), Color(color), false)
}

func (f *Frame) DrawString(x, y, color int, s string) {
	face := basicfont.Face7x13
	ebitext.Draw(f.Screen, s, face, f.X+x, f.Y+y+face.Ascent, Color(color))
}

func (f *Frame) DrawNumber(x, y, color, n int) {
	f.DrawString(x, y, color, strconv.Itoa(n))
}

// TextWidth is the pixel width of s in the popup font.
func TextWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Round()
}

// Contains reports whether screen position sx, sy lies on the popup.
func (f *Frame) Contains(sx, sy int) bool {
	return sx >= f.X && sx < f.X+popup.Width && sy >= f.Y && sy < f.Y+popup.Height
}

// Local converts a screen position to popup coordinates.
func (f *Frame) Local(sx, sy int) (int, int) {
	return sx - f.X, sy - f.Y
}

package graphics

import (
	"image/color"
	"path/filepath"
	"testing"

	"serfpopup/internal/popup"
)

// Frame must satisfy the popup's drawing surface.
var _ popup.Frame = (*Frame)(nil)

func TestSpritePath(t *testing.T) {
	sm := NewSpriteManager("assets/sprites")
	tests := []struct {
		sprite popup.Sprite
		want   string
	}{
		{popup.Sprite{Set: popup.SetIcon, Index: 236}, "assets/sprites/icon/236.png"},
		{popup.Sprite{Set: popup.SetMapObject, Index: 0xa7}, "assets/sprites/map_object/167.png"},
		{popup.Sprite{Set: popup.SetFramePopup, Index: 2}, "assets/sprites/frame_popup/2.png"},
	}
	for _, tt := range tests {
		if got := sm.SpritePath(tt.sprite); got != filepath.FromSlash(tt.want) {
			t.Errorf("SpritePath(%+v) = %q, want %q", tt.sprite, got, tt.want)
		}
	}
}

func TestPlaceholderSize(t *testing.T) {
	tests := []struct {
		sprite popup.Sprite
		w, h   int
	}{
		{popup.Sprite{Set: popup.SetFramePopup, Index: 0}, popup.Width, 9},
		{popup.Sprite{Set: popup.SetFramePopup, Index: 1}, popup.Width, 7},
		{popup.Sprite{Set: popup.SetFramePopup, Index: 3}, 8, 144},
		{popup.Sprite{Set: popup.SetIcon, Index: 5}, 16, 16},
		{popup.Sprite{Set: popup.SetMapObject, Index: 0xb2}, 32, 32},
	}
	for _, tt := range tests {
		if w, h := PlaceholderSize(tt.sprite); w != tt.w || h != tt.h {
			t.Errorf("PlaceholderSize(%+v) = %dx%d, want %dx%d", tt.sprite, w, h, tt.w, tt.h)
		}
	}

	// The frame pieces cover the popup: top, bottom and both sides.
	top, side := 9, 144
	if top+side+7 != popup.Height {
		t.Fatalf("frame heights add up to %d, want %d", top+side+7, popup.Height)
	}
}

func TestPlaceholderColorsDifferBySet(t *testing.T) {
	icon := PlaceholderColor(popup.Sprite{Set: popup.SetIcon, Index: 1})
	building := PlaceholderColor(popup.Sprite{Set: popup.SetMapObject, Index: 1})
	frame := PlaceholderColor(popup.Sprite{Set: popup.SetFramePopup, Index: 1})
	if icon == building || icon == frame || building == frame {
		t.Fatalf("placeholder colors collide: %v %v %v", icon, building, frame)
	}
	for _, c := range []color.RGBA{icon, building, frame} {
		if c.A != 255 {
			t.Fatalf("placeholder %v is not opaque", c)
		}
	}
}

func TestPalette(t *testing.T) {
	if Color(31) != (color.RGBA{0, 208, 64, 255}) {
		t.Fatalf("text green = %v", Color(31))
	}
	if Color(256) != Color(0) || Color(-1) != Color(255) {
		t.Fatal("indices do not wrap")
	}
	if Color(100) != (color.RGBA{100, 100, 100, 255}) {
		t.Fatalf("unnamed entry = %v", Color(100))
	}
	seen := map[color.RGBA]int{}
	for _, i := range []int{64, 72, 80, 88} {
		if j, ok := seen[Color(i)]; ok {
			t.Fatalf("players %d and %d share a color", j, i)
		}
		seen[Color(i)] = i
	}
}

func TestFrameContains(t *testing.T) {
	f := &Frame{X: 88, Y: 20}
	tests := []struct {
		x, y int
		want bool
	}{
		{88, 20, true},
		{88 + popup.Width - 1, 20 + popup.Height - 1, true},
		{88 + popup.Width, 20, false},
		{87, 30, false},
		{100, 19, false},
	}
	for _, tt := range tests {
		if got := f.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if x, y := f.Local(100, 40); x != 12 || y != 20 {
		t.Fatalf("Local = %d,%d", x, y)
	}
}

func TestTextWidth(t *testing.T) {
	if w := TextWidth("Music"); w != 5*7 {
		t.Fatalf("TextWidth(Music) = %d, want 35", w)
	}
}

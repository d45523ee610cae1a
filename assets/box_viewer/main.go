// Command box_viewer pages through every popup box drawn against the demo
// world and lists the sprites each box uses that have no image file.
package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"sort"

	"serfpopup/internal/config"
	"serfpopup/internal/game"
	"serfpopup/internal/graphics"
	"serfpopup/internal/popup"
	"serfpopup/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	windowWidth  = 960
	windowHeight = 560
	boxScale     = 3
	padding      = 16
	lineHeight   = 16
)

// countingFrame records the sprites a box draws.
type countingFrame struct {
	*graphics.Frame
	used map[popup.Sprite]bool
}

func (f *countingFrame) DrawSprite(s popup.Sprite, x, y int) {
	f.used[s] = true
	f.Frame.DrawSprite(s, x, y)
}

func (f *countingFrame) DrawTransparentSprite(s popup.Sprite, x, y int) {
	f.used[s] = true
	f.Frame.DrawTransparentSprite(s, x, y)
}

type viewer struct {
	game    *game.Game
	sprites *graphics.SpriteManager
	boxes   []popup.Box
	index   int
	canvas  *ebiten.Image

	used   []popup.Sprite
	closed bool
}

func main() {
	ensureRuntimeCWD()

	cfg := config.MustLoadConfig("config.yaml")
	world := sim.NewDemoGame(sim.DemoConfig{
		Width:       cfg.World.Width,
		Height:      cfg.World.Height,
		Seed:        cfg.World.Seed,
		Players:     cfg.World.Players,
		WarmupTicks: cfg.World.WarmupTicks,
	})

	v := &viewer{
		game:    game.New(cfg, world, nil),
		sprites: graphics.NewSpriteManager(cfg.Assets.SpritesDir),
		boxes:   popup.Boxes(),
		canvas:  ebiten.NewImage(popup.Width, popup.Height),
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Serf Popup Box Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		v.index = (v.index + 1) % len(v.boxes)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		v.index--
		if v.index < 0 {
			v.index = len(v.boxes) - 1
		}
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 15, 22, 255})

	box := v.boxes[v.index]
	v.game.OpenPopup(box)
	v.canvas.Clear()
	f := &countingFrame{Frame: graphics.NewFrame(v.canvas, v.sprites, 0, 0), used: map[popup.Sprite]bool{}}
	v.game.Popup().Draw(f)
	v.closed = !v.game.Popup().Displayed()
	v.used = sortedSprites(f.used)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(boxScale, boxScale)
	op.GeoM.Translate(padding, padding)
	screen.DrawImage(v.canvas, op)
	drawRectBorder(screen, padding-2, padding-2, popup.Width*boxScale+4, popup.Height*boxScale+4, 2, color.RGBA{70, 70, 90, 255})

	v.drawSidebar(screen, padding*2+popup.Width*boxScale, padding)
}

func (v *viewer) drawSidebar(screen *ebiten.Image, x, y int) {
	box := v.boxes[v.index]
	lines := []string{
		fmt.Sprintf("Box %d/%d: %s", v.index+1, len(v.boxes), box),
		"Left/Right (or A/D) to switch boxes, Esc to quit",
		"",
		fmt.Sprintf("Sprites drawn: %d", len(v.used)),
	}
	if v.closed {
		lines = append(lines, "Box closed itself: nothing to show")
	}

	missing := 0
	for _, s := range v.used {
		if v.sprites.Missing(s) {
			missing++
		}
	}
	lines = append(lines, fmt.Sprintf("Missing images: %d", missing), "")

	row := y
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x, row)
		row += lineHeight
	}
	for _, s := range v.used {
		if !v.sprites.Missing(s) {
			continue
		}
		if row > windowHeight-padding-lineHeight {
			ebitenutil.DebugPrintAt(screen, "...", x, row)
			break
		}
		ebitenutil.DebugPrintAt(screen, v.sprites.SpritePath(s), x, row)
		row += lineHeight
	}
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return windowWidth, windowHeight
}

func sortedSprites(set map[popup.Sprite]bool) []popup.Sprite {
	out := make([]popup.Sprite, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Set != out[j].Set {
			return out[i].Set < out[j].Set
		}
		return out[i].Index < out[j].Index
	})
	return out
}

func drawRectBorder(screen *ebiten.Image, x, y, w, h, thickness int, clr color.RGBA) {
	t := float32(thickness)
	fx := float32(x)
	fy := float32(y)
	fw := float32(w)
	fh := float32(h)
	vector.DrawFilledRect(screen, fx, fy, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy+fh-t, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy, t, fh, clr, false)
	vector.DrawFilledRect(screen, fx+fw-t, fy, t, fh, clr, false)
}

func ensureRuntimeCWD() {
	if _, err := os.Stat("config.yaml"); err == nil {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	execDir := filepath.Dir(exe)
	_ = os.Chdir(execDir)
}

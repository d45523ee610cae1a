package game

import (
	"time"

	"serfpopup/internal/graphics"
	"serfpopup/internal/minimap"
	"serfpopup/internal/popup"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type queuedClick struct {
	x, y int
	at   int64
}

// clickBufferMs is how long a click waits for a handler before it is
// dropped.
const clickBufferMs = 250

// updateMouseState should be called once per frame before input handling.
func (g *Game) updateMouseState() {
	now := time.Now().UnixMilli()
	g.pruneClickQueue(now)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.queueLeftClick(x, y, now)
	}
}

func (g *Game) queueLeftClick(x, y int, at int64) {
	g.mouseLeftClicks = append(g.mouseLeftClicks, queuedClick{x: x, y: y, at: at})
}

// consumeLeftClickIn consumes the oldest queued left-click inside the bounds.
// Bounds are inclusive-exclusive: [x1,x2) and [y1,y2).
func (g *Game) consumeLeftClickIn(x1, y1, x2, y2 int) (queuedClick, bool) {
	for i, click := range g.mouseLeftClicks {
		if click.x >= x1 && click.x < x2 && click.y >= y1 && click.y < y2 {
			g.mouseLeftClicks = append(g.mouseLeftClicks[:i], g.mouseLeftClicks[i+1:]...)
			return click, true
		}
	}
	return queuedClick{}, false
}

func (g *Game) pruneClickQueue(now int64) {
	if len(g.mouseLeftClicks) == 0 {
		return
	}
	keep := g.mouseLeftClicks[:0]
	for _, click := range g.mouseLeftClicks {
		if now-click.at <= clickBufferMs {
			keep = append(keep, click)
		}
	}
	g.mouseLeftClicks = keep
}

// popupArea is where the popup sits on screen.
func (g *Game) popupArea() graphics.Frame {
	return graphics.Frame{X: g.cfg.Popup.X, Y: g.cfg.Popup.Y}
}

// handleClicks routes queued clicks to the popup, then to the map view.
// A click on the popup while it is shown never reaches the map.
func (g *Game) handleClicks() {
	if g.popup.Displayed() {
		area := g.popupArea()
		for {
			click, ok := g.consumeLeftClickIn(area.X, area.Y, area.X+popup.Width, area.Y+popup.Height)
			if !ok {
				break
			}
			x, y := area.Local(click.x, click.y)
			g.popup.HandleClickLeft(x, y)
			if !g.popup.Displayed() {
				break
			}
		}
	}
	for {
		click, ok := g.consumeLeftClickIn(mapX, mapY, mapX+minimap.Size, mapY+minimap.Size)
		if !ok {
			break
		}
		g.mapView.HandleClick(click.x-mapX, click.y-mapY)
	}
}

// Package popup implements the in-game dialog boxes: building menus,
// statistics, settings and confirmations. A Popup shows one Box at a
// time, draws it from static layout tables and live player state, and
// turns left clicks into actions through per-box click maps.
package popup

import (
	"serfpopup/internal/minimap"
	"serfpopup/internal/sound"
)

// Size of the popup including its frame.
const (
	Width  = 144
	Height = 160
)

// Offset of the content area inside the frame.
const (
	contentX = 8
	contentY = 9

	// Clicks are shifted by 8 on both axes before matching.
	clickOffset = 8
)

// Popup is a dialog window owned by an Interface. It is not safe for
// concurrent use; all calls happen on the game loop.
type Popup struct {
	owner   Interface
	game    Game
	audio   Audio
	display Display

	box       Box
	displayed bool
	redraw    bool
	minimap   *minimap.Minimap

	lastAction Action
	hasAction  bool
}

// New returns a hidden popup. audio and display may be nil.
func New(owner Interface, game Game, audio Audio, display Display) *Popup {
	return &Popup{
		owner:   owner,
		game:    game,
		audio:   audio,
		display: display,
		minimap: minimap.New(game),
	}
}

// Show switches to box and makes the popup visible.
func (p *Popup) Show(box Box) {
	p.SetBox(box)
	p.displayed = true
}

// Hide clears the box and hides the popup.
func (p *Popup) Hide() {
	p.SetBox(BoxNone)
	p.displayed = false
}

// SetBox switches the shown dialog. The minimap is only displayed with
// BoxMap.
func (p *Popup) SetBox(box Box) {
	p.box = box
	p.minimap.SetDisplayed(box == BoxMap)
	p.redraw = true
}

func (p *Popup) Box() Box        { return p.box }
func (p *Popup) Displayed() bool { return p.displayed }

// NeedsRedraw reports whether the popup changed since ClearRedraw.
func (p *Popup) NeedsRedraw() bool { return p.redraw }
func (p *Popup) ClearRedraw()      { p.redraw = false }

func (p *Popup) Minimap() *minimap.Minimap { return p.minimap }

// LastAction returns the most recently dispatched action.
func (p *Popup) LastAction() (Action, bool) { return p.lastAction, p.hasAction }

// HandleClickLeft dispatches a left click at x, y in popup coordinates.
// It reports whether a click region of the current box was hit.
func (p *Popup) HandleClickLeft(x, y int) bool {
	x -= clickOffset
	y -= clickOffset

	maps := clickMaps(p.box, p.game.DemoMode())
	if maps == nil {
		logDebug("unhandled box: %s", p.box)
		return false
	}
	for _, m := range maps {
		if r, rx, ry, ok := m.Hit(x, y); ok {
			logDebug("click %d,%d in %s -> %s", x, y, p.box, r.Action)
			p.playSound(sound.SfxClick)
			p.HandleAction(r.Action, rx, ry)
			return true
		}
	}
	return false
}

func (p *Popup) playSound(sfx sound.Sfx) {
	if p.audio != nil {
		p.audio.PlaySound(sfx)
	}
}

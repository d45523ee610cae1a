package game

import (
	"errors"

	"serfpopup/internal/popup"
	"serfpopup/internal/sim"
	"serfpopup/internal/sound"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type keyBinding struct {
	key ebiten.Key
	fn  func(g *Game)
}

var keyBindings = []keyBinding{
	{ebiten.KeyM, func(g *Game) { g.toggleBox(popup.BoxMap) }},
	{ebiten.KeyB, (*Game).openBuildMenu},
	{ebiten.KeyEnter, (*Game).inspect},
	{ebiten.KeyA, (*Game).prepareAttack},
	{ebiten.KeyG, (*Game).groundAnalysis},
	{ebiten.KeyD, (*Game).confirmDemolish},
	{ebiten.KeyR, (*Game).openResourceDirections},
	{ebiten.KeyS, func(g *Game) { g.toggleBox(popup.BoxStatSelect) }},
	{ebiten.KeyO, func(g *Game) { g.toggleBox(popup.BoxSettSelect) }},
	{ebiten.KeyF, func(g *Game) { g.toggleBox(popup.BoxPlayerFaces) }},
	{ebiten.KeyP, func(g *Game) { g.toggleBox(popup.BoxOptions) }},
	{ebiten.KeyU, (*Game).toggleMusic},
	{ebiten.KeyQ, func(g *Game) { g.OpenPopup(popup.BoxQuitConfirm) }},
	{ebiten.KeyEscape, (*Game).ClosePopup},
	{ebiten.KeyArrowLeft, func(g *Game) { g.moveCursorBy(-1, 0) }},
	{ebiten.KeyArrowRight, func(g *Game) { g.moveCursorBy(1, 0) }},
	{ebiten.KeyArrowUp, func(g *Game) { g.moveCursorBy(0, -1) }},
	{ebiten.KeyArrowDown, func(g *Game) { g.moveCursorBy(0, 1) }},
}

func (g *Game) handleKeys() {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			b.fn(g)
		}
	}
}

// toggleBox opens box, or closes the popup if box is already shown.
func (g *Game) toggleBox(box popup.Box) {
	if g.popup.Displayed() && g.popup.Box() == box {
		g.ClosePopup()
		return
	}
	g.OpenPopup(box)
}

// openBuildMenu picks the building menu that fits the cursor site.
func (g *Game) openBuildMenu() {
	switch {
	case g.world.Terrain(g.cursor) == sim.TerrainMountain:
		g.OpenPopup(popup.BoxMineBuilding)
	case g.world.CanBuildMilitary(g.cursor):
		g.OpenPopup(popup.BoxBasicBldFlip)
	default:
		g.OpenPopup(popup.BoxBasicBld)
	}
}

// inspectBox is the panel that describes b.
func inspectBox(b *sim.Building) popup.Box {
	switch {
	case !b.Done:
		return popup.BoxOrderedBld
	case b.IsInventory():
		return popup.BoxCastleRes
	case b.Type.IsMine():
		return popup.BoxMineOutput
	case b.Type.IsMilitary():
		return popup.BoxDefenders
	}
	return popup.BoxBldStock
}

// inspect opens the panel of whatever stands at the cursor, or the
// building menu on empty ground.
func (g *Game) inspect() {
	if b := g.world.BuildingAt(g.cursor); b != nil {
		if b.Player != g.player.Num && !g.world.DemoMode() {
			if b.Type.IsMilitary() {
				g.prepareAttack()
				return
			}
			g.playSound(sound.SfxNotAccepted)
			g.setStatus("not your building")
			return
		}
		g.player.SelectedIndex = b.Index
		g.OpenPopup(inspectBox(b))
		return
	}
	if f := g.world.FlagAt(g.cursor); f != nil {
		if f.Player != g.player.Num {
			g.playSound(sound.SfxNotAccepted)
			g.setStatus("not your flag")
			return
		}
		g.player.SelectedIndex = f.Index
		g.OpenPopup(popup.BoxTransportInfo)
		return
	}
	g.openBuildMenu()
}

func (g *Game) prepareAttack() {
	err := g.world.PrepareAttack(g.player, g.cursor)
	if errors.Is(err, sim.ErrNoResources) {
		g.playSound(sound.SfxNotAccepted)
		g.setStatus("no knights can reach")
		return
	}
	if err != nil {
		g.reject("attack", err)
		return
	}
	g.OpenPopup(popup.BoxStartAttack)
}

func (g *Game) groundAnalysis() {
	if g.world.Terrain(g.cursor) == sim.TerrainWater {
		g.playSound(sound.SfxNotAccepted)
		g.setStatus("cannot analyse water")
		return
	}
	g.OpenPopup(popup.BoxGroundAnalysis)
}

// confirmDemolish asks before removing one of the player's objects.
func (g *Game) confirmDemolish() {
	if b := g.world.BuildingAt(g.cursor); b != nil && b.Player == g.player.Num && b.Type != sim.BuildingCastle {
		g.OpenPopup(popup.BoxDemolish)
		return
	}
	if f := g.world.FlagAt(g.cursor); f != nil && f.Player == g.player.Num {
		g.OpenPopup(popup.BoxDemolish)
		return
	}
	g.playSound(sound.SfxNotAccepted)
	g.setStatus("nothing to demolish")
}

// openResourceDirections shows the stock modes of the inventory at the
// cursor, falling back to the player's first inventory.
func (g *Game) openResourceDirections() {
	b := g.world.BuildingAt(g.cursor)
	if b == nil || !b.IsInventory() || !b.Done || b.Player != g.player.Num {
		b = nil
		for _, inv := range g.world.Inventories() {
			if inv.Player == g.player.Num {
				b = g.world.Building(inv.BuildingIndex)
				break
			}
		}
	}
	if b == nil {
		g.playSound(sound.SfxNotAccepted)
		g.setStatus("no stock")
		return
	}
	g.player.SelectedIndex = b.Index
	g.OpenPopup(popup.BoxResDir)
}

// Package game is the ebiten shell around the popup: it owns the map
// cursor and the active player, turns keys and clicks into popup boxes
// and advances the simulation.
package game

import (
	"errors"
	"log"

	"serfpopup/internal/config"
	"serfpopup/internal/graphics"
	"serfpopup/internal/mathutil"
	"serfpopup/internal/minimap"
	"serfpopup/internal/popup"
	"serfpopup/internal/sim"
	"serfpopup/internal/sound"

	"github.com/hajimehoshi/ebiten/v2"
)

// Position of the map view on screen.
const (
	mapX = 4
	mapY = 4
)

// Game implements ebiten.Game and is the owner of the popup.
type Game struct {
	cfg     *config.Config
	world   *sim.Game
	player  *sim.Player
	cursor  sim.MapPos
	popup   *popup.Popup
	mapView *minimap.Minimap
	sprites *graphics.SpriteManager
	sound   *sound.Manager
	display popup.Display

	stat7Item  int
	stat8Mode  int
	configBits int
	status     string
	quit       bool

	frames int
	ticks  int

	mouseLeftClicks []queuedClick
	perf            perfState
}

// New creates the shell for player 0 of world. snd may be nil.
func New(cfg *config.Config, world *sim.Game, snd *sound.Manager) *Game {
	return newGame(cfg, world, snd, windowDisplay{})
}

func newGame(cfg *config.Config, world *sim.Game, snd *sound.Manager, display popup.Display) *Game {
	g := &Game{
		cfg:        cfg,
		world:      world,
		player:     world.Player(0),
		sprites:    graphics.NewSpriteManager(cfg.Assets.SpritesDir),
		sound:      snd,
		display:    display,
		stat7Item:  cfg.Popup.Stat7Item,
		stat8Mode:  cfg.Popup.Stat8Mode,
		configBits: messageConfigBits(cfg.Popup.Messages),
	}
	if b := world.Building(g.player.SelectedIndex); b != nil {
		g.cursor = b.Pos
	} else {
		g.cursor = world.Pos(world.Width()/2, world.Height()/2)
	}

	// A nil *sound.Manager must not become a non-nil interface.
	var a popup.Audio
	if snd != nil {
		a = soundAudio{snd}
	}
	g.popup = popup.New(g, world, a, display)
	g.popup.Minimap().SetClickHandler(g.moveCursor)

	g.mapView = minimap.New(world)
	g.mapView.SetFlags(minimap.ModeTerrainOwners | minimap.FlagRoads | minimap.FlagBuildings)
	g.mapView.SetDisplayed(true)
	g.mapView.SetClickHandler(g.moveCursor)
	return g
}

// messageConfigBits maps the configured message level to config bits.
func messageConfigBits(level string) int {
	switch level {
	case "all":
		return 1<<popup.ConfigMessagesAll | 1<<popup.ConfigMessagesMost | 1<<popup.ConfigMessagesFew
	case "most":
		return 1<<popup.ConfigMessagesMost | 1<<popup.ConfigMessagesFew
	case "few":
		return 1 << popup.ConfigMessagesFew
	}
	return 0
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.updateMouseState()
	g.handleKeys()
	g.handleClicks()
	g.advance()
	if g.sound != nil {
		g.sound.UpdateMusic()
	}
	g.maybeLogPerfDrop()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

// advance ticks the simulation at the configured rate.
func (g *Game) advance() {
	g.frames++
	if g.frames%g.framesPerTick() == 0 {
		g.world.Tick()
		g.ticks++
	}
}

func (g *Game) framesPerTick() int {
	tps := g.cfg.GetTicksPerSecond()
	if tps <= 0 || tps >= ebiten.DefaultTPS {
		return 1
	}
	return ebiten.DefaultTPS / tps
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(graphics.Color(0))

	g.mapView.SetCursor(g.cursor)
	g.mapView.Draw(graphics.NewFrame(screen, g.sprites, 0, 0), mapX, mapY)

	if g.popup.Displayed() {
		g.popup.Draw(graphics.NewFrame(screen, g.sprites, g.cfg.Popup.X, g.cfg.Popup.Y))
		g.popup.ClearRedraw()
	}

	if g.cfg.Debug.ShowHUD {
		g.drawHUD(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.GetScreenWidth(), g.cfg.GetScreenHeight()
}

// Popup returns the popup the shell owns.
func (g *Game) Popup() *popup.Popup { return g.popup }

// Status is the last message shown to the player.
func (g *Game) Status() string { return g.status }

func (g *Game) setStatus(msg string) {
	g.status = msg
	if g.cfg.Debug.LogActions {
		log.Printf("status: %s", msg)
	}
}

func (g *Game) playSound(sfx sound.Sfx) {
	if g.sound != nil {
		g.sound.Play(sfx)
	}
}

// toggleMusic flips the music channel outside the options box.
func (g *Game) toggleMusic() {
	if g.sound == nil {
		g.setStatus("no audio")
		return
	}
	if g.sound.Music().Toggle() {
		g.setStatus("music on")
	} else {
		g.setStatus("music off")
	}
	g.playSound(sound.SfxClick)
}

func (g *Game) moveCursor(pos sim.MapPos) {
	g.cursor = pos
	col, row := g.world.Coords(pos)
	g.setStatus(cursorLabel(col, row))
}

// moveCursorBy shifts the cursor, wrapping around the map edges.
func (g *Game) moveCursorBy(dc, dr int) {
	col, row := g.world.Coords(g.cursor)
	w, h := g.world.Width(), g.world.Height()
	col = mathutil.IntWrap(col+dc, w)
	row = mathutil.IntWrap(row+dr, h)
	g.cursor = g.world.Pos(col, row)
}

func (g *Game) Player() *sim.Player      { return g.player }
func (g *Game) MapCursorPos() sim.MapPos { return g.cursor }

func (g *Game) ClosePopup() { g.popup.Hide() }

func (g *Game) OpenPopup(box popup.Box) { g.popup.Show(box) }

// BuildBuilding places t at the cursor and closes the popup on success.
func (g *Game) BuildBuilding(t sim.BuildingType) bool {
	if _, err := g.world.BuildBuilding(g.cursor, t, g.player); err != nil {
		g.reject("build "+t.String(), err)
		return false
	}
	g.playSound(sound.SfxAccepted)
	g.setStatus("building " + t.String())
	g.ClosePopup()
	return true
}

func (g *Game) BuildFlag() bool {
	if _, err := g.world.BuildFlag(g.cursor, g.player); err != nil {
		g.reject("build flag", err)
		return false
	}
	g.playSound(sound.SfxAccepted)
	g.setStatus("flag placed")
	return true
}

func (g *Game) DemolishObject() {
	if err := g.world.Demolish(g.cursor, g.player); err != nil {
		g.reject("demolish", err)
		return
	}
	g.playSound(sound.SfxAccepted)
	g.setStatus("demolished")
}

// reject reports a refused request to the player.
func (g *Game) reject(what string, err error) {
	g.playSound(sound.SfxNotAccepted)
	switch {
	case errors.Is(err, sim.ErrNotAllowed):
		g.setStatus(what + ": not allowed")
	case errors.Is(err, sim.ErrNotFound):
		g.setStatus(what + ": nothing there")
	case errors.Is(err, sim.ErrNoResources):
		g.setStatus(what + ": not enough")
	case errors.Is(err, sim.ErrBurning):
		g.setStatus(what + ": on fire")
	default:
		g.setStatus(what + ": " + err.Error())
	}
	if g.cfg.Debug.LogActions {
		log.Printf("Warning: %s: %v", what, err)
	}
}

func (g *Game) Stat7Item() int        { return g.stat7Item }
func (g *Game) SetStat7Item(item int) { g.stat7Item = item }
func (g *Game) Stat8Mode() int        { return g.stat8Mode }
func (g *Game) SetStat8Mode(mode int) { g.stat8Mode = mode }
func (g *Game) Config(bit int) bool   { return g.configBits&(1<<bit) != 0 }
func (g *Game) SetConfig(bit int)     { g.configBits |= 1 << bit }
func (g *Game) SwitchConfig(bit int)  { g.configBits ^= 1 << bit }
func (g *Game) Quit()                 { g.quit = true }
func (g *Game) QuitRequested() bool   { return g.quit }

// soundAudio exposes a sound.Manager to the popup.
type soundAudio struct {
	m *sound.Manager
}

func (a soundAudio) PlaySound(sfx sound.Sfx)                  { a.m.Play(sfx) }
func (a soundAudio) MusicPlayer() popup.AudioPlayer           { return a.m.Music() }
func (a soundAudio) SoundPlayer() popup.AudioPlayer           { return a.m.Effects() }
func (a soundAudio) VolumeController() popup.VolumeController { return a.m.Master() }

// windowDisplay switches the ebiten window.
type windowDisplay struct{}

func (windowDisplay) Fullscreen() bool      { return ebiten.IsFullscreen() }
func (windowDisplay) SetFullscreen(on bool) { ebiten.SetFullscreen(on) }

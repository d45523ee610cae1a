package popup

import (
	"testing"

	"serfpopup/internal/sim"
	"serfpopup/internal/sound"
)

type fakeOwner struct {
	game   *sim.Game
	player *sim.Player
	cursor sim.MapPos
	popup  *Popup

	closed     int
	quit       int
	flags      int
	demolished int
	opened     []Box
	built      []sim.BuildingType

	stat7  int
	stat8  int
	config map[int]bool
}

func (o *fakeOwner) Player() *sim.Player      { return o.player }
func (o *fakeOwner) MapCursorPos() sim.MapPos { return o.cursor }

func (o *fakeOwner) ClosePopup() {
	o.closed++
	if o.popup != nil {
		o.popup.Hide()
	}
}

func (o *fakeOwner) OpenPopup(box Box) {
	o.opened = append(o.opened, box)
	if o.popup != nil {
		o.popup.Show(box)
	}
}

func (o *fakeOwner) BuildBuilding(t sim.BuildingType) bool {
	o.built = append(o.built, t)
	_, err := o.game.BuildBuilding(o.cursor, t, o.player)
	return err == nil
}

func (o *fakeOwner) BuildFlag() bool {
	o.flags++
	return true
}

func (o *fakeOwner) DemolishObject() { o.demolished++ }

func (o *fakeOwner) Stat7Item() int        { return o.stat7 }
func (o *fakeOwner) SetStat7Item(item int) { o.stat7 = item }
func (o *fakeOwner) Stat8Mode() int        { return o.stat8 }
func (o *fakeOwner) SetStat8Mode(mode int) { o.stat8 = mode }
func (o *fakeOwner) Config(bit int) bool   { return o.config[bit] }
func (o *fakeOwner) SetConfig(bit int)     { o.config[bit] = true }
func (o *fakeOwner) SwitchConfig(bit int)  { o.config[bit] = !o.config[bit] }
func (o *fakeOwner) Quit()                 { o.quit++ }

type fakeSwitch struct{ on bool }

func (s *fakeSwitch) Enabled() bool      { return s.on }
func (s *fakeSwitch) SetEnabled(on bool) { s.on = on }

type fakeVolume struct{ v float64 }

func (v *fakeVolume) Volume() float64 { return v.v }
func (v *fakeVolume) VolumeUp()       { v.v += 0.1 }
func (v *fakeVolume) VolumeDown()     { v.v -= 0.1 }

type fakeAudio struct {
	played []sound.Sfx
	music  *fakeSwitch
	sfx    *fakeSwitch
	volume *fakeVolume
}

func (a *fakeAudio) PlaySound(sfx sound.Sfx) { a.played = append(a.played, sfx) }

func (a *fakeAudio) MusicPlayer() AudioPlayer {
	if a.music == nil {
		return nil
	}
	return a.music
}

func (a *fakeAudio) SoundPlayer() AudioPlayer {
	if a.sfx == nil {
		return nil
	}
	return a.sfx
}

func (a *fakeAudio) VolumeController() VolumeController {
	if a.volume == nil {
		return nil
	}
	return a.volume
}

func (a *fakeAudio) last() sound.Sfx {
	if len(a.played) == 0 {
		return -1
	}
	return a.played[len(a.played)-1]
}

type fakeDisplay struct{ fullscreen bool }

func (d *fakeDisplay) Fullscreen() bool      { return d.fullscreen }
func (d *fakeDisplay) SetFullscreen(on bool) { d.fullscreen = on }

type testPopup struct {
	*Popup
	owner   *fakeOwner
	audio   *fakeAudio
	display *fakeDisplay
	game    *sim.Game
}

func newTestPopup(t *testing.T) *testPopup {
	t.Helper()
	g := sim.NewDemoGame(sim.DemoConfig{Seed: 1})
	owner := &fakeOwner{
		game:   g,
		player: g.Player(0),
		stat7:  1,
		config: map[int]bool{},
	}
	audio := &fakeAudio{
		music:  &fakeSwitch{on: true},
		sfx:    &fakeSwitch{on: true},
		volume: &fakeVolume{v: 0.5},
	}
	display := &fakeDisplay{}
	p := New(owner, g, audio, display)
	owner.popup = p
	return &testPopup{Popup: p, owner: owner, audio: audio, display: display, game: g}
}

func findBuilding(g *sim.Game, t sim.BuildingType, player int) *sim.Building {
	for _, b := range g.Buildings() {
		if b.Type == t && b.Player == player {
			return b
		}
	}
	return nil
}

func TestSetBoxTogglesMinimap(t *testing.T) {
	p := newTestPopup(t)
	p.SetBox(BoxMap)
	if !p.Minimap().Displayed() {
		t.Fatal("minimap hidden in map box")
	}
	p.SetBox(BoxStat1)
	if p.Minimap().Displayed() {
		t.Fatal("minimap shown outside map box")
	}
	if !p.NeedsRedraw() {
		t.Fatal("SetBox did not request a redraw")
	}
}

func TestShowHide(t *testing.T) {
	p := newTestPopup(t)
	if p.Displayed() || p.Box() != BoxNone {
		t.Fatalf("new popup: displayed=%v box=%s", p.Displayed(), p.Box())
	}
	p.Show(BoxSett1)
	if !p.Displayed() || p.Box() != BoxSett1 {
		t.Fatalf("after Show: displayed=%v box=%s", p.Displayed(), p.Box())
	}
	p.ClearRedraw()
	p.Hide()
	if p.Displayed() || p.Box() != BoxNone || !p.NeedsRedraw() {
		t.Fatalf("after Hide: displayed=%v box=%s redraw=%v", p.Displayed(), p.Box(), p.NeedsRedraw())
	}
}

func TestHandleClickLeftDispatchesRelativeCoordinates(t *testing.T) {
	p := newTestPopup(t)
	p.Show(BoxSett1)
	p.ClearRedraw()

	// Stonemine slider starts at 32, 22 in content coordinates.
	if !p.HandleClickLeft(clickOffset+32+17, clickOffset+24) {
		t.Fatal("click on slider missed")
	}
	if got, want := p.owner.player.FoodStonemine, SliderValue(17); got != want {
		t.Fatalf("FoodStonemine = %d, want %d", got, want)
	}
	if p.audio.played[0] != sound.SfxClick {
		t.Fatalf("first cue = %s, want click", p.audio.played[0])
	}
	if a, ok := p.LastAction(); !ok || a != ActionSett1AdjustStonemine {
		t.Fatalf("last action = %s, %v", a, ok)
	}
	if !p.NeedsRedraw() {
		t.Fatal("dispatch did not request a redraw")
	}
}

func TestHandleClickLeftMiss(t *testing.T) {
	p := newTestPopup(t)
	p.Show(BoxSett1)
	p.ClearRedraw()

	if p.HandleClickLeft(clickOffset, clickOffset) {
		t.Fatal("click outside every region reported a hit")
	}
	if p.NeedsRedraw() || len(p.audio.played) != 0 {
		t.Fatal("miss had side effects")
	}
	if _, ok := p.LastAction(); ok {
		t.Fatal("miss recorded an action")
	}
}

func TestHandleClickLeftWithoutClickMap(t *testing.T) {
	p := newTestPopup(t)
	for _, b := range []Box{BoxNone, BoxLoadSave, BoxGameEnd} {
		p.SetBox(b)
		if p.HandleClickLeft(60, 60) {
			t.Errorf("%s: click handled", b)
		}
	}
}

func TestHandleActionUnknownOnlyRedraws(t *testing.T) {
	p := newTestPopup(t)
	p.Show(BoxSettSelect)
	p.ClearRedraw()

	p.HandleAction(ActionShowSave, 0, 0)
	if p.Box() != BoxSettSelect || p.owner.closed != 0 {
		t.Fatalf("unhandled action changed state: box=%s closed=%d", p.Box(), p.owner.closed)
	}
	if !p.NeedsRedraw() {
		t.Fatal("unhandled action did not request a redraw")
	}
}

func TestNilAudioAndDisplay(t *testing.T) {
	g := sim.NewDemoGame(sim.DemoConfig{Seed: 2})
	owner := &fakeOwner{game: g, player: g.Player(0), stat7: 1, config: map[int]bool{}}
	p := New(owner, g, nil, nil)
	owner.popup = p
	p.Show(BoxOptions)

	for _, a := range []Action{
		ActionOptionsMusic, ActionOptionsSfx, ActionOptionsFullscreen,
		ActionOptionsVolumeMinus, ActionOptionsVolumePlus,
	} {
		p.HandleAction(a, 0, 0)
	}
	p.Draw(&recordingFrame{})
	if !p.HandleClickLeft(clickOffset+106, clickOffset+10) {
		t.Fatal("music toggle missed")
	}
}

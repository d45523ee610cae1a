package popup

import (
	"serfpopup/internal/minimap"
	"serfpopup/internal/sim"
	"serfpopup/internal/sound"
)

// SpriteSet selects which sprite family an index refers to.
type SpriteSet int

const (
	SetFramePopup SpriteSet = iota
	SetIcon
	SetMapObject
)

func (s SpriteSet) String() string {
	switch s {
	case SetFramePopup:
		return "frame_popup"
	case SetIcon:
		return "icon"
	case SetMapObject:
		return "map_object"
	}
	return "unknown"
}

// Sprite names one image of a sprite set.
type Sprite struct {
	Set   SpriteSet
	Index int
}

// Frame is the surface a popup draws on. Coordinates are pixels relative
// to the popup's top-left corner; colors are palette indices.
type Frame interface {
	DrawSprite(s Sprite, x, y int)
	DrawTransparentSprite(s Sprite, x, y int)
	FillRect(x, y, w, h, color int)
	DrawString(x, y, color int, s string)
	DrawNumber(x, y, color, n int)
}

// Game is the part of the simulation the popup reads and drives.
type Game interface {
	minimap.MapSource

	Building(index int) *sim.Building
	Flag(index int) *sim.Flag
	Serf(index int) *sim.Serf
	Inventory(index int) *sim.Inventory
	Buildings() []*sim.Building
	Serfs() []*sim.Serf
	Inventories() []*sim.Inventory

	CanBuildFlag(pos sim.MapPos, player *sim.Player) bool
	CanBuildMilitary(pos sim.MapPos) bool
	PrepareGroundAnalysis(pos sim.MapPos) [sim.DepositCount]int

	SendGeologist(flag *sim.Flag) error
	PromoteSerfsToKnights(player *sim.Player, number int) int
	StartAttack(player *sim.Player) error
	CycleKnights(player *sim.Player)
	SetInventoryResourceMode(inv *sim.Inventory, mode int)
	SetInventorySerfMode(inv *sim.Inventory, mode int)

	ResourceHistoryIndex() int
	PlayerHistoryIndex(scale int) int
	DemoMode() bool
}

// AudioPlayer is a switchable audio channel.
type AudioPlayer interface {
	Enabled() bool
	SetEnabled(on bool)
}

// VolumeController adjusts the master volume in [0, 1].
type VolumeController interface {
	Volume() float64
	VolumeUp()
	VolumeDown()
}

// Audio plays cues and exposes the switches the options box edits. Any of
// the returned players may be nil.
type Audio interface {
	PlaySound(sfx sound.Sfx)
	MusicPlayer() AudioPlayer
	SoundPlayer() AudioPlayer
	VolumeController() VolumeController
}

// Display is the window the options box switches to fullscreen.
type Display interface {
	Fullscreen() bool
	SetFullscreen(on bool)
}

// Config bits of the owning interface.
const (
	ConfigMessagesAll  = 3
	ConfigMessagesMost = 4
	ConfigMessagesFew  = 5
)

// Interface is the owner of a popup: it tracks the active player, the map
// cursor and the per-interface statistic selections.
type Interface interface {
	Player() *sim.Player
	MapCursorPos() sim.MapPos

	ClosePopup()
	OpenPopup(box Box)

	BuildBuilding(t sim.BuildingType) bool
	BuildFlag() bool
	DemolishObject()

	Stat7Item() int
	SetStat7Item(item int)
	Stat8Mode() int
	SetStat8Mode(mode int)

	Config(bit int) bool
	SetConfig(bit int)
	SwitchConfig(bit int)

	Quit()
}

// Package minimap renders a scaled overview of the map inside the popup
// and turns clicks on it into map positions.
package minimap

import (
	"serfpopup/internal/mathutil"
	"serfpopup/internal/sim"
)

// Size is the edge length of the square minimap area in pixels.
const Size = 128

// Flag bits.
const (
	FlagModeMask  = 3
	FlagRoads     = 1 << 2
	FlagBuildings = 1 << 3
	FlagGrid      = 1 << 4
	FlagScale     = 1 << 5
)

// Display modes held in the low two flag bits.
const (
	ModeTerrain = iota
	ModeTerrainOwners
	ModeOwners
)

// Palette indices the minimap paints with.
const (
	ColorGrass    = 40
	ColorMountain = 44
	ColorWater    = 48
	ColorRoad     = 1
	ColorGrid     = 2
	ColorFlag     = 3
	ColorCursor   = 31
)

// Canvas is the drawing surface the minimap paints on.
type Canvas interface {
	FillRect(x, y, w, h, color int)
}

// MapSource is the part of the simulation the minimap reads.
type MapSource interface {
	Width() int
	Height() int
	Pos(col, row int) sim.MapPos
	Terrain(pos sim.MapPos) sim.Terrain
	BuildingAt(pos sim.MapPos) *sim.Building
	FlagAt(pos sim.MapPos) *sim.Flag
	Player(n int) *sim.Player
}

// advancedTypes maps the advanced filter value to the building type it
// shows, in building menu page order.
var advancedTypes = [...]sim.BuildingType{
	sim.BuildingNone,
	sim.BuildingStock, sim.BuildingHut, sim.BuildingTower, sim.BuildingFortress,
	sim.BuildingToolmaker, sim.BuildingSawmill, sim.BuildingWeaponsmith,
	sim.BuildingStonecutter, sim.BuildingBoatbuilder, sim.BuildingForester,
	sim.BuildingLumberjack,
	sim.BuildingPigfarm, sim.BuildingFarm, sim.BuildingFisher,
	sim.BuildingButcher, sim.BuildingMill, sim.BuildingBaker,
	sim.BuildingStonemine, sim.BuildingCoalmine, sim.BuildingIronmine,
	sim.BuildingGoldmine, sim.BuildingSteelsmelter, sim.BuildingGoldsmelter,
}

// AdvancedMax is the largest advanced filter value naming a building type.
const AdvancedMax = len(advancedTypes) - 1

// AdvancedBuildingType returns the building type an advanced filter value
// selects, or BuildingNone.
func AdvancedBuildingType(advanced int) sim.BuildingType {
	if advanced <= 0 || advanced > AdvancedMax {
		return sim.BuildingNone
	}
	return advancedTypes[advanced]
}

// Minimap is the map overview widget owned by the popup.
type Minimap struct {
	src       MapSource
	flags     int
	advanced  int
	scale     int
	displayed bool
	cursor    sim.MapPos

	lastClick sim.MapPos
	onClick   func(pos sim.MapPos)
}

// New returns a hidden minimap showing roads and buildings at scale 1.
func New(src MapSource) *Minimap {
	return &Minimap{
		src:      src,
		flags:    FlagRoads | FlagBuildings,
		advanced: -1,
		scale:    1,
	}
}

func (m *Minimap) Flags() int         { return m.flags }
func (m *Minimap) SetFlags(flags int) { m.flags = flags }

// Advanced is -1 for no filter, 0 for flags only, or 1..AdvancedMax for a
// single building type.
func (m *Minimap) Advanced() int { return m.advanced }

func (m *Minimap) SetAdvanced(advanced int) {
	m.advanced = mathutil.IntClamp(advanced, -1, AdvancedMax)
}

func (m *Minimap) Scale() int { return m.scale }

func (m *Minimap) SetScale(scale int) {
	if scale != 2 {
		scale = 1
	}
	m.scale = scale
}

func (m *Minimap) Displayed() bool     { return m.displayed }
func (m *Minimap) SetDisplayed(on bool) { m.displayed = on }

// SetCursor marks pos with a cursor cross when drawn.
func (m *Minimap) SetCursor(pos sim.MapPos) { m.cursor = pos }

// SetClickHandler installs the callback HandleClick forwards to.
func (m *Minimap) SetClickHandler(fn func(pos sim.MapPos)) { m.onClick = fn }

// LastClick is the map position of the most recent click.
func (m *Minimap) LastClick() sim.MapPos { return m.lastClick }

func (m *Minimap) cellSize() int {
	w := mathutil.IntMax(m.src.Width(), 1)
	return mathutil.IntMax(Size/w, 1) * m.scale
}

// HandleClick converts a click at x, y inside the minimap area into a map
// position and forwards it.
func (m *Minimap) HandleClick(x, y int) (sim.MapPos, bool) {
	if x < 0 || y < 0 || x >= Size || y >= Size {
		return 0, false
	}
	cell := m.cellSize()
	col, row := x/cell, y/cell
	if col >= m.src.Width() || row >= m.src.Height() {
		return 0, false
	}
	pos := m.src.Pos(col, row)
	m.lastClick = pos
	if m.onClick != nil {
		m.onClick(pos)
	}
	return pos, true
}

// Draw paints the minimap with its top-left corner at x, y.
func (m *Minimap) Draw(c Canvas, x, y int) {
	if !m.displayed {
		return
	}
	cell := m.cellSize()
	cols := mathutil.IntMin(m.src.Width(), Size/cell)
	rows := mathutil.IntMin(m.src.Height(), Size/cell)
	mode := m.flags & FlagModeMask

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			pos := m.src.Pos(col, row)
			px, py := x+col*cell, y+row*cell
			c.FillRect(px, py, cell, cell, m.groundColor(pos, mode))

			if f := m.src.FlagAt(pos); f != nil {
				if m.flags&FlagRoads != 0 && m.advanced < 0 {
					for dir := 0; dir < 6; dir++ {
						if f.HasPath(dir) {
							c.FillRect(px, py+cell/2, cell, 1, ColorRoad)
							break
						}
					}
				}
				if m.advanced == 0 {
					c.FillRect(px, py, cell, cell, ColorFlag)
				}
			}
			if b := m.src.BuildingAt(pos); b != nil && m.showBuilding(b) {
				c.FillRect(px, py, cell, cell, m.playerColor(b.Player))
			}
		}
	}

	if m.flags&FlagGrid != 0 {
		for i := 0; i <= cols; i += 8 {
			c.FillRect(x+i*cell, y, 1, rows*cell, ColorGrid)
		}
		for i := 0; i <= rows; i += 8 {
			c.FillRect(x, y+i*cell, cols*cell, 1, ColorGrid)
		}
	}

	ccol, crow := int(m.cursor)%mathutil.IntMax(m.src.Width(), 1), int(m.cursor)/mathutil.IntMax(m.src.Width(), 1)
	if ccol < cols && crow < rows {
		c.FillRect(x+ccol*cell, y+crow*cell+cell/2, cell, 1, ColorCursor)
		c.FillRect(x+ccol*cell+cell/2, y+crow*cell, 1, cell, ColorCursor)
	}
}

func (m *Minimap) showBuilding(b *sim.Building) bool {
	switch {
	case m.advanced > 0:
		return b.Type == AdvancedBuildingType(m.advanced)
	case m.advanced == 0:
		return false
	default:
		return m.flags&FlagBuildings != 0
	}
}

func (m *Minimap) groundColor(pos sim.MapPos, mode int) int {
	if mode == ModeOwners {
		if b := m.src.BuildingAt(pos); b != nil {
			return m.playerColor(b.Player)
		}
		return ColorGrass
	}
	switch m.src.Terrain(pos) {
	case sim.TerrainMountain:
		return ColorMountain
	case sim.TerrainWater:
		return ColorWater
	default:
		return ColorGrass
	}
}

func (m *Minimap) playerColor(n int) int {
	if p := m.src.Player(n); p != nil {
		return p.Color
	}
	return ColorGrid
}

package popup

import (
	"strconv"

	"serfpopup/internal/mathutil"
	"serfpopup/internal/sim"
)

// Palette indices used by popup drawing.
const (
	colorGreen    = 31
	colorSlideBar = 30
	colorChart    = 72
)

// painter draws in content coordinates: x in 8 pixel columns, y in
// pixels, both relative to the content area.
type painter struct {
	f Frame
}

func (d painter) icon(x, y, sprite int) {
	d.f.DrawSprite(Sprite{SetIcon, sprite}, 8*x+contentX, y+contentY)
}

func (d painter) building(x, y, sprite int) {
	d.f.DrawTransparentSprite(Sprite{SetMapObject, sprite}, 8*x+contentX, y+contentY)
}

func (d painter) background(sprite int) {
	for y := 0; y < ContentHeight; y += 16 {
		d.row(sprite, y)
	}
}

func (d painter) row(sprite, y int) {
	for x := 0; x < 16; x += 2 {
		d.icon(x, y, sprite)
	}
}

func (d painter) icons(l Layout) {
	for _, e := range l {
		d.icon(e.X, e.Y, e.Sprite)
	}
}

func (d painter) buildings(l Layout) {
	for _, e := range l {
		d.building(e.X, e.Y, e.Sprite)
	}
}

func (d painter) greenString(x, y int, s string) {
	d.f.DrawString(8*x+contentX, y+contentY, colorGreen, s)
}

func (d painter) greenNumber(x, y, n int) {
	for i, s := range GreenNumberSprites(n) {
		d.icon(x+i, y, s)
	}
}

func (d painter) largeNumber(x, y, n int) {
	d.f.DrawNumber(8*x+contentX, y+contentY, colorGreen, n)
}

func (d painter) additionalNumber(x, y, n int) {
	if s := AdditionalNumberSprite(n); s >= 0 {
		d.icon(x, y, s)
	}
}

func (d painter) slideBar(x, y, value int) {
	d.icon(x, y, iconSlideBar)
	if w := value / sliderStep; w > 0 {
		d.f.FillRect(8*x+15, y+11, w, 4, colorSlideBar)
	}
}

// stockColumns draws n icons split over a left and a right column,
// vertically centred on y.
func (d painter) stockColumns(n, y, sprite int) {
	left, right := (n+1)/2, n/2
	for i := 0; i < left; i++ {
		d.icon(1, y-8*left+16*i, sprite)
	}
	for i := 0; i < right; i++ {
		d.icon(13, y-8*right+16*i, sprite)
	}
}

func (d painter) resources(res *[sim.ResourceCount]int) {
	d.icons(resourcesLayout)
	for c, col := range resourceColumns {
		for i, r := range col {
			d.greenNumber(panelColumns[c], 4+16*i, res[r])
		}
	}
}

// serfs draws the serf panel. A negative total is not drawn.
func (d painter) serfs(serfs *[sim.SerfTypeCount]int, total int) {
	d.icons(serfsLayout)
	for c, col := range serfColumns {
		for i, t := range col {
			d.greenNumber(panelColumns[c], 4+16*i, serfs[t])
		}
	}
	if total >= 0 {
		d.largeNumber(11, 132, total)
	}
}

// Draw paints the frame and the current box. Boxes whose selected object
// has gone away close the popup instead.
func (p *Popup) Draw(f Frame) {
	d := painter{f}
	p.drawFrame(f)

	switch p.box {
	case BoxMap:
		p.drawMap(d)
	case BoxMineBuilding:
		p.drawMineBuilding(d)
	case BoxBasicBld:
		p.drawBasicBuilding(d, false)
	case BoxBasicBldFlip:
		p.drawBasicBuilding(d, true)
	case BoxAdv1Bld:
		d.background(bgBuild)
		d.buildings(adv1BuildingLayout)
		d.icon(0, 128, iconFlip)
	case BoxAdv2Bld:
		p.drawAdv2Building(d)
	case BoxStatSelect:
		d.background(bgStat)
		d.icons(statSelectLayout)
	case BoxStat4:
		p.drawStat4(d)
	case BoxStatBld1, BoxStatBld2, BoxStatBld3, BoxStatBld4:
		p.drawStatBuildings(d, int(p.box-BoxStatBld1))
	case BoxStat8:
		p.drawStat8(d)
	case BoxStat7:
		p.drawStat7(d)
	case BoxStat1:
		p.drawStat1(d)
	case BoxStat2:
		p.drawStat2(d)
	case BoxStat6:
		p.drawStat6(d)
	case BoxStat3:
		p.drawStat3(d)
	case BoxStartAttack:
		p.drawStartAttack(d)
	case BoxStartAttackRedraw:
		p.drawAttackingKnights(d)
	case BoxGroundAnalysis:
		p.drawGroundAnalysis(d)
	case BoxSettSelect:
		d.background(bgSett)
		d.icons(settSelectLayout)
	case BoxSett1:
		p.drawSett1(d)
	case BoxSett2:
		p.drawSett2(d)
	case BoxSett3:
		p.drawSett3(d)
	case BoxKnightLevel:
		p.drawKnightLevel(d)
	case BoxSett4:
		p.drawSett4(d)
	case BoxSett5:
		pl := p.owner.Player()
		p.drawPriorities(d, &pl.FlagPrio, pl.CurrentSett5Item)
	case BoxSett6:
		pl := p.owner.Player()
		p.drawPriorities(d, &pl.InventoryPrio, pl.CurrentSett6Item)
	case BoxQuitConfirm:
		d.background(bgQuit)
		d.greenString(0, 10, "   Do you want")
		d.greenString(0, 20, "     to quit")
		d.greenString(0, 30, "   this game?")
		d.greenString(0, 45, "  Yes       No")
	case BoxNoSaveQuitConfirm:
		d.greenString(0, 70, "The game has not")
		d.greenString(0, 80, "   been saved")
		d.greenString(0, 90, "   recently.")
		d.greenString(0, 100, "    Are you")
		d.greenString(0, 110, "     sure?")
		d.greenString(0, 125, "  Yes       No")
	case BoxOptions:
		p.drawOptions(d)
	case BoxCastleRes:
		p.drawCastleResources(d)
	case BoxMineOutput:
		p.drawMineOutput(d)
	case BoxOrderedBld:
		p.drawOrderedBuilding(d)
	case BoxDefenders:
		p.drawDefenders(d)
	case BoxTransportInfo:
		p.drawTransportInfo(d)
	case BoxCastleSerf:
		p.drawCastleSerfs(d)
	case BoxResDir:
		p.drawResDir(d)
	case BoxSett8:
		p.drawSett8(d)
	case BoxBld1, BoxBld2, BoxBld3, BoxBld4:
		p.drawBuildingFilter(d, int(p.box-BoxBld1))
	case BoxBldStock:
		p.drawBuildingStock(d)
	case BoxPlayerFaces:
		d.background(bgStat)
		p.drawPlayerFace(d, 2, 4, 0)
		p.drawPlayerFace(d, 10, 4, 1)
		p.drawPlayerFace(d, 2, 76, 2)
		p.drawPlayerFace(d, 10, 76, 3)
	case BoxDemolish:
		d.background(bgDemolish)
		d.icon(14, 128, iconExit)
		d.icon(7, 45, iconCheckBox)
		d.greenString(0, 10, "    Demolish:")
		d.greenString(0, 30, "   Click here")
		d.greenString(0, 68, "   if you are")
		d.greenString(0, 86, "      sure")
	}
}

func (p *Popup) drawFrame(f Frame) {
	f.DrawSprite(Sprite{SetFramePopup, 0}, 0, 0)
	f.DrawSprite(Sprite{SetFramePopup, 1}, 0, 153)
	f.DrawSprite(Sprite{SetFramePopup, 2}, 0, 9)
	f.DrawSprite(Sprite{SetFramePopup, 3}, 136, 9)
}

// selectedBuilding returns the building the player opened the box for.
// It closes the popup and returns nil when there is none or it burns.
func (p *Popup) selectedBuilding() *sim.Building {
	index := p.owner.Player().SelectedIndex
	if index == 0 {
		p.owner.ClosePopup()
		return nil
	}
	b := p.game.Building(index)
	if b == nil || b.Burning {
		p.owner.ClosePopup()
		return nil
	}
	return b
}

func (p *Popup) drawMap(d painter) {
	m := p.minimap
	m.Draw(d.f, contentX, contentY)

	flags := m.Flags()
	bit := func(n uint) bool { return flags&(1<<n) != 0 }
	pick := func(on bool, a, b int) int {
		if on {
			return a
		}
		return b
	}

	d.icon(0, 128, flags&3)
	d.icon(4, 128, pick(bit(2), 3, 4))
	if m.Advanced() >= 0 {
		d.icon(8, 128, pick(m.Advanced() == 0, 306, 305))
	} else {
		d.icon(8, 128, pick(bit(3), 5, 6))
	}
	d.icon(12, 128, pick(bit(4), 7, 8))
	d.icon(14, 128, pick(bit(5), 91, 92))
}

func (p *Popup) drawMineBuilding(d painter) {
	d.background(bgBuild)
	pl := p.owner.Player()
	if p.game.CanBuildFlag(p.owner.MapCursorPos(), pl) {
		d.building(2, 114, flagSprite(pl.Num))
	}
	d.buildings(mineBuildingLayout)
}

func (p *Popup) drawBasicBuilding(d painter, flip bool) {
	d.background(bgBuild)
	l := basicBuildingLayout
	if !p.game.CanBuildMilitary(p.owner.MapCursorPos()) {
		l = l[1:]
	}
	d.buildings(l)

	pl := p.owner.Player()
	if p.game.CanBuildFlag(p.owner.MapCursorPos(), pl) {
		d.building(8, 108, flagSprite(pl.Num))
	}
	if flip {
		d.icon(0, 128, iconFlip)
	}
}

func (p *Popup) drawAdv2Building(d painter) {
	l := adv2BuildingLayout
	if !p.game.CanBuildMilitary(p.owner.MapCursorPos()) {
		l = l[2:]
	}
	d.background(bgBuild)
	d.buildings(l)
	d.icon(0, 128, iconFlip)
}

func (p *Popup) drawStat4(d painter) {
	d.background(bgStat)
	res := playerResources(p.game, p.owner.Player())
	d.resources(&res)
	d.icon(14, 128, iconExit)
}

func (p *Popup) drawStatBuildings(d painter, page int) {
	d.background(bgStat)
	d.buildings(statBldLayouts[page])

	pl := p.owner.Player()
	for _, c := range statBldCounts[page] {
		d.greenNumber(c.X, c.Y, pl.CompletedBuildingCount[c.Type])
		d.additionalNumber(c.X+1, c.Y, pl.IncompleteBuildingCount[c.Type])
	}

	d.icon(0, 128, iconStatFlip)
	d.icon(14, 128, iconExit)
}

// drawPlayerChart draws one line of the player statistics chart, newest
// sample at the right edge.
func drawPlayerChart(f Frame, data []int, index, color int) {
	const (
		x      = contentX
		y      = contentY
		width  = sim.PlayerHistoryLen
		height = 100
	)
	if len(data) == 0 {
		return
	}
	index = mathutil.IntClamp(index, 0, len(data)-1)

	prev := data[index]
	for i := 0; i < width; i++ {
		value := data[index]
		if index > 0 {
			index--
		} else {
			index = len(data) - 1
		}

		if value > 0 || prev > 0 {
			switch {
			case value > prev:
				diff := value - prev
				h := diff / 2
				f.FillRect(x+width-i, y+height-h-prev, 1, h, color)
				f.FillRect(x+width-i-1, y+height-value, 1, diff-h, color)
			case value == prev:
				f.FillRect(x+width-i-1, y+height-value, 2, 1, color)
			default:
				diff := prev - value
				h := diff / 2
				f.FillRect(x+width-i, y+height-prev, 1, h, color)
				f.FillRect(x+width-i-1, y+height-value-(diff-h), 1, diff-h, color)
			}
		}
		prev = value
	}
}

func (p *Popup) drawStat8(d painter) {
	mode := p.owner.Stat8Mode() & 0xf
	aspect := (mode >> 2) & 3
	scale := mode & 3

	for y := 0; y <= 96; y += 16 {
		d.row(132+aspect, y)
	}
	d.row(136, 108)
	d.row(129, 116)
	d.row(137, 132)

	d.icons(stat8Layout)

	checkX, checkY := 1, 116
	if aspect&1 != 0 {
		checkX = 6
	}
	if aspect&2 != 0 {
		checkY = 132
	}
	d.icon(checkX, checkY, iconCheckmark)

	checkX, checkY = 7, 116
	if scale&1 != 0 {
		checkX = 12
	}
	if scale&2 != 0 {
		checkY = 132
	}
	d.icon(checkX, checkY, iconCheckmark)

	d.icon(2, 103, 94+3*scale)
	d.icon(6, 103, 94+3*scale+1)
	d.icon(10, 103, 94+3*scale+2)

	index := p.game.PlayerHistoryIndex(scale)
	for n := sim.MaxPlayers - 1; n >= 0; n-- {
		pl := p.game.Player(n)
		if pl == nil || !pl.Active {
			continue
		}
		drawPlayerChart(d.f, pl.StatHistory[mode][:], index, pl.Color)
	}
}

func (p *Popup) drawStat7(d painter) {
	d.row(bgStat, 64)
	d.row(bgStat, 112)
	d.row(bgStat, 128)
	d.icons(stat7Layout)

	item := mathutil.IntClamp(p.owner.Stat7Item()-1, 0, int(sim.ResourceCount)-1)
	for y := 0; y < 64; y += 16 {
		for x := 0; x < 14; x += 2 {
			d.icon(x, y, 138+item)
		}
	}

	pl := p.owner.Player()
	samples, max := ResourceHistory(pl.ResourceCountHistory[item][:], p.game.ResourceHistoryIndex())
	band := ChartBandFor(max)
	for i, s := range band.AxisIcons {
		d.icon(14, i*16, s)
	}
	for i, s := range samples {
		if v := band.BarHeight(s); v > 0 {
			d.f.FillRect(119-i, 73-v, 1, v, colorChart)
		}
	}
}

type gauge struct {
	X, Y  int
	Type  sim.BuildingType
	Stock int
	Full  bool
}

var stat1Gauges = []gauge{
	{10, 0, sim.BuildingMill, 0, false},
	{2, 0, sim.BuildingBaker, 0, false},
	{10, 32, sim.BuildingPigfarm, 0, true},
	{2, 32, sim.BuildingButcher, 0, false},
	{10, 56, sim.BuildingGoldmine, 0, true},
	{10, 80, sim.BuildingCoalmine, 0, true},
	{10, 104, sim.BuildingIronmine, 0, true},
	{10, 128, sim.BuildingStonemine, 0, true},
}

var stat2Gauges = []gauge{
	{6, 0, sim.BuildingGoldsmelter, 1, false},
	{6, 16, sim.BuildingGoldsmelter, 0, false},
	{6, 40, sim.BuildingSteelsmelter, 0, false},
	{6, 56, sim.BuildingSteelsmelter, 1, false},
	{6, 80, sim.BuildingSawmill, 1, false},
	{12, 20, sim.BuildingWeaponsmith, 0, false},
	{12, 36, sim.BuildingWeaponsmith, 1, false},
	{12, 56, sim.BuildingToolmaker, 1, false},
	{12, 72, sim.BuildingToolmaker, 0, false},
	{12, 92, sim.BuildingBoatbuilder, 0, false},
	// Buildings under construction.
	{12, 112, sim.BuildingNone, 0, true},
	{12, 128, sim.BuildingNone, 1, true},
}

func (d painter) gauges(values *gaugeValues, gauges []gauge) {
	for _, g := range gauges {
		value, count := values.value(g.Type, g.Stock)
		if g.Full {
			d.icon(g.X, g.Y, GaugeFullSprite(value, count))
		} else {
			d.icon(g.X, g.Y, GaugeBalanceSprite(value, count))
		}
	}
}

func (p *Popup) drawStat1(d painter) {
	d.background(bgStat)
	d.icons(stat1Layout)
	d.gauges(calculateGaugeValues(p.game, p.owner.Player()), stat1Gauges)
}

func (p *Popup) drawStat2(d painter) {
	d.background(bgStat)
	d.icons(stat2Layout)

	values := calculateGaugeValues(p.game, p.owner.Player())
	d.gauges(values, stat2Gauges)

	gold, count := 0, 0
	for _, t := range []sim.BuildingType{sim.BuildingHut, sim.BuildingTower, sim.BuildingFortress} {
		v, c := values.value(t, 1)
		gold += v
		count += c
	}
	d.icon(12, 0, GaugeFullSprite(gold, count))
}

func (p *Popup) drawStat6(d painter) {
	d.background(bgStat)
	pl := p.owner.Player()
	total := 0
	for t, n := range pl.SerfCount {
		if sim.SerfType(t) != sim.SerfTransporterInventory {
			total += n
		}
	}
	d.serfs(&pl.SerfCount, total)
	d.icon(14, 128, iconExit)
}

func (p *Popup) drawStat3(d painter) {
	d.background(bgStat)
	serfs := PotentialSerfs(p.game, p.owner.Player())
	d.icons(serfsLayout)
	for c, col := range serfColumns {
		for i, t := range col {
			d.icon(panelColumns[c], 4+16*i, MeterSprite(serfs[t]))
		}
	}
	d.icon(14, 128, iconExit)
}

func (p *Popup) drawAttackingKnights(d painter) {
	d.greenString(6, 116, "    ")
	d.greenNumber(7, 116, p.owner.Player().KnightsAttacking)
}

func (p *Popup) drawStartAttack(d painter) {
	d.background(bgAttack)
	d.buildings(startAttackBuildingLayout)

	pl := p.owner.Player()
	target := p.game.Building(pl.BuildingAttacked)
	if target == nil || target.Burning {
		p.owner.ClosePopup()
		return
	}
	var y int
	switch target.Type {
	case sim.BuildingHut:
		y = 50
	case sim.BuildingTower:
		y = 32
	case sim.BuildingFortress:
		y = 17
	case sim.BuildingCastle:
		y = 0
	default:
		logWarn("attack target %d is a %s", target.Index, target.Type)
		p.owner.ClosePopup()
		return
	}
	d.building(0, y, mapBuildingSprite[target.Type])
	d.icons(startAttackIconLayout)

	for i, n := range pl.AttackingKnights {
		d.greenNumber(1+4*i, 96, n)
	}
	p.drawAttackingKnights(d)
}

func (p *Popup) drawGroundAnalysis(d painter) {
	d.background(bgGround)
	d.icons(groundAnalysisLayout)

	est := p.game.PrepareGroundAnalysis(p.owner.MapCursorPos())
	d.greenString(0, 30, "GROUND-ANALYSIS:")
	d.greenString(3, 54, ResourceAmountText(2*est[sim.DepositGold]))
	d.greenString(3, 74, ResourceAmountText(est[sim.DepositIron]))
	d.greenString(3, 94, ResourceAmountText(est[sim.DepositCoal]))
	d.greenString(3, 114, ResourceAmountText(2*est[sim.DepositStone]))
}

func (p *Popup) drawSett1(d painter) {
	d.background(bgSett)
	d.buildings(sett1BuildingLayout)
	d.icons(sett1Layout)

	pl := p.owner.Player()
	d.slideBar(4, 21, pl.FoodStonemine)
	d.slideBar(0, 41, pl.FoodCoalmine)
	d.slideBar(8, 114, pl.FoodIronmine)
	d.slideBar(4, 133, pl.FoodGoldmine)
}

func (p *Popup) drawSett2(d painter) {
	d.background(bgSett)
	d.buildings(sett2BuildingLayout)
	d.icons(sett2Layout)

	pl := p.owner.Player()
	d.slideBar(0, 26, pl.PlanksConstruction)
	d.slideBar(0, 36, pl.PlanksBoatbuilder)
	d.slideBar(8, 44, pl.PlanksToolmaker)
	d.slideBar(8, 103, pl.SteelToolmaker)
	d.slideBar(0, 130, pl.SteelWeaponsmith)
}

func (p *Popup) drawSett3(d painter) {
	d.background(bgSett)
	d.buildings(sett3BuildingLayout)
	d.icons(sett3Layout)

	pl := p.owner.Player()
	d.slideBar(0, 39, pl.CoalSteelsmelter)
	d.slideBar(8, 39, pl.CoalGoldsmelter)
	d.slideBar(4, 47, pl.CoalWeaponsmith)
	d.slideBar(0, 92, pl.WheatPigfarm)
	d.slideBar(8, 118, pl.WheatMill)
}

func knightLevelName(level int) string {
	if level < 0 || level >= len(knightLevelNames) {
		return "?"
	}
	return knightLevelNames[level]
}

func (p *Popup) drawKnightLevel(d painter) {
	d.background(bgSett)

	pl := p.owner.Player()
	// Bands are drawn closest first.
	for row := 0; row < 4; row++ {
		occ := pl.KnightOccupation[3-row]
		d.greenString(8, 8+34*row, knightLevelName(occ&0xf))
		d.greenString(8, 19+34*row, knightLevelName((occ>>4)&0xf))
	}
	d.icons(knightLevelLayout)
}

func (p *Popup) drawSett4(d painter) {
	d.background(bgSett)
	d.icons(sett4Layout)

	pl := p.owner.Player()
	for row, tool := range sett4ToolOrder {
		d.slideBar(4, 4+16*row, pl.ToolPrio[tool])
	}
}

func (p *Popup) drawPriorities(d painter, prio *[sim.ResourceCount]int, current int) {
	d.background(bgSett)
	d.icons(sett56Layout)

	for i, rank := range prio {
		pos := len(resourceStairs) - rank
		if pos < 0 || pos >= len(resourceStairs) {
			continue
		}
		d.icon(resourceStairs[pos][0], resourceStairs[pos][1], iconResource0+i)
	}
	d.icon(6, 120, iconResource0-1+current)
}

func messageCountName(o Interface) string {
	switch {
	case o.Config(ConfigMessagesAll):
		return "All"
	case o.Config(ConfigMessagesMost):
		return "Most"
	case o.Config(ConfigMessagesFew):
		return "Few"
	}
	return "None"
}

func switchIcon(pl AudioPlayer) int {
	if pl != nil && pl.Enabled() {
		return iconOptionOn
	}
	return iconOptionOff
}

func (p *Popup) drawOptions(d painter) {
	d.background(bgQuit)

	d.greenString(1, 14, "Music")
	d.greenString(1, 30, "Sound")
	d.greenString(1, 39, "effects")
	d.greenString(1, 54, "Volume")

	var music, sfx AudioPlayer
	volume := 0
	if p.audio != nil {
		music, sfx = p.audio.MusicPlayer(), p.audio.SoundPlayer()
		if vc := p.audio.VolumeController(); vc != nil {
			volume = int(99 * vc.Volume())
		}
	}
	d.icon(13, 10, switchIcon(music))
	d.icon(13, 30, switchIcon(sfx))
	d.icon(11, 50, iconMinus)
	d.icon(13, 50, iconPlus)
	d.greenString(8, 54, strconv.Itoa(volume))

	d.greenString(1, 70, "Fullscreen")
	d.greenString(1, 79, "video")
	fullscreen := iconOptionOff
	if p.display != nil && p.display.Fullscreen() {
		fullscreen = iconOptionOn
	}
	d.icon(13, 70, fullscreen)

	d.greenString(1, 94, "Messages")
	d.greenString(11, 94, messageCountName(p.owner))

	d.icon(14, 128, iconExit)
}

// selectedInventoryBuilding is selectedBuilding restricted to stocks and
// castles.
func (p *Popup) selectedInventoryBuilding() (*sim.Building, *sim.Inventory) {
	b := p.selectedBuilding()
	if b == nil {
		return nil, nil
	}
	if !b.IsInventory() {
		p.owner.ClosePopup()
		return nil, nil
	}
	inv := p.game.Inventory(b.InventoryIndex)
	if inv == nil {
		p.owner.ClosePopup()
		return nil, nil
	}
	return b, inv
}

func (p *Popup) drawCastleResources(d painter) {
	d.background(bgBuilding)
	d.icons(castleResLayout)

	if _, inv := p.selectedInventoryBuilding(); inv != nil {
		d.resources(&inv.Resources)
	}
}

func (p *Popup) drawMineOutput(d painter) {
	d.background(bgBuilding)

	b := p.selectedBuilding()
	if b == nil {
		return
	}
	if !b.Type.IsMine() {
		p.owner.ClosePopup()
		return
	}

	d.building(6, 60, mapBuildingSprite[b.Type])
	serf := iconMinusBox
	if b.HasSerf {
		serf = iconMiner
	}
	d.icon(10, 75, serf)

	d.stockColumns(b.Stock[0].Available, 90, iconFood)

	output := MineOutput(b.Progress)
	x := 7
	if output >= 100 {
		x++
	}
	if output >= 10 {
		x++
	}
	d.greenString(x, 38, "%")
	d.greenNumber(6, 38, output)

	d.greenString(1, 14, "MINING")
	d.greenString(1, 24, "OUTPUT:")
	d.icon(14, 128, iconExitBox)
}

func (p *Popup) drawOrderedBuilding(d painter) {
	d.background(bgBuilding)

	b := p.selectedBuilding()
	if b == nil {
		return
	}
	sprite := mapBuildingSprite[b.Type]
	d.building(buildingColumn(sprite), 40, sprite)

	d.greenString(2, 4, "Ordered")
	d.greenString(2, 14, "Building")

	switch {
	case !b.HasSerf:
		d.icon(2, 100, iconMinusBox)
	case b.Progress == 0:
		d.icon(2, 100, iconDigger)
	default:
		d.icon(2, 100, iconBuilder)
	}
	d.icon(14, 128, iconExitBox)
}

func (p *Popup) drawDefenders(d painter) {
	d.background(bgBuilding)

	b := p.selectedBuilding()
	if b == nil {
		return
	}
	if !p.game.DemoMode() && b.Player != p.owner.Player().Num {
		p.owner.ClosePopup()
		return
	}

	var x, y int
	switch b.Type {
	case sim.BuildingHut:
		x, y = 6, 20
	case sim.BuildingTower:
		x, y = 4, 6
	case sim.BuildingFortress:
		x, y = 4, 1
	default:
		p.owner.ClosePopup()
		return
	}
	d.building(x, y, mapBuildingSprite[b.Type])

	if gold := b.Stock[1].Available; gold > 0 {
		d.stockColumns(gold, 32, iconGold)
	}

	d.greenString(3, 62, "Defenders:")
	i := 0
	for next := b.SerfIndex; next != 0; i++ {
		s := p.game.Serf(next)
		if s == nil {
			break
		}
		d.icon(3+4*(i%3), 72+16*(i/3), iconKnightBase+int(s.Type))
		next = s.NextKnight
	}

	d.greenString(0, 128, "State:")
	d.greenNumber(7, 128, b.State)
	d.icon(14, 128, iconExitBox)
}

func (p *Popup) drawTransportInfo(d painter) {
	d.background(bgBuilding)

	pl := p.owner.Player()
	if pl.SelectedIndex == 0 {
		p.owner.ClosePopup()
		return
	}
	flag := p.game.Flag(pl.SelectedIndex)
	if flag == nil {
		p.owner.ClosePopup()
		return
	}

	d.building(8, 40, flagSprite(flag.Player))

	for i, pos := range transportPathLayout {
		dir := 5 - i
		if !flag.HasPath(dir) {
			continue
		}
		sprite := iconMinusBox
		if flag.HasTransporter(dir) {
			sprite = iconCheckBox
		}
		d.icon(pos[0], pos[1], sprite)
	}

	d.greenString(0, 4, "Transport Info:")
	d.icon(2, 96, iconGeologist)
	d.icon(14, 128, iconExitBox)

	for i, slot := range flag.Slots {
		if slot.Type != sim.ResourceNone {
			d.icon(7+2*(i&3), 88+16*(i>>2), iconFlagSlot0+int(slot.Type))
		}
	}

	d.greenString(0, 128, "Index:")
	d.greenNumber(7, 128, flag.Index)
}

func (p *Popup) drawCastleSerfs(d painter) {
	d.background(bgBuilding)
	d.icons(castleSerfLayout)

	_, inv := p.selectedInventoryBuilding()
	if inv == nil {
		return
	}
	var serfs [sim.SerfTypeCount]int
	for _, s := range p.game.Serfs() {
		if s.State == sim.SerfStateIdleInStock && s.InventoryIndex == inv.Index {
			serfs[s.Type]++
		}
	}
	d.serfs(&serfs, -1)
}

func (p *Popup) drawResDir(d painter) {
	d.background(bgBuilding)
	d.icons(resDirLayout)

	b := p.selectedBuilding()
	if b == nil {
		return
	}
	switch b.Type {
	case sim.BuildingCastle:
		var knights [5]int
		d.icons(resDirKnightsLayout)
		for next := b.SerfIndex; next != 0; {
			s := p.game.Serf(next)
			if s == nil {
				break
			}
			if s.Type.IsKnight() {
				knights[s.Type-sim.SerfKnight0]++
			}
			next = s.NextKnight
		}
		for i := 0; i < 5; i++ {
			d.greenNumber(14, 20+20*i, knights[4-i])
		}
	case sim.BuildingStock:
	default:
		p.owner.ClosePopup()
		return
	}

	inv := p.game.Inventory(b.InventoryIndex)
	if inv == nil {
		p.owner.ClosePopup()
		return
	}
	d.icon(9, 16+16*mathutil.IntClamp(inv.ResMode, sim.ModeIn, sim.ModeOut), iconCheckBox)
	d.icon(9, 80+16*mathutil.IntClamp(inv.SerfMode, sim.ModeIn, sim.ModeOut), iconCheckBox)
}

func (p *Popup) drawSett8(d painter) {
	d.background(bgSett)
	d.icons(sett8Layout)

	pl := p.owner.Player()
	d.slideBar(4, 12, pl.SerfToKnightRate)
	d.greenString(8, 63, "%")
	d.greenNumber(6, 63, 100*pl.KnightMorale/0x1000)
	d.largeNumber(6, 73, pl.GoldDeposited)
	d.greenNumber(6, 119, pl.CastleKnightsWanted)
	d.greenNumber(6, 129, pl.CastleKnights)

	if pl.SendStrongest {
		d.icon(6, 100, iconOptionOn)
	} else {
		d.icon(6, 84, iconOptionOn)
	}
	d.greenNumber(12, 40, ConvertibleKnights(p.game, pl))
}

func (p *Popup) drawBuildingFilter(d painter, page int) {
	d.background(bgBuildFilter)
	if page == 0 {
		d.building(4, 112, flagSprite(p.owner.Player().Num))
	}
	d.buildings(bldFilterLayouts[page])
	d.icon(0, 128, iconFlip)
	d.icon(14, 128, iconExitBox)
}

func (p *Popup) drawBuildingStock(d painter) {
	d.background(bgBuilding)

	b := p.selectedBuilding()
	if b == nil {
		return
	}

	for j, s := range b.Stock {
		if s.Type == sim.ResourceNone {
			continue
		}
		y := 110 - 20*j
		if s.Available <= 0 {
			d.icon(7, y, iconMinusBox)
			continue
		}
		for i := 0; i < s.Available; i++ {
			d.icon(8-s.Available+2*i, y, iconResource0+int(s.Type))
		}
	}

	serf := iconMinusBox
	if b.HasSerf && mapBuildingSerfSprite[b.Type] >= 0 {
		serf = mapBuildingSerfSprite[b.Type]
	}
	d.icon(1, 36, serf)

	sprite := mapBuildingSprite[b.Type]
	d.building(buildingColumn(sprite), 30, sprite)

	d.greenString(1, 4, "Stock of")
	d.greenString(1, 14, "this building:")
	d.icon(14, 128, iconExitBox)
}

func (p *Popup) drawPlayerFace(d painter, x, y, n int) {
	color, face := 0, 0
	if pl := p.game.Player(n); pl != nil && pl.Active {
		color, face = pl.Color, pl.Face
	}
	d.f.FillRect(8*x, y+5, 48, 72, color)
	d.icon(x, y, FaceSprite(face))
}

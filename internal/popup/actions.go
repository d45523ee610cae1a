package popup

import (
	"serfpopup/internal/mathutil"
	"serfpopup/internal/minimap"
	"serfpopup/internal/sim"
	"serfpopup/internal/sound"
)

// actionFunc handles one action. x and y are relative to the clicked
// region.
type actionFunc func(p *Popup, a Action, x, y int)

var actionTable = newActionTable()

// HandleAction runs the handler of a and marks the popup for redraw.
// Unknown actions are logged and ignored.
func (p *Popup) HandleAction(a Action, x, y int) {
	p.lastAction, p.hasAction = a, true
	if fn, ok := actionTable[a]; ok {
		fn(p, a, x, y)
	} else {
		logWarn("unhandled action %s", a)
	}
	p.redraw = true
}

func newActionTable() map[Action]actionFunc {
	t := map[Action]actionFunc{
		ActionMinimapClick:     (*Popup).minimapClick,
		ActionMinimapMode:      (*Popup).minimapMode,
		ActionMinimapRoads:     minimapToggle(minimap.FlagRoads),
		ActionMinimapBuildings: (*Popup).minimapBuildings,
		ActionMinimapGrid:      minimapToggle(minimap.FlagGrid),
		ActionMinimapScale:     (*Popup).minimapScale,
		ActionMinimapBldFlag:   (*Popup).minimapBldFlag,
		ActionMinimapBldNext:   pageNext(BoxBld1, BoxBld4),
		ActionMinimapBldExit:   showBox(BoxMap),

		ActionBuildFlag: (*Popup).buildFlag,

		ActionBldFlipPage: pageNext(BoxBasicBldFlip, BoxAdv2Bld),
		ActionStatBldFlip: pageNext(BoxStatBld1, BoxStatBld4),

		ActionShowStat1:       showBox(BoxStat1),
		ActionShowStat2:       showBox(BoxStat2),
		ActionShowStat3:       showBox(BoxStat3),
		ActionShowStat4:       showBox(BoxStat4),
		ActionShowStat6:       showBox(BoxStat6),
		ActionShowStat7:       showBox(BoxStat7),
		ActionShowStat8:       showBox(BoxStat8),
		ActionShowStatBld:     showBox(BoxStatBld1),
		ActionShowStatSelect:  showBox(BoxStatSelect),
		ActionShowSett1:       showBox(BoxSett1),
		ActionShowSett2:       showBox(BoxSett2),
		ActionShowSett3:       showBox(BoxSett3),
		ActionShowSett4:       showBox(BoxSett4),
		ActionShowSett5:       showBox(BoxSett5),
		ActionShowSett6:       showBox(BoxSett6),
		ActionShowSett7:       showBox(BoxKnightLevel),
		ActionShowSett8:       showBox(BoxSett8),
		ActionShowSettSelect:  showBox(BoxSettSelect),
		ActionShowCastleSerf:  showBox(BoxCastleSerf),
		ActionShowResdir:      showBox(BoxResDir),
		ActionShowCastleRes:   showBox(BoxCastleRes),
		ActionShowPlayerFaces: showBox(BoxPlayerFaces),

		ActionCloseBox:            closePopup,
		ActionCloseSettBox:        closePopup,
		ActionCloseGroundAnalysis: closePopup,
		ActionCloseAttackBox:      closePopup,
		ActionCloseOptions:        closePopup,
		ActionCloseMessage:        closePopup,
		ActionQuitCancel:          closePopup,

		ActionShowQuit:    openPopup(BoxQuitConfirm),
		ActionShowOptions: openPopup(BoxOptions),

		ActionQuitConfirm:       (*Popup).quit,
		ActionNoSaveQuitConfirm: (*Popup).quit,

		ActionSett8SetAspectAll:       stat8Aspect(0),
		ActionSett8SetAspectLand:      stat8Aspect(1),
		ActionSett8SetAspectBuildings: stat8Aspect(2),
		ActionSett8SetAspectMilitary:  stat8Aspect(3),
		ActionSett8SetScale30Min:      stat8Scale(0),
		ActionSett8SetScale60Min:      stat8Scale(1),
		ActionSett8SetScale600Min:     stat8Scale(2),
		ActionSett8SetScale3000Min:    stat8Scale(3),

		ActionAttackingKnightsDec: (*Popup).attackingKnightsDec,
		ActionAttackingKnightsInc: (*Popup).attackingKnightsInc,
		ActionStartAttack:         (*Popup).startAttack,
		ActionAttackingSelectAll1: selectAttackers(1),
		ActionAttackingSelectAll2: selectAttackers(2),
		ActionAttackingSelectAll3: selectAttackers(3),
		ActionAttackingSelectAll4: selectAttackers(4),

		ActionSett1AdjustStonemine:       slider(BoxSett1, func(pl *sim.Player) *int { return &pl.FoodStonemine }),
		ActionSett1AdjustCoalmine:        slider(BoxSett1, func(pl *sim.Player) *int { return &pl.FoodCoalmine }),
		ActionSett1AdjustIronmine:        slider(BoxSett1, func(pl *sim.Player) *int { return &pl.FoodIronmine }),
		ActionSett1AdjustGoldmine:        slider(BoxSett1, func(pl *sim.Player) *int { return &pl.FoodGoldmine }),
		ActionSett2AdjustConstruction:    slider(BoxSett2, func(pl *sim.Player) *int { return &pl.PlanksConstruction }),
		ActionSett2AdjustBoatbuilder:     slider(BoxSett2, func(pl *sim.Player) *int { return &pl.PlanksBoatbuilder }),
		ActionSett2AdjustToolmakerPlanks: slider(BoxSett2, func(pl *sim.Player) *int { return &pl.PlanksToolmaker }),
		ActionSett2AdjustToolmakerSteel:  slider(BoxSett2, func(pl *sim.Player) *int { return &pl.SteelToolmaker }),
		ActionSett2AdjustWeaponsmith:     slider(BoxSett2, func(pl *sim.Player) *int { return &pl.SteelWeaponsmith }),
		ActionSett3AdjustSteelsmelter:    slider(BoxSett3, func(pl *sim.Player) *int { return &pl.CoalSteelsmelter }),
		ActionSett3AdjustGoldsmelter:     slider(BoxSett3, func(pl *sim.Player) *int { return &pl.CoalGoldsmelter }),
		ActionSett3AdjustWeaponsmith:     slider(BoxSett3, func(pl *sim.Player) *int { return &pl.CoalWeaponsmith }),
		ActionSett3AdjustPigfarm:         slider(BoxSett3, func(pl *sim.Player) *int { return &pl.WheatPigfarm }),
		ActionSett3AdjustMill:            slider(BoxSett3, func(pl *sim.Player) *int { return &pl.WheatMill }),
		ActionSett8AdjustRate:            slider(BoxSett8, func(pl *sim.Player) *int { return &pl.SerfToKnightRate }),

		ActionDefaultSett1:  resetPriorities(BoxSett1, (*sim.Player).ResetFoodPriority),
		ActionDefaultSett2:  resetPriorities(BoxSett2, (*sim.Player).ResetPlanksPriority, (*sim.Player).ResetSteelPriority),
		ActionDefaultSett3:  resetPriorities(BoxSett3, (*sim.Player).ResetCoalPriority, (*sim.Player).ResetWheatPriority),
		ActionDefaultSett4:  resetPriorities(BoxSett4, (*sim.Player).ResetToolPriority),
		ActionDefaultSett56: (*Popup).defaultSett56,

		ActionSett56Top:    sett56Move(true, true),
		ActionSett56Up:     sett56Move(true, false),
		ActionSett56Down:   sett56Move(false, false),
		ActionSett56Bottom: sett56Move(false, true),

		ActionSendGeologist: (*Popup).sendGeologist,

		ActionSett8Train1:              train(1),
		ActionSett8Train5:              train(5),
		ActionSett8Train20:             train(20),
		ActionSett8Train100:            train(100),
		ActionSett8SetCombatModeWeak:   sendStrongest(false),
		ActionSett8SetCombatModeStrong: sendStrongest(true),
		ActionSett8Cycle:               (*Popup).cycleKnights,
		ActionSett8CastleDefDec:        castleDefenders(-1),
		ActionSett8CastleDefInc:        castleDefenders(1),

		ActionOptionsMusic:         (*Popup).toggleMusic,
		ActionOptionsSfx:           (*Popup).toggleSfx,
		ActionOptionsFullscreen:    (*Popup).toggleFullscreen,
		ActionOptionsVolumeMinus:   (*Popup).volumeDown,
		ActionOptionsVolumePlus:    (*Popup).volumeUp,
		ActionOptionsMessageCount1: (*Popup).cycleMessageCount,

		ActionDemolish: (*Popup).demolish,
	}

	for a, bt := range map[Action]sim.BuildingType{
		ActionBuildStonemine:    sim.BuildingStonemine,
		ActionBuildCoalmine:     sim.BuildingCoalmine,
		ActionBuildIronmine:     sim.BuildingIronmine,
		ActionBuildGoldmine:     sim.BuildingGoldmine,
		ActionBuildStonecutter:  sim.BuildingStonecutter,
		ActionBuildHut:          sim.BuildingHut,
		ActionBuildLumberjack:   sim.BuildingLumberjack,
		ActionBuildForester:     sim.BuildingForester,
		ActionBuildFisher:       sim.BuildingFisher,
		ActionBuildMill:         sim.BuildingMill,
		ActionBuildBoatbuilder:  sim.BuildingBoatbuilder,
		ActionBuildButcher:      sim.BuildingButcher,
		ActionBuildWeaponsmith:  sim.BuildingWeaponsmith,
		ActionBuildSteelsmelter: sim.BuildingSteelsmelter,
		ActionBuildSawmill:      sim.BuildingSawmill,
		ActionBuildBaker:        sim.BuildingBaker,
		ActionBuildGoldsmelter:  sim.BuildingGoldsmelter,
		ActionBuildFortress:     sim.BuildingFortress,
		ActionBuildTower:        sim.BuildingTower,
		ActionBuildToolmaker:    sim.BuildingToolmaker,
		ActionBuildFarm:         sim.BuildingFarm,
		ActionBuildPigfarm:      sim.BuildingPigfarm,
		ActionBuildStock:        sim.BuildingStock,
	} {
		t[a] = build(bt)
	}

	for a := ActionStat7SelectFish; a <= ActionStat7SelectShield; a++ {
		t[a] = (*Popup).selectStat7
	}

	knightActions := [...]Action{
		ActionKnightLevelFarthestMinDec, ActionKnightLevelFarMinDec,
		ActionKnightLevelCloseMinDec, ActionKnightLevelClosestMinDec,
	}
	for index, dec := range knightActions {
		// Each band has MinDec, MinInc, MaxDec, MaxInc in a row.
		t[dec] = knightLevel(index, false, -1)
		t[dec+1] = knightLevel(index, false, 1)
		t[dec+2] = knightLevel(index, true, -1)
		t[dec+3] = knightLevel(index, true, 1)
	}

	for i, a := range [...]Action{
		ActionSett4AdjustShovel, ActionSett4AdjustHammer, ActionSett4AdjustAxe,
		ActionSett4AdjustSaw, ActionSett4AdjustScythe, ActionSett4AdjustPick,
		ActionSett4AdjustPincer, ActionSett4AdjustCleaver, ActionSett4AdjustRod,
	} {
		tool := sett4ToolOrder[i]
		t[a] = slider(BoxSett4, func(pl *sim.Player) *int { return &pl.ToolPrio[tool] })
	}

	for a := ActionSett56Item1; a <= ActionSett56Item26; a++ {
		t[a] = (*Popup).activateSett56
	}

	for a := ActionResModeIn; a <= ActionResModeOut; a++ {
		t[a] = (*Popup).setResourceMode
	}
	for a := ActionSerfModeIn; a <= ActionSerfModeOut; a++ {
		t[a] = (*Popup).setSerfMode
	}

	for a := ActionMinimapBld1; a <= ActionMinimapBld23; a++ {
		t[a] = (*Popup).minimapBld
	}
	return t
}

func showBox(b Box) actionFunc {
	return func(p *Popup, _ Action, _, _ int) { p.SetBox(b) }
}

// pageNext advances through the pages first..last, wrapping to first.
func pageNext(first, last Box) actionFunc {
	return func(p *Popup, _ Action, _, _ int) { p.SetBox(nextInRange(p.box, first, last)) }
}

func closePopup(p *Popup, _ Action, _, _ int) { p.owner.ClosePopup() }

func openPopup(b Box) actionFunc {
	return func(p *Popup, _ Action, _, _ int) { p.owner.OpenPopup(b) }
}

func build(t sim.BuildingType) actionFunc {
	return func(p *Popup, _ Action, _, _ int) { p.owner.BuildBuilding(t) }
}

func slider(b Box, field func(*sim.Player) *int) actionFunc {
	return func(p *Popup, _ Action, x, _ int) {
		p.SetBox(b)
		*field(p.owner.Player()) = SliderValue(x)
	}
}

func resetPriorities(b Box, resets ...func(*sim.Player)) actionFunc {
	return func(p *Popup, _ Action, _, _ int) {
		p.SetBox(b)
		for _, reset := range resets {
			reset(p.owner.Player())
		}
	}
}

func knightLevel(index int, adjustMax bool, delta int) actionFunc {
	return func(p *Popup, _ Action, _, _ int) {
		p.owner.Player().ChangeKnightOccupation(index, adjustMax, delta)
		p.SetBox(BoxKnightLevel)
	}
}

func stat8Aspect(aspect int) actionFunc {
	return func(p *Popup, _ Action, _, _ int) {
		p.owner.SetStat8Mode(aspect<<2 | p.owner.Stat8Mode()&3)
	}
}

func stat8Scale(scale int) actionFunc {
	return func(p *Popup, _ Action, _, _ int) {
		p.owner.SetStat8Mode(p.owner.Stat8Mode()&0xc | scale)
	}
}

func selectAttackers(bands int) actionFunc {
	return func(p *Popup, _ Action, _, _ int) {
		pl := p.owner.Player()
		n := 0
		for _, k := range pl.AttackingKnights[:bands] {
			n += k
		}
		pl.KnightsAttacking = n
	}
}

func train(n int) actionFunc {
	return func(p *Popup, _ Action, _, _ int) {
		if p.game.PromoteSerfsToKnights(p.owner.Player(), n) == 0 {
			p.playSound(sound.SfxNotAccepted)
		} else {
			p.playSound(sound.SfxAccepted)
		}
	}
}

func sendStrongest(on bool) actionFunc {
	return func(p *Popup, _ Action, _, _ int) {
		p.owner.Player().SendStrongest = on
		p.playSound(sound.SfxAccepted)
	}
}

func castleDefenders(delta int) actionFunc {
	return func(p *Popup, _ Action, _, _ int) {
		pl := p.owner.Player()
		pl.CastleKnightsWanted = mathutil.IntClamp(pl.CastleKnightsWanted+delta, 1, 99)
	}
}

func minimapToggle(bit int) actionFunc {
	return func(p *Popup, _ Action, _, _ int) {
		p.minimap.SetFlags(p.minimap.Flags() ^ bit)
		p.SetBox(BoxMap)
	}
}

func (p *Popup) minimapClick(_ Action, x, y int) {
	p.minimap.HandleClick(x, y)
}

func (p *Popup) minimapMode(_ Action, _, _ int) {
	mode := p.minimap.Flags()&minimap.FlagModeMask + 1
	flags := p.minimap.Flags() &^ minimap.FlagModeMask
	if mode != 3 {
		flags |= mode
	}
	p.minimap.SetFlags(flags)
	p.SetBox(BoxMap)
}

func (p *Popup) minimapBuildings(_ Action, _, _ int) {
	if p.minimap.Advanced() >= 0 {
		p.minimap.SetAdvanced(-1)
		p.minimap.SetFlags(p.minimap.Flags() | minimap.FlagBuildings)
	} else {
		p.minimap.SetFlags(p.minimap.Flags() ^ minimap.FlagBuildings)
	}
	p.SetBox(BoxMap)
}

func (p *Popup) minimapScale(_ Action, _, _ int) {
	p.minimap.SetFlags(p.minimap.Flags() ^ minimap.FlagScale)
	if p.minimap.Scale() == 1 {
		p.minimap.SetScale(2)
	} else {
		p.minimap.SetScale(1)
	}
	p.SetBox(BoxMap)
}

func (p *Popup) minimapBld(a Action, _, _ int) {
	p.minimap.SetAdvanced(int(a-ActionMinimapBld1) + 1)
	p.minimap.SetFlags(p.minimap.Flags() | minimap.FlagBuildings)
	p.SetBox(BoxMap)
}

func (p *Popup) minimapBldFlag(_ Action, _, _ int) {
	p.minimap.SetAdvanced(0)
	p.SetBox(BoxMap)
}

func (p *Popup) buildFlag(_ Action, _, _ int) {
	p.owner.BuildFlag()
	p.owner.ClosePopup()
}

func (p *Popup) quit(_ Action, _, _ int) {
	p.playSound(sound.SfxAhhh)
	p.owner.Quit()
}

func (p *Popup) selectStat7(a Action, _, _ int) {
	p.owner.SetStat7Item(int(a-ActionStat7SelectFish) + 1)
}

func (p *Popup) attackingKnightsDec(_ Action, _, _ int) {
	pl := p.owner.Player()
	pl.KnightsAttacking = mathutil.IntMax(pl.KnightsAttacking-1, 0)
}

func (p *Popup) attackingKnightsInc(_ Action, _, _ int) {
	pl := p.owner.Player()
	pl.KnightsAttacking = mathutil.IntMin(pl.KnightsAttacking+1, mathutil.IntMin(pl.TotalAttackingKnights, 100))
}

func (p *Popup) startAttack(_ Action, _, _ int) {
	pl := p.owner.Player()
	if pl.KnightsAttacking <= 0 {
		p.playSound(sound.SfxNotAccepted)
		return
	}
	if pl.AttackingBuildingCount > 0 {
		if err := p.game.StartAttack(pl); err != nil {
			logDebug("start attack: %v", err)
			p.playSound(sound.SfxNotAccepted)
		} else {
			p.playSound(sound.SfxAccepted)
		}
	}
	p.owner.ClosePopup()
}

// sett56Priorities returns the priority table the box edits and a
// pointer to its selected item.
func (p *Popup) sett56Priorities() (*[sim.ResourceCount]int, *int) {
	pl := p.owner.Player()
	if p.box == BoxSett5 {
		return &pl.FlagPrio, &pl.CurrentSett5Item
	}
	return &pl.InventoryPrio, &pl.CurrentSett6Item
}

func (p *Popup) activateSett56(a Action, _, _ int) {
	rank := int(sim.ResourceCount) - int(a-ActionSett56Item1)
	prio, cur := p.sett56Priorities()
	i := 0
	for ; i < len(prio); i++ {
		if prio[i] == rank {
			break
		}
	}
	*cur = i + 1
}

func sett56Move(up, toEnd bool) actionFunc {
	return func(p *Popup, _ Action, _, _ int) {
		prio, cur := p.sett56Priorities()
		MovePriority(prio, *cur-1, up, toEnd)
	}
}

// MovePriority moves the resource at index cur of a rank permutation one
// step or to the end, shifting the ranks in between so prio stays a
// permutation of 1..len(prio).
func MovePriority(prio *[sim.ResourceCount]int, cur int, up, toEnd bool) {
	if cur < 0 || cur >= len(prio) {
		return
	}
	value := prio[cur]
	var next int
	switch {
	case up && toEnd:
		next = len(prio)
	case up:
		next = value + 1
	case toEnd:
		next = 1
	default:
		next = value - 1
	}
	if next < 1 || next > len(prio) || next == value {
		return
	}

	delta, lo, hi := 1, next, value-1
	if next > value {
		delta, lo, hi = -1, value+1, next
	}
	for i := range prio {
		if prio[i] >= lo && prio[i] <= hi {
			prio[i] += delta
		}
	}
	prio[cur] = next
}

func (p *Popup) defaultSett56(_ Action, _, _ int) {
	switch p.box {
	case BoxSett5:
		p.owner.Player().ResetFlagPriority()
	case BoxSett6:
		p.owner.Player().ResetInventoryPriority()
	default:
		logWarn("priority reset outside priority box %s", p.box)
	}
}

func (p *Popup) sendGeologist(_ Action, _, _ int) {
	flag := p.game.FlagAt(p.owner.MapCursorPos())
	if err := p.game.SendGeologist(flag); err != nil {
		logDebug("send geologist: %v", err)
		p.playSound(sound.SfxNotAccepted)
		return
	}
	p.playSound(sound.SfxAccepted)
	p.owner.ClosePopup()
}

// selectedInventory is the inventory of the selected stock or castle.
func (p *Popup) selectedInventory() *sim.Inventory {
	b := p.game.Building(p.owner.Player().SelectedIndex)
	if b == nil || !b.IsInventory() {
		return nil
	}
	return p.game.Inventory(b.InventoryIndex)
}

func (p *Popup) setResourceMode(a Action, _, _ int) {
	if inv := p.selectedInventory(); inv != nil {
		p.game.SetInventoryResourceMode(inv, int(a-ActionResModeIn))
	}
}

func (p *Popup) setSerfMode(a Action, _, _ int) {
	if inv := p.selectedInventory(); inv != nil {
		p.game.SetInventorySerfMode(inv, int(a-ActionSerfModeIn))
	}
}

func (p *Popup) cycleKnights(_ Action, _, _ int) {
	p.game.CycleKnights(p.owner.Player())
	p.playSound(sound.SfxAccepted)
}

func (p *Popup) toggleMusic(_ Action, _, _ int) {
	if p.audio != nil {
		if pl := p.audio.MusicPlayer(); pl != nil {
			pl.SetEnabled(!pl.Enabled())
		}
	}
	p.playSound(sound.SfxClick)
}

func (p *Popup) toggleSfx(_ Action, _, _ int) {
	if p.audio != nil {
		if pl := p.audio.SoundPlayer(); pl != nil {
			pl.SetEnabled(!pl.Enabled())
		}
	}
	p.playSound(sound.SfxClick)
}

func (p *Popup) toggleFullscreen(_ Action, _, _ int) {
	if p.display != nil {
		p.display.SetFullscreen(!p.display.Fullscreen())
	}
	p.playSound(sound.SfxClick)
}

func (p *Popup) volumeDown(_ Action, _, _ int) {
	if p.audio != nil {
		if vc := p.audio.VolumeController(); vc != nil {
			vc.VolumeDown()
		}
	}
	p.playSound(sound.SfxClick)
}

func (p *Popup) volumeUp(_ Action, _, _ int) {
	if p.audio != nil {
		if vc := p.audio.VolumeController(); vc != nil {
			vc.VolumeUp()
		}
	}
	p.playSound(sound.SfxClick)
}

// cycleMessageCount steps through all, most, few and no messages.
func (p *Popup) cycleMessageCount(_ Action, _, _ int) {
	o := p.owner
	switch {
	case o.Config(ConfigMessagesAll):
		o.SwitchConfig(ConfigMessagesAll)
		o.SetConfig(ConfigMessagesMost)
	case o.Config(ConfigMessagesMost):
		o.SwitchConfig(ConfigMessagesMost)
		o.SetConfig(ConfigMessagesFew)
	case o.Config(ConfigMessagesFew):
		o.SwitchConfig(ConfigMessagesFew)
	default:
		o.SetConfig(ConfigMessagesAll)
		o.SetConfig(ConfigMessagesMost)
		o.SetConfig(ConfigMessagesFew)
	}
}

func (p *Popup) demolish(_ Action, _, _ int) {
	p.owner.DemolishObject()
	p.owner.ClosePopup()
}

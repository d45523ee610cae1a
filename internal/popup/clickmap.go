package popup

// Content area of a popup, excluding the frame.
const (
	ContentWidth  = 128
	ContentHeight = 144
)

// Region is a clickable rectangle of the content area bound to an action.
type Region struct {
	Action Action
	X, Y   int
	W, H   int
}

// Contains reports whether x, y lies inside the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// ClickMap is an ordered list of regions. Earlier regions win.
type ClickMap []Region

// Hit returns the first region containing x, y and the click position
// relative to that region.
func (m ClickMap) Hit(x, y int) (r Region, rx, ry int, ok bool) {
	for _, r := range m {
		if r.Contains(x, y) {
			return r, x - r.X, y - r.Y, true
		}
	}
	return Region{}, 0, 0, false
}

var (
	closeClickMap = ClickMap{
		{ActionCloseBox, 112, 128, 16, 16},
	}

	optionsClickMap = ClickMap{
		{ActionOptionsMusic, 106, 10, 16, 16},
		{ActionOptionsSfx, 106, 30, 16, 16},
		{ActionOptionsVolumeMinus, 90, 50, 16, 16},
		{ActionOptionsVolumePlus, 106, 50, 16, 16},
		{ActionOptionsFullscreen, 106, 70, 16, 16},
		{ActionOptionsMessageCount1, 90, 90, 32, 16},
		{ActionCloseOptions, 112, 126, 16, 16},
	}

	mineBuildingClickMap = ClickMap{
		{ActionBuildStonemine, 16, 8, 33, 65},
		{ActionBuildCoalmine, 64, 8, 33, 65},
		{ActionBuildIronmine, 32, 77, 33, 65},
		{ActionBuildGoldmine, 80, 77, 33, 65},
		{ActionBuildFlag, 10, 114, 17, 21},
	}

	bldFlipRegion = Region{ActionBldFlipPage, 0, 129, 16, 15}

	// Regions reaching past the right edge are clipped to the content
	// width.
	basicBuildingClickMap = ClickMap{
		{ActionBuildStonecutter, 16, 13, 33, 29},
		{ActionBuildHut, 80, 13, 33, 27},
		{ActionBuildLumberjack, 0, 58, 33, 24},
		{ActionBuildForester, 48, 56, 33, 26},
		{ActionBuildFisher, 96, 55, 32, 30},
		{ActionBuildMill, 16, 92, 33, 46},
		{ActionBuildFlag, 58, 108, 17, 21},
		{ActionBuildBoatbuilder, 80, 87, 33, 53},
	}

	adv1BuildingClickMap = ClickMap{
		bldFlipRegion,
		{ActionBuildButcher, 0, 15, 65, 26},
		{ActionBuildWeaponsmith, 64, 15, 64, 26},
		{ActionBuildSteelsmelter, 0, 50, 49, 39},
		{ActionBuildSawmill, 64, 50, 49, 41},
		{ActionBuildBaker, 16, 100, 49, 33},
		{ActionBuildGoldsmelter, 80, 96, 48, 40},
	}

	adv2BuildingClickMap = ClickMap{
		bldFlipRegion,
		{ActionBuildFortress, 64, 87, 64, 56},
		{ActionBuildTower, 16, 99, 48, 43},
		{ActionBuildToolmaker, 0, 1, 64, 48},
		{ActionBuildFarm, 64, 1, 64, 42},
		{ActionBuildPigfarm, 64, 45, 64, 41},
		{ActionBuildStock, 0, 50, 48, 48},
	}

	statSelectClickMap = ClickMap{
		{ActionShowStat1, 8, 12, 32, 32},
		{ActionShowStat2, 48, 12, 32, 32},
		{ActionShowStat3, 88, 12, 32, 32},
		{ActionShowStat4, 8, 56, 32, 32},
		{ActionShowStatBld, 48, 56, 32, 32},
		{ActionShowStat6, 88, 56, 32, 32},
		{ActionShowStat7, 8, 100, 32, 32},
		{ActionShowStat8, 48, 100, 32, 32},
		{ActionCloseBox, 112, 128, 16, 16},
		{ActionShowSettSelect, 96, 104, 16, 16},
	}

	statWholeClickMap = ClickMap{
		{ActionShowStatSelect, 0, 0, ContentWidth, ContentHeight},
	}

	statBldClickMap = ClickMap{
		{ActionShowStatSelect, 112, 128, 16, 16},
		{ActionStatBldFlip, 0, 128, 16, 16},
	}

	stat8ClickMap = ClickMap{
		{ActionSett8SetAspectAll, 16, 112, 16, 16},
		{ActionSett8SetAspectLand, 32, 112, 16, 16},
		{ActionSett8SetAspectBuildings, 16, 128, 16, 16},
		{ActionSett8SetAspectMilitary, 32, 128, 16, 16},
		{ActionSett8SetScale30Min, 64, 112, 16, 16},
		{ActionSett8SetScale60Min, 80, 112, 16, 16},
		{ActionSett8SetScale600Min, 64, 128, 16, 16},
		{ActionSett8SetScale3000Min, 80, 128, 16, 16},
		{ActionShowPlayerFaces, 112, 112, 16, 14},
		{ActionShowStatSelect, 112, 128, 16, 16},
	}

	stat7ClickMap = ClickMap{
		{ActionStat7SelectLumber, 0, 75, 16, 16},
		{ActionStat7SelectPlank, 16, 75, 16, 16},
		{ActionStat7SelectStone, 32, 75, 16, 16},
		{ActionStat7SelectCoal, 0, 91, 16, 16},
		{ActionStat7SelectIronore, 16, 91, 16, 16},
		{ActionStat7SelectGoldore, 32, 91, 16, 16},
		{ActionStat7SelectBoat, 0, 107, 16, 16},
		{ActionStat7SelectSteel, 16, 107, 16, 16},
		{ActionStat7SelectGoldbar, 32, 107, 16, 16},
		{ActionStat7SelectSword, 56, 83, 16, 16},
		{ActionStat7SelectShield, 56, 99, 16, 16},
		{ActionStat7SelectShovel, 80, 75, 16, 16},
		{ActionStat7SelectHammer, 96, 75, 16, 16},
		{ActionStat7SelectAxe, 112, 75, 16, 16},
		{ActionStat7SelectSaw, 80, 91, 16, 16},
		{ActionStat7SelectPick, 96, 91, 16, 16},
		{ActionStat7SelectScythe, 112, 91, 16, 16},
		{ActionStat7SelectCleaver, 80, 107, 16, 16},
		{ActionStat7SelectPincer, 96, 107, 16, 16},
		{ActionStat7SelectRod, 112, 107, 16, 16},
		{ActionStat7SelectFish, 8, 125, 16, 16},
		{ActionStat7SelectPig, 24, 125, 16, 16},
		{ActionStat7SelectMeat, 40, 125, 16, 16},
		{ActionStat7SelectWheat, 56, 125, 16, 16},
		{ActionStat7SelectFlour, 72, 125, 16, 16},
		{ActionStat7SelectBread, 88, 125, 16, 16},
		{ActionShowStatSelect, 112, 128, 16, 16},
	}

	startAttackClickMap = ClickMap{
		{ActionAttackingKnightsDec, 32, 112, 16, 16},
		{ActionAttackingKnightsInc, 80, 112, 16, 16},
		{ActionStartAttack, 0, 128, 32, 16},
		{ActionCloseAttackBox, 112, 128, 16, 16},
		{ActionAttackingSelectAll1, 8, 80, 16, 24},
		{ActionAttackingSelectAll2, 40, 80, 16, 24},
		{ActionAttackingSelectAll3, 72, 80, 16, 24},
		{ActionAttackingSelectAll4, 104, 80, 16, 24},
	}

	groundAnalysisClickMap = ClickMap{
		{ActionCloseGroundAnalysis, 112, 128, 16, 16},
	}

	settSelectClickMap = ClickMap{
		{ActionShowQuit, 0, 128, 32, 16},
		{ActionShowOptions, 32, 128, 32, 16},
		{ActionShowSave, 64, 128, 32, 16},
		{ActionShowSett1, 8, 8, 32, 32},
		{ActionShowSett2, 48, 8, 32, 32},
		{ActionShowSett3, 88, 8, 32, 32},
		{ActionShowSett4, 8, 48, 32, 32},
		{ActionShowSett5, 48, 48, 32, 32},
		{ActionShowSett6, 88, 48, 32, 32},
		{ActionShowSett7, 8, 88, 32, 32},
		{ActionShowSett8, 48, 88, 32, 32},
		{ActionCloseSettBox, 112, 128, 16, 16},
		{ActionShowStatSelect, 96, 104, 16, 16},
	}

	sett1ClickMap = ClickMap{
		{ActionSett1AdjustStonemine, 32, 22, 64, 6},
		{ActionSett1AdjustCoalmine, 0, 42, 64, 6},
		{ActionSett1AdjustIronmine, 64, 115, 64, 6},
		{ActionSett1AdjustGoldmine, 32, 134, 64, 6},
		{ActionShowSettSelect, 112, 128, 16, 16},
		{ActionDefaultSett1, 8, 8, 16, 16},
	}

	sett2ClickMap = ClickMap{
		{ActionSett2AdjustConstruction, 0, 27, 64, 6},
		{ActionSett2AdjustBoatbuilder, 0, 37, 64, 6},
		{ActionSett2AdjustToolmakerPlanks, 64, 45, 64, 6},
		{ActionSett2AdjustToolmakerSteel, 64, 104, 64, 6},
		{ActionSett2AdjustWeaponsmith, 0, 131, 64, 6},
		{ActionShowSettSelect, 112, 128, 16, 16},
		{ActionDefaultSett2, 104, 8, 16, 16},
	}

	sett3ClickMap = ClickMap{
		{ActionSett3AdjustSteelsmelter, 0, 40, 64, 6},
		{ActionSett3AdjustGoldsmelter, 64, 40, 64, 6},
		{ActionSett3AdjustWeaponsmith, 32, 48, 64, 6},
		{ActionSett3AdjustPigfarm, 0, 93, 64, 6},
		{ActionSett3AdjustMill, 64, 119, 64, 6},
		{ActionShowSettSelect, 112, 128, 16, 16},
		{ActionDefaultSett3, 8, 60, 16, 16},
	}

	knightLevelClickMap = ClickMap{
		{ActionKnightLevelClosestMinDec, 32, 2, 16, 16},
		{ActionKnightLevelClosestMinInc, 48, 2, 16, 16},
		{ActionKnightLevelClosestMaxDec, 32, 18, 16, 16},
		{ActionKnightLevelClosestMaxInc, 48, 18, 16, 16},
		{ActionKnightLevelCloseMinDec, 32, 36, 16, 16},
		{ActionKnightLevelCloseMinInc, 48, 36, 16, 16},
		{ActionKnightLevelCloseMaxDec, 32, 52, 16, 16},
		{ActionKnightLevelCloseMaxInc, 48, 52, 16, 16},
		{ActionKnightLevelFarMinDec, 32, 70, 16, 16},
		{ActionKnightLevelFarMinInc, 48, 70, 16, 16},
		{ActionKnightLevelFarMaxDec, 32, 86, 16, 16},
		{ActionKnightLevelFarMaxInc, 48, 86, 16, 16},
		{ActionKnightLevelFarthestMinDec, 32, 104, 16, 16},
		{ActionKnightLevelFarthestMinInc, 48, 104, 16, 16},
		{ActionKnightLevelFarthestMaxDec, 32, 120, 16, 16},
		{ActionKnightLevelFarthestMaxInc, 48, 120, 16, 16},
		{ActionShowSettSelect, 112, 128, 16, 16},
	}

	sett4ClickMap = ClickMap{
		{ActionSett4AdjustShovel, 32, 4, 64, 8},
		{ActionSett4AdjustHammer, 32, 20, 64, 8},
		{ActionSett4AdjustAxe, 32, 36, 64, 8},
		{ActionSett4AdjustSaw, 32, 52, 64, 8},
		{ActionSett4AdjustScythe, 32, 68, 64, 8},
		{ActionSett4AdjustPick, 32, 84, 64, 8},
		{ActionSett4AdjustPincer, 32, 100, 64, 8},
		{ActionSett4AdjustCleaver, 32, 116, 64, 8},
		{ActionSett4AdjustRod, 32, 132, 64, 8},
		{ActionShowSettSelect, 112, 128, 16, 16},
		{ActionDefaultSett4, 104, 8, 16, 16},
	}

	sett56ClickMap = ClickMap{
		{ActionSett56Item1, 40, 4, 16, 16},
		{ActionSett56Item2, 56, 6, 16, 16},
		{ActionSett56Item3, 72, 8, 16, 16},
		{ActionSett56Item4, 88, 10, 16, 16},
		{ActionSett56Item5, 104, 12, 16, 16},
		{ActionSett56Item6, 104, 28, 16, 16},
		{ActionSett56Item7, 88, 30, 16, 16},
		{ActionSett56Item8, 72, 32, 16, 16},
		{ActionSett56Item9, 56, 34, 16, 16},
		{ActionSett56Item10, 40, 36, 16, 16},
		{ActionSett56Item11, 24, 38, 16, 16},
		{ActionSett56Item12, 8, 40, 16, 16},
		{ActionSett56Item13, 8, 56, 16, 16},
		{ActionSett56Item14, 24, 58, 16, 16},
		{ActionSett56Item15, 40, 60, 16, 16},
		{ActionSett56Item16, 56, 62, 16, 16},
		{ActionSett56Item17, 72, 64, 16, 16},
		{ActionSett56Item18, 88, 66, 16, 16},
		{ActionSett56Item19, 104, 68, 16, 16},
		{ActionSett56Item20, 104, 84, 16, 16},
		{ActionSett56Item21, 88, 86, 16, 16},
		{ActionSett56Item22, 72, 88, 16, 16},
		{ActionSett56Item23, 56, 90, 16, 16},
		{ActionSett56Item24, 40, 92, 16, 16},
		{ActionSett56Item25, 24, 94, 16, 16},
		{ActionSett56Item26, 8, 96, 16, 16},
		{ActionSett56Top, 8, 120, 16, 16},
		{ActionSett56Up, 24, 120, 16, 16},
		{ActionSett56Down, 72, 120, 16, 16},
		{ActionSett56Bottom, 88, 120, 16, 16},
		{ActionShowSettSelect, 112, 128, 16, 16},
		{ActionDefaultSett56, 8, 4, 16, 16},
	}

	quitConfirmClickMap = ClickMap{
		{ActionQuitConfirm, 8, 45, 32, 8},
		{ActionQuitCancel, 88, 45, 32, 8},
	}

	noSaveQuitConfirmClickMap = ClickMap{
		{ActionNoSaveQuitConfirm, 8, 125, 32, 8},
		{ActionQuitCancel, 88, 125, 32, 8},
	}

	castleResClickMap = ClickMap{
		{ActionCloseBox, 112, 128, 16, 16},
		{ActionShowCastleSerf, 96, 128, 16, 16},
	}

	transportInfoClickMap = ClickMap{
		{ActionTransportInfoFlag, 56, 51, 16, 15},
		{ActionSendGeologist, 16, 96, 16, 16},
		{ActionCloseBox, 112, 128, 16, 16},
	}

	castleSerfClickMap = ClickMap{
		{ActionCloseBox, 112, 128, 16, 16},
		{ActionShowResdir, 96, 128, 16, 16},
	}

	resDirModeClickMap = ClickMap{
		{ActionResModeIn, 72, 16, 16, 16},
		{ActionResModeStop, 72, 32, 16, 16},
		{ActionResModeOut, 72, 48, 16, 16},
		{ActionSerfModeIn, 72, 80, 16, 16},
		{ActionSerfModeStop, 72, 96, 16, 16},
		{ActionSerfModeOut, 72, 112, 16, 16},
	}

	resDirClickMap = ClickMap{
		{ActionCloseBox, 112, 128, 16, 16},
		{ActionShowCastleRes, 96, 128, 16, 16},
	}

	sett8ClickMap = ClickMap{
		{ActionSett8AdjustRate, 32, 12, 64, 8},
		{ActionSett8Train1, 16, 28, 16, 16},
		{ActionSett8Train5, 32, 28, 16, 16},
		{ActionSett8Train20, 16, 44, 16, 16},
		{ActionSett8Train100, 32, 44, 16, 16},
		{ActionSett8SetCombatModeWeak, 48, 84, 16, 16},
		{ActionSett8SetCombatModeStrong, 48, 100, 16, 16},
		{ActionSett8Cycle, 80, 84, 32, 32},
		{ActionSett8CastleDefDec, 24, 120, 16, 16},
		{ActionSett8CastleDefInc, 72, 120, 16, 16},
		{ActionShowSettSelect, 112, 128, 16, 16},
	}

	messageClickMap = ClickMap{
		{ActionCloseMessage, 112, 128, 16, 16},
	}

	playerFacesClickMap = ClickMap{
		{ActionShowStat8, 0, 0, ContentWidth, ContentHeight},
	}

	demolishClickMap = ClickMap{
		{ActionCloseBox, 112, 128, 16, 16},
		{ActionDemolish, 56, 45, 16, 16},
	}

	minimapClickMap = ClickMap{
		{ActionMinimapClick, 0, 0, 128, 128},
		{ActionMinimapMode, 0, 128, 32, 16},
		{ActionMinimapRoads, 32, 128, 32, 16},
		{ActionMinimapBuildings, 64, 128, 32, 16},
		{ActionMinimapGrid, 96, 128, 16, 16},
		{ActionMinimapScale, 112, 128, 16, 16},
	}

	bld1ClickMap = ClickMap{
		{ActionMinimapBld1, 0, 0, 64, 51},
		{ActionMinimapBld2, 64, 0, 48, 51},
		{ActionMinimapBld3, 16, 64, 32, 32},
		{ActionMinimapBld4, 48, 60, 64, 71},
		{ActionMinimapBldFlag, 25, 110, 16, 34},
		{ActionMinimapBldNext, 0, 128, 16, 16},
		{ActionMinimapBldExit, 112, 128, 16, 16},
	}

	bld2ClickMap = ClickMap{
		{ActionMinimapBld5, 0, 0, 64, 56},
		{ActionMinimapBld6, 64, 0, 32, 51},
		{ActionMinimapBld7, 0, 64, 64, 32},
		{ActionMinimapBld8, 64, 64, 32, 32},
		{ActionMinimapBld9, 96, 60, 32, 36},
		{ActionMinimapBld10, 32, 104, 32, 36},
		{ActionMinimapBld11, 64, 104, 32, 36},
		{ActionMinimapBldNext, 0, 128, 16, 16},
		{ActionMinimapBldExit, 112, 128, 16, 16},
	}

	bld3ClickMap = ClickMap{
		{ActionMinimapBld12, 0, 0, 64, 48},
		{ActionMinimapBld13, 64, 0, 64, 48},
		{ActionMinimapBld14, 0, 56, 32, 34},
		{ActionMinimapBld15, 32, 86, 32, 54},
		{ActionMinimapBld16, 64, 56, 64, 34},
		{ActionMinimapBld17, 64, 100, 48, 40},
		{ActionMinimapBldNext, 0, 128, 16, 16},
		{ActionMinimapBldExit, 112, 128, 16, 16},
	}

	// Regions 19 and 20 overlap; 19 wins.
	bld4ClickMap = ClickMap{
		{ActionMinimapBld18, 0, 0, 32, 64},
		{ActionMinimapBld19, 32, 0, 32, 64},
		{ActionMinimapBld20, 61, 0, 35, 64},
		{ActionMinimapBld21, 96, 0, 32, 64},
		{ActionMinimapBld22, 16, 95, 48, 41},
		{ActionMinimapBld23, 64, 95, 48, 41},
		{ActionMinimapBldNext, 0, 128, 16, 16},
		{ActionMinimapBldExit, 112, 128, 16, 16},
	}
)

var basicBuildingFlipClickMap = append(ClickMap{bldFlipRegion}, basicBuildingClickMap...)

// boxClickMaps binds every clickable box to its click maps, tried in order.
// Boxes depending on game state are resolved in clickMaps.
var boxClickMaps = map[Box][]ClickMap{
	BoxMap:               {minimapClickMap},
	BoxMineBuilding:      {mineBuildingClickMap},
	BoxBasicBld:          {basicBuildingClickMap},
	BoxBasicBldFlip:      {basicBuildingFlipClickMap},
	BoxAdv1Bld:           {adv1BuildingClickMap},
	BoxAdv2Bld:           {adv2BuildingClickMap},
	BoxStatSelect:        {statSelectClickMap},
	BoxStat4:             {statWholeClickMap},
	BoxStat6:             {statWholeClickMap},
	BoxStat3:             {statWholeClickMap},
	BoxStat1:             {statWholeClickMap},
	BoxStat2:             {statWholeClickMap},
	BoxStatBld1:          {statBldClickMap},
	BoxStatBld2:          {statBldClickMap},
	BoxStatBld3:          {statBldClickMap},
	BoxStatBld4:          {statBldClickMap},
	BoxStat8:             {stat8ClickMap},
	BoxStat7:             {stat7ClickMap},
	BoxStartAttack:       {startAttackClickMap},
	BoxStartAttackRedraw: {startAttackClickMap},
	BoxGroundAnalysis:    {groundAnalysisClickMap},
	BoxSettSelect:        {settSelectClickMap},
	BoxSett1:             {sett1ClickMap},
	BoxSett2:             {sett2ClickMap},
	BoxSett3:             {sett3ClickMap},
	BoxKnightLevel:       {knightLevelClickMap},
	BoxSett4:             {sett4ClickMap},
	BoxSett5:             {sett56ClickMap},
	BoxSett6:             {sett56ClickMap},
	BoxQuitConfirm:       {quitConfirmClickMap},
	BoxNoSaveQuitConfirm: {noSaveQuitConfirmClickMap},
	BoxOptions:           {optionsClickMap},
	BoxCastleRes:         {castleResClickMap},
	BoxMineOutput:        {closeClickMap},
	BoxOrderedBld:        {closeClickMap},
	BoxDefenders:         {closeClickMap},
	BoxTransportInfo:     {transportInfoClickMap},
	BoxCastleSerf:        {castleSerfClickMap},
	BoxResDir:            {resDirModeClickMap, resDirClickMap},
	BoxSett8:             {sett8ClickMap},
	BoxBld1:              {bld1ClickMap},
	BoxBld2:              {bld2ClickMap},
	BoxBld3:              {bld3ClickMap},
	BoxBld4:              {bld4ClickMap},
	BoxMessage:           {messageClickMap},
	BoxBldStock:          {closeClickMap},
	BoxPlayerFaces:       {playerFacesClickMap},
	BoxDemolish:          {demolishClickMap},
}

// clickMaps returns the click maps of box in the order they are tried, or
// nil when the box takes no clicks. In demo mode the transport info box
// only closes and the inventory mode buttons are inert.
func clickMaps(box Box, demo bool) []ClickMap {
	if demo {
		switch box {
		case BoxTransportInfo:
			return []ClickMap{closeClickMap}
		case BoxResDir:
			return []ClickMap{resDirClickMap}
		}
	}
	return boxClickMaps[box]
}

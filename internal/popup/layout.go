package popup

import "serfpopup/internal/sim"

// LayoutEntry places one sprite. X is in 8 pixel columns, Y in pixels,
// both relative to the content area of the popup.
type LayoutEntry struct {
	Sprite int
	X, Y   int
}

// Layout is a fixed list of sprite placements drawn in order.
type Layout []LayoutEntry

// Background tiles.
const (
	bgBuild       = 0x83
	bgStat        = 129
	bgAttack      = 131
	bgGround      = 0x81
	bgSett        = 311
	bgQuit        = 310
	bgBuilding    = 0x138
	bgBuildFilter = 313
	bgDemolish    = 314
)

// Common icons.
const (
	iconExit       = 60
	iconExitBox    = 0x3c
	iconFlip       = 0x3d
	iconStatFlip   = 61
	iconMinusBox   = 0xdc
	iconCheckBox   = 0x120
	iconCheckmark  = 106
	iconOptionOn   = 288
	iconOptionOff  = 220
	iconMinus      = 220
	iconPlus       = 221
	iconSlideBar   = 236
	iconDefault    = 295
	iconFood       = 0x24
	iconGold       = 0x30
	iconMiner      = 0x11
	iconDigger     = 0xb
	iconBuilder    = 0xc
	iconGeologist  = 0x1c
	iconResource0  = 34
	iconFlagSlot0  = 0x22
	iconKnightBase = 7
	iconFaceNone   = 0x119
	iconFaceBase   = 0x10b
)

// mapBuildingSprite is the map object sprite of each building type.
var mapBuildingSprite = [sim.BuildingTypeCount]int{
	0, 0xa7, 0xa8, 0xae, 0xa9, 0xa3, 0xa4, 0xa5, 0xa6, 0xaa, 0xc0, 0xab,
	0x9a, 0x9c, 0x9b, 0xbc, 0xa2, 0xa0, 0xa1, 0x99, 0x9d, 0x9e, 0x98, 0x9f,
	0xb2,
}

// mapBuildingSerfSprite is the icon of the worker of each building type,
// -1 where the type has none.
var mapBuildingSerfSprite = [sim.BuildingTypeCount]int{
	-1, 0x13, 0xd, 0x19, 0xf, -1, -1, -1, -1, 0x10, -1, -1, 0x16, 0x15,
	0x14, 0x17, 0x18, 0xe, 0x12, 0x1a, 0x1b, -1, -1, 0x12, -1,
}

// flagSprite is the map object sprite of a flag owned by player.
func flagSprite(player int) int { return 0x80 + 4*player }

// buildingColumn is the column large building sprites are centred at.
func buildingColumn(sprite int) int {
	if sprite == 0xc0 || sprite >= 0x9e {
		return 4
	}
	return 6
}

var (
	mineBuildingLayout = Layout{
		{0xa3, 2, 8}, {0xa4, 8, 8}, {0xa5, 4, 77}, {0xa6, 10, 77},
	}

	// The hut comes first so it can be skipped when military buildings
	// are not allowed at the cursor.
	basicBuildingLayout = Layout{
		{0xab, 10, 13},
		{0xa9, 2, 13}, {0xa8, 0, 58}, {0xaa, 6, 56}, {0xa7, 12, 55},
		{0xbc, 2, 85}, {0xae, 10, 87},
	}

	adv1BuildingLayout = Layout{
		{0x9c, 0, 15}, {0x9d, 8, 15}, {0xa1, 0, 50}, {0xa0, 8, 50},
		{0xa2, 2, 100}, {0x9f, 10, 96},
	}

	// Tower and fortress come first, see basicBuildingLayout.
	adv2BuildingLayout = Layout{
		{0x9e, 2, 99}, {0x98, 8, 84},
		{0x99, 0, 1}, {0xc0, 0, 46}, {0x9a, 8, 1}, {0x9b, 8, 45},
	}

	resourcesLayout = Layout{
		{0x28, 1, 0}, {0x29, 1, 16}, {0x2a, 1, 32}, {0x2b, 1, 48},
		{0x2e, 1, 64}, {0x2c, 1, 80}, {0x2d, 1, 96}, {0x2f, 1, 112},
		{0x30, 1, 128},
		{0x31, 6, 0}, {0x32, 6, 16}, {0x36, 6, 32}, {0x37, 6, 48},
		{0x35, 6, 64}, {0x38, 6, 80}, {0x39, 6, 96}, {0x34, 6, 112},
		{0x33, 6, 128},
		{0x3a, 11, 0}, {0x3b, 11, 16}, {0x22, 11, 32}, {0x23, 11, 48},
		{0x24, 11, 64}, {0x25, 11, 80}, {0x26, 11, 96}, {0x27, 11, 112},
	}

	serfsLayout = Layout{
		{0x9, 1, 0}, {0xa, 1, 16}, {0xb, 1, 32}, {0xc, 1, 48},
		{0x21, 1, 64}, {0x20, 1, 80}, {0x1f, 1, 96}, {0x1e, 1, 112},
		{0x1d, 1, 128},
		{0xd, 6, 0}, {0xe, 6, 16}, {0x12, 6, 32}, {0xf, 6, 48},
		{0x10, 6, 64}, {0x11, 6, 80}, {0x19, 6, 96}, {0x1a, 6, 112},
		{0x1b, 6, 128},
		{0x13, 11, 0}, {0x14, 11, 16}, {0x15, 11, 32}, {0x16, 11, 48},
		{0x17, 11, 64}, {0x18, 11, 80}, {0x1c, 11, 96}, {0x82, 11, 112},
	}

	statSelectLayout = Layout{
		{72, 1, 12}, {73, 6, 12}, {77, 11, 12},
		{74, 1, 56}, {76, 6, 56}, {75, 11, 56},
		{71, 1, 100}, {70, 6, 100},
		{iconStatFlip, 12, 104}, {iconExit, 14, 128},
	}

	// Military page, shared by the building statistics and the minimap
	// building filter.
	bldPage1Layout = Layout{
		{192, 0, 5}, {171, 2, 77}, {158, 8, 7}, {152, 6, 69},
	}
	bldFilterPage1Layout = Layout{
		{0xc0, 0, 5}, {0xab, 2, 77}, {0x9e, 8, 7}, {0x98, 6, 69},
	}
	bldPage2Layout = Layout{
		{153, 0, 4}, {160, 8, 6}, {157, 0, 68}, {169, 8, 65},
		{174, 12, 57}, {170, 4, 105}, {168, 8, 107},
	}
	bldPage3Layout = Layout{
		{155, 0, 2}, {154, 8, 3}, {167, 0, 61}, {156, 8, 60},
		{188, 4, 75}, {162, 8, 100},
	}
	bldPage4Layout = Layout{
		{163, 0, 4}, {164, 4, 4}, {165, 8, 4}, {166, 12, 4},
		{161, 2, 90}, {159, 8, 90},
	}

	stat8Layout = Layout{
		{0x58, 14, 0}, {0x59, 0, 100},
		{0x41, 8, 112}, {0x42, 10, 112}, {0x43, 8, 128}, {0x44, 10, 128},
		{0x45, 2, 112}, {0x40, 4, 112}, {0x3e, 2, 128}, {0x3f, 4, 128},
		{0x133, 14, 112},
		{iconExitBox, 14, 128},
	}

	stat7Layout = Layout{
		{0x81, 6, 80}, {0x81, 8, 80}, {0x81, 6, 96}, {0x81, 8, 96},
		{0x59, 0, 64}, {0x5a, 14, 0},
		{0x28, 0, 75}, {0x29, 2, 75}, {0x2b, 4, 75},
		{0x2e, 0, 91}, {0x2c, 2, 91}, {0x2f, 4, 91},
		{0x2a, 0, 107}, {0x2d, 2, 107}, {0x30, 4, 107},
		{0x3a, 7, 83}, {0x3b, 7, 99},
		{0x31, 10, 75}, {0x32, 12, 75}, {0x36, 14, 75},
		{0x37, 10, 91}, {0x38, 12, 91}, {0x35, 14, 91},
		{0x34, 10, 107}, {0x39, 12, 107}, {0x33, 14, 107},
		{0x22, 1, 125}, {0x23, 3, 125}, {0x24, 5, 125},
		{0x25, 7, 125}, {0x26, 9, 125}, {0x27, 11, 125},
		{iconExitBox, 14, 128},
	}

	stat1Layout = Layout{
		{0x18, 0, 0}, {0xb4, 0, 16}, {0xb3, 0, 24}, {0xb2, 0, 32},
		{0xb3, 0, 40}, {0xb2, 0, 48}, {0xb3, 0, 56}, {0xb2, 0, 64},
		{0xb3, 0, 72}, {0xb2, 0, 80}, {0xb3, 0, 88}, {0xd4, 0, 96},
		{0xb1, 0, 112}, {0x13, 0, 120},
		{0x15, 2, 48}, {0xb4, 2, 64}, {0xb3, 2, 72}, {0xd4, 2, 80},
		{0xa4, 2, 96}, {0xa4, 2, 112},
		{0xae, 4, 4}, {0xae, 4, 36}, {0xa6, 4, 80}, {0xa6, 4, 96},
		{0xa6, 4, 112},
		{0x26, 6, 0}, {0x23, 6, 32}, {0xb5, 6, 64}, {0x24, 6, 76},
		{0x27, 6, 92}, {0x22, 6, 108}, {0xb6, 6, 124},
		{0x17, 8, 0}, {0x14, 8, 32}, {0xa6, 8, 64}, {0xab, 8, 88},
		{0xab, 8, 104}, {0xa6, 8, 128},
		{0xba, 12, 8},
		{0x11, 12, 56}, {0x11, 12, 80}, {0x11, 12, 104}, {0x11, 12, 128},
		{0x16, 14, 0}, {0x25, 14, 16}, {0x2f, 14, 56}, {0x2e, 14, 80},
		{0x2c, 14, 104}, {0x2b, 14, 128},
	}

	stat2Layout = Layout{
		{0x11, 0, 0}, {0x11, 0, 24}, {0x11, 0, 56}, {0xd, 0, 80},
		{0x11, 0, 104}, {0xf, 0, 128},
		{0x2f, 2, 0}, {0x2e, 2, 24}, {0xb0, 2, 40}, {0x2c, 2, 56},
		{0x28, 2, 80}, {0x2b, 2, 104}, {0x2b, 2, 128},
		{0xaa, 4, 4}, {0xab, 4, 24}, {0xad, 4, 32}, {0xa8, 4, 40},
		{0xac, 4, 60}, {0xaa, 4, 84}, {0xbb, 4, 108},
		{0xa4, 6, 32}, {0xe, 6, 96}, {0xa5, 6, 132},
		{0x30, 8, 0}, {0x12, 8, 16}, {0xa4, 8, 32}, {0x2d, 8, 40},
		{0x12, 8, 56}, {0xb8, 8, 80}, {0x29, 8, 96}, {0xaf, 8, 112},
		{0xa5, 8, 132},
		{0xaa, 10, 4}, {0xb9, 10, 24}, {0xab, 10, 40}, {0xb7, 10, 48},
		{0xa6, 10, 80}, {0xa9, 10, 96}, {0xa6, 10, 112}, {0xa7, 10, 132},
		{0x21, 14, 0}, {0x1b, 14, 28}, {0x1a, 14, 64}, {0x19, 14, 92},
		{0xc, 14, 120},
	}

	startAttackBuildingLayout = Layout{
		{0x0, 2, 33}, {0xa, 6, 30}, {0x7, 10, 33}, {0xc, 14, 30},
		{0xe, 2, 36}, {0x2, 6, 39}, {0xb, 10, 36}, {0x4, 12, 39},
		{0x8, 8, 42}, {0xf, 12, 42},
	}
	startAttackIconLayout = Layout{
		{216, 1, 80}, {217, 5, 80}, {218, 9, 80}, {219, 13, 80},
		{iconMinus, 4, 112}, {iconPlus, 10, 112}, {222, 0, 128},
		{iconExit, 14, 128},
	}

	groundAnalysisLayout = Layout{
		{0x1c, 7, 10}, {0x2f, 1, 50}, {0x2c, 1, 70}, {0x2e, 1, 90},
		{0x2b, 1, 110}, {iconExitBox, 14, 128},
	}

	settSelectLayout = Layout{
		{230, 1, 8}, {231, 6, 8}, {232, 11, 8},
		{234, 1, 48}, {235, 6, 48}, {299, 11, 48},
		{233, 1, 88}, {298, 6, 88},
		{iconStatFlip, 12, 104}, {iconExit, 14, 128},
		{285, 4, 128}, {286, 0, 128}, {224, 8, 128},
	}

	sett1BuildingLayout = Layout{
		{163, 12, 21}, {164, 8, 41}, {165, 4, 61}, {166, 0, 81},
	}
	sett1Layout = Layout{
		{34, 4, 1}, {36, 7, 1}, {39, 10, 1},
		{iconExit, 14, 128}, {iconDefault, 1, 8},
	}

	sett2BuildingLayout = Layout{
		{186, 2, 0}, {174, 2, 41}, {153, 8, 54}, {157, 0, 102},
	}
	sett2Layout = Layout{
		{41, 9, 25}, {45, 9, 119}, {iconExit, 14, 128}, {iconDefault, 13, 8},
	}

	sett3BuildingLayout = Layout{
		{161, 0, 1}, {159, 10, 0}, {157, 4, 56}, {188, 12, 61}, {155, 0, 101},
	}
	sett3Layout = Layout{
		{46, 7, 19}, {37, 8, 101}, {iconExit, 14, 128}, {iconDefault, 1, 60},
	}

	knightLevelLayout = Layout{
		{226, 0, 2}, {227, 0, 36}, {228, 0, 70}, {229, 0, 104},
		{iconMinus, 4, 2}, {iconPlus, 6, 2},
		{iconMinus, 4, 18}, {iconPlus, 6, 18},
		{iconMinus, 4, 36}, {iconPlus, 6, 36},
		{iconMinus, 4, 52}, {iconPlus, 6, 52},
		{iconMinus, 4, 70}, {iconPlus, 6, 70},
		{iconMinus, 4, 86}, {iconPlus, 6, 86},
		{iconMinus, 4, 104}, {iconPlus, 6, 104},
		{iconMinus, 4, 120}, {iconPlus, 6, 120},
		{iconExit, 14, 128},
	}

	sett4Layout = Layout{
		{49, 1, 0}, {50, 1, 16}, {54, 1, 32}, {55, 1, 48}, {53, 1, 64},
		{56, 1, 80}, {57, 1, 96}, {52, 1, 112}, {51, 1, 128},
		{iconExit, 14, 128}, {iconDefault, 13, 8},
	}

	sett56Layout = Layout{
		{237, 1, 120}, {238, 3, 120}, {239, 9, 120}, {240, 11, 120},
		{iconDefault, 1, 4}, {iconExit, 14, 128},
	}

	castleResLayout = Layout{
		{iconFlip, 12, 128}, {iconExitBox, 14, 128},
	}

	castleSerfLayout = castleResLayout

	resDirLayout = Layout{
		{0x128, 4, 16}, {0x129, 4, 80},
		{iconMinusBox, 9, 16}, {iconMinusBox, 9, 32}, {iconMinusBox, 9, 48},
		{iconMinusBox, 9, 80}, {iconMinusBox, 9, 96}, {iconMinusBox, 9, 112},
		{iconFlip, 12, 128}, {iconExitBox, 14, 128},
	}
	resDirKnightsLayout = Layout{
		{0x21, 12, 16}, {0x20, 12, 36}, {0x1f, 12, 56}, {0x1e, 12, 76},
		{0x1d, 12, 96},
	}

	sett8Layout = Layout{
		{9, 2, 8}, {29, 12, 8}, {300, 2, 28}, {59, 7, 44}, {130, 8, 28},
		{58, 9, 44}, {304, 3, 64}, {303, 11, 64}, {302, 2, 84},
		{iconMinus, 6, 84}, {iconMinus, 6, 100}, {301, 10, 84},
		{iconMinus, 3, 120}, {iconPlus, 9, 120}, {iconExit, 14, 128},
	}
)

// resourceStairs are the icon positions of priority ranks 26 down to 1.
var resourceStairs = [sim.ResourceCount][2]int{
	{5, 4}, {7, 6}, {9, 8}, {11, 10}, {13, 12},
	{13, 28}, {11, 30}, {9, 32}, {7, 34}, {5, 36}, {3, 38}, {1, 40},
	{1, 56}, {3, 58}, {5, 60}, {7, 62}, {9, 64}, {11, 66}, {13, 68},
	{13, 84}, {11, 86}, {9, 88}, {7, 90}, {5, 92}, {3, 94}, {1, 96},
}

// transportPathLayout is the checkbox position of each road direction,
// listed from direction 5 down to 0.
var transportPathLayout = [6][2]int{
	{9, 24}, {5, 24}, {3, 44}, {5, 64}, {9, 64}, {11, 44},
}

// Column resources of the resources panel, top to bottom.
var resourceColumns = [3][]sim.Resource{
	{
		sim.ResourceLumber, sim.ResourcePlank, sim.ResourceBoat,
		sim.ResourceStone, sim.ResourceCoal, sim.ResourceIronore,
		sim.ResourceSteel, sim.ResourceGoldore, sim.ResourceGoldbar,
	},
	{
		sim.ResourceShovel, sim.ResourceHammer, sim.ResourceAxe,
		sim.ResourceSaw, sim.ResourceScythe, sim.ResourcePick,
		sim.ResourcePincer, sim.ResourceCleaver, sim.ResourceRod,
	},
	{
		sim.ResourceSword, sim.ResourceShield, sim.ResourceFish,
		sim.ResourcePig, sim.ResourceMeat, sim.ResourceWheat,
		sim.ResourceFlour, sim.ResourceBread,
	},
}

// Column serf types of the serfs panels, top to bottom.
var serfColumns = [3][]sim.SerfType{
	{
		sim.SerfTransporter, sim.SerfSailor, sim.SerfDigger,
		sim.SerfBuilder, sim.SerfKnight4, sim.SerfKnight3,
		sim.SerfKnight2, sim.SerfKnight1, sim.SerfKnight0,
	},
	{
		sim.SerfLumberjack, sim.SerfSawmiller, sim.SerfSmelter,
		sim.SerfStonecutter, sim.SerfForester, sim.SerfMiner,
		sim.SerfBoatbuilder, sim.SerfToolmaker, sim.SerfWeaponsmith,
	},
	{
		sim.SerfFisher, sim.SerfPigfarmer, sim.SerfButcher,
		sim.SerfFarmer, sim.SerfMiller, sim.SerfBaker,
		sim.SerfGeologist, sim.SerfGeneric,
	},
}

// panelColumns is the number column of each of the three panel columns.
var panelColumns = [3]int{3, 8, 13}

// buildingCount places the completed/incomplete count of a building type
// on a statistics page.
type buildingCount struct {
	Type sim.BuildingType
	X, Y int
}

var statBldCounts = [4][]buildingCount{
	{
		{sim.BuildingHut, 2, 105}, {sim.BuildingTower, 10, 53},
		{sim.BuildingFortress, 9, 130}, {sim.BuildingStock, 4, 61},
	},
	{
		{sim.BuildingToolmaker, 3, 54}, {sim.BuildingSawmill, 10, 48},
		{sim.BuildingWeaponsmith, 3, 95}, {sim.BuildingStonecutter, 8, 95},
		{sim.BuildingBoatbuilder, 12, 95}, {sim.BuildingForester, 5, 132},
		{sim.BuildingLumberjack, 9, 132},
	},
	{
		{sim.BuildingPigfarm, 3, 48}, {sim.BuildingFarm, 11, 48},
		{sim.BuildingFisher, 0, 92}, {sim.BuildingButcher, 11, 87},
		{sim.BuildingMill, 5, 134}, {sim.BuildingBaker, 10, 134},
	},
	{
		{sim.BuildingStonemine, 0, 71}, {sim.BuildingCoalmine, 4, 71},
		{sim.BuildingIronmine, 8, 71}, {sim.BuildingGoldmine, 12, 71},
		{sim.BuildingSteelsmelter, 4, 130}, {sim.BuildingGoldsmelter, 9, 130},
	},
}

var statBldLayouts = [4]Layout{bldPage1Layout, bldPage2Layout, bldPage3Layout, bldPage4Layout}

var bldFilterLayouts = [4]Layout{bldFilterPage1Layout, bldPage2Layout, bldPage3Layout, bldPage4Layout}

// sett4ToolOrder maps the rows of the tool priority box to ToolPrio
// indices.
var sett4ToolOrder = [9]int{0, 1, 5, 6, 4, 7, 8, 3, 2}

var knightLevelNames = [5]string{"Minimum", "Weak", "Medium", "Good", "Full"}

package sim

import "serfpopup/internal/mathutil"

// SliderMax is the largest value a priority slider can hold.
const SliderMax = 65500

// Player holds the per-player state the popup panels read and adjust.
type Player struct {
	Num    int
	Active bool
	Color  int
	Face   int

	// SelectedIndex is the building or flag the player last opened a
	// panel for. Zero means nothing is selected.
	SelectedIndex int

	// Food distribution to mines.
	FoodStonemine int
	FoodCoalmine  int
	FoodIronmine  int
	FoodGoldmine  int

	// Plank and steel distribution.
	PlanksConstruction int
	PlanksBoatbuilder  int
	PlanksToolmaker    int
	SteelToolmaker     int
	SteelWeaponsmith   int

	// Coal and wheat distribution.
	CoalSteelsmelter int
	CoalGoldsmelter  int
	CoalWeaponsmith  int
	WheatPigfarm     int
	WheatMill        int

	// ToolPrio is indexed shovel, hammer, rod, cleaver, scythe, axe, saw,
	// pick, pincer.
	ToolPrio [9]int

	// FlagPrio and InventoryPrio map a resource to its rank 1..26.
	FlagPrio         [ResourceCount]int
	InventoryPrio    [ResourceCount]int
	CurrentSett5Item int
	CurrentSett6Item int

	// KnightOccupation packs max<<4 | min per distance band,
	// index 0 farthest from the border, 3 closest.
	KnightOccupation [4]int

	KnightsAttacking       int
	TotalAttackingKnights  int
	AttackingBuildingCount int
	AttackingKnights       [4]int
	BuildingAttacked       int

	SerfToKnightRate    int
	KnightMorale        int
	GoldDeposited       int
	CastleKnightsWanted int
	CastleKnights       int
	SendStrongest       bool
	CyclingKnights      bool

	CompletedBuildingCount  [BuildingTypeCount]int
	IncompleteBuildingCount [BuildingTypeCount]int
	SerfCount               [SerfTypeCount]int

	ResourceCountHistory [ResourceCount][ResourceHistoryLen]int
	StatHistory          [PlayerHistoryModes][PlayerHistoryLen]int
}

// NewPlayer returns an active player with default priorities.
func NewPlayer(num, color, face int) *Player {
	p := &Player{
		Num:                 num,
		Active:              true,
		Color:               color,
		Face:                face,
		SerfToKnightRate:    20000,
		KnightMorale:        0x1000,
		CastleKnightsWanted: 3,
		KnightOccupation:    [4]int{0x10, 0x21, 0x32, 0x43},
		CurrentSett5Item:    8,
		CurrentSett6Item:    15,
	}
	p.ResetFoodPriority()
	p.ResetPlanksPriority()
	p.ResetSteelPriority()
	p.ResetCoalPriority()
	p.ResetWheatPriority()
	p.ResetToolPriority()
	p.ResetFlagPriority()
	p.ResetInventoryPriority()
	return p
}

func (p *Player) ResetFoodPriority() {
	p.FoodStonemine = 13100
	p.FoodCoalmine = 45850
	p.FoodIronmine = 45850
	p.FoodGoldmine = SliderMax
}

func (p *Player) ResetPlanksPriority() {
	p.PlanksConstruction = SliderMax
	p.PlanksBoatbuilder = 3275
	p.PlanksToolmaker = 19650
}

func (p *Player) ResetSteelPriority() {
	p.SteelToolmaker = 45850
	p.SteelWeaponsmith = SliderMax
}

func (p *Player) ResetCoalPriority() {
	p.CoalSteelsmelter = 32750
	p.CoalGoldsmelter = SliderMax
	p.CoalWeaponsmith = 52400
}

func (p *Player) ResetWheatPriority() {
	p.WheatPigfarm = SliderMax
	p.WheatMill = 32750
}

func (p *Player) ResetToolPriority() {
	p.ToolPrio = [9]int{9825, SliderMax, 13100, 6550, 19650, 26200, 32750, 45850, 39300}
}

var defaultFlagPrio = map[Resource]int{
	ResourceGoldore: 1, ResourceGoldbar: 2, ResourceIronore: 3, ResourceCoal: 4,
	ResourceSteel: 5, ResourceShovel: 6, ResourceHammer: 7, ResourceRod: 8,
	ResourceCleaver: 9, ResourceScythe: 10, ResourceAxe: 11, ResourceSaw: 12,
	ResourcePick: 13, ResourcePincer: 14, ResourceShield: 15, ResourceSword: 16,
	ResourceBoat: 17, ResourceStone: 18, ResourcePlank: 19, ResourceLumber: 20,
	ResourceFlour: 21, ResourceWheat: 22, ResourcePig: 23, ResourceMeat: 24,
	ResourceBread: 25, ResourceFish: 26,
}

var defaultInventoryPrio = map[Resource]int{
	ResourceWheat: 1, ResourceFlour: 2, ResourcePig: 3, ResourceBread: 4,
	ResourceFish: 5, ResourceMeat: 6, ResourceLumber: 7, ResourcePlank: 8,
	ResourceBoat: 9, ResourceStone: 10, ResourceCoal: 11, ResourceIronore: 12,
	ResourceSteel: 13, ResourceShovel: 14, ResourceHammer: 15, ResourceRod: 16,
	ResourceCleaver: 17, ResourceScythe: 18, ResourceAxe: 19, ResourceSaw: 20,
	ResourcePick: 21, ResourcePincer: 22, ResourceShield: 23, ResourceSword: 24,
	ResourceGoldore: 25, ResourceGoldbar: 26,
}

func (p *Player) ResetFlagPriority() {
	for r, rank := range defaultFlagPrio {
		p.FlagPrio[r] = rank
	}
}

func (p *Player) ResetInventoryPriority() {
	for r, rank := range defaultInventoryPrio {
		p.InventoryPrio[r] = rank
	}
}

// ChangeKnightOccupation moves the min or max knight level of a distance
// band by delta. Levels stay within 0..4 and min never exceeds max.
func (p *Player) ChangeKnightOccupation(index int, adjustMax bool, delta int) {
	max := (p.KnightOccupation[index] >> 4) & 0xf
	min := p.KnightOccupation[index] & 0xf
	if adjustMax {
		max = mathutil.IntClamp(max+delta, min, 4)
	} else {
		min = mathutil.IntClamp(min+delta, 0, max)
	}
	p.KnightOccupation[index] = (max << 4) | min
}

// KnightLevels returns the min and max level of a distance band.
func (p *Player) KnightLevels(index int) (min, max int) {
	return p.KnightOccupation[index] & 0xf, (p.KnightOccupation[index] >> 4) & 0xf
}

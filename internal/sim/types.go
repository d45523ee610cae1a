package sim

// BuildingType identifies a kind of building. The order is significant:
// sprite and serf tables are indexed by it.
type BuildingType int

const (
	BuildingNone BuildingType = iota
	BuildingFisher
	BuildingLumberjack
	BuildingBoatbuilder
	BuildingStonecutter
	BuildingStonemine
	BuildingCoalmine
	BuildingIronmine
	BuildingGoldmine
	BuildingForester
	BuildingStock
	BuildingHut
	BuildingFarm
	BuildingButcher
	BuildingPigfarm
	BuildingMill
	BuildingBaker
	BuildingSawmill
	BuildingSteelsmelter
	BuildingToolmaker
	BuildingWeaponsmith
	BuildingTower
	BuildingFortress
	BuildingGoldsmelter
	BuildingCastle

	BuildingTypeCount
)

var buildingNames = [...]string{
	"none", "fisher", "lumberjack", "boatbuilder", "stonecutter",
	"stonemine", "coalmine", "ironmine", "goldmine", "forester",
	"stock", "hut", "farm", "butcher", "pigfarm", "mill", "baker",
	"sawmill", "steelsmelter", "toolmaker", "weaponsmith", "tower",
	"fortress", "goldsmelter", "castle",
}

func (t BuildingType) String() string {
	if t < 0 || int(t) >= len(buildingNames) {
		return "unknown"
	}
	return buildingNames[t]
}

// IsMilitary reports whether knights can be stationed in the building.
func (t BuildingType) IsMilitary() bool {
	return t == BuildingHut || t == BuildingTower || t == BuildingFortress || t == BuildingCastle
}

// IsMine reports whether the building is one of the four mines.
func (t BuildingType) IsMine() bool {
	return t >= BuildingStonemine && t <= BuildingGoldmine
}

// Resource identifies a transportable resource.
type Resource int

const (
	ResourceFish Resource = iota
	ResourcePig
	ResourceMeat
	ResourceWheat
	ResourceFlour
	ResourceBread
	ResourceLumber
	ResourcePlank
	ResourceBoat
	ResourceStone
	ResourceIronore
	ResourceSteel
	ResourceCoal
	ResourceGoldore
	ResourceGoldbar
	ResourceShovel
	ResourceHammer
	ResourceRod
	ResourceCleaver
	ResourceScythe
	ResourceAxe
	ResourceSaw
	ResourcePick
	ResourcePincer
	ResourceSword
	ResourceShield

	ResourceCount
)

// ResourceNone marks an empty flag slot or an unused building stock.
const ResourceNone Resource = -1

// SerfType identifies a serf profession.
type SerfType int

const (
	SerfTransporter SerfType = iota
	SerfSailor
	SerfDigger
	SerfBuilder
	SerfTransporterInventory
	SerfLumberjack
	SerfSawmiller
	SerfStonecutter
	SerfForester
	SerfMiner
	SerfSmelter
	SerfFisher
	SerfPigfarmer
	SerfButcher
	SerfFarmer
	SerfMiller
	SerfBaker
	SerfBoatbuilder
	SerfToolmaker
	SerfWeaponsmith
	SerfGeologist
	SerfGeneric
	SerfKnight0
	SerfKnight1
	SerfKnight2
	SerfKnight3
	SerfKnight4

	SerfTypeCount
)

// IsKnight reports whether the serf type is one of the five knight ranks.
func (t SerfType) IsKnight() bool {
	return t >= SerfKnight0 && t <= SerfKnight4
}

// SerfState is the subset of serf states the UI distinguishes.
type SerfState int

const (
	SerfStateWalking SerfState = iota
	SerfStateIdleInStock
	SerfStateDefending
	SerfStateWorking
)

// GroundDeposit indexes the estimates of a ground analysis.
type GroundDeposit int

const (
	DepositGold GroundDeposit = iota
	DepositIron
	DepositCoal
	DepositStone

	DepositCount
)

// MapPos is a packed map position.
type MapPos int

// Inventory resource and serf modes.
const (
	ModeIn = iota
	ModeStop
	ModeOut
)

const (
	// MaxPlayers is the number of player slots in a game.
	MaxPlayers = 4
	// BuildingMaxStock is the number of stock slots a building has.
	BuildingMaxStock = 2
	// FlagMaxResources is the number of resource slots on a flag.
	FlagMaxResources = 8
	// ResourceHistoryLen is the size of the per-resource ring buffer.
	ResourceHistoryLen = 120
	// PlayerHistoryLen is the size of the per-player statistics ring buffer.
	PlayerHistoryLen = 112
	// PlayerHistoryModes is aspect (4) times time scale (4).
	PlayerHistoryModes = 16
)

// PlayerHistoryInterval is the number of ticks between samples of each
// player chart time scale.
var PlayerHistoryInterval = [PlayerHistoryModes / 4]int{1, 2, 20, 100}

package sim

// Stock is one input slot of a building.
type Stock struct {
	Type      Resource
	Available int
	Requested int
	Maximum   int
}

// Building is a placed building. Index 0 is never used.
type Building struct {
	Index   int
	Pos     MapPos
	Type    BuildingType
	Player  int
	Done    bool
	Burning bool
	HasSerf bool

	// Progress is construction progress while not done, and for mines a
	// shift register of recent mining results (bit 0 newest).
	Progress int
	State    int

	Stock [BuildingMaxStock]Stock

	// SerfIndex heads the list of stationed knights, linked by
	// Serf.NextKnight. Zero terminates.
	SerfIndex int

	// InventoryIndex is set for stocks and castles.
	InventoryIndex int
}

// IsInventory reports whether the building holds an inventory.
func (b *Building) IsInventory() bool {
	return b.Type == BuildingStock || b.Type == BuildingCastle
}

// Inventory is the resource and serf store of a castle or stock.
type Inventory struct {
	Index         int
	Player        int
	BuildingIndex int
	FlagIndex     int
	Resources     [ResourceCount]int
	GenericCount  int
	ResMode       int
	SerfMode      int
}

// FlagSlot is one resource waiting on a flag.
type FlagSlot struct {
	Type Resource
}

// Flag is a road junction. Paths are numbered by direction 0..5.
type Flag struct {
	Index       int
	Pos         MapPos
	Player      int
	Paths       [6]bool
	Transporter [6]bool
	Slots       [FlagMaxResources]FlagSlot
}

// HasPath reports whether a road leaves the flag in direction dir.
func (f *Flag) HasPath(dir int) bool { return f.Paths[dir] }

// HasTransporter reports whether the road in direction dir is served.
func (f *Flag) HasTransporter(dir int) bool { return f.Transporter[dir] }

// Serf is a unit of the workforce.
type Serf struct {
	Index  int
	Player int
	Type   SerfType
	State  SerfState

	// InventoryIndex is valid while State is SerfStateIdleInStock.
	InventoryIndex int
	// NextKnight links defending knights of one building.
	NextKnight int
}

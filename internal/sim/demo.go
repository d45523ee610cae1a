package sim

import "math/rand"

// DemoConfig sizes the world NewDemoGame builds.
type DemoConfig struct {
	Width       int
	Height      int
	Seed        int64
	Players     int
	WarmupTicks int
}

// NewDemoGame seeds a small world: a castle and stock for player 0, some
// production and mines, and a hostile hut to attack.
func NewDemoGame(cfg DemoConfig) *Game {
	if cfg.Width < 32 {
		cfg.Width = 32
	}
	if cfg.Height < 32 {
		cfg.Height = 32
	}
	if cfg.Players < 2 || cfg.Players > MaxPlayers {
		cfg.Players = 2
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	g := NewGame(cfg.Width, cfg.Height)

	for i := 0; i < cfg.Players; i++ {
		g.AddPlayer(NewPlayer(i, 64+i*8, i+1))
	}

	// A mountain range in the upper right and a lake in the lower left.
	for row := 2; row < 8; row++ {
		for col := 18; col < 28; col++ {
			g.SetTerrain(g.Pos(col, row), TerrainMountain)
		}
	}
	for row := 22; row < 28; row++ {
		for col := 2; col < 8; col++ {
			g.SetTerrain(g.Pos(col, row), TerrainWater)
		}
	}
	for pos := 0; pos < cfg.Width*cfg.Height; pos++ {
		var d [DepositCount]int
		if g.terrain[pos] == TerrainMountain {
			d[DepositGold] = rng.Intn(60)
			d[DepositIron] = rng.Intn(120)
			d[DepositCoal] = rng.Intn(140)
			d[DepositStone] = rng.Intn(80)
		} else if g.terrain[pos] == TerrainGrass {
			d[DepositStone] = rng.Intn(20)
		}
		g.SetDeposits(MapPos(pos), d)
	}

	p0 := g.Player(0)
	castle := g.addBuilding(g.Pos(8, 8), BuildingCastle, 0, true)
	castle.HasSerf = true
	castleFlag := g.addFlag(g.Pos(9, 9), 0)
	castleFlag.Paths = [6]bool{true, false, true, false, false, true}
	castleFlag.Transporter = [6]bool{true, false, false, false, false, true}
	castleFlag.Slots[0].Type = ResourcePlank
	castleFlag.Slots[1].Type = ResourceStone
	castleFlag.Slots[5].Type = ResourceFish
	inv := g.Inventory(castle.InventoryIndex)
	inv.FlagIndex = castleFlag.Index
	inv.GenericCount = 12
	for r := Resource(0); r < ResourceCount; r++ {
		inv.Resources[r] = 2 + rng.Intn(30)
	}
	inv.Resources[ResourceSword] = 6
	inv.Resources[ResourceShield] = 4
	p0.SerfCount[SerfGeneric] = inv.GenericCount
	p0.GoldDeposited = inv.Resources[ResourceGoldbar]

	for i := 0; i < 3; i++ {
		g.addSerf(&Serf{Player: 0, Type: SerfTransporter, State: SerfStateIdleInStock, InventoryIndex: inv.Index})
	}
	g.addSerf(&Serf{Player: 0, Type: SerfGeologist, State: SerfStateIdleInStock, InventoryIndex: inv.Index})
	g.stationKnights(castle, SerfKnight0, SerfKnight2, SerfKnight4)
	p0.CastleKnights = 3

	stock := g.addBuilding(g.Pos(14, 12), BuildingStock, 0, true)
	stock.HasSerf = true
	stockInv := g.Inventory(stock.InventoryIndex)
	stockInv.GenericCount = 3
	stockInv.Resources[ResourceLumber] = 14
	stockInv.Resources[ResourceHammer] = 2
	g.addSerf(&Serf{Player: 0, Type: SerfBuilder, State: SerfStateIdleInStock, InventoryIndex: stockInv.Index})

	mines := []BuildingType{BuildingStonemine, BuildingCoalmine, BuildingIronmine, BuildingGoldmine}
	for i, t := range mines {
		b := g.addBuilding(g.Pos(19+2*i, 4), t, 0, true)
		b.HasSerf = i != 3
		b.Stock[0] = Stock{Type: ResourceMeat, Available: i + 1, Maximum: 8}
		b.Progress = rng.Intn(1 << 15)
		g.addSerf(&Serf{Player: 0, Type: SerfMiner, State: SerfStateWorking})
	}

	production := []struct {
		t      BuildingType
		col    int
		row    int
		stocks [BuildingMaxStock]Stock
	}{
		{BuildingMill, 4, 14, [BuildingMaxStock]Stock{{Type: ResourceWheat, Available: 3, Requested: 1, Maximum: 8}, {Type: ResourceNone}}},
		{BuildingBaker, 6, 16, [BuildingMaxStock]Stock{{Type: ResourceFlour, Available: 1, Maximum: 8}, {Type: ResourceNone}}},
		{BuildingSawmill, 12, 16, [BuildingMaxStock]Stock{{Type: ResourceNone}, {Type: ResourceLumber, Available: 6, Maximum: 8}}},
		{BuildingSteelsmelter, 16, 14, [BuildingMaxStock]Stock{{Type: ResourceCoal, Available: 2, Maximum: 8}, {Type: ResourceIronore, Available: 5, Requested: 2, Maximum: 8}}},
		{BuildingToolmaker, 10, 20, [BuildingMaxStock]Stock{{Type: ResourcePlank, Available: 4, Maximum: 8}, {Type: ResourceSteel, Available: 1, Maximum: 8}}},
		{BuildingFisher, 9, 22, [BuildingMaxStock]Stock{{Type: ResourceNone}, {Type: ResourceNone}}},
	}
	for _, pb := range production {
		b := g.addBuilding(g.Pos(pb.col, pb.row), pb.t, 0, true)
		b.HasSerf = true
		b.Stock = pb.stocks
	}

	ordered := g.addBuilding(g.Pos(12, 4), BuildingFarm, 0, false)
	ordered.HasSerf = true
	ordered.Progress = 0x200

	hut := g.addBuilding(g.Pos(13, 8), BuildingHut, 0, true)
	hut.HasSerf = true
	hut.Stock[1] = Stock{Type: ResourceGoldbar, Available: 2, Maximum: 2}
	g.stationKnights(hut, SerfKnight1)
	tower := g.addBuilding(g.Pos(20, 12), BuildingTower, 0, true)
	tower.HasSerf = true
	tower.Stock[1] = Stock{Type: ResourceGoldbar, Available: 3, Maximum: 4}
	g.stationKnights(tower, SerfKnight0, SerfKnight3, SerfKnight1)

	enemy := g.addBuilding(g.Pos(26, 20), BuildingHut, 1, true)
	enemy.HasSerf = true
	g.stationKnights(enemy, SerfKnight2)
	enemyCastle := g.addBuilding(g.Pos(28, 26), BuildingCastle, 1, true)
	enemyCastle.HasSerf = true
	g.stationKnights(enemyCastle, SerfKnight3, SerfKnight3)

	p0.BuildingAttacked = enemy.Index
	p0.AttackingBuildingCount = 2
	p0.AttackingKnights = [4]int{1, 2, 0, 1}
	p0.TotalAttackingKnights = 4
	p0.SelectedIndex = castle.Index

	for i := 0; i < cfg.WarmupTicks; i++ {
		g.Tick()
		inv.Resources[rng.Intn(int(ResourceCount))] += rng.Intn(3)
	}
	return g
}

// stationKnights adds defending knights to b, newest first in the list.
func (g *Game) stationKnights(b *Building, types ...SerfType) {
	for _, t := range types {
		s := g.addSerf(&Serf{Player: b.Player, Type: t, State: SerfStateDefending})
		s.NextKnight = b.SerfIndex
		b.SerfIndex = s.Index
	}
}

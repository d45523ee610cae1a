package sim

import "testing"

func TestNewPlayerPrioritiesArePermutations(t *testing.T) {
	p := NewPlayer(0, 64, 1)
	for name, prio := range map[string][ResourceCount]int{"flag": p.FlagPrio, "inventory": p.InventoryPrio} {
		seen := make(map[int]bool)
		for _, rank := range prio {
			if rank < 1 || rank > int(ResourceCount) {
				t.Fatalf("%s priority rank %d out of range", name, rank)
			}
			if seen[rank] {
				t.Fatalf("%s priority rank %d used twice", name, rank)
			}
			seen[rank] = true
		}
	}
}

func TestResetPrioritiesRestoreDefaults(t *testing.T) {
	p := NewPlayer(0, 64, 1)
	p.FoodGoldmine = 0
	p.PlanksBoatbuilder = 0
	p.SteelWeaponsmith = 0
	p.CoalWeaponsmith = 0
	p.WheatMill = 0
	p.ToolPrio[4] = 0

	p.ResetFoodPriority()
	p.ResetPlanksPriority()
	p.ResetSteelPriority()
	p.ResetCoalPriority()
	p.ResetWheatPriority()
	p.ResetToolPriority()

	if p.FoodGoldmine != SliderMax || p.PlanksBoatbuilder != 3275 || p.SteelWeaponsmith != SliderMax {
		t.Fatalf("food/planks/steel not reset: %d %d %d", p.FoodGoldmine, p.PlanksBoatbuilder, p.SteelWeaponsmith)
	}
	if p.CoalWeaponsmith != 52400 || p.WheatMill != 32750 || p.ToolPrio[4] != 19650 {
		t.Fatalf("coal/wheat/tool not reset: %d %d %d", p.CoalWeaponsmith, p.WheatMill, p.ToolPrio[4])
	}
}

func TestChangeKnightOccupationKeepsMinBelowMax(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		adjustMax bool
		delta     int
		wantMin   int
		wantMax   int
	}{
		{"raise min", 0x20, false, 1, 1, 2},
		{"min capped by max", 0x22, false, 1, 2, 2},
		{"min floor", 0x20, false, -1, 0, 2},
		{"lower max", 0x42, true, -1, 2, 3},
		{"max floored by min", 0x22, true, -1, 2, 2},
		{"max ceiling", 0x40, true, 1, 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(0, 0, 0)
			p.KnightOccupation[1] = tt.start
			p.ChangeKnightOccupation(1, tt.adjustMax, tt.delta)
			min, max := p.KnightLevels(1)
			if min != tt.wantMin || max != tt.wantMax {
				t.Fatalf("got min=%d max=%d, want min=%d max=%d", min, max, tt.wantMin, tt.wantMax)
			}
		})
	}
}

package popup

import (
	"reflect"
	"testing"

	"serfpopup/internal/sim"
)

func TestGaugeSprites(t *testing.T) {
	tests := []struct {
		value, count  int
		balance, full int
	}{
		{0, 0, 0xd3, 0xc7},
		{16, 1, 0xd2, 0xc6},
		{0, 1, 0xc8, 0xbc},
		{8, 1, 0xcd, 0xc1},
		{14, 1, 0xd1, 0xc5},
	}
	for _, tt := range tests {
		if got := GaugeBalanceSprite(tt.value, tt.count); got != tt.balance {
			t.Errorf("GaugeBalanceSprite(%d, %d) = %#x, want %#x", tt.value, tt.count, got, tt.balance)
		}
		if got := GaugeFullSprite(tt.value, tt.count); got != tt.full {
			t.Errorf("GaugeFullSprite(%d, %d) = %#x, want %#x", tt.value, tt.count, got, tt.full)
		}
	}
}

func TestCalculateGaugeValues(t *testing.T) {
	g := sim.NewDemoGame(sim.DemoConfig{Seed: 1})
	pl := g.Player(0)

	values := calculateGaugeValues(g, pl)
	if v, c := values.value(sim.BuildingMill, 0); v != 7 || c != 1 {
		t.Fatalf("mill wheat = %d/%d, want 7/1", v, c)
	}
	if v, c := values.value(sim.BuildingSteelsmelter, 1); v != 12 || c != 1 {
		t.Fatalf("smelter ore = %d/%d, want 12/1", v, c)
	}
	if _, c := values.value(sim.BuildingFisher, 0); c != 0 {
		t.Fatalf("fisher without stock counted %d times", c)
	}

	findBuilding(g, sim.BuildingMill, 0).Burning = true
	values = calculateGaugeValues(g, pl)
	if _, c := values.value(sim.BuildingMill, 0); c != 0 {
		t.Fatal("burning mill counted")
	}
}

func TestMeterSprite(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 0xbc}, {1, 0xbe}, {2, 0xc0}, {3, 0xc1}, {4, 0xc2},
		{6, 0xc3}, {9, 0xc4}, {19, 0xc5}, {20, 0xc6}, {500, 0xc6},
	}
	for _, tt := range tests {
		if got := MeterSprite(tt.n); got != tt.want {
			t.Errorf("MeterSprite(%d) = %#x, want %#x", tt.n, got, tt.want)
		}
	}
}

func TestResourceAmountText(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "Not Present"},
		{1, "Minimum"},
		{99, "Minimum"},
		{100, "Very Few"},
		{239, "Few"},
		{299, "Below Average"},
		{300, "Average"},
		{450, "Above Average"},
		{599, "Much"},
		{799, "Very Much"},
		{800, "Perfect"},
	}
	for _, tt := range tests {
		if got := ResourceAmountText(tt.amount); got != tt.want {
			t.Errorf("ResourceAmountText(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestResourceHistoryConstant(t *testing.T) {
	hist := make([]int, sim.ResourceHistoryLen)
	for i := range hist {
		hist[i] = 1
	}
	out, max := ResourceHistory(hist, 17)
	if max != 64 {
		t.Fatalf("max = %d, want 64", max)
	}
	for i, v := range out {
		if v != 64 {
			t.Fatalf("sample %d = %d, want 64", i, v)
		}
	}
}

func TestResourceHistorySpike(t *testing.T) {
	hist := make([]int, sim.ResourceHistoryLen)
	// Newest sample at index 2, the spike eight samples older across
	// the wrap.
	hist[sim.ResourceHistoryLen-6] = 1
	out, max := ResourceHistory(hist, 2)
	want := []int{4, 6, 8, 9, 10, 9, 8, 6, 4, 0}
	if !reflect.DeepEqual(out[:len(want)], want) {
		t.Fatalf("samples = %v, want %v", out[:len(want)], want)
	}
	if max != 10 {
		t.Fatalf("max = %d, want 10", max)
	}
	if _, max := ResourceHistory(nil, 0); max != 0 {
		t.Fatal("empty history has a maximum")
	}
}

func TestChartBands(t *testing.T) {
	tests := []struct{ max, limit int }{
		{0, 64}, {64, 64}, {65, 128}, {512, 512}, {1000, 1280},
		{5120, 5120}, {5121, -1},
	}
	for _, tt := range tests {
		if got := ChartBandFor(tt.max).Limit; got != tt.limit {
			t.Errorf("ChartBandFor(%d).Limit = %d, want %d", tt.max, got, tt.limit)
		}
	}

	b := ChartBandFor(64)
	if h := b.BarHeight(64); h != 32 {
		t.Fatalf("BarHeight(64) = %d, want 32", h)
	}
	if h := b.BarHeight(1000); h != 64 {
		t.Fatalf("BarHeight(1000) = %d, want the 64 pixel cap", h)
	}
}

func TestMineOutput(t *testing.T) {
	tests := []struct{ progress, want int }{
		{0, 0},
		{1, 10},
		{3, 20},
		{1 << 14, 2},
		{0x7fff, 99},
		// Bits past the window are ignored.
		{1 << 15, 0},
	}
	for _, tt := range tests {
		if got := MineOutput(tt.progress); got != tt.want {
			t.Errorf("MineOutput(%#x) = %d, want %d", tt.progress, got, tt.want)
		}
	}
}

func TestGreenNumberSprites(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{0, []int{0x4e}},
		{7, []int{0x55}},
		{42, []int{0x52, 0x50}},
		{105, []int{0x4f, 0x4e, 0x53}},
		{999, []int{0x57, 0x57, 0x57}},
		{1000, []int{0xd5, 0xd6, 0xd7}},
		{-3, []int{0x4e}},
	}
	for _, tt := range tests {
		if got := GreenNumberSprites(tt.n); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("GreenNumberSprites(%d) = %#x, want %#x", tt.n, got, tt.want)
		}
	}
}

func TestAdditionalNumberAndFace(t *testing.T) {
	if s := AdditionalNumberSprite(0); s != -1 {
		t.Errorf("AdditionalNumberSprite(0) = %d", s)
	}
	if s := AdditionalNumberSprite(3); s != 243 {
		t.Errorf("AdditionalNumberSprite(3) = %d", s)
	}
	if s := AdditionalNumberSprite(25); s != 250 {
		t.Errorf("AdditionalNumberSprite(25) = %d", s)
	}
	if s := FaceSprite(0); s != iconFaceNone {
		t.Errorf("FaceSprite(0) = %#x", s)
	}
	if s := FaceSprite(3); s != iconFaceBase+3 {
		t.Errorf("FaceSprite(3) = %#x", s)
	}
}

// sparseDemo empties the demo inventories except for a few items.
func sparseDemo() (*sim.Game, *sim.Player) {
	g := sim.NewDemoGame(sim.DemoConfig{Seed: 1})
	pl := g.Player(0)
	castle := g.Inventory(findBuilding(g, sim.BuildingCastle, 0).InventoryIndex)
	stock := g.Inventory(findBuilding(g, sim.BuildingStock, 0).InventoryIndex)

	castle.Resources = [sim.ResourceCount]int{}
	castle.GenericCount = 5
	castle.Resources[sim.ResourceSaw] = 2
	castle.Resources[sim.ResourceSword] = 3
	castle.Resources[sim.ResourceShield] = 1
	stock.GenericCount = 0
	return g, pl
}

func TestPotentialSerfs(t *testing.T) {
	g, pl := sparseDemo()
	serfs := PotentialSerfs(g, pl)

	want := map[sim.SerfType]int{
		sim.SerfTransporter: 8,
		sim.SerfSawmiller:   2,
		sim.SerfKnight0:     1,
		sim.SerfGeologist:   1,
		sim.SerfBuilder:     1,
		sim.SerfForester:    5,
		sim.SerfToolmaker:   0,
		sim.SerfLumberjack:  0,
	}
	for st, n := range want {
		if serfs[st] != n {
			t.Errorf("serf type %d: %d, want %d", st, serfs[st], n)
		}
	}
}

func TestConvertibleKnights(t *testing.T) {
	g, pl := sparseDemo()
	if n := ConvertibleKnights(g, pl); n != 1 {
		t.Fatalf("ConvertibleKnights = %d, want 1", n)
	}
	if n := ConvertibleKnights(g, g.Player(1)); n != 0 {
		t.Fatalf("enemy has %d convertible knights", n)
	}
}

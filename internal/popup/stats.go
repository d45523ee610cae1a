package popup

import (
	"serfpopup/internal/mathutil"
	"serfpopup/internal/sim"
)

// gaugeThresholds are the binned 16*value/count levels, highest first.
var gaugeThresholds = [...]int{230, 207, 184, 161, 138, 115, 92, 69, 46, 23}

// Gauge sprite families: the sprite for the highest bin, the sprite for
// the lowest bin sits len(gaugeThresholds) below it.
const (
	gaugeBalanceTop    = 0xd2
	gaugeBalanceNoData = 0xd3
	gaugeFullTop       = 0xc6
	gaugeFullNoData    = 0xc7
)

func gaugeSprite(top, noData, value, count int) int {
	if count <= 0 {
		return noData
	}
	v := 16 * value / count
	for i, t := range gaugeThresholds {
		if v >= t {
			return top - i
		}
	}
	return top - len(gaugeThresholds)
}

// GaugeBalanceSprite returns the balance gauge icon for an accumulated
// stock fill value over count buildings.
func GaugeBalanceSprite(value, count int) int {
	return gaugeSprite(gaugeBalanceTop, gaugeBalanceNoData, value, count)
}

// GaugeFullSprite is GaugeBalanceSprite for the "full" gauge family.
func GaugeFullSprite(value, count int) int {
	return gaugeSprite(gaugeFullTop, gaugeFullNoData, value, count)
}

// gaugeValues holds per building type and stock slot the summed fill
// level and the number of contributing buildings. Type 0 collects
// buildings under construction.
type gaugeValues [sim.BuildingTypeCount][sim.BuildingMaxStock][2]int

func (v *gaugeValues) value(t sim.BuildingType, stock int) (int, int) {
	return v[t][stock][0], v[t][stock][1]
}

func calculateGaugeValues(g Game, player *sim.Player) *gaugeValues {
	var values gaugeValues
	for _, b := range g.Buildings() {
		if b.Burning || b.Player != player.Num || !b.HasSerf {
			continue
		}
		t := b.Type
		if !b.Done {
			t = sim.BuildingNone
		}
		for i, s := range b.Stock {
			if s.Maximum > 0 {
				v := 2*s.Available + s.Requested
				values[t][i][0] += 16 * v / (2 * s.Maximum)
				values[t][i][1]++
			}
		}
	}
	return &values
}

// MeterSprite returns the ladder icon for a potential serf count.
func MeterSprite(n int) int {
	switch {
	case n < 1:
		return 0xbc
	case n < 2:
		return 0xbe
	case n < 3:
		return 0xc0
	case n < 4:
		return 0xc1
	case n < 5:
		return 0xc2
	case n < 7:
		return 0xc3
	case n < 10:
		return 0xc4
	case n < 20:
		return 0xc5
	}
	return 0xc6
}

// ResourceAmountText describes a ground analysis estimate.
func ResourceAmountText(amount int) string {
	switch {
	case amount == 0:
		return "Not Present"
	case amount < 100:
		return "Minimum"
	case amount < 180:
		return "Very Few"
	case amount < 240:
		return "Few"
	case amount < 300:
		return "Below Average"
	case amount < 400:
		return "Average"
	case amount < 500:
		return "Above Average"
	case amount < 600:
		return "Much"
	case amount < 800:
		return "Very Much"
	}
	return "Perfect"
}

// ChartSamples is the number of columns of the history charts.
const ChartSamples = 112

var historyWeights = [...]int{4, 6, 8, 9, 10, 9, 8, 6, 4}

// ResourceHistory smooths the ring buffer hist, newest sample at index,
// into ChartSamples values, newest first. It also returns the maximum.
func ResourceHistory(hist []int, index int) ([ChartSamples]int, int) {
	var out [ChartSamples]int
	n := len(hist)
	if n == 0 {
		return out, 0
	}
	prev := func(i int) int {
		if i > 0 {
			return i - 1
		}
		return n - 1
	}
	max := 0
	for i := range out {
		j := index
		for _, w := range historyWeights {
			out[i] += w * hist[j]
			j = prev(j)
		}
		if out[i] > max {
			max = out[i]
		}
		index = prev(index)
	}
	return out, max
}

// ChartBand is the vertical scale of the resource history chart.
type ChartBand struct {
	Limit      int
	AxisIcons  [4]int
	Multiplier int
}

var chartBands = [...]ChartBand{
	{64, [4]int{110, 109, 108, 107}, 0x8000},
	{128, [4]int{112, 111, 110, 108}, 0x4000},
	{256, [4]int{114, 113, 112, 110}, 0x2000},
	{512, [4]int{117, 116, 114, 112}, 0x1000},
	{1280, [4]int{120, 119, 118, 115}, 0x666},
	{2560, [4]int{122, 121, 120, 118}, 0x333},
	{5120, [4]int{125, 124, 122, 120}, 0x199},
	{-1, [4]int{128, 127, 126, 123}, 0xa3},
}

// ChartBandFor picks the band for the chart maximum max.
func ChartBandFor(max int) ChartBand {
	for _, b := range chartBands[:len(chartBands)-1] {
		if max <= b.Limit {
			return b
		}
	}
	return chartBands[len(chartBands)-1]
}

// BarHeight scales a smoothed sample into chart pixels.
func (b ChartBand) BarHeight(sample int) int {
	return mathutil.IntMin((sample*b.Multiplier)>>16, 64)
}

var mineOutputWeights = [...]int{10, 10, 9, 9, 8, 8, 7, 7, 6, 6, 5, 5, 4, 3, 2}

// MineOutput is the output percentage of a mine from its progress shift
// register.
func MineOutput(progress int) int {
	out := 0
	for i, w := range mineOutputWeights {
		if progress&(1<<uint(i)) != 0 {
			out += w
		}
	}
	return out
}

// Slider geometry: the bar starts 7 pixels into its region and spans 50
// steps of 1310.
const (
	sliderOffset = 7
	sliderSteps  = 50
	sliderStep   = 1310
)

// SliderValue maps a click at x inside a slider region to a priority
// value in [0, sim.SliderMax].
func SliderValue(x int) int {
	return sliderStep * mathutil.IntClamp(x-sliderOffset, 0, sliderSteps)
}

// GreenNumberSprites returns the digit icons used to draw n. Values above
// 999 use the three icon ">999" glyph.
func GreenNumberSprites(n int) []int {
	if n >= 1000 {
		return []int{0xd5, 0xd6, 0xd7}
	}
	n = mathutil.IntMax(n, 0)
	var out []int
	if n >= 100 {
		out = append(out, 0x4e+n/100)
	}
	if n >= 10 {
		out = append(out, 0x4e+n/10%10)
	}
	return append(out, 0x4e+n%10)
}

// AdditionalNumberSprite returns the small count icon for n, or -1 when
// nothing is drawn.
func AdditionalNumberSprite(n int) int {
	if n <= 0 {
		return -1
	}
	return 240 + mathutil.IntMin(n, 10)
}

// FaceSprite returns the portrait icon of a player face.
func FaceSprite(face int) int {
	if face == 0 {
		return iconFaceNone
	}
	return iconFaceBase + face
}

// PotentialSerfs counts the idle serfs of player plus the serfs its
// inventories could still create from generic serfs and tools.
func PotentialSerfs(g Game, player *sim.Player) [sim.SerfTypeCount]int {
	var serfs [sim.SerfTypeCount]int
	for _, s := range g.Serfs() {
		if s.Player == player.Num && s.State == sim.SerfStateIdleInStock {
			serfs[s.Type]++
		}
	}

	for _, inv := range g.Inventories() {
		if inv.Player != player.Num || inv.GenericCount <= 0 {
			continue
		}
		gen := inv.GenericCount
		res := func(r sim.Resource) int { return mathutil.IntMin(gen, inv.Resources[r]) }
		res2 := func(a, b sim.Resource) int {
			return mathutil.IntMin(gen, mathutil.IntMin(inv.Resources[a], inv.Resources[b]))
		}

		for _, t := range []sim.SerfType{
			sim.SerfTransporter, sim.SerfForester, sim.SerfSmelter,
			sim.SerfPigfarmer, sim.SerfMiller, sim.SerfBaker,
		} {
			serfs[t] += gen
		}
		serfs[sim.SerfSawmiller] += res(sim.ResourceSaw)
		serfs[sim.SerfSailor] += res(sim.ResourceBoat)
		serfs[sim.SerfDigger] += res(sim.ResourceShovel)
		serfs[sim.SerfBuilder] += res(sim.ResourceHammer)
		serfs[sim.SerfLumberjack] += res(sim.ResourceAxe)
		serfs[sim.SerfStonecutter] += res(sim.ResourcePick)
		serfs[sim.SerfMiner] += res(sim.ResourcePick)
		serfs[sim.SerfFisher] += res(sim.ResourceRod)
		serfs[sim.SerfButcher] += res(sim.ResourceCleaver)
		serfs[sim.SerfFarmer] += res(sim.ResourceScythe)
		serfs[sim.SerfBoatbuilder] += res(sim.ResourceHammer)
		serfs[sim.SerfToolmaker] += res2(sim.ResourceHammer, sim.ResourceSaw)
		serfs[sim.SerfWeaponsmith] += res2(sim.ResourceHammer, sim.ResourcePincer)
		serfs[sim.SerfGeologist] += res(sim.ResourceHammer)
		serfs[sim.SerfKnight0] += res2(sim.ResourceSword, sim.ResourceShield)
	}
	return serfs
}

// ConvertibleKnights is the number of generic serfs of player that have a
// sword and shield available in their inventory.
func ConvertibleKnights(g Game, player *sim.Player) int {
	n := 0
	for _, inv := range g.Inventories() {
		if inv.Player != player.Num {
			continue
		}
		c := mathutil.IntMin(inv.Resources[sim.ResourceSword], inv.Resources[sim.ResourceShield])
		n += mathutil.IntMax(0, mathutil.IntMin(c, inv.GenericCount))
	}
	return n
}

// playerResources sums the resources of every inventory of player.
func playerResources(g Game, player *sim.Player) [sim.ResourceCount]int {
	var res [sim.ResourceCount]int
	for _, inv := range g.Inventories() {
		if inv.Player != player.Num {
			continue
		}
		for i, n := range inv.Resources {
			res[i] += n
		}
	}
	return res
}

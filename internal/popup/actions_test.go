package popup

import (
	"math/rand"
	"sort"
	"testing"

	"serfpopup/internal/minimap"
	"serfpopup/internal/sim"
	"serfpopup/internal/sound"
)

func TestSliderValue(t *testing.T) {
	prev := -1
	for x := -10; x < 80; x++ {
		v := SliderValue(x)
		if v < prev {
			t.Fatalf("SliderValue(%d) = %d decreased from %d", x, v, prev)
		}
		if v < 0 || v > sim.SliderMax {
			t.Fatalf("SliderValue(%d) = %d out of range", x, v)
		}
		prev = v
	}
	if SliderValue(7) != 0 || SliderValue(57) != sim.SliderMax {
		t.Fatalf("slider ends: %d, %d", SliderValue(7), SliderValue(57))
	}
}

func TestSliderActions(t *testing.T) {
	tests := []struct {
		action Action
		box    Box
		field  func(*sim.Player) int
	}{
		{ActionSett1AdjustGoldmine, BoxSett1, func(p *sim.Player) int { return p.FoodGoldmine }},
		{ActionSett2AdjustBoatbuilder, BoxSett2, func(p *sim.Player) int { return p.PlanksBoatbuilder }},
		{ActionSett2AdjustToolmakerSteel, BoxSett2, func(p *sim.Player) int { return p.SteelToolmaker }},
		{ActionSett3AdjustMill, BoxSett3, func(p *sim.Player) int { return p.WheatMill }},
		{ActionSett4AdjustShovel, BoxSett4, func(p *sim.Player) int { return p.ToolPrio[0] }},
		{ActionSett4AdjustAxe, BoxSett4, func(p *sim.Player) int { return p.ToolPrio[5] }},
		{ActionSett4AdjustRod, BoxSett4, func(p *sim.Player) int { return p.ToolPrio[2] }},
		{ActionSett8AdjustRate, BoxSett8, func(p *sim.Player) int { return p.SerfToKnightRate }},
	}
	for _, tt := range tests {
		p := newTestPopup(t)
		p.Show(BoxSettSelect)
		p.HandleAction(tt.action, 27, 3)
		if got := tt.field(p.owner.player); got != SliderValue(27) {
			t.Errorf("%s: value %d, want %d", tt.action, got, SliderValue(27))
		}
		if p.Box() != tt.box {
			t.Errorf("%s: box %s, want %s", tt.action, p.Box(), tt.box)
		}
	}
}

func TestPagingWraps(t *testing.T) {
	tests := []struct {
		action Action
		pages  []Box
	}{
		{ActionBldFlipPage, []Box{BoxBasicBldFlip, BoxAdv1Bld, BoxAdv2Bld, BoxBasicBldFlip}},
		{ActionStatBldFlip, []Box{BoxStatBld1, BoxStatBld2, BoxStatBld3, BoxStatBld4, BoxStatBld1}},
		{ActionMinimapBldNext, []Box{BoxBld1, BoxBld2, BoxBld3, BoxBld4, BoxBld1}},
	}
	for _, tt := range tests {
		p := newTestPopup(t)
		p.Show(tt.pages[0])
		for _, want := range tt.pages[1:] {
			p.HandleAction(tt.action, 0, 0)
			if p.Box() != want {
				t.Fatalf("%s: box %s, want %s", tt.action, p.Box(), want)
			}
		}
	}
}

func TestShowActions(t *testing.T) {
	tests := []struct {
		action Action
		want   Box
	}{
		{ActionShowStat1, BoxStat1},
		{ActionShowStatBld, BoxStatBld1},
		{ActionShowSett7, BoxKnightLevel},
		{ActionShowResdir, BoxResDir},
		{ActionShowPlayerFaces, BoxPlayerFaces},
		{ActionMinimapBldExit, BoxMap},
	}
	for _, tt := range tests {
		p := newTestPopup(t)
		p.Show(BoxStatSelect)
		p.HandleAction(tt.action, 0, 0)
		if p.Box() != tt.want {
			t.Errorf("%s: box %s, want %s", tt.action, p.Box(), tt.want)
		}
	}
}

func TestCloseActions(t *testing.T) {
	for _, a := range []Action{
		ActionCloseBox, ActionCloseSettBox, ActionCloseGroundAnalysis,
		ActionCloseAttackBox, ActionCloseOptions, ActionCloseMessage,
		ActionQuitCancel,
	} {
		p := newTestPopup(t)
		p.Show(BoxStat1)
		p.HandleAction(a, 0, 0)
		if p.owner.closed != 1 || p.Displayed() {
			t.Errorf("%s: closed=%d displayed=%v", a, p.owner.closed, p.Displayed())
		}
	}
}

func TestOpenAndQuit(t *testing.T) {
	p := newTestPopup(t)
	p.Show(BoxSettSelect)

	p.HandleAction(ActionShowQuit, 0, 0)
	if p.Box() != BoxQuitConfirm || len(p.owner.opened) != 1 {
		t.Fatalf("show quit: box %s opened %v", p.Box(), p.owner.opened)
	}
	p.HandleAction(ActionQuitConfirm, 0, 0)
	if p.owner.quit != 1 || p.audio.last() != sound.SfxAhhh {
		t.Fatalf("quit confirm: quit=%d last cue %s", p.owner.quit, p.audio.last())
	}

	p.HandleAction(ActionShowOptions, 0, 0)
	if p.Box() != BoxOptions {
		t.Fatalf("show options: box %s", p.Box())
	}
}

func TestAttackingKnightsClamp(t *testing.T) {
	p := newTestPopup(t)
	pl := p.owner.player
	pl.TotalAttackingKnights = 4
	pl.KnightsAttacking = 0

	for i := 0; i < 10; i++ {
		p.HandleAction(ActionAttackingKnightsInc, 0, 0)
	}
	if pl.KnightsAttacking != 4 {
		t.Fatalf("inc saturates at %d, want 4", pl.KnightsAttacking)
	}
	for i := 0; i < 10; i++ {
		p.HandleAction(ActionAttackingKnightsDec, 0, 0)
	}
	if pl.KnightsAttacking != 0 {
		t.Fatalf("dec saturates at %d, want 0", pl.KnightsAttacking)
	}

	pl.TotalAttackingKnights = 250
	pl.KnightsAttacking = 99
	p.HandleAction(ActionAttackingKnightsInc, 0, 0)
	p.HandleAction(ActionAttackingKnightsInc, 0, 0)
	if pl.KnightsAttacking != 100 {
		t.Fatalf("inc above 100: %d", pl.KnightsAttacking)
	}
}

func TestAttackingSelectAll(t *testing.T) {
	p := newTestPopup(t)
	pl := p.owner.player
	pl.AttackingKnights = [4]int{1, 2, 3, 4}
	tests := []struct {
		action Action
		want   int
	}{
		{ActionAttackingSelectAll1, 1},
		{ActionAttackingSelectAll2, 3},
		{ActionAttackingSelectAll3, 6},
		{ActionAttackingSelectAll4, 10},
	}
	for _, tt := range tests {
		p.HandleAction(tt.action, 0, 0)
		if pl.KnightsAttacking != tt.want {
			t.Errorf("%s: %d, want %d", tt.action, pl.KnightsAttacking, tt.want)
		}
	}
}

func TestStartAttack(t *testing.T) {
	p := newTestPopup(t)
	pl := p.owner.player
	p.Show(BoxStartAttack)

	pl.KnightsAttacking = 0
	p.HandleAction(ActionStartAttack, 0, 0)
	if p.audio.last() != sound.SfxNotAccepted || p.owner.closed != 0 {
		t.Fatalf("no knights: cue %s closed %d", p.audio.last(), p.owner.closed)
	}

	pl.KnightsAttacking = 2
	p.HandleAction(ActionStartAttack, 0, 0)
	if p.audio.last() != sound.SfxAccepted || p.owner.closed != 1 {
		t.Fatalf("attack: cue %s closed %d", p.audio.last(), p.owner.closed)
	}
	if pl.KnightsAttacking != 0 {
		t.Fatalf("knights still waiting: %d", pl.KnightsAttacking)
	}
	target := p.game.Building(pl.BuildingAttacked)
	if target.State != 1 {
		t.Fatal("target not under attack")
	}
}

func TestStartAttackOnBurningTarget(t *testing.T) {
	p := newTestPopup(t)
	pl := p.owner.player
	p.Show(BoxStartAttack)
	target := p.game.Building(pl.BuildingAttacked)
	target.Burning = true

	pl.KnightsAttacking = 2
	p.HandleAction(ActionStartAttack, 0, 0)
	if p.audio.last() != sound.SfxNotAccepted || p.owner.closed != 1 {
		t.Fatalf("burning target: cue %s closed %d", p.audio.last(), p.owner.closed)
	}
	if target.State != 0 || pl.KnightsAttacking != 2 {
		t.Fatalf("knights sent to burning target: state %d waiting %d", target.State, pl.KnightsAttacking)
	}
}

func TestCastleDefendersClamp(t *testing.T) {
	p := newTestPopup(t)
	pl := p.owner.player

	pl.CastleKnightsWanted = 2
	for i := 0; i < 5; i++ {
		p.HandleAction(ActionSett8CastleDefDec, 0, 0)
	}
	if pl.CastleKnightsWanted != 1 {
		t.Fatalf("dec saturates at %d, want 1", pl.CastleKnightsWanted)
	}
	pl.CastleKnightsWanted = 98
	for i := 0; i < 5; i++ {
		p.HandleAction(ActionSett8CastleDefInc, 0, 0)
	}
	if pl.CastleKnightsWanted != 99 {
		t.Fatalf("inc saturates at %d, want 99", pl.CastleKnightsWanted)
	}
}

func TestKnightLevelKeepsMinBelowMax(t *testing.T) {
	p := newTestPopup(t)
	pl := p.owner.player
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		a := ActionKnightLevelClosestMinDec + Action(rng.Intn(16))
		p.HandleAction(a, 0, 0)
		if p.Box() != BoxKnightLevel {
			t.Fatalf("%s: box %s", a, p.Box())
		}
		for band := range pl.KnightOccupation {
			min, max := pl.KnightLevels(band)
			if min < 0 || max > 4 || min > max {
				t.Fatalf("after %s band %d: min %d max %d", a, band, min, max)
			}
		}
	}
}

func TestKnightLevelBands(t *testing.T) {
	p := newTestPopup(t)
	pl := p.owner.player
	pl.KnightOccupation = [4]int{0x40, 0x40, 0x40, 0x40}

	p.HandleAction(ActionKnightLevelClosestMinInc, 0, 0)
	p.HandleAction(ActionKnightLevelFarthestMaxDec, 0, 0)

	if min, _ := pl.KnightLevels(3); min != 1 {
		t.Fatalf("closest band min = %d, want 1", min)
	}
	if _, max := pl.KnightLevels(0); max != 3 {
		t.Fatalf("farthest band max = %d, want 3", max)
	}
	if pl.KnightOccupation[1] != 0x40 || pl.KnightOccupation[2] != 0x40 {
		t.Fatalf("middle bands changed: %#x %#x", pl.KnightOccupation[1], pl.KnightOccupation[2])
	}
}

func TestStat8Mode(t *testing.T) {
	p := newTestPopup(t)
	p.HandleAction(ActionSett8SetAspectMilitary, 0, 0)
	p.HandleAction(ActionSett8SetScale600Min, 0, 0)
	if p.owner.stat8 != 3<<2|2 {
		t.Fatalf("mode = %#x, want %#x", p.owner.stat8, 3<<2|2)
	}
	p.HandleAction(ActionSett8SetAspectLand, 0, 0)
	if p.owner.stat8 != 1<<2|2 {
		t.Fatalf("aspect change lost scale: %#x", p.owner.stat8)
	}
	p.HandleAction(ActionSett8SetScale30Min, 0, 0)
	if p.owner.stat8 != 1<<2 {
		t.Fatalf("scale change lost aspect: %#x", p.owner.stat8)
	}
}

func TestStat7Select(t *testing.T) {
	p := newTestPopup(t)
	p.HandleAction(ActionStat7SelectShield, 0, 0)
	if p.owner.stat7 != int(sim.ResourceShield)+1 {
		t.Fatalf("stat7 item = %d, want %d", p.owner.stat7, int(sim.ResourceShield)+1)
	}
	p.HandleAction(ActionStat7SelectFish, 0, 0)
	if p.owner.stat7 != 1 {
		t.Fatalf("stat7 item = %d, want 1", p.owner.stat7)
	}
}

func isPermutation(prio [sim.ResourceCount]int) bool {
	s := append([]int(nil), prio[:]...)
	sort.Ints(s)
	for i, v := range s {
		if v != i+1 {
			return false
		}
	}
	return true
}

func TestMovePriority(t *testing.T) {
	var prio [sim.ResourceCount]int
	for i := range prio {
		prio[i] = i + 1
	}

	MovePriority(&prio, 4, true, false)
	if prio[4] != 6 || prio[5] != 5 {
		t.Fatalf("up: %v", prio[:8])
	}
	MovePriority(&prio, 4, false, true)
	if prio[4] != 1 || prio[0] != 2 {
		t.Fatalf("bottom: %v", prio[:8])
	}
	MovePriority(&prio, 4, true, true)
	if prio[4] != int(sim.ResourceCount) || prio[25] != 25 {
		t.Fatalf("top: %v", prio)
	}
	before := prio
	MovePriority(&prio, 4, true, false)
	if prio != before {
		t.Fatal("moving the top item up changed the order")
	}
	MovePriority(&prio, -1, true, false)
	if prio != before {
		t.Fatal("moving with no selection changed the order")
	}
	if !isPermutation(prio) {
		t.Fatalf("not a permutation: %v", prio)
	}
}

func TestSett56MovesKeepPermutation(t *testing.T) {
	p := newTestPopup(t)
	pl := p.owner.player
	rng := rand.New(rand.NewSource(3))
	moves := []Action{ActionSett56Top, ActionSett56Up, ActionSett56Down, ActionSett56Bottom}

	for _, box := range []Box{BoxSett5, BoxSett6} {
		p.Show(box)
		for i := 0; i < 300; i++ {
			p.HandleAction(ActionSett56Item1+Action(rng.Intn(26)), 0, 0)
			p.HandleAction(moves[rng.Intn(len(moves))], 0, 0)
		}
	}
	if !isPermutation(pl.FlagPrio) {
		t.Fatalf("flag priorities: %v", pl.FlagPrio)
	}
	if !isPermutation(pl.InventoryPrio) {
		t.Fatalf("inventory priorities: %v", pl.InventoryPrio)
	}
}

func TestSett56ActivateAndMove(t *testing.T) {
	p := newTestPopup(t)
	pl := p.owner.player
	p.Show(BoxSett5)

	// The first stair holds the highest rank.
	p.HandleAction(ActionSett56Item1, 0, 0)
	if pl.FlagPrio[pl.CurrentSett5Item-1] != int(sim.ResourceCount) {
		t.Fatalf("item 1 selected rank %d", pl.FlagPrio[pl.CurrentSett5Item-1])
	}

	p.HandleAction(ActionSett56Item26, 0, 0)
	cur := pl.CurrentSett5Item - 1
	if pl.FlagPrio[cur] != 1 {
		t.Fatalf("item 26 selected rank %d", pl.FlagPrio[cur])
	}
	inv := pl.InventoryPrio
	p.HandleAction(ActionSett56Top, 0, 0)
	if pl.FlagPrio[cur] != int(sim.ResourceCount) {
		t.Fatalf("top: rank %d", pl.FlagPrio[cur])
	}
	if pl.InventoryPrio != inv {
		t.Fatal("sett 5 move changed inventory priorities")
	}
}

func TestDefaultSett56DependsOnBox(t *testing.T) {
	p := newTestPopup(t)
	pl := p.owner.player
	pl.FlagPrio[0], pl.FlagPrio[1] = pl.FlagPrio[1], pl.FlagPrio[0]
	pl.InventoryPrio[0], pl.InventoryPrio[1] = pl.InventoryPrio[1], pl.InventoryPrio[0]

	fresh := sim.NewPlayer(0, 0, 0)

	p.Show(BoxSett5)
	p.HandleAction(ActionDefaultSett56, 0, 0)
	if pl.FlagPrio != fresh.FlagPrio {
		t.Fatal("flag priorities not reset")
	}
	if pl.InventoryPrio == fresh.InventoryPrio {
		t.Fatal("inventory priorities reset from sett 5")
	}

	p.Show(BoxSett6)
	p.HandleAction(ActionDefaultSett56, 0, 0)
	if pl.InventoryPrio != fresh.InventoryPrio {
		t.Fatal("inventory priorities not reset")
	}
}

func TestDefaultSettings(t *testing.T) {
	p := newTestPopup(t)
	pl := p.owner.player
	fresh := sim.NewPlayer(0, 0, 0)

	pl.FoodGoldmine = 0
	pl.PlanksConstruction, pl.SteelWeaponsmith = 0, 0
	pl.CoalGoldsmelter, pl.WheatMill = 0, 0
	pl.ToolPrio = [9]int{}

	p.HandleAction(ActionDefaultSett1, 0, 0)
	if pl.FoodGoldmine != fresh.FoodGoldmine || p.Box() != BoxSett1 {
		t.Fatal("food priorities not reset")
	}
	p.HandleAction(ActionDefaultSett2, 0, 0)
	if pl.PlanksConstruction != fresh.PlanksConstruction || pl.SteelWeaponsmith != fresh.SteelWeaponsmith {
		t.Fatal("plank and steel priorities not reset")
	}
	p.HandleAction(ActionDefaultSett3, 0, 0)
	if pl.CoalGoldsmelter != fresh.CoalGoldsmelter || pl.WheatMill != fresh.WheatMill {
		t.Fatal("coal and wheat priorities not reset")
	}
	p.HandleAction(ActionDefaultSett4, 0, 0)
	if pl.ToolPrio != fresh.ToolPrio || p.Box() != BoxSett4 {
		t.Fatal("tool priorities not reset")
	}
}

func TestSendGeologist(t *testing.T) {
	p := newTestPopup(t)
	p.Show(BoxTransportInfo)

	p.owner.cursor = p.game.Pos(0, 0)
	p.HandleAction(ActionSendGeologist, 0, 0)
	if p.audio.last() != sound.SfxNotAccepted || p.owner.closed != 0 {
		t.Fatalf("no flag: cue %s closed %d", p.audio.last(), p.owner.closed)
	}

	p.owner.cursor = p.game.Pos(9, 9)
	p.HandleAction(ActionSendGeologist, 0, 0)
	if p.audio.last() != sound.SfxAccepted || p.owner.closed != 1 {
		t.Fatalf("castle flag: cue %s closed %d", p.audio.last(), p.owner.closed)
	}
}

func TestTrainKnights(t *testing.T) {
	p := newTestPopup(t)
	p.HandleAction(ActionSett8Train1, 0, 0)
	if p.audio.last() != sound.SfxAccepted {
		t.Fatalf("train 1: cue %s", p.audio.last())
	}
	p.HandleAction(ActionSett8Train100, 0, 0)
	if ConvertibleKnights(p.game, p.owner.player) != 0 {
		t.Fatal("train 100 left convertible serfs")
	}
	p.HandleAction(ActionSett8Train5, 0, 0)
	if p.audio.last() != sound.SfxNotAccepted {
		t.Fatalf("nothing to train: cue %s", p.audio.last())
	}
}

func TestCombatModeAndCycle(t *testing.T) {
	p := newTestPopup(t)
	pl := p.owner.player

	p.HandleAction(ActionSett8SetCombatModeStrong, 0, 0)
	if !pl.SendStrongest {
		t.Fatal("strong mode not set")
	}
	p.HandleAction(ActionSett8SetCombatModeWeak, 0, 0)
	if pl.SendStrongest {
		t.Fatal("weak mode not set")
	}
	p.HandleAction(ActionSett8Cycle, 0, 0)
	if !pl.CyclingKnights || p.audio.last() != sound.SfxAccepted {
		t.Fatal("cycle knights not started")
	}
}

func TestInventoryModes(t *testing.T) {
	p := newTestPopup(t)
	castle := findBuilding(p.game, sim.BuildingCastle, 0)
	inv := p.game.Inventory(castle.InventoryIndex)
	p.owner.player.SelectedIndex = castle.Index

	p.HandleAction(ActionResModeOut, 0, 0)
	p.HandleAction(ActionSerfModeStop, 0, 0)
	if inv.ResMode != sim.ModeOut || inv.SerfMode != sim.ModeStop {
		t.Fatalf("modes = %d, %d", inv.ResMode, inv.SerfMode)
	}

	// A building without inventory is ignored.
	mill := findBuilding(p.game, sim.BuildingMill, 0)
	p.owner.player.SelectedIndex = mill.Index
	p.HandleAction(ActionResModeIn, 0, 0)
	if inv.ResMode != sim.ModeOut {
		t.Fatal("mode changed through a non-inventory building")
	}
}

func TestOptionsActions(t *testing.T) {
	p := newTestPopup(t)
	p.Show(BoxOptions)

	p.HandleAction(ActionOptionsMusic, 0, 0)
	p.HandleAction(ActionOptionsSfx, 0, 0)
	p.HandleAction(ActionOptionsFullscreen, 0, 0)
	if p.audio.music.on || p.audio.sfx.on || !p.display.fullscreen {
		t.Fatalf("toggles: music %v sfx %v fullscreen %v", p.audio.music.on, p.audio.sfx.on, p.display.fullscreen)
	}

	p.HandleAction(ActionOptionsVolumePlus, 0, 0)
	if v := p.audio.volume.v; v < 0.59 || v > 0.61 {
		t.Fatalf("volume up: %v", v)
	}
	p.HandleAction(ActionOptionsVolumeMinus, 0, 0)
	p.HandleAction(ActionOptionsVolumeMinus, 0, 0)
	if v := p.audio.volume.v; v < 0.39 || v > 0.41 {
		t.Fatalf("volume down: %v", v)
	}
	if p.audio.last() != sound.SfxClick {
		t.Fatalf("options cue %s, want click", p.audio.last())
	}
}

func TestMessageCountCycles(t *testing.T) {
	p := newTestPopup(t)
	o := p.owner
	o.SetConfig(ConfigMessagesAll)
	o.SetConfig(ConfigMessagesMost)
	o.SetConfig(ConfigMessagesFew)

	for _, want := range []string{"Most", "Few", "None", "All", "Most"} {
		p.HandleAction(ActionOptionsMessageCount1, 0, 0)
		if got := messageCountName(o); got != want {
			t.Fatalf("message count %q, want %q", got, want)
		}
	}
}

func TestMinimapActions(t *testing.T) {
	p := newTestPopup(t)
	p.Show(BoxMap)
	m := p.Minimap()
	m.SetFlags(0)

	for _, want := range []int{1, 2, 0, 1} {
		p.HandleAction(ActionMinimapMode, 0, 0)
		if got := m.Flags() & minimap.FlagModeMask; got != want {
			t.Fatalf("mode %d, want %d", got, want)
		}
	}

	p.HandleAction(ActionMinimapRoads, 0, 0)
	p.HandleAction(ActionMinimapGrid, 0, 0)
	if m.Flags()&minimap.FlagRoads == 0 || m.Flags()&minimap.FlagGrid == 0 {
		t.Fatalf("roads/grid not set: %#x", m.Flags())
	}

	p.HandleAction(ActionMinimapBuildings, 0, 0)
	if m.Flags()&minimap.FlagBuildings == 0 {
		t.Fatal("buildings not toggled on")
	}
	p.HandleAction(ActionMinimapBuildings, 0, 0)
	if m.Flags()&minimap.FlagBuildings != 0 {
		t.Fatal("buildings not toggled off")
	}

	p.Show(BoxBld2)
	p.HandleAction(ActionMinimapBld7, 0, 0)
	if m.Advanced() != 7 || m.Flags()&minimap.FlagBuildings == 0 || p.Box() != BoxMap {
		t.Fatalf("filter: advanced %d flags %#x box %s", m.Advanced(), m.Flags(), p.Box())
	}
	p.HandleAction(ActionMinimapBuildings, 0, 0)
	if m.Advanced() != -1 || m.Flags()&minimap.FlagBuildings == 0 {
		t.Fatalf("buildings with filter: advanced %d flags %#x", m.Advanced(), m.Flags())
	}
	p.HandleAction(ActionMinimapBldFlag, 0, 0)
	if m.Advanced() != 0 {
		t.Fatalf("flag filter: advanced %d", m.Advanced())
	}

	p.HandleAction(ActionMinimapScale, 0, 0)
	if m.Scale() != 2 || m.Flags()&minimap.FlagScale == 0 {
		t.Fatalf("scale: %d flags %#x", m.Scale(), m.Flags())
	}
	p.HandleAction(ActionMinimapScale, 0, 0)
	if m.Scale() != 1 || m.Flags()&minimap.FlagScale != 0 {
		t.Fatalf("scale back: %d flags %#x", m.Scale(), m.Flags())
	}
}

func TestMinimapClickForwards(t *testing.T) {
	p := newTestPopup(t)
	p.Show(BoxMap)
	var clicked []sim.MapPos
	p.Minimap().SetClickHandler(func(pos sim.MapPos) { clicked = append(clicked, pos) })

	if !p.HandleClickLeft(clickOffset+10, clickOffset+20) {
		t.Fatal("minimap click missed")
	}
	if len(clicked) != 1 || clicked[0] != p.Minimap().LastClick() {
		t.Fatalf("clicks %v, last %d", clicked, p.Minimap().LastClick())
	}
}

func TestBuildActions(t *testing.T) {
	p := newTestPopup(t)
	p.owner.cursor = p.game.Pos(2, 12)
	p.Show(BoxBasicBld)

	p.HandleAction(ActionBuildLumberjack, 0, 0)
	if len(p.owner.built) != 1 || p.owner.built[0] != sim.BuildingLumberjack {
		t.Fatalf("built %v", p.owner.built)
	}
	if b := p.game.BuildingAt(p.owner.cursor); b == nil || b.Type != sim.BuildingLumberjack {
		t.Fatal("lumberjack not placed")
	}

	p.HandleAction(ActionBuildFlag, 0, 0)
	if p.owner.flags != 1 || p.owner.closed != 1 {
		t.Fatalf("flag: flags %d closed %d", p.owner.flags, p.owner.closed)
	}
}

func TestDemolishCloses(t *testing.T) {
	p := newTestPopup(t)
	p.Show(BoxDemolish)
	p.HandleAction(ActionDemolish, 0, 0)
	if p.owner.demolished != 1 || p.owner.closed != 1 {
		t.Fatalf("demolished %d closed %d", p.owner.demolished, p.owner.closed)
	}
}

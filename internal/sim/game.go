package sim

import (
	"errors"
	"fmt"

	"serfpopup/internal/mathutil"
)

var (
	// ErrNotAllowed is returned when a request violates game rules.
	ErrNotAllowed = errors.New("not allowed")
	// ErrNotFound is returned when an index or position holds no object.
	ErrNotFound = errors.New("not found")
	// ErrNoResources is returned when inventories cannot supply a request.
	ErrNoResources = errors.New("no resources")
	// ErrBurning is returned when the building a request targets is on fire.
	ErrBurning = errors.New("building is burning")
)

// Terrain is the coarse ground type of a map cell.
type Terrain int

const (
	TerrainGrass Terrain = iota
	TerrainMountain
	TerrainWater
)

// Game is an in-memory simulation holding everything the popup reads.
// Indices start at 1; slot 0 of every table stays nil.
type Game struct {
	width, height int
	terrain       []Terrain
	deposits      [][DepositCount]int
	objects       map[MapPos]object

	players     [MaxPlayers]*Player
	buildings   []*Building
	flags       []*Flag
	serfs       []*Serf
	inventories []*Inventory

	resourceHistoryIndex int
	playerHistoryIndex   [4]int
	ticks                int

	demo bool
}

type objectKind int

const (
	objectFlag objectKind = iota + 1
	objectBuilding
)

type object struct {
	kind  objectKind
	index int
}

// NewGame returns an empty game with a width x height grass map.
func NewGame(width, height int) *Game {
	g := &Game{
		width:       width,
		height:      height,
		terrain:     make([]Terrain, width*height),
		deposits:    make([][DepositCount]int, width*height),
		objects:     make(map[MapPos]object),
		buildings:   []*Building{nil},
		flags:       []*Flag{nil},
		serfs:       []*Serf{nil},
		inventories: []*Inventory{nil},
	}
	return g
}

func (g *Game) Width() int  { return g.width }
func (g *Game) Height() int { return g.height }

// Pos packs column and row into a MapPos.
func (g *Game) Pos(col, row int) MapPos { return MapPos(row*g.width + col) }

// Coords unpacks a MapPos.
func (g *Game) Coords(pos MapPos) (col, row int) {
	return int(pos) % g.width, int(pos) / g.width
}

func (g *Game) inBounds(pos MapPos) bool {
	return pos >= 0 && int(pos) < g.width*g.height
}

func (g *Game) SetTerrain(pos MapPos, t Terrain) {
	if g.inBounds(pos) {
		g.terrain[pos] = t
	}
}

func (g *Game) Terrain(pos MapPos) Terrain {
	if !g.inBounds(pos) {
		return TerrainWater
	}
	return g.terrain[pos]
}

// SetDeposits stores the raw ground amounts at pos.
func (g *Game) SetDeposits(pos MapPos, amounts [DepositCount]int) {
	if g.inBounds(pos) {
		g.deposits[pos] = amounts
	}
}

// SetDemoMode toggles demo mode, in which foreign buildings may be
// inspected and inventory modes are read-only.
func (g *Game) SetDemoMode(on bool) { g.demo = on }
func (g *Game) DemoMode() bool      { return g.demo }

// AddPlayer installs p in its slot.
func (g *Game) AddPlayer(p *Player) {
	g.players[p.Num] = p
}

// Player returns the player in slot n or nil.
func (g *Game) Player(n int) *Player {
	if n < 0 || n >= MaxPlayers {
		return nil
	}
	return g.players[n]
}

func (g *Game) Building(index int) *Building {
	if index <= 0 || index >= len(g.buildings) {
		return nil
	}
	return g.buildings[index]
}

func (g *Game) Flag(index int) *Flag {
	if index <= 0 || index >= len(g.flags) {
		return nil
	}
	return g.flags[index]
}

func (g *Game) Serf(index int) *Serf {
	if index <= 0 || index >= len(g.serfs) {
		return nil
	}
	return g.serfs[index]
}

func (g *Game) Inventory(index int) *Inventory {
	if index <= 0 || index >= len(g.inventories) {
		return nil
	}
	return g.inventories[index]
}

// Buildings returns all allocated buildings in index order.
func (g *Game) Buildings() []*Building {
	out := make([]*Building, 0, len(g.buildings))
	for _, b := range g.buildings {
		if b != nil {
			out = append(out, b)
		}
	}
	return out
}

// Serfs returns all allocated serfs in index order.
func (g *Game) Serfs() []*Serf {
	out := make([]*Serf, 0, len(g.serfs))
	for _, s := range g.serfs {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

// Inventories returns all allocated inventories in index order.
func (g *Game) Inventories() []*Inventory {
	out := make([]*Inventory, 0, len(g.inventories))
	for _, inv := range g.inventories {
		if inv != nil {
			out = append(out, inv)
		}
	}
	return out
}

// FlagAt returns the flag at pos or nil.
func (g *Game) FlagAt(pos MapPos) *Flag {
	if o, ok := g.objects[pos]; ok && o.kind == objectFlag {
		return g.flags[o.index]
	}
	return nil
}

// BuildingAt returns the building at pos or nil.
func (g *Game) BuildingAt(pos MapPos) *Building {
	if o, ok := g.objects[pos]; ok && o.kind == objectBuilding {
		return g.buildings[o.index]
	}
	return nil
}

// ResourceHistoryIndex is the newest slot of the resource ring buffers.
func (g *Game) ResourceHistoryIndex() int { return g.resourceHistoryIndex }

// PlayerHistoryIndex is the newest slot of the statistics ring buffers
// for a time scale 0..3.
func (g *Game) PlayerHistoryIndex(scale int) int { return g.playerHistoryIndex[scale&3] }

// CanBuildFlag reports whether player may place a flag at pos.
func (g *Game) CanBuildFlag(pos MapPos, player *Player) bool {
	if player == nil || !g.inBounds(pos) {
		return false
	}
	if g.terrain[pos] == TerrainWater {
		return false
	}
	_, taken := g.objects[pos]
	return !taken
}

// CanBuildMilitary reports whether a military building may go at pos:
// no other military building within two cells.
func (g *Game) CanBuildMilitary(pos MapPos) bool {
	if !g.inBounds(pos) {
		return false
	}
	col, row := g.Coords(pos)
	for _, b := range g.Buildings() {
		if !b.Type.IsMilitary() {
			continue
		}
		bc, br := g.Coords(b.Pos)
		if mathutil.IntAbs(bc-col) <= 2 && mathutil.IntAbs(br-row) <= 2 {
			return false
		}
	}
	return true
}

// PrepareGroundAnalysis sums the deposits around pos, weighting the
// centre cell double.
func (g *Game) PrepareGroundAnalysis(pos MapPos) [DepositCount]int {
	var est [DepositCount]int
	if !g.inBounds(pos) {
		return est
	}
	col, row := g.Coords(pos)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			c, r := col+dx, row+dy
			if c < 0 || r < 0 || c >= g.width || r >= g.height {
				continue
			}
			w := 1
			if dx == 0 && dy == 0 {
				w = 2
			}
			d := g.deposits[g.Pos(c, r)]
			for i := range est {
				est[i] += w * d[i]
			}
		}
	}
	return est
}

func (g *Game) addSerf(s *Serf) *Serf {
	s.Index = len(g.serfs)
	g.serfs = append(g.serfs, s)
	if p := g.Player(s.Player); p != nil {
		p.SerfCount[s.Type]++
	}
	return s
}

func (g *Game) addFlag(pos MapPos, player int) *Flag {
	f := &Flag{Index: len(g.flags), Pos: pos, Player: player}
	for i := range f.Slots {
		f.Slots[i].Type = ResourceNone
	}
	g.flags = append(g.flags, f)
	g.objects[pos] = object{kind: objectFlag, index: f.Index}
	return f
}

func (g *Game) addBuilding(pos MapPos, t BuildingType, player int, done bool) *Building {
	b := &Building{Index: len(g.buildings), Pos: pos, Type: t, Player: player, Done: done}
	for i := range b.Stock {
		b.Stock[i].Type = ResourceNone
	}
	g.buildings = append(g.buildings, b)
	g.objects[pos] = object{kind: objectBuilding, index: b.Index}
	if p := g.Player(player); p != nil {
		if done {
			p.CompletedBuildingCount[t]++
		} else {
			p.IncompleteBuildingCount[t]++
		}
	}
	if b.IsInventory() {
		inv := &Inventory{Index: len(g.inventories), Player: player, BuildingIndex: b.Index}
		g.inventories = append(g.inventories, inv)
		b.InventoryIndex = inv.Index
	}
	return b
}

// BuildFlag places a flag for player at pos.
func (g *Game) BuildFlag(pos MapPos, player *Player) (*Flag, error) {
	if !g.CanBuildFlag(pos, player) {
		return nil, fmt.Errorf("flag at %d: %w", pos, ErrNotAllowed)
	}
	return g.addFlag(pos, player.Num), nil
}

// BuildBuilding places an unfinished building for player at pos. Mines
// need mountain ground, everything else grass.
func (g *Game) BuildBuilding(pos MapPos, t BuildingType, player *Player) (*Building, error) {
	if t <= BuildingNone || t >= BuildingCastle {
		return nil, fmt.Errorf("building %s: %w", t, ErrNotAllowed)
	}
	if !g.CanBuildFlag(pos, player) {
		return nil, fmt.Errorf("building %s at %d: %w", t, pos, ErrNotAllowed)
	}
	if t.IsMine() != (g.terrain[pos] == TerrainMountain) {
		return nil, fmt.Errorf("building %s on terrain %d: %w", t, g.terrain[pos], ErrNotAllowed)
	}
	if t.IsMilitary() && !g.CanBuildMilitary(pos) {
		return nil, fmt.Errorf("military building at %d: %w", pos, ErrNotAllowed)
	}
	return g.addBuilding(pos, t, player.Num, false), nil
}

// Demolish removes the flag or building player owns at pos.
func (g *Game) Demolish(pos MapPos, player *Player) error {
	o, ok := g.objects[pos]
	if !ok {
		return fmt.Errorf("demolish at %d: %w", pos, ErrNotFound)
	}
	switch o.kind {
	case objectFlag:
		f := g.flags[o.index]
		if f.Player != player.Num {
			return fmt.Errorf("demolish flag %d: %w", f.Index, ErrNotAllowed)
		}
		g.flags[o.index] = nil
	case objectBuilding:
		b := g.buildings[o.index]
		if b.Player != player.Num || b.Type == BuildingCastle {
			return fmt.Errorf("demolish building %d: %w", b.Index, ErrNotAllowed)
		}
		if b.Done {
			player.CompletedBuildingCount[b.Type]--
		} else {
			player.IncompleteBuildingCount[b.Type]--
		}
		if b.InventoryIndex != 0 {
			g.inventories[b.InventoryIndex] = nil
		}
		g.buildings[o.index] = nil
	}
	delete(g.objects, pos)
	return nil
}

// SendGeologist dispatches a geologist to flag. An idle geologist is
// preferred; otherwise a generic serf is equipped with a hammer.
func (g *Game) SendGeologist(flag *Flag) error {
	if flag == nil {
		return fmt.Errorf("send geologist: %w", ErrNotFound)
	}
	for _, s := range g.Serfs() {
		if s.Player == flag.Player && s.Type == SerfGeologist && s.State == SerfStateIdleInStock {
			s.State = SerfStateWalking
			return nil
		}
	}
	for _, inv := range g.Inventories() {
		if inv.Player != flag.Player || inv.SerfMode == ModeStop {
			continue
		}
		if inv.GenericCount > 0 && inv.Resources[ResourceHammer] > 0 {
			inv.GenericCount--
			inv.Resources[ResourceHammer]--
			g.addSerf(&Serf{Player: flag.Player, Type: SerfGeologist, State: SerfStateWalking})
			return nil
		}
	}
	return fmt.Errorf("send geologist to flag %d: %w", flag.Index, ErrNoResources)
}

// PromoteSerfsToKnights turns up to number generic serfs with a sword and
// shield into knights and returns how many were promoted.
func (g *Game) PromoteSerfsToKnights(player *Player, number int) int {
	promoted := 0
	for _, inv := range g.Inventories() {
		if inv.Player != player.Num {
			continue
		}
		for promoted < number && inv.GenericCount > 0 &&
			inv.Resources[ResourceSword] > 0 && inv.Resources[ResourceShield] > 0 {
			inv.GenericCount--
			inv.Resources[ResourceSword]--
			inv.Resources[ResourceShield]--
			player.SerfCount[SerfGeneric] = mathutil.IntMax(0, player.SerfCount[SerfGeneric]-1)
			g.addSerf(&Serf{Player: player.Num, Type: SerfKnight0, State: SerfStateIdleInStock, InventoryIndex: inv.Index})
			promoted++
		}
	}
	return promoted
}

// StartAttack sends the chosen number of knights against the building the
// player selected.
func (g *Game) StartAttack(player *Player) error {
	target := g.Building(player.BuildingAttacked)
	if target == nil || !target.Type.IsMilitary() {
		return fmt.Errorf("attack building %d: %w", player.BuildingAttacked, ErrNotFound)
	}
	if target.Burning {
		return fmt.Errorf("attack building %d: %w", target.Index, ErrBurning)
	}
	if target.Player == player.Num || player.KnightsAttacking <= 0 {
		return fmt.Errorf("attack building %d: %w", target.Index, ErrNotAllowed)
	}
	sent := player.KnightsAttacking
	for i := range player.AttackingKnights {
		n := mathutil.IntMin(sent, player.AttackingKnights[i])
		player.AttackingKnights[i] -= n
		sent -= n
	}
	player.TotalAttackingKnights -= player.KnightsAttacking
	player.KnightsAttacking = 0
	target.State = 1
	return nil
}

// attackRange is the farthest distance, in cells, from which a military
// building can send knights.
const attackRange = 16

// PrepareAttack selects the building at pos as the player's attack target
// and counts the knights that can join, grouped into four distance bands
// nearest first. Every building keeps one knight; the castle keeps
// CastleKnightsWanted.
func (g *Game) PrepareAttack(player *Player, pos MapPos) error {
	target := g.BuildingAt(pos)
	if target == nil || !target.Done || !target.Type.IsMilitary() {
		return fmt.Errorf("attack at %d: %w", pos, ErrNotFound)
	}
	if target.Player == player.Num {
		return fmt.Errorf("attack own building %d: %w", target.Index, ErrNotAllowed)
	}
	if target.Burning {
		return fmt.Errorf("attack building %d: %w", target.Index, ErrBurning)
	}

	tc, tr := g.Coords(target.Pos)
	player.BuildingAttacked = target.Index
	player.KnightsAttacking = 0
	player.AttackingKnights = [4]int{}
	player.AttackingBuildingCount = 0
	player.TotalAttackingKnights = 0
	for _, b := range g.Buildings() {
		if b.Player != player.Num || !b.Done || !b.Type.IsMilitary() {
			continue
		}
		c, r := g.Coords(b.Pos)
		dist := mathutil.IntMax(mathutil.IntAbs(c-tc), mathutil.IntAbs(r-tr))
		if dist > attackRange {
			continue
		}
		keep := 1
		if b.Type == BuildingCastle {
			keep = player.CastleKnightsWanted
		}
		n := g.stationedKnights(b) - keep
		if n <= 0 {
			continue
		}
		band := mathutil.IntMin(dist*4/(attackRange+1), 3)
		player.AttackingKnights[band] += n
		player.TotalAttackingKnights += n
		player.AttackingBuildingCount++
	}
	if player.TotalAttackingKnights == 0 {
		return fmt.Errorf("attack building %d: %w", target.Index, ErrNoResources)
	}
	return nil
}

func (g *Game) stationedKnights(b *Building) int {
	n := 0
	for idx := b.SerfIndex; idx != 0; {
		s := g.Serf(idx)
		if s == nil {
			break
		}
		n++
		idx = s.NextKnight
	}
	return n
}

// CycleKnights asks every military building to swap its knights for
// stronger ones from stock.
func (g *Game) CycleKnights(player *Player) {
	player.CyclingKnights = true
}

func (g *Game) SetInventoryResourceMode(inv *Inventory, mode int) {
	inv.ResMode = mathutil.IntClamp(mode, ModeIn, ModeOut)
}

func (g *Game) SetInventorySerfMode(inv *Inventory, mode int) {
	inv.SerfMode = mathutil.IntClamp(mode, ModeIn, ModeOut)
}

// Tick advances the history ring buffers by one sample.
func (g *Game) Tick() {
	g.ticks++
	g.resourceHistoryIndex = (g.resourceHistoryIndex + 1) % ResourceHistoryLen
	for _, p := range g.players {
		if p == nil || !p.Active {
			continue
		}
		var totals [ResourceCount]int
		for _, inv := range g.Inventories() {
			if inv.Player != p.Num {
				continue
			}
			for r, n := range inv.Resources {
				totals[r] += n
			}
		}
		for r := range totals {
			p.ResourceCountHistory[r][g.resourceHistoryIndex] = totals[r]
		}
	}

	for scale, every := range PlayerHistoryInterval {
		if g.ticks%every != 0 {
			continue
		}
		g.playerHistoryIndex[scale] = (g.playerHistoryIndex[scale] + 1) % PlayerHistoryLen
		g.recordPlayerStats(scale)
	}
}

// recordPlayerStats stores each player's share of land, buildings,
// military and their combination as a percentage.
func (g *Game) recordPlayerStats(scale int) {
	var land, blds, mil [MaxPlayers]int
	var landTotal, bldTotal, milTotal int
	for _, b := range g.Buildings() {
		land[b.Player]++
		landTotal++
		if b.Done {
			blds[b.Player]++
			bldTotal++
		}
		if b.Type.IsMilitary() {
			mil[b.Player]++
			milTotal++
		}
	}
	pct := func(n, total int) int {
		if total == 0 {
			return 0
		}
		return 100 * n / total
	}
	idx := g.playerHistoryIndex[scale]
	for i, p := range g.players {
		if p == nil || !p.Active {
			continue
		}
		l, b, m := pct(land[i], landTotal), pct(blds[i], bldTotal), pct(mil[i], milTotal)
		p.StatHistory[(0<<2)|scale][idx] = (l + b + m) / 3
		p.StatHistory[(1<<2)|scale][idx] = l
		p.StatHistory[(2<<2)|scale][idx] = b
		p.StatHistory[(3<<2)|scale][idx] = m
	}
}

package game

import (
	"fmt"
	"time"

	"serfpopup/internal/graphics"
	"serfpopup/internal/minimap"
	"serfpopup/internal/sim"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hako/durafmt"
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

const (
	hudX          = mapX
	hudY          = mapY + minimap.Size + 4
	hudLineHeight = 13
	hudColor      = 31
)

// hudInfo is what the status lines below the map show.
type hudInfo struct {
	Gold      int
	Played    time.Duration
	ChartSpan time.Duration
	Col, Row  int
	Status    string
}

func (g *Game) hudInfo() hudInfo {
	col, row := g.world.Coords(g.cursor)
	tps := g.cfg.GetTicksPerSecond()
	return hudInfo{
		Gold:      g.player.GoldDeposited,
		Played:    ticksToDuration(g.ticks, tps),
		ChartSpan: chartSpan(g.stat8Mode, tps),
		Col:       col,
		Row:       row,
		Status:    g.status,
	}
}

func ticksToDuration(ticks, tps int) time.Duration {
	if tps <= 0 {
		return 0
	}
	return time.Duration(ticks) * time.Second / time.Duration(tps)
}

// chartSpan is the time covered by the player chart at the time scale
// held in the low bits of mode.
func chartSpan(mode, tps int) time.Duration {
	return ticksToDuration(sim.PlayerHistoryLen*sim.PlayerHistoryInterval[mode&3], tps)
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "0s"
	}
	return durafmt.Parse(d).LimitFirstN(2).Format(shortUnits)
}

func cursorLabel(col, row int) string {
	return fmt.Sprintf("cursor %d,%d", col, row)
}

func hudLines(h hudInfo) []string {
	status := h.Status
	if status == "" {
		status = cursorLabel(h.Col, h.Row)
	}
	return []string{
		"gold " + humanize.Comma(int64(h.Gold)),
		"time " + formatDuration(h.Played),
		"chart " + formatDuration(h.ChartSpan),
		status,
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	f := graphics.NewFrame(screen, g.sprites, 0, 0)
	for i, line := range hudLines(g.hudInfo()) {
		f.DrawString(hudX, hudY+i*hudLineHeight, hudColor, line)
	}
}

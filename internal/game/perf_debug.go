package game

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"serfpopup/internal/popup"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	perfLowFpsThreshold = 30.0
	perfLowFpsDuration  = 3 * time.Second
	perfLogInterval     = 3 * time.Second
)

type perfState struct {
	lowFpsSince time.Time
	lastLog     time.Time
}

func (g *Game) maybeLogPerfDrop() {
	if !g.cfg.Debug.LogActions {
		return
	}
	fps := ebiten.ActualFPS()
	if g.perfDropDue(fps, time.Now()) {
		g.logPerfSnapshot(fps, ebiten.ActualTPS())
	}
}

// perfDropDue reports whether fps has stayed low long enough to log,
// at most once per perfLogInterval.
func (g *Game) perfDropDue(fps float64, now time.Time) bool {
	if fps >= perfLowFpsThreshold {
		g.perf = perfState{}
		return false
	}
	if g.perf.lowFpsSince.IsZero() {
		g.perf.lowFpsSince = now
		return false
	}
	if now.Sub(g.perf.lowFpsSince) < perfLowFpsDuration {
		return false
	}
	if !g.perf.lastLog.IsZero() && now.Sub(g.perf.lastLog) < perfLogInterval {
		return false
	}
	g.perf.lastLog = now
	return true
}

func (g *Game) logPerfSnapshot(fps, tps float64) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	fmt.Printf(
		"[PERF] FPS<%.0f for >=%s | fps=%.1f tps=%.1f causes=%s\n",
		perfLowFpsThreshold,
		perfLowFpsDuration,
		fps,
		tps,
		g.perfCauses(),
	)
	fmt.Printf(
		"[PERF] world=%dx%d buildings=%d serfs=%d box=%s last_action=%s ticks=%d queued_clicks=%d mem_alloc=%s gc_cycles=%d\n",
		g.world.Width(),
		g.world.Height(),
		len(g.world.Buildings()),
		len(g.world.Serfs()),
		g.popup.Box(),
		g.lastActionLabel(),
		g.ticks,
		len(g.mouseLeftClicks),
		humanize.Bytes(mem.Alloc),
		mem.NumGC,
	)
}

// lastActionLabel names the last popup action for the perf log.
func (g *Game) lastActionLabel() string {
	if a, ok := g.popup.LastAction(); ok {
		return a.String()
	}
	return "none"
}

func (g *Game) perfCauses() string {
	causes := make([]string, 0, 3)
	if n := g.world.Width() * g.world.Height(); n > 128*128 {
		causes = append(causes, fmt.Sprintf("large map (%d cells)", n))
	}
	if g.popup.Displayed() && g.popup.Box() == popup.BoxMap {
		causes = append(causes, "minimap open")
	}
	if len(g.world.Serfs()) > 2000 {
		causes = append(causes, fmt.Sprintf("serfs (%d)", len(g.world.Serfs())))
	}
	if len(causes) == 0 {
		return "none obvious"
	}
	return strings.Join(causes, ", ")
}

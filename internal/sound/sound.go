// Package sound plays the short interface cues of the popup through an
// ebiten audio context. A nil context keeps everything silent.
package sound

import (
	"bytes"
	"encoding/binary"
	"log"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Sfx names an interface sound effect.
type Sfx int

const (
	SfxClick Sfx = iota
	SfxAccepted
	SfxNotAccepted
	SfxAhhh
	sfxCount
)

func (s Sfx) String() string {
	switch s {
	case SfxClick:
		return "click"
	case SfxAccepted:
		return "accepted"
	case SfxNotAccepted:
		return "not_accepted"
	case SfxAhhh:
		return "ahhh"
	}
	return "unknown"
}

// tone describes a synthesized cue: a sequence of (frequency, milliseconds)
// notes.
type tone struct {
	notes [][2]float64
}

var tones = [sfxCount]tone{
	SfxClick:       {notes: [][2]float64{{1200, 15}}},
	SfxAccepted:    {notes: [][2]float64{{660, 60}, {990, 90}}},
	SfxNotAccepted: {notes: [][2]float64{{330, 80}, {220, 120}}},
	SfxAhhh:        {notes: [][2]float64{{440, 120}, {392, 120}, {349, 240}}},
}

// music is the background loop played while the music channel is on.
var music = tone{notes: [][2]float64{
	{262, 400}, {330, 400}, {392, 400}, {330, 400},
	{294, 400}, {349, 400}, {440, 400}, {349, 400},
}}

const (
	maxSounds = 16
	// recentCap bounds the cue history kept for the debug log.
	recentCap = 32
	// musicGain scales the loop below the cues.
	musicGain = 0.4
)

// Player is an on/off switch for one audio channel.
type Player struct {
	mu      sync.Mutex
	name    string
	enabled bool
}

func newPlayer(name string, enabled bool) *Player {
	return &Player{name: name, enabled: enabled}
}

func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

func (p *Player) SetEnabled(on bool) {
	p.mu.Lock()
	p.enabled = on
	p.mu.Unlock()
}

// Toggle flips the enabled state and returns the new one.
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = !p.enabled
	return p.enabled
}

// Volume is a master volume in [0, 1] changed in fixed steps.
type Volume struct {
	mu    sync.Mutex
	value float64
	step  float64
}

func newVolume(value, step float64) *Volume {
	if step <= 0 {
		step = 0.1
	}
	return &Volume{value: clampVolume(value), step: step}
}

func clampVolume(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func (v *Volume) Volume() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value
}

func (v *Volume) SetVolume(value float64) {
	v.mu.Lock()
	v.value = clampVolume(value)
	v.mu.Unlock()
}

func (v *Volume) VolumeUp()   { v.SetVolume(v.Volume() + v.step) }
func (v *Volume) VolumeDown() { v.SetVolume(v.Volume() - v.step) }

// Options configures a Manager.
type Options struct {
	Music      bool
	Effects    bool
	Volume     float64
	VolumeStep float64
}

// Manager owns the audio context, the cue cache and the channel switches.
type Manager struct {
	ctx    *audio.Context
	music  *Player
	sfx    *Player
	volume *Volume

	mu      sync.Mutex
	cache   map[Sfx][]byte
	players map[*audio.Player]struct{}
	played  []Sfx
	loop    *audio.Player
}

// NewManager builds a manager on ctx. ctx may be nil.
func NewManager(ctx *audio.Context, opts Options) *Manager {
	return &Manager{
		ctx:     ctx,
		music:   newPlayer("music", opts.Music),
		sfx:     newPlayer("sfx", opts.Effects),
		volume:  newVolume(opts.Volume, opts.VolumeStep),
		cache:   make(map[Sfx][]byte),
		players: make(map[*audio.Player]struct{}),
	}
}

func (m *Manager) Music() *Player   { return m.music }
func (m *Manager) Effects() *Player { return m.sfx }
func (m *Manager) Master() *Volume  { return m.volume }

// Played returns the most recent cues requested, oldest first. At most
// recentCap are kept.
func (m *Manager) Played() []Sfx {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Sfx(nil), m.played...)
}

// Play starts the cue for sfx unless effects are disabled.
func (m *Manager) Play(sfx Sfx) {
	if sfx < 0 || sfx >= sfxCount || !m.sfx.Enabled() {
		return
	}
	m.mu.Lock()
	if len(m.played) == recentCap {
		copy(m.played, m.played[1:])
		m.played = m.played[:recentCap-1]
	}
	m.played = append(m.played, sfx)
	m.mu.Unlock()

	if m.ctx == nil {
		return
	}
	pcm := m.pcm(sfx)
	p := m.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(m.volume.Volume())

	m.mu.Lock()
	for sp := range m.players {
		if !sp.IsPlaying() {
			sp.Close()
			delete(m.players, sp)
		}
	}
	if len(m.players) >= maxSounds {
		m.mu.Unlock()
		p.Close()
		log.Printf("Warning: dropping sound %s, %d already playing", sfx, maxSounds)
		return
	}
	m.players[p] = struct{}{}
	m.mu.Unlock()

	p.Play()
}

// UpdateMusic starts or pauses the background loop to follow the music
// switch and keeps its volume in step with the master volume. It is called
// once per frame.
func (m *Manager) UpdateMusic() {
	if m.ctx == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.music.Enabled() {
		if m.loop != nil && m.loop.IsPlaying() {
			m.loop.Pause()
		}
		return
	}
	if m.loop == nil {
		pcm := synthesize(music, m.ctx.SampleRate())
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		p, err := m.ctx.NewPlayer(loop)
		if err != nil {
			log.Printf("Warning: music disabled: %v", err)
			m.music.SetEnabled(false)
			return
		}
		m.loop = p
	}
	m.loop.SetVolume(m.volume.Volume() * musicGain)
	if !m.loop.IsPlaying() {
		m.loop.Play()
	}
}

// MusicPlaying reports whether the background loop is audible.
func (m *Manager) MusicPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loop != nil && m.loop.IsPlaying()
}

func (m *Manager) pcm(sfx Sfx) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	if pcm, ok := m.cache[sfx]; ok {
		return pcm
	}
	pcm := synthesize(tones[sfx], m.ctx.SampleRate())
	m.cache[sfx] = pcm
	return pcm
}

// synthesize renders t as 16-bit little endian stereo PCM with a short
// linear fade on every note.
func synthesize(t tone, rate int) []byte {
	var total int
	for _, n := range t.notes {
		total += int(float64(rate) * n[1] / 1000)
	}
	pcm := make([]byte, total*4)
	off := 0
	for _, n := range t.notes {
		samples := int(float64(rate) * n[1] / 1000)
		fade := samples / 8
		for i := 0; i < samples; i++ {
			amp := 0.25
			if fade > 0 {
				if i < fade {
					amp *= float64(i) / float64(fade)
				} else if i > samples-fade {
					amp *= float64(samples-i) / float64(fade)
				}
			}
			v := int16(amp * math.MaxInt16 * math.Sin(2*math.Pi*n[0]*float64(i)/float64(rate)))
			binary.LittleEndian.PutUint16(pcm[off:], uint16(v))
			binary.LittleEndian.PutUint16(pcm[off+2:], uint16(v))
			off += 4
		}
	}
	return pcm
}

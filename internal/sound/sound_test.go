package sound

import "testing"

func TestVolumeClamps(t *testing.T) {
	v := newVolume(0.95, 0.1)
	v.VolumeUp()
	if v.Volume() != 1 {
		t.Fatalf("volume %v, want 1", v.Volume())
	}
	v.SetVolume(0.05)
	v.VolumeDown()
	if v.Volume() != 0 {
		t.Fatalf("volume %v, want 0", v.Volume())
	}
	if newVolume(3, 0).step != 0.1 {
		t.Fatal("zero step should fall back to default")
	}
}

func TestPlayerToggle(t *testing.T) {
	p := newPlayer("music", false)
	if !p.Toggle() || !p.Enabled() {
		t.Fatal("toggle did not enable")
	}
	p.SetEnabled(false)
	if p.Enabled() {
		t.Fatal("SetEnabled(false) ignored")
	}
}

func TestPlaySilentContextRecords(t *testing.T) {
	m := NewManager(nil, Options{Effects: true, Volume: 0.5})
	m.Play(SfxClick)
	m.Play(SfxAccepted)
	m.Effects().SetEnabled(false)
	m.Play(SfxAhhh)
	m.Play(Sfx(42))

	got := m.Played()
	if len(got) != 2 || got[0] != SfxClick || got[1] != SfxAccepted {
		t.Fatalf("played %v", got)
	}
}

func TestSynthesizeLength(t *testing.T) {
	pcm := synthesize(tones[SfxAccepted], 44100)
	want := (int(44100*60/1000.0) + int(44100*90/1000.0)) * 4
	if len(pcm) != want {
		t.Fatalf("pcm length %d, want %d", len(pcm), want)
	}
	if SfxNotAccepted.String() != "not_accepted" || Sfx(9).String() != "unknown" {
		t.Fatal("unexpected names")
	}
}

func TestPlayedKeepsRecentCues(t *testing.T) {
	m := NewManager(nil, Options{Effects: true})
	for i := 0; i < recentCap+5; i++ {
		m.Play(Sfx(i % int(sfxCount)))
	}
	got := m.Played()
	if len(got) != recentCap {
		t.Fatalf("kept %d cues, want %d", len(got), recentCap)
	}
	// The first five were dropped.
	if got[0] != Sfx(5%int(sfxCount)) || got[recentCap-1] != Sfx((recentCap+4)%int(sfxCount)) {
		t.Fatalf("history %v", got)
	}
}

func TestUpdateMusicSilentContext(t *testing.T) {
	m := NewManager(nil, Options{Music: true})
	m.UpdateMusic()
	if m.MusicPlaying() {
		t.Fatal("music playing without a context")
	}
	if !m.Music().Enabled() {
		t.Fatal("music switch changed")
	}
}

func TestMusicLoopLength(t *testing.T) {
	pcm := synthesize(music, 22050)
	want := len(music.notes) * int(22050*400/1000.0) * 4
	if len(pcm) != want {
		t.Fatalf("loop length %d, want %d", len(pcm), want)
	}
}

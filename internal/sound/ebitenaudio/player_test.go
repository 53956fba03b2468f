package ebitenaudio

import "testing"

type fakeTrack struct {
	playing bool
	volume  float64
	rewinds int
}

func (f *fakeTrack) Play() { f.playing = true }
func (f *fakeTrack) Pause() { f.playing = false }
func (f *fakeTrack) Rewind() error {
	f.rewinds++
	return nil
}
func (f *fakeTrack) SetVolume(v float64) { f.volume = v }

func newTestPlayer() (*Player, *fakeTrack) {
	tr := &fakeTrack{volume: musicVolume}
	return &Player{music: tr}, tr
}

func TestMusicStartedWhileMutedIsHeardAfterUnmute(t *testing.T) {
	p, tr := newTestPlayer()
	p.SetMuted(true)
	p.StartMusic()
	if !tr.playing || tr.volume != 0 {
		t.Fatalf("muted start: playing=%v volume=%g", tr.playing, tr.volume)
	}
	if p.ToggleMute() {
		t.Fatalf("toggle should unmute")
	}
	if !tr.playing || tr.volume != musicVolume {
		t.Fatalf("after unmute: playing=%v volume=%g", tr.playing, tr.volume)
	}
}

func TestPauseAndResumeMusic(t *testing.T) {
	p, tr := newTestPlayer()
	p.StartMusic()
	p.PauseMusic()
	if tr.playing {
		t.Fatalf("pause ignored")
	}
	p.ResumeMusic()
	if !tr.playing || tr.rewinds != 1 {
		t.Fatalf("resume: playing=%v rewinds=%d", tr.playing, tr.rewinds)
	}
}

func TestUnknownCueIsSkipped(t *testing.T) {
	p, _ := newTestPlayer()
	p.Play("thunder", 1)
}

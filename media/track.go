// Package media owns the door cinematic's audio track: loaded and decoded
// off the game loop, reporting a ready signal the sequence controller
// waits on, and played from the beginning once ready.
package media

import (
	"bytes"
	"log"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// LoadFunc resolves a media file's bytes by name.
type LoadFunc func(name string) ([]byte, error)

// Track is one door's cinematic media. Start is idempotent per activation;
// Ready flips once the asset is decoded and playback has begun. A failed
// load never flips Ready: the controller's bounded wait handles it.
type Track struct {
	name string
	load LoadFunc
	ctx  *audio.Context

	mu      sync.Mutex
	started bool
	failed  bool
	playing bool
	player  *audio.Player
}

func NewTrack(ctx *audio.Context, name string, load LoadFunc) *Track {
	return &Track{name: name, load: load, ctx: ctx}
}

// Start begins loading, decoding, and (once decoded) playback from the
// beginning. Safe to call again after Stop for the next activation.
func (t *Track) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.player != nil {
		// already decoded from a prior activation; replay from the top
		if err := t.player.Rewind(); err != nil {
			log.Printf("media: rewind %s: %v", t.name, err)
		}
		t.player.Play()
		t.playing = true
		return
	}
	if t.started {
		return
	}
	t.started = true
	go t.decode()
}

func (t *Track) decode() {
	fail := func(err error) {
		log.Printf("media: load %s: %v", t.name, err)
		t.mu.Lock()
		t.failed = true
		t.mu.Unlock()
	}

	data, err := t.load(t.name)
	if err != nil {
		fail(err)
		return
	}

	var player *audio.Player
	if strings.HasSuffix(strings.ToLower(t.name), ".wav") {
		stream, err := wav.DecodeWithSampleRate(t.ctx.SampleRate(), bytes.NewReader(data))
		if err != nil {
			fail(err)
			return
		}
		player, err = t.ctx.NewPlayer(stream)
		if err != nil {
			fail(err)
			return
		}
	} else {
		// already-decoded PCM in Ebiten's native format
		player = t.ctx.NewPlayerFromBytes(data)
	}

	t.mu.Lock()
	t.player = player
	t.player.Play()
	t.playing = true
	t.mu.Unlock()
}

// Ready reports the track can play smoothly (decoded and playing).
func (t *Track) Ready() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.playing
}

// Stop halts playback. The decoded stream is kept for a later replay.
func (t *Track) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.player != nil {
		t.player.Pause()
	}
	t.playing = false
}

// Failed reports a load or decode error; used by status overlays only, the
// sequence controller just times out.
func (t *Track) Failed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.failed
}

// Silence is the media for a door with no track: instantly ready, plays
// nothing.
type Silence struct{}

func (Silence) Start()      {}
func (Silence) Stop()       {}
func (Silence) Ready() bool { return true }

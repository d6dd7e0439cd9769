// Package tts plays backend-synthesized speech.
package tts

import (
	"context"
	"fmt"
	"sync"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
)

// Synthesizer turns text into audio.
type Synthesizer interface {
	Speech(ctx context.Context, text string) (*api.Audio, error)
}

// Sink starts playback of audio and returns a handle to control it.
type Sink interface {
	Play(ctx context.Context, audio *api.Audio) (Track, error)
}

// Track is audio handed to a Sink.
type Track interface {
	Pause() error
	Resume() error
	Stop() error
}

// Player plays one text at a time. Playing the text that is already
// loaded toggles pause; playing another text replaces it.
type Player struct {
	synth Synthesizer
	sink  Sink

	mu      sync.Mutex
	text    string
	track   Track
	playing bool
	loading bool
	err     error
}

// NewPlayer returns an idle player that fetches audio from synth and
// hands it to sink.
func NewPlayer(synth Synthesizer, sink Sink) *Player {
	return &Player{synth: synth, sink: sink}
}

// Play speaks text.
func (p *Player) Play(ctx context.Context, text string) error {
	p.mu.Lock()
	if p.track != nil && p.text == text {
		defer p.mu.Unlock()
		if p.playing {
			return p.pauseLocked()
		}
		return p.resumeLocked()
	}
	p.stopLocked()
	p.loading = true
	p.err = nil
	p.text = text
	p.mu.Unlock()

	audio, err := p.synth.Speech(ctx, text)
	var track Track
	if err == nil {
		track, err = p.sink.Play(ctx, audio)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false
	if err != nil {
		p.err = fmt.Errorf("speak: %w", err)
		if p.text == text {
			p.text = ""
		}
		return p.err
	}
	if p.text != text {
		// Stopped or replaced while loading.
		_ = track.Stop()
		return nil
	}
	p.track = track
	p.playing = true
	return nil
}

// Pause pauses the current track. It is a no-op when nothing plays.
func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pauseLocked()
}

func (p *Player) pauseLocked() error {
	if p.track == nil || !p.playing {
		return nil
	}
	if err := p.track.Pause(); err != nil {
		p.err = err
		return err
	}
	p.playing = false
	return nil
}

// Resume continues a paused track.
func (p *Player) Resume() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.resumeLocked()
}

func (p *Player) resumeLocked() error {
	if p.track == nil || p.playing {
		return nil
	}
	if err := p.track.Resume(); err != nil {
		p.err = err
		return err
	}
	p.playing = true
	return nil
}

// Stop ends playback and forgets the loaded text.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Player) stopLocked() {
	if p.track != nil {
		_ = p.track.Stop()
		p.track = nil
	}
	p.playing = false
	p.text = ""
}

// Ended is called when the track finished on its own.
func (p *Player) Ended() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.track = nil
	p.playing = false
	p.text = ""
}

// IsPlaying reports whether a track is playing and not paused.
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

func (p *Player) IsLoading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// Err returns the last failure, cleared by the next Play of a new text.
func (p *Player) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

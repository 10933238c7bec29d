// Package audio plays short procedural sound effects for game events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Output receives game events. Notify must not block the game loop.
type Output interface {
	Notify(ev core.Event)
	Close() error
}

// Nop discards every event.
type Nop struct{}

func (Nop) Notify(core.Event) {}
func (Nop) Close() error      { return nil }

// soundFor maps an event to its effect.
func soundFor(ev core.Event) (Sound, bool) {
	switch ev {
	case core.EventRegularEaten:
		return SoundEat, true
	case core.EventBonusEaten:
		return SoundBonus, true
	case core.EventPoisonEaten:
		return SoundPoison, true
	case core.EventGameOver:
		return SoundGameOver, true
	default:
		return 0, false
	}
}

// Player renders events through the system audio device.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	logger *log.Logger

	sounds map[Sound][]byte
	wg     sync.WaitGroup
}

// New opens the audio device. Only one Player may exist per process.
func New(volume float64, logger *log.Logger) (*Player, error) {
	ctx, ready, err := oto.NewContext(sampleRate, channelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open device: %w", err)
	}

	sounds := make(map[Sound][]byte)
	for _, s := range []Sound{SoundEat, SoundBonus, SoundPoison, SoundGameOver} {
		sounds[s] = synthesize(s)
	}

	return &Player{
		ctx:    ctx,
		ready:  ready,
		volume: min(max(volume, 0), 1),
		logger: logger,
		sounds: sounds,
	}, nil
}

// Open returns a Player, or Nop when muted or the device is unavailable.
func Open(muted bool, volume float64, logger *log.Logger) Output {
	if muted {
		return Nop{}
	}
	p, err := New(volume, logger)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
		return Nop{}
	}
	return p
}

// Notify starts the effect for ev in the background. Events arriving before
// the device is ready are dropped.
func (p *Player) Notify(ev core.Event) {
	sound, ok := soundFor(ev)
	if !ok {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}

	samples := p.sounds[sound]
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		player := p.ctx.NewPlayer(&bufferReader{data: samples})
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			p.logger.Debug("audio player close", "err", err)
		}
	}()
}

// Close waits for playing effects to finish.
func (p *Player) Close() error {
	p.wg.Wait()
	return nil
}

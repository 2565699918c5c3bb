package sound

import (
	"errors"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-tui/internal/mines"
)

var Log = logrus.New()

const sampleRate = beep.SampleRate(44100)

var ErrNoTune = errors.New("no tune for a game in progress")

// note is one step of a tune; a zero frequency is a rest.
type note struct {
	freq   float64
	length time.Duration
}

var (
	winTune = []note{
		{523.25, 110 * time.Millisecond},
		{659.25, 110 * time.Millisecond},
		{783.99, 110 * time.Millisecond},
		{0, 40 * time.Millisecond},
		{1046.5, 260 * time.Millisecond},
	}
	lossTune = []note{
		{392.00, 160 * time.Millisecond},
		{311.13, 160 * time.Millisecond},
		{196.00, 420 * time.Millisecond},
	}
)

// Tune builds the jingle played when a game ends.
func Tune(state mines.GameState) (beep.Streamer, error) {
	var notes []note
	switch state {
	case mines.Won:
		notes = winTune
	case mines.Lost:
		notes = lossTune
	default:
		return nil, ErrNoTune
	}

	streamers := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := sampleRate.N(n.length)
		if n.freq == 0 {
			streamers = append(streamers, beep.Silence(samples))
			continue
		}
		sine, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		streamers = append(streamers, beep.Take(samples, sine))
	}
	return beep.Seq(streamers...), nil
}

// Player plays end of game tunes. A nil or disabled Player is silent.
type Player struct {
	enabled bool
}

// NewPlayer opens the speaker when enabled is set. A missing audio device
// is logged and leaves the player silent.
func NewPlayer(enabled bool) *Player {
	if !enabled {
		return &Player{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		Log.WithError(err).Warn("sound disabled")
		return &Player{}
	}
	return &Player{enabled: true}
}

func (p *Player) Enabled() bool {
	return p != nil && p.enabled
}

func (p *Player) Play(state mines.GameState) {
	if !p.Enabled() {
		return
	}
	tune, err := Tune(state)
	if err != nil {
		Log.WithError(err).WithField("state", state).Debug("nothing to play")
		return
	}
	speaker.Play(tune)
}

func (p *Player) Close() {
	if !p.Enabled() {
		return
	}
	speaker.Close()
	p.enabled = false
}

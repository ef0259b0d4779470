package sound

import (
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/matt-g-everett/propanim/demo"
)

const sampleRate = beep.SampleRate(44100)

// Player plays a short tone whenever an animation starts.
type Player struct {
	frequency float64
	duration  time.Duration
}

// NewPlayer opens the speaker. The caller must Close the player.
func NewPlayer(frequency float64, duration time.Duration) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}

	p := new(Player)
	p.frequency = frequency
	p.duration = duration
	return p, nil
}

// Pitch is the tone played for an action. Each button gets its own note,
// spaced a whole tone apart.
func (p *Player) Pitch(a demo.Action) float64 {
	for i, known := range demo.Actions {
		if known == a {
			return p.frequency * math.Pow(2, float64(2*i)/12)
		}
	}
	return p.frequency
}

// Play starts the tone for a and returns straight away.
func (p *Player) Play(a demo.Action) {
	sine, err := generators.SineTone(sampleRate, p.Pitch(a))
	if err != nil {
		log.Printf("No tone for %s: %v", a, err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(p.duration), sine))
}

// Close releases the speaker.
func (p *Player) Close() {
	speaker.Close()
}

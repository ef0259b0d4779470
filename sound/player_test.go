package sound

import (
	"bytes"
	"log"
	"os"
	"testing"
	"time"

	"github.com/matt-g-everett/propanim/demo"
	"github.com/stretchr/testify/assert"
)

func TestPitch(t *testing.T) {
	p := &Player{frequency: 440}

	assert.InDelta(t, 440.0, p.Pitch(demo.ActionRotate), 1e-9)
	assert.InDelta(t, 493.883, p.Pitch(demo.ActionTranslate), 1e-3)
	assert.InDelta(t, 880.0*0.890899, p.Pitch(demo.ActionShower), 1e-2)
	assert.InDelta(t, 440.0, p.Pitch(demo.Action("spin")), 1e-9)

	prev := 0.0
	for _, a := range demo.Actions {
		assert.Greater(t, p.Pitch(a), prev)
		prev = p.Pitch(a)
	}
}

func TestPlayLogsUnplayableTone(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	// Above the Nyquist frequency no sine can be generated, so the speaker is
	// never touched.
	p := &Player{frequency: 30000, duration: time.Millisecond}
	p.Play(demo.ActionRotate)

	assert.Contains(t, buf.String(), "No tone for rotate")
}

package demo

import (
	"math/rand"
	"testing"
	"time"

	"github.com/matt-g-everett/propanim/animate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScreen() *Screen {
	return NewScreen(animate.NewEngine(), 400, 600, 96, rand.New(rand.NewSource(1)))
}

func TestNewScreenLayout(t *testing.T) {
	s := newTestScreen()

	assert.Equal(t, 1, s.Container.ChildCount())
	assert.Equal(t, 152.0, s.Star.Left)
	assert.Equal(t, 252.0, s.Star.Top)
	for _, a := range Actions {
		require.NotNil(t, s.Button(a), a)
		assert.True(t, s.Button(a).IsEnabled(), a)
		assert.Equal(t, a.Label(), s.Button(a).Label)
	}

	s.Resize(200, 200)
	assert.Equal(t, 52.0, s.Star.Left)
	assert.Equal(t, 52.0, s.Star.Top)
}

func TestRotate(t *testing.T) {
	s := newTestScreen()
	e := s.Engine()

	require.True(t, s.Rotate())
	assert.False(t, s.RotateButton.IsEnabled())
	assert.Equal(t, -360.0, s.Star.Rotation())

	prev := s.Star.Rotation()
	for elapsed := 50 * time.Millisecond; elapsed < rotateDuration; elapsed += 50 * time.Millisecond {
		e.Advance(50 * time.Millisecond)
		assert.Greater(t, s.Star.Rotation(), prev)
		assert.False(t, s.RotateButton.IsEnabled())
		prev = s.Star.Rotation()
	}

	e.Advance(49 * time.Millisecond)
	assert.False(t, s.RotateButton.IsEnabled())
	e.Advance(time.Millisecond)
	assert.True(t, s.RotateButton.IsEnabled())
	assert.InDelta(t, 0.0, s.Star.Rotation(), 1e-9)
}

func TestRotateIgnoredWhileRunning(t *testing.T) {
	s := newTestScreen()
	require.True(t, s.Rotate())
	assert.False(t, s.Rotate())
	assert.Equal(t, 1, s.Engine().Running())
}

func TestTranslate(t *testing.T) {
	s := newTestScreen()
	e := s.Engine()

	require.True(t, s.Translate())
	e.Advance(animate.DefaultDuration)
	assert.InDelta(t, translateDistance, s.Star.TranslationX(), 1e-9)
	assert.False(t, s.TranslateButton.IsEnabled())

	e.Advance(animate.DefaultDuration - time.Millisecond)
	assert.False(t, s.TranslateButton.IsEnabled())
	e.Advance(time.Millisecond)
	assert.True(t, s.TranslateButton.IsEnabled())
	assert.InDelta(t, 0.0, s.Star.TranslationX(), 1e-9)
}

func TestScale(t *testing.T) {
	s := newTestScreen()
	e := s.Engine()

	require.True(t, s.Scale())
	e.Advance(animate.DefaultDuration / 2)
	assert.InDelta(t, s.Star.ScaleX(), s.Star.ScaleY(), 1e-9)
	assert.Greater(t, s.Star.ScaleX(), 1.0)

	e.Advance(animate.DefaultDuration / 2)
	assert.InDelta(t, scaleTarget, s.Star.ScaleX(), 1e-9)
	assert.InDelta(t, scaleTarget, s.Star.ScaleY(), 1e-9)
	assert.False(t, s.ScaleButton.IsEnabled())

	e.Advance(animate.DefaultDuration)
	assert.True(t, s.ScaleButton.IsEnabled())
	assert.InDelta(t, 1.0, s.Star.ScaleX(), 1e-9)
	assert.InDelta(t, 1.0, s.Star.ScaleY(), 1e-9)
}

func TestFade(t *testing.T) {
	s := newTestScreen()
	e := s.Engine()

	require.True(t, s.Fade())
	e.Advance(animate.DefaultDuration)
	assert.InDelta(t, 0.0, s.Star.Alpha(), 1e-9)
	assert.False(t, s.FadeButton.IsEnabled())

	e.Advance(animate.DefaultDuration)
	assert.True(t, s.FadeButton.IsEnabled())
	assert.InDelta(t, 1.0, s.Star.Alpha(), 1e-9)
}

func TestColorize(t *testing.T) {
	s := newTestScreen()
	e := s.Engine()

	require.True(t, s.Colorize())
	assert.Equal(t, "#000000", s.Container.Background().Hex())

	e.Advance(colorizeDuration)
	assert.Equal(t, "#ff0000", s.Container.Background().Hex())
	assert.False(t, s.ColorizeButton.IsEnabled())

	e.Advance(colorizeDuration - time.Millisecond)
	assert.False(t, s.ColorizeButton.IsEnabled())
	e.Advance(time.Millisecond)
	assert.True(t, s.ColorizeButton.IsEnabled())
	assert.Equal(t, "#000000", s.Container.Background().Hex())
}

func TestSingleShotAnimationsAreIndependent(t *testing.T) {
	s := newTestScreen()
	e := s.Engine()

	require.True(t, s.Rotate())
	require.True(t, s.Fade())
	assert.Equal(t, 2, e.Running())

	e.Advance(2 * animate.DefaultDuration)
	assert.True(t, s.FadeButton.IsEnabled())
	assert.False(t, s.RotateButton.IsEnabled())

	e.Advance(rotateDuration)
	assert.True(t, s.RotateButton.IsEnabled())
}

func TestShowerAddsAndRemovesOneElementPerPress(t *testing.T) {
	s := newTestScreen()
	e := s.Engine()

	for i := 1; i <= 5; i++ {
		require.True(t, s.Shower())
		assert.True(t, s.ShowerButton.IsEnabled())
		assert.Equal(t, 1+i, s.Container.ChildCount())
		assert.Equal(t, i, s.ShowerCount())
	}

	e.Advance(showerMinDuration - time.Millisecond)
	assert.Equal(t, 5, s.ShowerCount())

	e.Advance(showerMaxDuration)
	assert.Equal(t, 0, s.ShowerCount())
	assert.Equal(t, 1, s.Container.ChildCount())
	assert.Same(t, s.Container, s.Star.Parent())
	assert.Equal(t, 0, e.Running())
}

func TestShowerElementFalls(t *testing.T) {
	s := newTestScreen()
	e := s.Engine()

	require.True(t, s.Shower())
	star := s.Container.Children()[1]
	scale := star.ScaleX()
	assert.Equal(t, scale, star.ScaleY())
	assert.InDelta(t, -star.Height*scale, star.TranslationY(), 1e-9)
	assert.Equal(t, 0.0, star.Rotation())

	prevY := star.TranslationY()
	e.Advance(100 * time.Millisecond)
	assert.Greater(t, star.TranslationY(), prevY)
	assert.GreaterOrEqual(t, star.Rotation(), 0.0)
}

func TestShowerParamsRanges(t *testing.T) {
	s := newTestScreen()
	for i := 0; i < 10000; i++ {
		p := s.nextShowerParams()

		assert.GreaterOrEqual(t, p.Scale, showerMinScale)
		assert.Less(t, p.Scale, showerMaxScale)
		assert.GreaterOrEqual(t, p.Rotation, 0.0)
		assert.Less(t, p.Rotation, showerMaxRotation)
		assert.GreaterOrEqual(t, p.Duration, showerMinDuration)
		assert.Less(t, p.Duration, showerMaxDuration)

		half := s.Star.Width * p.Scale / 2
		assert.GreaterOrEqual(t, p.OffsetX, -half)
		assert.Less(t, p.OffsetX, s.Container.Width-half)
	}
}

func TestPressUnknownAction(t *testing.T) {
	s := newTestScreen()
	assert.False(t, s.Press(Action("spin")))
	assert.Nil(t, s.Button(Action("spin")))
}

func TestOnStartHooks(t *testing.T) {
	s := newTestScreen()
	var started []Action
	s.OnStart(func(a Action) { started = append(started, a) })

	for _, a := range Actions {
		require.True(t, s.Press(a), a)
	}
	assert.False(t, s.Press(ActionRotate))
	assert.Equal(t, Actions, started)
}

func TestSnapshot(t *testing.T) {
	s := newTestScreen()
	st := s.Snapshot()

	assert.Len(t, st.Buttons, len(Actions))
	for _, a := range Actions {
		assert.True(t, st.Buttons[a], a)
	}
	assert.Equal(t, "#000000", st.Background)
	assert.Equal(t, 1.0, st.Alpha)
	assert.Equal(t, 0, st.ShowerCount)

	s.Rotate()
	s.Shower()
	st = s.Snapshot()
	assert.False(t, st.Buttons[ActionRotate])
	assert.True(t, st.Buttons[ActionShower])
	assert.Equal(t, -360.0, st.Rotation)
	assert.Equal(t, 1, st.ShowerCount)
	assert.Equal(t, 3, st.Animations)
}

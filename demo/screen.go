package demo

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/propanim/animate"
	"github.com/matt-g-everett/propanim/util"
	"github.com/matt-g-everett/propanim/view"
)

const (
	rotateDuration    = 1000 * time.Millisecond
	translateDistance = 200.0
	scaleTarget       = 4.0
	colorizeDuration  = 500 * time.Millisecond

	showerMinScale    = 0.1
	showerMaxScale    = 1.6
	showerMaxRotation = 1080.0
	showerMinDuration = 500 * time.Millisecond
	showerMaxDuration = 2000 * time.Millisecond
)

var (
	black = colorful.Color{R: 0, G: 0, B: 0}
	red   = colorful.Color{R: 1, G: 0, B: 0}
)

// Screen is the single screen of the demo: a star in a frame and a button per
// Action. Every method must be called from the thread that ticks the engine.
type Screen struct {
	engine *animate.Engine
	rand   *rand.Rand

	Container *view.Container
	Star      *view.View

	RotateButton    *view.Button
	TranslateButton *view.Button
	ScaleButton     *view.Button
	FadeButton      *view.Button
	ColorizeButton  *view.Button
	ShowerButton    *view.Button

	buttons    map[Action]*view.Button
	startHooks []func(Action)
}

// NewScreen creates an instance of a Screen sized width x height with the star
// centred in it.
func NewScreen(engine *animate.Engine, width, height, starSize float64, rnd *rand.Rand) *Screen {
	s := new(Screen)
	s.engine = engine
	s.rand = rnd

	s.Container = view.NewContainer("frame", width, height, black)
	s.Star = view.NewView("star", starSize, starSize)
	s.Container.AddView(s.Star)
	s.Resize(width, height)

	s.RotateButton = view.NewButton(ActionRotate.Label())
	s.TranslateButton = view.NewButton(ActionTranslate.Label())
	s.ScaleButton = view.NewButton(ActionScale.Label())
	s.FadeButton = view.NewButton(ActionFade.Label())
	s.ColorizeButton = view.NewButton(ActionColorize.Label())
	s.ShowerButton = view.NewButton(ActionShower.Label())

	s.RotateButton.SetOnClickListener(s.rotater)
	s.TranslateButton.SetOnClickListener(s.translater)
	s.ScaleButton.SetOnClickListener(s.scaler)
	s.FadeButton.SetOnClickListener(s.fader)
	s.ColorizeButton.SetOnClickListener(s.colorizer)
	s.ShowerButton.SetOnClickListener(s.shower)

	s.buttons = map[Action]*view.Button{
		ActionRotate:    s.RotateButton,
		ActionTranslate: s.TranslateButton,
		ActionScale:     s.ScaleButton,
		ActionFade:      s.FadeButton,
		ActionColorize:  s.ColorizeButton,
		ActionShower:    s.ShowerButton,
	}

	return s
}

// Engine returns the engine the screen's animations run on.
func (s *Screen) Engine() *animate.Engine {
	return s.engine
}

// Button returns the button for a, or nil.
func (s *Screen) Button(a Action) *view.Button {
	return s.buttons[a]
}

// OnStart registers f to run whenever an action's animation starts.
func (s *Screen) OnStart(f func(Action)) {
	s.startHooks = append(s.startHooks, f)
}

// Press clicks the button for a. It reports false when the button is disabled
// because its animation is still running.
func (s *Screen) Press(a Action) bool {
	b, ok := s.buttons[a]
	if !ok {
		return false
	}
	return b.Click()
}

// Resize sets the container size and re-centres the star.
func (s *Screen) Resize(width, height float64) {
	s.Container.Resize(width, height)
	s.Star.Left = (width - s.Star.Width) / 2
	s.Star.Top = (height - s.Star.Height) / 2
}

// Rotate, Translate, Scale, Fade, Colorize and Shower click the matching button.
func (s *Screen) Rotate() bool    { return s.Press(ActionRotate) }
func (s *Screen) Translate() bool { return s.Press(ActionTranslate) }
func (s *Screen) Scale() bool     { return s.Press(ActionScale) }
func (s *Screen) Fade() bool      { return s.Press(ActionFade) }
func (s *Screen) Colorize() bool  { return s.Press(ActionColorize) }
func (s *Screen) Shower() bool    { return s.Press(ActionShower) }

// disableViewDuringAnimation keeps b disabled from the start of a to its end.
func (s *Screen) disableViewDuringAnimation(a animate.Animator, b *view.Button) {
	a.AddListener(animate.Listener{
		OnStart: func(animate.Animator) { b.SetEnabled(false) },
		OnEnd:   func(animate.Animator) { b.SetEnabled(true) },
	})
}

func (s *Screen) notifyOnStart(a animate.Animator, action Action) {
	a.AddListener(animate.Listener{
		OnStart: func(animate.Animator) {
			for _, f := range s.startHooks {
				f(action)
			}
		},
	})
}

func (s *Screen) rotater() {
	animator := animate.OfFloat(s.engine, view.Rotation(s.Star), -360, 0)
	animator.SetDuration(rotateDuration)
	s.disableViewDuringAnimation(animator, s.RotateButton)
	s.notifyOnStart(animator, ActionRotate)
	animator.Start()
}

func (s *Screen) translater() {
	animator := animate.OfFloat(s.engine, view.TranslationX(s.Star), translateDistance)
	animator.SetRepeatCount(1)
	animator.SetRepeatMode(animate.Reverse)
	s.disableViewDuringAnimation(animator, s.TranslateButton)
	s.notifyOnStart(animator, ActionTranslate)
	animator.Start()
}

func (s *Screen) scaler() {
	scaleX := animate.FloatValues(view.ScaleX(s.Star), scaleTarget)
	scaleY := animate.FloatValues(view.ScaleY(s.Star), scaleTarget)
	animator := animate.OfPropertyValues(s.engine, scaleX, scaleY)
	animator.SetRepeatCount(1)
	animator.SetRepeatMode(animate.Reverse)
	s.disableViewDuringAnimation(animator, s.ScaleButton)
	s.notifyOnStart(animator, ActionScale)
	animator.Start()
}

func (s *Screen) fader() {
	animator := animate.OfFloat(s.engine, view.Alpha(s.Star), 0)
	animator.SetRepeatCount(1)
	animator.SetRepeatMode(animate.Reverse)
	s.disableViewDuringAnimation(animator, s.FadeButton)
	s.notifyOnStart(animator, ActionFade)
	animator.Start()
}

func (s *Screen) colorizer() {
	animator := animate.OfArgb(s.engine, view.BackgroundColor(s.Container), black, red)
	animator.SetDuration(colorizeDuration)
	animator.SetRepeatCount(1)
	animator.SetRepeatMode(animate.Reverse)
	s.disableViewDuringAnimation(animator, s.ColorizeButton)
	s.notifyOnStart(animator, ActionColorize)
	animator.Start()
}

// showerParams are the random choices behind one shower star.
type showerParams struct {
	Scale    float64
	OffsetX  float64
	Rotation float64
	Duration time.Duration
}

func (s *Screen) nextShowerParams() showerParams {
	var p showerParams
	p.Scale = util.RandomRange(s.rand, showerMinScale, showerMaxScale)
	p.OffsetX = util.RandomRange(s.rand, 0, s.Container.Width) - s.Star.Width*p.Scale/2
	p.Rotation = util.RandomRange(s.rand, 0, showerMaxRotation)
	p.Duration = time.Duration(util.RandomRange(s.rand, float64(showerMinDuration), float64(showerMaxDuration)))
	return p
}

func (s *Screen) shower() {
	container := s.Container
	containerH := container.Height
	p := s.nextShowerParams()

	newStar := view.NewView(uuid.NewString(), s.Star.Width, s.Star.Height)
	container.AddView(newStar)

	newStar.SetScaleX(p.Scale)
	newStar.SetScaleY(p.Scale)
	starH := newStar.Height * p.Scale
	newStar.SetTranslationX(p.OffsetX)

	mover := animate.OfFloat(s.engine, view.TranslationY(newStar), -starH, containerH+starH)
	mover.SetInterpolator(animate.Accelerate(1))

	rotator := animate.OfFloat(s.engine, view.Rotation(newStar), p.Rotation)
	rotator.SetInterpolator(animate.Linear)

	set := animate.NewAnimatorSet()
	set.PlayTogether(mover, rotator)
	set.SetDuration(p.Duration)
	set.AddListener(animate.Listener{
		OnEnd: func(animate.Animator) {
			container.RemoveView(newStar)
		},
	})
	s.notifyOnStart(set, ActionShower)
	set.Start()
}

// ShowerCount is the number of shower stars currently in the container.
func (s *Screen) ShowerCount() int {
	n := s.Container.ChildCount()
	if s.Star.Parent() == s.Container {
		n--
	}
	return n
}

package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/propanim/demo"
	"github.com/matt-g-everett/propanim/view"
)

// A cell stands in for a block of pixels so the star keeps its proportions.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
	barRows    = 2
	frameTime  = 16 * time.Millisecond
)

var (
	starColour     = colorful.Color{R: 1.0, G: 0.84, B: 0.0}
	buttonStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	disabledStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	statusStyle    = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	backgroundRune = ' '
	starRune       = '█'
)

type span struct {
	start int
	end   int
}

// Terminal draws a demo.Screen with tcell and feeds it keys, mouse and time.
type Terminal struct {
	screen tcell.Screen
	demo   *demo.Screen
	bridge *demo.Bridge
	start  time.Time

	width   int
	height  int
	buttons []span
	mouse   tcell.ButtonMask
}

// New opens the terminal. The caller must Close it.
func New(d *demo.Screen, bridge *demo.Bridge) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	return newTerminal(screen, d, bridge), nil
}

func newTerminal(screen tcell.Screen, d *demo.Screen, bridge *demo.Bridge) *Terminal {
	t := new(Terminal)
	t.screen = screen
	t.demo = d
	t.bridge = bridge
	t.start = time.Now()
	t.resize()
	return t
}

func (t *Terminal) resize() {
	t.width, t.height = t.screen.Size()
	rows := t.height - barRows
	if rows < 1 {
		rows = 1
	}
	t.demo.Resize(float64(t.width)*cellWidth, float64(rows)*cellHeight)
	t.buttons = buttonSpans(t.demo)
}

// buttonSpans lays the buttons out left to right on the bottom row.
func buttonSpans(d *demo.Screen) []span {
	spans := make([]span, len(demo.Actions))
	x := 0
	for i, a := range demo.Actions {
		w := len(buttonLabel(i, d.Button(a).Label))
		spans[i] = span{start: x, end: x + w}
		x += w + 1
	}
	return spans
}

func buttonLabel(i int, label string) string {
	return fmt.Sprintf("[%d %s]", i+1, label)
}

// handleKey returns false when the user asked to quit.
func (t *Terminal) handleKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return false
	}
	if key != tcell.KeyRune {
		return true
	}
	if r == 'q' {
		return false
	}
	if r >= '1' && r < '1'+rune(len(demo.Actions)) {
		t.demo.Press(demo.Actions[r-'1'])
	}
	return true
}

// handleMouse clicks only when Button1 goes down; drags report the button as
// held on every motion.
func (t *Terminal) handleMouse(x, y int, buttons tcell.ButtonMask) {
	down := buttons&tcell.Button1 != 0 && t.mouse&tcell.Button1 == 0
	t.mouse = buttons
	if down {
		t.handleClick(x, y)
	}
}

func (t *Terminal) handleClick(x, y int) {
	if y != t.height-1 {
		return
	}
	for i, s := range t.buttons {
		if x >= s.start && x < s.end {
			t.demo.Press(demo.Actions[i])
			return
		}
	}
}

func (t *Terminal) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		t.handleMouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		t.screen.Sync()
		t.resize()
	}
	return true
}

func (t *Terminal) update() {
	t.demo.Engine().Tick(time.Since(t.start))
	t.bridge.Drain(t.demo)
	t.bridge.Publish(t.demo.Snapshot())
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (t *Terminal) draw() {
	c := t.demo.Container
	bg := c.Background()
	rows := t.height - barRows
	if rows < 1 {
		rows = 1
	}

	bgStyle := tcell.StyleDefault.Background(toTcell(bg))
	for y := 0; y < rows; y++ {
		for x := 0; x < t.width; x++ {
			t.screen.SetContent(x, y, backgroundRune, nil, bgStyle)
		}
	}

	for _, v := range c.Children() {
		t.drawStar(v, bg, rows)
	}

	t.drawStatus(rows)
	t.drawButtons()
	t.screen.Show()
}

// drawStar fills every cell whose centre falls inside the star.
func (t *Terminal) drawStar(v *view.View, bg colorful.Color, rows int) {
	if v.Alpha() <= 0 {
		return
	}

	points := view.StarShape(v)
	x0, y0, x1, y1 := v.Bounds()
	colour := bg.BlendRgb(starColour, v.Alpha())
	style := tcell.StyleDefault.Foreground(toTcell(colour)).Background(toTcell(bg))

	for cy := clamp(int(y0/cellHeight), 0, rows); cy <= clamp(int(y1/cellHeight), 0, rows-1); cy++ {
		for cx := clamp(int(x0/cellWidth), 0, t.width); cx <= clamp(int(x1/cellWidth), 0, t.width-1); cx++ {
			px := (float64(cx) + 0.5) * cellWidth
			py := (float64(cy) + 0.5) * cellHeight
			if view.Contains(points, px, py) {
				t.screen.SetContent(cx, cy, starRune, nil, style)
			}
		}
	}
}

func (t *Terminal) drawStatus(row int) {
	star := t.demo.Star
	status := fmt.Sprintf(" rotation %6.1f  x %6.1f  scale %4.2f  alpha %4.2f  shower %d ",
		star.Rotation(), star.TranslationX(), star.ScaleX(), star.Alpha(), t.demo.ShowerCount())
	t.drawText(0, row, status, statusStyle)
}

func (t *Terminal) drawButtons() {
	row := t.height - 1
	for x := 0; x < t.width; x++ {
		t.screen.SetContent(x, row, ' ', nil, statusStyle)
	}
	for i, a := range demo.Actions {
		b := t.demo.Button(a)
		style := buttonStyle
		if !b.IsEnabled() {
			style = disabledStyle
		}
		t.drawText(t.buttons[i].start, row, buttonLabel(i, b.Label), style)
	}
}

func (t *Terminal) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= t.width {
			return
		}
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Run draws frames until the user quits or ctx is done.
func (t *Terminal) Run(ctx context.Context) {
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-eventChan:
			if !t.handleInput(ev) {
				return
			}
		case <-ticker.C:
			t.update()
			t.draw()
		}
	}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

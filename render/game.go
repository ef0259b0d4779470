package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/propanim/demo"
	"github.com/matt-g-everett/propanim/view"
)

var (
	starColour     = colorful.Color{R: 1.0, G: 0.84, B: 0.0}
	barColour      = color.RGBA{R: 20, G: 25, B: 35, A: 255}
	buttonColour   = color.RGBA{R: 40, G: 80, B: 160, A: 255}
	hoverColour    = color.RGBA{R: 60, G: 110, B: 200, A: 255}
	pressedColour  = color.RGBA{R: 30, G: 60, B: 120, A: 255}
	disabledColour = color.RGBA{R: 50, G: 55, B: 65, A: 255}
	borderColour   = color.RGBA{R: 100, G: 150, B: 255, A: 255}
)

var actionKeys = []ebiten.Key{
	ebiten.KeyDigit1,
	ebiten.KeyDigit2,
	ebiten.KeyDigit3,
	ebiten.KeyDigit4,
	ebiten.KeyDigit5,
	ebiten.KeyDigit6,
}

// Game draws a demo.Screen in an ebiten window and feeds it input and time.
type Game struct {
	ctx    context.Context
	screen *demo.Screen
	bridge *demo.Bridge
	start  time.Time

	width  int
	height int

	hovered int
	pressed int

	whiteSubImage *ebiten.Image
	vertices      []ebiten.Vertex
	indices       []uint16
}

// NewGame creates an instance of a Game for a window of the given size. The
// game ends when ctx is done.
func NewGame(ctx context.Context, screen *demo.Screen, bridge *demo.Bridge, width, height int) *Game {
	g := new(Game)
	g.ctx = ctx
	g.screen = screen
	g.bridge = bridge
	g.start = time.Now()
	g.hovered = -1
	g.pressed = -1

	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	g.whiteSubImage = white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	g.resize(width, height)
	return g
}

func (g *Game) resize(width, height int) {
	g.width = width
	g.height = height
	frameHeight := height - barHeight(len(demo.Actions))
	if frameHeight < 1 {
		frameHeight = 1
	}
	g.screen.Resize(float64(width), float64(frameHeight))
}

// Update advances the animations and handles input.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	g.screen.Engine().Tick(time.Since(g.start))
	g.bridge.Drain(g.screen)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	for i, k := range actionKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.screen.Press(demo.Actions[i])
		}
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.hovered = buttonAt(mouseX, mouseY, len(demo.Actions), g.width, g.height)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressed = g.hovered
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.pressed >= 0 && g.pressed == g.hovered {
			g.screen.Press(demo.Actions[g.pressed])
		}
		g.pressed = -1
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		if i := buttonAt(x, y, len(demo.Actions), g.width, g.height); i >= 0 {
			g.screen.Press(demo.Actions[i])
		}
	}

	g.bridge.Publish(g.screen.Snapshot())
	return nil
}

// Draw paints the frame, every star in it and the button bar.
func (g *Game) Draw(screen *ebiten.Image) {
	c := g.screen.Container
	vector.DrawFilledRect(screen, 0, 0, float32(c.Width), float32(c.Height), c.Background().Clamped(), false)

	for _, v := range c.Children() {
		g.drawStar(screen, v)
	}

	g.drawButtons(screen)
}

func (g *Game) drawStar(screen *ebiten.Image, v *view.View) {
	if v.Alpha() <= 0 {
		return
	}

	points := view.StarShape(v)
	cx, cy := v.Center()
	r, gr, b := starColour.R, starColour.G, starColour.B
	a := float32(v.Alpha())

	g.vertices = g.vertices[:0]
	g.indices = g.indices[:0]
	g.vertices = append(g.vertices, ebiten.Vertex{
		DstX: float32(cx), DstY: float32(cy), SrcX: 1, SrcY: 1,
		ColorR: float32(r), ColorG: float32(gr), ColorB: float32(b), ColorA: a,
	})
	for _, p := range points {
		g.vertices = append(g.vertices, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y), SrcX: 1, SrcY: 1,
			ColorR: float32(r), ColorG: float32(gr), ColorB: float32(b), ColorA: a,
		})
	}
	n := uint16(len(points))
	for i := uint16(1); i <= n; i++ {
		next := i%n + 1
		g.indices = append(g.indices, 0, i, next)
	}

	screen.DrawTriangles(g.vertices, g.indices, g.whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (g *Game) drawButtons(screen *ebiten.Image) {
	top := g.height - barHeight(len(demo.Actions))
	vector.DrawFilledRect(screen, 0, float32(top), float32(g.width), float32(g.height-top), barColour, false)

	for i, a := range demo.Actions {
		b := g.screen.Button(a)
		x, y, w, h := buttonRect(i, len(demo.Actions), g.width, g.height)

		var bg color.Color
		switch {
		case !b.IsEnabled():
			bg = disabledColour
		case g.pressed == i && g.hovered == i:
			bg = pressedColour
		case g.hovered == i:
			bg = hoverColour
		default:
			bg = buttonColour
		}

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bg, false)
		if b.IsEnabled() {
			vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, borderColour, false)
		}

		label := fmt.Sprintf("%d %s", i+1, b.Label)
		ebitenutil.DebugPrintAt(screen, label, x+(w-len(label)*6)/2, y+(h-16)/2)
	}
}

// Layout keeps the logical screen the same size as the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed or ctx is done.
func Run(ctx context.Context, screen *demo.Screen, bridge *demo.Bridge, config demo.Config) error {
	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetWindowTitle(config.Window.Title + " - 1-6: animate, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := NewGame(ctx, screen, bridge, config.Window.Width, config.Window.Height)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

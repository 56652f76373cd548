package game

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/ncruces/zenity"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/cloth/internal/cloth"
	"github.com/iburimskiy/cloth/internal/config"
)

// Game hosts a cloth mesh inside the ebiten run loop: it samples the keys
// and the clock each tick and renders the mesh each frame.
type Game struct {
	mesh  *cloth.Mesh
	snap  *snapSynth
	start time.Time

	// host collaborators, swapped out in tests
	now     func() uint32
	pressed func(ebiten.Key) bool
	confirm func() (bool, error)
	inform  func() error

	// input edge detection
	prevKey map[ebiten.Key]bool

	started bool
	heatmap bool
	muted   bool
	elapsed time.Duration
	lastErr error
}

func New(s config.Settings) (*Game, error) {
	mesh, err := cloth.NewMesh(s.Cloth)
	if err != nil {
		return nil, err
	}
	g := &Game{
		mesh:    mesh,
		snap:    newSnapSynth(beep.SampleRate(config.SampleRate)),
		start:   time.Now(),
		pressed: ebiten.IsKeyPressed,
		confirm: confirmReset,
		inform:  showHelp,
		prevKey: map[ebiten.Key]bool{},
	}
	g.now = func() uint32 { return uint32(time.Since(g.start).Milliseconds()) }
	mesh.OnBreak = func(int) { g.snap.trigger() }

	if s.Audio {
		if err := startAudio(g.snap); err != nil {
			fmt.Printf("Audio disabled: %v\n", err)
		} else {
			fmt.Printf("Audio started at %d Hz\n", config.SampleRate)
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := g.pressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyT) {
		g.heatmap = !g.heatmap
	}
	if justPressed(ebiten.KeyM) {
		g.muted = !g.muted
		g.snap.setMuted(g.muted)
	}
	if justPressed(ebiten.KeyH) {
		if err := g.inform(); err != nil && !errors.Is(err, zenity.ErrCanceled) {
			g.lastErr = err
		}
		g.mesh.Sync(g.now())
	}
	if justPressed(ebiten.KeyR) {
		ok, err := g.confirm()
		if err != nil {
			g.lastErr = err
		}
		if ok {
			g.mesh.Reset()
			fmt.Println("Cloth reset")
		}
		g.mesh.Sync(g.now())
	}

	now := g.now()
	if !g.started {
		// RunGame opens the window before the first tick; none of that
		// startup time belongs to the simulation.
		g.mesh.Sync(now)
		g.started = true
	}
	g.elapsed = time.Duration(now) * time.Millisecond
	g.mesh.Update(now, readIntent(g.pressed))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	cv := newScreenCanvas(screen)
	if g.heatmap {
		g.drawHeatmap(cv)
	} else {
		g.mesh.Render(cv)
	}
	g.drawHUD(screen)
}

// drawHeatmap renders intact links coloured by how close they are to
// tearing, then the particles on top.
func (g *Game) drawHeatmap(cv cloth.Canvas) {
	cv.Clear()
	ps := g.mesh.Particles()
	for _, c := range g.mesh.Constraints() {
		if c.Broken() {
			continue
		}
		r, gr, b := hsvToRgb(strainHue(c.Strain(ps)), 0.9, 1)
		cv.SetColor(color.RGBA{R: r, G: gr, B: b, A: 255})
		c.Render(cv, ps)
	}
	cv.SetColor(cloth.ParticleColor)
	for i := range ps {
		ps[i].Render(cv)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	total := len(g.mesh.Constraints())
	torn := g.mesh.BrokenCount()
	mode := "plain"
	if g.heatmap {
		mode = "strain"
	}
	status := fmt.Sprintf("%s  links %d/%d  %s", formatDuration(g.elapsed), total-torn, total, mode)
	if g.muted {
		status += "  muted"
	}
	drawText(screen, status, 4, 3, color.White)
	if g.lastErr != nil {
		drawText(screen, "Error: "+g.lastErr.Error(), 4, 17, color.RGBA{R: 255, G: 80, B: 80, A: 255})
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %0.1f", ebiten.ActualTPS()), 4, config.ScreenHeight-16)
}

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, hudFace, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/wherewasi/ecs"
	"github.com/milk9111/wherewasi/ecs/component"
	"github.com/milk9111/wherewasi/ecs/system"
	"github.com/milk9111/wherewasi/scene"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// screen pixels per world unit
	unitScale = 24
)

type Game struct {
	world     *ecs.World
	hotReload *system.HotReloadSystem

	ents     []ecs.Entity
	names    []string
	selected int

	closing bool
}

func NewGame(dir, scenePath string, watch bool) (*Game, error) {
	w := ecs.NewWorld()

	g := &Game{world: w}

	spec := defaultScene()
	if scenePath != "" {
		loaded, err := scene.Load(scenePath)
		if err != nil {
			return nil, err
		}
		spec = loaded
	}

	ents, err := scene.Build(w, spec)
	if err != nil {
		return nil, err
	}
	g.ents = ents
	for _, es := range spec.Entities {
		g.names = append(g.names, es.Name)
	}

	w.AddSystem(system.NewLoadSystem(dir))
	if watch {
		hr, err := system.NewHotReloadSystem(dir)
		if err != nil {
			return nil, err
		}
		g.hotReload = hr
		w.AddSystem(hr)
	}
	w.AddSystem(system.NewSaveSystem(dir))

	return g, nil
}

func defaultScene() *scene.Spec {
	return &scene.Spec{
		Entities: []scene.EntitySpec{
			{
				Name:    "camera",
				Persist: "camera",
				Transform: scene.TransformSpec{
					Translation: [3]float32{10, 10, 10},
				},
			},
			{
				Name:    "crate",
				Persist: "crate",
				Transform: scene.TransformSpec{
					Translation: [3]float32{-4, 2, 0},
					Scale:       [3]float32{2, 2, 2},
				},
			},
		},
	}
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() && !g.closing {
		g.closing = true
		g.world.Events().Push(ecs.Event{Type: ecs.EventWindowClosing})
	}

	g.handleInput()
	g.world.Update()

	if g.closing {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) handleInput() {
	if len(g.ents) == 0 {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.selected = (g.selected + 1) % len(g.ents)
	}

	tf, ok := ecs.Get(g.world, g.ents[g.selected], component.TransformComponent.Kind())
	if !ok {
		return
	}

	const step = float32(0.1)
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		tf.Translation[0] -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		tf.Translation[0] += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		tf.Translation[1] += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		tf.Translation[1] -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		tf.Translation[2] -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		tf.Translation[2] += step
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		*tf = component.IdentityTransform()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	for i, e := range g.ents {
		tf, ok := ecs.Get(g.world, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		// Top-down view: world x/y onto the screen, z shades the fill.
		x := float32(baseWidth)/2 + tf.Translation.X()*unitScale
		y := float32(baseHeight)/2 - tf.Translation.Y()*unitScale
		w := tf.Scale.X() * unitScale
		h := tf.Scale.Y() * unitScale

		shade := uint8(min(max(int(128+tf.Translation.Z()*8), 0), 255))
		fill := color.RGBA{R: shade, G: shade, B: 255, A: 255}
		vector.FillRect(screen, x-w/2, y-h/2, w, h, fill, false)
		if i == g.selected {
			vector.StrokeRect(screen, x-w/2, y-h/2, w, h, 2, color.RGBA{R: 255, G: 200, B: 0, A: 255}, false)
		}
	}

	name := ""
	pose := ""
	if g.selected < len(g.ents) {
		name = g.names[g.selected]
		if tf, ok := ecs.Get(g.world, g.ents[g.selected], component.TransformComponent.Kind()); ok {
			pose = fmt.Sprintf("t=(%.2f, %.2f, %.2f) s=(%.2f, %.2f, %.2f)",
				tf.Translation.X(), tf.Translation.Y(), tf.Translation.Z(),
				tf.Scale.X(), tf.Scale.Y(), tf.Scale.Z())
		}
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"arrows/Q/E: move    tab: select    r: reset\nselected: %s %s\nclose the window to save", name, pose))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) Close() {
	if g.hotReload != nil {
		_ = g.hotReload.Close()
	}
}

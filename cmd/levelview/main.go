//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tilesmith/pkg/engine/rng"
	"tilesmith/pkg/engine/world"
	"tilesmith/pkg/game/generator"
	"tilesmith/pkg/game/level"
	"tilesmith/pkg/game/renderer/pixels"
)

// Viewer adapts a generated level to the ebiten.Game interface.
type Viewer struct {
	lvl    *level.Level
	canvas *pixels.Canvas
	image  *ebiten.Image
	scale  int
	// carve is the number of queued maze moves applied per tick
	carve int
}

// load builds the canvas for lvl and emits the level into it
func (v *Viewer) load(lvl *level.Level) error {
	g := lvl.Result.Grid
	canvas, err := pixels.NewCanvas(g.Width(), g.Height())
	if err != nil {
		return err
	}
	if len(lvl.Result.Moves) > 0 {
		canvas.Fill(world.Solid)
	}
	if err := level.Emit(lvl, canvas); err != nil {
		return err
	}

	v.lvl = lvl
	v.canvas = canvas
	v.image = ebiten.NewImage(g.Width(), g.Height())
	ebiten.SetWindowTitle(fmt.Sprintf("tilesmith: %s level %d (seed %d)", lvl.Name, lvl.Depth, lvl.Seed))
	log.Println(lvl.Summary())
	return nil
}

// Update handles keys and advances maze carving
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	var next *level.Level
	var err error
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		next, err = level.Reset(v.lvl, nil)
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		next, err = level.Next(v.lvl, nil)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		opts := level.Options{Generator: v.lvl.Name, Params: v.lvl.Params, Seed: rng.NewSeed(), HasSeed: true, Depth: v.lvl.Depth}
		next, err = level.Build(opts, nil)
	}
	if err != nil {
		log.Printf("Cannot build level: %v", err)
	} else if next != nil {
		if err := v.load(next); err != nil {
			return err
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		for v.canvas.Step() {
		}
	}
	for i := 0; i < v.carve && v.canvas.Step(); i++ {
	}
	return nil
}

// Draw blits the canvas, scaled up
func (v *Viewer) Draw(screen *ebiten.Image) {
	v.image.WritePixels(v.canvas.Pix())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(v.scale), float64(v.scale))
	screen.DrawImage(v.image, op)
}

// Layout returns the logical screen size
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := v.canvas.Size()
	return w * v.scale, h * v.scale
}

func main() {
	name := flag.String("gen", generator.DefaultName, "generator to run")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	scale := flag.Int("scale", 8, "pixels per tile")
	carve := flag.Int("carve", 1, "maze moves carved per tick")
	tps := flag.Int("tps", 30, "ticks per second")
	params := map[string]string{}
	flag.Func("set", "generator parameter as key=value (repeatable)", func(s string) error {
		k, v, ok := strings.Cut(s, "=")
		if !ok || k == "" {
			return fmt.Errorf("expected key=value, got %q", s)
		}
		params[k] = v
		return nil
	})
	flag.Parse()

	lvl, err := level.Build(level.Options{Generator: *name, Params: params, Seed: *seed, HasSeed: *seed != 0}, nil)
	if err != nil {
		log.Fatal(err)
	}

	v := &Viewer{scale: max(*scale, 1), carve: max(*carve, 1)}
	if err := v.load(lvl); err != nil {
		log.Fatal(err)
	}

	w, h := v.canvas.Size()
	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize(w*v.scale, h*v.scale)

	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

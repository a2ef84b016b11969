package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"tilesmith/pkg/engine/terminal"
	"tilesmith/pkg/game/devtools"
	"tilesmith/pkg/game/generator"
	"tilesmith/pkg/game/level"
	"tilesmith/pkg/game/renderer/tui"
)

// defaultLanguage is used when TILESMITH_LANG is not set
const defaultLanguage = "en_GB"

var colorError = color.Style{color.FgRed, color.OpBold}

// params collects repeated -set key=value flags
type params map[string]string

func (p params) String() string {
	pairs := make([]string, 0, len(p))
	for k, v := range p {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

func (p params) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok || k == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	p[k] = v
	return nil
}

// Config holds the command line options
type Config struct {
	Generator string
	Params    params
	Seed      int64
	Depth     int
	Levels    int
	NoColor   bool
	NoLegend  bool
	Quiet     bool
	DumpPath  string
	HTML      bool
	DevMap    bool
	List      bool
}

// Bind registers the flags on fs
func (c *Config) Bind(fs *flag.FlagSet) {
	c.Params = params{}
	fs.StringVar(&c.Generator, "gen", generator.DefaultName, "generator to run (see -list)")
	fs.Var(c.Params, "set", "generator parameter as key=value (repeatable)")
	fs.Int64Var(&c.Seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.IntVar(&c.Depth, "level", 1, "starting level number")
	fs.IntVar(&c.Levels, "levels", 1, "number of successive levels to generate")
	fs.BoolVar(&c.NoColor, "no-color", false, "disable coloured output")
	fs.BoolVar(&c.NoLegend, "no-legend", false, "do not print the cell legend")
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress log output")
	fs.StringVar(&c.DumpPath, "dump", "", "write a debug dump of the last level to this file")
	fs.BoolVar(&c.HTML, "html", false, "save an HTML screenshot of the last level")
	fs.BoolVar(&c.DevMap, "devmap", false, "print the developer map with every cell kind")
	fs.BoolVar(&c.List, "list", false, "list the available generators and exit")
}

// Options converts the flags into level build options
func (c *Config) Options() level.Options {
	return level.Options{
		Generator: c.Generator,
		Params:    c.Params,
		Seed:      c.Seed,
		HasSeed:   c.Seed != 0,
		Depth:     c.Depth,
	}
}

func initGettext() {
	lang := os.Getenv("TILESMITH_LANG")
	if lang == "" {
		lang = defaultLanguage
	}
	gotext.Configure("locales", lang, "default")
}

func main() {
	cfg := &Config{}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	initGettext()

	if !terminal.IsTerminal(os.Stdout) {
		cfg.NoColor = true
	}
	if cfg.NoColor {
		color.Enable = false
	}
	if cfg.Quiet {
		log.SetOutput(io.Discard)
	}

	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, colorError.Sprint(gotext.Get("Error: %v", err)))
		os.Exit(1)
	}
}

func run(cfg *Config, out io.Writer) error {
	if cfg.List {
		for _, name := range generator.Names() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	view := tui.New(out)
	view.NoColor = cfg.NoColor
	view.Legend = !cfg.NoLegend

	if cfg.DevMap {
		lvl := devtools.DevLevel()
		view.Title = lvl.Name
		return finish(cfg, out, lvl, view)
	}

	if cfg.Levels < 1 {
		return fmt.Errorf("-levels must be at least 1, got %d", cfg.Levels)
	}

	view.Title = cfg.Generator
	lvl, err := level.Build(cfg.Options(), view)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, lvl.Summary())
	warnWidth(lvl)

	for i := 1; i < cfg.Levels; i++ {
		fmt.Fprintln(out)
		lvl, err = level.Next(lvl, view)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, lvl.Summary())
	}

	return finish(cfg, out, lvl, nil)
}

// finish renders a level that was not emitted during the build, then writes
// the requested debug outputs.
func finish(cfg *Config, out io.Writer, lvl *level.Level, view *tui.Renderer) error {
	if view != nil {
		if err := level.Emit(lvl, view); err != nil {
			return err
		}
	}

	if cfg.DumpPath != "" {
		path, err := devtools.DumpToFile(cfg.DumpPath, lvl)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, gotext.Get("Map dump written to %s", path))
	}

	if cfg.HTML {
		path, err := devtools.SaveScreenshotHTML(lvl)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, gotext.Get("Screenshot saved to %s", path))
	}
	return nil
}

// warnWidth logs when the map is wider than the attached terminal
func warnWidth(lvl *level.Level) {
	if !terminal.IsTerminal(os.Stdout) {
		return
	}
	if w := lvl.Result.Grid.Width(); !terminal.FitsWidth(w) {
		tw, _ := terminal.GetSize()
		log.Printf("Map is %d columns wide but the terminal has %d; lines will wrap", w, tw)
	}
}

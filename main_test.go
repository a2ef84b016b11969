package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tilesmith/pkg/game/generator"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	fs := flag.NewFlagSet("tilesmith", flag.ContinueOnError)
	cfg := &Config{}
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%v): %v", args, err)
	}
	return cfg
}

func TestConfig_Defaults(t *testing.T) {
	cfg := parse(t)
	if cfg.Generator != generator.DefaultName {
		t.Errorf("Generator = %q, want %q", cfg.Generator, generator.DefaultName)
	}
	opts := cfg.Options()
	if opts.HasSeed {
		t.Error("HasSeed = true without -seed")
	}
	if opts.Depth != 1 {
		t.Errorf("Depth = %d, want 1", opts.Depth)
	}
}

func TestConfig_RepeatedSet(t *testing.T) {
	cfg := parse(t, "-gen", "cave", "-set", "width=30", "-set", "height=20", "-seed", "9")
	if cfg.Params["width"] != "30" || cfg.Params["height"] != "20" {
		t.Errorf("Params = %v, want width=30 and height=20", cfg.Params)
	}
	opts := cfg.Options()
	if !opts.HasSeed || opts.Seed != 9 {
		t.Errorf("seed = %d (HasSeed %v), want 9", opts.Seed, opts.HasSeed)
	}
}

func TestParams_RejectsMalformed(t *testing.T) {
	p := params{}
	for _, s := range []string{"width", "=3"} {
		if err := p.Set(s); err == nil {
			t.Errorf("Set(%q) error = nil, want error", s)
		}
	}
	if err := p.Set("walls=false"); err != nil || p["walls"] != "false" {
		t.Errorf("Set(walls=false) = %v, params %v", err, p)
	}
}

func TestRun_List(t *testing.T) {
	var out bytes.Buffer
	if err := run(parse(t, "-list"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := strings.Fields(out.String())
	if strings.Join(got, ",") != strings.Join(generator.Names(), ",") {
		t.Errorf("-list printed %v, want %v", got, generator.Names())
	}
}

func TestRun_PrintsLevels(t *testing.T) {
	cfg := parse(t, "-gen", "division", "-set", "size=9", "-seed", "2", "-levels", "2", "-no-color")
	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	text := out.String()
	if n := strings.Count(text, "division level"); n != 2 {
		t.Errorf("printed %d summaries, want 2:\n%s", n, text)
	}
	if !strings.Contains(text, "level 2, seed 3") {
		t.Errorf("second level summary missing:\n%s", text)
	}
	if !strings.Contains(text, "#########\n") {
		t.Errorf("map border missing:\n%s", text)
	}
}

func TestRun_Dump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.txt")
	cfg := parse(t, "-gen", "walk", "-set", "width=15", "-set", "height=15", "-seed", "6", "-no-color", "-dump", path)
	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "generator: walk") {
		t.Error("dump does not name the generator")
	}
}

func TestRun_DevMap(t *testing.T) {
	var out bytes.Buffer
	if err := run(parse(t, "-devmap", "-no-color"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(out.String(), "devmap\n") {
		t.Errorf("dev map output = %q", out.String())
	}
}

func TestRun_Errors(t *testing.T) {
	err := run(parse(t, "-gen", "labyrinth"), &bytes.Buffer{})
	if !errors.Is(err, generator.ErrUnknownGenerator) {
		t.Errorf("unknown generator error = %v", err)
	}
	if err := run(parse(t, "-levels", "0"), &bytes.Buffer{}); err == nil {
		t.Error("-levels 0 error = nil, want error")
	}
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/hilite/go-hilite/render"
)

type MainConfig struct {
	Lang  string `cli:"name=lang desc='language id for keyword highlighting'"`
	Theme string `cli:"name=theme desc='dark, light, or path to a YAML theme file'"`
	Color bool   `cli:"name=color desc='force ANSI color even when output is not a terminal'"`
	HTML  bool   `cli:"name=html desc='emit HTML spans instead of ANSI text'"`

	Main   *cli.Command
	View   *cli.Command
	Tokens *cli.Command
}

// extLangs maps file extensions to language ids when -lang is not given.
// The library resolves exact ids only; extension shorthand lives here.
var extLangs = map[string]string{
	".js":  "javascript",
	".mjs": "javascript",
	".jsx": "javascript",
	".ts":  "typescript",
	".tsx": "typescript",
	".py":  "python",
}

func (cfg *MainConfig) language(file string) string {
	if cfg.Lang != "" {
		return cfg.Lang
	}
	return extLangs[filepath.Ext(file)]
}

func (cfg *MainConfig) loadTheme() (*render.Theme, error) {
	switch cfg.Theme {
	case "", "dark":
		return render.Dark(), nil
	case "light":
		return render.Light(), nil
	}
	data, err := os.ReadFile(cfg.Theme)
	if err != nil {
		return nil, fmt.Errorf("could not read theme %q: %w", cfg.Theme, err)
	}
	return render.ParseTheme(data)
}

func (cfg *MainConfig) renderer(w io.Writer) (render.Renderer, error) {
	if cfg.HTML {
		return render.NewHTML(), nil
	}
	t, err := cfg.loadTheme()
	if err != nil {
		return nil, err
	}
	if cfg.Color {
		color.NoColor = false
	} else if f, ok := w.(*os.File); ok && !isatty.IsTerminal(f.Fd()) {
		color.NoColor = true
	}
	return render.NewANSI(t), nil
}

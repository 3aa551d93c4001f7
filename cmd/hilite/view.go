package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/hilite/go-hilite"
	"github.com/hilite/go-hilite/render"
)

func view(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	r, err := cfg.renderer(cc.Out)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return viewReader(cfg, r, cc.Out, cc.In, "")
	}
	for _, file := range args {
		if err := viewFile(cfg, r, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func viewFile(cfg *MainConfig, r render.Renderer, w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := viewReader(cfg, r, w, f, file); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func viewReader(cfg *MainConfig, r render.Renderer, w io.Writer, in io.Reader, file string) error {
	src, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	return hilite.Highlight(w, string(src),
		hilite.WithLanguage(cfg.language(file)),
		hilite.WithRenderer(r),
	)
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/hilite/go-hilite"
)

func tokens(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := dumpFile(cfg, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func dumpFile(cfg *MainConfig, w io.Writer, file string) error {
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
	src, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", file, err)
	}
	for _, tok := range hilite.Tokenize(string(src), cfg.language(file)) {
		if _, err := fmt.Fprintf(w, "%-8s %q\n", tok.Type, tok.Value); err != nil {
			return err
		}
	}
	return nil
}

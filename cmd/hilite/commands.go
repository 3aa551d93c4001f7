package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "hilite").
		WithSynopsis("hilite [opts] command [files]").
		WithDescription("hilite highlights source files with a lightweight fallback tokenizer.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmt.Errorf("%w: expected a command: view or tokens", cli.ErrUsage)
		}).
		WithSubs(
			ViewCommand(cfg),
			TokensCommand(cfg))
}

func ViewCommand(cfg *MainConfig) *cli.Command {
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("highlight source files (or stdin) and write them to stdout").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func TokensCommand(cfg *MainConfig) *cli.Command {
	cmd := cli.NewCommand("tokens").
		WithAliases("t", "tok").
		WithSynopsis("tokens [files]").
		WithDescription("dump the token stream of source files, one token per line").
		WithRun(func(cc *cli.Context, args []string) error {
			return tokens(cfg, cc, args)
		})
	cfg.Tokens = cmd
	return cmd
}

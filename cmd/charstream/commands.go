package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "charstream").
		WithSynopsis("charstream [opts] command [opts] [files]").
		WithDescription("charstream decodes markup input in legacy and Unicode encodings.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return charstreamMain(cfg, cc, args)
		}).
		WithSubs(
			DecodeCommand(cfg),
			DumpCommand(cfg),
			TablesCommand(cfg))
}

func DecodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DecodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Decode, "decode").
		WithAliases("d", "cat").
		WithSynopsis("decode [opts] [files]").
		WithDescription("decode files and write them as UTF-8 with normalized line endings and expanded tabs").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return decode(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [opts] [files]").
		WithDescription("print one line per decoded character with its line and column").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func TablesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TablesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Tables, "tables").
		WithAliases("t").
		WithSynopsis("tables windows-1252|macroman|symbol").
		WithDescription("print a code page mapping").
		WithRun(func(cc *cli.Context, args []string) error {
			return tables(cfg, cc, args)
		})
}

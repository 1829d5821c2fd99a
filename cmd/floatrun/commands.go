package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "floatrun").
		WithSynopsis("floatrun [opts] command [opts]").
		WithDescription("floatrun finds runs of binary values in a given range.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return frMain(cfg, cc, args)
		}).
		WithSubs(
			ScanCommand(cfg),
			GenCommand(cfg),
			DiffCommand(cfg))
}

func ScanCommand(mainCfg *MainConfig) *cli.Command {
	cfg := defaultScanConfig(mainCfg)
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("scan").
		WithAliases("s").
		WithSynopsis("scan [-min v] [-max v] [-where expr] [-minlen n] [files]").
		WithDescription("print runs of consecutive values accepted by the range and expression. " +
			"With no files, scan generated sample data; '-' reads stdin.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return scanFiles(cfg, cc, args)
		})
	cfg.Scan = cmd
	return cmd
}

func GenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := defaultGenConfig(mainCfg)
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("gen").
		WithAliases("g").
		WithSynopsis("gen [-n N] [-lo v] [-hi v] [-seed s] [-type t] <file>").
		WithDescription("write uniformly distributed sample values, '-' for stdout").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gen(cfg, cc, args)
		})
	cfg.Gen = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Type: "f32"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff [-min v] [-max v] [-where expr] [-minlen n] <file1> <file2>").
		WithDescription("compare the runs found in two files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/scott-cotton/cli"
	"github.com/signadot/floatrun/report"
)

func gen(cfg *GenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Gen.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: gen requires one output file", cli.ErrUsage)
	}
	if cfg.N < 0 {
		return fmt.Errorf("%w: -n must not be negative", cli.ErrUsage)
	}
	k, err := lookupKind(cfg.Type)
	if err != nil {
		return err
	}
	lo, err := strconv.ParseFloat(cfg.Lo, 64)
	if err != nil {
		return fmt.Errorf("%w: bad -lo %q: %w", cli.ErrUsage, cfg.Lo, err)
	}
	hi, err := strconv.ParseFloat(cfg.Hi, 64)
	if err != nil {
		return fmt.Errorf("%w: bad -hi %q: %w", cli.ErrUsage, cfg.Hi, err)
	}
	data, err := k.generate(cfg.N, lo, hi, uint64(cfg.Seed))
	if err != nil {
		return err
	}
	if args[0] == "-" {
		_, err = cc.Out.Write(data)
		return err
	}
	if err := os.WriteFile(args[0], data, 0644); err != nil {
		return err
	}
	theLog.Info("wrote sample data", "file", args[0], "type", k.Name(), "size", report.Size(len(data)))
	return nil
}

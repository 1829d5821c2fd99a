package main

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/floatrun/report"
	"github.com/signadot/floatrun/source"
	"golang.org/x/sync/errgroup"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 files", cli.ErrUsage)
	}
	q := cfg.queryOpts()
	k, err := lookupKind(q.Type)
	if err != nil {
		return err
	}
	run, err := k.compile(q)
	if err != nil {
		return err
	}
	ctx := context.Background()
	var (
		reports [2]bytes.Buffer
		g       errgroup.Group
	)
	for i, name := range args {
		g.Go(func() error {
			return runsReport(ctx, run, k, name, &reports[i])
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	out, differ := report.Diff(reports[0].String(), reports[1].String(), cfg.colors(cc.Out))
	if !differ {
		return nil
	}
	if _, err := io.WriteString(cc.Out, out); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// runsReport writes the text report of name without its header, so that
// two inputs with the same runs produce identical reports.
func runsReport(ctx context.Context, run scanFunc, k valueKind, name string, w io.Writer) error {
	in, err := source.Open(name)
	if err != nil {
		return err
	}
	defer in.Close()
	rw, err := report.NewWriter(report.Text, w, report.BodyOnly())
	if err != nil {
		return err
	}
	if _, err := scanInput(ctx, run, k, in, false, rw); err != nil {
		return fmt.Errorf("error scanning %s: %w", name, err)
	}
	return nil
}

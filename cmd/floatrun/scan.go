package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
	"github.com/signadot/floatrun/debug"
	"github.com/signadot/floatrun/report"
	"github.com/signadot/floatrun/sample"
	"github.com/signadot/floatrun/scan"
	"github.com/signadot/floatrun/source"
	"golang.org/x/sync/errgroup"
)

func scanFiles(cfg *ScanConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Scan.Parse(cc, args)
	if err != nil {
		return err
	}
	cfg.mergeFile()
	if !report.ValidFormat(cfg.Format) {
		return fmt.Errorf("%w: %w %q", cli.ErrUsage, report.ErrFormat, cfg.Format)
	}
	if cfg.N < 0 {
		return fmt.Errorf("%w: -n must not be negative", cli.ErrUsage)
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
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			theLog.Warn("gops agent failed", "error", err)
		} else {
			defer agent.Close()
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	stats := cfg.Stats || debug.Alloc()
	before := readAllocs()
	defer func() {
		if stats {
			readAllocs().since(before).log()
		}
	}()

	opts := []report.WriterOpt{report.WithColors(cfg.colors(cc.Out))}

	if len(args) == 0 {
		data, err := k.generate(cfg.N, sample.DefaultLo, sample.DefaultHi, uint64(cfg.Seed))
		if err != nil {
			return err
		}
		w, err := report.NewWriter(cfg.Format, cc.Out, opts...)
		if err != nil {
			return err
		}
		_, err = scanInput(ctx, run, k, source.FromBytes("sample", data), true, w)
		return err
	}

	return scanAll(ctx, run, k, args, cfg.Format, cfg.Jobs, cc.Out, opts...)
}

// scanAll scans names concurrently, at most jobs at a time, and writes
// their reports to out in the order of names.
func scanAll(ctx context.Context, run scanFunc, k valueKind, names []string, format string, jobs int, out io.Writer, opts ...report.WriterOpt) error {
	outs := make([]bytes.Buffer, len(names))
	var g errgroup.Group
	g.SetLimit(max(jobs, 1))
	for i, name := range names {
		g.Go(func() error {
			in, err := source.Open(name)
			if err != nil {
				return err
			}
			defer in.Close()
			if debug.Source() {
				theLog.Debug("loaded", "source", in.Name(), "bytes", in.Len(), "mapped", in.Mapped())
			}
			w, err := report.NewWriter(format, &outs[i], opts...)
			if err != nil {
				return err
			}
			_, err = scanInput(ctx, run, k, in, false, w)
			if err != nil {
				return fmt.Errorf("error scanning %s: %w", name, err)
			}
			return nil
		})
	}
	err := g.Wait()
	for i := range outs {
		if _, werr := outs[i].WriteTo(out); werr != nil && err == nil {
			err = werr
		}
	}
	return err
}

// scanInput writes a complete report of in to w.
func scanInput(ctx context.Context, run scanFunc, k valueKind, in *source.Buffer, generated bool, w report.Writer) (scan.Stats, error) {
	h := report.Header{
		Source:    in.Name(),
		Bytes:     in.Len(),
		Generated: generated,
		Type:      k.Name(),
	}
	if err := w.Begin(h); err != nil {
		return scan.Stats{}, err
	}
	st, err := run(ctx, in.Name(), in.Bytes(), w)
	if err != nil {
		return st, err
	}
	if debug.Scan() {
		theLog.Debug("scanned", "source", in.Name())
		debug.LogAny(st)
	}
	theLog.Info("Finished with unconsumed input", "source", in.Name(), "bytes", st.Unconsumed)
	return st, w.End(report.FromStats(in.Name(), in.Len(), st))
}

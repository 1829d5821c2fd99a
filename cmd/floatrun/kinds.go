package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"slices"
	"strconv"

	"github.com/scott-cotton/cli"
	"github.com/signadot/floatrun/report"
	"github.com/signadot/floatrun/sample"
	"github.com/signadot/floatrun/scan"
	"github.com/signadot/floatrun/where"
)

// scanFunc writes the runs of buf to w.
type scanFunc func(ctx context.Context, name string, buf []byte, w report.Writer) (scan.Stats, error)

// valueKind hides the value type selected by -type from the commands.
type valueKind interface {
	Name() string
	Size() int
	compile(q *QueryOpts) (scanFunc, error)
	generate(n int, lo, hi float64, seed uint64) ([]byte, error)
}

type kind[V scan.Number] struct {
	dec   scan.Decoder[V]
	parse func(string) (V, error)
}

func (k *kind[V]) Name() string { return k.dec.Name }
func (k *kind[V]) Size() int    { return k.dec.Size }

func (k *kind[V]) bound(s string) (*V, error) {
	if s == "" {
		return nil, nil
	}
	v, err := k.parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: bad %s bound %q: %w", cli.ErrUsage, k.dec.Name, s, err)
	}
	return &v, nil
}

func (k *kind[V]) compile(q *QueryOpts) (scanFunc, error) {
	min, err := k.bound(q.Min)
	if err != nil {
		return nil, err
	}
	max, err := k.bound(q.Max)
	if err != nil {
		return nil, err
	}
	if min == nil && max == nil && q.Where == "" {
		return nil, fmt.Errorf("%w: -max is required unless -min or -where is given", cli.ErrUsage)
	}
	var prg *where.Program
	if q.Where != "" {
		prg, err = where.Compile(q.Where)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	s, err := scan.NewScanner(k.dec, where.Range(min, max, prg), scan.MinLength(q.MinLen))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return func(ctx context.Context, name string, buf []byte, w report.Writer) (scan.Stats, error) {
		seq := s.Runs(buf)
		for run := range seq.All() {
			if err := ctx.Err(); err != nil {
				return seq.Stats(), err
			}
			if err := w.Write(report.FromRun(name, &run)); err != nil {
				return seq.Stats(), err
			}
		}
		return seq.Stats(), nil
	}, nil
}

func (k *kind[V]) generate(n int, lo, hi float64, seed uint64) ([]byte, error) {
	vs := sample.Generate[V](sample.NewRand(seed), n, lo, hi)
	return sample.Encode(make([]byte, 0, len(vs)*k.dec.Size), binary.LittleEndian, vs)
}

func floatKind[V float32 | float64](dec scan.Decoder[V], bits int) valueKind {
	return &kind[V]{dec: dec, parse: func(s string) (V, error) {
		f, err := strconv.ParseFloat(s, bits)
		return V(f), err
	}}
}

func intKind[V int8 | int16 | int32 | int64](dec scan.Decoder[V], bits int) valueKind {
	return &kind[V]{dec: dec, parse: func(s string) (V, error) {
		i, err := strconv.ParseInt(s, 0, bits)
		return V(i), err
	}}
}

func uintKind[V uint8 | uint16 | uint32 | uint64](dec scan.Decoder[V], bits int) valueKind {
	return &kind[V]{dec: dec, parse: func(s string) (V, error) {
		u, err := strconv.ParseUint(s, 0, bits)
		return V(u), err
	}}
}

var kinds = map[string]valueKind{
	"f32": floatKind(scan.Float32LE, 32),
	"f64": floatKind(scan.Float64LE, 64),
	"i8":  intKind(scan.Int8LE, 8),
	"u8":  uintKind(scan.Uint8LE, 8),
	"i16": intKind(scan.Int16LE, 16),
	"u16": uintKind(scan.Uint16LE, 16),
	"i32": intKind(scan.Int32LE, 32),
	"u32": uintKind(scan.Uint32LE, 32),
	"i64": intKind(scan.Int64LE, 64),
	"u64": uintKind(scan.Uint64LE, 64),
}

func kindNames() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func lookupKind(name string) (valueKind, error) {
	k, ok := kinds[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown type %q (want one of %v)", cli.ErrUsage, name, kindNames())
	}
	return k, nil
}

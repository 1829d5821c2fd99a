package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/floatrun/report"
	"github.com/signadot/floatrun/sample"
)

type MainConfig struct {
	Color  bool   `cli:"name=color desc='color text output (default: when stdout is a terminal)'"`
	Config string `cli:"name=config desc='yaml file with scan defaults'"`

	File *FileConfig

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// FileConfig holds scan defaults read from -config. Options given on the
// command line take precedence.
type FileConfig struct {
	Min    any    `yaml:"min"`
	Max    any    `yaml:"max"`
	Where  string `yaml:"where"`
	MinLen *int   `yaml:"minlen"`
	Type   string `yaml:"type"`
	Format string `yaml:"format"`
	Jobs   *int   `yaml:"jobs"`
}

// colors decides whether text written to w is colored. An explicit -color
// wins; otherwise color is used only on terminals.
func (cfg *MainConfig) colors(w io.Writer) *report.Colors {
	if cfg.Color {
		return report.NewColors(true)
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return report.NoColors()
	}
	f, ok := w.(*os.File)
	if !ok {
		return report.NoColors()
	}
	if isatty.IsTerminal(f.Fd()) {
		return report.NewColors(true)
	}
	return report.NoColors()
}

func loadFileConfig(path string) (*FileConfig, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config %q: %w", path, err)
	}
	fc := &FileConfig{}
	if err := yaml.UnmarshalWithOptions(d, fc, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("could not decode config %q: %w", path, err)
	}
	return fc, nil
}

func bound(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// QueryOpts are the options shared by commands that scan.
type QueryOpts struct {
	Min    string
	Max    string
	Where  string
	MinLen int
	Type   string
}

// merge fills options not given on the command line from fc.
func (q *QueryOpts) merge(cmd *cli.Command, fc *FileConfig) {
	if fc == nil {
		return
	}
	set := map[string]bool{}
	for _, opt := range cmd.Opts {
		if opt.Value != nil {
			set[opt.Name] = true
		}
	}
	if !set["min"] && fc.Min != nil {
		q.Min = bound(fc.Min)
	}
	if !set["max"] && fc.Max != nil {
		q.Max = bound(fc.Max)
	}
	if !set["where"] && fc.Where != "" {
		q.Where = fc.Where
	}
	if !set["minlen"] && fc.MinLen != nil {
		q.MinLen = *fc.MinLen
	}
	if !set["type"] && fc.Type != "" {
		q.Type = fc.Type
	}
}

type ScanConfig struct {
	*MainConfig

	Min    string `cli:"name=min desc='minimum value to search for (inclusive)'"`
	Max    string `cli:"name=max desc='maximum value to search for (inclusive)'"`
	Where  string `cli:"name=where aliases=w desc='predicate expression over x, e.g. x < 0 && x > -50'"`
	MinLen int    `cli:"name=minlen aliases=min-length desc='minimum length of run to print' default=0"`
	Type   string `cli:"name=type aliases=t desc='value type: f32 f64 i8 u8 i16 u16 i32 u32 i64 u64' default=f32"`
	N      int    `cli:"name=n aliases=sample-data-length desc='number of values to generate if no file is given' default=1048576"`
	Seed   int    `cli:"name=seed desc='seed for generated data' default=1"`
	Format string `cli:"name=format aliases=f desc='output format: text yaml jsonl' default=text"`
	Jobs   int    `cli:"name=j aliases=jobs desc='number of files scanned concurrently' default=4"`
	Stats  bool   `cli:"name=stats desc='print allocation statistics'"`
	Gops   bool   `cli:"name=gops desc='start a gops agent while scanning'"`

	Scan *cli.Command
}

func (cfg *ScanConfig) queryOpts() *QueryOpts {
	q := &QueryOpts{
		Min:    cfg.Min,
		Max:    cfg.Max,
		Where:  cfg.Where,
		MinLen: cfg.MinLen,
		Type:   cfg.Type,
	}
	q.merge(cfg.Scan, cfg.File)
	return q
}

// mergeFile applies file defaults to the scan-only options.
func (cfg *ScanConfig) mergeFile() {
	fc := cfg.File
	if fc == nil {
		return
	}
	set := map[string]bool{}
	for _, opt := range cfg.Scan.Opts {
		if opt.Value != nil {
			set[opt.Name] = true
		}
	}
	if !set["format"] && fc.Format != "" {
		cfg.Format = fc.Format
	}
	if !set["j"] && fc.Jobs != nil {
		cfg.Jobs = *fc.Jobs
	}
}

type GenConfig struct {
	*MainConfig

	N    int    `cli:"name=n desc='number of values to generate' default=1048576"`
	Lo   string `cli:"name=lo desc='lower bound of generated values' default=-100"`
	Hi   string `cli:"name=hi desc='upper bound of generated values (exclusive)' default=1"`
	Seed int    `cli:"name=seed desc='seed for generated data' default=1"`
	Type string `cli:"name=type aliases=t desc='value type' default=f32"`

	Gen *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Min    string `cli:"name=min desc='minimum value to search for (inclusive)'"`
	Max    string `cli:"name=max desc='maximum value to search for (inclusive)'"`
	Where  string `cli:"name=where aliases=w desc='predicate expression over x'"`
	MinLen int    `cli:"name=minlen aliases=min-length desc='minimum length of run to compare' default=0"`
	Type   string `cli:"name=type aliases=t desc='value type' default=f32"`

	Diff *cli.Command
}

func (cfg *DiffConfig) queryOpts() *QueryOpts {
	q := &QueryOpts{
		Min:    cfg.Min,
		Max:    cfg.Max,
		Where:  cfg.Where,
		MinLen: cfg.MinLen,
		Type:   cfg.Type,
	}
	q.merge(cfg.Diff, cfg.File)
	return q
}

func defaultScanConfig(mainCfg *MainConfig) *ScanConfig {
	return &ScanConfig{
		MainConfig: mainCfg,
		Type:       "f32",
		N:          sample.DefaultLength,
		Seed:       1,
		Format:     report.Text,
		Jobs:       4,
	}
}

func defaultGenConfig(mainCfg *MainConfig) *GenConfig {
	return &GenConfig{
		MainConfig: mainCfg,
		N:          sample.DefaultLength,
		Lo:         "-100",
		Hi:         "1",
		Seed:       1,
		Type:       "f32",
	}
}

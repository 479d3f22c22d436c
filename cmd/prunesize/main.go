// Command prunesize prints estimated pruning-table sizes (MB) for block
// solvers, one grid per counting mode.
//
// Usage:
//
//	prunesize                      # the original zero-based run
//	prunesize -preset all -style table
//	prunesize -blocks -bytes 4
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/prunesize/cube"
	"github.com/katalvlaran/prunesize/estimate"
	"github.com/katalvlaran/prunesize/preset"
	"github.com/katalvlaran/prunesize/render"
	"golang.org/x/term"
)

const version = "0.1.0"

// styleAuto picks the boxed table on a terminal and plain text otherwise.
const styleAuto = "auto"

// presetAll runs every preset in catalogue order.
const presetAll = "all"

// isTerminal is swapped in tests.
var isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type config struct {
	preset  string
	style   string
	format  render.Format
	blocks  bool
	bytes   int
	list    bool
	version bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	cfg := config{format: render.DefaultFormat()}
	fs := flag.NewFlagSet("prunesize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.preset, "preset", preset.DefaultPreset, `preset to run, or "all"`)
	fs.StringVar(&cfg.style, "style", string(render.StylePlain), "output style: plain, markdown, table, glamour or auto")
	fs.BoolVar(&cfg.format.Transpose, "transpose", false, "put corners in columns and edges in rows")
	fs.BoolVar(&cfg.format.Labels, "labels", false, "print axis labels in plain style")
	fs.IntVar(&cfg.format.Precision, "precision", render.DefaultPrecision, "decimals printed for megabytes")
	fs.BoolVar(&cfg.blocks, "blocks", false, "print the named-block summary instead of grids")
	fs.IntVar(&cfg.bytes, "bytes", estimate.DefaultBytesPerEntry, "bytes per table entry for -blocks")
	fs.BoolVar(&cfg.list, "list", false, "list presets and exit")
	fs.BoolVar(&cfg.version, "version", false, "show version")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("prunesize: unexpected arguments %q", fs.Args())
	}
	if cfg.bytes <= 0 {
		return config{}, fmt.Errorf("prunesize: -bytes must be > 0, got %d", cfg.bytes)
	}

	return cfg, cfg.format.Validate()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	logger := log.New(stderr, "prunesize: ", 0)

	if cfg.version {
		fmt.Fprintf(stdout, "prunesize version %s\n", version)
		return nil
	}

	cat, err := preset.Load()
	if err != nil {
		return err
	}
	if cfg.list {
		for _, p := range cat.Presets {
			fmt.Fprintf(stdout, "%-12s %s\n", p.Name, p.Description)
		}
		return nil
	}

	style := cfg.style
	if style == styleAuto {
		style = string(render.StylePlain)
		if isTerminal() {
			style = string(render.StyleTable)
		}
	}
	st, err := render.ParseStyle(style)
	if err != nil {
		return err
	}
	r, err := render.New(st)
	if err != nil {
		return err
	}

	if cfg.blocks {
		return printBlocks(stdout, r, cfg)
	}

	presets := cat.Presets
	if cfg.preset != presetAll {
		p, err := cat.Lookup(cfg.preset)
		if err != nil {
			return err
		}
		presets = []preset.Preset{p}
	}

	if _, err = io.WriteString(stdout, render.Banner(cfg.format)+"\n"); err != nil {
		return err
	}
	for _, p := range presets {
		if len(presets) > 1 {
			fmt.Fprintf(stdout, "== %s: %s ==\n\n", p.Name, p.Description)
		}
		results, err := p.Run(ctx)
		if err != nil {
			return err
		}
		for _, res := range results {
			if err := res.Table.Err(); err != nil {
				logger.Printf("Warning: %s/%s: %d cells out of physical range: %v",
					p.Name, res.Section.Mode, len(res.Table.Invalid()), err)
			}
			sheet, err := render.FromTable(res.Title, res.Table, cfg.format)
			if err != nil {
				return err
			}
			if err := r.Render(stdout, sheet); err != nil {
				return fmt.Errorf("prunesize: render %s/%s: %w", p.Name, res.Section.Mode, err)
			}
		}
	}

	return nil
}

func printBlocks(w io.Writer, r render.Renderer, cfg config) error {
	blocks := cube.Blocks()
	sizes := make([]estimate.BlockSize, 0, len(blocks))
	for _, b := range blocks {
		bs, err := estimate.BlockSizes(b, estimate.WithBytesPerEntry(cfg.bytes))
		if err != nil {
			return err
		}
		sizes = append(sizes, bs)
	}

	title := "Table sizes (MB) of the named blocks"
	if cfg.bytes != estimate.DefaultBytesPerEntry {
		title += fmt.Sprintf(" (%d bytes per entry)", cfg.bytes)
	}
	sheet, err := render.FromBlocks(title, sizes, cfg.format)
	if err != nil {
		return err
	}

	return r.Render(w, sheet)
}

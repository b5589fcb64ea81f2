// Command zip-lookup resolves US ZIP codes from the command line and prints
// the same status line and place table the desktop application shows.
//
// Usage:
//
//	zip-lookup [-config file.yaml] [-base-url URL] [-timeout 10s] [-assets dir] ZIP...
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ytget/zip-lookup/internal/config"
	"github.com/ytget/zip-lookup/internal/i18n"
	"github.com/ytget/zip-lookup/internal/lookup"
	"github.com/ytget/zip-lookup/internal/model"
	"github.com/ytget/zip-lookup/internal/platform"
	"github.com/ytget/zip-lookup/internal/render"
)

// MissingGraphicSuffix marks image cells whose state graphic is not on disk
const MissingGraphicSuffix = " (missing)"

// ErrNegativeTimeout is returned for a -timeout below zero
var ErrNegativeTimeout = errors.New("timeout must not be negative")

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	baseURL := flag.String("base-url", "", "postal service base URL (overrides config)")
	timeout := flag.Duration("timeout", 0, "per-request timeout, 0 disables (overrides config)")
	assetDir := flag.String("assets", "", "directory containing states/ (overrides config)")
	lang := flag.String("lang", "", "message language: en, ru, pt (overrides config)")
	verbose := flag.Bool("v", false, "log requests to stderr")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadFileConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	if *baseURL != "" {
		cfg.API.BaseURL = *baseURL
	}
	if *assetDir != "" {
		cfg.Assets.Dir = *assetDir
	}
	if *lang != "" {
		cfg.Language = *lang
	}

	requestTimeout, err := resolveTimeout(cfg, *timeout, isFlagSet("timeout"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		flag.PrintDefaults()
		os.Exit(2)
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: zip-lookup [flags] ZIP...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	localization := i18n.NewLocalization()
	localization.SetLanguage(cfg.Language)

	svc := lookup.NewService(cfg.API.BaseURL, requestTimeout)
	failed := run(context.Background(), svc, localization.RenderMessages(), cfg.Assets.Dir, flag.Args(), os.Stdout, os.Stderr)
	if failed > 0 {
		os.Exit(1)
	}
}

// isFlagSet reports whether name was given on the command line
func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// resolveTimeout picks the -timeout value when it was given, the config value otherwise
func resolveTimeout(cfg *config.FileConfig, override time.Duration, overridden bool) (time.Duration, error) {
	if !overridden {
		return cfg.Timeout(), nil
	}
	if override < 0 {
		return 0, fmt.Errorf("%w: %s", ErrNegativeTimeout, override)
	}
	return override, nil
}

// run looks up each argument in order and prints the rendered result.
// Arguments are filtered like keyboard input; anything that does not end up
// as a full ZIP code is skipped. It returns the number of failed lookups.
func run(ctx context.Context, svc lookup.Dispatcher, messages render.Messages, assetDir string, args []string, out, errOut io.Writer) int {
	failed, printed := 0, 0
	for _, arg := range args {
		zip := model.FilterZipInput(arg)
		result, err := svc.Lookup(ctx, zip)
		if err != nil {
			fmt.Fprintf(errOut, "skipping %q: %v\n", arg, err)
			continue
		}
		if result.Outcome.IsFailure() {
			failed++
		}

		status := &render.MemoryStatus{}
		table := render.NewMemoryTable()
		renderer := render.NewRenderer(status, table)
		renderer.SetMessages(messages)
		renderer.Render(result)

		if printed > 0 {
			fmt.Fprintln(out, strings.Repeat("-", 40))
		}
		if err := render.WriteText(out, status.Text(), resolveImages(table.Rows(), assetDir)); err != nil {
			fmt.Fprintln(errOut, "error:", err)
			return failed + 1
		}
		printed++
	}
	return failed
}

// resolveImages replaces relative state graphic paths with files under
// assetDir. Graphics that are not on disk keep their relative path and get
// MissingGraphicSuffix.
func resolveImages(rows [][]render.Cell, assetDir string) [][]render.Cell {
	resolved := make([][]render.Cell, len(rows))
	for r, cells := range rows {
		row := append([]render.Cell(nil), cells...)
		resolved[r] = row
		for i, cell := range row {
			if cell.Kind != render.CellImage {
				continue
			}
			path, err := platform.ResolveStateImage(assetDir, cell.Image)
			if err != nil {
				log.Printf("State graphic %s unavailable: %v", cell.Image, err)
				row[i].Image = cell.Image + MissingGraphicSuffix
				continue
			}
			row[i].Image = path
		}
	}
	return resolved
}

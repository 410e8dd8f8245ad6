// seehuhn.de/go/patterns - synthetic pattern datasets
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command patterngen generates a dataset of tiled unit patterns.
//
// Usage:
//
//	patterngen [-config file] [-mode run|samples|units] [-o dir] [-format fmt] [-v]
//
// The configuration file may be TOML or YAML. Without a file the built-in
// defaults are used.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"seehuhn.de/go/patterns"
	"seehuhn.de/go/patterns/dataset"
)

func main() {
	configFile := flag.String("config", "", "configuration file (TOML or YAML)")
	mode := flag.String("mode", "run", "one of run, samples, units")
	output := flag.String("o", "", "output directory, overrides the configuration")
	format := flag.String("format", "", "image format (bmp, png, pdf, svg), overrides the configuration")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	patterns.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, *configFile, *mode, *output, *format)
	if err != nil {
		fmt.Fprintln(os.Stderr, "patterngen:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configFile, mode, output, format string) error {
	cfg := dataset.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = dataset.LoadConfig(configFile)
		if err != nil {
			return err
		}
	}
	if output != "" {
		cfg.Output = output
	}
	if format != "" {
		cfg.ImageFormat = format
	}

	start := time.Now()
	g, err := dataset.NewGenerator(ctx, cfg)
	if err != nil {
		return err
	}

	var n int
	switch mode {
	case "run":
		n, err = g.Run(ctx)
	case "samples":
		n, err = g.RunSamples(ctx)
	case "units":
		n, err = g.SaveUnitPatterns(ctx)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
	if err != nil {
		return err
	}
	fmt.Printf("%d images in %s\n", n, time.Since(start).Round(time.Millisecond))
	return nil
}

// Command bmpconv converts images to 24-bit BMP (or lossless DDS).
//
//	bmpconv [--threshold 128] [--out dir] [--format bmp|dds] input.png ...
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/erinpentecost/bmpenc/internal/config"
	"github.com/erinpentecost/bmpenc/internal/log"
)

func parseFlags(args []string) (config.Config, []string, error) {
	fl := pflag.NewFlagSet("bmpconv", pflag.ContinueOnError)
	configPath := fl.String("config", config.DefaultPath, "YAML config file")
	threshold := fl.Int("threshold", 0, "alpha below this is written black (0-255, default 128)")
	threads := fl.IntP("threads", "j", 0, "files converted in parallel")
	outDir := fl.StringP("out", "o", "", "output directory (default: next to each input)")
	format := fl.StringP("format", "f", "", "output format extension: bmp or dds")
	maxEdge := fl.Int("max-edge", 0, "downscale inputs larger than this many pixels")
	debug := fl.Bool("debug", false, "verbose logging")

	if err := fl.Parse(args); err != nil {
		return config.Config{}, nil, err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if fl.Changed("threshold") {
		cfg.Threshold = *threshold
	}
	if fl.Changed("threads") {
		cfg.Threads = max(1, *threads)
	}
	if fl.Changed("out") {
		cfg.OutDir = *outDir
	}
	if fl.Changed("format") {
		cfg.Format = *format
	}
	if fl.Changed("max-edge") {
		cfg.MaxEdge = *maxEdge
	}
	if fl.Changed("debug") {
		cfg.Debug = *debug
	}

	if fl.NArg() == 0 {
		return config.Config{}, nil, fmt.Errorf("no input files")
	}
	return cfg, fl.Args(), nil
}

func main() {
	cfg, inputs, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAILED: %v\n", err)
		os.Exit(2)
	}
	log.Verbose = cfg.Debug

	if err := convertAll(context.Background(), cfg, inputs); err != nil {
		log.Errorf("FAILED: %v", err)
		os.Exit(33)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/erinpentecost/bmpenc/internal/config"
	"github.com/erinpentecost/bmpenc/internal/format"
	"github.com/erinpentecost/bmpenc/internal/log"
	"github.com/erinpentecost/bmpenc/internal/pixel"
)

type convertJob struct {
	Input   string
	Output  string
	Encoder format.Encoder
	MaxEdge int
}

// outputPath swaps the extension of input for ext, inside dir when set.
func outputPath(input, dir, ext string) string {
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + "." + ext
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, name)
}

func convertAll(ctx context.Context, cfg config.Config, inputs []string) error {
	registry := format.Default(cfg.Threshold)
	enc, ok := registry.ForExtension(cfg.Format)
	if !ok {
		return fmt.Errorf("unknown output format %q", cfg.Format)
	}
	if cfg.OutDir != "" {
		if err := os.MkdirAll(cfg.OutDir, 0777); err != nil {
			return fmt.Errorf("create output directory %q: %w", cfg.OutDir, err)
		}
	}

	jobs := make([]*convertJob, 0, len(inputs))
	for _, in := range inputs {
		jobs = append(jobs, &convertJob{
			Input:   in,
			Output:  outputPath(in, cfg.OutDir, enc.Extension()),
			Encoder: enc,
			MaxEdge: cfg.MaxEdge,
		})
	}
	log.Debugf("converting %d files with %d threads", len(jobs), cfg.Threads)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, cfg.Threads))
	for _, j := range jobs {
		j := j
		g.Go(func() error { return j.Run(gctx) })
	}
	return g.Wait()
}

func (j *convertJob) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log.Infof("Converting %q to %q...", j.Input, j.Output)

	img, err := format.Decode(j.Input)
	if err != nil {
		return fmt.Errorf("load %q: %w", j.Input, err)
	}
	if scaled := pixel.Downscale(img, j.MaxEdge); scaled.Bounds() != img.Bounds() {
		log.Debugf("scaled %q from %v to %v", j.Input, img.Bounds().Size(), scaled.Bounds().Size())
		img = scaled
	}

	out, err := os.Create(j.Output)
	if err != nil {
		return fmt.Errorf("create %q: %w", j.Output, err)
	}
	if err := j.Encoder.Encode(out, pixel.FromImage(img)); err != nil {
		out.Close()
		return fmt.Errorf("encode %q: %w", j.Output, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %q: %w", j.Output, err)
	}
	return nil
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"cogentcore.org/palette/base/errors"
	"cogentcore.org/palette/base/iox/imagex"
	"cogentcore.org/palette/picker"
	"github.com/fsnotify/fsnotify"
)

func runRender(args []string, stdout, stderr io.Writer) error {
	var c common
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	c.register(fs)
	out := fs.String("o", ".", "output `dir`ectory")
	format := fs.String("format", "png", "image format: png, tiff or bmp")
	stretch := fs.Bool("stretch", false, "scale each bitmap to the display size of its control")
	watch := fs.Bool("watch", false, "render again whenever the -config file changes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	f, err := imagex.ExtToFormat(*format)
	if err != nil {
		return err
	}
	if !f.Writable() {
		return fmt.Errorf("render: format %v cannot be written; use png, tiff or bmp", f)
	}
	if *watch && c.config == "" {
		return errors.New("render: -watch requires -config")
	}
	cfg, err := c.setup(stderr)
	if err != nil {
		return err
	}
	if err := render(cfg, *out, *format, *stretch, stdout); err != nil {
		return err
	}
	if !*watch {
		return nil
	}
	cw, err := newConfigWatcher(c.config)
	if err != nil {
		return err
	}
	defer cw.Close()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return cw.run(ctx, func() error {
		cfg, err := picker.OpenConfig(c.config)
		if err != nil {
			return err
		}
		return render(cfg, *out, *format, *stretch, stdout)
	})
}

// output is one bitmap to be rendered.
type output struct {
	name string
	img  image.Image
	size picker.Size
}

// render writes the bitmaps of both pickers at their initial colors to dir,
// printing the name of each file written.
func render(cfg picker.Config, dir, format string, stretch bool, stdout io.Writer) error {
	r, rerr := picker.NewRect(cfg.Rect, nil, nil)
	g, gerr := picker.NewRing(cfg.Ring, nil, nil)
	if err := errors.Join(rerr, gerr); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}
	diameter := 2 * cfg.Ring.OuterRadius
	outputs := []output{
		{"rect-plane", r.PlaneImage(), cfg.Rect.Plane},
		{"rect-strip", r.StripImage(), cfg.Rect.Strip},
		{"ring-ring", g.RingImage(), picker.Size{Width: diameter, Height: diameter}},
		{"ring-square", g.SquareImage(), picker.Size{Width: cfg.Ring.Square, Height: cfg.Ring.Square}},
	}
	ext := strings.TrimPrefix(format, ".")
	for _, o := range outputs {
		img := o.img
		if stretch {
			img = imagex.Stretch(img, int(o.size.Width+0.5), int(o.size.Height+0.5))
		}
		fn := filepath.Join(dir, o.name+"."+ext)
		if err := imagex.Save(img, fn); err != nil {
			return err
		}
		fmt.Fprintln(stdout, fn)
	}
	return nil
}

// configWatcher reports changes to one configuration file.
type configWatcher struct {
	filename string
	watcher  *fsnotify.Watcher
}

// newConfigWatcher starts watching the given file. The directory is
// watched rather than the file, since editors often replace files
// instead of writing them in place.
func newConfigWatcher(filename string) (*configWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(filename)); err != nil {
		w.Close()
		return nil, err
	}
	return &configWatcher{filename: filepath.Clean(filename), watcher: w}, nil
}

// run calls changed every time the file is written or created, until ctx
// is done. Errors from changed are logged, not returned.
func (cw *configWatcher) run(ctx context.Context, changed func() error) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-cw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != cw.filename || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			slog.Info("config changed", "file", ev.Name, "op", ev.Op)
			errors.Log(changed())
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}

func (cw *configWatcher) Close() error {
	return cw.watcher.Close()
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command palette renders the bitmaps of the color pickers to image
// files and simulates picks on them from the command line.
//
//	palette render [-config file] [-o dir] [-format png] [-stretch] [-watch]
//	palette pick [-config file] [-widget rect|ring] [-control name] x,y ...
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/palette/base/errors"
	"cogentcore.org/palette/base/logx"
	"cogentcore.org/palette/picker"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run runs the command with the given arguments, and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}
	var err error
	switch args[0] {
	case "render":
		err = runRender(args[1:], stdout, stderr)
	case "pick":
		err = runPick(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "palette: unknown command %q\n", args[0])
		usage(stderr)
		return 2
	}
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "palette:", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprint(w, `usage: palette <command> [flags]

commands:
  render  write the picker bitmaps to image files
  pick    simulate a pointer path on a picker and print the color

run palette <command> -h for the flags of a command
`)
}

// common are the flags shared by all commands.
type common struct {
	config   string
	vv, v, q bool
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.config, "config", "", "TOML or YAML configuration `file`; defaults are used if empty")
	fs.BoolVar(&c.vv, "vv", false, "print debug messages")
	fs.BoolVar(&c.v, "v", false, "print informational messages")
	fs.BoolVar(&c.q, "q", false, "only print errors")
}

// setup configures logging from the verbosity flags and loads the configuration.
func (c *common) setup(stderr io.Writer) (picker.Config, error) {
	logx.UserLevel = logx.LevelFromFlags(c.vv, c.v, c.q)
	l := logx.NewLogger(stderr)
	slog.SetDefault(l)
	picker.SetLogger(l)
	if c.config == "" {
		return picker.DefaultConfig(), nil
	}
	return picker.OpenConfig(c.config)
}

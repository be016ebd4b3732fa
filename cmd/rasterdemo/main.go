// contraption-sprites-ext - a 2D software rasterizer
// Copyright (C) 2026  The contraption-sprites-ext authors
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

// Command rasterdemo renders a scene file to an image.
//
// Usage:
//
//	rasterdemo [flags] -s scene.yaml -o out.png
//
// The scene format is described in package scene.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/eanders-ms/contraption-sprites-ext/num"
	"github.com/eanders-ms/contraption-sprites-ext/raster"
	"github.com/eanders-ms/contraption-sprites-ext/scene"
	"github.com/eanders-ms/contraption-sprites-ext/screen"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	scenePath string
	outPath   string
	format    string
	scale     int
	backend   string
	mode      string
	frames    int
	debug     bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		opts        options
		showVersion bool
		showHelp    bool
	)

	fs := pflag.NewFlagSet("rasterdemo", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.scenePath, "scene", "s", "", "Scene file to render (- for stdin)")
	fs.StringVarP(&opts.outPath, "out", "o", "out.png", "Output image file (- for stdout)")
	fs.StringVarP(&opts.format, "format", "f", "", "Output format: png, bmp or tiff (default: from the file name)")
	fs.IntVar(&opts.scale, "scale", 1, "Enlarge the output by this integer factor")
	fs.StringVar(&opts.backend, "backend", "float", "Numeric backend: float or fixed")
	fs.StringVar(&opts.mode, "mode", "", "Triangle traversal: spans or blocks (default: from the scene)")
	fs.IntVar(&opts.frames, "frames", 1, "Number of times to render the scene")
	fs.BoolVar(&opts.debug, "debug", false, "Log debug information to stderr")
	fs.BoolVarP(&showVersion, "version", "v", false, "Show version information")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show help message")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if showHelp {
		printHelp(stdout, fs)
		return 0
	}
	if showVersion {
		fmt.Fprintf(stdout, "rasterdemo version %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	}

	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	raster.SetLogger(logger)
	defer raster.SetLogger(nil)

	if err := renderFile(&opts, stdin, stdout, logger); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			printHelp(stderr, fs)
		}
		return 1
	}
	return 0
}

func printHelp(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintln(w, "Usage: rasterdemo [flags] -s scene.yaml")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Renders a scene of points, lines, polygons and sprites to an image.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}

func renderFile(opts *options, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	if opts.scenePath == "" {
		return fmt.Errorf("%w: no scene file given", errUsage)
	}
	if opts.scale < 1 {
		return fmt.Errorf("%w: invalid scale %d", errUsage, opts.scale)
	}
	if opts.frames < 1 {
		return fmt.Errorf("%w: invalid frame count %d", errUsage, opts.frames)
	}
	format := opts.format
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(opts.outPath), ".")
		if format == "" {
			format = "png"
		}
	}

	sc, err := loadScene(opts.scenePath, stdin)
	if err != nil {
		return err
	}
	if opts.mode != "" {
		sc.Mode = opts.mode
	}
	mode, err := sc.RasterMode()
	if err != nil {
		return err
	}

	var scr *screen.Screen
	switch opts.backend {
	case "float":
		scr, err = render[num.Float](sc, mode, opts.frames, logger)
	case "fixed":
		scr, err = render[num.Fixed](sc, mode, opts.frames, logger)
	default:
		return fmt.Errorf("%w: unknown backend %q", errUsage, opts.backend)
	}
	if err != nil {
		return err
	}

	img := scr.Scaled(opts.scale)
	if opts.outPath == "-" {
		return screen.Encode(stdout, img, format)
	}
	return writeImage(opts.outPath, func(w io.Writer) error {
		return screen.Encode(w, img, format)
	})
}

func loadScene(name string, stdin io.Reader) (*scene.Scene, error) {
	if name == "-" {
		return scene.Load(stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scene.Load(f)
}

func writeImage(name string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encode(f)
}

// render draws the scene frames times into a fresh screen and returns the
// last frame.
func render[T num.Scalar[T]](sc *scene.Scene, mode raster.Mode, frames int, logger *slog.Logger) (*screen.Screen, error) {
	scr := screen.New(sc.Width, sc.Height)
	r := raster.NewRenderer[T](raster.ScreenRect(scr))
	r.Mode = mode

	var total time.Duration
	for i := range frames {
		start := time.Now()
		scr.Fill(sc.Background)
		if err := scene.Queue[T](sc, r, scr); err != nil {
			return nil, err
		}
		r.Render()
		elapsed := time.Since(start)
		total += elapsed
		logger.Debug("frame rendered", "frame", i, "elapsed", elapsed)
	}

	stats := r.Stats()
	if stats.Outstanding != 0 {
		logger.Warn("pool objects not released", "outstanding", stats.Outstanding)
	}
	logger.Info("scene rendered",
		"size", fmt.Sprintf("%dx%d", sc.Width, sc.Height),
		"shapes", len(sc.Shapes),
		"mode", mode.String(),
		"frames", frames,
		"average", total/time.Duration(frames))
	return scr, nil
}

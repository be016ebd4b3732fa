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

package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

const demoScene = `
width: 8
height: 8
background: 15
camera: {x: 4, y: 4}
shapes:
  - {kind: triangle, points: [[0, 0], [4, 0], [0, 4]], color: 5}
  - {kind: point, points: [[7, 7]], color: 2}
`

func writeScene(t *testing.T) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(name, []byte(demoScene), 0644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestRunPNG(t *testing.T) {
	for _, backend := range []string{"float", "fixed"} {
		for _, mode := range []string{"spans", "blocks"} {
			t.Run(backend+"_"+mode, func(t *testing.T) {
				out := filepath.Join(t.TempDir(), "out.png")
				var stdout, stderr bytes.Buffer
				code := run([]string{"-s", writeScene(t), "-o", out, "--scale", "2",
					"--backend", backend, "--mode", mode, "--frames", "3"}, nil, &stdout, &stderr)
				if code != 0 {
					t.Fatalf("exit code %d: %s", code, stderr.String())
				}

				f, err := os.Open(out)
				if err != nil {
					t.Fatal(err)
				}
				defer f.Close()
				img, err := png.Decode(f)
				if err != nil {
					t.Fatal(err)
				}
				checkImage(t, img)
				if !strings.Contains(stderr.String(), "mode="+mode) {
					t.Errorf("log output %q does not mention the mode", stderr.String())
				}
			})
		}
	}
}

// checkImage checks a rendering of demoScene at scale 2.
func checkImage(t *testing.T, img image.Image) {
	t.Helper()
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Fatalf("image size %v, want 16x16", b.Size())
	}
	p, ok := img.(*image.Paletted)
	if !ok {
		t.Fatalf("decoded %T, want *image.Paletted", img)
	}
	tests := []struct {
		x, y, want int
	}{
		{0, 0, 5},   // triangle
		{3, 3, 5},   // triangle, second copy of pixel (1, 1)
		{14, 0, 15}, // background
		{14, 14, 2}, // point
		{15, 15, 2},
	}
	for _, tt := range tests {
		if got := int(p.ColorIndexAt(tt.x, tt.y)); got != tt.want {
			t.Errorf("pixel (%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRunStdio(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-s", "-", "-o", "-", "-f", "bmp", "--scale=2"},
		strings.NewReader(demoScene), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr.String())
	}
	img, err := bmp.Decode(&stdout)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("image size %v, want 16x16", b.Size())
	}
}

func TestRunFormatFromName(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.tiff")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-s", writeScene(t), "-o", out}, nil, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr.String())
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("II*\x00")) && !bytes.HasPrefix(data, []byte("MM\x00*")) {
		t.Errorf("output is not a TIFF file: % x", data[:min(len(data), 8)])
	}
}

func TestRunErrors(t *testing.T) {
	scene := writeScene(t)
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no scene", []string{}, "no scene file"},
		{"missing scene", []string{"-s", filepath.Join(t.TempDir(), "nope.yaml")}, "nope.yaml"},
		{"backend", []string{"-s", scene, "--backend", "double"}, "unknown backend"},
		{"mode", []string{"-s", scene, "--mode", "tiles"}, "unknown mode"},
		{"scale", []string{"-s", scene, "--scale", "0"}, "invalid scale"},
		{"frames", []string{"-s", scene, "--frames", "0"}, "invalid frame count"},
		{"format", []string{"-s", scene, "-o", "-", "-f", "gif"}, "unsupported image format"},
		{"flag", []string{"--bogus"}, "unknown flag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, nil, &stdout, &stderr); code != 1 {
				t.Fatalf("exit code %d, want 1", code)
			}
			if !strings.Contains(stderr.String(), tt.want) {
				t.Errorf("stderr %q does not contain %q", stderr.String(), tt.want)
			}
		})
	}
}

func TestRunVersionAndHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--version"}, nil, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.HasPrefix(stdout.String(), "rasterdemo version dev") {
		t.Errorf("version output %q", stdout.String())
	}

	stdout.Reset()
	if code := run([]string{"-h"}, nil, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(stdout.String(), "--backend") {
		t.Errorf("help output %q does not list the flags", stdout.String())
	}
}

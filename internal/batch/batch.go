// Package batch drives uvee over many files: it collects model files from
// path arguments, dispatches each to its decoder by extension, renders the
// UV wireframes, and isolates failures so one bad file never aborts the run.
package batch

import (
	"image/color"
	"path/filepath"
	"strings"

	"github.com/leaguetools/uvee/internal/raster"
)

// Kind identifies which decoder handles a file.
type Kind int

const (
	KindNone Kind = iota
	KindSKN       // skinned mesh, binary
	KindSCO       // static object, text
	KindSCB       // static object, binary
)

// Detect maps a file path to its decoder by extension, case-insensitively.
func Detect(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".skn":
		return KindSKN
	case ".sco":
		return KindSCO
	case ".scb":
		return KindSCB
	default:
		return KindNone
	}
}

// Config holds the shared settings of one batch run.
type Config struct {
	// CanvasSize is the edge length of the output images in pixels.
	CanvasSize int

	// LineColor is the wireframe draw color.
	LineColor color.NRGBA

	// Format selects the output image encoding.
	Format raster.Format

	// Supersample draws at CanvasSize*Supersample and downsamples. Values
	// below 2 render directly at CanvasSize.
	Supersample int

	// OutDir redirects all output under one root. Empty writes next to
	// each input file.
	OutDir string

	// Workers is the number of files processed concurrently. Values below
	// 2 process files sequentially in argument order.
	Workers int
}

// Result is the outcome of processing one file.
type Result struct {
	Path    string
	Outputs []string
	Err     error
}

// Failed reports whether the file's processing stopped on an error.
func (r Result) Failed() bool {
	return r.Err != nil
}

// outputRoot returns the directory a file's output goes under: the
// configured output dir when set, otherwise the file's own directory.
func (c Config) outputRoot(path string) string {
	if c.OutDir != "" {
		return c.OutDir
	}
	return filepath.Dir(path)
}

// baseName returns the file name with its format extension removed.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// skinnedOutputDir is the per-mesh directory that holds one image per
// submesh: <root>/uvee_<base>.
func (c Config) skinnedOutputDir(path string) string {
	return filepath.ToSlash(filepath.Join(c.outputRoot(path), "uvee_"+baseName(path)))
}

// staticOutputPath is the single image path of a static object:
// <root>/uvee_<base>.<ext>.
func (c Config) staticOutputPath(path string) string {
	name := "uvee_" + baseName(path) + c.Format.Ext()
	return filepath.ToSlash(filepath.Join(c.outputRoot(path), name))
}

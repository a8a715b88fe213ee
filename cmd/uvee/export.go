package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/leaguetools/uvee/internal/batch"
	"github.com/leaguetools/uvee/internal/export"
	"github.com/leaguetools/uvee/pkg/formats"
)

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("o", "", "Output path (default: input name with new extension)")
	format := fs.String("format", "gltf", "Export format: gltf, glb or obj")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: uvee export [-format gltf|glb|obj] [-o output] <file>")
		os.Exit(1)
	}
	path := fs.Arg(0)

	switch *format {
	case "gltf", "glb", "obj":
	default:
		fmt.Fprintf(os.Stderr, "Unknown export format %q (gltf, glb, obj)\n", *format)
		os.Exit(1)
	}

	outPath := *out
	if outPath == "" {
		outPath = strings.TrimSuffix(path, filepath.Ext(path)) + "." + *format
	}

	var err error
	switch batch.Detect(path) {
	case batch.KindSKN:
		err = exportSkinned(path, outPath, *format)
	case batch.KindSCO, batch.KindSCB:
		err = exportStatic(path, outPath, *format)
	default:
		fmt.Fprintf(os.Stderr, "No decoder for %s (expected .skn, .sco or .scb)\n", path)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported: %s\n", filepath.ToSlash(outPath))
}

func exportSkinned(path, outPath, format string) error {
	skn, err := formats.ParseSKNFile(path)
	if err != nil {
		return err
	}

	if format == "obj" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		return export.WriteSkinnedOBJ(f, skn)
	}

	doc, err := export.SkinnedDocument(skn)
	if err != nil {
		return err
	}
	return export.WriteGLTF(doc, outPath)
}

func exportStatic(path, outPath, format string) error {
	var (
		obj *formats.StaticObject
		err error
	)
	if batch.Detect(path) == batch.KindSCO {
		obj, err = formats.ParseSCOFile(path)
	} else {
		obj, err = formats.ParseSCBFile(path)
	}
	if err != nil {
		return err
	}

	name := obj.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if format == "obj" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		return export.WriteStaticOBJ(f, obj, name)
	}

	doc, err := export.StaticDocument(obj, name)
	if err != nil {
		return err
	}
	return export.WriteGLTF(doc, outPath)
}

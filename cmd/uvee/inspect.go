package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/leaguetools/uvee/internal/batch"
	"github.com/leaguetools/uvee/pkg/formats"
)

// dumper renders the -v structure dumps without the capacity noise.
var dumper = &spew.ConfigState{Indent: "  ", DisableCapacities: true}

func cmdInspect(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Dump the full decoded structure")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: uvee inspect [-v] <file>")
		os.Exit(1)
	}
	path := fs.Arg(0)

	switch batch.Detect(path) {
	case batch.KindSKN:
		skn, err := formats.ParseSKNFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		inspectSkinned(path, skn, *verbose)

	case batch.KindSCO, batch.KindSCB:
		var (
			obj     *formats.StaticObject
			variant string
			err     error
		)
		if batch.Detect(path) == batch.KindSCO {
			obj, err = formats.ParseSCOFile(path)
			variant = "static object, text (sco)"
		} else {
			obj, err = formats.ParseSCBFile(path)
			variant = "static object, binary (scb)"
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		inspectStatic(path, obj, variant, *verbose)

	default:
		fmt.Fprintf(os.Stderr, "No decoder for %s (expected .skn, .sco or .scb)\n", path)
		os.Exit(1)
	}
}

func inspectSkinned(path string, skn *formats.SKN, verbose bool) {
	fmt.Printf("File:      %s\n", path)
	fmt.Printf("Format:    skinned mesh (skn), version %s\n", skn.Version)
	fmt.Printf("Vertices:  %d (vertex type %d)\n", len(skn.Vertices), skn.VertexType)
	fmt.Printf("Faces:     %d retained (%d indices)\n", skn.FaceCount(), len(skn.Indices))
	fmt.Printf("Submeshes: %d\n", len(skn.Submeshes))
	for _, sub := range skn.Submeshes {
		fmt.Printf("  %-32s vertices [%d,%d)  indices [%d,%d)\n",
			sub.Name, sub.VertexStart, sub.VertexEnd(), sub.IndexStart, sub.IndexEnd())
	}

	if verbose {
		fmt.Println()
		dumper.Dump(skn)
	}
}

func inspectStatic(path string, obj *formats.StaticObject, variant string, verbose bool) {
	fmt.Printf("File:      %s\n", path)
	fmt.Printf("Format:    %s\n", variant)
	if obj.Name != "" {
		fmt.Printf("Name:      %s\n", obj.Name)
	}
	fmt.Printf("Material:  %s\n", obj.Material)
	fmt.Printf("Vertices:  %d\n", len(obj.Vertices))
	fmt.Printf("Faces:     %d retained (%d corner UVs)\n", obj.FaceCount(), len(obj.UVs))
	fmt.Printf("Central:   (%g, %g, %g)\n", obj.Central.X, obj.Central.Y, obj.Central.Z)
	if obj.HasPivot {
		fmt.Printf("Pivot:     (%g, %g, %g)\n", obj.Pivot.X, obj.Pivot.Y, obj.Pivot.Z)
	}
	fmt.Printf("Flags:     %d\n", obj.Flags)

	if verbose {
		fmt.Println()
		dumper.Dump(obj)
	}
}

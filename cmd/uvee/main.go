// uvee renders UV-unwrap wireframe images from skinned-mesh (.skn) and
// static-object (.sco, .scb) model files.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/leaguetools/uvee/internal/batch"
	"github.com/leaguetools/uvee/internal/config"
	"github.com/leaguetools/uvee/internal/logger"
	"github.com/leaguetools/uvee/internal/raster"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "inspect":
			cmdInspect(os.Args[2:])
			return
		case "export":
			cmdExport(os.Args[2:])
			return
		case "help", "-h", "--help":
			printUsage()
			return
		}
	}

	cmdRender()
}

func printUsage() {
	fmt.Println(`uvee - UV unwrap wireframe renderer for skn/sco/scb model files

Usage:
  uvee [flags] <paths...>              Render UV wireframes
  uvee inspect [-v] <file>             Show the decoded structure of a file
  uvee export [options] <file>         Convert a model to glTF or OBJ

Paths may be files or directories; directories are searched recursively for
.skn, .sco and .scb files. Skinned meshes render one image per submesh into
uvee_<name>/, static objects render a single uvee_<name> image.

Render flags:
  -size N          Canvas size in pixels (default 1024)
  -color HEX       Wireframe color, RRGGBB or RRGGBBAA (default white)
  -format FMT      Output image format: png, webp, tga (default png)
  -supersample N   Draw at N times the size and downsample (default 1)
  -out DIR         Write all output under DIR instead of next to the inputs
  -workers N       Process N files concurrently (default 1)
  -wait            Wait for Enter before exiting
  -config FILE     Load settings from FILE instead of uvee.yaml
  -debug           Enable debug logging
  -log-file FILE   Also log to FILE

Export options:
  -format FMT      Export format: gltf, glb, obj (default gltf)
  -o FILE          Output path (default: input name with new extension)

Examples:
  uvee model.skn
  uvee -size 2048 -color 00FF00 assets/objects/
  uvee inspect -v model.skn
  uvee export -format glb model.skn`)
}

func cmdRender() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Println("Drop skn, sco, scb files into this program.")
		waitForEnter(cfg.Output.WaitOnExit)
		return
	}

	runCfg, err := batchConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	files := batch.Collect(args)
	if len(files) == 0 {
		fmt.Println("No skn, sco or scb files found.")
		waitForEnter(cfg.Output.WaitOnExit)
		return
	}

	results := batch.Run(runCfg, files)

	images, failed := 0, 0
	for _, res := range results {
		if res.Failed() {
			failed++
		} else {
			images += len(res.Outputs)
		}
	}
	fmt.Printf("%d files processed: %d images written, %d failed\n", len(results), images, failed)

	waitForEnter(cfg.Output.WaitOnExit)
	if failed > 0 {
		os.Exit(1)
	}
}

// batchConfig validates the render settings and assembles the batch config.
func batchConfig(cfg *config.Config) (batch.Config, error) {
	col, err := raster.ParseColor(cfg.Render.LineColor)
	if err != nil {
		return batch.Config{}, err
	}
	format, err := raster.ParseFormat(cfg.Output.Format)
	if err != nil {
		return batch.Config{}, err
	}
	if cfg.Render.CanvasSize <= 0 {
		return batch.Config{}, fmt.Errorf("canvas size %d: must be positive", cfg.Render.CanvasSize)
	}
	return batch.Config{
		CanvasSize:  cfg.Render.CanvasSize,
		LineColor:   col,
		Format:      format,
		Supersample: cfg.Render.Supersample,
		OutDir:      cfg.Output.Dir,
		Workers:     cfg.Batch.Workers,
	}, nil
}

// waitForEnter blocks until Enter when wait-on-exit is configured, keeping
// consoles opened by drag-and-drop readable.
func waitForEnter(wait bool) {
	if !wait {
		return
	}
	fmt.Print("Enter to exit.")
	reader := bufio.NewReader(os.Stdin)
	reader.ReadString('\n')
}

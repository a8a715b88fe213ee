package batch

import (
	"fmt"
	"image"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/leaguetools/uvee/internal/logger"
	"github.com/leaguetools/uvee/internal/raster"
	"github.com/leaguetools/uvee/internal/wireframe"
	"github.com/leaguetools/uvee/pkg/formats"
)

// Run processes every file and returns one Result per file, in input order.
// A file's failure is recorded in its Result and never stops the others.
// With Workers > 1 files are processed concurrently; each decode still owns
// its cursor and buffers exclusively, so isolation is unchanged.
func Run(cfg Config, files []string) []Result {
	results := make([]Result, len(files))

	if cfg.Workers < 2 || len(files) < 2 {
		for i, path := range files {
			results[i] = processFile(cfg, path)
			announce(results[i])
		}
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	var announceMu sync.Mutex

	workers := cfg.Workers
	if workers > len(files) {
		workers = len(files)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res := processFile(cfg, files[i])
				results[i] = res

				announceMu.Lock()
				announce(res)
				announceMu.Unlock()
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// announce writes the per-file console lines the tool has always printed:
// one "Done:" line per image, or a "Failed to read:" pair on error. The
// same outcome is mirrored into the structured log.
func announce(res Result) {
	if res.Failed() {
		fmt.Printf("Failed to read: %s\n", filepath.ToSlash(res.Path))
		fmt.Println(res.Err)
		logger.Error("processing failed", zap.String("path", res.Path), zap.Error(res.Err))
		return
	}
	for _, out := range res.Outputs {
		fmt.Printf("Done: %s\n", out)
	}
	logger.Info("rendered", zap.String("path", res.Path), zap.Int("images", len(res.Outputs)))
}

// processFile decodes and renders one file.
func processFile(cfg Config, path string) Result {
	res := Result{Path: path}
	switch Detect(path) {
	case KindSKN:
		res.Outputs, res.Err = processSkinned(cfg, path)
	case KindSCO, KindSCB:
		res.Outputs, res.Err = processStatic(cfg, path)
	default:
		res.Err = fmt.Errorf("no decoder for extension %q", filepath.Ext(path))
	}
	return res
}

// processSkinned renders one image per submesh under uvee_<base>/. Every
// submesh is projected before any image is written, so a failing submesh
// leaves no partial output behind.
func processSkinned(cfg Config, path string) ([]string, error) {
	skn, err := formats.ParseSKNFile(path)
	if err != nil {
		return nil, err
	}

	type render struct {
		name string
		img  image.Image
	}
	renders := make([]render, 0, len(skn.Submeshes))
	for _, sub := range skn.Submeshes {
		tris, err := wireframe.SubmeshTriangles(skn, sub)
		if err != nil {
			return nil, err
		}
		renders = append(renders, render{sub.Name, drawTriangles(cfg, tris)})
	}

	dir := cfg.skinnedOutputDir(path)
	outputs := make([]string, 0, len(renders))
	for _, r := range renders {
		out := dir + "/" + r.name + cfg.Format.Ext()
		if err := raster.EncodeFile(out, r.img, cfg.Format); err != nil {
			return outputs, err
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

// processStatic renders one image for the whole object.
func processStatic(cfg Config, path string) ([]string, error) {
	var (
		obj *formats.StaticObject
		err error
	)
	if Detect(path) == KindSCO {
		obj, err = formats.ParseSCOFile(path)
	} else {
		obj, err = formats.ParseSCBFile(path)
	}
	if err != nil {
		return nil, err
	}

	img := drawTriangles(cfg, wireframe.ObjectTriangles(obj))
	out := cfg.staticOutputPath(path)
	if err := raster.EncodeFile(out, img, cfg.Format); err != nil {
		return nil, err
	}
	return []string{out}, nil
}

// drawTriangles projects triangles onto a fresh canvas and returns the
// image, drawn at Supersample times the target size and downscaled when
// supersampling is on.
func drawTriangles(cfg Config, tris []wireframe.Triangle) image.Image {
	scale := 1
	if cfg.Supersample > 1 {
		scale = cfg.Supersample
	}
	canvas := raster.NewCanvas(cfg.CanvasSize * scale)
	for _, seg := range wireframe.Project(tris, canvas.Size()) {
		canvas.DrawLine(seg.From, seg.To, cfg.LineColor)
	}
	if scale > 1 {
		return raster.Downsample(canvas.Image(), cfg.CanvasSize)
	}
	return canvas.Image()
}

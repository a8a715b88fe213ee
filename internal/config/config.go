// Package config handles uvee's settings: canvas and line style, output
// encoding and placement, batch behavior, and logging.
package config

// Config holds all uvee settings.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Output  OutputConfig  `yaml:"output"`
	Batch   BatchConfig   `yaml:"batch"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig holds canvas and wireframe drawing settings.
type RenderConfig struct {
	// CanvasSize is the output image edge length in pixels. UV coordinates
	// are scaled by this value when projecting.
	CanvasSize int `yaml:"canvas_size"`

	// LineColor is the wireframe color as RRGGBB or RRGGBBAA hex.
	LineColor string `yaml:"line_color"`

	// Supersample draws at CanvasSize*Supersample and downsamples. 1 keeps
	// the plain single-pixel lines.
	Supersample int `yaml:"supersample"`
}

// OutputConfig controls where images land and in which encoding.
type OutputConfig struct {
	// Format selects the image encoding: png, webp or tga.
	Format string `yaml:"format"`

	// Dir redirects all output under one root. Empty writes next to each
	// input file.
	Dir string `yaml:"dir"`

	// WaitOnExit makes the command wait for Enter before exiting, so a
	// console opened by drag-and-drop stays readable.
	WaitOnExit bool `yaml:"wait_on_exit"`
}

// BatchConfig holds batch processing settings.
type BatchConfig struct {
	// Workers is the number of files processed concurrently. 1 processes
	// each file to completion before the next.
	Workers int `yaml:"workers"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values: a 1024-pixel
// canvas, white lines, PNG output next to the inputs, one file at a time.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			CanvasSize:  1024,
			LineColor:   "FFFFFFFF",
			Supersample: 1,
		},
		Output: OutputConfig{
			Format:     "png",
			Dir:        "",
			WaitOnExit: false,
		},
		Batch: BatchConfig{
			Workers: 1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

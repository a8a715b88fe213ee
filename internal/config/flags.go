package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagSize        = flag.Int("size", 0, "Canvas size in pixels")
	flagColor       = flag.String("color", "", "Wireframe color (RRGGBB or RRGGBBAA hex)")
	flagFormat      = flag.String("format", "", "Output image format (png, webp, tga)")
	flagSupersample = flag.Int("supersample", 0, "Supersampling factor (1 = off)")
	flagOut         = flag.String("out", "", "Write all output under this directory")
	flagWorkers     = flag.Int("workers", 0, "Number of files processed concurrently")
	flagWait        = flag.Bool("wait", false, "Wait for Enter before exiting")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile     = flag.String("log-file", "", "Also log to this file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagSize > 0 {
		cfg.Render.CanvasSize = *flagSize
	}
	if *flagColor != "" {
		cfg.Render.LineColor = *flagColor
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagSupersample > 0 {
		cfg.Render.Supersample = *flagSupersample
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
	if *flagWorkers > 0 {
		cfg.Batch.Workers = *flagWorkers
	}
	if *flagWait {
		cfg.Output.WaitOnExit = true
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}

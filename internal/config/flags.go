package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagRadius      = flag.Float64("radius", 0, "Planet radius override")
	flagSubdivision = flag.Int("subdivision", -1, "Icosphere subdivision level override")
	flagServe       = flag.Bool("serve", false, "Enable the websocket viewer")
	flagListen      = flag.String("listen", "", "Viewer listen address")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagRadius > 0 {
		cfg.World.Radius = float32(*flagRadius)
	}
	if *flagSubdivision >= 0 {
		cfg.World.SubdivisionLevel = *flagSubdivision
	}
	if *flagServe {
		cfg.Viewer.Enabled = true
	}
	if *flagListen != "" {
		cfg.Viewer.Listen = *flagListen
		cfg.Viewer.Enabled = true
	}
}

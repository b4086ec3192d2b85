package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-port-from first candidate port for the pairing server
//	-port-to last candidate port for the pairing server
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-d addon store SQLite path
//	-logo branding image path served at /logo
//	-fetch-timeout manifest request timeout (e.g., "10s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var portFrom, portTo int
	var requestTimeout time.Duration
	var storagePath string
	var logoPath string
	var fetchTimeout time.Duration
	var jsonConfigPath string

	flag.IntVar(&portFrom, "port-from", 0, "First candidate port")
	flag.IntVar(&portTo, "port-to", 0, "Last candidate port")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&storagePath, "d", "", "Addon store SQLite path")
	flag.StringVar(&logoPath, "logo", "", "Branding image path")
	flag.DurationVar(&fetchTimeout, "fetch-timeout", 0, "Manifest request timeout (e.g., 10s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogoPath: logoPath,
		},
		Server: Server{
			PortFrom:       portFrom,
			PortTo:         portTo,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DSN: storagePath,
		},
		Fetcher: Fetcher{
			Timeout: fetchTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

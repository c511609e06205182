// Package config loads runtime settings from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the server's runtime settings. Defaults reproduce the
// service's canonical behavior; overriding them is an operational escape
// hatch, not part of the API contract.
type Config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	ConnectTimeout time.Duration `env:"FETCH_CONNECT_TIMEOUT" envDefault:"10s"`
	FetchTimeout   time.Duration `env:"FETCH_TIMEOUT" envDefault:"20s"`
	MaxImageEdge   int           `env:"MAX_IMAGE_EDGE" envDefault:"1024"`
}

// Load parses Config from the process environment.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}

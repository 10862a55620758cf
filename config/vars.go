package config

import (
	"time"

	"github.com/flashbots/go-utils/cli"
)

// Set during build
var (
	// Version is the version of the software, set at build time
	Version = "v0.1.0-dev"
)

// Other settings
var (
	// DefaultAPIURL is the relay data API base URL used when none is given. It must not end with a slash.
	DefaultAPIURL = cli.GetEnv("RELAY_API_URL", "http://localhost:18550")

	// RequestTimeoutMs sets the timeout of the default HTTP client. A zero value means no timeout.
	RequestTimeoutMs = cli.GetEnvInt("RELAY_TIMEOUT_MS", 0)
)

// RequestTimeout returns RequestTimeoutMs as a duration.
func RequestTimeout() time.Duration {
	return time.Duration(RequestTimeoutMs) * time.Millisecond
}

package gemini

import "time"

// Defaults applied by Config.Validate and the SDK client.
const (
	DefaultModel      = "gemini-2.5-flash"
	DefaultAPIVersion = "v1beta"
	DefaultTimeout    = 30 * time.Second
)

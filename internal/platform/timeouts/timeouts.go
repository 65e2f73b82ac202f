// Package timeouts defines shared timeout constants used across commands.
package timeouts

import "time"

// TelemetryShutdown limits how long a command waits for pending spans to be
// exported when it exits.
const TelemetryShutdown = 5 * time.Second

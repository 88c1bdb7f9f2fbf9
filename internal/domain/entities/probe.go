package entities

import "time"

// ProbeResult is the outcome of a single best-effort reachability check
// against the upstream price API.
type ProbeResult struct {
	Reachable  bool      `json:"reachable"`
	StatusCode int       `json:"status_code,omitempty"`
	LatencyMS  float64   `json:"latency_ms"`
	CheckedAt  time.Time `json:"checked_at"`
	Error      string    `json:"error,omitempty"`
}

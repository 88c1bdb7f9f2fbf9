package entities

import "time"

// CardOrderMaxAge is how long a persisted card ordering stays valid.
const CardOrderMaxAge = 24 * time.Hour

// CardOrder is the user-chosen ordering of dashboard cards: an ordered list
// of asset identifiers plus the epoch-millisecond time it was saved.
type CardOrder struct {
	IDs       []string `json:"ids"`
	Timestamp int64    `json:"timestamp"`
}

// Expired reports whether the ordering is older than CardOrderMaxAge at the
// given instant. Expired orderings are treated the same as absent ones.
func (c *CardOrder) Expired(now time.Time) bool {
	saved := time.UnixMilli(c.Timestamp)
	return now.Sub(saved) >= CardOrderMaxAge
}

package coinbase

import (
	"context"
	"io"
	"net/http"
	"time"

	"crypto-spot-service/internal/domain/entities"
	"crypto-spot-service/internal/infrastructure/logging"
)

// Ping performs one best-effort request against the API's time endpoint to
// verify reachability. No retry; a shorter timeout than the price pipeline.
// Failure is folded into the result instead of an error so the diagnostics
// endpoint can always render something.
func (c *Client) Ping(ctx context.Context) *entities.ProbeResult {
	result := &entities.ProbeResult{CheckedAt: time.Now()}

	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.ProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, c.baseURL+"/time", nil)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("CB-VERSION", c.cfg.APIVersion)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	result.LatencyMS = durationMs(time.Since(start))

	if err != nil {
		result.Error = err.Error()
		logging.Warn(ctx, "Upstream probe failed", logging.Fields{
			"error":      err.Error(),
			"latency_ms": result.LatencyMS,
		})
		return result
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	result.StatusCode = resp.StatusCode
	result.Reachable = resp.StatusCode >= 200 && resp.StatusCode < 300

	logging.Debug(ctx, "Upstream probe completed", logging.Fields{
		"status_code": result.StatusCode,
		"latency_ms":  result.LatencyMS,
		"reachable":   result.Reachable,
	})

	return result
}

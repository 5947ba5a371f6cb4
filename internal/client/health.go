package client

import "context"

// HealthStatus is returned by the backend's liveness probe.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health probes the backend's liveness endpoint
func (c *Client) Health(ctx context.Context) Result[HealthStatus] {
	res, err := c.Get(ctx, epHealth)
	if err != nil {
		return serviceFailure[HealthStatus](err, "Service unavailable")
	}
	return normalize[HealthStatus](res)
}

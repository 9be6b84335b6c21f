package apiclient

// HealthStatus is the data returned by the health endpoint.
type HealthStatus struct {
	Service  string `json:"service"`
	Database string `json:"database"`
	Uploads  string `json:"uploads"`
}

// Health checks whether the server and its database are reachable.
func (c *Client) Health() (*HealthStatus, error) {
	var resp HealthStatus
	if err := c.get("/health", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

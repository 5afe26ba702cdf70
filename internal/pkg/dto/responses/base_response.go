package responses

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// GatewayError is the only body a list or mutation route renders on failure.
type GatewayError struct {
	Error string `json:"error"`
}

type HealthCheck struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

package dto

// HealthResponse reports service liveness. Echo mirrors the optional query
// parameter and PathEcho mirrors the path segment when the path variant of
// the route is used; both serialize as null when absent.
type HealthResponse struct {
	Status        int     `json:"status" example:"200"`
	StatusMessage string  `json:"status_message" example:"OK"`
	Timestamp     string  `json:"timestamp" example:"2025-01-15T10:20:30Z"`
	IPAddress     string  `json:"ip_address" example:"127.0.0.1"`
	Echo          *string `json:"echo"`
	PathEcho      *string `json:"path_echo"`
}

package dto

// APIResponse is the single response envelope every handler writes, success or
// failure. Data is null on failures.
type APIResponse struct {
	Status  int    `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// NewAPIResponse builds a response envelope.
func NewAPIResponse(status int, data any, message string) APIResponse {
	return APIResponse{Status: status, Data: data, Message: message}
}

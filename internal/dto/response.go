package dto

// ApiResponse is the uniform response envelope.
type ApiResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Success builds a success envelope.
func Success(message string, data any) ApiResponse {
	return ApiResponse{Status: "success", Message: message, Data: data}
}

// Error builds an error envelope.
func Error(message string) ApiResponse {
	return ApiResponse{Status: "error", Message: message}
}

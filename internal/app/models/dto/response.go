package dto

// APIResponse is the standard success envelope: handlers either return a
// message plus a payload, or just a payload under Result for list endpoints.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Result  interface{} `json:"result,omitempty"`
}

// NewSuccessResponse creates a success envelope with a message and payload
func NewSuccessResponse(message string, result interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Result:  result,
	}
}

// NewResultResponse creates a success envelope carrying only a payload
func NewResultResponse(result interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Result:  result,
	}
}

package api

// OutboundRequest is the request payload for placing an outbound call
type OutboundRequest struct {
	To string `json:"to"`
}

// OutboundResponse is the success payload for an outbound call
type OutboundResponse struct {
	Success bool   `json:"success"`
	CallSID string `json:"callSid"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

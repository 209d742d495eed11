package greeting

// Data models the greeting response payload.
type Data struct {
	Message string `json:"message" doc:"Greeting message" example:"Hello, World!"`
}

// GetOutput is the response wrapper for the greeting endpoint.
type GetOutput struct {
	Body Data
}

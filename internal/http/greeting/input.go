package greeting

// GetInput captures the path segment for a personalized greeting.
// The segment is accepted verbatim as decoded by the router; no
// additional validation is applied.
type GetInput struct {
	Name string `path:"name" doc:"Name to greet" example:"World"`
}

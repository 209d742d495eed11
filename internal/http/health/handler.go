package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
)

// Data models the health response payload.
type Data struct {
	Status string `json:"status" doc:"Service health status" example:"healthy"`
}

// GetOutput is the response wrapper for the health endpoint.
type GetOutput struct {
	Body Data
}

// Register wires the health route into the provided API router.
func Register(api huma.API) {
	huma.Get(api, "/health", getHandler)
}

func getHandler(_ context.Context, _ *struct{}) (*GetOutput, error) {
	return &GetOutput{Body: Data{Status: "healthy"}}, nil
}

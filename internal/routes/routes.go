package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/jpalmu/greet-api/internal/http/greeting"
	"github.com/jpalmu/greet-api/internal/http/health"
)

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API) {
	health.Register(api)
	greeting.Register(api)
}

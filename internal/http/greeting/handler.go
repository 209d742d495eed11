package greeting

import (
	"context"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	appmiddleware "github.com/jpalmu/greet-api/internal/middleware"
)

// Register wires the greeting route into the provided API router.
func Register(api huma.API) {
	huma.Get(api, "/hello/{name}", getHandler)
}

func getHandler(ctx context.Context, input *GetInput) (*GetOutput, error) {
	appmiddleware.LogInfo(ctx, "greeting requested", zap.String("name", input.Name))
	return &GetOutput{Body: Data{Message: fmt.Sprintf("Hello, %s!", input.Name)}}, nil
}

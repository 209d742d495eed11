package api

import "github.com/danielgtaylor/huma/v2"

// NewConfig returns the Huma configuration for this service.
//
// huma.DefaultConfig installs a schema link transformer that injects a
// "$schema" member into every JSON and CBOR response body. Response bodies
// here are exactly the declared payload structs, so the transformer and its
// OpenAPI hook are removed.
func NewConfig(title, version string) huma.Config {
	cfg := huma.DefaultConfig(title, version)
	cfg.Transformers = nil
	cfg.OnAddOperation = nil
	return cfg
}

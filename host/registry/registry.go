// Package registry implements the host's program registry.
package registry

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"

	"github.com/slatehq/slate-sdk/domain/entities"
	"github.com/slatehq/slate-sdk/domain/ports"
)

// registryConfig holds configuration for the Registry.
type registryConfig struct {
	strictMode bool // Fail on duplicate registrations
}

func defaultRegistryConfig() registryConfig {
	return registryConfig{
		strictMode: true, // Secure default: prevent accidental overwrites
	}
}

// Option configures a Registry instance.
type Option func(*registryConfig)

// WithStrictMode enables/disables strict mode for duplicate registrations.
// Default is true (fail on duplicates). Disable only for testing or
// hot-swapping program implementations.
func WithStrictMode(enabled bool) Option {
	return func(c *registryConfig) {
		c.strictMode = enabled
	}
}

// Registry implements ports.ProgramRegistry.
type Registry struct {
	config   registryConfig
	programs sync.Map // map[entities.Identity]ports.Program
	schemas  sync.Map // map[entities.Identity]string (json schema of the record model)
}

// New creates a Registry with the given options.
func New(opts ...Option) *Registry {
	cfg := defaultRegistryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Registry{config: cfg}
}

// Register binds a program to its identity and generates a JSON Schema
// from its record model for tooling.
func (r *Registry) Register(id entities.Identity, program ports.Program, recordModel any) error {
	if r.config.strictMode {
		if _, exists := r.programs.Load(id); exists {
			return fmt.Errorf("program %s already registered", id)
		}
	}

	r.programs.Store(id, program)

	s := jsonschema.Reflect(recordModel)
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal record schema for %s: %w", id, err)
	}
	r.schemas.Store(id, string(data))
	return nil
}

// Lookup resolves a program identity to its handler.
func (r *Registry) Lookup(id entities.Identity) (ports.Program, bool) {
	v, ok := r.programs.Load(id)
	if !ok {
		return nil, false
	}
	return v.(ports.Program), true
}

// Schema retrieves the JSON Schema of a registered program's record model.
func (r *Registry) Schema(id entities.Identity) (string, bool) {
	v, ok := r.schemas.Load(id)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// List returns the identities of all registered programs.
func (r *Registry) List() []entities.Identity {
	var ids []entities.Identity
	r.programs.Range(func(k, v any) bool {
		ids = append(ids, k.(entities.Identity))
		return true
	})
	return ids
}

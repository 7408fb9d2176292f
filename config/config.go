// Package config loads the genesis file describing the accounts a
// runtime starts with.
package config

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/slatehq/slate-sdk/domain/entities"
	"github.com/slatehq/slate-sdk/host"
)

// validate is a package-level singleton for better performance.
// Creating a new validator on each call is expensive; reusing is recommended.
var validate = validator.New()

// AccountSpec describes one pre-allocated account. Exactly one of Size
// (a zeroed buffer of that length) or Data (hex-encoded initial
// contents) must be set.
type AccountSpec struct {
	Address string `yaml:"address" validate:"required"`
	Owner   string `yaml:"owner"   validate:"required"`
	Size    int    `yaml:"size"    validate:"omitempty,gt=0"`
	Data    string `yaml:"data"    validate:"omitempty,hexadecimal"`
}

// Genesis is the parsed genesis file.
type Genesis struct {
	Accounts []AccountSpec `yaml:"accounts" validate:"required,min=1,dive"`
}

// Load reads and parses a genesis file from disk.
func Load(path string) (*Genesis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read genesis file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates genesis yaml.
func Parse(data []byte) (*Genesis, error) {
	var g Genesis
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("failed to parse genesis yaml: %w", err)
	}
	if err := validate.Struct(&g); err != nil {
		return nil, fmt.Errorf("genesis validation failed: %w", err)
	}
	for i, spec := range g.Accounts {
		if (spec.Size == 0) == (spec.Data == "") {
			return nil, fmt.Errorf("account %d: exactly one of size or data must be set", i)
		}
	}
	return &g, nil
}

// Apply materializes the genesis accounts in the runtime.
func (g *Genesis) Apply(rt *host.Runtime) error {
	for i, spec := range g.Accounts {
		address, err := entities.ParseIdentity(spec.Address)
		if err != nil {
			return fmt.Errorf("account %d: %w", i, err)
		}
		owner, err := entities.ParseIdentity(spec.Owner)
		if err != nil {
			return fmt.Errorf("account %d: %w", i, err)
		}

		var data []byte
		if spec.Data != "" {
			data, err = hex.DecodeString(spec.Data)
			if err != nil {
				return fmt.Errorf("account %d: invalid data: %w", i, err)
			}
		} else {
			data = make([]byte, spec.Size)
		}

		if _, err := rt.CreateAccount(address, owner, data); err != nil {
			return fmt.Errorf("account %d: %w", i, err)
		}
	}
	return nil
}

package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/scalarorg/evmgen/pkg/codegen"
)

var validate = validator.New()

// ContractConfig describes one contract to generate bindings for.
type ContractConfig struct {
	// Name is the contract identifier used for type and file names.
	Name string `mapstructure:"name" validate:"required"`

	// ABIPath points to the contract's ABI JSON file.
	ABIPath string `mapstructure:"abi_path" validate:"required"`

	// EventAliases maps a canonical event signature to an override name,
	// used to disambiguate overloaded events. Alias values must be unique
	// within the contract.
	EventAliases map[string]string `mapstructure:"event_aliases"`

	// Derives lists interface types asserted against every generated event
	// type, e.g. "fmt.Stringer".
	Derives []string `mapstructure:"derives"`
}

// Config is the top-level generation config, loaded from a JSON file.
type Config struct {
	// Package is the Go package name of the generated files.
	Package string `mapstructure:"package" validate:"required"`

	// OutDir is the directory generated files are written to.
	OutDir string `mapstructure:"out_dir" validate:"required"`

	// RuntimeImport overrides the import path of the runtime support
	// package linked by generated code.
	RuntimeImport string `mapstructure:"runtime_import"`

	Contracts []ContractConfig `mapstructure:"contracts" validate:"required,min=1,dive"`
}

// Load reads and validates the generation config from path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := restoreAliasKeys(path, &cfg); err != nil {
		return nil, err
	}
	if cfg.RuntimeImport == "" {
		cfg.RuntimeImport = codegen.DefaultRuntimeImport
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// restoreAliasKeys re-reads the alias maps straight from the config file.
// Viper lowercases every map key, but alias keys are canonical event
// signatures and case-sensitive.
func restoreAliasKeys(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var aliases struct {
		Contracts []struct {
			EventAliases map[string]string `json:"event_aliases"`
		} `json:"contracts"`
	}
	if err := json.Unmarshal(raw, &aliases); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	for i := range cfg.Contracts {
		if i < len(aliases.Contracts) {
			cfg.Contracts[i].EventAliases = aliases.Contracts[i].EventAliases
		}
	}
	return nil
}

// Validate checks required fields and rejects duplicate alias values, which
// would collapse two events onto one generated type.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	for _, contract := range c.Contracts {
		seen := make(map[string]string, len(contract.EventAliases))
		for sig, alias := range contract.EventAliases {
			if prev, ok := seen[alias]; ok {
				return fmt.Errorf("contract %s: alias %q assigned to both %q and %q", contract.Name, alias, prev, sig)
			}
			seen[alias] = sig
		}
	}
	return nil
}

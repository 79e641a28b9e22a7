package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	validEnvs       = []string{EnvDevelopment, EnvStaging, EnvProduction}
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// Every violation is reported, not only the first.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(validEnvs, c.App.Env) {
		errs = append(errs, fmt.Errorf("app.env must be one of %s (got %q)", strings.Join(validEnvs, ", "), c.App.Env))
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes))
	}

	if err := c.Database.validate(); err != nil {
		errs = append(errs, fmt.Errorf("database: %w", err))
	}

	if !slices.Contains(validLogLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("log.level must be one of %s (got %q)", strings.Join(validLogLevels, ", "), c.Log.Level))
	}
	if !slices.Contains(validLogFormats, strings.ToLower(c.Log.Format)) {
		errs = append(errs, fmt.Errorf("log.format must be one of %s (got %q)", strings.Join(validLogFormats, ", "), c.Log.Format))
	}

	if c.Account.BcryptCost < bcrypt.MinCost || c.Account.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("account.bcrypt_cost must be in %d..%d (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Account.BcryptCost))
	}

	return errors.Join(errs...)
}

func (d DatabaseConfig) validate() error {
	if strings.TrimSpace(d.DSN) == "" {
		return errors.New("dsn is required")
	}
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be in 0..max_conns (got %d, max %d)", d.MinConns, d.MaxConns)
	}
	return nil
}
